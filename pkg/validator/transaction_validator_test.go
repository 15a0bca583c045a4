package validator

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"bankledger/internal/domain"
)

func TestTransactionValidator_ValidWithdrawal(t *testing.T) {
	v := NewTransactionValidator()
	req := &domain.TransactionRequest{
		Type:       domain.TypeWithdrawal,
		Amount:     decimal.NewFromInt(100),
		PinCode:    "1234",
		FromNumber: "1234567890",
	}

	err := v.ValidateRequest(req)

	if err != nil {
		t.Fatalf("expected valid request, got err=%v", err)
	}
}

func TestTransactionValidator_ShortAccountNumber(t *testing.T) {
	v := NewTransactionValidator()
	req := &domain.TransactionRequest{
		Type:       domain.TypeWithdrawal,
		Amount:     decimal.NewFromInt(100),
		PinCode:    "1234",
		FromNumber: "123",
	}

	err := v.ValidateRequest(req)

	if !errors.Is(err, domain.ErrIncorrectAccountNumber) {
		t.Fatalf("expected ErrIncorrectAccountNumber, got %v", err)
	}
}

func TestTransactionValidator_TransferNeedsDestination(t *testing.T) {
	v := NewTransactionValidator()
	req := &domain.TransactionRequest{
		Type:       domain.TypeTransfer,
		Amount:     decimal.NewFromInt(100),
		PinCode:    "1234",
		FromNumber: "1234567890",
	}

	err := v.ValidateRequest(req)

	if !errors.Is(err, domain.ErrIncorrectAccountNumber) {
		t.Fatalf("expected ErrIncorrectAccountNumber for missing destination, got %v", err)
	}
}

func TestTransactionValidator_MissingPin(t *testing.T) {
	v := NewTransactionValidator()
	req := &domain.TransactionRequest{
		Type:       domain.TypePayment,
		Amount:     decimal.NewFromInt(50),
		FromNumber: "1234567890",
	}

	err := v.ValidateRequest(req)

	if !errors.Is(err, domain.ErrIncorrectPinCode) {
		t.Fatalf("expected ErrIncorrectPinCode, got %v", err)
	}
}

func TestTransactionValidator_NonDigitPin(t *testing.T) {
	v := NewTransactionValidator()

	err := v.ValidatePin("12a4")

	if !errors.Is(err, domain.ErrIncorrectPinCode) {
		t.Fatalf("expected ErrIncorrectPinCode, got %v", err)
	}
}

func TestTransactionValidator_DepositIgnoresPin(t *testing.T) {
	v := NewTransactionValidator()
	req := &domain.TransactionRequest{
		Type:       domain.TypeDeposit,
		Amount:     decimal.NewFromInt(200),
		FromNumber: "1234567890",
	}

	err := v.ValidateRequest(req)

	if err != nil {
		t.Fatalf("expected deposit without pin to validate, got %v", err)
	}
}

func TestTransactionValidator_NegativeAmount(t *testing.T) {
	v := NewTransactionValidator()
	req := &domain.TransactionRequest{
		Type:       domain.TypeDeposit,
		Amount:     decimal.NewFromInt(-5),
		FromNumber: "1234567890",
	}

	err := v.ValidateRequest(req)

	if !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestTransactionValidator_UnknownType(t *testing.T) {
	v := NewTransactionValidator()
	req := &domain.TransactionRequest{
		Type:       domain.TransactionType("REFUND"),
		Amount:     decimal.NewFromInt(5),
		PinCode:    "1234",
		FromNumber: "1234567890",
	}

	err := v.ValidateRequest(req)

	if !errors.Is(err, ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
}
