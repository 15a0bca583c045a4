package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"bankledger/internal/domain"
	"bankledger/internal/repository/memory"
	"bankledger/pkg/accountnum"
	"bankledger/pkg/crypto"
)

func newTestService() (*AccountService, *crypto.PinHasher) {
	pins := crypto.NewPinHasher(bcrypt.MinCost, nil)
	accRepo := memory.NewAccountRepository(accountnum.New(rand.NewPCG(21, 22)))
	return NewAccountService(accRepo, pins, nil), pins
}

func TestAccountService_OpenAndGetByNumber(t *testing.T) {
	svc, pins := newTestService()

	opened, err := svc.Open(context.Background(), "Alice", decimal.NewFromInt(750), "1234")
	if err != nil {
		t.Fatalf("unexpected error on Open: %v", err)
	}
	if len(opened.Number) != 10 {
		t.Errorf("expected 10-digit account number, got %q", opened.Number)
	}
	if !pins.Verify("1234", opened.PinHash) {
		t.Error("expected stored hash to verify the original pin")
	}

	got, err := svc.GetByNumber(context.Background(), opened.Number)
	if err != nil {
		t.Fatalf("unexpected error on GetByNumber: %v", err)
	}
	if !got.Balance.Equal(decimal.NewFromInt(750)) {
		t.Errorf("expected balance 750, got %s", got.Balance)
	}
}

func TestAccountService_OpenRejectsBadPin(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Open(context.Background(), "Alice", decimal.Zero, "12")

	if !errors.Is(err, domain.ErrIncorrectPinCode) {
		t.Fatalf("expected ErrIncorrectPinCode, got %v", err)
	}
}

func TestAccountService_GetByNumberMalformed(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetByNumber(context.Background(), "abc")

	if !errors.Is(err, domain.ErrIncorrectAccountNumber) {
		t.Fatalf("expected ErrIncorrectAccountNumber, got %v", err)
	}
}

func TestAccountService_GetWithMaxBalance(t *testing.T) {
	svc, _ := newTestService()
	_, _ = svc.Open(context.Background(), "Low", decimal.NewFromInt(5), "1111")
	rich, _ := svc.Open(context.Background(), "Rich", decimal.NewFromInt(900), "2222")

	got, err := svc.GetWithMaxBalance(context.Background())

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Number != rich.Number {
		t.Errorf("expected single richest account %q, got %+v", rich.Number, got)
	}
}

func TestAccountService_GetWithMaxBalanceEmpty(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetWithMaxBalance(context.Background())

	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound for empty store, got %v", err)
	}
}
