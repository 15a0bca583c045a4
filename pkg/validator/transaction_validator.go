package validator

import (
	"errors"
	"fmt"
	"regexp"

	"bankledger/internal/domain"
)

var (
	ErrInvalidAmount = errors.New("invalid transaction amount")
	ErrUnknownType   = errors.New("unknown transaction type")
)

// TransactionValidator checks request shape before any mutation: account
// number and pin formats plus type-specific field requirements. Authorization
// against the stored hash happens later, in the processor.
type TransactionValidator struct {
	numberRegex *regexp.Regexp
	pinRegex    *regexp.Regexp
}

func NewTransactionValidator() *TransactionValidator {
	return &TransactionValidator{
		numberRegex: regexp.MustCompile(`^[0-9]{10}$`),
		pinRegex:    regexp.MustCompile(`^[0-9]{4}$`),
	}
}

func (v *TransactionValidator) ValidateRequest(req *domain.TransactionRequest) error {
	switch req.Type {
	case domain.TypeTransfer, domain.TypeDeposit, domain.TypeWithdrawal, domain.TypePayment:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownType, req.Type)
	}

	if err := v.ValidateAccountNumber(req.FromNumber); err != nil {
		return err
	}
	if req.Type == domain.TypeTransfer {
		if err := v.ValidateAccountNumber(req.ToNumber); err != nil {
			return err
		}
	}

	// Deposits need no authorization, so their pin is not inspected at all.
	if req.Type != domain.TypeDeposit {
		if err := v.ValidatePin(req.PinCode); err != nil {
			return err
		}
	}

	if req.Amount.IsNegative() {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, req.Amount)
	}

	return nil
}

func (v *TransactionValidator) ValidateAccountNumber(number string) error {
	if !v.numberRegex.MatchString(number) {
		return fmt.Errorf("%w: %q", domain.ErrIncorrectAccountNumber, number)
	}
	return nil
}

func (v *TransactionValidator) ValidatePin(pin string) error {
	if !v.pinRegex.MatchString(pin) {
		return fmt.Errorf("%w: pin must be exactly 4 digits", domain.ErrIncorrectPinCode)
	}
	return nil
}
