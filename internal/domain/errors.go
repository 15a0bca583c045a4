package domain

import "errors"

var (
	// ErrIncorrectAccountNumber indicates a malformed account number input.
	ErrIncorrectAccountNumber = errors.New("account number must be exactly 10 digits")
	// ErrIncorrectPinCode indicates a missing, malformed or mismatched pin.
	ErrIncorrectPinCode = errors.New("incorrect pin code")
	// ErrInsufficientFunds indicates a debit that would drive a balance negative.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrAccountNotFound indicates the referenced account number does not exist.
	ErrAccountNotFound = errors.New("account not found")
)
