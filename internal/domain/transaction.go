package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TypeTransfer   TransactionType = "TRANSFER"
	TypeDeposit    TransactionType = "DEPOSIT"
	TypeWithdrawal TransactionType = "WITHDRAWAL"
	TypePayment    TransactionType = "PAYMENT"
)

// Transaction is an immutable record of one committed balance-affecting
// operation. Amount always stores the magnitude of the effect; direction
// follows from Type.
type Transaction struct {
	ID         string          `json:"id"`
	FromNumber string          `json:"account_from_number"`
	ToNumber   string          `json:"account_to_number,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Type       TransactionType `json:"type"`
	CreatedAt  time.Time       `json:"created_at"`
}

// TransactionRequest is the inbound shape for one transaction attempt.
// ToNumber is consulted only for transfers; PinCode only for non-deposits.
type TransactionRequest struct {
	Type       TransactionType `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	PinCode    string          `json:"pin_code,omitempty"`
	FromNumber string          `json:"account_from_number"`
	ToNumber   string          `json:"account_to_number,omitempty"`
}

func NewTransaction(t TransactionType, amount decimal.Decimal, fromNumber, toNumber string) *Transaction {
	return &Transaction{
		ID:         uuid.NewString(),
		Type:       t,
		Amount:     amount,
		FromNumber: fromNumber,
		ToNumber:   toNumber,
	}
}
