package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account holds a named balance identified by a 10-digit account number.
// PinHash is internal credential state and is never serialized outward.
type Account struct {
	ID        string          `json:"id"`
	Number    string          `json:"account_number"`
	Name      string          `json:"name"`
	PinHash   string          `json:"-"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}
