package repository

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"bankledger/internal/domain"
)

type AccountRepository interface {
	Create(ctx context.Context, name string, balance decimal.Decimal, pinHash string) (*domain.Account, error)
	GetByNumber(ctx context.Context, number string) (*domain.Account, error)
	// ApplyDelta commits balance+delta atomically for a single account and
	// returns the updated account.
	ApplyDelta(ctx context.Context, number string, delta decimal.Decimal) (*domain.Account, error)
	// Transfer debits fromNumber and credits toNumber as one atomic unit:
	// either both balances change or neither does.
	Transfer(ctx context.Context, fromNumber, toNumber string, amount decimal.Decimal) (*domain.Account, *domain.Account, error)
	GetAll(ctx context.Context) ([]*domain.Account, error)
	GetWithMaxBalance(ctx context.Context) ([]*domain.Account, error)
}

type TransactionRepository interface {
	Append(ctx context.Context, tx *domain.Transaction) error
	GetByAccountNumber(ctx context.Context, number string) ([]*domain.Transaction, error)
}

var (
	ErrDuplicate = errors.New("duplicate entry")
)
