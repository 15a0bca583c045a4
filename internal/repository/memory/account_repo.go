package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bankledger/internal/domain"
	"bankledger/pkg/accountnum"
)

// AccountRepository keeps one lockable entry per account so operations on
// disjoint accounts proceed in parallel while operations on the same account
// serialize their read-modify-write.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*accountEntry
	numbers  *accountnum.Generator
}

type accountEntry struct {
	mu   sync.Mutex
	acct domain.Account
}

func NewAccountRepository(numbers *accountnum.Generator) *AccountRepository {
	return &AccountRepository{
		accounts: make(map[string]*accountEntry),
		numbers:  numbers,
	}
}

func (r *AccountRepository) Create(ctx context.Context, name string, balance decimal.Decimal, pinHash string) (*domain.Account, error) {
	if balance.IsNegative() {
		return nil, fmt.Errorf("%w: opening balance %s", domain.ErrInsufficientFunds, balance)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	number := r.numbers.Generate()
	for _, taken := r.accounts[number]; taken; _, taken = r.accounts[number] {
		number = r.numbers.Generate()
	}

	acct := domain.Account{
		ID:        uuid.NewString(),
		Number:    number,
		Name:      name,
		PinHash:   pinHash,
		Balance:   balance,
		CreatedAt: time.Now(),
	}
	r.accounts[number] = &accountEntry{acct: acct}

	cp := acct
	return &cp, nil
}

func (r *AccountRepository) GetByNumber(ctx context.Context, number string) (*domain.Account, error) {
	e, err := r.entry(number)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	cp := e.acct
	return &cp, nil
}

func (r *AccountRepository) ApplyDelta(ctx context.Context, number string, delta decimal.Decimal) (*domain.Account, error) {
	e, err := r.entry(number)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	next := e.acct.Balance.Add(delta)
	if next.IsNegative() {
		return nil, fmt.Errorf("%w: balance %s, delta %s", domain.ErrInsufficientFunds, e.acct.Balance, delta)
	}
	e.acct.Balance = next

	cp := e.acct
	return &cp, nil
}

func (r *AccountRepository) Transfer(ctx context.Context, fromNumber, toNumber string, amount decimal.Decimal) (*domain.Account, *domain.Account, error) {
	src, err := r.entry(fromNumber)
	if err != nil {
		return nil, nil, err
	}
	// Destination existence is checked before any mutation so a failed lookup
	// never leaves the source debited.
	dst, err := r.entry(toNumber)
	if err != nil {
		return nil, nil, err
	}

	// Both entries lock in ascending account-number order so two opposing
	// concurrent transfers cannot deadlock.
	first, second := src, dst
	if fromNumber > toNumber {
		first, second = dst, src
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	if src != dst {
		second.mu.Lock()
		defer second.mu.Unlock()
	}

	next := src.acct.Balance.Sub(amount)
	if next.IsNegative() {
		return nil, nil, fmt.Errorf("%w: balance %s, amount %s", domain.ErrInsufficientFunds, src.acct.Balance, amount)
	}
	src.acct.Balance = next
	dst.acct.Balance = dst.acct.Balance.Add(amount)

	from, to := src.acct, dst.acct
	return &from, &to, nil
}

func (r *AccountRepository) GetAll(ctx context.Context) ([]*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Account, 0, len(r.accounts))
	for _, e := range r.accounts {
		e.mu.Lock()
		cp := e.acct
		e.mu.Unlock()
		result = append(result, &cp)
	}

	return result, nil
}

func (r *AccountRepository) GetWithMaxBalance(ctx context.Context) ([]*domain.Account, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("%w: no accounts exist", domain.ErrAccountNotFound)
	}

	max := all[0].Balance
	for _, a := range all[1:] {
		if a.Balance.GreaterThan(max) {
			max = a.Balance
		}
	}

	var result []*domain.Account
	for _, a := range all {
		if a.Balance.Equal(max) {
			result = append(result, a)
		}
	}

	return result, nil
}

func (r *AccountRepository) entry(number string) (*accountEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, exists := r.accounts[number]
	if !exists {
		return nil, fmt.Errorf("%w: account %s", domain.ErrAccountNotFound, number)
	}
	return e, nil
}
