package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"bankledger/internal/domain"
	"bankledger/internal/repository"
)

// TransactionRepository is an append-only log of committed transactions,
// indexed by the source account number.
type TransactionRepository struct {
	mu           sync.RWMutex
	transactions map[string]*domain.Transaction
	bySource     map[string][]string
}

func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{
		transactions: make(map[string]*domain.Transaction),
		bySource:     make(map[string][]string),
	}
}

func (r *TransactionRepository) Append(ctx context.Context, tx *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.transactions[tx.ID]; exists {
		return fmt.Errorf("%w: transaction %s", repository.ErrDuplicate, tx.ID)
	}

	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now()
	}

	cp := *tx
	r.transactions[cp.ID] = &cp
	r.bySource[cp.FromNumber] = append(r.bySource[cp.FromNumber], cp.ID)

	return nil
}

func (r *TransactionRepository) GetByAccountNumber(ctx context.Context, number string) ([]*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.bySource[number]
	result := make([]*domain.Transaction, 0, len(ids))
	for _, id := range ids {
		cp := *r.transactions[id]
		result = append(result, &cp)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}
