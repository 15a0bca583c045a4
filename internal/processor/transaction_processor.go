package processor

import (
	"context"
	"fmt"
	"log/slog"

	"bankledger/internal/domain"
	"bankledger/internal/repository"
	"bankledger/pkg/crypto"
	"bankledger/pkg/metrics"
	"bankledger/pkg/validator"
)

// TransactionProcessor runs each request through the same sequence:
// validate shape, load the source account, authorize the pin (deposits are
// exempt), apply the signed delta through the store, then append the log
// record. Any failing step aborts with no partial balance change committed.
type TransactionProcessor struct {
	accounts  repository.AccountRepository
	txLog     repository.TransactionRepository
	pins      *crypto.PinHasher
	validator *validator.TransactionValidator
	metrics   *metrics.MetricsCollector
	logger    *slog.Logger
}

func NewTransactionProcessor(
	accounts repository.AccountRepository,
	txLog repository.TransactionRepository,
	pins *crypto.PinHasher,
	collector *metrics.MetricsCollector,
	logger *slog.Logger,
) *TransactionProcessor {
	if logger == nil {
		logger = slog.Default()
	}

	return &TransactionProcessor{
		accounts:  accounts,
		txLog:     txLog,
		pins:      pins,
		validator: validator.NewTransactionValidator(),
		metrics:   collector,
		logger:    logger,
	}
}

func (p *TransactionProcessor) Process(ctx context.Context, req *domain.TransactionRequest) (*domain.Transaction, error) {
	if err := p.validator.ValidateRequest(req); err != nil {
		return nil, err
	}

	source, err := p.accounts.GetByNumber(ctx, req.FromNumber)
	if err != nil {
		return nil, err
	}

	if req.Type != domain.TypeDeposit {
		if !p.pins.Verify(req.PinCode, source.PinHash) {
			return nil, fmt.Errorf("%w: authorization failed for account %s", domain.ErrIncorrectPinCode, source.Number)
		}
	}

	var updatedFrom, updatedTo *domain.Account
	switch req.Type {
	case domain.TypeDeposit:
		updatedFrom, err = p.accounts.ApplyDelta(ctx, req.FromNumber, req.Amount)
	case domain.TypeWithdrawal, domain.TypePayment:
		updatedFrom, err = p.accounts.ApplyDelta(ctx, req.FromNumber, req.Amount.Neg())
	case domain.TypeTransfer:
		updatedFrom, updatedTo, err = p.accounts.Transfer(ctx, req.FromNumber, req.ToNumber, req.Amount)
	}
	if err != nil {
		return nil, err
	}

	toNumber := ""
	if req.Type == domain.TypeTransfer {
		toNumber = req.ToNumber
	}
	tx := domain.NewTransaction(req.Type, req.Amount.Abs(), req.FromNumber, toNumber)
	if err := p.txLog.Append(ctx, tx); err != nil {
		return nil, fmt.Errorf("append transaction log: %w", err)
	}

	p.observeBalance(updatedFrom)
	p.observeBalance(updatedTo)

	p.logger.InfoContext(ctx, "Transaction committed",
		slog.String("transaction_id", tx.ID),
		slog.String("type", string(tx.Type)),
		slog.String("from_account", tx.FromNumber),
		slog.String("to_account", tx.ToNumber),
		slog.String("amount", tx.Amount.String()))

	return tx, nil
}

// ListByAccountNumber returns the transactions where the account is the
// source, ordered by creation time. An account with no transactions yields an
// empty slice, not an error.
func (p *TransactionProcessor) ListByAccountNumber(ctx context.Context, number string) ([]*domain.Transaction, error) {
	if err := p.validator.ValidateAccountNumber(number); err != nil {
		return nil, err
	}
	return p.txLog.GetByAccountNumber(ctx, number)
}

func (p *TransactionProcessor) observeBalance(account *domain.Account) {
	if p.metrics == nil || account == nil {
		return
	}
	p.metrics.UpdateAccountBalance(account.Number, account.Balance.InexactFloat64())
}
