package service

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"bankledger/internal/domain"
	"bankledger/internal/repository"
	"bankledger/pkg/crypto"
	"bankledger/pkg/validator"
)

// AccountService covers the account-facing operations: opening with a
// validated pin, lookups by number and the max-balance listing.
type AccountService struct {
	accounts  repository.AccountRepository
	pins      *crypto.PinHasher
	validator *validator.TransactionValidator
	logger    *slog.Logger
}

func NewAccountService(accounts repository.AccountRepository, pins *crypto.PinHasher, logger *slog.Logger) *AccountService {
	if logger == nil {
		logger = slog.Default()
	}

	return &AccountService{
		accounts:  accounts,
		pins:      pins,
		validator: validator.NewTransactionValidator(),
		logger:    logger,
	}
}

func (s *AccountService) Open(ctx context.Context, name string, balance decimal.Decimal, rawPin string) (*domain.Account, error) {
	if err := s.validator.ValidatePin(rawPin); err != nil {
		return nil, err
	}

	pinHash, err := s.pins.Hash(rawPin)
	if err != nil {
		return nil, err
	}

	account, err := s.accounts.Create(ctx, name, balance, pinHash)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Account opened",
		slog.String("account_number", account.Number),
		slog.String("name", account.Name))

	return account, nil
}

func (s *AccountService) GetAll(ctx context.Context) ([]*domain.Account, error) {
	return s.accounts.GetAll(ctx)
}

func (s *AccountService) GetByNumber(ctx context.Context, number string) (*domain.Account, error) {
	if err := s.validator.ValidateAccountNumber(number); err != nil {
		return nil, err
	}
	return s.accounts.GetByNumber(ctx, number)
}

func (s *AccountService) GetWithMaxBalance(ctx context.Context) ([]*domain.Account, error) {
	return s.accounts.GetWithMaxBalance(ctx)
}
