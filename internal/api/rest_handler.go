package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"bankledger/internal/domain"
	"bankledger/internal/processor"
	"bankledger/internal/service"
	"bankledger/pkg/metrics"
	"bankledger/pkg/validator"
)

type APIHandler struct {
	accounts       *service.AccountService
	processor      *processor.TransactionProcessor
	metrics        *metrics.MetricsCollector
	logger         *slog.Logger
	requestTimeout time.Duration
}

func NewAPIHandler(
	accounts *service.AccountService,
	processor *processor.TransactionProcessor,
	metrics *metrics.MetricsCollector,
	logger *slog.Logger,
) *APIHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &APIHandler{
		accounts:       accounts,
		processor:      processor,
		metrics:        metrics,
		logger:         logger,
		requestTimeout: 30 * time.Second,
	}
}

type CreateAccountRequest struct {
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
	PinCode string          `json:"pin_code"`
}

// AccountView is the outward representation of an account. It never carries
// the pin or its hash.
type AccountView struct {
	AccountNumber string          `json:"account_number"`
	Name          string          `json:"name"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     time.Time       `json:"created_at"`
}

type ProcessTransactionResponse struct {
	TransactionID string `json:"transaction_id"`
	Message       string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (h *APIHandler) CreateAccountHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	var req CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, "Invalid request body", http.StatusBadRequest, "INVALID_REQUEST")
		return
	}

	account, err := h.accounts.Open(ctx, req.Name, req.Balance, req.PinCode)
	if err != nil {
		h.sendDomainError(w, err)
		return
	}

	h.metrics.UpdateAccountBalance(account.Number, account.Balance.InexactFloat64())
	h.sendJSON(w, toAccountView(account), http.StatusCreated)
}

func (h *APIHandler) ListAccountsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	accounts, err := h.accounts.GetAll(ctx)
	if err != nil {
		h.sendDomainError(w, err)
		return
	}

	h.sendJSON(w, toAccountViews(accounts), http.StatusOK)
}

func (h *APIHandler) GetAccountHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	account, err := h.accounts.GetByNumber(ctx, r.PathValue("number"))
	if err != nil {
		h.sendDomainError(w, err)
		return
	}

	h.sendJSON(w, toAccountView(account), http.StatusOK)
}

func (h *APIHandler) MaxBalanceAccountsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	accounts, err := h.accounts.GetWithMaxBalance(ctx)
	if err != nil {
		h.sendDomainError(w, err)
		return
	}

	h.sendJSON(w, toAccountViews(accounts), http.StatusOK)
}

func (h *APIHandler) ProcessTransactionHandler(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	var req domain.TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, "Invalid request body", http.StatusBadRequest, "INVALID_REQUEST")
		return
	}

	tx, err := h.processor.Process(ctx, &req)
	h.metrics.RecordTransaction(time.Since(startTime), err == nil)

	if err != nil {
		h.logger.Warn("Transaction rejected",
			slog.String("type", string(req.Type)),
			slog.String("from_account", req.FromNumber),
			slog.String("error", err.Error()))
		h.sendDomainError(w, err)
		return
	}

	h.sendJSON(w, ProcessTransactionResponse{
		TransactionID: tx.ID,
		Message:       "Transaction processed successfully",
	}, http.StatusOK)
}

func (h *APIHandler) ListTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	transactions, err := h.processor.ListByAccountNumber(ctx, r.PathValue("number"))
	if err != nil {
		h.sendDomainError(w, err)
		return
	}

	h.sendJSON(w, transactions, http.StatusOK)
}

func (h *APIHandler) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
	}
	h.sendJSON(w, response, http.StatusOK)
}

func (h *APIHandler) sendDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		h.sendError(w, err.Error(), http.StatusNotFound, "ACCOUNT_NOT_FOUND")
	case errors.Is(err, domain.ErrIncorrectAccountNumber):
		h.sendError(w, err.Error(), http.StatusBadRequest, "INCORRECT_ACCOUNT_NUMBER")
	case errors.Is(err, domain.ErrIncorrectPinCode):
		h.sendError(w, err.Error(), http.StatusBadRequest, "INCORRECT_PIN_CODE")
	case errors.Is(err, domain.ErrInsufficientFunds):
		h.sendError(w, err.Error(), http.StatusBadRequest, "INSUFFICIENT_FUNDS")
	case errors.Is(err, validator.ErrInvalidAmount), errors.Is(err, validator.ErrUnknownType):
		h.sendError(w, err.Error(), http.StatusBadRequest, "VALIDATION_ERROR")
	default:
		// Internal failures stay opaque to callers.
		h.logger.Error("Internal failure", slog.String("error", err.Error()))
		h.sendError(w, "Internal server error", http.StatusInternalServerError, "SERVER_ERROR")
	}
}

func toAccountView(account *domain.Account) AccountView {
	return AccountView{
		AccountNumber: account.Number,
		Name:          account.Name,
		Balance:       account.Balance,
		CreatedAt:     account.CreatedAt,
	}
}

func toAccountViews(accounts []*domain.Account) []AccountView {
	views := make([]AccountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, toAccountView(account))
	}
	return views
}

func (h *APIHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode JSON response", slog.String("error", err.Error()))
	}
}

func (h *APIHandler) sendError(w http.ResponseWriter, message string, statusCode int, code string) {
	errorResponse := ErrorResponse{
		Error: message,
		Code:  code,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(errorResponse)
}

func (h *APIHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /account", h.CreateAccountHandler)
	mux.HandleFunc("GET /account", h.ListAccountsHandler)
	mux.HandleFunc("GET /account/max-balance", h.MaxBalanceAccountsHandler)
	mux.HandleFunc("GET /account/{number}", h.GetAccountHandler)
	mux.HandleFunc("POST /operations/process", h.ProcessTransactionHandler)
	mux.HandleFunc("GET /operations/{number}", h.ListTransactionsHandler)
	mux.HandleFunc("GET /api/health", h.HealthCheckHandler)
}
