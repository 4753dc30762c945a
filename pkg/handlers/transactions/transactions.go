package transactions

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/yogami9/databaseTier/pkg/api"
	"github.com/yogami9/databaseTier/pkg/httpx"
	"github.com/yogami9/databaseTier/pkg/mapping"
	"github.com/yogami9/databaseTier/pkg/metrics"
	"github.com/yogami9/databaseTier/pkg/models"
	"github.com/yogami9/databaseTier/pkg/storage"

	"github.com/go-chi/chi/v5"
)

// TransactionsHandler holds the dependencies for transaction-related
// handlers. It reads accounts only to answer the history endpoint's
// account-existence check.
type TransactionsHandler struct {
	Store    storage.TransactionStore
	Accounts storage.AccountReader
}

// NewTransactionsHandler creates a new TransactionsHandler.
func NewTransactionsHandler(store storage.TransactionStore, accounts storage.AccountReader) *TransactionsHandler {
	return &TransactionsHandler{Store: store, Accounts: accounts}
}

// RecordTransaction handles the logic for recording a new transaction.
func (h *TransactionsHandler) RecordTransaction(w http.ResponseWriter, r *http.Request) {
	var newTx api.NewTransaction
	if err := json.NewDecoder(r.Body).Decode(&newTx); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, api.Error{Error: fmt.Sprintf("Invalid transaction data: %v", err)})
		return
	}

	if newTx.AccountNumber == "" || newTx.TransactionType == "" || newTx.Amount == nil || newTx.ResultingBalance == nil {
		httpx.WriteJSON(w, http.StatusBadRequest, api.Error{Error: "Missing required fields"})
		return
	}
	if _, err := models.ParseTransactionType(newTx.TransactionType); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, api.Error{Error: fmt.Sprintf("Invalid transaction data: %v", err)})
		return
	}

	domainTx := mapping.ToDomainNewTransaction(&newTx)

	createdTx, err := h.Store.RecordTransaction(r.Context(), domainTx)
	if err != nil {
		if !errors.Is(err, storage.ErrDuplicateTransaction) {
			slog.Error("failed to record transaction", "err", err)
		}
		httpx.WriteJSON(w, http.StatusInternalServerError, api.Error{Error: "Failed to record transaction"})
		return
	}

	metrics.TransactionsRecorded.WithLabelValues(string(createdTx.TransactionType)).Inc()
	httpx.WriteJSON(w, http.StatusCreated, api.RecordTransactionResponse{
		Message:       "Transaction recorded successfully",
		TransactionId: createdTx.TransactionId,
	})
}

// GetTransactionHistory handles the logic for retrieving an account's
// transaction history. An unknown account yields a 404 with an empty array
// body, never a server error.
func (h *TransactionsHandler) GetTransactionHistory(w http.ResponseWriter, r *http.Request) {
	accountNumber := chi.URLParam(r, "accountNumber")

	if _, err := h.Accounts.GetAccount(r.Context(), accountNumber); err != nil {
		if !errors.Is(err, storage.ErrAccountNotFound) {
			slog.Error("failed to check account for history", "account_number", accountNumber, "err", err)
		}
		httpx.WriteJSON(w, http.StatusNotFound, []*api.Transaction{})
		return
	}

	domainTxs, err := h.Store.GetTransactionHistory(r.Context(), accountNumber)
	if err != nil {
		slog.Error("failed to retrieve transaction history", "account_number", accountNumber, "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, api.Error{Error: "Failed to retrieve transaction history"})
		return
	}

	apiTxs := make([]*api.Transaction, len(domainTxs))
	for i, tx := range domainTxs {
		apiTxs[i] = mapping.ToApiTransaction(&tx)
	}

	httpx.WriteJSON(w, http.StatusOK, apiTxs)
}

// GetTransaction is a reserved gap in the contract: fetching a single
// transaction by id is not provided.
func (h *TransactionsHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusNotImplemented, api.Error{Error: "Getting transaction by ID is not implemented"})
}
