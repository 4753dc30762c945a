package accounts

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/yogami9/databaseTier/pkg/api"
	"github.com/yogami9/databaseTier/pkg/httpx"
	"github.com/yogami9/databaseTier/pkg/mapping"
	"github.com/yogami9/databaseTier/pkg/metrics"
	"github.com/yogami9/databaseTier/pkg/storage"
)

// AccountsHandler holds the dependencies for account-related handlers.
type AccountsHandler struct {
	Store storage.AccountStore
}

// NewAccountsHandler creates a new AccountsHandler.
func NewAccountsHandler(store storage.AccountStore) *AccountsHandler {
	return &AccountsHandler{Store: store}
}

// CreateAccount handles the logic for creating a new account.
func (h *AccountsHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var newAcct api.NewAccount
	if err := json.NewDecoder(r.Body).Decode(&newAcct); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, api.Error{Error: fmt.Sprintf("Invalid request body: %v", err)})
		return
	}

	if newAcct.AccountNumber == "" || newAcct.AccountHolderName == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, api.Error{Error: "accountNumber and accountHolderName are required"})
		return
	}

	domainAcct := mapping.ToDomainNewAccount(&newAcct)

	if _, err := h.Store.CreateAccount(r.Context(), domainAcct); err != nil {
		if !errors.Is(err, storage.ErrAccountExists) {
			slog.Error("account creation failed", "account_number", newAcct.AccountNumber, "err", err)
		}
		// The contract reports every create failure as a conflict.
		httpx.WriteJSON(w, http.StatusConflict, api.Error{
			Error:         "Account already exists or creation failed",
			AccountNumber: newAcct.AccountNumber,
		})
		return
	}

	metrics.AccountsCreated.Inc()
	httpx.WriteJSON(w, http.StatusCreated, api.CreateAccountResponse{
		Message:       "Account created successfully",
		AccountNumber: newAcct.AccountNumber,
	})
}

// ListAccounts handles the logic for retrieving all accounts.
func (h *AccountsHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	domainAccts, err := h.Store.ListAccounts(r.Context())
	if err != nil {
		slog.Error("failed to list accounts", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, api.Error{Error: "Failed to retrieve accounts"})
		return
	}

	apiAccts := make([]*api.Account, len(domainAccts))
	for i, acct := range domainAccts {
		apiAccts[i] = mapping.ToApiAccount(&acct)
	}

	httpx.WriteJSON(w, http.StatusOK, apiAccts)
}

// GetAccount handles the logic for retrieving a single account.
func (h *AccountsHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	accountNumber := chi.URLParam(r, "accountNumber")

	domainAcct, err := h.Store.GetAccount(r.Context(), accountNumber)
	if err != nil {
		if !errors.Is(err, storage.ErrAccountNotFound) {
			slog.Error("failed to retrieve account", "account_number", accountNumber, "err", err)
		}
		httpx.WriteJSON(w, http.StatusNotFound, api.Error{
			Error:         "Account not found",
			AccountNumber: accountNumber,
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, mapping.ToApiAccount(domainAcct))
}

// UpdateBalance handles the logic for setting an account's balance.
func (h *AccountsHandler) UpdateBalance(w http.ResponseWriter, r *http.Request) {
	accountNumber := chi.URLParam(r, "accountNumber")

	var body api.UpdateBalance
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, api.Error{Error: fmt.Sprintf("Invalid request body: %v", err)})
		return
	}
	if body.Balance == nil {
		httpx.WriteJSON(w, http.StatusBadRequest, api.Error{Error: "Balance value is required"})
		return
	}

	err := h.Store.UpdateBalance(r.Context(), accountNumber, *body.Balance)
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusOK, api.UpdateBalanceResponse{
			Message:       "Balance updated successfully",
			AccountNumber: accountNumber,
			NewBalance:    *body.Balance,
		})
	case errors.Is(err, storage.ErrAccountNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, api.Error{
			Error:         "Account not found",
			AccountNumber: accountNumber,
		})
	default:
		// ErrBalanceUnchanged lands here too: the wire contract keeps the
		// historical "no-op update is a failure" behavior.
		if !errors.Is(err, storage.ErrBalanceUnchanged) {
			slog.Error("failed to update balance", "account_number", accountNumber, "err", err)
		}
		httpx.WriteJSON(w, http.StatusInternalServerError, api.Error{
			Error:         "Failed to update balance",
			AccountNumber: accountNumber,
		})
	}
}

// DeleteAccount rejects every deletion request. Account deletion is
// unsupported by policy, not a missing feature.
func (h *AccountsHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	accountNumber := chi.URLParam(r, "accountNumber")
	httpx.WriteJSON(w, http.StatusMethodNotAllowed, api.Error{
		Error:         "Account deletion is not supported",
		AccountNumber: accountNumber,
	})
}
