package storage

import (
	"context"

	"github.com/yogami9/databaseTier/pkg/models"
)

// AccountReader defines the read-only half of account access.
type AccountReader interface {
	// GetAccount retrieves an account by its account number.
	// Returns ErrAccountNotFound when no such account exists.
	GetAccount(ctx context.Context, accountNumber string) (*models.Account, error)

	// ListAccounts retrieves every account. Order is store-dependent and the
	// result is not paginated; intended for small datasets only.
	ListAccounts(ctx context.Context) ([]models.Account, error)
}

// AccountStore defines the interface for managing accounts. There is
// deliberately no delete operation: account deletion is rejected by policy at
// the API layer and never reaches the store.
type AccountStore interface {
	AccountReader

	// CreateAccount inserts a new account with a server-assigned creation
	// date. Returns ErrAccountExists when the account number is taken. A
	// positive initial balance is additionally recorded as an initial-deposit
	// transaction, best-effort.
	CreateAccount(ctx context.Context, acct *models.Account) (*models.Account, error)

	// UpdateBalance sets the account's balance to newBalance. Returns
	// ErrAccountNotFound when the account does not exist and
	// ErrBalanceUnchanged when newBalance equals the stored value.
	UpdateBalance(ctx context.Context, accountNumber string, newBalance float64) error
}
