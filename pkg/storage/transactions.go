package storage

import (
	"context"

	"github.com/yogami9/databaseTier/pkg/models"
)

// TransactionStore defines the interface for the append-only transaction
// record. Records are never mutated or deleted, and there is no
// get-by-id operation in the contract.
type TransactionStore interface {
	// RecordTransaction inserts a new transaction record with a
	// server-assigned timestamp, generating an id when the caller did not
	// supply one. Returns ErrDuplicateTransaction when the id is taken.
	RecordTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)

	// GetTransactionHistory retrieves every record where the account appears
	// as the primary account, the source, or the destination, sorted
	// ascending by timestamp. Records whose stored type falls outside the
	// recognized set are skipped, not fatal.
	GetTransactionHistory(ctx context.Context, accountNumber string) ([]models.Transaction, error)
}
