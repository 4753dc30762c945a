package events

import (
	"context"

	"github.com/yogami9/databaseTier/pkg/api"
)

// Publisher defines the interface for a component that announces committed
// transaction records to interested consumers. Publishing is best-effort:
// the store logs a publish failure but never rolls back the write.
type Publisher interface {
	// PublishTransaction emits an event for a transaction that has been
	// durably recorded.
	PublishTransaction(ctx context.Context, tx *api.Transaction) error
}
