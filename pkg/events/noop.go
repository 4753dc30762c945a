package events

import (
	"context"

	"github.com/yogami9/databaseTier/pkg/api"
)

// NoOpPublisher is a publisher that does nothing. It is wired in when no
// queue is configured.
type NoOpPublisher struct{}

// PublishTransaction does nothing.
func (p *NoOpPublisher) PublishTransaction(ctx context.Context, tx *api.Transaction) error {
	return nil
}
