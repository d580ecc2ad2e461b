package portfolio

import (
	"context"

	"github.com/folioforge/folioforge/adapters/event"
)

// EventPublisher is satisfied by the Kafka producer client. Event emission is
// best-effort: a failed publish is logged, never surfaced to the user, and the
// worker's next reconciliation pass covers the gap.
type EventPublisher interface {
	PublishPortfolioEvent(ctx context.Context, payload event.PortfolioEventPayload) error
}
