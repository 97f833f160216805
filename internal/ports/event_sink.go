package ports

import (
	"context"
	"dispatch-board-service/internal/domain"
)

// Port: a destination for completed board operations (audit trail, stream, log).
type EventSink interface {
	// Record a single event. Failures must not undo the board operation.
	Publish(ctx context.Context, ev domain.DispatchEvent) error
}
