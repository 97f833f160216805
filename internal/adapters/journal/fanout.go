package journal

import (
	"context"
	"dispatch-board-service/internal/domain"
	"dispatch-board-service/internal/ports"
	"errors"
)

// Fanout publishes each event to every sink, continuing past failures.
type Fanout []ports.EventSink

var _ ports.EventSink = (Fanout)(nil)

func (f Fanout) Publish(ctx context.Context, ev domain.DispatchEvent) error {
	var errs []error
	for _, s := range f {
		if err := s.Publish(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
