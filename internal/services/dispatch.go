package services

import (
	"context"
	"dispatch-board-service/internal/domain"
	"dispatch-board-service/internal/platform/metrics"
	"dispatch-board-service/internal/platform/obs"
	"dispatch-board-service/internal/ports"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DispatchService is what the presentation surface talks to.
//
// It runs board operations on the AssignmentStore and, once an operation has
// been applied, reports it to the event sink and metrics. Sink failures are
// logged only: the board change has already happened and stays.
type DispatchService struct {
	Store    *AssignmentStore
	Sink     ports.EventSink
	Notifier ports.Notifier
	Maps     ports.MapLinkBuilder
	Metrics  ports.DispatchMetrics

	Now        func() time.Time
	NewEventID func() string
}

func NewDispatchService(
	store *AssignmentStore,
	sink ports.EventSink,
	notifier ports.Notifier,
	maps ports.MapLinkBuilder,
	m ports.DispatchMetrics,
) *DispatchService {
	if m == nil {
		m = metrics.NewNop()
	}
	m.SetBoardSize(store.Len())

	return &DispatchService{
		Store:      store,
		Sink:       sink,
		Notifier:   notifier,
		Maps:       maps,
		Metrics:    m,
		Now:        time.Now,
		NewEventID: uuid.NewString,
	}
}

func (s *DispatchService) List(ctx context.Context) []domain.Assignment {
	defer obs.Time(ctx, "dispatch.List")(nil)

	return s.Store.ListAssignments()
}

func (s *DispatchService) Add(ctx context.Context, req AddAssignmentRequest) (_ domain.Assignment, err error) {
	defer obs.Time(ctx, "dispatch.Add")(&err)
	defer func() { s.observe("add", err) }()

	a, err := s.Store.AddAssignment(req)
	if err != nil {
		return domain.Assignment{}, err
	}

	s.publish(ctx, domain.EventAdded, a.ID, map[string]string{
		"driver":        a.Driver,
		"route":         a.Route,
		"license_class": string(req.LicenseClass),
		"vehicle_type":  string(a.VehicleType),
		"cargo_type":    string(a.CargoType),
	})
	return a, nil
}

// Reorder moves movedID into targetID's slot and returns the resulting board.
func (s *DispatchService) Reorder(ctx context.Context, movedID, targetID string) (_ []domain.Assignment, err error) {
	defer obs.Time(ctx, "dispatch.Reorder")(&err)
	defer func() { s.observe("reorder", err) }()

	list, err := s.Store.ReorderAssignment(movedID, targetID)
	if err != nil {
		return nil, err
	}

	if movedID != targetID {
		s.publish(ctx, domain.EventReordered, movedID, map[string]string{"target_id": targetID})
	}
	return list, nil
}

func (s *DispatchService) Optimize(ctx context.Context, id string) (_ domain.Assignment, err error) {
	defer obs.Time(ctx, "dispatch.Optimize")(&err)
	defer func() { s.observe("optimize", err) }()

	a, err := s.Store.AnnotateWithHint(id)
	if err != nil {
		return domain.Assignment{}, err
	}

	s.publish(ctx, domain.EventAnnotated, a.ID, map[string]string{"hint": a.AIHint})
	return a, nil
}

// Notify sends the assignment's route instruction to its driver and returns
// the confirmation text.
func (s *DispatchService) Notify(ctx context.Context, id string) (_ string, err error) {
	defer obs.Time(ctx, "dispatch.Notify")(&err)
	defer func() { s.observe("notify", err) }()

	a, err := s.Store.FindAssignment(id)
	if err != nil {
		return "", err
	}

	msg, err := s.Notifier.Notify(ctx, a.Driver, a.Route)
	if err != nil {
		return "", fmt.Errorf("notify assignment %s: %w", a.ID, err)
	}

	s.publish(ctx, domain.EventNotified, a.ID, map[string]string{"message": msg})
	return msg, nil
}

func (s *DispatchService) MapLink(ctx context.Context, id string) (_ string, err error) {
	defer obs.Time(ctx, "dispatch.MapLink")(&err)

	a, err := s.Store.FindAssignment(id)
	if err != nil {
		return "", err
	}
	return s.Maps.MapLink(a.Route), nil
}

func (s *DispatchService) publish(ctx context.Context, kind domain.EventKind, assignmentID string, detail map[string]string) {
	if s.Sink == nil {
		return
	}

	ev := domain.DispatchEvent{
		EventID:      s.NewEventID(),
		Kind:         kind,
		AssignmentID: assignmentID,
		Detail:       detail,
		At:           s.Now().UTC(),
	}
	if err := s.Sink.Publish(ctx, ev); err != nil {
		log.Warn().
			Str("req_id", obs.RequestID(ctx)).
			Str("event_id", ev.EventID).
			Str("kind", string(kind)).
			Err(err).
			Msg("publish dispatch event failed")
	}
}

func (s *DispatchService) observe(op string, err error) {
	result := "ok"
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrValidation):
		result = "invalid"
	case errors.Is(err, domain.ErrNotFound):
		result = "not_found"
	default:
		result = "error"
	}

	s.Metrics.ObserveOperation(op, result)
	s.Metrics.SetBoardSize(s.Store.Len())
}
