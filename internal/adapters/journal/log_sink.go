package journal

import (
	"context"
	"dispatch-board-service/internal/domain"
	"dispatch-board-service/internal/ports"

	"github.com/rs/zerolog"
)

// LogSink writes every event as a structured log line.
type LogSink struct {
	Logger zerolog.Logger
}

var _ ports.EventSink = (*LogSink)(nil)

func NewLogSink(logger zerolog.Logger) *LogSink {
	return &LogSink{Logger: logger.With().Str("component", "journal").Logger()}
}

func (s *LogSink) Publish(_ context.Context, ev domain.DispatchEvent) error {
	s.Logger.Info().
		Str("event_id", ev.EventID).
		Str("kind", string(ev.Kind)).
		Str("assignment_id", ev.AssignmentID).
		Fields(detailFields(ev.Detail)).
		Time("at", ev.At).
		Msg("dispatch event")
	return nil
}

func detailFields(detail map[string]string) map[string]any {
	out := make(map[string]any, len(detail))
	for k, v := range detail {
		out["detail_"+k] = v
	}
	return out
}
