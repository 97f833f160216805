package journal

import (
	"context"
	"dispatch-board-service/internal/domain"
	"dispatch-board-service/internal/platform/obs"
	"dispatch-board-service/internal/ports"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Stream entries beyond this are trimmed (approximately) on each append.
const DefaultStreamMaxLen = 10000

// RedisStreamSink appends events to a Redis stream for downstream consumers.
type RedisStreamSink struct {
	Client *redis.Client
	Stream string
	MaxLen int64
}

var _ ports.EventSink = (*RedisStreamSink)(nil)

func NewRedisStreamSink(client *redis.Client, stream string) *RedisStreamSink {
	return &RedisStreamSink{Client: client, Stream: stream, MaxLen: DefaultStreamMaxLen}
}

// Connect to addr and verify it answers PING.
func DialRedis(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		PoolSize:     5,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("dial redis %q: %w", addr, err)
	}
	return client, nil
}

func (s *RedisStreamSink) Publish(ctx context.Context, ev domain.DispatchEvent) (err error) {
	defer obs.Time(ctx, "journal.redis.Publish")(&err)

	if s.Client == nil {
		return errors.New("redis journal: client is nil")
	}

	detail, err := encodeDetail(ev.Detail)
	if err != nil {
		return fmt.Errorf("redis journal: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: s.Stream,
		Values: map[string]any{
			"event_id":      ev.EventID,
			"kind":          string(ev.Kind),
			"assignment_id": ev.AssignmentID,
			"detail":        detail,
			"at":            ev.At.UTC().Format(time.RFC3339Nano),
		},
	}
	if s.MaxLen > 0 {
		args.MaxLen = s.MaxLen
		args.Approx = true
	}

	if err := s.Client.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("redis journal: xadd stream=%s event_id=%s: %w", s.Stream, ev.EventID, err)
	}
	return nil
}
