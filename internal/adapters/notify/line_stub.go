package notify

import (
	"context"
	"dispatch-board-service/internal/platform/obs"
	"dispatch-board-service/internal/ports"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// LineStubNotifier stands in for a LINE push integration. Nothing leaves the
// process: the instruction is logged and a confirmation text is returned.
type LineStubNotifier struct {
	Logger zerolog.Logger
}

var _ ports.Notifier = (*LineStubNotifier)(nil)

func NewLineStubNotifier(logger zerolog.Logger) *LineStubNotifier {
	return &LineStubNotifier{Logger: logger.With().Str("component", "notify").Logger()}
}

func (n *LineStubNotifier) Notify(ctx context.Context, driver string, route string) (string, error) {
	if strings.TrimSpace(driver) == "" {
		return "", errors.New("line notify: driver must not be empty")
	}

	msg := fmt.Sprintf("LINE通知送信：%sさんに「%s」の指示を送信しました（※仮実装）", driver, route)
	n.Logger.Info().
		Str("req_id", obs.RequestID(ctx)).
		Str("driver", driver).
		Str("route", route).
		Msg("stub notification sent")

	return msg, nil
}
