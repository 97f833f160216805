package metrics

import "dispatch-board-service/internal/ports"

// NopMetrics discards all dispatch metrics. Used in tests and when metrics are off.
type NopMetrics struct{}

var _ ports.DispatchMetrics = (*NopMetrics)(nil)

func NewNop() *NopMetrics { return &NopMetrics{} }

func (n *NopMetrics) ObserveOperation(_ /* op */, _ /* result */ string) {}

func (n *NopMetrics) SetBoardSize(_ /* n */ int) {}
