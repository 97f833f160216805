package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPrometheusCollectorRecords(t *testing.T) {
	reg := prometheus.NewRegistry()
	p, err := NewPrometheus(reg, "test")
	require.NoError(t, err)

	p.ObserveOperation("add", "ok")
	p.ObserveOperation("add", "ok")
	p.ObserveOperation("add", "invalid")
	p.SetBoardSize(4)

	require.Equal(t, 2.0, testutil.ToFloat64(p.operations.WithLabelValues("add", "ok")))
	require.Equal(t, 1.0, testutil.ToFloat64(p.operations.WithLabelValues("add", "invalid")))
	require.Equal(t, 4.0, testutil.ToFloat64(p.boardSize))
}

func TestPrometheusDoubleRegistrationFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPrometheus(reg, "")
	require.NoError(t, err)

	_, err = NewPrometheus(reg, "")
	require.Error(t, err)
}
