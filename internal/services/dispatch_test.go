package services

import (
	"context"
	"dispatch-board-service/internal/adapters/hints"
	"dispatch-board-service/internal/adapters/maps"
	"dispatch-board-service/internal/domain"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	events []domain.DispatchEvent
	err    error
}

func (r *recordingSink) Publish(_ context.Context, ev domain.DispatchEvent) error {
	r.events = append(r.events, ev)
	return r.err
}

type fakeNotifier struct {
	err error
}

func (f *fakeNotifier) Notify(_ context.Context, driver, route string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return driver + ":" + route, nil
}

type recordingMetrics struct {
	ops  map[string]int
	size int
}

func (m *recordingMetrics) ObserveOperation(op, result string) {
	if m.ops == nil {
		m.ops = map[string]int{}
	}
	m.ops[op+"/"+result]++
}

func (m *recordingMetrics) SetBoardSize(n int) { m.size = n }

type dispatchFixture struct {
	svc     *DispatchService
	sink    *recordingSink
	notify  *fakeNotifier
	metrics *recordingMetrics
}

func newDispatchFixture(t *testing.T) dispatchFixture {
	t.Helper()

	src, err := hints.NewSequenceSource([]string{"use the bypass"})
	require.NoError(t, err)
	store, err := NewAssignmentStore(seedABC(), src)
	require.NoError(t, err)

	f := dispatchFixture{
		sink:    &recordingSink{},
		notify:  &fakeNotifier{},
		metrics: &recordingMetrics{},
	}
	f.svc = NewDispatchService(store, f.sink, f.notify, maps.NewGoogleMapsLinkBuilder("https://maps.test/dir"), f.metrics)

	seq := 0
	f.svc.NewEventID = func() string { seq++; return "evt-" + strconv.Itoa(seq) }
	f.svc.Now = func() time.Time { return time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC) }

	return f
}

func TestDispatchAddPublishesEvent(t *testing.T) {
	f := newDispatchFixture(t)
	require.Equal(t, 3, f.metrics.size)

	a, err := f.svc.Add(context.Background(), AddAssignmentRequest{
		Driver: "佐藤", Route: "X→Y", LicenseClass: domain.LicenseStandard,
		VehicleType: domain.SmallTruck, CargoType: domain.CargoDry,
	})
	require.NoError(t, err)
	require.Equal(t, "4", a.ID)

	require.Len(t, f.sink.events, 1)
	ev := f.sink.events[0]
	require.Equal(t, "evt-1", ev.EventID)
	require.Equal(t, domain.EventAdded, ev.Kind)
	require.Equal(t, "4", ev.AssignmentID)
	require.Equal(t, "Standard", ev.Detail["license_class"])
	require.Equal(t, 1, f.metrics.ops["add/ok"])
	require.Equal(t, 4, f.metrics.size)
}

func TestDispatchAddInvalidSkipsEvent(t *testing.T) {
	f := newDispatchFixture(t)

	_, err := f.svc.Add(context.Background(), AddAssignmentRequest{
		Driver: "D", Route: "X→Y", LicenseClass: domain.LicenseMedium,
		VehicleType: domain.LargeTruck, CargoType: domain.CargoDry,
	})
	require.ErrorIs(t, err, domain.ErrValidation)
	require.Empty(t, f.sink.events)
	require.Equal(t, 1, f.metrics.ops["add/invalid"])
}

func TestDispatchReorder(t *testing.T) {
	f := newDispatchFixture(t)

	list, err := f.svc.Reorder(context.Background(), "3", "1")
	require.NoError(t, err)
	require.Equal(t, []string{"3", "1", "2"}, ids(list))
	require.Len(t, f.sink.events, 1)
	require.Equal(t, map[string]string{"target_id": "1"}, f.sink.events[0].Detail)

	// Self-moves change nothing and are not journaled.
	_, err = f.svc.Reorder(context.Background(), "2", "2")
	require.NoError(t, err)
	require.Len(t, f.sink.events, 1)

	_, err = f.svc.Reorder(context.Background(), "2", "42")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.Equal(t, 1, f.metrics.ops["reorder/not_found"])
}

func TestDispatchOptimize(t *testing.T) {
	f := newDispatchFixture(t)

	a, err := f.svc.Optimize(context.Background(), "1")
	require.NoError(t, err)
	require.Equal(t, "use the bypass", a.AIHint)
	require.Equal(t, domain.EventAnnotated, f.sink.events[0].Kind)
	require.Equal(t, "use the bypass", f.sink.events[0].Detail["hint"])
}

func TestDispatchSinkFailureDoesNotFailOperation(t *testing.T) {
	f := newDispatchFixture(t)
	f.sink.err = errors.New("journal down")

	a, err := f.svc.Optimize(context.Background(), "2")
	require.NoError(t, err)
	require.True(t, a.Annotated())
	require.True(t, f.svc.List(context.Background())[1].Annotated())
}

func TestDispatchNotify(t *testing.T) {
	f := newDispatchFixture(t)

	msg, err := f.svc.Notify(context.Background(), "2")
	require.NoError(t, err)
	require.Equal(t, "B:b1→b2", msg)
	require.Equal(t, domain.EventNotified, f.sink.events[0].Kind)

	_, err = f.svc.Notify(context.Background(), "99")
	require.ErrorIs(t, err, domain.ErrNotFound)

	f.notify.err = errors.New("line unreachable")
	_, err = f.svc.Notify(context.Background(), "1")
	require.ErrorContains(t, err, "line unreachable")
	require.Equal(t, 1, f.metrics.ops["notify/error"])
}

func TestDispatchMapLink(t *testing.T) {
	f := newDispatchFixture(t)

	url, err := f.svc.MapLink(context.Background(), "1")
	require.NoError(t, err)
	require.Equal(t, "https://maps.test/dir/a1/a2", url)

	_, err = f.svc.MapLink(context.Background(), "0")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDispatchWithoutMetricsOrSink(t *testing.T) {
	src, err := hints.NewSequenceSource([]string{"h"})
	require.NoError(t, err)
	store, err := NewAssignmentStore(seedABC(), src)
	require.NoError(t, err)

	svc := NewDispatchService(store, nil, &fakeNotifier{}, maps.NewGoogleMapsLinkBuilder("https://maps.test"), nil)

	_, err = svc.Reorder(context.Background(), "1", "3")
	require.NoError(t, err)
	_, err = svc.Optimize(context.Background(), "nope")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
