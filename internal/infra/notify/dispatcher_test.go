//go:build unit

package notify

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"studio-calendar/internal/domain/reservation"
	"studio-calendar/internal/infra/pgquery"
	"studio-calendar/internal/pkg/clock"
	"studio-calendar/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedJob struct {
	kind    string
	topic   string
	payload []byte
	runAt   time.Time
}

type fakeJobWriter struct {
	mu   sync.Mutex
	jobs []recordedJob
	err  error
}

func (f *fakeJobWriter) CreateJob(_ context.Context, _ pgquery.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.jobs = append(f.jobs, recordedJob{kind: kind, topic: topic, payload: payload, runAt: runAt})
	return nil
}

func (f *fakeJobWriter) recorded() []recordedJob {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedJob(nil), f.jobs...)
}

type recordingHook struct {
	mu     sync.Mutex
	events []reservation.Event
}

func (h *recordingHook) HandleEvent(_ context.Context, ev reservation.Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, ev)
	return nil
}

func testConfig() config.NotifyConfig {
	return config.NotifyConfig{QueueSize: 4, RatePerSecond: 1000, Burst: 10, DeliverTimeout: time.Second}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func event(t reservation.EventType) reservation.Event {
	return reservation.Event{
		Type:      t,
		RequestID: uuid.New(),
		StudioID:  uuid.New(),
		RoomID:    uuid.New(),
		Status:    reservation.StatusPending,
	}
}

func TestDispatcherDeliversQueuedEvents(t *testing.T) {
	now := time.Date(2026, 3, 9, 3, 0, 0, 0, time.UTC)
	jobs := &fakeJobWriter{}
	hook := &recordingHook{}
	d := NewDispatcher(jobs, nil, clock.NewMockClock(now), testConfig(), discardLogger(), hook)
	d.Start()

	created := event(reservation.EventCreated)
	approved := event(reservation.EventApproved)
	d.Publish(context.Background(), created)
	d.Publish(context.Background(), approved)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, d.Stop(ctx))

	got := jobs.recorded()
	require.Len(t, got, 2)
	assert.Equal(t, JobKind, got[0].kind)
	assert.Equal(t, string(reservation.EventCreated), got[0].topic)
	assert.Equal(t, string(reservation.EventApproved), got[1].topic)
	assert.True(t, got[0].runAt.Equal(now))

	var decoded reservation.Event
	require.NoError(t, json.Unmarshal(got[0].payload, &decoded))
	assert.Equal(t, created.RequestID, decoded.RequestID)

	assert.Len(t, hook.events, 2)
}

func TestDispatcherDropsWhenQueueFull(t *testing.T) {
	jobs := &fakeJobWriter{}
	cfg := testConfig()
	cfg.QueueSize = 2
	d := NewDispatcher(jobs, nil, clock.NewMockClock(time.Now()), cfg, discardLogger())

	for range 5 {
		d.Publish(context.Background(), event(reservation.EventCreated))
	}

	assert.Len(t, d.queue, 2)
}

func TestDispatcherSkipsHooksWhenDeliveryFails(t *testing.T) {
	jobs := &fakeJobWriter{err: assert.AnError}
	hook := &recordingHook{}
	d := NewDispatcher(jobs, nil, clock.NewMockClock(time.Now()), testConfig(), discardLogger(), hook)
	d.Start()

	d.Publish(context.Background(), event(reservation.EventApproved))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, d.Stop(ctx))

	assert.Empty(t, jobs.recorded())
	assert.Empty(t, hook.events)
}

func TestDispatcherPublishAfterStopIsDropped(t *testing.T) {
	jobs := &fakeJobWriter{}
	d := NewDispatcher(jobs, nil, clock.NewMockClock(time.Now()), testConfig(), discardLogger())
	d.Start()
	require.NoError(t, d.Stop(context.Background()))

	assert.NotPanics(t, func() {
		d.Publish(context.Background(), event(reservation.EventCreated))
	})
	assert.Empty(t, jobs.recorded())
}
