// Package notify turns reservation events into notification jobs for the
// external email/SMS sender.
package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"studio-calendar/internal/domain/reservation"
	"studio-calendar/internal/infra/pgquery"
	"studio-calendar/internal/pkg/clock"
	"studio-calendar/internal/pkg/config"
	"studio-calendar/internal/pkg/errs"

	"golang.org/x/time/rate"
)

const JobKind = "reservation_event"

var ErrQueueFull = errs.New("notification queue is full")

type JobWriter interface {
	CreateJob(ctx context.Context, tx pgquery.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

// EventHook runs after an event has been persisted. Hook errors are logged.
type EventHook interface {
	HandleEvent(ctx context.Context, ev reservation.Event) error
}

// Dispatcher buffers events and persists them at a bounded rate.
type Dispatcher struct {
	jobs    JobWriter
	db      pgquery.DBTX
	hooks   []EventHook
	clock   clock.Clock
	logger  *slog.Logger
	limiter *rate.Limiter
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
	queue  chan reservation.Event
	wg     sync.WaitGroup
	stop   context.CancelFunc
}

func NewDispatcher(jobs JobWriter, db pgquery.DBTX, clk clock.Clock, cfg config.NotifyConfig, logger *slog.Logger, hooks ...EventHook) *Dispatcher {
	size := cfg.QueueSize
	if size <= 0 {
		size = 1
	}
	limit := rate.Limit(cfg.RatePerSecond)
	if cfg.RatePerSecond <= 0 {
		limit = rate.Inf
	}
	return &Dispatcher{
		jobs:    jobs,
		db:      db,
		hooks:   hooks,
		clock:   clk,
		logger:  logger,
		limiter: rate.NewLimiter(limit, max(cfg.Burst, 1)),
		timeout: cfg.DeliverTimeout,
		queue:   make(chan reservation.Event, size),
	}
}

// Publish never blocks; when the queue is full the event is dropped.
func (d *Dispatcher) Publish(_ context.Context, ev reservation.Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.logger.Warn("notification dropped after shutdown", "event", string(ev.Type), "request_id", ev.RequestID)
		return
	}
	select {
	case d.queue <- ev:
	default:
		d.logger.Warn("notification dropped",
			"event", string(ev.Type),
			"request_id", ev.RequestID,
			"error", ErrQueueFull.Error())
	}
}

func (d *Dispatcher) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	d.stop = cancel
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.run(ctx)
	}()
}

// Stop drains what is already queued, bounded by ctx.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.stop == nil || d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		d.stop()
		return nil
	case <-ctx.Done():
		d.stop()
		return ctx.Err()
	}
}

func (d *Dispatcher) run(ctx context.Context) {
	for ev := range d.queue {
		if err := d.limiter.Wait(ctx); err != nil {
			d.logger.Warn("notification dropped", "event", string(ev.Type), "request_id", ev.RequestID, "error", err.Error())
			continue
		}
		d.deliver(ctx, ev)
	}
}

func (d *Dispatcher) deliver(ctx context.Context, ev reservation.Event) {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		d.logger.Error("notification encode failed", "event", string(ev.Type), "request_id", ev.RequestID, "error", err.Error())
		return
	}
	if err := d.jobs.CreateJob(ctx, d.db, JobKind, string(ev.Type), payload, d.clock.Now()); err != nil {
		d.logger.Error("notification delivery failed", "event", string(ev.Type), "request_id", ev.RequestID, "error", err.Error())
		return
	}
	d.logger.Info("notification queued",
		"event", string(ev.Type),
		"request_id", ev.RequestID,
		"studio_id", ev.StudioID,
		"status", string(ev.Status))

	for _, h := range d.hooks {
		if err := h.HandleEvent(ctx, ev); err != nil {
			d.logger.Warn("event hook failed", "event", string(ev.Type), "request_id", ev.RequestID, "error", err.Error())
		}
	}
}
