//go:build unit

package commands_test

import (
	"context"
	"sync"
	"time"

	"studio-calendar/internal/domain/calendar"
	"studio-calendar/internal/domain/happyhour"
	"studio-calendar/internal/domain/reservation"
	"studio-calendar/internal/domain/studio"
	"studio-calendar/internal/infra/pgquery"
	"studio-calendar/internal/pkg/errs"
	"studio-calendar/internal/usecase/shared"

	"github.com/google/uuid"
)

// memStore is an in-memory UnitOfWork. Room locks are real mutexes held
// until the surrounding Within returns, so concurrent callers serialise the
// same way they do on the room row in Postgres.
type memStore struct {
	mu       sync.Mutex
	studios  map[uuid.UUID]*studio.Studio
	rooms    map[uuid.UUID]*studio.Room
	profiles map[uuid.UUID]*shared.ProfileSnapshot
	rules    map[uuid.UUID][]happyhour.Rule
	blocks   []*calendar.Block
	requests map[uuid.UUID]*reservation.Request
	keys     map[string]shared.IdempotencyRecord

	lockMu    sync.Mutex
	roomLocks map[uuid.UUID]*sync.Mutex

	replaceErr error
}

func newMemStore() *memStore {
	return &memStore{
		studios:   make(map[uuid.UUID]*studio.Studio),
		rooms:     make(map[uuid.UUID]*studio.Room),
		profiles:  make(map[uuid.UUID]*shared.ProfileSnapshot),
		rules:     make(map[uuid.UUID][]happyhour.Rule),
		requests:  make(map[uuid.UUID]*reservation.Request),
		keys:      make(map[string]shared.IdempotencyRecord),
		roomLocks: make(map[uuid.UUID]*sync.Mutex),
	}
}

func (s *memStore) addStudio(st *studio.Studio) { s.studios[st.ID] = st }
func (s *memStore) addRoom(r *studio.Room)      { s.rooms[r.ID] = r }

func (s *memStore) blockCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.blocks)
}

func (s *memStore) request(id uuid.UUID) *reservation.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[id]
}

func (s *memStore) requestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func (s *memStore) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := &memTx{store: s}
	defer tx.release()
	return fn(ctx, tx)
}

func (s *memStore) CommandReads() shared.CommandReads {
	return s
}

func (s *memStore) StudioByID(_ context.Context, id uuid.UUID) (*studio.Studio, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.studios[id]
	if !ok {
		return nil, errs.Mark(errs.New("studio not found"), errs.ErrNotFound)
	}
	return st, nil
}

func (s *memStore) RoomByID(_ context.Context, id uuid.UUID) (*studio.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[id]
	if !ok {
		return nil, errs.Mark(errs.New("room not found"), errs.ErrNotFound)
	}
	return r, nil
}

func (s *memStore) ProfileByAccountID(_ context.Context, accountID uuid.UUID) (*shared.ProfileSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[accountID]
	if !ok {
		return nil, errs.Mark(errs.New("profile not found"), errs.ErrNotFound)
	}
	return p, nil
}

func (s *memStore) HappyHourRules(_ context.Context, roomID uuid.UUID) ([]happyhour.Rule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]happyhour.Rule(nil), s.rules[roomID]...), nil
}

func (s *memStore) ActiveEntries(_ context.Context, roomID uuid.UUID, start, end time.Time, excludeRequestID *uuid.UUID) ([]calendar.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []calendar.Entry
	for _, b := range s.blocks {
		if b.RoomID() == roomID && calendar.Overlaps(b.StartAt(), b.EndAt(), start, end) {
			out = append(out, b.Entry())
		}
	}
	for _, r := range s.requests {
		if r.RoomID() != roomID || !r.IsBlocking() {
			continue
		}
		if excludeRequestID != nil && r.ID() == *excludeRequestID {
			continue
		}
		// approved requests are already covered by their block
		if r.Status() == reservation.StatusApproved {
			continue
		}
		slot := r.Slot()
		if calendar.Overlaps(slot.Start(), slot.End(), start, end) {
			out = append(out, calendar.Entry{
				ID: r.ID(), RoomID: r.RoomID(), StartAt: slot.Start(), EndAt: slot.End(),
				Type: calendar.TypeReservation, Status: calendar.Status(r.Status()),
			})
		}
	}
	return out, nil
}

type memTx struct {
	store *memStore
	held  []*sync.Mutex
}

func (t *memTx) release() {
	for i := len(t.held) - 1; i >= 0; i-- {
		t.held[i].Unlock()
	}
	t.held = nil
}

func (t *memTx) Rooms() shared.RoomRepository               { return t }
func (t *memTx) Blocks() shared.CalendarBlockRepository     { return (*memBlocks)(t) }
func (t *memTx) Reservations() shared.ReservationRepository { return (*memRequests)(t) }
func (t *memTx) HappyHours() shared.HappyHourRepository     { return (*memRules)(t) }
func (t *memTx) Idempotency() shared.IdempotencyRepository  { return (*memKeys)(t) }
func (t *memTx) Reads() shared.CommandReads                 { return t.store }
func (t *memTx) DB() pgquery.DBTX                           { return nil }

func (t *memTx) Lock(_ context.Context, _ pgquery.DBTX, roomID uuid.UUID) error {
	t.store.lockMu.Lock()
	m, ok := t.store.roomLocks[roomID]
	if !ok {
		m = &sync.Mutex{}
		t.store.roomLocks[roomID] = m
	}
	t.store.lockMu.Unlock()
	m.Lock()
	t.held = append(t.held, m)
	return nil
}

type memBlocks memTx

func (b *memBlocks) Create(_ context.Context, _ pgquery.DBTX, block *calendar.Block) error {
	b.store.mu.Lock()
	defer b.store.mu.Unlock()
	b.store.blocks = append(b.store.blocks, block)
	return nil
}

type memRequests memTx

func (r *memRequests) Create(_ context.Context, _ pgquery.DBTX, req *reservation.Request) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.requests[req.ID()] = req
	return nil
}

func (r *memRequests) FindForUpdate(_ context.Context, _ pgquery.DBTX, id uuid.UUID) (*reservation.Request, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	req, ok := r.store.requests[id]
	if !ok {
		return nil, errs.Mark(errs.New("reservation request not found"), errs.ErrNotFound)
	}
	return req, nil
}

func (r *memRequests) SaveDecision(_ context.Context, _ pgquery.DBTX, req *reservation.Request) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.requests[req.ID()] = req
	return nil
}

type memRules memTx

func (h *memRules) ReplaceForRoom(_ context.Context, _ pgquery.DBTX, roomID uuid.UUID, rules []happyhour.Rule) error {
	if h.store.replaceErr != nil {
		return h.store.replaceErr
	}
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	h.store.rules[roomID] = append([]happyhour.Rule(nil), rules...)
	return nil
}

type memKeys memTx

func (k *memKeys) Find(_ context.Context, _ pgquery.DBTX, roomID uuid.UUID, key string, now time.Time) (*shared.IdempotencyRecord, error) {
	k.store.mu.Lock()
	defer k.store.mu.Unlock()
	rec, ok := k.store.keys[roomID.String()+"/"+key]
	if !ok || !rec.ExpiresAt.After(now) {
		return nil, errs.Mark(errs.New("idempotency key not found"), errs.ErrNotFound)
	}
	return &rec, nil
}

func (k *memKeys) Save(_ context.Context, _ pgquery.DBTX, rec shared.IdempotencyRecord, _ time.Time) error {
	k.store.mu.Lock()
	defer k.store.mu.Unlock()
	k.store.keys[rec.RoomID.String()+"/"+rec.Key] = rec
	return nil
}

// recordingPublisher keeps events in publish order.
type recordingPublisher struct {
	mu     sync.Mutex
	events []reservation.Event
}

func (p *recordingPublisher) Publish(_ context.Context, ev reservation.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
}

func (p *recordingPublisher) types() []reservation.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]reservation.EventType, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

type countingMetrics struct {
	mu        sync.Mutex
	created   map[reservation.Status]int
	decided   int
	conflicts int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{created: make(map[reservation.Status]int)}
}

func (m *countingMetrics) ReservationCreated(s reservation.Status) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created[s]++
}

func (m *countingMetrics) ReservationDecided(reservation.Action, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.decided++
}

func (m *countingMetrics) BookingConflict() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conflicts++
}
