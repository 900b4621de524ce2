package queries

import (
	"context"
	"time"

	"studio-calendar/internal/domain/happyhour"
	"studio-calendar/internal/domain/pricing"
	"studio-calendar/internal/domain/studio"
	"studio-calendar/internal/pkg/config"
	"studio-calendar/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidRange   = errs.Mark(errs.New("range end must be after its start"), errs.ErrValidation)
	ErrRangeTooLong   = errs.Mark(errs.New("requested range is too long"), errs.ErrValidation)
	ErrUnknownRoom    = errs.Mark(errs.New("room does not belong to studio"), errs.ErrNotFound)
	ErrNotStudioOwner = errs.Mark(errs.New("only the studio owner can view this"), errs.ErrForbidden)
)

type CalendarReadStore interface {
	StudioByID(ctx context.Context, id uuid.UUID) (*studio.Studio, error)
	RoomsByStudio(ctx context.Context, studioID uuid.UUID) ([]studio.Room, error)
	BlocksInRange(ctx context.Context, roomIDs []uuid.UUID, from, to time.Time) ([]*CalendarBlockView, error)
	PendingRequestsInRange(ctx context.Context, roomIDs []uuid.UUID, from, to time.Time) ([]*ReservationRequestView, error)
	HappyHourRules(ctx context.Context, roomIDs []uuid.UUID) ([]happyhour.Rule, error)
}

type CalendarQueries interface {
	// ListCalendarEntries returns blocks and expanded happy hours for the
	// rooms (all studio rooms when roomIDs is empty). Owners also see notes
	// and pending requests.
	ListCalendarEntries(ctx context.Context, studioID uuid.UUID, roomIDs []uuid.UUID, from, to time.Time, viewer *uuid.UUID) (*CalendarView, error)
}

type calendarQueriesImpl struct {
	store        CalendarReadStore
	maxRangeDays int
}

func NewCalendarQueries(store CalendarReadStore, cfg config.Config) CalendarQueries {
	return &calendarQueriesImpl{store: store, maxRangeDays: cfg.Calendar.MaxRangeDays}
}

func (q *calendarQueriesImpl) ListCalendarEntries(ctx context.Context, studioID uuid.UUID, roomIDs []uuid.UUID, from, to time.Time, viewer *uuid.UUID) (*CalendarView, error) {
	if err := validateRange(from, to, q.maxRangeDays); err != nil {
		return nil, err
	}
	st, err := q.store.StudioByID(ctx, studioID)
	if err != nil {
		return nil, err
	}
	zone, err := st.Settings.Zone()
	if err != nil {
		return nil, err
	}
	rooms, err := q.store.RoomsByStudio(ctx, studioID)
	if err != nil {
		return nil, err
	}
	rooms, err = selectRooms(rooms, roomIDs)
	if err != nil {
		return nil, err
	}
	ids := roomIDList(rooms)

	view := &CalendarView{
		StudioID:        studioID,
		TimeZone:        zone.Location.String(),
		DayCutoffHour:   zone.CutoffHour,
		From:            from,
		To:              to,
		Rooms:           make([]RoomView, 0, len(rooms)),
		Blocks:          []*CalendarBlockView{},
		PendingRequests: []*ReservationRequestView{},
		HappyHours:      []HappyHourInstanceView{},
	}
	for _, r := range rooms {
		view.Rooms = append(view.Rooms, RoomView{
			ID:          r.ID,
			Name:        r.Name,
			Rates:       pricing.Normalize(r.Rates),
			WeeklyHours: r.EffectiveHours(st.Settings),
		})
	}
	if len(ids) == 0 {
		return view, nil
	}

	blocks, err := q.store.BlocksInRange(ctx, ids, from, to)
	if err != nil {
		return nil, err
	}
	isOwner := viewer != nil && st.IsOwner(*viewer)
	for _, b := range blocks {
		if !isOwner {
			b.Note = ""
			b.CreatedBy = nil
		}
		view.Blocks = append(view.Blocks, b)
	}

	if isOwner {
		pending, err := q.store.PendingRequestsInRange(ctx, ids, from, to)
		if err != nil {
			return nil, err
		}
		view.PendingRequests = append(view.PendingRequests, pending...)
	}

	if st.Settings.HappyHourEnabled {
		rules, err := q.store.HappyHourRules(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, s := range happyhour.Expand(rules, from, to, zone) {
			view.HappyHours = append(view.HappyHours, HappyHourInstanceView{RoomID: s.RoomID, StartAt: s.StartAt, EndAt: s.EndAt})
		}
	}
	return view, nil
}

func validateRange(from, to time.Time, maxDays int) error {
	if !to.After(from) {
		return ErrInvalidRange
	}
	if maxDays > 0 && to.Sub(from) > time.Duration(maxDays)*24*time.Hour {
		return errs.Wrapf(ErrRangeTooLong, "max %d days", maxDays)
	}
	return nil
}

func selectRooms(rooms []studio.Room, wanted []uuid.UUID) ([]studio.Room, error) {
	if len(wanted) == 0 {
		return rooms, nil
	}
	byID := make(map[uuid.UUID]studio.Room, len(rooms))
	for _, r := range rooms {
		byID[r.ID] = r
	}
	out := make([]studio.Room, 0, len(wanted))
	seen := make(map[uuid.UUID]bool, len(wanted))
	for _, id := range wanted {
		r, ok := byID[id]
		if !ok {
			return nil, errs.Wrapf(ErrUnknownRoom, "room %s", id)
		}
		if !seen[id] {
			seen[id] = true
			out = append(out, r)
		}
	}
	return out, nil
}

func roomIDList(rooms []studio.Room) []uuid.UUID {
	ids := make([]uuid.UUID, len(rooms))
	for i, r := range rooms {
		ids[i] = r.ID
	}
	return ids
}

func rulesByRoom(rules []happyhour.Rule) map[uuid.UUID][]happyhour.Rule {
	out := make(map[uuid.UUID][]happyhour.Rule)
	for _, r := range rules {
		out[r.RoomID] = append(out[r.RoomID], r)
	}
	return out
}
