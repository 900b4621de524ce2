package queries

import (
	"context"
	"log/slog"
	"time"

	"studio-calendar/internal/domain/calendar"
	"studio-calendar/internal/domain/occupancy"
	"studio-calendar/internal/domain/studio"
	"studio-calendar/internal/pkg/clock"
	"studio-calendar/internal/pkg/config"

	"github.com/google/uuid"
)

// OccupancyCache stores computed summaries. Get returns (nil, nil) on a miss.
type OccupancyCache interface {
	Get(ctx context.Context, studioID uuid.UUID) (*OccupancySummaryView, error)
	Set(ctx context.Context, summary *OccupancySummaryView) error
}

type OccupancyQueries interface {
	GetOccupancySummary(ctx context.Context, studioID uuid.UUID, viewer uuid.UUID) (*OccupancySummaryView, error)
}

type occupancyQueriesImpl struct {
	store    CalendarReadStore
	cache    OccupancyCache
	clock    clock.Clock
	currency string
	logger   *slog.Logger
}

func NewOccupancyQueries(store CalendarReadStore, cache OccupancyCache, clk clock.Clock, cfg config.Config, logger *slog.Logger) OccupancyQueries {
	return &occupancyQueriesImpl{store: store, cache: cache, clock: clk, currency: cfg.Calendar.Currency, logger: logger}
}

func (q *occupancyQueriesImpl) GetOccupancySummary(ctx context.Context, studioID uuid.UUID, viewer uuid.UUID) (*OccupancySummaryView, error) {
	st, err := q.store.StudioByID(ctx, studioID)
	if err != nil {
		return nil, err
	}
	if !st.IsOwner(viewer) {
		return nil, ErrNotStudioOwner
	}

	if q.cache != nil {
		cached, err := q.cache.Get(ctx, studioID)
		if err != nil {
			q.logger.Warn("occupancy cache read failed", "studio_id", studioID, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	summary, err := q.compute(ctx, st)
	if err != nil {
		return nil, err
	}

	if q.cache != nil {
		if err := q.cache.Set(ctx, summary); err != nil {
			q.logger.Warn("occupancy cache write failed", "studio_id", studioID, "error", err)
		}
	}
	return summary, nil
}

func (q *occupancyQueriesImpl) compute(ctx context.Context, st *studio.Studio) (*OccupancySummaryView, error) {
	zone, err := st.Settings.Zone()
	if err != nil {
		return nil, err
	}
	now := q.clock.Now()
	weekFrom := zone.WeekStart(now)
	weekTo := zone.AddDays(weekFrom, 7)
	monthFrom := zone.MonthStart(now)
	monthTo := zone.NextMonth(monthFrom)

	rooms, err := q.store.RoomsByStudio(ctx, st.ID)
	if err != nil {
		return nil, err
	}
	ids := roomIDList(rooms)

	summary := &OccupancySummaryView{
		StudioID:       st.ID,
		WeekOccupancy:  occupancy.Period{From: weekFrom, To: weekTo},
		MonthOccupancy: occupancy.Period{From: monthFrom, To: monthTo},
		Currency:       q.currency,
		GeneratedAt:    now,
	}
	if len(ids) == 0 {
		return summary, nil
	}

	from, to := earliest(weekFrom, monthFrom), latest(weekTo, monthTo)
	blocks, err := q.store.BlocksInRange(ctx, ids, from, to)
	if err != nil {
		return nil, err
	}
	entries := make([]calendar.Entry, 0, len(blocks))
	for _, b := range blocks {
		entries = append(entries, b.Entry())
	}
	entries = calendar.Blocking(entries)

	byRoom := map[uuid.UUID]int{}
	measured := make([]occupancy.Room, len(rooms))
	for i, r := range rooms {
		byRoom[r.ID] = i
		measured[i] = occupancy.Room{ID: r.ID, Hours: r.EffectiveHours(st.Settings), Rates: r.Rates}
	}
	if st.Settings.HappyHourEnabled {
		rules, err := q.store.HappyHourRules(ctx, ids)
		if err != nil {
			return nil, err
		}
		for roomID, rs := range rulesByRoom(rules) {
			if i, ok := byRoom[roomID]; ok {
				measured[i].HappyHours = rs
			}
		}
	}

	summary.WeekOccupancy = occupancy.Measure(weekFrom, weekTo, measured, entries, zone)
	summary.MonthOccupancy = occupancy.Measure(monthFrom, monthTo, measured, entries, zone)
	summary.MonthRevenue = occupancy.MeasureRevenue(monthFrom, monthTo, measured, entries, zone)
	return summary, nil
}

func earliest(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func latest(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
