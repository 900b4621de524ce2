//go:build unit

package occupancy_test

import (
	"testing"
	"time"

	"studio-calendar/internal/domain/bizday"
	"studio-calendar/internal/domain/calendar"
	"studio-calendar/internal/domain/happyhour"
	"studio-calendar/internal/domain/occupancy"
	"studio-calendar/internal/domain/openinghours"
	"studio-calendar/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seoul = time.FixedZone("KST", 9*60*60)

func kst(day, hour int) time.Time {
	return time.Date(2026, 3, day, hour, 0, 0, 0, seoul)
}

type fixture struct {
	zone     bizday.Zone
	from, to time.Time
	room     uuid.UUID
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	z, err := bizday.NewZone(seoul, 4)
	require.NoError(t, err)
	from := kst(9, 0)
	return fixture{zone: z, from: from, to: z.AddDays(from, 7), room: uuid.New()}
}

func block(room uuid.UUID, start, end time.Time) calendar.Entry {
	return calendar.Entry{ID: uuid.New(), RoomID: room, StartAt: start, EndAt: end, Type: calendar.TypeManualBlock}
}

func TestOpenMinutes(t *testing.T) {
	f := newFixture(t)
	week := openinghours.DefaultWeek()

	assert.Equal(t, int64(7*12*60), occupancy.OpenMinutes(f.from, f.to, week, f.zone, 1))
	assert.Equal(t, int64(3*7*12*60), occupancy.OpenMinutes(f.from, f.to, week, f.zone, 3))
	assert.Zero(t, occupancy.OpenMinutes(f.from, f.to, week, f.zone, 0))

	week[6].Open = false
	assert.Equal(t, int64(6*12*60), occupancy.OpenMinutes(f.from, f.to, week, f.zone, 1))
}

func TestOccupiedMinutes(t *testing.T) {
	f := newFixture(t)
	week := openinghours.DefaultWeek()

	entries := []calendar.Entry{
		block(f.room, kst(10, 14), kst(10, 16)),
		// Clipped to the 22:00 closing time.
		block(f.room, kst(11, 20), kst(12, 1)),
		// Clipped to the range end, then to Sunday's opening hours.
		block(f.room, kst(15, 21), kst(16, 2)),
		// The early hours before the cutoff belong to the previous week's Sunday.
		block(f.room, kst(8, 20), kst(9, 3)),
		// Rejected reservations do not count.
		{RoomID: f.room, StartAt: kst(13, 10), EndAt: kst(13, 12), Type: calendar.TypeReservation, Status: calendar.StatusRejected},
		// Outside the range.
		block(f.room, kst(17, 10), kst(17, 12)),
	}
	got := occupancy.OccupiedMinutes(f.from, f.to, entries, week, f.zone)
	assert.Equal(t, int64(120+120+60), got)
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0.0, occupancy.Percent(0, 0))
	assert.Equal(t, 0.0, occupancy.Percent(10, 0))
	assert.Equal(t, 33.3, occupancy.Percent(1, 3))
	assert.Equal(t, 66.7, occupancy.Percent(2, 3))
	assert.Equal(t, 100.0, occupancy.Percent(5, 5))
}

func TestRevenueFor(t *testing.T) {
	f := newFixture(t)
	rules := []happyhour.Rule{{RoomID: f.room, Weekday: 1, StartMinutes: 18 * 60, EndMinutes: 20 * 60}}
	rates := pricing.RoomRates{HourlyRate: "100", HappyHourRate: "50"}

	t.Run("splits happy and normal minutes", func(t *testing.T) {
		entries := []calendar.Entry{block(f.room, kst(10, 17), kst(10, 20))}
		got := occupancy.RevenueFor(f.from, f.to, entries, rates, rules, f.zone)
		assert.Equal(t, occupancy.Revenue{Total: 200, HappyMinutes: 120, NormalMinutes: 60}, got)
	})

	t.Run("unresolvable minutes are reported, not priced at zero", func(t *testing.T) {
		entries := []calendar.Entry{block(f.room, kst(10, 17), kst(10, 20))}
		got := occupancy.RevenueFor(f.from, f.to, entries, pricing.RoomRates{HappyHourRate: "50"}, rules, f.zone)
		assert.Equal(t, occupancy.Revenue{Total: 100, HappyMinutes: 120, NormalMinutes: 60, UnpricedMinutes: 60}, got)
	})

	t.Run("overlapping windows count once", func(t *testing.T) {
		overlapping := append(rules, happyhour.Rule{RoomID: f.room, Weekday: 1, StartMinutes: 19 * 60, EndMinutes: 21 * 60})
		entries := []calendar.Entry{block(f.room, kst(10, 17), kst(10, 21))}
		got := occupancy.RevenueFor(f.from, f.to, entries, rates, overlapping, f.zone)
		assert.Equal(t, int64(180), got.HappyMinutes)
		assert.Equal(t, int64(60), got.NormalMinutes)
		assert.Equal(t, int64(250), got.Total)
	})
}

func TestMeasure(t *testing.T) {
	f := newFixture(t)
	other := uuid.New()
	closedWeek := openinghours.Normalize(nil)

	t.Run("a week with zero open days", func(t *testing.T) {
		rooms := []occupancy.Room{{ID: f.room, Hours: closedWeek}}
		entries := []calendar.Entry{block(f.room, kst(10, 14), kst(10, 16))}

		p := occupancy.Measure(f.from, f.to, rooms, entries, f.zone)
		assert.Zero(t, p.OpenMinutes)
		assert.Zero(t, p.OccupiedMinutes)
		assert.Equal(t, 0.0, p.Percent)

		rev := occupancy.MeasureRevenue(f.from, f.to, []occupancy.Room{{ID: f.room, Hours: closedWeek}}, nil, f.zone)
		assert.Equal(t, occupancy.Revenue{}, rev)
	})

	t.Run("rooms keep their own hours", func(t *testing.T) {
		rooms := []occupancy.Room{
			{ID: f.room, Hours: openinghours.DefaultWeek(), Rates: pricing.RoomRates{HourlyRate: "10000"}},
			{ID: other, Hours: closedWeek, Rates: pricing.RoomRates{HourlyRate: "20000"}},
		}
		entries := []calendar.Entry{
			block(f.room, kst(10, 14), kst(10, 16)),
			block(other, kst(10, 14), kst(10, 16)),
		}
		p := occupancy.Measure(f.from, f.to, rooms, entries, f.zone)
		assert.Equal(t, int64(7*12*60), p.OpenMinutes)
		assert.Equal(t, int64(120), p.OccupiedMinutes)
		assert.Equal(t, 2.4, p.Percent)

		rev := occupancy.MeasureRevenue(f.from, f.to, rooms, entries, f.zone)
		assert.Equal(t, int64(20000+40000), rev.Total)
	})
}

func TestRevenueProratesWhereQuoteRoundsUp(t *testing.T) {
	f := newFixture(t)
	// Tuesday 18:30-20:00 covers half of the 18:00 hour.
	rules := []happyhour.Rule{{RoomID: f.room, Weekday: 1, StartMinutes: 18*60 + 30, EndMinutes: 20 * 60}}
	rates := pricing.RoomRates{HourlyRate: "100", HappyHourRate: "50"}
	start, end := kst(10, 17), kst(10, 20)

	quote, err := pricing.Quote(rates, start, 3, happyhour.Windows(rules, start, end, f.zone))
	require.NoError(t, err)
	assert.Equal(t, int64(100+50+50), quote)

	got := occupancy.RevenueFor(f.from, f.to, []calendar.Entry{block(f.room, start, end)}, rates, rules, f.zone)
	assert.Equal(t, occupancy.Revenue{Total: 150 + 75, HappyMinutes: 90, NormalMinutes: 90}, got)
}
