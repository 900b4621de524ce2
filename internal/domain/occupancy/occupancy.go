package occupancy

import (
	"math"
	"sort"
	"time"

	"studio-calendar/internal/domain/bizday"
	"studio-calendar/internal/domain/calendar"
	"studio-calendar/internal/domain/happyhour"
	"studio-calendar/internal/domain/openinghours"
	"studio-calendar/internal/domain/pricing"

	"github.com/google/uuid"
)

// OpenMinutes sums the open windows of every business day overlapping
// [from, to), clipped to the range, times roomCount.
func OpenMinutes(from, to time.Time, week openinghours.Week, zone bizday.Zone, roomCount int) int64 {
	if roomCount <= 0 {
		return 0
	}
	var total int64
	for _, day := range zone.Days(from, to) {
		openStart, openEnd, ok := week.OpenWindow(day, zone)
		if !ok {
			continue
		}
		if start, end, ok := clip(openStart, openEnd, from, to); ok {
			total += minutes(end.Sub(start))
		}
	}
	return total * int64(roomCount)
}

// OccupiedMinutes clips each blocking entry to [from, to) and then to the open
// window of the business day it starts in.
func OccupiedMinutes(from, to time.Time, entries []calendar.Entry, week openinghours.Week, zone bizday.Zone) int64 {
	var total int64
	for _, e := range entries {
		if !calendar.IsBlocking(e) {
			continue
		}
		start, end, ok := clip(e.StartAt, e.EndAt, from, to)
		if !ok {
			continue
		}
		openStart, openEnd, open := week.OpenWindow(zone.DayStart(start), zone)
		if !open {
			continue
		}
		if start, end, ok = clip(start, end, openStart, openEnd); ok {
			total += minutes(end.Sub(start))
		}
	}
	return total
}

// Percent is occupied/open as a percentage with one decimal, 0 when nothing is open.
func Percent(occupied, open int64) float64 {
	if open <= 0 {
		return 0
	}
	return math.Round(float64(occupied)/float64(open)*1000) / 10
}

type Revenue struct {
	Total           int64 `json:"total"`
	HappyMinutes    int64 `json:"happyMinutes"`
	NormalMinutes   int64 `json:"normalMinutes"`
	UnpricedMinutes int64 `json:"unpricedMinutes"`
}

func (r Revenue) Add(o Revenue) Revenue {
	return Revenue{
		Total:           r.Total + o.Total,
		HappyMinutes:    r.HappyMinutes + o.HappyMinutes,
		NormalMinutes:   r.NormalMinutes + o.NormalMinutes,
		UnpricedMinutes: r.UnpricedMinutes + o.UnpricedMinutes,
	}
}

// RevenueFor splits each blocking entry clipped to [from, to) into happy-hour
// and normal minutes and prices both at their resolved rate. Minutes without a
// resolvable rate are counted as unpriced instead of being priced at zero.
func RevenueFor(from, to time.Time, entries []calendar.Entry, rates pricing.RoomRates, rules []happyhour.Rule, zone bizday.Zone) Revenue {
	card := pricing.Normalize(rates)
	var rev Revenue
	for _, e := range entries {
		if !calendar.IsBlocking(e) {
			continue
		}
		start, end, ok := clip(e.StartAt, e.EndAt, from, to)
		if !ok {
			continue
		}
		total := minutes(end.Sub(start))
		happy := happyMinutes(start, end, happyhour.Windows(rules, start, end, zone))
		normal := total - happy

		rev.HappyMinutes += happy
		rev.NormalMinutes += normal
		rev.Total += price(card, true, happy, &rev.UnpricedMinutes)
		rev.Total += price(card, false, normal, &rev.UnpricedMinutes)
	}
	return rev
}

func price(card pricing.RateCard, happy bool, mins int64, unpriced *int64) int64 {
	if mins == 0 {
		return 0
	}
	rate, ok := card.Rate(happy)
	if !ok {
		*unpriced += mins
		return 0
	}
	return pricing.ProrateMinutes(mins, rate)
}

// happyMinutes measures the union of windows inside [start, end).
func happyMinutes(start, end time.Time, windows []pricing.Window) int64 {
	if len(windows) == 0 {
		return 0
	}
	sorted := append([]pricing.Window(nil), windows...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start.Before(sorted[j].Start) })

	var total time.Duration
	cursor := start
	for _, w := range sorted {
		ws, we, ok := clip(w.Start, w.End, start, end)
		if !ok {
			continue
		}
		if ws.Before(cursor) {
			ws = cursor
		}
		if we.After(ws) {
			total += we.Sub(ws)
			cursor = we
		}
	}
	return minutes(total)
}

func clip(start, end, from, to time.Time) (time.Time, time.Time, bool) {
	if start.Before(from) {
		start = from
	}
	if end.After(to) {
		end = to
	}
	return start, end, end.After(start)
}

func minutes(d time.Duration) int64 {
	return int64(d / time.Minute)
}

// Room is everything the summary needs to know about one room.
type Room struct {
	ID         uuid.UUID
	Hours      openinghours.Week
	Rates      pricing.RoomRates
	HappyHours []happyhour.Rule
}

type Period struct {
	From            time.Time `json:"from"`
	To              time.Time `json:"to"`
	OpenMinutes     int64     `json:"openMinutes"`
	OccupiedMinutes int64     `json:"occupiedMinutes"`
	Percent         float64   `json:"percent"`
}

// Measure aggregates occupancy over [from, to) across rooms, each with its own hours.
func Measure(from, to time.Time, rooms []Room, entries []calendar.Entry, zone bizday.Zone) Period {
	byRoom := groupByRoom(entries)
	p := Period{From: from, To: to}
	for _, room := range rooms {
		p.OpenMinutes += OpenMinutes(from, to, room.Hours, zone, 1)
		p.OccupiedMinutes += OccupiedMinutes(from, to, byRoom[room.ID], room.Hours, zone)
	}
	p.Percent = Percent(p.OccupiedMinutes, p.OpenMinutes)
	return p
}

// MeasureRevenue sums RevenueFor across rooms.
func MeasureRevenue(from, to time.Time, rooms []Room, entries []calendar.Entry, zone bizday.Zone) Revenue {
	byRoom := groupByRoom(entries)
	var rev Revenue
	for _, room := range rooms {
		rev = rev.Add(RevenueFor(from, to, byRoom[room.ID], room.Rates, room.HappyHours, zone))
	}
	return rev
}

func groupByRoom(entries []calendar.Entry) map[uuid.UUID][]calendar.Entry {
	out := make(map[uuid.UUID][]calendar.Entry)
	for _, e := range entries {
		out[e.RoomID] = append(out[e.RoomID], e)
	}
	return out
}
