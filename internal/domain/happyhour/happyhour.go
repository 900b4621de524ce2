// Package happyhour models weekly discounted pricing windows per room.
//
// The canonical form is a Rule: a weekday plus minute offsets from the
// business-day start. Concrete instances are only materialised on demand.
package happyhour

import (
	"sort"
	"time"

	"studio-calendar/internal/domain/bizday"
	"studio-calendar/internal/domain/openinghours"
	"studio-calendar/internal/domain/pricing"
	"studio-calendar/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidWeekday = errs.Mark(errs.New("weekday must be within 0-6"), errs.ErrValidation)
	ErrInvalidWindow  = errs.Mark(errs.New("happy hour window must have a positive length of at most a day"), errs.ErrValidation)
)

// A window may start after midnight but before the cutoff, so offsets run past one day.
const maxStartMinutes = 2 * bizday.MinutesPerDay

type Rule struct {
	RoomID       uuid.UUID
	Weekday      int
	StartMinutes int
	EndMinutes   int
}

func NewRule(roomID uuid.UUID, weekday, startMinutes, endMinutes int) (Rule, error) {
	if weekday < 0 || weekday >= bizday.DaysPerWeek {
		return Rule{}, ErrInvalidWeekday
	}
	if endMinutes <= startMinutes {
		endMinutes += bizday.MinutesPerDay
	}
	if startMinutes < 0 || startMinutes >= maxStartMinutes || endMinutes-startMinutes > bizday.MinutesPerDay {
		return Rule{}, ErrInvalidWindow
	}
	return Rule{RoomID: roomID, Weekday: weekday, StartMinutes: startMinutes, EndMinutes: endMinutes}, nil
}

func (r Rule) Duration() time.Duration {
	return time.Duration(r.EndMinutes-r.StartMinutes) * time.Minute
}

// Slot is a concrete happy-hour instance.
type Slot struct {
	RoomID  uuid.UUID
	StartAt time.Time
	EndAt   time.Time
}

type key struct {
	weekday int
	start   int
}

// Compress derives weekly rules from concrete slots, grouped by room.
// Slots sharing (weekday, start) collapse into one rule with the longest end.
func Compress(slots []Slot, zone bizday.Zone) map[uuid.UUID][]Rule {
	byRoom := make(map[uuid.UUID]map[key]int)
	for _, s := range slots {
		dayStart := zone.DayStart(s.StartAt)
		k := key{
			weekday: zone.DayWeekday(dayStart),
			start:   zone.MinutesFromDayStart(dayStart, s.StartAt),
		}
		end := zone.MinutesFromDayStart(dayStart, s.EndAt)
		if end <= k.start {
			end += bizday.MinutesPerDay
		}
		if byRoom[s.RoomID] == nil {
			byRoom[s.RoomID] = make(map[key]int)
		}
		if prev, ok := byRoom[s.RoomID][k]; !ok || end > prev {
			byRoom[s.RoomID][k] = end
		}
	}

	out := make(map[uuid.UUID][]Rule, len(byRoom))
	for roomID, ends := range byRoom {
		rules := make([]Rule, 0, len(ends))
		for k, end := range ends {
			rules = append(rules, Rule{RoomID: roomID, Weekday: k.weekday, StartMinutes: k.start, EndMinutes: end})
		}
		SortRules(rules)
		out[roomID] = rules
	}
	return out
}

// MergeRules folds incoming into existing with the same dedup policy as Compress.
func MergeRules(existing, incoming []Rule) []Rule {
	type roomKey struct {
		room uuid.UUID
		key
	}
	ends := make(map[roomKey]int, len(existing)+len(incoming))
	for _, r := range append(append([]Rule(nil), existing...), incoming...) {
		k := roomKey{room: r.RoomID, key: key{weekday: r.Weekday, start: r.StartMinutes}}
		if prev, ok := ends[k]; !ok || r.EndMinutes > prev {
			ends[k] = r.EndMinutes
		}
	}
	merged := make([]Rule, 0, len(ends))
	for k, end := range ends {
		merged = append(merged, Rule{RoomID: k.room, Weekday: k.weekday, StartMinutes: k.start, EndMinutes: end})
	}
	SortRules(merged)
	return merged
}

func SortRules(rules []Rule) {
	sort.Slice(rules, func(i, j int) bool {
		a, b := rules[i], rules[j]
		if a.RoomID != b.RoomID {
			return a.RoomID.String() < b.RoomID.String()
		}
		if a.Weekday != b.Weekday {
			return a.Weekday < b.Weekday
		}
		return a.StartMinutes < b.StartMinutes
	})
}

// Expand materialises rules into concrete slots intersecting [rangeStart, rangeEnd).
func Expand(rules []Rule, rangeStart, rangeEnd time.Time, zone bizday.Zone) []Slot {
	if len(rules) == 0 || !rangeStart.Before(rangeEnd) {
		return nil
	}
	byWeekday := make(map[int][]Rule)
	for _, r := range rules {
		byWeekday[r.Weekday] = append(byWeekday[r.Weekday], r)
	}

	var out []Slot
	// A rule ending after midnight may reach into the range from the previous business day.
	for _, dayStart := range zone.Days(zone.AddDays(zone.DayStart(rangeStart), -1), rangeEnd) {
		for _, r := range byWeekday[zone.DayWeekday(dayStart)] {
			start := zone.At(dayStart, r.StartMinutes)
			end := zone.At(dayStart, r.EndMinutes)
			if start.Before(rangeEnd) && end.After(rangeStart) {
				out = append(out, Slot{RoomID: r.RoomID, StartAt: start, EndAt: end})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartAt.Before(out[j].StartAt) })
	return out
}

// DaySchedule is one weekday of a weekly happy-hour form.
type DaySchedule struct {
	Enabled bool
	EndTime string
}

// WeeklySchedule materialises one slot per enabled weekday of the business
// week containing now. Each slot starts at the day's opening time and ends
// at the requested end time; the opening time of a closed day is still used.
func WeeklySchedule(roomID uuid.UUID, days [bizday.DaysPerWeek]DaySchedule, week openinghours.Week, now time.Time, zone bizday.Zone) ([]Slot, error) {
	weekStart := zone.WeekStart(now)
	var slots []Slot
	for i, d := range days {
		if !d.Enabled {
			continue
		}
		start := openinghours.ParseClock(week[i].OpenTime, 0)
		end := openinghours.ParseClock(d.EndTime, -1)
		if end < 0 {
			return nil, errs.Mark(errs.Newf("unreadable end time %q for weekday %d", d.EndTime, i), errs.ErrValidation)
		}
		if end <= start {
			end += bizday.MinutesPerDay
		}
		dayStart := zone.AddDays(weekStart, i)
		slots = append(slots, Slot{
			RoomID:  roomID,
			StartAt: zone.At(dayStart, start),
			EndAt:   zone.At(dayStart, end),
		})
	}
	return slots, nil
}

// Windows expands rules over [start, end) for the pricing engine.
func Windows(rules []Rule, start, end time.Time, zone bizday.Zone) []pricing.Window {
	slots := Expand(rules, start, end, zone)
	out := make([]pricing.Window, len(slots))
	for i, s := range slots {
		out[i] = pricing.Window{Start: s.StartAt, End: s.EndAt}
	}
	return out
}
