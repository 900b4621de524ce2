package openinghours

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"studio-calendar/internal/domain/bizday"
)

const (
	defaultOpenTime  = "10:00"
	defaultCloseTime = "22:00"
)

// Day is one weekday entry. CloseTime <= OpenTime means the studio closes after midnight.
type Day struct {
	Open      bool   `json:"open"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
}

// Week is Monday-first.
type Week [bizday.DaysPerWeek]Day

// Range is a pair of minute offsets from business-day start. EndMinutes may exceed 1440.
type Range struct {
	StartMinutes int
	EndMinutes   int
}

func (r Range) Length() int {
	return r.EndMinutes - r.StartMinutes
}

func DefaultWeek() Week {
	var w Week
	for i := range w {
		w[i] = Day{Open: true, OpenTime: defaultOpenTime, CloseTime: defaultCloseTime}
	}
	return w
}

// Normalize turns loosely shaped input into a canonical week.
// Days beyond the seventh are ignored, missing days are closed.
func Normalize(raw []Day) Week {
	var w Week
	for i := range w {
		if i >= len(raw) {
			w[i] = Day{Open: false, OpenTime: defaultOpenTime, CloseTime: defaultCloseTime}
			continue
		}
		d := raw[i]
		w[i] = Day{
			Open:      d.Open,
			OpenTime:  FormatClock(ParseClock(d.OpenTime, 0)),
			CloseTime: FormatClock(ParseClock(d.CloseTime, bizday.MinutesPerDay)),
		}
	}
	return w
}

// ParseClock reads "HH:MM" (or "H", "HHMM") as minutes since midnight,
// clamped to [0, 1440]. Unreadable input yields fallback.
func ParseClock(s string, fallback int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	var hh, mm string
	switch {
	case strings.Contains(s, ":"):
		parts := strings.SplitN(s, ":", 3)
		hh, mm = parts[0], parts[1]
	case len(s) == 4:
		hh, mm = s[:2], s[2:]
	default:
		hh, mm = s, "0"
	}
	h, err := strconv.Atoi(strings.TrimSpace(hh))
	if err != nil {
		return fallback
	}
	m, err := strconv.Atoi(strings.TrimSpace(mm))
	if err != nil {
		return fallback
	}
	return clamp(h*60+clamp(m, 0, 59), 0, bizday.MinutesPerDay)
}

func FormatClock(minutes int) string {
	minutes = clamp(minutes, 0, bizday.MinutesPerDay)
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// OpenRange returns the day's open window, or false when closed.
func OpenRange(d Day) (Range, bool) {
	if !d.Open {
		return Range{}, false
	}
	start := ParseClock(d.OpenTime, 0)
	end := ParseClock(d.CloseTime, bizday.MinutesPerDay)
	if end <= start {
		end += bizday.MinutesPerDay
	}
	return Range{StartMinutes: start, EndMinutes: end}, true
}

func (w Week) RangeFor(weekday int) (Range, bool) {
	if weekday < 0 || weekday >= len(w) {
		return Range{}, false
	}
	return OpenRange(w[weekday])
}

// OpenWindow is the absolute open interval of the business day starting at dayStart.
func (w Week) OpenWindow(dayStart time.Time, zone bizday.Zone) (time.Time, time.Time, bool) {
	r, ok := w.RangeFor(zone.DayWeekday(dayStart))
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	return zone.At(dayStart, r.StartMinutes), zone.At(dayStart, r.EndMinutes), true
}

// Contains reports whether [start, end) lies inside the opening hours of
// start's business day. An interval crossing midnight is judged against one
// business day only.
func (w Week) Contains(start, end time.Time, zone bizday.Zone) bool {
	if !end.After(start) {
		return false
	}
	dayStart := zone.DayStart(start)
	r, ok := w.RangeFor(zone.DayWeekday(dayStart))
	if !ok {
		return false
	}
	startOffset := zone.MinutesFromDayStart(dayStart, start)
	endOffset := zone.MinutesFromDayStart(dayStart, end)
	return startOffset >= r.StartMinutes && endOffset <= r.EndMinutes
}

func (w Week) OpenDays() int {
	n := 0
	for _, d := range w {
		if d.Open {
			n++
		}
	}
	return n
}
