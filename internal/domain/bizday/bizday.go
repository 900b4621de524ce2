// Package bizday implements studio-local calendar arithmetic.
//
// A business day starts at local midnight of its calendar date but absorbs
// the early hours of the following date: a wall-clock time before the
// studio's cutoff hour belongs to the previous business day. Weekday lookups
// and minute offsets are always taken relative to the business-day start.
package bizday

import (
	"time"

	"studio-calendar/internal/pkg/errs"
)

const (
	MinutesPerDay  = 24 * 60
	DefaultCutoff  = 4
	DaysPerWeek    = 7
	maxCutoffHours = 23
)

var (
	ErrInvalidCutoffHour = errs.Mark(errs.New("cutoff hour must be within 0-23"), errs.ErrValidation)
	ErrInvalidTimeZone   = errs.Mark(errs.New("unknown time zone"), errs.ErrValidation)
)

// Parts is a wall-clock reading of an instant in some location.
type Parts struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int
}

// Zone carries the two settings every studio-local computation needs.
type Zone struct {
	Location   *time.Location
	CutoffHour int
}

func NewZone(loc *time.Location, cutoffHour int) (Zone, error) {
	if cutoffHour < 0 || cutoffHour > maxCutoffHours {
		return Zone{}, ErrInvalidCutoffHour
	}
	if loc == nil {
		loc = time.UTC
	}
	return Zone{Location: loc, CutoffHour: cutoffHour}, nil
}

// LoadZone resolves an IANA time zone id. An empty id means UTC.
func LoadZone(tzName string, cutoffHour int) (Zone, error) {
	loc := time.UTC
	if tzName != "" {
		l, err := time.LoadLocation(tzName)
		if err != nil {
			return Zone{}, errs.Mark(errs.Wrapf(err, "load location %q", tzName), ErrInvalidTimeZone)
		}
		loc = l
	}
	return NewZone(loc, cutoffHour)
}

func ZonedParts(t time.Time, loc *time.Location) Parts {
	local := t.In(loc)
	return Parts{
		Year:   local.Year(),
		Month:  local.Month(),
		Day:    local.Day(),
		Hour:   local.Hour(),
		Minute: local.Minute(),
		Second: local.Second(),
	}
}

// Offset returns the location's wall clock minus UTC at t (DST aware), the
// sign time.Zone uses: +9h for Asia/Seoul. Subtract it from a wall-clock
// guess to get the instant.
func Offset(t time.Time, loc *time.Location) time.Duration {
	_, sec := t.In(loc).Zone()
	return time.Duration(sec) * time.Second
}

// ZonedInstant returns the instant whose wall clock in loc reads y-m-d plus
// minutes since midnight. Minutes beyond one day roll into following dates.
func ZonedInstant(year int, month time.Month, day, minutes int, loc *time.Location) time.Time {
	guess := time.Date(year, month, day, 0, minutes, 0, 0, time.UTC)
	off := Offset(guess, loc)
	instant := guess.Add(-off)
	// The guess may sit on the other side of a DST change than the answer.
	if corrected := Offset(instant, loc); corrected != off {
		instant = guess.Add(-corrected)
	}
	return instant
}

// BusinessDayStart returns local midnight of the business day t belongs to.
func BusinessDayStart(t time.Time, cutoffHour int, loc *time.Location) time.Time {
	p := ZonedParts(t, loc)
	day := p.Day
	if p.Hour < cutoffHour {
		day--
	}
	return ZonedInstant(p.Year, p.Month, day, 0, loc)
}

// WeekdayIndex returns 0 for Monday through 6 for Sunday of t's business day.
func WeekdayIndex(t time.Time, cutoffHour int, loc *time.Location) int {
	start := BusinessDayStart(t, cutoffHour, loc)
	return MondayIndex(start.In(loc).Weekday())
}

func MondayIndex(w time.Weekday) int {
	return (int(w) + 6) % DaysPerWeek
}

func (z Zone) loc() *time.Location {
	if z.Location == nil {
		return time.UTC
	}
	return z.Location
}

func (z Zone) Parts(t time.Time) Parts {
	return ZonedParts(t, z.loc())
}

func (z Zone) DayStart(t time.Time) time.Time {
	return BusinessDayStart(t, z.CutoffHour, z.loc())
}

func (z Zone) Weekday(t time.Time) int {
	return WeekdayIndex(t, z.CutoffHour, z.loc())
}

// DayWeekday is the weekday index of a business day given its start.
func (z Zone) DayWeekday(dayStart time.Time) int {
	return MondayIndex(dayStart.In(z.loc()).Weekday())
}

// At returns the instant that lies minutes after the local midnight of dayStart's date.
func (z Zone) At(dayStart time.Time, minutes int) time.Time {
	p := z.Parts(dayStart)
	return ZonedInstant(p.Year, p.Month, p.Day, minutes, z.loc())
}

// MinutesFromDayStart is the elapsed minutes between dayStart and t.
func (z Zone) MinutesFromDayStart(dayStart, t time.Time) int {
	return int(t.Sub(dayStart) / time.Minute)
}

// NextDay returns the start of the business day after dayStart.
func (z Zone) NextDay(dayStart time.Time) time.Time {
	return z.At(dayStart, MinutesPerDay)
}

// AddDays moves dayStart by n calendar days, keeping local midnight.
func (z Zone) AddDays(dayStart time.Time, n int) time.Time {
	p := z.Parts(dayStart)
	return ZonedInstant(p.Year, p.Month, p.Day+n, 0, z.loc())
}

// WeekStart returns the Monday business-day start of t's business week.
func (z Zone) WeekStart(t time.Time) time.Time {
	start := z.DayStart(t)
	return z.AddDays(start, -z.Weekday(t))
}

// MonthStart returns the first business-day start of t's business month.
func (z Zone) MonthStart(t time.Time) time.Time {
	p := z.Parts(z.DayStart(t))
	return ZonedInstant(p.Year, p.Month, 1, 0, z.loc())
}

// NextMonth returns the first business-day start of the month after monthStart's.
func (z Zone) NextMonth(monthStart time.Time) time.Time {
	p := z.Parts(monthStart)
	return ZonedInstant(p.Year, p.Month+1, 1, 0, z.loc())
}

// Days lists business-day starts overlapping [from, to).
func (z Zone) Days(from, to time.Time) []time.Time {
	if !from.Before(to) {
		return nil
	}
	var days []time.Time
	for day := z.DayStart(from); day.Before(to); day = z.NextDay(day) {
		days = append(days, day)
	}
	return days
}
