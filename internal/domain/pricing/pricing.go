package pricing

import (
	"math"
	"strconv"
	"strings"
	"time"

	"studio-calendar/internal/pkg/errs"
)

var ErrRateUnresolved = errs.Mark(errs.New("no resolvable rate for the requested interval"), errs.ErrRateUnresolved)

// RoomRates holds the rate fields exactly as studios typed them.
type RoomRates struct {
	HourlyRate    string
	MinRate       string
	FlatRate      string
	HappyHourRate string
	DailyRate     string
}

// RateCard is RoomRates after normalization. Nil means unset or unreadable.
type RateCard struct {
	Hourly    *int64 `json:"hourly,omitempty"`
	Min       *int64 `json:"min,omitempty"`
	Flat      *int64 `json:"flat,omitempty"`
	HappyHour *int64 `json:"happyHour,omitempty"`
	Daily     *int64 `json:"daily,omitempty"`
}

type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Overlaps(start, end time.Time) bool {
	return w.Start.Before(end) && w.End.After(start)
}

// NormalizeRate extracts the first amount in free text such as "₩12,000/h",
// "15000원", "15000KRW", "12.5k" or " 9 000 ". Non-positive amounts are treated as unset.
func NormalizeRate(raw string) (int64, bool) {
	var (
		b        strings.Builder
		started  bool
		negative bool
		thousand bool
	)
	runes := []rune(strings.TrimSpace(raw))
scan:
	for i, r := range runes {
		switch {
		case isDigit(r):
			started = true
			b.WriteRune(r)
		case r == '.' && started:
			b.WriteRune(r)
		case (r == ',' || r == ' ' || r == '_') && started:
			if i+1 >= len(runes) || !isDigit(runes[i+1]) {
				break scan
			}
		case (r == 'k' || r == 'K') && started:
			// a glued "KRW" is a currency suffix, not a multiplier
			thousand = !strings.HasPrefix(strings.ToLower(string(runes[i:])), "krw")
			break scan
		case r == '-' && !started:
			negative = true
		case started:
			break scan
		}
	}
	if !started || negative {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(b.String(), "."), 64)
	if err != nil {
		return 0, false
	}
	if thousand {
		v *= 1000
	}
	if v <= 0 || v > math.MaxInt64/2 {
		return 0, false
	}
	return int64(math.Round(v)), true
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func normalizePtr(raw string) *int64 {
	v, ok := NormalizeRate(raw)
	if !ok {
		return nil
	}
	return &v
}

func Normalize(r RoomRates) RateCard {
	return RateCard{
		Hourly:    normalizePtr(r.HourlyRate),
		Min:       normalizePtr(r.MinRate),
		Flat:      normalizePtr(r.FlatRate),
		HappyHour: normalizePtr(r.HappyHourRate),
		Daily:     normalizePtr(r.DailyRate),
	}
}

// BaseRate walks hourly, then min, then flat.
func (c RateCard) BaseRate() (int64, bool) {
	for _, v := range []*int64{c.Hourly, c.Min, c.Flat} {
		if v != nil {
			return *v, true
		}
	}
	return 0, false
}

// Rate resolves the per-hour rate; the happy rate falls back to the base chain.
func (c RateCard) Rate(isHappyHour bool) (int64, bool) {
	if isHappyHour && c.HappyHour != nil {
		return *c.HappyHour, true
	}
	return c.BaseRate()
}

func ResolveRate(room RoomRates, isHappyHour bool) (int64, bool) {
	return Normalize(room).Rate(isHappyHour)
}

// PriceForInterval sums hourly rates over hours starting at start. An hour
// touching any happy-hour window is priced at the happy rate. ok is false
// when some hour has no resolvable rate.
func PriceForInterval(room RoomRates, start time.Time, hours int, windows []Window) (total int64, ok bool) {
	card := Normalize(room)
	for h := 0; h < hours; h++ {
		hs := start.Add(time.Duration(h) * time.Hour)
		he := hs.Add(time.Hour)
		rate, found := card.Rate(inAnyWindow(windows, hs, he))
		if !found {
			return 0, false
		}
		total += rate
	}
	return total, true
}

// Quote is PriceForInterval reporting an unknown price as ErrRateUnresolved.
func Quote(room RoomRates, start time.Time, hours int, windows []Window) (int64, error) {
	total, ok := PriceForInterval(room, start, hours, windows)
	if !ok {
		return 0, ErrRateUnresolved
	}
	return total, nil
}

func inAnyWindow(windows []Window, start, end time.Time) bool {
	for _, w := range windows {
		if w.Overlaps(start, end) {
			return true
		}
	}
	return false
}

// ProrateMinutes prices a number of minutes at an hourly rate, rounding half up.
func ProrateMinutes(minutes, hourlyRate int64) int64 {
	if minutes <= 0 {
		return 0
	}
	return (minutes*hourlyRate + 30) / 60
}
