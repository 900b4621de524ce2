//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"studio-calendar/internal/domain/pricing"
	"studio-calendar/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRate(t *testing.T) {
	tests := []struct {
		raw  string
		want int64
		ok   bool
	}{
		{"15000", 15000, true},
		{"₩12,000/h", 12000, true},
		{"15000원", 15000, true},
		{"KRW 20,000", 20000, true},
		{" 9 000 ", 9000, true},
		{"12.5k", 12500, true},
		{"3K/hour", 3000, true},
		{"15000KRW", 15000, true},
		{"15000krw", 15000, true},
		{"15,000 KRW/h", 15000, true},
		{"12kKRW", 12000, true},
		{"1,000, negotiable", 1000, true},
		{"99.6", 100, true},
		{"", 0, false},
		{"free", 0, false},
		{"0", 0, false},
		{"-500", 0, false},
		{"1.2.3", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := pricing.NormalizeRate(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveRate(t *testing.T) {
	tests := []struct {
		name    string
		room    pricing.RoomRates
		isHappy bool
		want    int64
		ok      bool
	}{
		{"hourly first", pricing.RoomRates{HourlyRate: "100", MinRate: "80", FlatRate: "60"}, false, 100, true},
		{"min when hourly unset", pricing.RoomRates{MinRate: "80", FlatRate: "60"}, false, 80, true},
		{"flat last", pricing.RoomRates{HourlyRate: "call us", FlatRate: "60"}, false, 60, true},
		{"happy rate", pricing.RoomRates{HourlyRate: "100", HappyHourRate: "50"}, true, 50, true},
		{"happy falls back to base", pricing.RoomRates{HourlyRate: "100"}, true, 100, true},
		{"daily is never used per hour", pricing.RoomRates{DailyRate: "500"}, false, 0, false},
		{"nothing set", pricing.RoomRates{}, true, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := pricing.ResolveRate(tt.room, tt.isHappy)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPriceForInterval(t *testing.T) {
	// Tuesday 2026-03-10.
	at := func(h int) time.Time { return time.Date(2026, 3, 10, h, 0, 0, 0, time.UTC) }
	room := pricing.RoomRates{HourlyRate: "100", HappyHourRate: "50"}

	t.Run("happy hours split the interval", func(t *testing.T) {
		windows := []pricing.Window{{Start: at(18), End: at(20)}}
		total, ok := pricing.PriceForInterval(room, at(17), 3, windows)
		require.True(t, ok)
		assert.Equal(t, int64(1*100+2*50), total)
	})

	t.Run("base rate times hours without windows", func(t *testing.T) {
		total, ok := pricing.PriceForInterval(room, at(9), 4, nil)
		require.True(t, ok)
		assert.Equal(t, int64(400), total)

		windows := []pricing.Window{{Start: at(20), End: at(22)}}
		total, ok = pricing.PriceForInterval(room, at(17), 3, windows)
		require.True(t, ok)
		assert.Equal(t, int64(300), total, "a window starting at the interval end does not apply")
	})

	t.Run("partially covered hour uses the happy rate", func(t *testing.T) {
		windows := []pricing.Window{{Start: at(18).Add(30 * time.Minute), End: at(19)}}
		total, ok := pricing.PriceForInterval(room, at(18), 2, windows)
		require.True(t, ok)
		assert.Equal(t, int64(150), total)
	})

	t.Run("unknown price is never zero", func(t *testing.T) {
		total, ok := pricing.PriceForInterval(pricing.RoomRates{}, at(9), 2, nil)
		assert.False(t, ok)
		assert.Zero(t, total)

		_, err := pricing.Quote(pricing.RoomRates{HappyHourRate: "50"}, at(17), 3, []pricing.Window{{Start: at(18), End: at(20)}})
		require.ErrorIs(t, err, pricing.ErrRateUnresolved)
		assert.True(t, errs.Is(err, errs.ErrRateUnresolved))
	})
}

func TestProrateMinutes(t *testing.T) {
	assert.Equal(t, int64(100), pricing.ProrateMinutes(60, 100))
	assert.Equal(t, int64(50), pricing.ProrateMinutes(30, 100))
	assert.Equal(t, int64(2), pricing.ProrateMinutes(1, 100))
	assert.Zero(t, pricing.ProrateMinutes(0, 100))
}
