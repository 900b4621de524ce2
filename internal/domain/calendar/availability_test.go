//go:build unit

package calendar_test

import (
	"testing"
	"time"

	"studio-calendar/internal/domain/calendar"
	"studio-calendar/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(h int) time.Time {
	return time.Date(2026, 3, 10, h, 0, 0, 0, time.UTC)
}

func TestIsBlocking(t *testing.T) {
	tests := []struct {
		name  string
		entry calendar.Entry
		want  bool
	}{
		{"manual block", calendar.Entry{Type: calendar.TypeManualBlock}, true},
		{"manual block ignores status", calendar.Entry{Type: calendar.TypeManualBlock, Status: calendar.StatusCancelled}, true},
		{"approved reservation", calendar.Entry{Type: calendar.TypeReservation, Status: calendar.StatusApproved}, true},
		{"pending reservation", calendar.Entry{Type: calendar.TypeReservation, Status: calendar.StatusPending}, true},
		{"rejected reservation", calendar.Entry{Type: calendar.TypeReservation, Status: calendar.StatusRejected}, false},
		{"cancelled reservation", calendar.Entry{Type: calendar.TypeReservation, Status: calendar.StatusCancelled}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calendar.IsBlocking(tt.entry))
		})
	}
}

func TestOverlaps(t *testing.T) {
	assert.False(t, calendar.Overlaps(at(10), at(12), at(12), at(14)), "shared boundary")
	assert.False(t, calendar.Overlaps(at(12), at(14), at(10), at(12)), "shared boundary reversed")
	assert.True(t, calendar.Overlaps(at(10), at(12), at(10), at(12)), "identical")
	assert.True(t, calendar.Overlaps(at(10), at(14), at(11), at(12)), "contained")
	assert.True(t, calendar.Overlaps(at(10), at(12), at(11), at(13)), "partial")
}

func TestHasConflict(t *testing.T) {
	room, other := uuid.New(), uuid.New()
	entries := []calendar.Entry{
		{RoomID: room, StartAt: at(10), EndAt: at(12), Type: calendar.TypeManualBlock},
		{RoomID: room, StartAt: at(14), EndAt: at(16), Type: calendar.TypeReservation, Status: calendar.StatusRejected},
		{RoomID: other, StartAt: at(16), EndAt: at(18), Type: calendar.TypeManualBlock},
	}

	assert.True(t, calendar.HasConflict(entries, room, at(11), at(13)))
	assert.False(t, calendar.HasConflict(entries, room, at(12), at(14)), "boundary only")
	assert.False(t, calendar.HasConflict(entries, room, at(14), at(16)), "rejected does not block")
	assert.False(t, calendar.HasConflict(entries, room, at(16), at(18)), "other room")
	assert.True(t, calendar.HasConflict(entries, other, at(16), at(18)))

	hit, ok := calendar.FirstConflict(entries, room, at(9), at(11))
	require.True(t, ok)
	assert.Equal(t, at(10), hit.StartAt)

	assert.Len(t, calendar.Blocking(entries), 2)
}

func TestNewBlock(t *testing.T) {
	room := uuid.New()
	now := at(0)

	b, err := calendar.NewBlock(room, at(10), at(12), calendar.TypeManualBlock, calendar.StatusApproved, "  Maintenance ", "", nil, now)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, b.ID())
	assert.Equal(t, "Maintenance", b.Title())
	assert.Equal(t, calendar.StatusNone, b.Status(), "manual blocks carry no status")
	assert.Equal(t, calendar.Entry{ID: b.ID(), RoomID: room, StartAt: at(10), EndAt: at(12), Type: calendar.TypeManualBlock}, b.Entry())

	_, err = calendar.NewBlock(room, at(12), at(12), calendar.TypeManualBlock, calendar.StatusNone, "", "", nil, now)
	require.ErrorIs(t, err, calendar.ErrInvalidInterval)
	assert.True(t, errs.Is(err, errs.ErrValidation))

	long := make([]rune, calendar.MaxTitleLength+1)
	for i := range long {
		long[i] = '가'
	}
	_, err = calendar.NewBlock(room, at(10), at(12), calendar.TypeManualBlock, calendar.StatusNone, string(long), "", nil, now)
	require.ErrorIs(t, err, calendar.ErrTitleTooLong)
}
