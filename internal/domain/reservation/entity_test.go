//go:build unit

package reservation_test

import (
	"strings"
	"testing"
	"time"

	"studio-calendar/internal/domain/reservation"
	"studio-calendar/internal/pkg/errs"
	"studio-calendar/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReservationBuilder)
	errIs  error
}

func TestRequest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, reservation.StatusPending, actual.Status())
		assert.Equal(t, reservation.Pending{}, actual.State())
		assert.Nil(t, actual.BlockID())
		assert.True(t, actual.IsBlocking())
		assert.Equal(t, "01012345678", actual.Requester().Phone)
		assert.True(t, b.StartAt.Add(2*time.Hour).Equal(actual.Slot().End()))
		assert.Equal(t, b.Now, actual.CreatedAt())
	})

	t.Run("slot validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero hours",
				mutate: func(b *builder.ReservationBuilder) { b.Hours = 0 },
				errIs:  reservation.ErrInvalidDuration,
			},
			{
				name:   "maximum hours",
				mutate: func(b *builder.ReservationBuilder) { b.Hours = 24 },
			},
			{
				name:   "above maximum hours",
				mutate: func(b *builder.ReservationBuilder) { b.Hours = 25 },
				errIs:  reservation.ErrInvalidDuration,
			},
			{
				name:   "start on the half hour",
				mutate: func(b *builder.ReservationBuilder) { b.StartAt = b.StartAt.Add(30 * time.Minute) },
				errIs:  reservation.ErrStartNotHourAligned,
			},
			{
				name:   "start with seconds",
				mutate: func(b *builder.ReservationBuilder) { b.StartAt = b.StartAt.Add(time.Second) },
				errIs:  reservation.ErrStartNotHourAligned,
			},
		})
	})

	t.Run("requester validation", func(t *testing.T) {
		account := uuid.New()
		runCases(t, []testCase{
			{
				name:   "blank name",
				mutate: func(b *builder.ReservationBuilder) { b.Name = "   " },
				errIs:  reservation.ErrRequesterNameRequired,
			},
			{
				name:   "name too long",
				mutate: func(b *builder.ReservationBuilder) { b.Name = strings.Repeat("a", reservation.MaxNameLength+1) },
				errIs:  reservation.ErrRequesterNameTooLong,
			},
			{
				name:   "no phone anywhere",
				mutate: func(b *builder.ReservationBuilder) { b.Phone = "" },
				errIs:  reservation.ErrPhoneRequired,
			},
			{
				name: "profile phone fills in",
				mutate: func(b *builder.ReservationBuilder) {
					b.AccountID = &account
					b.Phone = ""
					b.ProfilePhone = "+82 10 1111 2222"
				},
			},
			{
				name:   "letters in phone",
				mutate: func(b *builder.ReservationBuilder) { b.Phone = "call me" },
				errIs:  reservation.ErrPhoneRequired,
			},
			{
				name:   "guest without email",
				mutate: func(b *builder.ReservationBuilder) { b.Email = "" },
				errIs:  reservation.ErrEmailRequired,
			},
			{
				name: "member without email",
				mutate: func(b *builder.ReservationBuilder) {
					b.AccountID = &account
					b.Email = ""
				},
			},
			{
				name:   "malformed email",
				mutate: func(b *builder.ReservationBuilder) { b.Email = "minji@" },
				errIs:  reservation.ErrInvalidEmail,
			},
			{
				name:   "note too long",
				mutate: func(b *builder.ReservationBuilder) { b.Note = strings.Repeat("n", reservation.MaxNoteLength+1) },
				errIs:  reservation.ErrNoteTooLong,
			},
		})
	})

	t.Run("validation errors share the taxonomy", func(t *testing.T) {
		_, err := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.Hours = 0 }).BuildDomain()
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}

func TestTransitions(t *testing.T) {
	actor := uuid.New()
	decidedAt := time.Date(2026, 3, 9, 13, 0, 0, 0, builder.KST)

	t.Run("approve links the block", func(t *testing.T) {
		r, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		blockID := uuid.New()

		changed, err := r.Approve(blockID, &actor, decidedAt)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, reservation.Approved{BlockID: blockID}, r.State())
		require.NotNil(t, r.BlockID())
		assert.Equal(t, blockID, *r.BlockID())
		assert.Equal(t, &actor, r.DecidedBy())
		require.NotNil(t, r.DecidedAt())
		assert.Equal(t, decidedAt, *r.DecidedAt())
		assert.True(t, r.IsBlocking())
	})

	t.Run("repeating the terminal state is a no-op", func(t *testing.T) {
		r, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		blockID := uuid.New()
		_, err = r.Approve(blockID, &actor, decidedAt)
		require.NoError(t, err)

		changed, err := r.Approve(uuid.New(), &actor, decidedAt.Add(time.Hour))
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, blockID, *r.BlockID())
		assert.Equal(t, decidedAt, *r.DecidedAt())

		noop, err := r.Check(reservation.StatusApproved)
		require.NoError(t, err)
		assert.True(t, noop)
	})

	t.Run("switching terminal states fails", func(t *testing.T) {
		r, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		changed, err := r.Reject(&actor, decidedAt)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.False(t, r.IsBlocking())
		assert.Nil(t, r.BlockID())

		_, err = r.Approve(uuid.New(), &actor, decidedAt)
		require.ErrorIs(t, err, reservation.ErrAlreadyDecided)
		assert.True(t, errs.Is(err, errs.ErrInvalidState))
		assert.Equal(t, reservation.StatusRejected, r.Status())

		changed, err = r.Reject(&actor, decidedAt)
		require.NoError(t, err)
		assert.False(t, changed)
	})
}

func TestStateFrom(t *testing.T) {
	blockID := uuid.New()

	s, err := reservation.StateFrom(reservation.StatusApproved, &blockID)
	require.NoError(t, err)
	assert.Equal(t, reservation.Approved{BlockID: blockID}, s)

	_, err = reservation.StateFrom(reservation.StatusApproved, nil)
	require.ErrorIs(t, err, reservation.ErrApprovedWithoutBlock)

	_, err = reservation.StateFrom("cancelled", nil)
	require.ErrorIs(t, err, reservation.ErrInvalidStatus)

	s, err = reservation.StateFrom(reservation.StatusPending, nil)
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusPending, s.Status())
}

func TestParseHours(t *testing.T) {
	h, err := reservation.ParseHours(3)
	require.NoError(t, err)
	assert.Equal(t, 3, h)

	for _, bad := range []float64{0, 1.5, 25, -2} {
		_, err := reservation.ParseHours(bad)
		require.ErrorIs(t, err, reservation.ErrInvalidDuration, "hours=%v", bad)
	}
}

func TestNewEvent(t *testing.T) {
	r, err := builder.NewReservationBuilder().BuildDomain()
	require.NoError(t, err)
	now := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)

	ev := reservation.NewEvent(reservation.EventCreated, r, now)
	assert.Equal(t, reservation.EventCreated, ev.Type)
	assert.Equal(t, r.ID(), ev.RequestID)
	assert.Equal(t, r.RoomID(), ev.RoomID)
	assert.Equal(t, 2, ev.Hours)
	assert.Equal(t, r.TotalPrice(), ev.TotalPrice)
	assert.Equal(t, reservation.StatusPending, ev.Status)

	assert.Equal(t, reservation.EventApproved, reservation.EventFor(reservation.StatusApproved))
	assert.Equal(t, reservation.EventRejected, reservation.EventFor(reservation.StatusRejected))
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReservationBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
