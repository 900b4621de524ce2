//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"studio-calendar/internal/domain/calendar"
	"studio-calendar/internal/domain/reservation"
	"studio-calendar/internal/domain/studio"
	"studio-calendar/internal/infra"
	"studio-calendar/internal/infra/pgquery"
	"studio-calendar/internal/infra/readstore"
	"studio-calendar/internal/pkg/errs"
	readstoremock "studio-calendar/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
	defaults            = studio.DefaultSettings("Asia/Seoul", 4)
)

func newStore(t *testing.T) (*readstore.CalendarReadStore, *readstoremock.MockCalendarViewQueries) {
	t.Helper()
	ctrl := gomock.NewController(t)
	q := readstoremock.NewMockCalendarViewQueries(ctrl)
	return readstore.NewCalendarReadStore(q, nil, defaults), q
}

// =============================================================================
// StudioByID Tests
// =============================================================================

func TestCalendarReadStore_StudioByID(t *testing.T) {
	ctx := context.Background()
	studioID := uuid.New()
	ownerID := uuid.New()

	testCases := []struct {
		name       string
		row        pgquery.Studio
		err        error
		expectKind infra.RepositoryErrorKind
		check      func(t *testing.T, st *studio.Studio)
	}{
		{
			name: "success: unsaved settings fall back to defaults",
			row:  pgquery.Studio{ID: studioID, OwnerID: ownerID, Name: "Studio A"},
			check: func(t *testing.T, st *studio.Studio) {
				assert.Equal(t, ownerID, st.OwnerID)
				assert.Equal(t, defaults, st.Settings)
			},
		},
		{
			name: "success: saved settings are used",
			row: pgquery.Studio{
				ID:               studioID,
				OwnerID:          ownerID,
				DayCutoffHour:    pgtype.Int4{Int32: 6, Valid: true},
				TimeZone:         pgtype.Text{String: "Asia/Tokyo", Valid: true},
				WeeklyHours:      []byte(`[{"open":true,"openTime":"09:00","closeTime":"18:00"}]`),
				HappyHourEnabled: pgtype.Bool{Bool: false, Valid: true},
				ApprovalMode:     pgtype.Text{String: "auto", Valid: true},
				CutoffValue:      pgtype.Int4{Int32: 2, Valid: true},
				CutoffUnit:       pgtype.Text{String: "days", Valid: true},
			},
			check: func(t *testing.T, st *studio.Studio) {
				assert.Equal(t, 6, st.Settings.DayCutoffHour)
				assert.Equal(t, "Asia/Tokyo", st.Settings.TimeZone)
				assert.False(t, st.Settings.HappyHourEnabled)
				assert.Equal(t, studio.ApprovalMode("auto"), st.Settings.ApprovalMode)
				require.NotNil(t, st.Settings.WeeklyHours)
				assert.Equal(t, "09:00", st.Settings.WeeklyHours[0].OpenTime)
				assert.False(t, st.Settings.WeeklyHours[1].Open)
			},
		},
		{
			name: "success: invalid settings are replaced by defaults",
			row: pgquery.Studio{
				ID:            studioID,
				OwnerID:       ownerID,
				DayCutoffHour: pgtype.Int4{Int32: 30, Valid: true},
			},
			check: func(t *testing.T, st *studio.Studio) {
				assert.Equal(t, defaults, st.Settings)
			},
		},
		{
			name:       "error: studio not found",
			err:        pgx.ErrNoRows,
			expectKind: infra.KindNotFound,
		},
		{
			name:       "error: database error",
			err:        errDBConnectionLost,
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, q := newStore(t)
			q.EXPECT().GetStudioByID(ctx, gomock.Any(), studioID).Return(tc.row, tc.err)

			st, err := store.StudioByID(ctx, studioID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				assert.Nil(t, st)
				return
			}
			require.NoError(t, err)
			tc.check(t, st)
		})
	}
}

func TestCalendarReadStore_StudioByIDMarksNotFound(t *testing.T) {
	store, q := newStore(t)
	q.EXPECT().GetStudioByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(pgquery.Studio{}, pgx.ErrNoRows)

	_, err := store.StudioByID(context.Background(), uuid.New())

	assert.True(t, errs.Is(err, errs.ErrNotFound))
}

// =============================================================================
// RoomsByStudio Tests
// =============================================================================

func TestCalendarReadStore_RoomsByStudio(t *testing.T) {
	ctx := context.Background()
	studioID := uuid.New()

	t.Run("success: rooms keep rates and hour overrides", func(t *testing.T) {
		store, q := newStore(t)
		rows := []pgquery.Room{
			{ID: uuid.New(), StudioID: studioID, Name: "Room 1", HourlyRate: "15,000원/h", HappyHourRate: "10000"},
			{ID: uuid.New(), StudioID: studioID, Name: "Room 2", WeeklyHours: []byte(`[{"open":true,"openTime":"12","closeTime":"2400"}]`)},
			{ID: uuid.New(), StudioID: studioID, Name: "Room 3", WeeklyHours: []byte(`not json`)},
		}
		q.EXPECT().ListRoomsByStudio(ctx, gomock.Any(), studioID).Return(rows, nil)

		rooms, err := store.RoomsByStudio(ctx, studioID)

		require.NoError(t, err)
		require.Len(t, rooms, 3)
		assert.Equal(t, "15,000원/h", rooms[0].Rates.HourlyRate)
		assert.Equal(t, "10000", rooms[0].Rates.HappyHourRate)
		assert.Nil(t, rooms[0].WeeklyHours)
		require.NotNil(t, rooms[1].WeeklyHours)
		assert.Equal(t, "12:00", rooms[1].WeeklyHours[0].OpenTime)
		assert.Equal(t, "24:00", rooms[1].WeeklyHours[0].CloseTime)
		assert.Nil(t, rooms[2].WeeklyHours)
	})

	t.Run("error: database error", func(t *testing.T) {
		store, q := newStore(t)
		q.EXPECT().ListRoomsByStudio(ctx, gomock.Any(), studioID).Return(nil, errDBConnectionLost)

		_, err := store.RoomsByStudio(ctx, studioID)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperation))
	})
}

// =============================================================================
// BlocksInRange / PendingRequestsInRange Tests
// =============================================================================

func TestCalendarReadStore_BlocksInRange(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()
	creator := uuid.New()
	from := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)
	params := pgquery.ListBlocksInRangeParams{RoomIDs: []uuid.UUID{roomID}, From: from, To: to}

	t.Run("success: rows map onto views", func(t *testing.T) {
		store, q := newStore(t)
		rows := []pgquery.CalendarBlock{
			{ID: uuid.New(), RoomID: roomID, StartAt: from.Add(5 * time.Hour), EndAt: from.Add(7 * time.Hour), EntryType: "reservation", Status: "approved", Title: "Band", CreatedBy: pgtype.UUID{Bytes: creator, Valid: true}},
			{ID: uuid.New(), RoomID: roomID, StartAt: from.Add(30 * time.Hour), EndAt: from.Add(32 * time.Hour), EntryType: "manual_block", Title: "Cleaning"},
		}
		q.EXPECT().ListBlocksInRange(ctx, gomock.Any(), params).Return(rows, nil)

		views, err := store.BlocksInRange(ctx, []uuid.UUID{roomID}, from, to)

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, calendar.TypeReservation, views[0].Type)
		assert.Equal(t, calendar.StatusApproved, views[0].Status)
		require.NotNil(t, views[0].CreatedBy)
		assert.Equal(t, creator, *views[0].CreatedBy)
		assert.Equal(t, calendar.TypeManualBlock, views[1].Type)
		assert.Nil(t, views[1].CreatedBy)
	})

	t.Run("error: database error", func(t *testing.T) {
		store, q := newStore(t)
		q.EXPECT().ListBlocksInRange(ctx, gomock.Any(), params).Return(nil, errDBConnectionLost)

		_, err := store.BlocksInRange(ctx, []uuid.UUID{roomID}, from, to)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestCalendarReadStore_PendingRequestsInRange(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()
	from := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	store, q := newStore(t)
	q.EXPECT().ListPendingRequestsInRange(ctx, gomock.Any(), pgquery.ListPendingRequestsInRangeParams{RoomIDs: []uuid.UUID{roomID}, From: from, To: to}).
		Return([]pgquery.ReservationRequest{
			{ID: uuid.New(), RoomID: roomID, RequesterName: "Kim Minji", Hours: 2, TotalPrice: pgtype.Int8{Int64: 30000, Valid: true}, Currency: "KRW", Status: "pending"},
			{ID: uuid.New(), RoomID: roomID, RequesterName: "Lee Jun", Hours: 1, Currency: "KRW", Status: "pending"},
		}, nil)

	views, err := store.PendingRequestsInRange(ctx, []uuid.UUID{roomID}, from, to)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, reservation.StatusPending, views[0].Status)
	require.NotNil(t, views[0].TotalPrice)
	assert.Equal(t, int64(30000), *views[0].TotalPrice)
	assert.Nil(t, views[1].TotalPrice)
	assert.Nil(t, views[1].CalendarBlockID)
}

// =============================================================================
// HappyHourRules Tests
// =============================================================================

func TestCalendarReadStore_HappyHourRules(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()

	t.Run("success: rules keep offsets past midnight", func(t *testing.T) {
		store, q := newStore(t)
		q.EXPECT().ListHappyHourRulesByRooms(ctx, gomock.Any(), []uuid.UUID{roomID}).
			Return([]pgquery.HappyHourRule{{RoomID: roomID, Weekday: 4, StartMinutes: 600, EndMinutes: 1560}}, nil)

		rules, err := store.HappyHourRules(ctx, []uuid.UUID{roomID})

		require.NoError(t, err)
		require.Len(t, rules, 1)
		assert.Equal(t, 4, rules[0].Weekday)
		assert.Equal(t, 1560, rules[0].EndMinutes)
	})

	t.Run("success: no rooms skips the query", func(t *testing.T) {
		store, _ := newStore(t)

		rules, err := store.HappyHourRules(ctx, nil)

		require.NoError(t, err)
		assert.Empty(t, rules)
	})

	t.Run("error: exclusion violation is reported as a conflict", func(t *testing.T) {
		store, q := newStore(t)
		q.EXPECT().ListHappyHourRulesByRooms(ctx, gomock.Any(), []uuid.UUID{roomID}).
			Return(nil, &pgconn.PgError{Code: "23P01"})

		_, err := store.HappyHourRules(ctx, []uuid.UUID{roomID})

		assert.True(t, infra.IsKind(err, infra.KindConflict))
		assert.True(t, errs.Is(err, errs.ErrBookingConflict))
	})
}
