//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestStudio(t *testing.T, db DBLike, ownerID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	studioID := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO studios (id, owner_id, name) VALUES ($1, $2, $3)", studioID, ownerID, name)
	require.NoError(t, err)
	return studioID
}

type SettingsFixture struct {
	DayCutoffHour    int
	TimeZone         string
	HappyHourEnabled bool
	ApprovalMode     string
	CutoffValue      int
	CutoffUnit       string
}

func DefaultSettingsFixture() SettingsFixture {
	return SettingsFixture{
		DayCutoffHour:    4,
		TimeZone:         "Asia/Seoul",
		HappyHourEnabled: true,
		ApprovalMode:     "manual",
		CutoffUnit:       "hours",
	}
}

// SaveTestSettings upserts the studio's calendar settings. Weekly hours stay NULL.
func SaveTestSettings(t *testing.T, db DBLike, studioID uuid.UUID, s SettingsFixture) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO calendar_settings (studio_id, day_cutoff_hour, time_zone, happy_hour_enabled, approval_mode, cutoff_value, cutoff_unit)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (studio_id) DO UPDATE SET
		    day_cutoff_hour = EXCLUDED.day_cutoff_hour,
		    time_zone = EXCLUDED.time_zone,
		    happy_hour_enabled = EXCLUDED.happy_hour_enabled,
		    approval_mode = EXCLUDED.approval_mode,
		    cutoff_value = EXCLUDED.cutoff_value,
		    cutoff_unit = EXCLUDED.cutoff_unit`,
		studioID, s.DayCutoffHour, s.TimeZone, s.HappyHourEnabled, s.ApprovalMode, s.CutoffValue, s.CutoffUnit)
	require.NoError(t, err)
}

// SaveBareSettings inserts a settings row carrying only the studio id so the
// column defaults apply.
func SaveBareSettings(t *testing.T, db DBLike, studioID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(), "INSERT INTO calendar_settings (studio_id) VALUES ($1)", studioID)
	require.NoError(t, err)
}

func CreateTestRoom(t *testing.T, db DBLike, studioID uuid.UUID, name, hourlyRate, happyHourRate string) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO rooms (id, studio_id, name, hourly_rate, happy_hour_rate) VALUES ($1, $2, $3, $4, $5)",
		roomID, studioID, name, hourlyRate, happyHourRate)
	require.NoError(t, err)
	return roomID
}

func CreateTestProfile(t *testing.T, db DBLike, accountID uuid.UUID, name, phone, email string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO profiles (account_id, display_name, phone, email) VALUES ($1, $2, $3, $4) ON CONFLICT (account_id) DO NOTHING",
		accountID, name, phone, email)
	require.NoError(t, err)
}

func CreateManualBlock(t *testing.T, db DBLike, roomID uuid.UUID, start, end time.Time, title, note string, createdBy uuid.UUID) uuid.UUID {
	t.Helper()

	blockID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO calendar_blocks (id, room_id, start_at, end_at, entry_type, title, note, created_by) VALUES ($1, $2, $3, $4, 'manual_block', $5, $6, $7)",
		blockID, roomID, start, end, title, note, createdBy)
	require.NoError(t, err)
	return blockID
}

func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	query := "SELECT count(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
