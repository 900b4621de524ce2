package pgquery

import (
	"context"

	"github.com/google/uuid"
)

const getRoomByID = `-- name: GetRoomByID :one
SELECT id, studio_id, name, hourly_rate, min_rate, flat_rate, happy_hour_rate, daily_rate, weekly_hours
FROM rooms
WHERE id = $1
`

func (q *Queries) GetRoomByID(ctx context.Context, db DBTX, id uuid.UUID) (Room, error) {
	row := db.QueryRow(ctx, getRoomByID, id)
	return scanRoom(row)
}

const listRoomsByStudio = `-- name: ListRoomsByStudio :many
SELECT id, studio_id, name, hourly_rate, min_rate, flat_rate, happy_hour_rate, daily_rate, weekly_hours
FROM rooms
WHERE studio_id = $1
ORDER BY name, id
`

func (q *Queries) ListRoomsByStudio(ctx context.Context, db DBTX, studioID uuid.UUID) ([]Room, error) {
	rows, err := db.Query(ctx, listRoomsByStudio, studioID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Room
	for rows.Next() {
		i, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const lockRoom = `-- name: LockRoom :one
SELECT id FROM rooms WHERE id = $1 FOR UPDATE
`

func (q *Queries) LockRoom(ctx context.Context, db DBTX, id uuid.UUID) (uuid.UUID, error) {
	row := db.QueryRow(ctx, lockRoom, id)
	var locked uuid.UUID
	err := row.Scan(&locked)
	return locked, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoom(row rowScanner) (Room, error) {
	var i Room
	err := row.Scan(
		&i.ID,
		&i.StudioID,
		&i.Name,
		&i.HourlyRate,
		&i.MinRate,
		&i.FlatRate,
		&i.HappyHourRate,
		&i.DailyRate,
		&i.WeeklyHours,
	)
	return i, err
}
