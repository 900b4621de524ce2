package pgquery

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createCalendarBlock = `-- name: CreateCalendarBlock :exec
INSERT INTO calendar_blocks (id, room_id, start_at, end_at, entry_type, status, title, note, created_by, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`

type CreateCalendarBlockParams struct {
	ID        uuid.UUID
	RoomID    uuid.UUID
	StartAt   time.Time
	EndAt     time.Time
	EntryType string
	Status    string
	Title     string
	Note      string
	CreatedBy pgtype.UUID
	CreatedAt time.Time
}

func (q *Queries) CreateCalendarBlock(ctx context.Context, db DBTX, arg CreateCalendarBlockParams) error {
	_, err := db.Exec(ctx, createCalendarBlock,
		arg.ID,
		arg.RoomID,
		arg.StartAt,
		arg.EndAt,
		arg.EntryType,
		arg.Status,
		arg.Title,
		arg.Note,
		arg.CreatedBy,
		arg.CreatedAt,
	)
	return err
}

const listBlocksInRange = `-- name: ListBlocksInRange :many
SELECT id, room_id, start_at, end_at, entry_type, status, title, note, created_by, created_at
FROM calendar_blocks
WHERE room_id = ANY($1::uuid[])
  AND start_at < $3
  AND end_at > $2
ORDER BY start_at, room_id, id
`

type ListBlocksInRangeParams struct {
	RoomIDs []uuid.UUID
	From    time.Time
	To      time.Time
}

func (q *Queries) ListBlocksInRange(ctx context.Context, db DBTX, arg ListBlocksInRangeParams) ([]CalendarBlock, error) {
	rows, err := db.Query(ctx, listBlocksInRange, arg.RoomIDs, arg.From, arg.To)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CalendarBlock
	for rows.Next() {
		var i CalendarBlock
		if err := rows.Scan(
			&i.ID,
			&i.RoomID,
			&i.StartAt,
			&i.EndAt,
			&i.EntryType,
			&i.Status,
			&i.Title,
			&i.Note,
			&i.CreatedBy,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Blocking blocks and live requests of one room. Approved requests appear
// twice (request and block); callers only need to know whether any overlap.
const listActiveEntries = `-- name: ListActiveEntries :many
SELECT id, room_id, start_at, end_at, entry_type, status
FROM calendar_blocks
WHERE room_id = $1
  AND start_at < $3
  AND end_at > $2
  AND (entry_type = 'manual_block' OR status IN ('pending', 'approved'))
UNION ALL
SELECT id, room_id, start_at, end_at, 'reservation' AS entry_type, status
FROM reservation_requests
WHERE room_id = $1
  AND start_at < $3
  AND end_at > $2
  AND status IN ('pending', 'approved')
  AND ($4::uuid IS NULL OR id <> $4::uuid)
ORDER BY start_at
`

type ListActiveEntriesParams struct {
	RoomID           uuid.UUID
	From             time.Time
	To               time.Time
	ExcludeRequestID pgtype.UUID
}

type ListActiveEntriesRow struct {
	ID        uuid.UUID
	RoomID    uuid.UUID
	StartAt   time.Time
	EndAt     time.Time
	EntryType string
	Status    string
}

func (q *Queries) ListActiveEntries(ctx context.Context, db DBTX, arg ListActiveEntriesParams) ([]ListActiveEntriesRow, error) {
	rows, err := db.Query(ctx, listActiveEntries, arg.RoomID, arg.From, arg.To, arg.ExcludeRequestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListActiveEntriesRow
	for rows.Next() {
		var i ListActiveEntriesRow
		if err := rows.Scan(&i.ID, &i.RoomID, &i.StartAt, &i.EndAt, &i.EntryType, &i.Status); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
