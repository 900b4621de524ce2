package pgquery

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationRequestColumns = `id, studio_id, room_id, requester_account_id, requester_name, requester_phone,
       requester_email, note, start_at, end_at, hours, total_price, currency, status,
       calendar_block_id, decided_by, decided_at, created_at, updated_at`

const createReservationRequest = `-- name: CreateReservationRequest :exec
INSERT INTO reservation_requests (` + reservationRequestColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
`

type CreateReservationRequestParams = ReservationRequest

func (q *Queries) CreateReservationRequest(ctx context.Context, db DBTX, arg CreateReservationRequestParams) error {
	_, err := db.Exec(ctx, createReservationRequest,
		arg.ID,
		arg.StudioID,
		arg.RoomID,
		arg.RequesterAccountID,
		arg.RequesterName,
		arg.RequesterPhone,
		arg.RequesterEmail,
		arg.Note,
		arg.StartAt,
		arg.EndAt,
		arg.Hours,
		arg.TotalPrice,
		arg.Currency,
		arg.Status,
		arg.CalendarBlockID,
		arg.DecidedBy,
		arg.DecidedAt,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const getReservationRequestForUpdate = `-- name: GetReservationRequestForUpdate :one
SELECT ` + reservationRequestColumns + `
FROM reservation_requests
WHERE id = $1
FOR UPDATE
`

func (q *Queries) GetReservationRequestForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (ReservationRequest, error) {
	row := db.QueryRow(ctx, getReservationRequestForUpdate, id)
	return scanReservationRequest(row)
}

const updateReservationDecision = `-- name: UpdateReservationDecision :execrows
UPDATE reservation_requests
SET status = $2,
    calendar_block_id = $3,
    decided_by = $4,
    decided_at = $5,
    updated_at = $6
WHERE id = $1
`

type UpdateReservationDecisionParams struct {
	ID              uuid.UUID
	Status          string
	CalendarBlockID pgtype.UUID
	DecidedBy       pgtype.UUID
	DecidedAt       pgtype.Timestamptz
	UpdatedAt       time.Time
}

func (q *Queries) UpdateReservationDecision(ctx context.Context, db DBTX, arg UpdateReservationDecisionParams) (int64, error) {
	result, err := db.Exec(ctx, updateReservationDecision,
		arg.ID,
		arg.Status,
		arg.CalendarBlockID,
		arg.DecidedBy,
		arg.DecidedAt,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const listPendingRequestsInRange = `-- name: ListPendingRequestsInRange :many
SELECT ` + reservationRequestColumns + `
FROM reservation_requests
WHERE room_id = ANY($1::uuid[])
  AND status = 'pending'
  AND start_at < $3
  AND end_at > $2
ORDER BY start_at, room_id, id
`

type ListPendingRequestsInRangeParams struct {
	RoomIDs []uuid.UUID
	From    time.Time
	To      time.Time
}

func (q *Queries) ListPendingRequestsInRange(ctx context.Context, db DBTX, arg ListPendingRequestsInRangeParams) ([]ReservationRequest, error) {
	rows, err := db.Query(ctx, listPendingRequestsInRange, arg.RoomIDs, arg.From, arg.To)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ReservationRequest
	for rows.Next() {
		i, err := scanReservationRequest(rows)
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

func scanReservationRequest(row rowScanner) (ReservationRequest, error) {
	var i ReservationRequest
	err := row.Scan(
		&i.ID,
		&i.StudioID,
		&i.RoomID,
		&i.RequesterAccountID,
		&i.RequesterName,
		&i.RequesterPhone,
		&i.RequesterEmail,
		&i.Note,
		&i.StartAt,
		&i.EndAt,
		&i.Hours,
		&i.TotalPrice,
		&i.Currency,
		&i.Status,
		&i.CalendarBlockID,
		&i.DecidedBy,
		&i.DecidedAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
