package pgquery

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const getIdempotencyKey = `-- name: GetIdempotencyKey :one
SELECT room_id, key, request_hash, reservation_request_id, expires_at
FROM idempotency_keys
WHERE room_id = $1 AND key = $2 AND expires_at > $3
`

type GetIdempotencyKeyParams struct {
	RoomID uuid.UUID
	Key    string
	Now    time.Time
}

func (q *Queries) GetIdempotencyKey(ctx context.Context, db DBTX, arg GetIdempotencyKeyParams) (IdempotencyKey, error) {
	row := db.QueryRow(ctx, getIdempotencyKey, arg.RoomID, arg.Key, arg.Now)
	var i IdempotencyKey
	err := row.Scan(&i.RoomID, &i.Key, &i.RequestHash, &i.ReservationRequestID, &i.ExpiresAt)
	return i, err
}

const upsertIdempotencyKey = `-- name: UpsertIdempotencyKey :exec
INSERT INTO idempotency_keys (room_id, key, request_hash, reservation_request_id, expires_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (room_id, key) DO UPDATE SET
    request_hash = EXCLUDED.request_hash,
    reservation_request_id = EXCLUDED.reservation_request_id,
    expires_at = EXCLUDED.expires_at,
    created_at = now()
`

type UpsertIdempotencyKeyParams struct {
	RoomID               uuid.UUID
	Key                  string
	RequestHash          string
	ReservationRequestID uuid.UUID
	ExpiresAt            time.Time
}

func (q *Queries) UpsertIdempotencyKey(ctx context.Context, db DBTX, arg UpsertIdempotencyKeyParams) error {
	_, err := db.Exec(ctx, upsertIdempotencyKey, arg.RoomID, arg.Key, arg.RequestHash, arg.ReservationRequestID, arg.ExpiresAt)
	return err
}

const deleteExpiredIdempotencyKeys = `-- name: DeleteExpiredIdempotencyKeys :execrows
DELETE FROM idempotency_keys
WHERE room_id = $1 AND expires_at <= $2
`

func (q *Queries) DeleteExpiredIdempotencyKeys(ctx context.Context, db DBTX, roomID uuid.UUID, now time.Time) (int64, error) {
	result, err := db.Exec(ctx, deleteExpiredIdempotencyKeys, roomID, now)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
