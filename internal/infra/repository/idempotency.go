package repository

import (
	"context"
	"time"

	"studio-calendar/internal/infra"
	"studio-calendar/internal/infra/pgquery"
	"studio-calendar/internal/pkg/pgconv"
	"studio-calendar/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyWriteQueries interface {
	GetIdempotencyKey(ctx context.Context, db pgquery.DBTX, arg pgquery.GetIdempotencyKeyParams) (pgquery.IdempotencyKey, error)
	UpsertIdempotencyKey(ctx context.Context, db pgquery.DBTX, arg pgquery.UpsertIdempotencyKeyParams) error
	DeleteExpiredIdempotencyKeys(ctx context.Context, db pgquery.DBTX, roomID uuid.UUID, now time.Time) (int64, error)
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries) *IdempotencyRepository {
	return &IdempotencyRepository{queries: queries}
}

func (r *IdempotencyRepository) Find(ctx context.Context, tx pgquery.DBTX, roomID uuid.UUID, key string, now time.Time) (*shared.IdempotencyRecord, error) {
	row, err := r.queries.GetIdempotencyKey(ctx, tx, pgquery.GetIdempotencyKeyParams{RoomID: roomID, Key: key, Now: now})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}
	return &shared.IdempotencyRecord{
		RoomID:      row.RoomID,
		Key:         row.Key,
		RequestHash: row.RequestHash,
		RequestID:   row.ReservationRequestID,
		ExpiresAt:   row.ExpiresAt,
	}, nil
}

func (r *IdempotencyRepository) Save(ctx context.Context, tx pgquery.DBTX, rec shared.IdempotencyRecord, now time.Time) error {
	if _, err := r.queries.DeleteExpiredIdempotencyKeys(ctx, tx, rec.RoomID, now); err != nil {
		return infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}
	params := pgquery.UpsertIdempotencyKeyParams{
		RoomID:               rec.RoomID,
		Key:                  rec.Key,
		RequestHash:          rec.RequestHash,
		ReservationRequestID: rec.RequestID,
		ExpiresAt:            rec.ExpiresAt,
	}
	if err := r.queries.UpsertIdempotencyKey(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to save idempotency key", err)
	}
	return nil
}
