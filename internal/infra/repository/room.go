package repository

import (
	"context"

	"studio-calendar/internal/infra"
	"studio-calendar/internal/infra/pgquery"
	"studio-calendar/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RoomLockQueries interface {
	LockRoom(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (uuid.UUID, error)
}

type RoomRepository struct {
	queries RoomLockQueries
}

func NewRoomRepository(queries RoomLockQueries) *RoomRepository {
	return &RoomRepository{queries: queries}
}

// Lock takes a row lock on the room; it is released when tx ends.
func (r *RoomRepository) Lock(ctx context.Context, tx pgquery.DBTX, roomID uuid.UUID) error {
	if _, err := r.queries.LockRoom(ctx, tx, roomID); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock room", err)
	}
	return nil
}
