package readstore

import (
	"context"

	"studio-calendar/internal/domain/studio"
	"studio-calendar/internal/infra"
	"studio-calendar/internal/infra/converter"
	"studio-calendar/internal/infra/pgquery"
	"studio-calendar/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type StudioViewQueries interface {
	GetStudioByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Studio, error)
	GetRoomByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Room, error)
	ListRoomsByStudio(ctx context.Context, db pgquery.DBTX, studioID uuid.UUID) ([]pgquery.Room, error)
}

type StudioReadStore struct {
	queries  StudioViewQueries
	db       pgquery.DBTX
	defaults studio.Settings
}

func NewStudioReadStore(queries StudioViewQueries, db pgquery.DBTX, defaults studio.Settings) *StudioReadStore {
	return &StudioReadStore{
		queries:  queries,
		db:       db,
		defaults: defaults,
	}
}

func (r *StudioReadStore) FindByID(ctx context.Context, id uuid.UUID) (*studio.Studio, error) {
	row, err := r.queries.GetStudioByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("studio not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find studio by ID", err)
	}
	return converter.StudioToDomain(row, r.defaults), nil
}

func (r *StudioReadStore) FindRoomByID(ctx context.Context, id uuid.UUID) (*studio.Room, error) {
	row, err := r.queries.GetRoomByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	room := converter.RoomToDomain(row)
	return &room, nil
}

func (r *StudioReadStore) ListRooms(ctx context.Context, studioID uuid.UUID) ([]studio.Room, error) {
	rows, err := r.queries.ListRoomsByStudio(ctx, r.db, studioID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	rooms := make([]studio.Room, len(rows))
	for i, row := range rows {
		rooms[i] = converter.RoomToDomain(row)
	}
	return rooms, nil
}
