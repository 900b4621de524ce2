package readstore

import (
	"context"
	"time"

	"studio-calendar/internal/domain/calendar"
	"studio-calendar/internal/infra"
	"studio-calendar/internal/infra/converter"
	"studio-calendar/internal/infra/pgquery"
	"studio-calendar/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	ListActiveEntries(ctx context.Context, db pgquery.DBTX, arg pgquery.ListActiveEntriesParams) ([]pgquery.ListActiveEntriesRow, error)
}

type AvailabilityReadStore struct {
	queries AvailabilityQueries
	db      pgquery.DBTX
}

func NewAvailabilityReadStore(queries AvailabilityQueries, db pgquery.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{queries: queries, db: db}
}

func (r *AvailabilityReadStore) ActiveEntries(ctx context.Context, roomID uuid.UUID, start, end time.Time, excludeRequestID *uuid.UUID) ([]calendar.Entry, error) {
	rows, err := r.queries.ListActiveEntries(ctx, r.db, pgquery.ListActiveEntriesParams{
		RoomID:           roomID,
		From:             start,
		To:               end,
		ExcludeRequestID: pgconv.UUIDPtrToPgtype(excludeRequestID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active calendar entries", err)
	}
	entries := make([]calendar.Entry, len(rows))
	for i, row := range rows {
		entries[i] = converter.EntryToDomain(row)
	}
	return entries, nil
}
