package readstore

import (
	"context"
	"time"

	"studio-calendar/internal/domain/calendar"
	"studio-calendar/internal/domain/happyhour"
	"studio-calendar/internal/domain/reservation"
	"studio-calendar/internal/domain/studio"
	"studio-calendar/internal/infra"
	"studio-calendar/internal/infra/pgquery"
	"studio-calendar/internal/pkg/pgconv"
	"studio-calendar/internal/usecase/queries"

	"github.com/google/uuid"
)

type CalendarViewQueries interface {
	StudioViewQueries
	HappyHourViewQueries
	ListBlocksInRange(ctx context.Context, db pgquery.DBTX, arg pgquery.ListBlocksInRangeParams) ([]pgquery.CalendarBlock, error)
	ListPendingRequestsInRange(ctx context.Context, db pgquery.DBTX, arg pgquery.ListPendingRequestsInRangeParams) ([]pgquery.ReservationRequest, error)
}

// CalendarReadStore serves the calendar and occupancy queries.
type CalendarReadStore struct {
	queries    CalendarViewQueries
	db         pgquery.DBTX
	studios    *StudioReadStore
	happyHours *HappyHourReadStore
}

func NewCalendarReadStore(q CalendarViewQueries, db pgquery.DBTX, defaults studio.Settings) *CalendarReadStore {
	return &CalendarReadStore{
		queries:    q,
		db:         db,
		studios:    NewStudioReadStore(q, db, defaults),
		happyHours: NewHappyHourReadStore(q, db),
	}
}

func (r *CalendarReadStore) StudioByID(ctx context.Context, id uuid.UUID) (*studio.Studio, error) {
	return r.studios.FindByID(ctx, id)
}

func (r *CalendarReadStore) RoomsByStudio(ctx context.Context, studioID uuid.UUID) ([]studio.Room, error) {
	return r.studios.ListRooms(ctx, studioID)
}

func (r *CalendarReadStore) HappyHourRules(ctx context.Context, roomIDs []uuid.UUID) ([]happyhour.Rule, error) {
	return r.happyHours.ListByRooms(ctx, roomIDs)
}

func (r *CalendarReadStore) BlocksInRange(ctx context.Context, roomIDs []uuid.UUID, from, to time.Time) ([]*queries.CalendarBlockView, error) {
	rows, err := r.queries.ListBlocksInRange(ctx, r.db, pgquery.ListBlocksInRangeParams{RoomIDs: roomIDs, From: from, To: to})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list calendar blocks", err)
	}
	result := make([]*queries.CalendarBlockView, len(rows))
	for i, row := range rows {
		result[i] = rowToCalendarBlockView(row)
	}
	return result, nil
}

func (r *CalendarReadStore) PendingRequestsInRange(ctx context.Context, roomIDs []uuid.UUID, from, to time.Time) ([]*queries.ReservationRequestView, error) {
	rows, err := r.queries.ListPendingRequestsInRange(ctx, r.db, pgquery.ListPendingRequestsInRangeParams{RoomIDs: roomIDs, From: from, To: to})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending reservation requests", err)
	}
	result := make([]*queries.ReservationRequestView, len(rows))
	for i, row := range rows {
		result[i] = rowToReservationRequestView(row)
	}
	return result, nil
}

func rowToCalendarBlockView(row pgquery.CalendarBlock) *queries.CalendarBlockView {
	return &queries.CalendarBlockView{
		ID:        row.ID,
		RoomID:    row.RoomID,
		StartAt:   row.StartAt,
		EndAt:     row.EndAt,
		Type:      calendar.EntryType(row.EntryType),
		Status:    calendar.Status(row.Status),
		Title:     row.Title,
		Note:      row.Note,
		CreatedBy: pgconv.UUIDPtrFromPgtype(row.CreatedBy),
		CreatedAt: row.CreatedAt,
	}
}

func rowToReservationRequestView(row pgquery.ReservationRequest) *queries.ReservationRequestView {
	return &queries.ReservationRequestView{
		ID:              row.ID,
		StudioID:        row.StudioID,
		RoomID:          row.RoomID,
		RequesterName:   row.RequesterName,
		RequesterPhone:  row.RequesterPhone,
		RequesterEmail:  row.RequesterEmail,
		Note:            row.Note,
		StartAt:         row.StartAt,
		EndAt:           row.EndAt,
		Hours:           row.Hours,
		TotalPrice:      pgconv.Int64PtrFromPgtype(row.TotalPrice),
		Currency:        row.Currency,
		Status:          reservation.Status(row.Status),
		CalendarBlockID: pgconv.UUIDPtrFromPgtype(row.CalendarBlockID),
		CreatedAt:       row.CreatedAt,
	}
}
