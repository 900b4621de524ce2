package repository

import (
	"context"

	"studio-calendar/internal/domain/calendar"
	"studio-calendar/internal/infra"
	"studio-calendar/internal/infra/converter"
	"studio-calendar/internal/infra/pgquery"
)

type CalendarBlockWriteQueries interface {
	CreateCalendarBlock(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateCalendarBlockParams) error
}

type CalendarBlockRepository struct {
	queries CalendarBlockWriteQueries
}

func NewCalendarBlockRepository(queries CalendarBlockWriteQueries) *CalendarBlockRepository {
	return &CalendarBlockRepository{queries: queries}
}

func (r *CalendarBlockRepository) Create(ctx context.Context, tx pgquery.DBTX, block *calendar.Block) error {
	if err := r.queries.CreateCalendarBlock(ctx, tx, converter.BlockToInfra(block)); err != nil {
		return infra.WrapRepoErr("failed to create calendar block", err)
	}
	return nil
}
