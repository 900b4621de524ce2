package repository

import (
	"context"

	"studio-calendar/internal/domain/reservation"
	"studio-calendar/internal/infra"
	"studio-calendar/internal/infra/converter"
	"studio-calendar/internal/infra/pgquery"
	"studio-calendar/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservationRequest(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateReservationRequestParams) error
	GetReservationRequestForUpdate(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.ReservationRequest, error)
	UpdateReservationDecision(ctx context.Context, db pgquery.DBTX, arg pgquery.UpdateReservationDecisionParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
}

func NewReservationRepository(queries ReservationWriteQueries) *ReservationRepository {
	return &ReservationRepository{queries: queries}
}

func (r *ReservationRepository) Create(ctx context.Context, tx pgquery.DBTX, req *reservation.Request) error {
	if err := r.queries.CreateReservationRequest(ctx, tx, converter.ReservationToInfra(req)); err != nil {
		return infra.WrapRepoErr("failed to create reservation request", err)
	}
	return nil
}

func (r *ReservationRepository) FindForUpdate(ctx context.Context, tx pgquery.DBTX, id uuid.UUID) (*reservation.Request, error) {
	row, err := r.queries.GetReservationRequestForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation request", err)
	}
	req, err := converter.ReservationToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation request is inconsistent", err, infra.KindDBFailure)
	}
	return req, nil
}

func (r *ReservationRepository) SaveDecision(ctx context.Context, tx pgquery.DBTX, req *reservation.Request) error {
	affected, err := r.queries.UpdateReservationDecision(ctx, tx, converter.DecisionToInfra(req))
	if err != nil {
		return infra.WrapRepoErr("failed to save reservation decision", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reservation request not found", nil, infra.KindNotFound)
	}
	return nil
}
