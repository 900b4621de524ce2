package converter

import (
	"studio-calendar/internal/domain/reservation"
	"studio-calendar/internal/infra/pgquery"
	"studio-calendar/internal/pkg/errs"
	"studio-calendar/internal/pkg/pgconv"
)

func ReservationToInfra(req *reservation.Request) pgquery.CreateReservationRequestParams {
	requester := req.Requester()
	slot := req.Slot()
	return pgquery.CreateReservationRequestParams{
		ID:                 req.ID(),
		StudioID:           req.StudioID(),
		RoomID:             req.RoomID(),
		RequesterAccountID: pgconv.UUIDPtrToPgtype(requester.AccountID),
		RequesterName:      requester.Name,
		RequesterPhone:     requester.Phone,
		RequesterEmail:     requester.Email,
		Note:               req.Note(),
		StartAt:            slot.Start(),
		EndAt:              slot.End(),
		Hours:              int32(slot.Hours()), // #nosec G115 -- bounded by MaxHours
		TotalPrice:         pgconv.Int64PtrToPgtype(req.TotalPrice()),
		Currency:           req.Currency(),
		Status:             req.Status().String(),
		CalendarBlockID:    pgconv.UUIDPtrToPgtype(req.BlockID()),
		DecidedBy:          pgconv.UUIDPtrToPgtype(req.DecidedBy()),
		DecidedAt:          pgconv.TimePtrToPgtype(req.DecidedAt()),
		CreatedAt:          req.CreatedAt(),
		UpdatedAt:          req.UpdatedAt(),
	}
}

func DecisionToInfra(req *reservation.Request) pgquery.UpdateReservationDecisionParams {
	return pgquery.UpdateReservationDecisionParams{
		ID:              req.ID(),
		Status:          req.Status().String(),
		CalendarBlockID: pgconv.UUIDPtrToPgtype(req.BlockID()),
		DecidedBy:       pgconv.UUIDPtrToPgtype(req.DecidedBy()),
		DecidedAt:       pgconv.TimePtrToPgtype(req.DecidedAt()),
		UpdatedAt:       req.UpdatedAt(),
	}
}

func ReservationToDomain(row pgquery.ReservationRequest) (*reservation.Request, error) {
	blockID := pgconv.UUIDPtrFromPgtype(row.CalendarBlockID)
	state, err := reservation.StateFrom(reservation.Status(row.Status), blockID)
	if err != nil {
		return nil, errs.Wrapf(err, "reservation request %s", row.ID)
	}
	requester := reservation.Requester{
		AccountID: pgconv.UUIDPtrFromPgtype(row.RequesterAccountID),
		Name:      row.RequesterName,
		Phone:     row.RequesterPhone,
		Email:     row.RequesterEmail,
	}
	return reservation.ReconstructRequest(
		row.ID, row.StudioID, row.RoomID,
		requester,
		row.Note,
		reservation.ReconstructSlot(row.StartAt, int(row.Hours)),
		pgconv.Int64PtrFromPgtype(row.TotalPrice),
		row.Currency,
		state,
		pgconv.UUIDPtrFromPgtype(row.DecidedBy),
		pgconv.TimePtrFromPgtype(row.DecidedAt),
		row.CreatedAt, row.UpdatedAt,
	), nil
}
