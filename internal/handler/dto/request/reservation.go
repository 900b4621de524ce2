package request

import (
	"time"

	"studio-calendar/internal/domain/reservation"
	"studio-calendar/internal/pkg/patch"
	"studio-calendar/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	StartAt        time.Time `json:"startAt" binding:"required"`
	Hours          float64   `json:"hours" binding:"required,gt=0"`
	RequesterName  *string   `json:"requesterName,omitempty" binding:"omitempty,max=100"`
	RequesterPhone *string   `json:"requesterPhone,omitempty" binding:"omitempty,max=50"`
	RequesterEmail *string   `json:"requesterEmail,omitempty" binding:"omitempty,max=200"`
	Note           *string   `json:"note,omitempty" binding:"omitempty,max=2000"`
}

// ToInput trims free-text fields. Missing fields stay empty so the use case
// can fall back to the caller's profile.
func (r CreateReservationRequest) ToInput(studioID, roomID uuid.UUID, accountID *uuid.UUID) commands.CreateReservationInput {
	return commands.CreateReservationInput{
		StudioID:       studioID,
		RoomID:         roomID,
		StartAt:        r.StartAt,
		Hours:          r.Hours,
		RequesterName:  patch.Text(r.RequesterName),
		RequesterPhone: patch.Text(r.RequesterPhone),
		RequesterEmail: patch.Text(r.RequesterEmail),
		Note:           patch.Text(r.Note),
		AccountID:      accountID,
	}
}

type DecideReservationRequest struct {
	Action string `json:"action" binding:"required,oneof=approve reject"`
}

func (r DecideReservationRequest) ToAction() reservation.Action {
	return reservation.Action(r.Action)
}
