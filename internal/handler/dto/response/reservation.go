package response

import (
	"studio-calendar/internal/domain/reservation"
	"studio-calendar/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	RequestID       uuid.UUID          `json:"requestId"`
	Status          reservation.Status `json:"status"`
	CalendarBlockID *uuid.UUID         `json:"calendarBlockId,omitempty"`
	TotalPrice      *int64             `json:"totalPrice,omitempty"`
	Currency        string             `json:"currency"`
}

type DecisionResponse struct {
	RequestID       uuid.UUID          `json:"requestId"`
	Status          reservation.Status `json:"status"`
	CalendarBlockID *uuid.UUID         `json:"calendarBlockId,omitempty"`
	Changed         bool               `json:"changed"`
}

func FromCreateResult(res *commands.CreateReservationResult) (*ReservationResponse, error) {
	out := &ReservationResponse{}
	if err := copier.Copy(out, res); err != nil {
		return nil, err
	}
	return out, nil
}

func FromDecideResult(res *commands.DecideReservationResult) (*DecisionResponse, error) {
	out := &DecisionResponse{}
	if err := copier.Copy(out, res); err != nil {
		return nil, err
	}
	return out, nil
}
