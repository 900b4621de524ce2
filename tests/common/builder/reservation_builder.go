//go:build unit || e2e

package builder

import (
	"time"

	"studio-calendar/internal/domain/bizday"
	"studio-calendar/internal/domain/reservation"
	reqdto "studio-calendar/internal/handler/dto/request"
	"studio-calendar/internal/usecase/commands"

	"github.com/google/uuid"
)

// KST is the studio zone used across fixtures.
var KST = time.FixedZone("KST", 9*60*60)

type ReservationBuilder struct {
	StudioID     uuid.UUID
	RoomID       uuid.UUID
	AccountID    *uuid.UUID
	Name         string
	Phone        string
	ProfilePhone string
	Email        string
	Note         string
	StartAt      time.Time
	Hours        int
	TotalPrice   *int64
	Currency     string
	Now          time.Time
	CutoffHour   int
}

func NewReservationBuilder() *ReservationBuilder {
	price := int64(30000)
	return &ReservationBuilder{
		StudioID:   uuid.New(),
		RoomID:     uuid.New(),
		Name:       "Kim Minji",
		Phone:      "010-1234-5678",
		Email:      "minji@example.com",
		Note:       "Band rehearsal",
		StartAt:    time.Date(2026, 3, 10, 14, 0, 0, 0, KST),
		Hours:      2,
		TotalPrice: &price,
		Currency:   "KRW",
		Now:        time.Date(2026, 3, 9, 12, 0, 0, 0, KST),
		CutoffHour: bizday.DefaultCutoff,
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) Zone() bizday.Zone {
	return bizday.Zone{Location: KST, CutoffHour: r.CutoffHour}
}

// Build methods
func (r *ReservationBuilder) BuildDomain() (*reservation.Request, error) {
	requester, err := reservation.NewRequester(r.AccountID, r.Name, r.Phone, r.ProfilePhone, r.Email)
	if err != nil {
		return nil, err
	}
	slot, err := reservation.NewSlot(r.StartAt, r.Hours, r.Zone())
	if err != nil {
		return nil, err
	}
	note, err := reservation.NewNote(r.Note)
	if err != nil {
		return nil, err
	}
	return reservation.NewRequest(r.StudioID, r.RoomID, requester, slot, note, r.TotalPrice, r.Currency, r.Now), nil
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		StartAt:        r.StartAt,
		Hours:          float64(r.Hours),
		RequesterName:  optional(r.Name),
		RequesterPhone: optional(r.Phone),
		RequesterEmail: optional(r.Email),
		Note:           optional(r.Note),
	}
}

func (r *ReservationBuilder) BuildCreateResult(status reservation.Status) *commands.CreateReservationResult {
	return &commands.CreateReservationResult{
		RequestID:  uuid.New(),
		Status:     status,
		TotalPrice: r.TotalPrice,
		Currency:   r.Currency,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
