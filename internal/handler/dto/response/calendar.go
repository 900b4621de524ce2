package response

import (
	"time"

	"studio-calendar/internal/domain/calendar"
	"studio-calendar/internal/domain/openinghours"
	"studio-calendar/internal/domain/pricing"
	"studio-calendar/internal/domain/reservation"
	"studio-calendar/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CalendarBlockResponse struct {
	ID        uuid.UUID          `json:"id"`
	RoomID    uuid.UUID          `json:"roomId"`
	StartAt   time.Time          `json:"startAt"`
	EndAt     time.Time          `json:"endAt"`
	Type      calendar.EntryType `json:"type"`
	Status    calendar.Status    `json:"status,omitempty"`
	Title     string             `json:"title"`
	Note      string             `json:"note,omitempty"`
	CreatedBy *uuid.UUID         `json:"createdBy,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
}

type PendingRequestResponse struct {
	ID             uuid.UUID          `json:"id"`
	RoomID         uuid.UUID          `json:"roomId"`
	RequesterName  string             `json:"requesterName"`
	RequesterPhone string             `json:"requesterPhone"`
	RequesterEmail string             `json:"requesterEmail"`
	Note           string             `json:"note,omitempty"`
	StartAt        time.Time          `json:"startAt"`
	EndAt          time.Time          `json:"endAt"`
	Hours          int32              `json:"hours"`
	TotalPrice     *int64             `json:"totalPrice,omitempty"`
	Currency       string             `json:"currency"`
	Status         reservation.Status `json:"status"`
	CreatedAt      time.Time          `json:"createdAt"`
}

type HappyHourInstanceResponse struct {
	RoomID  uuid.UUID `json:"roomId"`
	StartAt time.Time `json:"startAt"`
	EndAt   time.Time `json:"endAt"`
}

type RoomResponse struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Rates       pricing.RateCard  `json:"rates"`
	WeeklyHours openinghours.Week `json:"weeklyHours"`
}

type CalendarResponse struct {
	StudioID        uuid.UUID                   `json:"studioId"`
	TimeZone        string                      `json:"timeZone"`
	DayCutoffHour   int                         `json:"dayCutoffHour"`
	From            time.Time                   `json:"from"`
	To              time.Time                   `json:"to"`
	Rooms           []RoomResponse              `json:"rooms"`
	Blocks          []CalendarBlockResponse     `json:"blocks"`
	PendingRequests []PendingRequestResponse    `json:"pendingRequests"`
	HappyHours      []HappyHourInstanceResponse `json:"happyHours"`
}

// FromCalendarView never returns null slices so clients can iterate blindly.
func FromCalendarView(v *queries.CalendarView) (*CalendarResponse, error) {
	out := &CalendarResponse{}
	if err := copier.Copy(out, v); err != nil {
		return nil, err
	}
	if out.Rooms == nil {
		out.Rooms = []RoomResponse{}
	}
	if out.Blocks == nil {
		out.Blocks = []CalendarBlockResponse{}
	}
	if out.PendingRequests == nil {
		out.PendingRequests = []PendingRequestResponse{}
	}
	if out.HappyHours == nil {
		out.HappyHours = []HappyHourInstanceResponse{}
	}
	return out, nil
}
