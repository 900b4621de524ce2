package queries

import (
	"time"

	"studio-calendar/internal/domain/calendar"
	"studio-calendar/internal/domain/occupancy"
	"studio-calendar/internal/domain/openinghours"
	"studio-calendar/internal/domain/pricing"
	"studio-calendar/internal/domain/reservation"

	"github.com/google/uuid"
)

// CalendarBlockView represents read-optimized calendar block data
type CalendarBlockView struct {
	ID        uuid.UUID          `json:"id"`
	RoomID    uuid.UUID          `json:"room_id"`
	StartAt   time.Time          `json:"start_at"`
	EndAt     time.Time          `json:"end_at"`
	Type      calendar.EntryType `json:"type"`
	Status    calendar.Status    `json:"status,omitempty"`
	Title     string             `json:"title"`
	Note      string             `json:"note"`
	CreatedBy *uuid.UUID         `json:"created_by,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}

func (v *CalendarBlockView) Entry() calendar.Entry {
	return calendar.Entry{ID: v.ID, RoomID: v.RoomID, StartAt: v.StartAt, EndAt: v.EndAt, Type: v.Type, Status: v.Status}
}

// ReservationRequestView represents read-optimized reservation request data
type ReservationRequestView struct {
	ID              uuid.UUID          `json:"id"`
	StudioID        uuid.UUID          `json:"studio_id"`
	RoomID          uuid.UUID          `json:"room_id"`
	RequesterName   string             `json:"requester_name"`
	RequesterPhone  string             `json:"requester_phone"`
	RequesterEmail  string             `json:"requester_email"`
	Note            string             `json:"note"`
	StartAt         time.Time          `json:"start_at"`
	EndAt           time.Time          `json:"end_at"`
	Hours           int32              `json:"hours"`
	TotalPrice      *int64             `json:"total_price,omitempty"`
	Currency        string             `json:"currency"`
	Status          reservation.Status `json:"status"`
	CalendarBlockID *uuid.UUID         `json:"calendar_block_id,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
}

type HappyHourInstanceView struct {
	RoomID  uuid.UUID `json:"room_id"`
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
}

type RoomView struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Rates       pricing.RateCard  `json:"rates"`
	WeeklyHours openinghours.Week `json:"weekly_hours"`
}

type CalendarView struct {
	StudioID        uuid.UUID                 `json:"studio_id"`
	TimeZone        string                    `json:"time_zone"`
	DayCutoffHour   int                       `json:"day_cutoff_hour"`
	From            time.Time                 `json:"from"`
	To              time.Time                 `json:"to"`
	Rooms           []RoomView                `json:"rooms"`
	Blocks          []*CalendarBlockView      `json:"blocks"`
	PendingRequests []*ReservationRequestView `json:"pending_requests"`
	HappyHours      []HappyHourInstanceView   `json:"happy_hours"`
}

type OccupancySummaryView struct {
	StudioID       uuid.UUID         `json:"studio_id"`
	WeekOccupancy  occupancy.Period  `json:"week_occupancy"`
	MonthOccupancy occupancy.Period  `json:"month_occupancy"`
	MonthRevenue   occupancy.Revenue `json:"month_revenue"`
	Currency       string            `json:"currency"`
	GeneratedAt    time.Time         `json:"generated_at"`
}
