package reservation

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventCreated  EventType = "reservation.created"
	EventApproved EventType = "reservation.approved"
	EventRejected EventType = "reservation.rejected"
)

// Event carries the facts a notification collaborator needs. It holds no user-facing copy.
type Event struct {
	Type           EventType  `json:"type"`
	RequestID      uuid.UUID  `json:"requestId"`
	StudioID       uuid.UUID  `json:"studioId"`
	RoomID         uuid.UUID  `json:"roomId"`
	RequesterName  string     `json:"requesterName"`
	RequesterPhone string     `json:"requesterPhone"`
	RequesterEmail string     `json:"requesterEmail,omitempty"`
	StartAt        time.Time  `json:"startAt"`
	EndAt          time.Time  `json:"endAt"`
	Hours          int        `json:"hours"`
	TotalPrice     *int64     `json:"totalPrice"`
	Currency       string     `json:"currency"`
	Status         Status     `json:"status"`
	BlockID        *uuid.UUID `json:"calendarBlockId,omitempty"`
	OccurredAt     time.Time  `json:"occurredAt"`
}

func NewEvent(t EventType, r *Request, now time.Time) Event {
	req := r.Requester()
	return Event{
		Type:           t,
		RequestID:      r.ID(),
		StudioID:       r.StudioID(),
		RoomID:         r.RoomID(),
		RequesterName:  req.Name,
		RequesterPhone: req.Phone,
		RequesterEmail: req.Email,
		StartAt:        r.Slot().Start(),
		EndAt:          r.Slot().End(),
		Hours:          r.Slot().Hours(),
		TotalPrice:     r.TotalPrice(),
		Currency:       r.Currency(),
		Status:         r.Status(),
		BlockID:        r.BlockID(),
		OccurredAt:     now,
	}
}

// EventFor maps a terminal status to its event type.
func EventFor(s Status) EventType {
	switch s {
	case StatusApproved:
		return EventApproved
	case StatusRejected:
		return EventRejected
	default:
		return EventCreated
	}
}
