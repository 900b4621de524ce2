package shared

import (
	"context"
	"time"

	"studio-calendar/internal/domain/reservation"

	"github.com/google/uuid"
)

// ProfileSnapshot is the account profile used to fill in requester details.
type ProfileSnapshot struct {
	AccountID   uuid.UUID
	DisplayName string
	Phone       string
	Email       string
}

// IdempotencyRecord remembers which request a client key produced.
type IdempotencyRecord struct {
	RoomID      uuid.UUID
	Key         string
	RequestHash string
	RequestID   uuid.UUID
	ExpiresAt   time.Time
}

// EventPublisher hands domain events to the notification side.
// Implementations must not block the caller and must not fail the booking.
type EventPublisher interface {
	Publish(ctx context.Context, event reservation.Event)
}
