package shared

import (
	"context"
	"time"

	"studio-calendar/internal/domain/calendar"
	"studio-calendar/internal/domain/happyhour"
	"studio-calendar/internal/domain/reservation"
	"studio-calendar/internal/domain/studio"
	"studio-calendar/internal/infra/pgquery"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Rooms() RoomRepository
	Blocks() CalendarBlockRepository
	Reservations() ReservationRepository
	HappyHours() HappyHourRepository
	Idempotency() IdempotencyRepository
	Reads() CommandReads
	DB() pgquery.DBTX
}

type CommandReads interface {
	StudioByID(ctx context.Context, id uuid.UUID) (*studio.Studio, error)
	RoomByID(ctx context.Context, id uuid.UUID) (*studio.Room, error)
	ProfileByAccountID(ctx context.Context, accountID uuid.UUID) (*ProfileSnapshot, error)
	HappyHourRules(ctx context.Context, roomID uuid.UUID) ([]happyhour.Rule, error)
	// ActiveEntries lists blocking calendar blocks and pending or approved
	// requests of roomID overlapping [start, end). excludeRequestID is skipped.
	ActiveEntries(ctx context.Context, roomID uuid.UUID, start, end time.Time, excludeRequestID *uuid.UUID) ([]calendar.Entry, error)
}

type RoomRepository interface {
	// Lock serialises bookings of one room until the transaction ends.
	Lock(ctx context.Context, tx pgquery.DBTX, roomID uuid.UUID) error
}

type CalendarBlockRepository interface {
	Create(ctx context.Context, tx pgquery.DBTX, block *calendar.Block) error
}

type ReservationRepository interface {
	Create(ctx context.Context, tx pgquery.DBTX, req *reservation.Request) error
	FindForUpdate(ctx context.Context, tx pgquery.DBTX, id uuid.UUID) (*reservation.Request, error)
	SaveDecision(ctx context.Context, tx pgquery.DBTX, req *reservation.Request) error
}

type HappyHourRepository interface {
	ReplaceForRoom(ctx context.Context, tx pgquery.DBTX, roomID uuid.UUID, rules []happyhour.Rule) error
}

type IdempotencyRepository interface {
	// Find ignores keys that expired before now.
	Find(ctx context.Context, tx pgquery.DBTX, roomID uuid.UUID, key string, now time.Time) (*IdempotencyRecord, error)
	// Save also drops the room's expired keys.
	Save(ctx context.Context, tx pgquery.DBTX, rec IdempotencyRecord, now time.Time) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx pgquery.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
