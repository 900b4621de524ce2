package pgquery

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Studio struct {
	ID               uuid.UUID
	OwnerID          uuid.UUID
	Name             string
	DayCutoffHour    pgtype.Int4
	TimeZone         pgtype.Text
	WeeklyHours      []byte
	HappyHourEnabled pgtype.Bool
	ApprovalMode     pgtype.Text
	CutoffValue      pgtype.Int4
	CutoffUnit       pgtype.Text
}

type Room struct {
	ID            uuid.UUID
	StudioID      uuid.UUID
	Name          string
	HourlyRate    string
	MinRate       string
	FlatRate      string
	HappyHourRate string
	DailyRate     string
	WeeklyHours   []byte
}

type Profile struct {
	AccountID   uuid.UUID
	DisplayName string
	Phone       string
	Email       string
}

type CalendarBlock struct {
	ID        uuid.UUID
	RoomID    uuid.UUID
	StartAt   time.Time
	EndAt     time.Time
	EntryType string
	Status    string
	Title     string
	Note      string
	CreatedBy pgtype.UUID
	CreatedAt time.Time
}

type ReservationRequest struct {
	ID                 uuid.UUID
	StudioID           uuid.UUID
	RoomID             uuid.UUID
	RequesterAccountID pgtype.UUID
	RequesterName      string
	RequesterPhone     string
	RequesterEmail     string
	Note               string
	StartAt            time.Time
	EndAt              time.Time
	Hours              int32
	TotalPrice         pgtype.Int8
	Currency           string
	Status             string
	CalendarBlockID    pgtype.UUID
	DecidedBy          pgtype.UUID
	DecidedAt          pgtype.Timestamptz
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type HappyHourRule struct {
	RoomID       uuid.UUID
	Weekday      int32
	StartMinutes int32
	EndMinutes   int32
}

type IdempotencyKey struct {
	RoomID               uuid.UUID
	Key                  string
	RequestHash          string
	ReservationRequestID uuid.UUID
	ExpiresAt            time.Time
}
