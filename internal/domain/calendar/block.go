package calendar

import (
	"strings"
	"time"

	"studio-calendar/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxTitleLength = 200

var (
	ErrInvalidInterval = errs.Mark(errs.New("end must be after start"), errs.ErrValidation)
	ErrTitleTooLong    = errs.Mark(errs.New("title is too long (max 200 characters)"), errs.ErrValidation)
)

type EntryType string

const (
	TypeManualBlock EntryType = "manual_block"
	TypeReservation EntryType = "reservation"
)

// Status of a reservation-backed entry. Manual blocks carry StatusNone.
type Status string

const (
	StatusNone      Status = ""
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// Block is a persisted calendar entry occupying a room.
type Block struct {
	id        uuid.UUID
	roomID    uuid.UUID
	startAt   time.Time
	endAt     time.Time
	entryType EntryType
	status    Status
	title     string
	note      string
	createdBy *uuid.UUID
	createdAt time.Time
}

func NewBlock(roomID uuid.UUID, startAt, endAt time.Time, entryType EntryType, status Status, title, note string, createdBy *uuid.UUID, now time.Time) (*Block, error) {
	if !endAt.After(startAt) {
		return nil, ErrInvalidInterval
	}
	title = strings.TrimSpace(title)
	if len([]rune(title)) > MaxTitleLength {
		return nil, ErrTitleTooLong
	}
	if entryType == TypeManualBlock {
		status = StatusNone
	}
	return &Block{
		id:        uuid.New(),
		roomID:    roomID,
		startAt:   startAt,
		endAt:     endAt,
		entryType: entryType,
		status:    status,
		title:     title,
		note:      strings.TrimSpace(note),
		createdBy: createdBy,
		createdAt: now,
	}, nil
}

func ReconstructBlock(id, roomID uuid.UUID, startAt, endAt time.Time, entryType EntryType, status Status, title, note string, createdBy *uuid.UUID, createdAt time.Time) *Block {
	return &Block{
		id:        id,
		roomID:    roomID,
		startAt:   startAt,
		endAt:     endAt,
		entryType: entryType,
		status:    status,
		title:     title,
		note:      note,
		createdBy: createdBy,
		createdAt: createdAt,
	}
}

func (b *Block) ID() uuid.UUID         { return b.id }
func (b *Block) RoomID() uuid.UUID     { return b.roomID }
func (b *Block) StartAt() time.Time    { return b.startAt }
func (b *Block) EndAt() time.Time      { return b.endAt }
func (b *Block) Type() EntryType       { return b.entryType }
func (b *Block) Status() Status        { return b.status }
func (b *Block) Title() string         { return b.title }
func (b *Block) Note() string          { return b.note }
func (b *Block) CreatedBy() *uuid.UUID { return b.createdBy }
func (b *Block) CreatedAt() time.Time  { return b.createdAt }

func (b *Block) Entry() Entry {
	return Entry{ID: b.id, RoomID: b.roomID, StartAt: b.startAt, EndAt: b.endAt, Type: b.entryType, Status: b.status}
}
