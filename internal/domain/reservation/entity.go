package reservation

import (
	"time"

	"studio-calendar/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidDuration       = errs.Mark(errs.New("hours must be a whole number between 1 and 24"), errs.ErrValidation)
	ErrStartNotHourAligned   = errs.Mark(errs.New("start must be on the hour"), errs.ErrValidation)
	ErrRequesterNameRequired = errs.Mark(errs.New("requester name is required"), errs.ErrValidation)
	ErrRequesterNameTooLong  = errs.Mark(errs.New("requester name is too long (max 100 characters)"), errs.ErrValidation)
	ErrPhoneRequired         = errs.Mark(errs.New("requester phone is required"), errs.ErrValidation)
	ErrInvalidPhone          = errs.Mark(errs.New("invalid phone number"), errs.ErrValidation)
	ErrEmailRequired         = errs.Mark(errs.New("email is required for guest requests"), errs.ErrValidation)
	ErrInvalidEmail          = errs.Mark(errs.New("invalid email format"), errs.ErrValidation)
	ErrNoteTooLong           = errs.Mark(errs.New("note is too long (max 1000 characters)"), errs.ErrValidation)
	ErrInvalidAction         = errs.Mark(errs.New("action must be approve or reject"), errs.ErrValidation)
	ErrWithinCutoff          = errs.Mark(errs.New("start is inside the booking cutoff window"), errs.ErrValidation)
	ErrStartInPast           = errs.Mark(errs.New("start must be in the future"), errs.ErrValidation)
	ErrAlreadyDecided        = errs.Mark(errs.New("reservation request is already decided"), errs.ErrInvalidState)
	ErrInvalidStatus         = errs.New("invalid reservation status")
	ErrApprovedWithoutBlock  = errs.New("approved reservation has no calendar block")
)

// Request is a reservation request for one room and one slot.
type Request struct {
	id         uuid.UUID
	studioID   uuid.UUID
	roomID     uuid.UUID
	requester  Requester
	note       string
	slot       Slot
	totalPrice *int64
	currency   string
	state      State
	decidedBy  *uuid.UUID
	decidedAt  *time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

func NewRequest(studioID, roomID uuid.UUID, requester Requester, slot Slot, note string, totalPrice *int64, currency string, now time.Time) *Request {
	if currency == "" {
		currency = DefaultCurrencyKRW
	}
	return &Request{
		id:         uuid.New(),
		studioID:   studioID,
		roomID:     roomID,
		requester:  requester,
		note:       note,
		slot:       slot,
		totalPrice: totalPrice,
		currency:   currency,
		state:      Pending{},
		createdAt:  now,
		updatedAt:  now,
	}
}

func ReconstructRequest(
	id, studioID, roomID uuid.UUID,
	requester Requester,
	note string,
	slot Slot,
	totalPrice *int64,
	currency string,
	state State,
	decidedBy *uuid.UUID,
	decidedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Request {
	return &Request{
		id:         id,
		studioID:   studioID,
		roomID:     roomID,
		requester:  requester,
		note:       note,
		slot:       slot,
		totalPrice: totalPrice,
		currency:   currency,
		state:      state,
		decidedBy:  decidedBy,
		decidedAt:  decidedAt,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Check reports whether moving to target would change anything.
// Repeating the current terminal state is a no-op; switching terminal states fails.
func (r *Request) Check(target Status) (noop bool, err error) {
	current := r.state.Status()
	if current == target {
		return true, nil
	}
	if current.IsTerminal() {
		return false, errs.Wrapf(ErrAlreadyDecided, "cannot move from %s to %s", current, target)
	}
	return false, nil
}

// Approve links the request to its calendar block.
func (r *Request) Approve(blockID uuid.UUID, actor *uuid.UUID, now time.Time) (bool, error) {
	noop, err := r.Check(StatusApproved)
	if err != nil || noop {
		return false, err
	}
	r.state = Approved{BlockID: blockID}
	r.decide(actor, now)
	return true, nil
}

func (r *Request) Reject(actor *uuid.UUID, now time.Time) (bool, error) {
	noop, err := r.Check(StatusRejected)
	if err != nil || noop {
		return false, err
	}
	r.state = Rejected{}
	r.decide(actor, now)
	return true, nil
}

func (r *Request) decide(actor *uuid.UUID, now time.Time) {
	r.decidedBy = actor
	t := now
	r.decidedAt = &t
	r.updatedAt = now
}

func (r *Request) IsBlocking() bool {
	s := r.state.Status()
	return s == StatusPending || s == StatusApproved
}

// BlockID is set only for approved requests.
func (r *Request) BlockID() *uuid.UUID {
	if a, ok := r.state.(Approved); ok {
		id := a.BlockID
		return &id
	}
	return nil
}

func (r *Request) ID() uuid.UUID         { return r.id }
func (r *Request) StudioID() uuid.UUID   { return r.studioID }
func (r *Request) RoomID() uuid.UUID     { return r.roomID }
func (r *Request) Requester() Requester  { return r.requester }
func (r *Request) Note() string          { return r.note }
func (r *Request) Slot() Slot            { return r.slot }
func (r *Request) TotalPrice() *int64    { return r.totalPrice }
func (r *Request) Currency() string      { return r.currency }
func (r *Request) State() State          { return r.state }
func (r *Request) Status() Status        { return r.state.Status() }
func (r *Request) DecidedBy() *uuid.UUID { return r.decidedBy }
func (r *Request) DecidedAt() *time.Time { return r.decidedAt }
func (r *Request) CreatedAt() time.Time  { return r.createdAt }
func (r *Request) UpdatedAt() time.Time  { return r.updatedAt }
