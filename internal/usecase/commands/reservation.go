package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"studio-calendar/internal/domain/bizday"
	"studio-calendar/internal/domain/calendar"
	"studio-calendar/internal/domain/happyhour"
	"studio-calendar/internal/domain/pricing"
	"studio-calendar/internal/domain/reservation"
	"studio-calendar/internal/domain/studio"
	"studio-calendar/internal/pkg/clock"
	"studio-calendar/internal/pkg/config"
	"studio-calendar/internal/pkg/errs"
	"studio-calendar/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRoomNotInStudio     = errs.Mark(errs.New("room does not belong to studio"), errs.ErrNotFound)
	ErrOutsideOpeningHours = errs.Mark(errs.New("requested time is outside opening hours"), errs.ErrScheduleConflict)
	ErrSlotTaken           = errs.Mark(errs.New("room is already booked for the requested time"), errs.ErrBookingConflict)
	ErrNotStudioOwner      = errs.Mark(errs.New("only the studio owner can do this"), errs.ErrForbidden)
	ErrIdempotencyKeyLong  = errs.Mark(errs.New("idempotency key is too long (max 255 characters)"), errs.ErrValidation)
	ErrIdempotencyReused   = errs.Mark(errs.New("idempotency key was already used for a different request"), errs.ErrValidation)
)

const (
	maxIdempotencyKeyLen = 255
	idempotencyTTL       = 24 * time.Hour
)

type CreateReservationInput struct {
	StudioID       uuid.UUID
	RoomID         uuid.UUID
	StartAt        time.Time
	Hours          float64
	RequesterName  string
	RequesterPhone string
	RequesterEmail string
	Note           string
	AccountID      *uuid.UUID
	// IdempotencyKey is optional. A retry with the same key and payload
	// returns the request the first call created.
	IdempotencyKey string
}

type CreateReservationResult struct {
	RequestID       uuid.UUID
	Status          reservation.Status
	CalendarBlockID *uuid.UUID
	TotalPrice      *int64
	Currency        string
	Replayed        bool
}

type DecideReservationResult struct {
	RequestID       uuid.UUID
	Status          reservation.Status
	CalendarBlockID *uuid.UUID
	Changed         bool
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, in CreateReservationInput) (*CreateReservationResult, error)
	DecideReservation(ctx context.Context, requestID uuid.UUID, action reservation.Action, actorID uuid.UUID) (*DecideReservationResult, error)
}

type reservationUseCaseImpl struct {
	uow       shared.UnitOfWork
	publisher shared.EventPublisher
	metrics   shared.BookingMetrics
	clock     clock.Clock
	cfg       config.CalendarConfig
	logger    *slog.Logger
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	publisher shared.EventPublisher,
	metrics shared.BookingMetrics,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:       uow,
		publisher: publisher,
		metrics:   metrics,
		clock:     clk,
		cfg:       cfg.Calendar,
		logger:    logger,
	}
}

func (uc *reservationUseCaseImpl) CreateReservation(ctx context.Context, in CreateReservationInput) (*CreateReservationResult, error) {
	hours, err := reservation.ParseHours(in.Hours)
	if err != nil {
		return nil, err
	}
	if len(in.IdempotencyKey) > maxIdempotencyKeyLen {
		return nil, ErrIdempotencyKeyLong
	}

	reads := uc.uow.CommandReads()
	room, st, err := uc.loadRoom(ctx, reads, in.StudioID, in.RoomID)
	if err != nil {
		return nil, err
	}
	zone, err := st.Settings.Zone()
	if err != nil {
		return nil, err
	}

	requester, err := uc.resolveRequester(ctx, reads, in)
	if err != nil {
		return nil, err
	}
	slot, err := reservation.NewSlot(in.StartAt, hours, zone)
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	if !slot.Start().After(now) {
		return nil, reservation.ErrStartInPast
	}
	note, err := reservation.NewNote(in.Note)
	if err != nil {
		return nil, err
	}

	if !room.EffectiveHours(st.Settings).Contains(slot.Start(), slot.End(), zone) {
		return nil, ErrOutsideOpeningHours
	}

	autoApprove := false
	if st.Settings.ApprovalMode == studio.ApprovalAuto {
		if !st.Settings.BeyondCutoff(now, slot.Start()) {
			return nil, reservation.ErrWithinCutoff
		}
		autoApprove = requester.IsAuthenticated()
	}

	totalPrice, err := uc.quote(ctx, reads, room, st.Settings, slot, zone)
	if err != nil {
		return nil, err
	}

	var (
		req      *reservation.Request
		replayed bool
		hash     string
	)
	if in.IdempotencyKey != "" {
		hash = requestHash(in)
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		replayed = false
		if derr := tx.Rooms().Lock(ctx, tx.DB(), room.ID); derr != nil {
			return derr
		}
		if in.IdempotencyKey != "" {
			prev, derr := uc.replay(ctx, tx, room.ID, in.IdempotencyKey, hash, now)
			if derr != nil {
				return derr
			}
			if prev != nil {
				req, replayed = prev, true
				return nil
			}
		}
		if derr := uc.ensureFree(ctx, tx, room.ID, slot, nil); derr != nil {
			return derr
		}

		req = reservation.NewRequest(st.ID, room.ID, requester, slot, note, totalPrice, uc.cfg.Currency, now)
		if autoApprove {
			block, derr := calendar.NewBlock(room.ID, slot.Start(), slot.End(), calendar.TypeReservation, calendar.StatusApproved, requester.Name, note, requester.AccountID, now)
			if derr != nil {
				return derr
			}
			if derr = tx.Blocks().Create(ctx, tx.DB(), block); derr != nil {
				return derr
			}
			if _, derr = req.Approve(block.ID(), requester.AccountID, now); derr != nil {
				return derr
			}
		}
		if derr := tx.Reservations().Create(ctx, tx.DB(), req); derr != nil {
			return derr
		}
		if in.IdempotencyKey == "" {
			return nil
		}
		return tx.Idempotency().Save(ctx, tx.DB(), shared.IdempotencyRecord{
			RoomID:      room.ID,
			Key:         in.IdempotencyKey,
			RequestHash: hash,
			RequestID:   req.ID(),
			ExpiresAt:   now.Add(idempotencyTTL),
		}, now)
	})
	if err != nil {
		if errs.Is(err, errs.ErrBookingConflict) {
			uc.metrics.BookingConflict()
		}
		return nil, err
	}

	if replayed {
		uc.logger.InfoContext(ctx, "reservation request replayed",
			"request_id", req.ID(),
			"room_id", room.ID,
			"idempotency_key", in.IdempotencyKey)
		return createResult(req, true), nil
	}

	uc.metrics.ReservationCreated(req.Status())
	uc.publisher.Publish(ctx, reservation.NewEvent(reservation.EventCreated, req, now))
	if req.Status() == reservation.StatusApproved {
		uc.publisher.Publish(ctx, reservation.NewEvent(reservation.EventApproved, req, now))
	}

	uc.logger.InfoContext(ctx, "reservation request created",
		"request_id", req.ID(),
		"room_id", room.ID,
		"status", req.Status(),
		"start_at", slot.Start(),
		"hours", slot.Hours())

	return createResult(req, false), nil
}

func createResult(req *reservation.Request, replayed bool) *CreateReservationResult {
	return &CreateReservationResult{
		RequestID:       req.ID(),
		Status:          req.Status(),
		CalendarBlockID: req.BlockID(),
		TotalPrice:      req.TotalPrice(),
		Currency:        req.Currency(),
		Replayed:        replayed,
	}
}

// replay returns the request an earlier call stored under key, or nil when
// the key is unused or expired. The caller must hold the room lock.
func (uc *reservationUseCaseImpl) replay(ctx context.Context, tx shared.Tx, roomID uuid.UUID, key, hash string, now time.Time) (*reservation.Request, error) {
	rec, err := tx.Idempotency().Find(ctx, tx.DB(), roomID, key, now)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if rec.RequestHash != hash {
		return nil, ErrIdempotencyReused
	}
	return tx.Reservations().FindForUpdate(ctx, tx.DB(), rec.RequestID)
}

// requestHash fingerprints the payload a key was first used with.
func requestHash(in CreateReservationInput) string {
	in.IdempotencyKey = ""
	in.StartAt = in.StartAt.UTC()
	data, _ := json.Marshal(in)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func (uc *reservationUseCaseImpl) DecideReservation(ctx context.Context, requestID uuid.UUID, action reservation.Action, actorID uuid.UUID) (*DecideReservationResult, error) {
	if !action.IsValid() {
		return nil, reservation.ErrInvalidAction
	}

	now := uc.clock.Now()
	actor := actorID
	var (
		req     *reservation.Request
		changed bool
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		req, derr = tx.Reservations().FindForUpdate(ctx, tx.DB(), requestID)
		if derr != nil {
			return derr
		}
		st, derr := tx.Reads().StudioByID(ctx, req.StudioID())
		if derr != nil {
			return derr
		}
		if !st.IsOwner(actorID) {
			return ErrNotStudioOwner
		}

		noop, derr := req.Check(action.Target())
		if derr != nil || noop {
			changed = false
			return derr
		}

		if action == reservation.ActionReject {
			changed, derr = req.Reject(&actor, now)
			if derr != nil {
				return derr
			}
			return tx.Reservations().SaveDecision(ctx, tx.DB(), req)
		}

		room, derr := tx.Reads().RoomByID(ctx, req.RoomID())
		if derr != nil {
			return derr
		}
		zone, derr := st.Settings.Zone()
		if derr != nil {
			return derr
		}
		slot := req.Slot()
		if !room.EffectiveHours(st.Settings).Contains(slot.Start(), slot.End(), zone) {
			return ErrOutsideOpeningHours
		}
		if derr = tx.Rooms().Lock(ctx, tx.DB(), room.ID); derr != nil {
			return derr
		}
		id := req.ID()
		if derr = uc.ensureFree(ctx, tx, room.ID, slot, &id); derr != nil {
			return derr
		}

		block, derr := calendar.NewBlock(room.ID, slot.Start(), slot.End(), calendar.TypeReservation, calendar.StatusApproved, req.Requester().Name, req.Note(), &actor, now)
		if derr != nil {
			return derr
		}
		if derr = tx.Blocks().Create(ctx, tx.DB(), block); derr != nil {
			return derr
		}
		if changed, derr = req.Approve(block.ID(), &actor, now); derr != nil {
			return derr
		}
		return tx.Reservations().SaveDecision(ctx, tx.DB(), req)
	})
	if err != nil {
		if errs.Is(err, errs.ErrBookingConflict) {
			uc.metrics.BookingConflict()
		}
		return nil, err
	}

	uc.metrics.ReservationDecided(action, changed)
	if changed {
		uc.publisher.Publish(ctx, reservation.NewEvent(reservation.EventFor(req.Status()), req, now))
		uc.logger.InfoContext(ctx, "reservation request decided",
			"request_id", req.ID(),
			"status", req.Status(),
			"actor_id", actorID)
	}

	return &DecideReservationResult{
		RequestID:       req.ID(),
		Status:          req.Status(),
		CalendarBlockID: req.BlockID(),
		Changed:         changed,
	}, nil
}

func (uc *reservationUseCaseImpl) loadRoom(ctx context.Context, reads shared.CommandReads, studioID, roomID uuid.UUID) (*studio.Room, *studio.Studio, error) {
	room, err := reads.RoomByID(ctx, roomID)
	if err != nil {
		return nil, nil, err
	}
	if room.StudioID != studioID {
		return nil, nil, ErrRoomNotInStudio
	}
	st, err := reads.StudioByID(ctx, studioID)
	if err != nil {
		return nil, nil, err
	}
	return room, st, nil
}

// resolveRequester fills blanks from the account profile when the caller is signed in.
func (uc *reservationUseCaseImpl) resolveRequester(ctx context.Context, reads shared.CommandReads, in CreateReservationInput) (reservation.Requester, error) {
	name, email := in.RequesterName, in.RequesterEmail
	var profilePhone string
	if in.AccountID != nil {
		profile, err := reads.ProfileByAccountID(ctx, *in.AccountID)
		switch {
		case err == nil:
			profilePhone = profile.Phone
			if name == "" {
				name = profile.DisplayName
			}
			if email == "" {
				email = profile.Email
			}
		case errs.Is(err, errs.ErrNotFound):
		default:
			return reservation.Requester{}, err
		}
	}
	return reservation.NewRequester(in.AccountID, name, in.RequesterPhone, profilePhone, email)
}

// quote prices the slot. An unresolvable rate leaves the price unknown rather than failing the request.
func (uc *reservationUseCaseImpl) quote(ctx context.Context, reads shared.CommandReads, room *studio.Room, settings studio.Settings, slot reservation.Slot, zone bizday.Zone) (*int64, error) {
	var windows []pricing.Window
	if settings.HappyHourEnabled {
		rules, err := reads.HappyHourRules(ctx, room.ID)
		if err != nil {
			return nil, err
		}
		windows = happyhour.Windows(rules, slot.Start(), slot.End(), zone)
	}
	total, err := pricing.Quote(room.Rates, slot.Start(), slot.Hours(), windows)
	if err != nil {
		uc.logger.WarnContext(ctx, "reservation price unknown", "room_id", room.ID, "error", err.Error())
		return nil, nil
	}
	return &total, nil
}

func (uc *reservationUseCaseImpl) ensureFree(ctx context.Context, tx shared.Tx, roomID uuid.UUID, slot reservation.Slot, exclude *uuid.UUID) error {
	entries, err := tx.Reads().ActiveEntries(ctx, roomID, slot.Start(), slot.End(), exclude)
	if err != nil {
		return err
	}
	if hit, found := calendar.FirstConflict(entries, roomID, slot.Start(), slot.End()); found {
		return errs.Wrapf(ErrSlotTaken, "overlaps entry %s", hit.ID)
	}
	return nil
}
