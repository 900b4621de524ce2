package commands

import (
	"context"
	"log/slog"
	"time"

	"studio-calendar/internal/domain/bizday"
	"studio-calendar/internal/domain/happyhour"
	"studio-calendar/internal/domain/studio"
	"studio-calendar/internal/pkg/clock"
	"studio-calendar/internal/pkg/errs"
	"studio-calendar/internal/usecase/shared"

	"github.com/google/uuid"
)

const MaxImportSlots = 500

var (
	ErrTooManySlots = errs.Mark(errs.New("too many slots in one import (max 500)"), errs.ErrValidation)
	ErrInvalidSlot  = errs.Mark(errs.New("slot end must be after its start"), errs.ErrValidation)
)

type SlotInput struct {
	StartAt time.Time
	EndAt   time.Time
}

type HappyHourCommands interface {
	// ReplaceSchedule rebuilds the room's rules from a seven-day form.
	ReplaceSchedule(ctx context.Context, roomID uuid.UUID, days [bizday.DaysPerWeek]happyhour.DaySchedule, actorID uuid.UUID) ([]happyhour.Rule, error)
	// ImportSlots folds concrete instances into the room's existing rules.
	ImportSlots(ctx context.Context, roomID uuid.UUID, slots []SlotInput, actorID uuid.UUID) ([]happyhour.Rule, error)
}

type happyHourUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewHappyHourCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) HappyHourCommands {
	return &happyHourUseCaseImpl{uow: uow, clock: clk, logger: logger}
}

func (uc *happyHourUseCaseImpl) ReplaceSchedule(ctx context.Context, roomID uuid.UUID, days [bizday.DaysPerWeek]happyhour.DaySchedule, actorID uuid.UUID) ([]happyhour.Rule, error) {
	room, st, zone, err := uc.authorize(ctx, roomID, actorID)
	if err != nil {
		return nil, err
	}

	slots, err := happyhour.WeeklySchedule(room.ID, days, room.EffectiveHours(st.Settings), uc.clock.Now(), zone)
	if err != nil {
		return nil, err
	}
	rules := happyhour.Compress(slots, zone)[room.ID]

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.HappyHours().ReplaceForRoom(ctx, tx.DB(), room.ID, rules)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.InfoContext(ctx, "happy hour schedule replaced", "room_id", room.ID, "rules", len(rules))
	return rules, nil
}

func (uc *happyHourUseCaseImpl) ImportSlots(ctx context.Context, roomID uuid.UUID, in []SlotInput, actorID uuid.UUID) ([]happyhour.Rule, error) {
	if len(in) > MaxImportSlots {
		return nil, ErrTooManySlots
	}
	room, _, zone, err := uc.authorize(ctx, roomID, actorID)
	if err != nil {
		return nil, err
	}

	slots := make([]happyhour.Slot, 0, len(in))
	for _, s := range in {
		if !s.EndAt.After(s.StartAt) || s.EndAt.Sub(s.StartAt) > 24*time.Hour {
			return nil, ErrInvalidSlot
		}
		slots = append(slots, happyhour.Slot{RoomID: room.ID, StartAt: s.StartAt, EndAt: s.EndAt})
	}
	incoming := happyhour.Compress(slots, zone)[room.ID]
	for _, r := range incoming {
		if _, err := happyhour.NewRule(r.RoomID, r.Weekday, r.StartMinutes, r.EndMinutes); err != nil {
			return nil, err
		}
	}

	var merged []happyhour.Rule
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, derr := tx.Reads().HappyHourRules(ctx, room.ID)
		if derr != nil {
			return derr
		}
		merged = happyhour.MergeRules(existing, incoming)
		return tx.HappyHours().ReplaceForRoom(ctx, tx.DB(), room.ID, merged)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.InfoContext(ctx, "happy hour slots imported", "room_id", room.ID, "slots", len(in), "rules", len(merged))
	return merged, nil
}

func (uc *happyHourUseCaseImpl) authorize(ctx context.Context, roomID, actorID uuid.UUID) (*studio.Room, *studio.Studio, bizday.Zone, error) {
	reads := uc.uow.CommandReads()
	room, err := reads.RoomByID(ctx, roomID)
	if err != nil {
		return nil, nil, bizday.Zone{}, err
	}
	st, err := reads.StudioByID(ctx, room.StudioID)
	if err != nil {
		return nil, nil, bizday.Zone{}, err
	}
	if !st.IsOwner(actorID) {
		return nil, nil, bizday.Zone{}, ErrNotStudioOwner
	}
	zone, err := st.Settings.Zone()
	if err != nil {
		return nil, nil, bizday.Zone{}, err
	}
	return room, st, zone, nil
}
