//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"studio-calendar/internal/domain/bizday"
	"studio-calendar/internal/domain/happyhour"
	"studio-calendar/internal/domain/studio"
	"studio-calendar/internal/pkg/clock"
	"studio-calendar/internal/pkg/errs"
	"studio-calendar/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type HappyHourCommandsTestSuite struct {
	suite.Suite
	store *memStore
	uc    commands.HappyHourCommands
	owner uuid.UUID
	room  *studio.Room
}

func TestHappyHourCommandsSuite(t *testing.T) {
	suite.Run(t, new(HappyHourCommandsTestSuite))
}

func (s *HappyHourCommandsTestSuite) SetupTest() {
	s.store = newMemStore()
	s.owner = uuid.New()
	st := &studio.Studio{ID: uuid.New(), OwnerID: s.owner, Name: "Mapo Studio", Settings: studio.DefaultSettings("Asia/Seoul", 4)}
	s.room = &studio.Room{ID: uuid.New(), StudioID: st.ID, Name: "Room B"}
	s.store.addStudio(st)
	s.store.addRoom(s.room)

	clk := clock.NewMockClock(time.Date(2026, 3, 11, 15, 0, 0, 0, seoul))
	s.uc = commands.NewHappyHourCommands(s.store, clk, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *HappyHourCommandsTestSuite) TestReplaceSchedule() {
	ctx := context.Background()

	s.Run("success: enabled days become rules from opening time to end time", func() {
		var days [bizday.DaysPerWeek]happyhour.DaySchedule
		days[0] = happyhour.DaySchedule{Enabled: true, EndTime: "13:00"}
		days[4] = happyhour.DaySchedule{Enabled: true, EndTime: "02:00"}

		rules, err := s.uc.ReplaceSchedule(ctx, s.room.ID, days, s.owner)
		s.Require().NoError(err)
		s.Equal([]happyhour.Rule{
			{RoomID: s.room.ID, Weekday: 0, StartMinutes: 10 * 60, EndMinutes: 13 * 60},
			{RoomID: s.room.ID, Weekday: 4, StartMinutes: 10 * 60, EndMinutes: 26 * 60},
		}, rules)
		s.Equal(rules, s.store.rules[s.room.ID])
	})

	s.Run("success: an all-disabled form clears the schedule", func() {
		s.store.rules[s.room.ID] = []happyhour.Rule{{RoomID: s.room.ID, Weekday: 2, StartMinutes: 600, EndMinutes: 720}}

		var days [bizday.DaysPerWeek]happyhour.DaySchedule
		rules, err := s.uc.ReplaceSchedule(ctx, s.room.ID, days, s.owner)
		s.Require().NoError(err)
		s.Empty(rules)
		s.Empty(s.store.rules[s.room.ID])
	})

	s.Run("error: unreadable end time", func() {
		var days [bizday.DaysPerWeek]happyhour.DaySchedule
		days[1] = happyhour.DaySchedule{Enabled: true, EndTime: "late"}

		_, err := s.uc.ReplaceSchedule(ctx, s.room.ID, days, s.owner)
		s.True(errs.Is(err, errs.ErrValidation))
	})

	s.Run("error: non-owner is forbidden", func() {
		var days [bizday.DaysPerWeek]happyhour.DaySchedule
		_, err := s.uc.ReplaceSchedule(ctx, s.room.ID, days, uuid.New())
		s.True(errs.Is(err, errs.ErrForbidden))
	})

	s.Run("error: unknown room", func() {
		var days [bizday.DaysPerWeek]happyhour.DaySchedule
		_, err := s.uc.ReplaceSchedule(ctx, uuid.New(), days, s.owner)
		s.True(errs.Is(err, errs.ErrNotFound))
	})

	s.Run("error: storage failure is returned", func() {
		s.store.replaceErr = errs.Mark(errs.New("boom"), errs.ErrDatabaseOperation)
		defer func() { s.store.replaceErr = nil }()

		var days [bizday.DaysPerWeek]happyhour.DaySchedule
		days[0] = happyhour.DaySchedule{Enabled: true, EndTime: "12:00"}
		_, err := s.uc.ReplaceSchedule(ctx, s.room.ID, days, s.owner)
		s.True(errs.Is(err, errs.ErrDatabaseOperation))
	})
}

func (s *HappyHourCommandsTestSuite) TestImportSlots() {
	ctx := context.Background()
	// Tuesday 2026-03-10 and the following Tuesday
	at := func(day, hour int) time.Time { return time.Date(2026, 3, day, hour, 0, 0, 0, seoul) }

	s.Run("success: repeated weekly slots collapse into one rule keeping the longest end", func() {
		rules, err := s.uc.ImportSlots(ctx, s.room.ID, []commands.SlotInput{
			{StartAt: at(10, 18), EndAt: at(10, 20)},
			{StartAt: at(17, 18), EndAt: at(17, 21)},
		}, s.owner)

		s.Require().NoError(err)
		s.Equal([]happyhour.Rule{{RoomID: s.room.ID, Weekday: 1, StartMinutes: 18 * 60, EndMinutes: 21 * 60}}, rules)
	})

	s.Run("success: imported rules merge into the existing schedule", func() {
		s.store.rules[s.room.ID] = []happyhour.Rule{{RoomID: s.room.ID, Weekday: 0, StartMinutes: 600, EndMinutes: 720}}

		rules, err := s.uc.ImportSlots(ctx, s.room.ID, []commands.SlotInput{
			{StartAt: at(10, 18), EndAt: at(10, 20)},
		}, s.owner)

		s.Require().NoError(err)
		s.Len(rules, 2)
		s.Equal(0, rules[0].Weekday)
		s.Equal(1, rules[1].Weekday)
	})

	s.Run("success: early-morning slot belongs to the previous business day", func() {
		s.store.rules[s.room.ID] = nil
		// Wednesday 01:00-03:00 is before the 04:00 cutoff, so it is Tuesday +25h
		rules, err := s.uc.ImportSlots(ctx, s.room.ID, []commands.SlotInput{
			{StartAt: at(11, 1), EndAt: at(11, 3)},
		}, s.owner)

		s.Require().NoError(err)
		s.Equal([]happyhour.Rule{{RoomID: s.room.ID, Weekday: 1, StartMinutes: 25 * 60, EndMinutes: 27 * 60}}, rules)
	})

	s.Run("error: slot ending before it starts", func() {
		_, err := s.uc.ImportSlots(ctx, s.room.ID, []commands.SlotInput{
			{StartAt: at(10, 20), EndAt: at(10, 18)},
		}, s.owner)
		s.ErrorIs(err, commands.ErrInvalidSlot)
	})

	s.Run("error: too many slots", func() {
		slots := make([]commands.SlotInput, commands.MaxImportSlots+1)
		_, err := s.uc.ImportSlots(ctx, s.room.ID, slots, s.owner)
		s.ErrorIs(err, commands.ErrTooManySlots)
	})

	s.Run("error: non-owner is forbidden", func() {
		_, err := s.uc.ImportSlots(ctx, s.room.ID, []commands.SlotInput{
			{StartAt: at(10, 18), EndAt: at(10, 20)},
		}, uuid.New())
		s.ErrorIs(err, commands.ErrNotStudioOwner)
	})
}
