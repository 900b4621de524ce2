package request

import (
	"time"

	"studio-calendar/internal/domain/bizday"
	"studio-calendar/internal/domain/happyhour"
	"studio-calendar/internal/usecase/commands"
)

type DayScheduleRequest struct {
	Enabled bool   `json:"enabled"`
	EndTime string `json:"endTime" binding:"max=5"`
}

// HappyHourScheduleRequest holds one entry per weekday, Monday first.
type HappyHourScheduleRequest struct {
	Days []DayScheduleRequest `json:"days" binding:"required,len=7,dive"`
}

func (r HappyHourScheduleRequest) ToDays() [bizday.DaysPerWeek]happyhour.DaySchedule {
	var days [bizday.DaysPerWeek]happyhour.DaySchedule
	for i := 0; i < len(r.Days) && i < bizday.DaysPerWeek; i++ {
		days[i] = happyhour.DaySchedule{Enabled: r.Days[i].Enabled, EndTime: r.Days[i].EndTime}
	}
	return days
}

type SlotRequest struct {
	StartAt time.Time `json:"startAt" binding:"required"`
	EndAt   time.Time `json:"endAt" binding:"required"`
}

type ImportHappyHourSlotsRequest struct {
	Slots []SlotRequest `json:"slots" binding:"required,min=1,dive"`
}

func (r ImportHappyHourSlotsRequest) ToInputs() []commands.SlotInput {
	out := make([]commands.SlotInput, len(r.Slots))
	for i, s := range r.Slots {
		out[i] = commands.SlotInput{StartAt: s.StartAt, EndAt: s.EndAt}
	}
	return out
}
