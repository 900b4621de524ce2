package studio

import (
	"time"

	"studio-calendar/internal/domain/bizday"
	"studio-calendar/internal/domain/openinghours"
	"studio-calendar/internal/pkg/errs"
)

var (
	ErrInvalidApprovalMode = errs.Mark(errs.New("approval mode must be manual or auto"), errs.ErrValidation)
	ErrInvalidCutoffUnit   = errs.Mark(errs.New("booking cutoff unit must be hours or days"), errs.ErrValidation)
	ErrNegativeCutoff      = errs.Mark(errs.New("booking cutoff cannot be negative"), errs.ErrValidation)
)

type ApprovalMode string

const (
	ApprovalManual ApprovalMode = "manual"
	ApprovalAuto   ApprovalMode = "auto"
)

func (m ApprovalMode) IsValid() bool {
	return m == ApprovalManual || m == ApprovalAuto
}

type CutoffUnit string

const (
	CutoffHours CutoffUnit = "hours"
	CutoffDays  CutoffUnit = "days"
)

func (u CutoffUnit) IsValid() bool {
	return u == CutoffHours || u == CutoffDays
}

// Settings is the per-studio calendar configuration.
type Settings struct {
	DayCutoffHour    int
	TimeZone         string
	WeeklyHours      *openinghours.Week
	HappyHourEnabled bool
	ApprovalMode     ApprovalMode
	CutoffValue      int
	CutoffUnit       CutoffUnit
}

// DefaultSettings is used for studios that never saved their calendar settings.
func DefaultSettings(tz string, cutoffHour int) Settings {
	return Settings{
		DayCutoffHour:    cutoffHour,
		TimeZone:         tz,
		HappyHourEnabled: true,
		ApprovalMode:     ApprovalManual,
		CutoffValue:      0,
		CutoffUnit:       CutoffHours,
	}
}

func (s Settings) Validate() error {
	if s.DayCutoffHour < 0 || s.DayCutoffHour > 23 {
		return bizday.ErrInvalidCutoffHour
	}
	if !s.ApprovalMode.IsValid() {
		return ErrInvalidApprovalMode
	}
	if !s.CutoffUnit.IsValid() {
		return ErrInvalidCutoffUnit
	}
	if s.CutoffValue < 0 {
		return ErrNegativeCutoff
	}
	if _, err := bizday.LoadZone(s.TimeZone, s.DayCutoffHour); err != nil {
		return err
	}
	return nil
}

func (s Settings) Zone() (bizday.Zone, error) {
	return bizday.LoadZone(s.TimeZone, s.DayCutoffHour)
}

func (s Settings) Hours() openinghours.Week {
	if s.WeeklyHours == nil {
		return openinghours.DefaultWeek()
	}
	return *s.WeeklyHours
}

// CutoffWindow is the minimum lead time a start must exceed to be auto-approved.
func (s Settings) CutoffWindow() time.Duration {
	v := time.Duration(max(s.CutoffValue, 0))
	if s.CutoffUnit == CutoffDays {
		return v * 24 * time.Hour
	}
	return v * time.Hour
}

// BeyondCutoff reports whether start lies strictly after now plus the cutoff window.
func (s Settings) BeyondCutoff(now, start time.Time) bool {
	return start.After(now.Add(s.CutoffWindow()))
}
