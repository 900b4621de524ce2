package converter

import (
	"encoding/json"
	"log/slog"

	"studio-calendar/internal/domain/openinghours"
	"studio-calendar/internal/domain/pricing"
	"studio-calendar/internal/domain/studio"
	"studio-calendar/internal/infra/pgquery"
	"studio-calendar/internal/pkg/pgconv"
)

// StudioToDomain fills unsaved settings columns from defaults.
func StudioToDomain(row pgquery.Studio, defaults studio.Settings) *studio.Studio {
	settings := studio.Settings{
		DayCutoffHour:    pgconv.IntOr(row.DayCutoffHour, defaults.DayCutoffHour),
		TimeZone:         pgconv.StringOr(row.TimeZone, defaults.TimeZone),
		WeeklyHours:      decodeWeek(row.WeeklyHours),
		HappyHourEnabled: pgconv.BoolOr(row.HappyHourEnabled, defaults.HappyHourEnabled),
		ApprovalMode:     studio.ApprovalMode(pgconv.StringOr(row.ApprovalMode, string(defaults.ApprovalMode))),
		CutoffValue:      pgconv.IntOr(row.CutoffValue, defaults.CutoffValue),
		CutoffUnit:       studio.CutoffUnit(pgconv.StringOr(row.CutoffUnit, string(defaults.CutoffUnit))),
	}
	if err := settings.Validate(); err != nil {
		slog.Warn("invalid calendar settings, using defaults", "studio_id", row.ID, "error", err.Error())
		settings = defaults
	}
	return &studio.Studio{
		ID:       row.ID,
		OwnerID:  row.OwnerID,
		Name:     row.Name,
		Settings: settings,
	}
}

func RoomToDomain(row pgquery.Room) studio.Room {
	return studio.Room{
		ID:       row.ID,
		StudioID: row.StudioID,
		Name:     row.Name,
		Rates: pricing.RoomRates{
			HourlyRate:    row.HourlyRate,
			MinRate:       row.MinRate,
			FlatRate:      row.FlatRate,
			HappyHourRate: row.HappyHourRate,
			DailyRate:     row.DailyRate,
		},
		WeeklyHours: decodeWeek(row.WeeklyHours),
	}
}

// decodeWeek accepts the stored JSON array of days. Missing or malformed
// entries are normalized; unreadable JSON means "no override".
func decodeWeek(raw []byte) *openinghours.Week {
	if len(raw) == 0 {
		return nil
	}
	var days []openinghours.Day
	if err := json.Unmarshal(raw, &days); err != nil {
		slog.Warn("unreadable weekly hours", "error", err.Error())
		return nil
	}
	week := openinghours.Normalize(days)
	return &week
}
