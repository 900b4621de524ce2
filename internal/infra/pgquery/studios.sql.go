package pgquery

import (
	"context"

	"github.com/google/uuid"
)

// Settings columns come from a LEFT JOIN so a studio without a settings row
// yields NULLs and falls back to defaults.
const getStudioByID = `-- name: GetStudioByID :one
SELECT s.id, s.owner_id, s.name,
       cs.day_cutoff_hour, cs.time_zone, cs.weekly_hours, cs.happy_hour_enabled,
       cs.approval_mode, cs.cutoff_value, cs.cutoff_unit
FROM studios s
LEFT JOIN calendar_settings cs ON cs.studio_id = s.id
WHERE s.id = $1
`

func (q *Queries) GetStudioByID(ctx context.Context, db DBTX, id uuid.UUID) (Studio, error) {
	row := db.QueryRow(ctx, getStudioByID, id)
	var i Studio
	err := row.Scan(
		&i.ID,
		&i.OwnerID,
		&i.Name,
		&i.DayCutoffHour,
		&i.TimeZone,
		&i.WeeklyHours,
		&i.HappyHourEnabled,
		&i.ApprovalMode,
		&i.CutoffValue,
		&i.CutoffUnit,
	)
	return i, err
}
