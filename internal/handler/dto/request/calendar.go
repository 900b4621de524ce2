package request

import (
	"strings"
	"time"

	"studio-calendar/internal/pkg/errs"

	"github.com/google/uuid"
)

type CalendarRangeQuery struct {
	RoomIDs string    `form:"roomIds"`
	From    time.Time `form:"from" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	To      time.Time `form:"to" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

// ParseRoomIDs reads the comma separated roomIds filter. Empty means all rooms.
func (q CalendarRangeQuery) ParseRoomIDs() ([]uuid.UUID, error) {
	if strings.TrimSpace(q.RoomIDs) == "" {
		return nil, nil
	}
	parts := strings.Split(q.RoomIDs, ",")
	ids := make([]uuid.UUID, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := uuid.Parse(p)
		if err != nil {
			return nil, errs.Mark(errs.Wrapf(err, "invalid room id %q", p), errs.ErrValidation)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
