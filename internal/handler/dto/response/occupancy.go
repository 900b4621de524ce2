package response

import (
	"time"

	"studio-calendar/internal/domain/occupancy"
	"studio-calendar/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type OccupancyResponse struct {
	StudioID       uuid.UUID         `json:"studioId"`
	WeekOccupancy  occupancy.Period  `json:"weekOccupancy"`
	MonthOccupancy occupancy.Period  `json:"monthOccupancy"`
	MonthRevenue   occupancy.Revenue `json:"monthRevenue"`
	Currency       string            `json:"currency"`
	GeneratedAt    time.Time         `json:"generatedAt"`
}

func FromOccupancyView(v *queries.OccupancySummaryView) (*OccupancyResponse, error) {
	out := &OccupancyResponse{}
	if err := copier.Copy(out, v); err != nil {
		return nil, err
	}
	return out, nil
}
