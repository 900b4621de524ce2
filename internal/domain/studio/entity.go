package studio

import (
	"studio-calendar/internal/domain/openinghours"
	"studio-calendar/internal/domain/pricing"

	"github.com/google/uuid"
)

type Studio struct {
	ID       uuid.UUID
	OwnerID  uuid.UUID
	Name     string
	Settings Settings
}

func (s Studio) IsOwner(accountID uuid.UUID) bool {
	return accountID != uuid.Nil && s.OwnerID == accountID
}

type Room struct {
	ID          uuid.UUID
	StudioID    uuid.UUID
	Name        string
	Rates       pricing.RoomRates
	WeeklyHours *openinghours.Week
}

// EffectiveHours prefers the room override, then the studio settings, then the default week.
func (r Room) EffectiveHours(settings Settings) openinghours.Week {
	if r.WeeklyHours != nil {
		return *r.WeeklyHours
	}
	return settings.Hours()
}
