package repository

import (
	"context"

	"studio-calendar/internal/domain/happyhour"
	"studio-calendar/internal/infra"
	"studio-calendar/internal/infra/converter"
	"studio-calendar/internal/infra/pgquery"

	"github.com/google/uuid"
)

type HappyHourWriteQueries interface {
	DeleteHappyHourRulesByRoom(ctx context.Context, db pgquery.DBTX, roomID uuid.UUID) error
	CreateHappyHourRule(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateHappyHourRuleParams) error
}

type HappyHourRepository struct {
	queries HappyHourWriteQueries
}

func NewHappyHourRepository(queries HappyHourWriteQueries) *HappyHourRepository {
	return &HappyHourRepository{queries: queries}
}

// ReplaceForRoom swaps the whole rule set of a room.
func (r *HappyHourRepository) ReplaceForRoom(ctx context.Context, tx pgquery.DBTX, roomID uuid.UUID, rules []happyhour.Rule) error {
	if err := r.queries.DeleteHappyHourRulesByRoom(ctx, tx, roomID); err != nil {
		return infra.WrapRepoErr("failed to clear happy hour rules", err)
	}
	for _, rule := range rules {
		rule.RoomID = roomID
		if err := r.queries.CreateHappyHourRule(ctx, tx, converter.RuleToInfra(rule)); err != nil {
			return infra.WrapRepoErr("failed to create happy hour rule", err)
		}
	}
	return nil
}
