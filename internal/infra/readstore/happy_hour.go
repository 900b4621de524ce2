package readstore

import (
	"context"

	"studio-calendar/internal/domain/happyhour"
	"studio-calendar/internal/infra"
	"studio-calendar/internal/infra/converter"
	"studio-calendar/internal/infra/pgquery"

	"github.com/google/uuid"
)

type HappyHourViewQueries interface {
	ListHappyHourRulesByRooms(ctx context.Context, db pgquery.DBTX, roomIDs []uuid.UUID) ([]pgquery.HappyHourRule, error)
}

type HappyHourReadStore struct {
	queries HappyHourViewQueries
	db      pgquery.DBTX
}

func NewHappyHourReadStore(queries HappyHourViewQueries, db pgquery.DBTX) *HappyHourReadStore {
	return &HappyHourReadStore{queries: queries, db: db}
}

func (r *HappyHourReadStore) ListByRooms(ctx context.Context, roomIDs []uuid.UUID) ([]happyhour.Rule, error) {
	if len(roomIDs) == 0 {
		return nil, nil
	}
	rows, err := r.queries.ListHappyHourRulesByRooms(ctx, r.db, roomIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list happy hour rules", err)
	}
	rules := make([]happyhour.Rule, len(rows))
	for i, row := range rows {
		rules[i] = converter.RuleToDomain(row)
	}
	return rules, nil
}
