package readstore

import (
	"context"

	"studio-calendar/internal/infra"
	"studio-calendar/internal/infra/pgquery"
	"studio-calendar/internal/pkg/pgconv"
	"studio-calendar/internal/usecase/shared"

	"github.com/google/uuid"
)

type ProfileViewQueries interface {
	GetProfileByAccountID(ctx context.Context, db pgquery.DBTX, accountID uuid.UUID) (pgquery.Profile, error)
}

type ProfileReadStore struct {
	queries ProfileViewQueries
	db      pgquery.DBTX
}

func NewProfileReadStore(queries ProfileViewQueries, db pgquery.DBTX) *ProfileReadStore {
	return &ProfileReadStore{queries: queries, db: db}
}

func (r *ProfileReadStore) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*shared.ProfileSnapshot, error) {
	row, err := r.queries.GetProfileByAccountID(ctx, r.db, accountID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find profile", err)
	}
	return &shared.ProfileSnapshot{
		AccountID:   row.AccountID,
		DisplayName: row.DisplayName,
		Phone:       row.Phone,
		Email:       row.Email,
	}, nil
}
