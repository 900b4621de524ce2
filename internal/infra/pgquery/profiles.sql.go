package pgquery

import (
	"context"

	"github.com/google/uuid"
)

const getProfileByAccountID = `-- name: GetProfileByAccountID :one
SELECT account_id, display_name, phone, email
FROM profiles
WHERE account_id = $1
`

func (q *Queries) GetProfileByAccountID(ctx context.Context, db DBTX, accountID uuid.UUID) (Profile, error) {
	row := db.QueryRow(ctx, getProfileByAccountID, accountID)
	var i Profile
	err := row.Scan(&i.AccountID, &i.DisplayName, &i.Phone, &i.Email)
	return i, err
}
