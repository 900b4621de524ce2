package pgquery

import (
	"context"

	"github.com/google/uuid"
)

const deleteHappyHourRulesByRoom = `-- name: DeleteHappyHourRulesByRoom :exec
DELETE FROM happy_hour_rules WHERE room_id = $1
`

func (q *Queries) DeleteHappyHourRulesByRoom(ctx context.Context, db DBTX, roomID uuid.UUID) error {
	_, err := db.Exec(ctx, deleteHappyHourRulesByRoom, roomID)
	return err
}

const createHappyHourRule = `-- name: CreateHappyHourRule :exec
INSERT INTO happy_hour_rules (room_id, weekday, start_minutes, end_minutes)
VALUES ($1, $2, $3, $4)
`

type CreateHappyHourRuleParams = HappyHourRule

func (q *Queries) CreateHappyHourRule(ctx context.Context, db DBTX, arg CreateHappyHourRuleParams) error {
	_, err := db.Exec(ctx, createHappyHourRule, arg.RoomID, arg.Weekday, arg.StartMinutes, arg.EndMinutes)
	return err
}

const listHappyHourRulesByRooms = `-- name: ListHappyHourRulesByRooms :many
SELECT room_id, weekday, start_minutes, end_minutes
FROM happy_hour_rules
WHERE room_id = ANY($1::uuid[])
ORDER BY room_id, weekday, start_minutes
`

func (q *Queries) ListHappyHourRulesByRooms(ctx context.Context, db DBTX, roomIDs []uuid.UUID) ([]HappyHourRule, error) {
	rows, err := db.Query(ctx, listHappyHourRulesByRooms, roomIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []HappyHourRule
	for rows.Next() {
		var i HappyHourRule
		if err := rows.Scan(&i.RoomID, &i.Weekday, &i.StartMinutes, &i.EndMinutes); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
