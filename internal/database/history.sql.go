package database

import (
	"context"

	"github.com/google/uuid"
)

const createHistoryEntry = `-- name: CreateHistoryEntry :exec
INSERT INTO history (user_id, company, score)
VALUES ($1, $2, $3)
`

type CreateHistoryEntryParams struct {
	UserID  uuid.UUID
	Company string
	Score   int32
}

func (q *Queries) CreateHistoryEntry(ctx context.Context, arg CreateHistoryEntryParams) error {
	_, err := q.db.ExecContext(ctx, createHistoryEntry, arg.UserID, arg.Company, arg.Score)
	return err
}

const getRecentHistory = `-- name: GetRecentHistory :many
SELECT id, user_id, company, score, created_at FROM history WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2
`

type GetRecentHistoryParams struct {
	UserID uuid.UUID
	Limit  int32
}

func (q *Queries) GetRecentHistory(ctx context.Context, arg GetRecentHistoryParams) ([]HistoryEntry, error) {
	rows, err := q.db.QueryContext(ctx, getRecentHistory, arg.UserID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []HistoryEntry
	for rows.Next() {
		var i HistoryEntry
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.Company,
			&i.Score,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
