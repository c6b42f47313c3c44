package database

import (
	"context"

	"github.com/google/uuid"
)

const updateSessionStatus = `-- name: UpdateSessionStatus :exec
UPDATE sessions
SET status=$1
WHERE id=$2
`

type UpdateSessionStatusParams struct {
	Status string
	ID     uuid.UUID
}

func (q *Queries) UpdateSessionStatus(ctx context.Context, arg UpdateSessionStatusParams) error {
	_, err := q.db.ExecContext(ctx, updateSessionStatus, arg.Status, arg.ID)
	return err
}

const updateSessionScore = `-- name: UpdateSessionScore :exec
UPDATE sessions
SET match_score=$1
WHERE id=$2
`

type UpdateSessionScoreParams struct {
	MatchScore int32
	ID         uuid.UUID
}

func (q *Queries) UpdateSessionScore(ctx context.Context, arg UpdateSessionScoreParams) error {
	_, err := q.db.ExecContext(ctx, updateSessionScore, arg.MatchScore, arg.ID)
	return err
}
