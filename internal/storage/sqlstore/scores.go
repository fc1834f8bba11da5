package sqlstore

import (
	"context"

	"game-admin/internal/storage"
)

const scoreColumns = `app_id, player_id, score, extra, updated_at`

func scanScore(row rowScanner) (*storage.Score, error) {
	var (
		s         storage.Score
		updatedAt int64
	)
	if err := row.Scan(&s.AppID, &s.PlayerID, &s.Score, &s.Extra, &updatedAt); err != nil {
		return nil, err
	}
	s.UpdatedAt = fromMillis(updatedAt)
	return &s, nil
}

// UpsertScore inserts a first score or replaces a lower one. An equal or
// lower score leaves the row untouched.
func (a *Adapter) UpsertScore(ctx context.Context, score *storage.Score) (bool, error) {
	score.UpdatedAt = a.now().UTC()
	res, err := a.exec(ctx, `INSERT INTO scores (`+scoreColumns+`) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (app_id, player_id) DO UPDATE
		SET score = excluded.score, extra = excluded.extra, updated_at = excluded.updated_at
		WHERE excluded.score > scores.score`,
		score.AppID, score.PlayerID, score.Score, score.Extra, toMillis(score.UpdatedAt))
	if err != nil {
		return false, mapError(err, "score")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, mapError(err, "score")
	}
	return n > 0, nil
}

func (a *Adapter) GetScore(ctx context.Context, appID, playerID string) (*storage.Score, error) {
	s, err := scanScore(a.queryRow(ctx, `SELECT `+scoreColumns+` FROM scores WHERE app_id = ? AND player_id = ?`,
		appID, playerID))
	if err != nil {
		return nil, mapError(err, "score")
	}
	return s, nil
}

// ListTopScores orders by score, then by who reached it first
func (a *Adapter) ListTopScores(ctx context.Context, appID string, limit, offset int) ([]*storage.Score, int, error) {
	total, err := a.count(ctx, `SELECT COUNT(*) FROM scores WHERE app_id = ?`, appID)
	if err != nil {
		return nil, 0, err
	}

	rows, err := a.query(ctx, `SELECT `+scoreColumns+` FROM scores WHERE app_id = ?
		ORDER BY score DESC, updated_at ASC, player_id ASC LIMIT ? OFFSET ?`, appID, limit, offset)
	if err != nil {
		return nil, 0, mapError(err, "score")
	}
	defer rows.Close()

	scores := make([]*storage.Score, 0, limit)
	for rows.Next() {
		s, err := scanScore(rows)
		if err != nil {
			return nil, 0, mapError(err, "score")
		}
		scores = append(scores, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, mapError(err, "score")
	}
	return scores, total, nil
}

// GetScoreRank counts the entries ordered ahead of the player using the
// same ordering as ListTopScores.
func (a *Adapter) GetScoreRank(ctx context.Context, appID, playerID string) (int, *storage.Score, error) {
	s, err := a.GetScore(ctx, appID, playerID)
	if err != nil {
		return 0, nil, err
	}

	ahead, err := a.count(ctx, `SELECT COUNT(*) FROM scores WHERE app_id = ? AND (
			score > ?
			OR (score = ? AND updated_at < ?)
			OR (score = ? AND updated_at = ? AND player_id < ?))`,
		appID, s.Score, s.Score, toMillis(s.UpdatedAt), s.Score, toMillis(s.UpdatedAt), s.PlayerID)
	if err != nil {
		return 0, nil, err
	}
	return ahead + 1, s, nil
}

func (a *Adapter) DeleteScores(ctx context.Context, appID string) (int64, error) {
	res, err := a.exec(ctx, `DELETE FROM scores WHERE app_id = ?`, appID)
	if err != nil {
		return 0, mapError(err, "score")
	}
	return res.RowsAffected()
}
