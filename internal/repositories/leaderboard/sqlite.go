package leaderboard

import (
	"context"
	"fmt"
	"time"

	"github.com/fun2learn/satvocab/internal/dbx"
	"github.com/fun2learn/satvocab/internal/models"
)

// SQLiteRepository stores results in the leaderboard table. Timestamps are
// kept as unix seconds so range queries stay portable across drivers.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository binds a repository to a database or transaction handle.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Add(ctx context.Context, entry models.LeaderboardEntry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO leaderboard (id, name, score, created_at) VALUES (?, ?, ?, ?)
	`, entry.ID, entry.Name, entry.Score, entry.CreatedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to add leaderboard entry: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Top(ctx context.Context, day time.Time, n int) ([]models.LeaderboardEntry, error) {
	start, end := dayBounds(day)

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, score, created_at FROM leaderboard
		WHERE created_at >= ? AND created_at < ?
		ORDER BY score DESC, created_at ASC
		LIMIT ?
	`, start, end, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []models.LeaderboardEntry
	for rows.Next() {
		var e models.LeaderboardEntry
		var created int64
		if err := rows.Scan(&e.ID, &e.Name, &e.Score, &created); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard row: %w", err)
		}
		e.CreatedAt = time.Unix(created, 0).In(day.Location())
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *SQLiteRepository) Prune(ctx context.Context, day time.Time, keep int) error {
	start, end := dayBounds(day)

	// Results from other days are stale, the board resets daily.
	if _, err := r.db.ExecContext(ctx, `
		DELETE FROM leaderboard WHERE created_at < ? OR created_at >= ?
	`, start, end); err != nil {
		return fmt.Errorf("failed to prune stale leaderboard entries: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `
		DELETE FROM leaderboard WHERE id NOT IN (
			SELECT id FROM leaderboard
			ORDER BY score DESC, created_at ASC
			LIMIT ?
		)
	`, keep); err != nil {
		return fmt.Errorf("failed to truncate leaderboard: %w", err)
	}
	return nil
}
