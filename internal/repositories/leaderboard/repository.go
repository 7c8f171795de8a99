// Package leaderboard stores anonymous sprint-game results. The board covers
// the current calendar day only and keeps the top ten scores, sorted
// descending.
package leaderboard

import (
	"context"
	"time"

	"github.com/fun2learn/satvocab/internal/models"
)

// MaxEntries is how many results the board retains per day.
const MaxEntries = 10

// Repository describes leaderboard operations. Implementations bind to a
// dbx.DBTX, so a service can run Add and Prune inside one transaction.
type Repository interface {
	// Add inserts one result.
	Add(ctx context.Context, entry models.LeaderboardEntry) error

	// Top returns at most n results recorded on the same calendar day as
	// day, ordered by score descending.
	Top(ctx context.Context, day time.Time, n int) ([]models.LeaderboardEntry, error)

	// Prune deletes results from other days and anything beyond the top
	// keep results of day.
	Prune(ctx context.Context, day time.Time, keep int) error
}

// dayBounds returns the [start, end) unix-second range of day's calendar day
// in day's location.
func dayBounds(day time.Time) (int64, int64) {
	y, m, d := day.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, day.Location())
	return start.Unix(), start.AddDate(0, 0, 1).Unix()
}
