package models

import "time"

// LeaderboardEntry is one anonymous sprint result. Entries live in their own
// store, unrelated to user records; the leaderboard keeps the top scores of
// the current calendar day only.
type LeaderboardEntry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"createdAt"`
}
