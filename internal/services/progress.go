package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fun2learn/satvocab/internal/common"
	"github.com/fun2learn/satvocab/internal/dbx"
	"github.com/fun2learn/satvocab/internal/logging"
	"github.com/fun2learn/satvocab/internal/models"
	"github.com/fun2learn/satvocab/internal/repositories/leaderboard"
	"github.com/fun2learn/satvocab/internal/repositories/users"
)

// ProgressService records quiz results on the authenticated record and
// sprint results on the daily leaderboard.
type ProgressService struct {
	repo users.CredentialRepository
	db   *sql.DB
	log  logging.Logger

	// now is a test seam for the leaderboard's calendar-day logic.
	now func() time.Time
}

// NewProgressService constructs a ProgressService.
func NewProgressService(repo users.CredentialRepository, db *sql.DB, log logging.Logger) *ProgressService {
	return &ProgressService{repo: repo, db: db, log: log, now: time.Now}
}

func (s *ProgressService) boards(db dbx.DBTX) leaderboard.Repository {
	return leaderboard.NewSQLiteRepository(db)
}

// SubmitScore records score for unitID on the user's record under the
// monotonic best-score rule: the stored value only ever increases. Returns
// the best score after submission and whether this submission improved it.
// No write happens when the score does not improve.
func (s *ProgressService) SubmitScore(ctx context.Context, email string, unitID, score int) (int, bool, error) {
	records, err := s.repo.Load(ctx)
	if err != nil {
		return 0, false, fmt.Errorf("error loading users: %w", err)
	}

	rec, ok := users.FindByEmail(records, email)
	if !ok {
		return 0, false, common.ErrorNotFound
	}

	best := rec.UnitProgress[unitID]
	if score <= best {
		return best, false, nil
	}

	if rec.UnitProgress == nil {
		rec.UnitProgress = map[int]int{}
	} else {
		// Copy before writing, collections are treated as immutable values.
		progress := make(map[int]int, len(rec.UnitProgress))
		for k, v := range rec.UnitProgress {
			progress[k] = v
		}
		rec.UnitProgress = progress
	}
	rec.UnitProgress[unitID] = score

	if err := s.repo.Save(ctx, users.Upsert(records, rec)); err != nil {
		return 0, false, fmt.Errorf("error saving users: %w", err)
	}
	s.log.Info(ctx, "unit score improved", "email", rec.Email, "unit", unitID, "score", score)
	return score, true, nil
}

// RecordSprint appends an anonymous (name, score, timestamp) entry to the
// daily leaderboard and trims the board to its top entries, in one
// transaction.
func (s *ProgressService) RecordSprint(ctx context.Context, name string, score int) error {
	entry := models.LeaderboardEntry{
		ID:        uuid.NewString(),
		Name:      name,
		Score:     score,
		CreatedAt: s.now(),
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		board := s.boards(tx)
		if err := board.Add(ctx, entry); err != nil {
			return err
		}
		return board.Prune(ctx, entry.CreatedAt, leaderboard.MaxEntries)
	})
	if err != nil {
		return fmt.Errorf("error recording sprint result: %w", err)
	}
	return nil
}

// Leaderboard returns today's top sprint results, best first.
func (s *ProgressService) Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	entries, err := s.boards(s.db).Top(ctx, s.now(), leaderboard.MaxEntries)
	if err != nil {
		return nil, fmt.Errorf("error loading leaderboard: %w", err)
	}
	return entries, nil
}
