package services

import (
	"context"
	"fmt"

	"github.com/fun2learn/satvocab/internal/common"
	"github.com/fun2learn/satvocab/internal/models"
	"github.com/fun2learn/satvocab/internal/repositories/users"
)

// WordService manages the saved-word list on the authenticated record.
// Writes touch only the SavedWords field of the addressed record.
type WordService struct {
	repo users.CredentialRepository
}

// NewWordService constructs a WordService.
func NewWordService(repo users.CredentialRepository) *WordService {
	return &WordService{repo: repo}
}

// Toggle flips whether word is in the user's saved list and reports the new
// state (true when the word is now saved). A save of an already-saved word
// removes it, matching the single save/unsave control of the UI.
func (s *WordService) Toggle(ctx context.Context, email, word string) (bool, error) {
	records, err := s.repo.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("error loading users: %w", err)
	}

	rec, ok := users.FindByEmail(records, email)
	if !ok {
		return false, common.ErrorNotFound
	}

	saved := false
	if rec.HasSavedWord(word) {
		kept := make([]string, 0, len(rec.SavedWords))
		for _, w := range rec.SavedWords {
			if w != word {
				kept = append(kept, w)
			}
		}
		rec.SavedWords = kept
	} else {
		rec.SavedWords = append(append([]string{}, rec.SavedWords...), word)
		saved = true
	}

	if err := s.repo.Save(ctx, users.Upsert(records, rec)); err != nil {
		return false, fmt.Errorf("error saving users: %w", err)
	}
	return saved, nil
}

// SavedWords returns the user's saved word identifiers.
func (s *WordService) SavedWords(ctx context.Context, email string) ([]string, error) {
	records, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading users: %w", err)
	}

	rec, ok := users.FindByEmail(records, email)
	if !ok {
		return nil, common.ErrorNotFound
	}
	return rec.SavedWords, nil
}

// Saved reports whether the user has flagged word.
func (s *WordService) Saved(ctx context.Context, email, word string) (bool, error) {
	words, err := s.SavedWords(ctx, email)
	if err != nil {
		return false, err
	}
	rec := models.UserRecord{SavedWords: words}
	return rec.HasSavedWord(word), nil
}
