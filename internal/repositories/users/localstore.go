package users

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fun2learn/satvocab/internal/models"
	"github.com/fun2learn/satvocab/internal/repositories/localstore"
)

// usersKey is the localstore key holding the JSON-encoded collection.
const usersKey = "users"

// LocalStoreRepository keeps the collection as one JSON array in the
// localstore, the same shape the original kept under a browser storage key.
type LocalStoreRepository struct {
	store localstore.Repository
}

// NewLocalStoreRepository builds a CredentialRepository over the given store.
func NewLocalStoreRepository(store localstore.Repository) *LocalStoreRepository {
	return &LocalStoreRepository{store: store}
}

// Load returns the persisted collection. An absent key or a payload that
// fails to decode both yield an empty collection: the application must stay
// usable with a wiped or corrupted store.
func (r *LocalStoreRepository) Load(ctx context.Context) ([]models.UserRecord, error) {
	data, err := r.store.Get(ctx, usersKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	if data == nil {
		return []models.UserRecord{}, nil
	}

	var records []models.UserRecord
	if err := json.Unmarshal(data, &records); err != nil {
		// Corrupt payload, start over with an empty collection.
		return []models.UserRecord{}, nil
	}
	if records == nil {
		records = []models.UserRecord{}
	}
	return records, nil
}

// Save replaces the persisted collection with records.
func (r *LocalStoreRepository) Save(ctx context.Context, records []models.UserRecord) error {
	if records == nil {
		records = []models.UserRecord{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}
	if err := r.store.Set(ctx, usersKey, data); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}
	return nil
}
