// Package session persists the currently authenticated user across restarts.
// Only the sanitized models.Session shape is ever stored here; the type has
// no credential fields, so the sanitize step is enforced at compile time.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fun2learn/satvocab/internal/models"
	"github.com/fun2learn/satvocab/internal/repositories/localstore"
)

// sessionKey is the localstore key holding the JSON-encoded session.
const sessionKey = "current_user"

// Manager restores, persists, and clears the current session.
type Manager interface {
	// Restore returns the persisted session, or nil when logged out.
	Restore(ctx context.Context) (*models.Session, error)

	// Persist stores s as the current session.
	Persist(ctx context.Context, s models.Session) error

	// Clear removes any persisted session.
	Clear(ctx context.Context) error
}

// LocalStoreManager keeps the session in the localstore.
type LocalStoreManager struct {
	store localstore.Repository
}

// NewLocalStoreManager builds a Manager over the given store.
func NewLocalStoreManager(store localstore.Repository) *LocalStoreManager {
	return &LocalStoreManager{store: store}
}

// Restore reads the persisted session. An absent key means logged out, and
// so does a payload that fails to decode; neither is an error.
func (m *LocalStoreManager) Restore(ctx context.Context) (*models.Session, error) {
	data, err := m.store.Get(ctx, sessionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var s models.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, nil
	}
	return &s, nil
}

func (m *LocalStoreManager) Persist(ctx context.Context, s models.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := m.store.Set(ctx, sessionKey, data); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

func (m *LocalStoreManager) Clear(ctx context.Context) error {
	if err := m.store.Delete(ctx, sessionKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
