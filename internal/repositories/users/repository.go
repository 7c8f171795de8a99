// Package users persists the full account collection. The collection is
// always loaded and saved whole, mirroring the single-string-key layout the
// original application used; the repository interface exists so services
// and tests can swap the backing store.
package users

import (
	"context"

	"github.com/fun2learn/satvocab/internal/models"
)

// CredentialRepository loads and replaces the persisted account collection.
//
// Load returns the empty collection when nothing is persisted or the payload
// is corrupt; corruption is never a fatal error. Save atomically replaces
// the entire collection, so every write is a fully-formed collection even
// if the caller is abandoned mid-flow.
type CredentialRepository interface {
	Load(ctx context.Context) ([]models.UserRecord, error)
	Save(ctx context.Context, records []models.UserRecord) error
}
