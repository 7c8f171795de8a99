package users

import (
	"github.com/fun2learn/satvocab/internal/models"
	"github.com/fun2learn/satvocab/internal/validate"
)

// FindByEmail looks up a record by normalized email. The uniqueness
// invariant guarantees at most one match.
func FindByEmail(records []models.UserRecord, email string) (models.UserRecord, bool) {
	key := validate.NormalizeEmail(email)
	for _, r := range records {
		if r.Email == key {
			return r, true
		}
	}
	return models.UserRecord{}, false
}

// Upsert returns a fresh collection where rec replaced the record with the
// same normalized email, or was appended if none existed. The input slice is
// never mutated; collections are treated as immutable values so the
// no-deletion guarantee stays easy to reason about.
func Upsert(records []models.UserRecord, rec models.UserRecord) []models.UserRecord {
	rec.Email = validate.NormalizeEmail(rec.Email)

	out := make([]models.UserRecord, 0, len(records)+1)
	replaced := false
	for _, r := range records {
		if r.Email == rec.Email {
			out = append(out, rec)
			replaced = true
			continue
		}
		out = append(out, r)
	}
	if !replaced {
		out = append(out, rec)
	}
	return out
}
