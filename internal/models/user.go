// Package models defines the data types persisted by satvocab: user account
// records, the sanitized session view, static vocabulary content, and
// leaderboard entries.
package models

// UserRecord is one stored account. Records are created at signup, updated in
// place on credential migration, saved-word changes, and quiz completion, and
// never deleted.
//
// Exactly one of Password/PasswordHash is set after a successful login.
// Password is the legacy plaintext form kept only for accounts created before
// hashing existed; it is rewritten to PasswordHash on the first successful
// login (see services.AuthService).
type UserRecord struct {
	// Name is the trimmed display name, non-empty at creation.
	Name string `json:"name"`

	// Email is the identity key, stored in normalized form
	// (trimmed, lower-cased). Uniqueness holds over this form.
	Email string `json:"email"`

	// Password is the deprecated plaintext credential.
	Password string `json:"password,omitempty"`

	// PasswordHash is the hex-encoded digest of the password.
	PasswordHash string `json:"passwordHash,omitempty"`

	// SavedWords holds word identifiers the user flagged, without duplicates.
	SavedWords []string `json:"savedWords"`

	// UnitProgress maps a unit id to the best score achieved for that unit.
	// Values only ever increase.
	UnitProgress map[int]int `json:"unitProgress"`
}

// HasSavedWord reports whether word is present in SavedWords.
func (u *UserRecord) HasSavedWord(word string) bool {
	for _, w := range u.SavedWords {
		if w == word {
			return true
		}
	}
	return false
}

// Session is the sanitized, credential-free view of an authenticated
// UserRecord. It is the only account representation exposed outside the
// auth subsystem; by construction it cannot carry a password or hash.
type Session struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewSession derives a Session from a user record, dropping everything
// except identity and display fields.
func NewSession(u *UserRecord) Session {
	return Session{Name: u.Name, Email: u.Email}
}
