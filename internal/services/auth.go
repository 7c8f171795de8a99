// Package services contains the application services behind the satvocab
// CLI. This file implements authentication: login, signup, the one-time
// migration of legacy plaintext credentials to hashed form, and session
// handling.
package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/fun2learn/satvocab/internal/common"
	"github.com/fun2learn/satvocab/internal/hashx"
	"github.com/fun2learn/satvocab/internal/logging"
	"github.com/fun2learn/satvocab/internal/models"
	"github.com/fun2learn/satvocab/internal/repositories/users"
	"github.com/fun2learn/satvocab/internal/session"
	"github.com/fun2learn/satvocab/internal/validate"
)

// Mode selects the authentication flow.
type Mode string

const (
	ModeLogin  Mode = "login"
	ModeSignup Mode = "signup"
)

// AuthRequest carries credentials submitted by the UI. Name is used by
// signup only.
type AuthRequest struct {
	Mode     Mode
	Email    string
	Password string
	Name     string
}

// AuthService drives login and signup against the local credential store.
//
// Authenticate returns either a sanitized Session or one of the sentinel
// failures in the common package:
//   - common.ErrInvalidFormat: malformed email, short password, empty name.
//   - common.ErrDuplicateEmail: signup with an already-registered email.
//   - common.ErrInvalidCredentials: unknown email or wrong password; the two
//     are indistinguishable on purpose.
//   - common.ErrHashingUnsupported: hashing is unavailable where it is
//     required (signup, and login against an already-hashed credential).
type AuthService struct {
	repo     users.CredentialRepository
	sessions session.Manager
	hasher   hashx.Hasher
	log      logging.Logger
}

// NewAuthService constructs an AuthService.
func NewAuthService(repo users.CredentialRepository, sessions session.Manager, hasher hashx.Hasher, log logging.Logger) *AuthService {
	return &AuthService{repo: repo, sessions: sessions, hasher: hasher, log: log}
}

// Authenticate validates the request, runs the login or signup flow, and on
// success persists both the updated collection and the new session.
// Validation and lookup are read-only; only the persisting steps write.
func (s *AuthService) Authenticate(ctx context.Context, req AuthRequest) (models.Session, error) {
	email := validate.NormalizeEmail(req.Email)
	password := strings.TrimSpace(req.Password)
	name := strings.TrimSpace(req.Name)

	if !validate.Email(email) || !validate.Password(password) {
		return models.Session{}, common.ErrInvalidFormat
	}

	records, err := s.repo.Load(ctx)
	if err != nil {
		return models.Session{}, fmt.Errorf("error loading users: %w", err)
	}

	switch req.Mode {
	case ModeLogin:
		return s.login(ctx, records, email, password)
	case ModeSignup:
		return s.signup(ctx, records, email, password, name)
	default:
		return models.Session{}, fmt.Errorf("%w: unknown mode %q", common.ErrorInternal, req.Mode)
	}
}

func (s *AuthService) login(ctx context.Context, records []models.UserRecord, email, password string) (models.Session, error) {
	rec, ok := users.FindByEmail(records, email)
	if !ok {
		// Same failure as a wrong password, never reveal which emails exist.
		return models.Session{}, common.ErrInvalidCredentials
	}

	if rec.PasswordHash != "" {
		digest, err := s.hasher.Sum(password)
		if err != nil {
			if errors.Is(err, hashx.ErrUnavailable) {
				return models.Session{}, common.ErrHashingUnsupported
			}
			return models.Session{}, fmt.Errorf("error hashing password: %w", err)
		}
		if !equalCredential(rec.PasswordHash, digest) {
			return models.Session{}, common.ErrInvalidCredentials
		}
	} else {
		if !equalCredential(rec.Password, password) {
			return models.Session{}, common.ErrInvalidCredentials
		}
	}

	if rec.Password != "" {
		records = s.migrate(ctx, records, &rec, password)
		if err := s.repo.Save(ctx, records); err != nil {
			return models.Session{}, fmt.Errorf("error saving users: %w", err)
		}
	}

	sess := models.NewSession(&rec)
	if err := s.sessions.Persist(ctx, sess); err != nil {
		return models.Session{}, fmt.Errorf("error persisting session: %w", err)
	}
	s.log.Info(ctx, "user logged in", "email", rec.Email)
	return sess, nil
}

// migrate rewrites rec's legacy plaintext credential to hashed form and
// returns the updated collection. Migration is best-effort: if hashing is
// unavailable the record is left as is and login continues, so a degraded
// runtime never locks out existing accounts.
func (s *AuthService) migrate(ctx context.Context, records []models.UserRecord, rec *models.UserRecord, password string) []models.UserRecord {
	digest, err := s.hasher.Sum(password)
	if err != nil {
		s.log.Warn(ctx, "credential migration skipped", "email", rec.Email, "error", err)
		return records
	}

	rec.PasswordHash = digest
	rec.Password = ""
	s.log.Info(ctx, "legacy credential migrated", "email", rec.Email)
	return users.Upsert(records, *rec)
}

func (s *AuthService) signup(ctx context.Context, records []models.UserRecord, email, password, name string) (models.Session, error) {
	if _, exists := users.FindByEmail(records, email); exists {
		return models.Session{}, common.ErrDuplicateEmail
	}
	if name == "" {
		return models.Session{}, common.ErrInvalidFormat
	}

	// Unlike login migration, signup refuses to proceed without hashing:
	// new accounts must never hold a plaintext credential.
	digest, err := s.hasher.Sum(password)
	if err != nil {
		if errors.Is(err, hashx.ErrUnavailable) {
			return models.Session{}, common.ErrHashingUnsupported
		}
		return models.Session{}, fmt.Errorf("error hashing password: %w", err)
	}

	rec := models.UserRecord{
		Name:         name,
		Email:        email,
		PasswordHash: digest,
		SavedWords:   []string{},
		UnitProgress: map[int]int{},
	}

	if err := s.repo.Save(ctx, users.Upsert(records, rec)); err != nil {
		return models.Session{}, fmt.Errorf("error saving users: %w", err)
	}

	sess := models.NewSession(&rec)
	if err := s.sessions.Persist(ctx, sess); err != nil {
		return models.Session{}, fmt.Errorf("error persisting session: %w", err)
	}
	s.log.Info(ctx, "user signed up", "email", rec.Email)
	return sess, nil
}

// Current returns the restored session, or nil when logged out.
func (s *AuthService) Current(ctx context.Context) (*models.Session, error) {
	return s.sessions.Restore(ctx)
}

// Logout clears the persisted session.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

func equalCredential(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}
