package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fun2learn/satvocab/internal/hashx"
	"github.com/fun2learn/satvocab/internal/logging"
	"github.com/fun2learn/satvocab/internal/repositories/localstore"
	"github.com/fun2learn/satvocab/internal/repositories/users"
	"github.com/fun2learn/satvocab/internal/services"
	"github.com/fun2learn/satvocab/internal/session"
	"github.com/fun2learn/satvocab/internal/vocab"

	_ "modernc.org/sqlite"
)

func stubInputs(t *testing.T, texts []string, password []byte) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword

	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(texts) {
			return "", io.EOF
		}
		s := texts[i]
		i++
		return s, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) {
		return append([]byte(nil), password...), nil
	}
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE leaderboard (
  id         TEXT PRIMARY KEY,
  name       TEXT NOT NULL,
  score      INTEGER NOT NULL,
  created_at INTEGER NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func newTestApp(t *testing.T) *App {
	t.Helper()

	store := localstore.NewMemoryRepository()
	userRepo := users.NewLocalStoreRepository(store)
	sessions := session.NewLocalStoreManager(store)
	logger := logging.New(io.Discard, "error")

	return &App{
		log:      logger,
		auth:     services.NewAuthService(userRepo, sessions, hashx.NewSHA256(), logger),
		words:    services.NewWordService(userRepo),
		progress: services.NewProgressService(userRepo, setupTestDB(t), logger),
		media:    vocab.NewNoopMediaGenerator(),
		reader:   bufio.NewReader(strings.NewReader("")),
		rnd:      rand.New(rand.NewSource(1)),
	}
}

func signup(t *testing.T, a *App, name, email, password string) {
	t.Helper()
	restore := stubInputs(t, []string{name, email}, []byte(password))
	defer restore()
	require.NoError(t, a.Signup(context.Background()))
	require.True(t, a.isLoggedIn())
}

func TestSignup_SetsSession(t *testing.T) {
	a := newTestApp(t)
	signup(t, a, "Ana", "ana@test.com", "secret1")

	assert.Equal(t, "Ana", a.session.Name)
	assert.Equal(t, "ana@test.com", a.session.Email)
}

func TestSignup_BadFormatLeavesLoggedOut(t *testing.T) {
	a := newTestApp(t)

	restore := stubInputs(t, []string{"Ana", "not-an-email"}, []byte("secret1"))
	defer restore()

	require.NoError(t, a.Signup(context.Background()))
	assert.False(t, a.isLoggedIn())
}

func TestLogin_WrongPasswordLeavesLoggedOut(t *testing.T) {
	a := newTestApp(t)
	signup(t, a, "Ana", "ana@test.com", "secret1")
	require.NoError(t, a.Logout(context.Background()))

	restore := stubInputs(t, []string{"ana@test.com"}, []byte("wrong!!"))
	defer restore()

	require.NoError(t, a.Login(context.Background()))
	assert.False(t, a.isLoggedIn())
}

func TestLogin_Success(t *testing.T) {
	a := newTestApp(t)
	signup(t, a, "Ana", "ana@test.com", "secret1")
	require.NoError(t, a.Logout(context.Background()))

	restore := stubInputs(t, []string{"ANA@test.com"}, []byte("secret1"))
	defer restore()

	require.NoError(t, a.Login(context.Background()))
	require.True(t, a.isLoggedIn())
	assert.Equal(t, "ana@test.com", a.session.Email)
}

func TestLogout_ClearsSession(t *testing.T) {
	a := newTestApp(t)
	signup(t, a, "Ana", "ana@test.com", "secret1")

	require.NoError(t, a.Logout(context.Background()))
	assert.False(t, a.isLoggedIn())

	s, err := a.auth.Current(context.Background())
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestSaveWord_Toggles(t *testing.T) {
	a := newTestApp(t)
	signup(t, a, "Ana", "ana@test.com", "secret1")
	ctx := context.Background()

	a.saveWord(ctx, "arcane")
	saved, err := a.words.Saved(ctx, a.session.Email, "arcane")
	require.NoError(t, err)
	assert.True(t, saved)

	a.saveWord(ctx, "arcane")
	saved, err = a.words.Saved(ctx, a.session.Email, "arcane")
	require.NoError(t, err)
	assert.False(t, saved)
}

func TestSaveWord_UnknownWordIgnored(t *testing.T) {
	a := newTestApp(t)
	signup(t, a, "Ana", "ana@test.com", "secret1")
	ctx := context.Background()

	a.saveWord(ctx, "nosuchword")
	saved, err := a.words.SavedWords(ctx, a.session.Email)
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestRunQuiz_RecordsBestScore(t *testing.T) {
	a := newTestApp(t)
	signup(t, a, "Ana", "ana@test.com", "secret1")
	ctx := context.Background()

	// answer every question wrong, then confirm a zero best was stored
	answers := make([]string, vocab.QuizSize)
	for i := range answers {
		answers[i] = "X"
	}
	restore := stubInputs(t, answers, nil)
	defer restore()

	a.runQuiz(ctx, 1)

	best, improved, err := a.progress.SubmitScore(ctx, a.session.Email, 1, 0)
	require.NoError(t, err)
	assert.False(t, improved)
	assert.Equal(t, 0, best)
}

func TestRunSprint_RecordsLeaderboardEntry(t *testing.T) {
	a := newTestApp(t)
	signup(t, a, "Ana", "ana@test.com", "secret1")
	ctx := context.Background()

	restore := stubInputs(t, []string{"q"}, nil)
	defer restore()

	a.runSprint(ctx)

	entries, err := a.progress.Leaderboard(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Ana", entries[0].Name)
	assert.Equal(t, 0, entries[0].Score)
}

func TestRunSprint_StopsWhenTimeIsUp(t *testing.T) {
	a := newTestApp(t)
	signup(t, a, "Ana", "ana@test.com", "secret1")
	ctx := context.Background()

	// every clock read after the first lands past the deadline
	origNow := now
	defer func() { now = origNow }()
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.Local)
	calls := 0
	now = func() time.Time {
		calls++
		if calls == 1 {
			return start
		}
		return start.Add(vocab.SprintDurationSeconds*time.Second + time.Second)
	}

	restore := stubInputs(t, nil, nil)
	defer restore()

	a.runSprint(ctx)

	entries, err := a.progress.Leaderboard(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 0, entries[0].Score)
}

func TestCommands_RequireLogin(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	a.saveWord(ctx, "arcane")
	a.runQuiz(ctx, 1)
	a.runSprint(ctx)

	entries, err := a.progress.Leaderboard(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
