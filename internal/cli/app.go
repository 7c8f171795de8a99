// Package cli implements the interactive study shell: authentication,
// flashcards, unit quizzes, the word sprint game and the daily leaderboard.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"math/rand"
	"os"
	"time"

	"github.com/fun2learn/satvocab/internal/config"
	"github.com/fun2learn/satvocab/internal/hashx"
	"github.com/fun2learn/satvocab/internal/logging"
	"github.com/fun2learn/satvocab/internal/models"
	"github.com/fun2learn/satvocab/internal/repositories/localstore"
	"github.com/fun2learn/satvocab/internal/repositories/users"
	"github.com/fun2learn/satvocab/internal/services"
	"github.com/fun2learn/satvocab/internal/session"
	"github.com/fun2learn/satvocab/internal/storage"
	"github.com/fun2learn/satvocab/internal/vocab"

	_ "modernc.org/sqlite"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	auth     *services.AuthService
	words    *services.WordService
	progress *services.ProgressService
	media    vocab.MediaGenerator
	session  *models.Session
	reader   *bufio.Reader
	rnd      *rand.Rand
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.New(os.Stdout, cfg.LogLevel)

	db, err := storage.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store := localstore.NewSQLiteRepository(db)
	userRepo := users.NewLocalStoreRepository(store)
	sessions := session.NewLocalStoreManager(store)

	return &App{
		config:   cfg,
		log:      logger,
		db:       db,
		auth:     services.NewAuthService(userRepo, sessions, hashx.NewSHA256(), logger),
		words:    services.NewWordService(userRepo),
		progress: services.NewProgressService(userRepo, db, logger),
		media:    vocab.NewNoopMediaGenerator(),
		reader:   bufio.NewReader(os.Stdin),
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}
