package di

import (
	"context"
	"course_suggestions_system/configs"
	"course_suggestions_system/internal/db"
	"course_suggestions_system/internal/db/memory"
	"course_suggestions_system/internal/db/repositories"
	"time"

	zaploki "github.com/paul-milne/zap-loki"
	"go.uber.org/zap"
)

func NewLogger(app configs.App, config configs.Logger) *zap.SugaredLogger {
	zapConfig := zap.NewProductionConfig()
	if app.IsDevEnvironment() {
		zapConfig = zap.NewDevelopmentConfig()
	}

	if config.URL == "" {
		return zap.Must(zapConfig.Build()).Sugar()
	}

	ctx := context.Background()
	lokiConfig := zaploki.Config{
		Url:          config.URL,
		BatchMaxSize: 1000,
		BatchMaxWait: 10 * time.Second,
		Labels:       map[string]string{"app": config.AppName, "environment": app.Environment},
	}
	return zap.Must(zaploki.New(ctx, lokiConfig).WithCreateLogger(zapConfig)).Sugar()
}

// Store bundles the repositories of one backend.
type Store struct {
	Suggestions repositories.SuggestionRepository
	Votes       repositories.VoteRepository
	Transactor  repositories.Transactor

	close func() error
}

func (s Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// NewStore connects to Postgres and migrates it, or builds the in-memory
// backend when the URL asks for it.
func NewStore(config configs.DB, logger *zap.SugaredLogger) (Store, error) {
	if config.IsMemory() {
		logger.Warn("using in-memory store, data will be lost on exit")
		store := memory.NewStore()
		return Store{
			Suggestions: store.Suggestions(),
			Votes:       store.Votes(),
			Transactor:  store,
		}, nil
	}

	database, err := db.StartDB(config, logger)
	if err != nil {
		return Store{}, err
	}

	return Store{
		Suggestions: repositories.NewSuggestionRepository(database),
		Votes:       repositories.NewVoteRepository(database),
		Transactor:  repositories.NewTransactor(database),
		close:       database.Close,
	}, nil
}
