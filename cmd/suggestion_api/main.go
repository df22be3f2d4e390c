package main

import (
	"context"
	"course_suggestions_system/configs"
	"course_suggestions_system/internal/api"
	"course_suggestions_system/internal/di"
	"course_suggestions_system/internal/notifications"
	"course_suggestions_system/internal/services"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
)

func main() {
	config, err := configs.LoadSuggestionAPIConfig()
	logger := di.NewLogger(config.App, config.Logger)
	defer logger.Sync()

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	logger.Info("starting store")
	store, err := di.NewStore(config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start store", "error", err)
	}
	defer store.Close()
	logger.Info("store started")

	notifier, err := notifications.NewFromConfig(config.Notifications, logger)
	if err != nil {
		logger.Fatalw("failed to create notifier", "error", err)
	}

	suggestionService := services.NewSuggestionService(
		store.Suggestions,
		store.Votes,
		store.Transactor,
		notifier,
		config.Suggestions,
		logger,
	)

	if !config.App.IsDevEnvironment() {
		gin.SetMode(gin.ReleaseMode)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.HTTP.Port),
		Handler: api.NewRouter(suggestionService, config.HTTP, logger),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Infow("starting http server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalw("failed to serve http", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorw("failed to shut down http server", "error", err)
	}
}
