package main

import (
	"context"
	"course_suggestions_system/configs"
	"course_suggestions_system/internal/db/repositories"
	"course_suggestions_system/internal/di"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

func main() {
	config, err := configs.LoadVoteReconcilerConfig()
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	_, err = s.Cron(config.Reconciler.Cron).Do(func() {
		reconcileVotes(ctx, store.Suggestions, time.Now().UTC(), logger)
	})
	if err != nil {
		logger.Fatalw("failed to schedule reconciliation", "cron", config.Reconciler.Cron, "error", err)
	}

	s.StartAsync()
	logger.Infow("vote reconciler started", "cron", config.Reconciler.Cron)

	<-ctx.Done()
	s.Stop()
	logger.Info("vote reconciler stopped")
}

// reconcileVotes resets drifted vote counters and reports how many were fixed.
func reconcileVotes(
	ctx context.Context,
	suggestionRepository repositories.SuggestionRepository,
	now time.Time,
	logger *zap.SugaredLogger,
) int {
	logger.Info("reconciling votes")

	ids, err := suggestionRepository.ReconcileVotes(ctx, now)
	if err != nil {
		logger.Errorw("failed to reconcile votes", "error", err)
		return 0
	}

	if len(ids) == 0 {
		logger.Info("no vote counters to fix")
		return 0
	}

	logger.Warnw("vote counters fixed", "count", len(ids), "ids", ids)
	return len(ids)
}
