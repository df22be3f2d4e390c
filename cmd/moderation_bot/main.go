package main

import (
	"context"
	"course_suggestions_system/configs"
	"course_suggestions_system/internal/di"
	"course_suggestions_system/internal/notifications"
	"course_suggestions_system/internal/services"
	tgbot "course_suggestions_system/internal/tg_bot"
	"course_suggestions_system/internal/tg_bot/commands"
	"course_suggestions_system/internal/tg_bot/handlers"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	config, err := configs.LoadModerationBotConfig()
	logger := di.NewLogger(config.App, config.Logger)
	defer logger.Sync()

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	if len(config.Bot.ModeratorIDs) == 0 {
		logger.Warn("no moderators configured, every command will be refused")
	}

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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting bot")
	err = tgbot.NewBot(
		handlers.NewModerationBotCommandHandler(
			config.Bot,
			logger,
			[]commands.Command{
				commands.NewStartCommand(),
				commands.NewPendingSuggestionsCommand(suggestionService, logger),
				commands.NewApproveCommand(suggestionService, logger),
				commands.NewRejectCommand(suggestionService, logger),
			},
		),
		logger,
	).Start(ctx, config)
	if err != nil {
		logger.Errorw("bot stopped with error", "error", err)
	}
}
