package tgbot

import (
	"context"
	"course_suggestions_system/configs"
	"course_suggestions_system/internal/tg_bot/handlers"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type bot struct {
	handler handlers.CommandHandler
	logger  *zap.SugaredLogger
}

type Bot interface {
	Start(ctx context.Context, config configs.ModerationBotConfig) error
}

func NewBot(handler handlers.CommandHandler, logger *zap.SugaredLogger) Bot {
	return &bot{handler: handler, logger: logger}
}

// Start polls Telegram until ctx is done.
func (b *bot) Start(ctx context.Context, config configs.ModerationBotConfig) error {
	b.logger.Info("creating bot")
	api, updates, err := b.createBot(config)
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}
	b.logger.Infow("bot created", "username", api.Self.UserName)

	defer api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("bot stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			for _, message := range b.handler.Handle(ctx, update) {
				if _, err := api.Send(message); err != nil {
					b.logger.Errorw("failed to send message", "error", err)
				}
			}
		}
	}
}

func (b *bot) createBot(config configs.ModerationBotConfig) (*tgbotapi.BotAPI, tgbotapi.UpdatesChannel, error) {
	api, err := tgbotapi.NewBotAPI(config.Bot.Token)
	if err != nil {
		return nil, nil, err
	}

	api.Debug = config.App.IsDevEnvironment()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = config.Bot.UpdateTimeout

	return api, api.GetUpdatesChan(u), nil
}
