package notifications

//go:generate mockgen -destination=mocks/notifier.go -package=mock_notifications . Notifier

import (
	"context"
	"course_suggestions_system/configs"
	"course_suggestions_system/internal/db/models"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Notifier tells moderators about suggestion lifecycle events.
type Notifier interface {
	SuggestionProposed(ctx context.Context, suggestion *models.Suggestion) error
	SuggestionModerated(ctx context.Context, suggestion *models.Suggestion) error
}

type multiNotifier struct {
	notifiers []Notifier
}

// NewMultiNotifier delivers every event to all notifiers, even when some of
// them fail.
func NewMultiNotifier(notifiers ...Notifier) Notifier {
	return &multiNotifier{notifiers: notifiers}
}

func (n *multiNotifier) SuggestionProposed(ctx context.Context, suggestion *models.Suggestion) error {
	var errs []error
	for _, notifier := range n.notifiers {
		if err := notifier.SuggestionProposed(ctx, suggestion); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (n *multiNotifier) SuggestionModerated(ctx context.Context, suggestion *models.Suggestion) error {
	var errs []error
	for _, notifier := range n.notifiers {
		if err := notifier.SuggestionModerated(ctx, suggestion); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewFromConfig builds a notifier for every configured channel. With nothing
// configured the returned notifier does nothing.
func NewFromConfig(config configs.Notifications, logger *zap.SugaredLogger) (Notifier, error) {
	var notifiers []Notifier

	if config.TelegramEnabled() {
		bot, err := tgbotapi.NewBotAPI(config.TelegramToken)
		if err != nil {
			return nil, fmt.Errorf("failed to create telegram bot: %w", err)
		}
		notifiers = append(notifiers, NewTelegramNotifier(bot, config.TelegramModeratorChatID))
		logger.Info("telegram notifications enabled")
	}

	if config.DiscordEnabled() {
		session, err := discordgo.New("Bot " + config.DiscordToken)
		if err != nil {
			return nil, fmt.Errorf("failed to create discord session: %w", err)
		}
		notifiers = append(notifiers, NewDiscordNotifier(session, config.DiscordChannelID))
		logger.Info("discord notifications enabled")
	}

	return NewMultiNotifier(notifiers...), nil
}
