package notifications

import (
	"context"
	"course_suggestions_system/internal/db/models"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type telegramSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type telegramNotifier struct {
	bot    telegramSender
	chatID int64
}

func NewTelegramNotifier(bot *tgbotapi.BotAPI, chatID int64) Notifier {
	return &telegramNotifier{bot: bot, chatID: chatID}
}

func (n *telegramNotifier) SuggestionProposed(ctx context.Context, suggestion *models.Suggestion) error {
	return n.send(ctx, proposedText(suggestion))
}

func (n *telegramNotifier) SuggestionModerated(ctx context.Context, suggestion *models.Suggestion) error {
	return n.send(ctx, moderatedText(suggestion))
}

func (n *telegramNotifier) send(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	message := tgbotapi.NewMessage(n.chatID, text)
	message.DisableWebPagePreview = true

	if _, err := n.bot.Send(message); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	return nil
}
