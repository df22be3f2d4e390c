package handlers

import (
	"context"
	"course_suggestions_system/configs"
	"course_suggestions_system/internal/tg_bot/commands"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func commandUpdate(userID int64, text string, commandLength int) tgbotapi.Update {
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			Text: text,
			From: &tgbotapi.User{ID: userID},
			Chat: &tgbotapi.Chat{ID: 100},
			Entities: []tgbotapi.MessageEntity{
				{Type: "bot_command", Offset: 0, Length: commandLength},
			},
		},
	}
}

func newHandler() CommandHandler {
	return NewModerationBotCommandHandler(
		configs.Bot{ModeratorIDs: []int64{42}},
		zap.NewNop().Sugar(),
		[]commands.Command{commands.NewStartCommand()},
	)
}

func text(t *testing.T, messages []tgbotapi.Chattable) string {
	t.Helper()

	require.Len(t, messages, 1)
	message, ok := messages[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(100), message.ChatID)
	return message.Text
}

func TestHandle_ModeratorCommand(t *testing.T) {
	messages := newHandler().Handle(context.Background(), commandUpdate(42, "/start", 6))
	assert.Contains(t, text(t, messages), "/approve <id>")
}

func TestHandle_NonModerator(t *testing.T) {
	messages := newHandler().Handle(context.Background(), commandUpdate(7, "/start", 6))
	assert.Equal(t, "Sorry, only moderators can use this bot.", text(t, messages))
}

func TestHandle_UnknownCommand(t *testing.T) {
	messages := newHandler().Handle(context.Background(), commandUpdate(42, "/delete 1", 7))
	assert.Equal(t, "Unknown command, try /start", text(t, messages))
}

func TestHandle_IgnoresPlainMessagesAndEmptyUpdates(t *testing.T) {
	handler := newHandler()

	plain := tgbotapi.Update{
		Message: &tgbotapi.Message{
			Text: "hello",
			From: &tgbotapi.User{ID: 42},
			Chat: &tgbotapi.Chat{ID: 100},
		},
	}
	assert.Empty(t, handler.Handle(context.Background(), plain))
	assert.Empty(t, handler.Handle(context.Background(), tgbotapi.Update{}))
}
