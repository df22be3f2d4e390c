package handlers

import (
	"context"
	"course_suggestions_system/configs"
	"course_suggestions_system/internal/tg_bot/commands"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type CommandHandler interface {
	Handle(ctx context.Context, update tgbotapi.Update) []tgbotapi.Chattable
}

type moderationBotCommandHandler struct {
	botConfig configs.Bot
	logger    *zap.SugaredLogger

	commands []commands.Command
}

func NewModerationBotCommandHandler(
	botConfig configs.Bot,
	logger *zap.SugaredLogger,
	commands []commands.Command,
) CommandHandler {
	return &moderationBotCommandHandler{
		botConfig: botConfig,
		logger:    logger,
		commands:  commands,
	}
}

func (h *moderationBotCommandHandler) Handle(ctx context.Context, update tgbotapi.Update) []tgbotapi.Chattable {
	message := update.Message

	if message == nil || message.From == nil {
		h.logger.Warn("received unknown updates")
		return []tgbotapi.Chattable{}
	}

	chatID := message.Chat.ID

	if !message.IsCommand() {
		h.logger.Debugw("ignoring non-command message", "chat_id", chatID)
		return []tgbotapi.Chattable{}
	}

	if !h.botConfig.IsModerator(message.From.ID) {
		h.logger.Warnw("command from non-moderator", "user_id", message.From.ID, "command", message.Command())
		return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, "Sorry, only moderators can use this bot.")}
	}

	h.logger.Infow("received command", "command", message.Command(), "user_id", message.From.ID)
	return h.tryToHandleCommand(ctx, message.Command(), message.CommandArguments(), chatID)
}

func (h *moderationBotCommandHandler) tryToHandleCommand(ctx context.Context, command, arguments string, chatID int64) []tgbotapi.Chattable {
	for _, handler := range h.commands {
		if handler.CanHandle(command) {
			return handler.Handle(ctx, arguments, chatID)
		}
	}

	h.logger.Warnw("received unknown command", "command", command)
	return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, "Unknown command, try /start")}
}
