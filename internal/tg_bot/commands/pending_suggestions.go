package commands

import (
	"context"
	"course_suggestions_system/internal"
	"course_suggestions_system/internal/db/models"
	"course_suggestions_system/internal/services"
	"course_suggestions_system/internal/tg_bot/extension"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const pendingSuggestionsCommandName = "pending_suggestions"

type pendingSuggestionsCommand struct {
	suggestionService services.SuggestionService
	logger            *zap.SugaredLogger
}

func NewPendingSuggestionsCommand(suggestionService services.SuggestionService, logger *zap.SugaredLogger) Command {
	return &pendingSuggestionsCommand{
		suggestionService: suggestionService,
		logger:            logger,
	}
}

func (c *pendingSuggestionsCommand) CanHandle(command string) bool {
	return command == pendingSuggestionsCommandName
}

func (c *pendingSuggestionsCommand) Handle(ctx context.Context, _ string, chatID int64) []tgbotapi.Chattable {
	suggestions, err := c.suggestionService.List(ctx, models.SuggestionStatusPending)
	if err != nil {
		c.logger.Errorw("failed to get suggestions", "error", err)
		return []tgbotapi.Chattable{extension.DefaultErrorMessage(chatID)}
	}

	if len(suggestions) == 0 {
		return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, "No suggestions are waiting for a decision")}
	}

	var builder strings.Builder
	for _, suggestion := range suggestions {
		builder.WriteString(fmt.Sprintf("#%d %s\n", suggestion.ID, suggestion.Name))
		if suggestion.Description != "" {
			builder.WriteString(fmt.Sprintf("%s\n", suggestion.Description))
		}
		builder.WriteString(fmt.Sprintf("Proposed by %s on %s, votes: %d\n", suggestion.ProposerUsername, internal.Format(suggestion.CreatedAt), suggestion.Votes))
		builder.WriteString("\n")
	}

	message := tgbotapi.NewMessage(chatID, strings.TrimSpace(builder.String()))
	message.DisableWebPagePreview = true

	return []tgbotapi.Chattable{message}
}
