package commands

import (
	"context"
	"course_suggestions_system/internal/db/models"
	"course_suggestions_system/internal/domainerrors"
	"course_suggestions_system/internal/services"
	"course_suggestions_system/internal/tg_bot/extension"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	approveCommandName = "approve"
	rejectCommandName  = "reject"
)

type moderateSuggestionCommand struct {
	name   string
	action func(ctx context.Context, suggestionID int64) (*models.Suggestion, error)
	logger *zap.SugaredLogger
}

func NewApproveCommand(suggestionService services.SuggestionService, logger *zap.SugaredLogger) Command {
	return &moderateSuggestionCommand{
		name:   approveCommandName,
		action: suggestionService.Approve,
		logger: logger,
	}
}

func NewRejectCommand(suggestionService services.SuggestionService, logger *zap.SugaredLogger) Command {
	return &moderateSuggestionCommand{
		name:   rejectCommandName,
		action: suggestionService.Reject,
		logger: logger,
	}
}

func (c *moderateSuggestionCommand) CanHandle(command string) bool {
	return command == c.name
}

func (c *moderateSuggestionCommand) Handle(ctx context.Context, arguments string, chatID int64) []tgbotapi.Chattable {
	suggestionID, err := strconv.ParseInt(strings.TrimSpace(arguments), 10, 64)
	if err != nil || suggestionID <= 0 {
		return []tgbotapi.Chattable{extension.ErrorMessage(chatID, fmt.Sprintf("Usage: /%s <id>", c.name))}
	}

	suggestion, err := c.action(ctx, suggestionID)
	switch {
	case err == nil:
		text := fmt.Sprintf("%s: #%d %s", suggestion.Status.CapitalizedString(), suggestion.ID, suggestion.Name)
		return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, text)}
	case errors.Is(err, domainerrors.ErrNotFound):
		return []tgbotapi.Chattable{extension.ErrorMessage(chatID, fmt.Sprintf("Suggestion #%d not found", suggestionID))}
	case errors.Is(err, domainerrors.ErrAlreadyProcessed):
		return []tgbotapi.Chattable{extension.ErrorMessage(chatID, fmt.Sprintf("Suggestion #%d was already processed", suggestionID))}
	default:
		c.logger.Errorw("failed to moderate suggestion", "id", suggestionID, "command", c.name, "error", err)
		return []tgbotapi.Chattable{extension.DefaultErrorMessage(chatID)}
	}
}
