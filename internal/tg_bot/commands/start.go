package commands

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const startCommandName = "start"

type startCommand struct{}

func NewStartCommand() Command {
	return &startCommand{}
}

func (c *startCommand) CanHandle(command string) bool {
	return command == startCommandName
}

func (c *startCommand) Handle(_ context.Context, _ string, chatID int64) []tgbotapi.Chattable {
	messageText := `
Hi! I help moderate course suggestions:

/pending_suggestions - list suggestions waiting for a decision.
/approve <id> - approve a pending suggestion.
/reject <id> - reject a pending suggestion.
`
	return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, messageText)}
}
