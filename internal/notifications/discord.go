package notifications

import (
	"context"
	"course_suggestions_system/internal/db/models"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type discordNotifier struct {
	send      func(channelID, content string) error
	channelID string
}

// NewDiscordNotifier posts to a channel over the REST API; the session does
// not need an open gateway connection.
func NewDiscordNotifier(session *discordgo.Session, channelID string) Notifier {
	return &discordNotifier{
		send: func(channelID, content string) error {
			_, err := session.ChannelMessageSend(channelID, content)
			return err
		},
		channelID: channelID,
	}
}

func (n *discordNotifier) SuggestionProposed(ctx context.Context, suggestion *models.Suggestion) error {
	return n.post(ctx, proposedText(suggestion))
}

func (n *discordNotifier) SuggestionModerated(ctx context.Context, suggestion *models.Suggestion) error {
	return n.post(ctx, moderatedText(suggestion))
}

func (n *discordNotifier) post(ctx context.Context, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := n.send(n.channelID, content); err != nil {
		return fmt.Errorf("failed to send discord message: %w", err)
	}
	return nil
}
