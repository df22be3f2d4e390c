package notifications

import (
	"context"
	"course_suggestions_system/configs"
	"course_suggestions_system/internal/db/models"
	mock_notifications "course_suggestions_system/internal/notifications/mocks"
	"errors"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeTelegramSender struct {
	sent []tgbotapi.Chattable
	err  error
}

func (s *fakeTelegramSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	s.sent = append(s.sent, c)
	return tgbotapi.Message{}, s.err
}

func testSuggestion() *models.Suggestion {
	createdAt := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	return &models.Suggestion{
		ID:               7,
		Name:             "Intro to Rust",
		Description:      "Ownership and borrowing",
		ProposerUsername: "alice",
		Status:           models.SuggestionStatusPending,
		Votes:            3,
		CreatedAt:        createdAt,
		UpdatedAt:        createdAt.Add(48 * time.Hour),
	}
}

func TestProposedText(t *testing.T) {
	text := proposedText(testSuggestion())

	assert.Contains(t, text, "#7 Intro to Rust")
	assert.Contains(t, text, "Ownership and borrowing")
	assert.Contains(t, text, "Proposed by: alice")
	assert.Contains(t, text, "Date: 05.03.2024")
	assert.Contains(t, text, "/approve 7 or /reject 7")
}

func TestModeratedText(t *testing.T) {
	suggestion := testSuggestion()
	suggestion.Status = models.SuggestionStatusApproved

	assert.Equal(t, "Approved: #7 Intro to Rust (3 votes, 07.03.2024)", moderatedText(suggestion))
}

func TestTelegramNotifier_SendsToModeratorChat(t *testing.T) {
	sender := &fakeTelegramSender{}
	notifier := &telegramNotifier{bot: sender, chatID: -100}

	require.NoError(t, notifier.SuggestionProposed(context.Background(), testSuggestion()))
	require.Len(t, sender.sent, 1)

	message, ok := sender.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(-100), message.ChatID)
	assert.Contains(t, message.Text, "Intro to Rust")
}

func TestTelegramNotifier_SendFailure(t *testing.T) {
	sender := &fakeTelegramSender{err: errors.New("network error")}
	notifier := &telegramNotifier{bot: sender, chatID: 1}

	err := notifier.SuggestionModerated(context.Background(), testSuggestion())
	assert.ErrorContains(t, err, "failed to send telegram message")
}

func TestTelegramNotifier_CanceledContext(t *testing.T) {
	sender := &fakeTelegramSender{}
	notifier := &telegramNotifier{bot: sender, chatID: 1}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, notifier.SuggestionProposed(ctx, testSuggestion()), context.Canceled)
	assert.Empty(t, sender.sent)
}

func TestDiscordNotifier_PostsToChannel(t *testing.T) {
	var channels, contents []string
	notifier := &discordNotifier{
		send: func(channelID, content string) error {
			channels = append(channels, channelID)
			contents = append(contents, content)
			return nil
		},
		channelID: "moderators",
	}

	suggestion := testSuggestion()
	suggestion.Status = models.SuggestionStatusRejected

	require.NoError(t, notifier.SuggestionModerated(context.Background(), suggestion))
	assert.Equal(t, []string{"moderators"}, channels)
	assert.Equal(t, []string{moderatedText(suggestion)}, contents)
}

func TestMultiNotifier_DeliversToAllAndJoinsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := mock_notifications.NewMockNotifier(ctrl)
	second := mock_notifications.NewMockNotifier(ctrl)
	suggestion := testSuggestion()

	failure := errors.New("first failed")
	first.EXPECT().SuggestionProposed(gomock.Any(), suggestion).Return(failure)
	second.EXPECT().SuggestionProposed(gomock.Any(), suggestion).Return(nil)

	err := NewMultiNotifier(first, second).SuggestionProposed(context.Background(), suggestion)
	assert.ErrorIs(t, err, failure)
}

func TestNewFromConfig_NothingConfigured(t *testing.T) {
	notifier, err := NewFromConfig(configs.Notifications{}, zap.NewNop().Sugar())
	require.NoError(t, err)

	assert.NoError(t, notifier.SuggestionProposed(context.Background(), testSuggestion()))
	assert.NoError(t, notifier.SuggestionModerated(context.Background(), testSuggestion()))
}
