package services

//go:generate mockgen -destination=mocks/services.go -package=mock_services . SuggestionService

import (
	"context"
	"course_suggestions_system/configs"
	"course_suggestions_system/internal/db/models"
	"course_suggestions_system/internal/db/repositories"
	"course_suggestions_system/internal/domainerrors"
	"course_suggestions_system/internal/notifications"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

type ProposeInput struct {
	Name             string
	Description      string
	ProposerUsername string
}

type SuggestionService interface {
	Propose(ctx context.Context, input ProposeInput) (*models.Suggestion, error)
	Approve(ctx context.Context, suggestionID int64) (*models.Suggestion, error)
	Reject(ctx context.Context, suggestionID int64) (*models.Suggestion, error)
	CastVote(ctx context.Context, suggestionID int64, voterUsername string) (int, error)
	// List returns suggestions newest first. An empty status lists all of them.
	List(ctx context.Context, status models.SuggestionStatus) ([]*models.Suggestion, error)
}

type suggestionService struct {
	suggestionRepository repositories.SuggestionRepository
	voteRepository       repositories.VoteRepository
	transactor           repositories.Transactor
	notifier             notifications.Notifier
	config               configs.Suggestions
	logger               *zap.SugaredLogger

	validate *validator.Validate
	policy   *bluemonday.Policy
	now      func() time.Time
}

func NewSuggestionService(
	suggestionRepository repositories.SuggestionRepository,
	voteRepository repositories.VoteRepository,
	transactor repositories.Transactor,
	notifier notifications.Notifier,
	config configs.Suggestions,
	logger *zap.SugaredLogger,
) SuggestionService {
	return &suggestionService{
		suggestionRepository: suggestionRepository,
		voteRepository:       voteRepository,
		transactor:           transactor,
		notifier:             notifier,
		config:               config,
		logger:               logger,
		validate:             validator.New(),
		policy:               bluemonday.StrictPolicy(),
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func (s *suggestionService) Propose(ctx context.Context, input ProposeInput) (*models.Suggestion, error) {
	name := s.clean(input.Name)
	description := s.clean(input.Description)

	if err := s.validateProposal(name, description); err != nil {
		return nil, err
	}

	proposer, err := s.username(input.ProposerUsername)
	if err != nil {
		return nil, err
	}

	pending, err := s.suggestionRepository.GetManyByNameAndStatus(ctx, name, models.SuggestionStatusPending)
	if err != nil {
		return nil, err
	}
	if len(pending) > 0 {
		return nil, domainerrors.ErrDuplicatePending
	}

	now := s.now()
	suggestion, err := s.suggestionRepository.Create(ctx, &models.Suggestion{
		Name:             name,
		Description:      description,
		ProposerUsername: proposer,
		Status:           models.SuggestionStatusPending,
		Votes:            0,
		CreatedAt:        now,
		UpdatedAt:        now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("suggestion proposed", "id", suggestion.ID, "name", suggestion.Name)

	if err := s.notifier.SuggestionProposed(ctx, suggestion); err != nil {
		s.logger.Errorw("failed to notify about proposed suggestion", "id", suggestion.ID, "error", err)
	}

	return suggestion, nil
}

func (s *suggestionService) Approve(ctx context.Context, suggestionID int64) (*models.Suggestion, error) {
	return s.moderate(ctx, suggestionID, models.SuggestionStatusApproved)
}

func (s *suggestionService) Reject(ctx context.Context, suggestionID int64) (*models.Suggestion, error) {
	return s.moderate(ctx, suggestionID, models.SuggestionStatusRejected)
}

func (s *suggestionService) moderate(ctx context.Context, suggestionID int64, to models.SuggestionStatus) (*models.Suggestion, error) {
	suggestion, err := s.suggestionRepository.GetOne(ctx, suggestionID)
	if err != nil {
		return nil, err
	}

	if suggestion.Status != models.SuggestionStatusPending {
		return nil, domainerrors.ErrAlreadyProcessed
	}

	updated, err := s.suggestionRepository.UpdateStatus(ctx, suggestionID, models.SuggestionStatusPending, to, s.now())
	if err != nil {
		return nil, err
	}

	s.logger.Infow("suggestion moderated", "id", updated.ID, "status", updated.Status)

	if err := s.notifier.SuggestionModerated(ctx, updated); err != nil {
		s.logger.Errorw("failed to notify about moderated suggestion", "id", updated.ID, "error", err)
	}

	return updated, nil
}

// CastVote records the vote and bumps the counter in one transaction, so a
// vote is never counted twice and never lost.
func (s *suggestionService) CastVote(ctx context.Context, suggestionID int64, voterUsername string) (int, error) {
	voter, err := s.username(voterUsername)
	if err != nil {
		return 0, err
	}

	voted, err := s.voteRepository.HasVoted(ctx, suggestionID, voter)
	if err != nil {
		return 0, err
	}
	if voted {
		return 0, domainerrors.ErrDuplicateVote
	}

	if _, err = s.suggestionRepository.GetOne(ctx, suggestionID); err != nil {
		return 0, err
	}

	var votes int
	now := s.now()

	err = s.transactor.RunInTransaction(ctx, func(tx repositories.Tx) error {
		_, err := s.voteRepository.WithTx(tx).Create(ctx, &models.Vote{
			SuggestionID:  suggestionID,
			VoterUsername: voter,
			CreatedAt:     now,
		})
		if err != nil {
			return err
		}

		votes, err = s.suggestionRepository.WithTx(tx).IncrementVotes(ctx, suggestionID, now)
		return err
	})
	if err != nil {
		return 0, err
	}

	return votes, nil
}

func (s *suggestionService) List(ctx context.Context, status models.SuggestionStatus) ([]*models.Suggestion, error) {
	if status == "" {
		return s.suggestionRepository.GetMany(ctx)
	}

	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", domainerrors.ErrValidation, status)
	}

	return s.suggestionRepository.GetMany(ctx, status)
}

func (s *suggestionService) validateProposal(name, description string) error {
	if err := s.validate.Var(name, rules(true, s.config.MaxNameLength)); err != nil {
		return validationError("name", err)
	}

	if err := s.validate.Var(description, rules(s.config.RequireDescription, s.config.MaxDescriptionLength)); err != nil {
		return validationError("description", err)
	}

	return nil
}

// rules builds a validator tag. A non-positive length disables the limit.
func rules(required bool, maxLength int) string {
	var tags []string
	if required {
		tags = append(tags, "required")
	}
	if maxLength > 0 {
		tags = append(tags, fmt.Sprintf("max=%d", maxLength))
	}
	if len(tags) == 0 {
		return "omitempty"
	}
	return strings.Join(tags, ",")
}

func validationError(field string, err error) error {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		switch fieldErrors[0].Tag() {
		case "required":
			return fmt.Errorf("%w: %s is required", domainerrors.ErrValidation, field)
		case "max":
			return fmt.Errorf("%w: %s must be at most %s characters", domainerrors.ErrValidation, field, fieldErrors[0].Param())
		}
	}
	return fmt.Errorf("%w: invalid %s", domainerrors.ErrValidation, field)
}

// maxCleanPasses bounds how often clean re-sanitizes decoded entities.
const maxCleanPasses = 8

// clean turns user input into plain text: NFC form, no markup, no
// surrounding whitespace. Entities are decoded and the result sanitized again
// until it is stable, so encoded markup cannot survive.
func (s *suggestionService) clean(value string) string {
	value = norm.NFC.String(value)

	for i := 0; i < maxCleanPasses; i++ {
		next := html.UnescapeString(s.policy.Sanitize(value))
		if next == value {
			return strings.TrimSpace(value)
		}
		value = next
	}

	return strings.TrimSpace(s.policy.Sanitize(value))
}

func (s *suggestionService) username(value string) (string, error) {
	value = s.clean(value)
	if value == "" {
		return models.AnonymousUsername, nil
	}

	if err := s.validate.Var(value, rules(false, s.config.MaxUsernameLength)); err != nil {
		return "", validationError("username", err)
	}

	return value, nil
}
