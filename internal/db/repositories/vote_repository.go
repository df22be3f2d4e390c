package repositories

import (
	"context"
	"course_suggestions_system/internal/db/models"
	"course_suggestions_system/internal/domainerrors"
)

type voteRepository struct {
	repository
}

type VoteRepository interface {
	WithTx(tx Tx) VoteRepository
	Create(ctx context.Context, request *models.Vote) (*models.Vote, error)
	HasVoted(ctx context.Context, suggestionID int64, voterUsername string) (bool, error)
}

func NewVoteRepository(db Tx) VoteRepository {
	return &voteRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *voteRepository) WithTx(tx Tx) VoteRepository {
	return NewVoteRepository(tx)
}

// Create records a vote. The (suggestion_id, voter_username) unique constraint
// is what actually prevents double voting; HasVoted is only a shortcut.
func (r *voteRepository) Create(ctx context.Context, request *models.Vote) (*models.Vote, error) {
	_, err := r.db.ModelContext(ctx, request).
		Returning("*").
		Insert()
	if err != nil {
		switch sqlState(err) {
		case uniqueViolation:
			return nil, domainerrors.ErrDuplicateVote
		case foreignKeyViolation:
			return nil, domainerrors.ErrNotFound
		}
		return nil, storeError(err)
	}

	return request, nil
}

func (r *voteRepository) HasVoted(ctx context.Context, suggestionID int64, voterUsername string) (bool, error) {
	exists, err := r.db.ModelContext(ctx, (*models.Vote)(nil)).
		Where("suggestion_id = ?", suggestionID).
		Where("voter_username = ?", voterUsername).
		Exists()
	if err != nil {
		return false, storeError(err)
	}

	return exists, nil
}
