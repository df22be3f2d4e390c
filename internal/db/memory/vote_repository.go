package memory

import (
	"context"
	"course_suggestions_system/internal/db/models"
	"course_suggestions_system/internal/db/repositories"
	"course_suggestions_system/internal/domainerrors"
)

type voteRepository struct {
	store *Store
	inTx  bool
}

func (r *voteRepository) WithTx(repositories.Tx) repositories.VoteRepository {
	return &voteRepository{store: r.store, inTx: true}
}

func (r *voteRepository) Create(ctx context.Context, request *models.Vote) (*models.Vote, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeError(err)
	}

	defer r.store.writer(r.inTx)()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.state.suggestions[request.SuggestionID]; !ok {
		return nil, domainerrors.ErrNotFound
	}

	key := voteKey{suggestionID: request.SuggestionID, voterUsername: request.VoterUsername}
	if _, ok := r.store.state.votes[key]; ok {
		return nil, domainerrors.ErrDuplicateVote
	}

	r.store.state.lastVoteID++
	request.ID = r.store.state.lastVoteID
	r.store.state.votes[key] = *request

	return request, nil
}

func (r *voteRepository) HasVoted(ctx context.Context, suggestionID int64, voterUsername string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, storeError(err)
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	_, ok := r.store.state.votes[voteKey{suggestionID: suggestionID, voterUsername: voterUsername}]
	return ok, nil
}
