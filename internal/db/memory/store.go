// Package memory is a process-local store backend. It enforces the same
// constraints as the Postgres schema and is used by tests and by local runs
// started with STORE_URL=memory://.
package memory

import (
	"context"
	"course_suggestions_system/internal/db/models"
	"course_suggestions_system/internal/db/repositories"
	"course_suggestions_system/internal/domainerrors"
	"fmt"
	"sync"
)

type voteKey struct {
	suggestionID  int64
	voterUsername string
}

type state struct {
	suggestions      map[int64]models.Suggestion
	votes            map[voteKey]models.Vote
	lastSuggestionID int64
	lastVoteID       int64
}

type Store struct {
	mu sync.RWMutex
	// txMu serializes writers. A transaction holds it for its whole body.
	txMu sync.Mutex

	state state
}

func NewStore() *Store {
	return &Store{
		state: state{
			suggestions: make(map[int64]models.Suggestion),
			votes:       make(map[voteKey]models.Vote),
		},
	}
}

func (s *Store) Suggestions() repositories.SuggestionRepository {
	return &suggestionRepository{store: s}
}

func (s *Store) Votes() repositories.VoteRepository {
	return &voteRepository{store: s}
}

// RunInTransaction runs fn with exclusive write access and rolls every change
// back when fn fails. Repositories obtained through WithTx inside fn must be
// used for writes; the plain ones would wait for the transaction to finish.
func (s *Store) RunInTransaction(ctx context.Context, fn func(tx repositories.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return storeError(err)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	snapshot := s.snapshot()

	if err := fn(nil); err != nil {
		s.mu.Lock()
		s.state = snapshot
		s.mu.Unlock()
		return err
	}

	return nil
}

func (s *Store) snapshot() state {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := state{
		suggestions:      make(map[int64]models.Suggestion, len(s.state.suggestions)),
		votes:            make(map[voteKey]models.Vote, len(s.state.votes)),
		lastSuggestionID: s.state.lastSuggestionID,
		lastVoteID:       s.state.lastVoteID,
	}
	for id, suggestion := range s.state.suggestions {
		snapshot.suggestions[id] = suggestion
	}
	for key, vote := range s.state.votes {
		snapshot.votes[key] = vote
	}

	return snapshot
}

// writer takes the writer lock unless the caller already runs inside a
// transaction.
func (s *Store) writer(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.txMu.Lock()
	return s.txMu.Unlock
}

func storeError(err error) error {
	return fmt.Errorf("%w: %w", domainerrors.ErrStoreUnavailable, err)
}
