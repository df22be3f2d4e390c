package memory

import (
	"context"
	"course_suggestions_system/internal/db/models"
	"course_suggestions_system/internal/db/repositories"
	"course_suggestions_system/internal/domainerrors"
	"sort"
	"time"
)

type suggestionRepository struct {
	store *Store
	inTx  bool
}

func (r *suggestionRepository) WithTx(repositories.Tx) repositories.SuggestionRepository {
	return &suggestionRepository{store: r.store, inTx: true}
}

func (r *suggestionRepository) Create(ctx context.Context, request *models.Suggestion) (*models.Suggestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeError(err)
	}

	defer r.store.writer(r.inTx)()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if request.Status == models.SuggestionStatusPending {
		for _, suggestion := range r.store.state.suggestions {
			if suggestion.Status == models.SuggestionStatusPending && suggestion.Name == request.Name {
				return nil, domainerrors.ErrDuplicatePending
			}
		}
	}

	r.store.state.lastSuggestionID++
	request.ID = r.store.state.lastSuggestionID
	r.store.state.suggestions[request.ID] = *request

	return request, nil
}

func (r *suggestionRepository) GetOne(ctx context.Context, suggestionID int64) (*models.Suggestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeError(err)
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	suggestion, ok := r.store.state.suggestions[suggestionID]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}

	return &suggestion, nil
}

func (r *suggestionRepository) GetManyByNameAndStatus(ctx context.Context, name string, status models.SuggestionStatus) ([]*models.Suggestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeError(err)
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	suggestions := make([]*models.Suggestion, 0)
	for _, suggestion := range r.store.state.suggestions {
		if suggestion.Name == name && suggestion.Status == status {
			suggestion := suggestion
			suggestions = append(suggestions, &suggestion)
		}
	}

	return suggestions, nil
}

func (r *suggestionRepository) GetMany(ctx context.Context, status ...models.SuggestionStatus) ([]*models.Suggestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeError(err)
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	suggestions := make([]*models.Suggestion, 0, len(r.store.state.suggestions))
	for _, suggestion := range r.store.state.suggestions {
		if len(status) > 0 && !hasStatus(status, suggestion.Status) {
			continue
		}
		suggestion := suggestion
		suggestions = append(suggestions, &suggestion)
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if !suggestions[i].CreatedAt.Equal(suggestions[j].CreatedAt) {
			return suggestions[i].CreatedAt.After(suggestions[j].CreatedAt)
		}
		return suggestions[i].ID > suggestions[j].ID
	})

	return suggestions, nil
}

func (r *suggestionRepository) UpdateStatus(
	ctx context.Context,
	suggestionID int64,
	from, to models.SuggestionStatus,
	updatedAt time.Time,
) (*models.Suggestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeError(err)
	}

	defer r.store.writer(r.inTx)()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	suggestion, ok := r.store.state.suggestions[suggestionID]
	if !ok || suggestion.Status != from {
		return nil, domainerrors.ErrAlreadyProcessed
	}

	suggestion.Status = to
	suggestion.UpdatedAt = updatedAt
	r.store.state.suggestions[suggestionID] = suggestion

	return &suggestion, nil
}

func (r *suggestionRepository) IncrementVotes(ctx context.Context, suggestionID int64, updatedAt time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, storeError(err)
	}

	defer r.store.writer(r.inTx)()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	suggestion, ok := r.store.state.suggestions[suggestionID]
	if !ok {
		return 0, domainerrors.ErrNotFound
	}

	suggestion.Votes++
	suggestion.UpdatedAt = updatedAt
	r.store.state.suggestions[suggestionID] = suggestion

	return suggestion.Votes, nil
}

func (r *suggestionRepository) ReconcileVotes(ctx context.Context, updatedAt time.Time) ([]int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeError(err)
	}

	defer r.store.writer(r.inTx)()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	totals := make(map[int64]int, len(r.store.state.suggestions))
	for key := range r.store.state.votes {
		totals[key.suggestionID]++
	}

	ids := make([]int64, 0)
	for id, suggestion := range r.store.state.suggestions {
		if suggestion.Votes == totals[id] {
			continue
		}
		suggestion.Votes = totals[id]
		suggestion.UpdatedAt = updatedAt
		r.store.state.suggestions[id] = suggestion
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids, nil
}

func hasStatus(statuses []models.SuggestionStatus, status models.SuggestionStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}
