package main

import (
	"context"
	"course_suggestions_system/internal/db/memory"
	"course_suggestions_system/internal/db/models"
	mock_repositories "course_suggestions_system/internal/db/repositories/mocks"
	"course_suggestions_system/internal/domainerrors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestReconcileVotes_FixesCounters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	suggestionRepo := mock_repositories.NewMockSuggestionRepository(ctrl)
	logger := zap.NewNop().Sugar()
	now := time.Now().UTC()

	suggestionRepo.EXPECT().ReconcileVotes(gomock.Any(), now).Return([]int64{1, 4}, nil)

	assert.Equal(t, 2, reconcileVotes(context.Background(), suggestionRepo, now, logger))
}

func TestReconcileVotes_NothingToFix(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	suggestionRepo := mock_repositories.NewMockSuggestionRepository(ctrl)
	logger := zap.NewNop().Sugar()
	now := time.Now().UTC()

	suggestionRepo.EXPECT().ReconcileVotes(gomock.Any(), now).Return([]int64{}, nil)

	assert.Equal(t, 0, reconcileVotes(context.Background(), suggestionRepo, now, logger))
}

func TestReconcileVotes_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	suggestionRepo := mock_repositories.NewMockSuggestionRepository(ctrl)
	logger := zap.NewNop().Sugar()
	now := time.Now().UTC()

	suggestionRepo.EXPECT().ReconcileVotes(gomock.Any(), now).Return(nil, domainerrors.ErrStoreUnavailable)

	assert.Equal(t, 0, reconcileVotes(context.Background(), suggestionRepo, now, logger))
}

func TestReconcileVotes_MemoryStore(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	now := time.Now().UTC()

	suggestion, err := store.Suggestions().Create(ctx, &models.Suggestion{
		Name:      "Go",
		Status:    models.SuggestionStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)

	// a vote recorded without its counter bump
	_, err = store.Votes().Create(ctx, &models.Vote{SuggestionID: suggestion.ID, VoterUsername: "alice", CreatedAt: now})
	require.NoError(t, err)

	assert.Equal(t, 1, reconcileVotes(ctx, store.Suggestions(), now, zap.NewNop().Sugar()))

	found, err := store.Suggestions().GetOne(ctx, suggestion.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, found.Votes)

	assert.Equal(t, 0, reconcileVotes(ctx, store.Suggestions(), now, zap.NewNop().Sugar()))
}
