package api

import (
	"bytes"
	"course_suggestions_system/configs"
	"course_suggestions_system/internal/db/memory"
	"course_suggestions_system/internal/db/models"
	"course_suggestions_system/internal/domainerrors"
	"course_suggestions_system/internal/notifications"
	"course_suggestions_system/internal/services"
	mock_services "course_suggestions_system/internal/services/mocks"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testHTTPConfig() configs.HTTP {
	return configs.HTTP{CORSAllowedOrigins: []string{"*"}}
}

func newMemoryRouter() *gin.Engine {
	store := memory.NewStore()
	service := services.NewSuggestionService(
		store.Suggestions(),
		store.Votes(),
		store,
		notifications.NewMultiNotifier(),
		configs.Suggestions{RequireDescription: true, MaxNameLength: 200, MaxDescriptionLength: 2000},
		zap.NewNop().Sugar(),
	)
	return NewRouter(service, testHTTPConfig(), zap.NewNop().Sugar())
}

func do(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestHealthcheck(t *testing.T) {
	w := do(t, newMemoryRouter(), http.MethodGet, "/healthcheck", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "I'm alive", w.Body.String())
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}

func TestRequestIDIsEchoed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	req.Header.Set(requestIDHeader, "abc-123")

	w := httptest.NewRecorder()
	newMemoryRouter().ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
}

func TestSuggestionScenario(t *testing.T) {
	router := newMemoryRouter()

	w := do(t, router, http.MethodPost, "/courses_suggestions", map[string]string{
		"name":              "Intro to Rust",
		"description":       "Ownership and borrowing",
		"proposer_username": "alice",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[models.Suggestion](t, w)
	assert.Equal(t, "Intro to Rust", created.Name)
	assert.Equal(t, models.SuggestionStatusPending, created.Status)
	assert.Equal(t, 0, created.Votes)

	votePath := fmt.Sprintf("/courses_suggestions/%d/vote", created.ID)

	w = do(t, router, http.MethodPost, votePath, map[string]string{"voter_username": "bob"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, voteResponse{ID: created.ID, Votes: 1}, decode[voteResponse](t, w))

	w = do(t, router, http.MethodPost, votePath, map[string]string{"voter_username": "bob"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "duplicate_vote", decode[errorResponse](t, w).Code)

	w = do(t, router, http.MethodPost, votePath, map[string]string{"voter_username": "carol"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, decode[voteResponse](t, w).Votes)

	approvePath := fmt.Sprintf("/courses_suggestions/%d/approve", created.ID)

	w = do(t, router, http.MethodPost, approvePath, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, statusResponse{ID: created.ID, Status: models.SuggestionStatusApproved}, decode[statusResponse](t, w))

	w = do(t, router, http.MethodPost, approvePath, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "already_processed", decode[errorResponse](t, w).Code)

	w = do(t, router, http.MethodGet, "/courses_suggestions?status=approved", nil)
	require.Equal(t, http.StatusOK, w.Code)
	listed := decode[[]models.Suggestion](t, w)
	require.Len(t, listed, 1)
	assert.Equal(t, 2, listed[0].Votes)

	w = do(t, router, http.MethodGet, "/courses_suggestions?status=pending", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]models.Suggestion](t, w))
}

func TestPropose_ValidationAndDuplicate(t *testing.T) {
	router := newMemoryRouter()

	w := do(t, router, http.MethodPost, "/courses_suggestions", map[string]string{"description": "no name"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation_error", decode[errorResponse](t, w).Code)

	w = do(t, router, http.MethodPost, "/courses_suggestions", map[string]string{"name": "Go"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation_error", decode[errorResponse](t, w).Code)

	w = do(t, router, http.MethodPost, "/courses_suggestions", map[string]string{"name": "Go", "description": "d"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, models.AnonymousUsername, decode[models.Suggestion](t, w).ProposerUsername)

	w = do(t, router, http.MethodPost, "/courses_suggestions", map[string]string{"name": "Go", "description": "d"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "duplicate_pending", decode[errorResponse](t, w).Code)
}

func TestPropose_MalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/courses_suggestions", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	newMemoryRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation_error", decode[errorResponse](t, w).Code)
}

func TestVote_EmptyBodyVotesAnonymously(t *testing.T) {
	router := newMemoryRouter()

	w := do(t, router, http.MethodPost, "/courses_suggestions", map[string]string{"name": "Go", "description": "d"})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[models.Suggestion](t, w)

	votePath := fmt.Sprintf("/courses_suggestions/%d/vote", created.ID)

	w = do(t, router, http.MethodPost, votePath, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[voteResponse](t, w).Votes)

	w = do(t, router, http.MethodPost, votePath, map[string]string{"voter_username": models.AnonymousUsername})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "duplicate_vote", decode[errorResponse](t, w).Code)
}

func TestNotFound(t *testing.T) {
	router := newMemoryRouter()

	for _, path := range []string{
		"/courses_suggestions/99/approve",
		"/courses_suggestions/99/reject",
		"/courses_suggestions/99/vote",
		"/courses_suggestions/abc/approve",
		"/courses_suggestions/-1/vote",
	} {
		w := do(t, router, http.MethodPost, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Equal(t, "not_found", decode[errorResponse](t, w).Code, path)
	}
}

func TestList_UnknownStatus(t *testing.T) {
	w := do(t, newMemoryRouter(), http.MethodGet, "/courses_suggestions?status=archived", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation_error", decode[errorResponse](t, w).Code)
}

func TestStoreUnavailableIsOpaque(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mock_services.NewMockSuggestionService(ctrl)
	router := NewRouter(service, testHTTPConfig(), zap.NewNop().Sugar())

	storeErr := fmt.Errorf("%w: %w", domainerrors.ErrStoreUnavailable, errors.New("dial tcp 10.0.0.1:5432: connection refused"))
	service.EXPECT().List(gomock.Any(), models.SuggestionStatus("")).Return(nil, storeErr)
	service.EXPECT().CastVote(gomock.Any(), int64(1), "bob").Return(0, storeErr)

	w := do(t, router, http.MethodGet, "/courses_suggestions", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	response := decode[errorResponse](t, w)
	assert.Equal(t, "store_unavailable", response.Code)
	assert.NotContains(t, response.Error, "10.0.0.1")

	w = do(t, router, http.MethodPost, "/courses_suggestions/1/vote", map[string]string{"voter_username": "bob"})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "store_unavailable", decode[errorResponse](t, w).Code)
}

func TestReject_UsesService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mock_services.NewMockSuggestionService(ctrl)
	router := NewRouter(service, testHTTPConfig(), zap.NewNop().Sugar())

	service.EXPECT().Reject(gomock.Any(), int64(3)).Return(&models.Suggestion{ID: 3, Status: models.SuggestionStatusRejected}, nil)

	w := do(t, router, http.MethodPost, "/courses_suggestions/3/reject", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, statusResponse{ID: 3, Status: models.SuggestionStatusRejected}, decode[statusResponse](t, w))
}

func TestCORSConfig(t *testing.T) {
	config := corsConfig([]string{"*"})
	assert.True(t, config.AllowAllOrigins)
	assert.Empty(t, config.AllowOrigins)

	config = corsConfig([]string{"https://courses.example.com"})
	assert.False(t, config.AllowAllOrigins)
	assert.Equal(t, []string{"https://courses.example.com"}, config.AllowOrigins)
}
