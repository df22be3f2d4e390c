package api

import (
	"context"
	"course_suggestions_system/internal/db/models"
	"course_suggestions_system/internal/domainerrors"
	"course_suggestions_system/internal/services"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type proposeRequest struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	ProposerUsername string `json:"proposer_username"`
}

type voteRequest struct {
	VoterUsername string `json:"voter_username"`
}

type statusResponse struct {
	ID     int64                   `json:"id"`
	Status models.SuggestionStatus `json:"status"`
}

type voteResponse struct {
	ID    int64 `json:"id"`
	Votes int   `json:"votes"`
}

type suggestionHandler struct {
	service services.SuggestionService
	logger  *zap.SugaredLogger
}

func newSuggestionHandler(service services.SuggestionService, logger *zap.SugaredLogger) *suggestionHandler {
	return &suggestionHandler{service: service, logger: logger}
}

func (h *suggestionHandler) List(c *gin.Context) {
	status := models.SuggestionStatus(c.Query("status"))

	suggestions, err := h.service.List(c.Request.Context(), status)
	if err != nil {
		writeError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, suggestions)
}

func (h *suggestionHandler) Propose(c *gin.Context) {
	var req proposeRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		writeError(c, err, h.logger)
		return
	}

	suggestion, err := h.service.Propose(c.Request.Context(), services.ProposeInput{
		Name:             req.Name,
		Description:      req.Description,
		ProposerUsername: req.ProposerUsername,
	})
	if err != nil {
		writeError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, suggestion)
}

func (h *suggestionHandler) Approve(c *gin.Context) {
	h.moderate(c, h.service.Approve)
}

func (h *suggestionHandler) Reject(c *gin.Context) {
	h.moderate(c, h.service.Reject)
}

func (h *suggestionHandler) moderate(c *gin.Context, action func(ctx context.Context, suggestionID int64) (*models.Suggestion, error)) {
	id, err := suggestionID(c)
	if err != nil {
		writeError(c, err, h.logger)
		return
	}

	suggestion, err := action(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, statusResponse{ID: suggestion.ID, Status: suggestion.Status})
}

func (h *suggestionHandler) Vote(c *gin.Context) {
	id, err := suggestionID(c)
	if err != nil {
		writeError(c, err, h.logger)
		return
	}

	var req voteRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		writeError(c, err, h.logger)
		return
	}

	votes, err := h.service.CastVote(c.Request.Context(), id, req.VoterUsername)
	if err != nil {
		writeError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, voteResponse{ID: id, Votes: votes})
}

// suggestionID reads the path id. Anything that is not a positive integer
// cannot name a suggestion, so it is reported as not found.
func suggestionID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrNotFound
	}
	return id, nil
}

// bindOptionalJSON decodes the body into req. An empty body leaves req zeroed.
func bindOptionalJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: malformed request body", domainerrors.ErrValidation)
	}
	return nil
}
