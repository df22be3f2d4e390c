package api

import (
	"course_suggestions_system/internal/domainerrors"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainerrors.ErrValidation),
		errors.Is(err, domainerrors.ErrDuplicatePending),
		errors.Is(err, domainerrors.ErrDuplicateVote),
		errors.Is(err, domainerrors.ErrAlreadyProcessed):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err for the client. Unexpected failures are logged and
// replaced with a generic message.
func writeError(c *gin.Context, err error, logger *zap.SugaredLogger) {
	status := statusCode(err)
	response := errorResponse{
		Code:  domainerrors.Code(err),
		Error: err.Error(),
	}

	if status == http.StatusInternalServerError {
		logger.Errorw("request failed", "request_id", c.GetString(requestIDKey), "error", err)
		response.Code = domainerrors.Code(domainerrors.ErrStoreUnavailable)
		response.Error = "internal error"
	}

	c.AbortWithStatusJSON(status, response)
}
