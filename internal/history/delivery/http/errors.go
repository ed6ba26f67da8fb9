package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"construction-visit-analysis/internal/history"
	"construction-visit-analysis/pkg/response"
)

// mapError translates use-case errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, history.ErrVisitNotFound), errors.Is(err, history.ErrEntryNotFound):
		response.NotFound(c, err)
	case errors.Is(err, history.ErrInvalidPlanning):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
