package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"construction-visit-analysis/internal/extraction"
	"construction-visit-analysis/internal/schedule"
	"construction-visit-analysis/pkg/response"
)

// mapError translates use-case errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	var cycleErr *schedule.CircularDependencyError
	var unitErr *schedule.UnsupportedUnitError

	switch {
	case errors.Is(err, schedule.ErrEmptyTranscript):
		response.Error(c, err, nil)
	case errors.As(err, &unitErr):
		response.Error(c, err, nil)
	case errors.Is(err, schedule.ErrNoTasks), errors.As(err, &cycleErr):
		c.JSON(http.StatusUnprocessableEntity, response.Resp{
			ErrorCode: http.StatusUnprocessableEntity,
			Message:   err.Error(),
		})
	case errors.Is(err, extraction.ErrEmptyResponse), errors.Is(err, extraction.ErrInvalidResponse):
		response.BadGateway(c, err)
	default:
		response.InternalError(c, err)
	}
}
