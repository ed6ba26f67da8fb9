package http

import (
	"github.com/gin-gonic/gin"

	"construction-visit-analysis/internal/middleware"
)

// RegisterRoutes maps the analysis endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("", mw.RateLimit(), h.Analyze)
}
