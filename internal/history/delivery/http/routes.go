package http

import (
	"github.com/gin-gonic/gin"

	"construction-visit-analysis/internal/middleware"
)

// RegisterRoutes maps the visit-history endpoints onto the API group.
func RegisterRoutes(api *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	visits := api.Group("/visits")
	{
		visits.POST("", mw.RateLimit(), h.CreateVisit)
		visits.POST("/:visit_id/chronogram", mw.RateLimit(), h.AddEntry)
	}

	locations := api.Group("/locations")
	{
		locations.GET("/:location_id/visits", h.ListVisits)
		locations.GET("/:location_id/history", h.GetHistory)
	}

	api.PATCH("/chronogram/:entry_id/progress", mw.RateLimit(), h.UpdateProgress)
}
