package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"construction-visit-analysis/internal/extraction"
	"construction-visit-analysis/internal/history"
	"construction-visit-analysis/internal/middleware"
	"construction-visit-analysis/internal/schedule"
	scheduleHTTP "construction-visit-analysis/internal/schedule/delivery/http"
	scheduleUC "construction-visit-analysis/internal/schedule/usecase"
	"construction-visit-analysis/pkg/gcalendar"
)

// setupScheduleDomain wires the transcript-analysis domain and registers its
// routes.
func (srv HTTPServer) setupScheduleDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, historyUseCase history.UseCase) {
	extractor := extraction.New(srv.l, srv.llm)

	// A typed nil pointer must not become a non-nil interface downstream.
	var calendar gcalendar.ICalendar
	if srv.calendar != nil {
		calendar = srv.calendar
	}

	uc := scheduleUC.New(srv.l, extractor, historyUseCase, calendar, srv.timezone, srv.thresholds())
	h := scheduleHTTP.New(srv.l, uc)

	scheduleHTTP.RegisterRoutes(api.Group("/analyses"), h, mw)

	srv.l.Infof(ctx, "Schedule domain registered")
}

// thresholds maps the config block onto the engine thresholds.
func (srv HTTPServer) thresholds() schedule.Thresholds {
	return schedule.Thresholds{
		BuildParallelCeilingDays:    srv.scheduleCfg.BuildParallelCeilingDays,
		ValidateParallelCeilingDays: srv.scheduleCfg.ValidateParallelCeilingDays,
		MinParallelConfidence:       srv.scheduleCfg.MinParallelConfidence,
		MinHistoricalSuccessRate:    srv.scheduleCfg.MinHistoricalSuccessRate,
		OnTimeFactor:                srv.scheduleCfg.OnTimeFactor,
		RecentWindow:                srv.scheduleCfg.RecentWindow,
		GapRecentWindow:             srv.scheduleCfg.GapRecentWindow,
		GapSafetyFactor:             srv.scheduleCfg.GapSafetyFactor,
		GapDelayThresholdDays:       srv.scheduleCfg.GapDelayThresholdDays,
		SequentialBufferDays:        srv.scheduleCfg.SequentialBufferDays,
		DeviationWarningDays:        srv.scheduleCfg.DeviationWarningDays,
		RecentSlowdownFactor:        srv.scheduleCfg.RecentSlowdownFactor,
	}
}
