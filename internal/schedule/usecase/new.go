package usecase

import (
	"construction-visit-analysis/internal/extraction"
	"construction-visit-analysis/internal/history"
	"construction-visit-analysis/internal/schedule"
	"construction-visit-analysis/pkg/gcalendar"
	pkgLog "construction-visit-analysis/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	extractor extraction.Extractor
	historyUC history.UseCase
	calendar  gcalendar.ICalendar // nil disables calendar export
	timezone  string
	th        schedule.Thresholds
}

var _ schedule.UseCase = &implUseCase{}

// New creates a new schedule UseCase instance.
func New(
	l pkgLog.Logger,
	extractor extraction.Extractor,
	historyUC history.UseCase,
	calendar gcalendar.ICalendar,
	timezone string,
	th schedule.Thresholds,
) *implUseCase {
	return &implUseCase{
		l:         l,
		extractor: extractor,
		historyUC: historyUC,
		calendar:  calendar,
		timezone:  timezone,
		th:        th,
	}
}
