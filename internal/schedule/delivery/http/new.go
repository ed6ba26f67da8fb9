package http

import (
	"construction-visit-analysis/internal/schedule"
	"construction-visit-analysis/pkg/log"
)

type handler struct {
	l  log.Logger
	uc schedule.UseCase
}

// New creates a new HTTP handler for the schedule analysis domain.
func New(l log.Logger, uc schedule.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
