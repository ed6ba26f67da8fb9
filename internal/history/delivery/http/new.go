package http

import (
	"construction-visit-analysis/internal/history"
	"construction-visit-analysis/pkg/log"
)

type handler struct {
	l  log.Logger
	uc history.UseCase
}

// New creates a new HTTP handler for the visit-history domain.
func New(l log.Logger, uc history.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
