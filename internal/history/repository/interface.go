package repository

import (
	"context"

	"github.com/google/uuid"

	"construction-visit-analysis/internal/model"
)

// Repository is the composed interface for the history data store.
type Repository interface {
	VisitRepository
	ChronogramRepository
}

// VisitRepository defines data access for visits.
type VisitRepository interface {
	CreateVisit(ctx context.Context, opt CreateVisitOptions) (model.Visit, error)
	ListVisitsByLocation(ctx context.Context, locationID uuid.UUID) ([]model.Visit, error)
}

// ChronogramRepository defines data access for chronogram entries.
type ChronogramRepository interface {
	CreateEntry(ctx context.Context, opt CreateEntryOptions) (model.ChronogramEntry, error)
	ListEntriesByVisit(ctx context.Context, visitID uuid.UUID) ([]model.ChronogramEntry, error)
	// GetEntry returns a zero-value entry (ID == uuid.Nil) when not found.
	GetEntry(ctx context.Context, id uuid.UUID) (model.ChronogramEntry, error)
	UpdateEntryProgress(ctx context.Context, opt UpdateEntryProgressOptions) (model.ChronogramEntry, error)
}
