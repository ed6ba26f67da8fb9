package history

import (
	"context"

	"github.com/google/uuid"

	"construction-visit-analysis/internal/model"
)

// UseCase manages visit history and reduces it into per-task-name statistics.
type UseCase interface {
	// Gather reduces all past visits for a location into a HistoricalContext.
	// Repository failures degrade to an empty context with a warning; Gather
	// is never the reason an analysis aborts.
	Gather(ctx context.Context, locationID uuid.UUID) HistoricalContext

	// CreateVisit records a new site visit.
	CreateVisit(ctx context.Context, input CreateVisitInput) (model.Visit, error)

	// ListVisits returns all visits for a location, oldest first.
	ListVisits(ctx context.Context, locationID uuid.UUID) ([]model.Visit, error)

	// AddEntry records a planned chronogram entry for a visit.
	AddEntry(ctx context.Context, input AddEntryInput) (model.ChronogramEntry, error)

	// UpdateProgress records actual execution data for an entry.
	UpdateProgress(ctx context.Context, input UpdateProgressInput) (model.ChronogramEntry, error)
}
