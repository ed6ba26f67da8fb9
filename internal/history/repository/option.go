package repository

import (
	"time"

	"github.com/google/uuid"

	"construction-visit-analysis/internal/model"
)

// CreateVisitOptions holds parameters for inserting a new visit.
type CreateVisitOptions struct {
	LocationID uuid.UUID
	Date       time.Time
	Notes      string
}

// CreateEntryOptions holds parameters for inserting a chronogram entry.
type CreateEntryOptions struct {
	VisitID      uuid.UUID
	TaskName     string
	PlannedStart time.Time
	PlannedEnd   time.Time
	Dependencies []uuid.UUID
}

// UpdateEntryProgressOptions holds actual execution data for an entry.
// Nil timestamp fields are left unchanged; an empty status is left unchanged.
type UpdateEntryProgressOptions struct {
	EntryID     uuid.UUID
	ActualStart *time.Time
	ActualEnd   *time.Time
	Status      model.ChronogramStatus
}
