package model

import (
	"time"

	"github.com/google/uuid"
)

// ChronogramStatus is the lifecycle status of a chronogram entry.
type ChronogramStatus string

const (
	ChronogramPlanned    ChronogramStatus = "planned"
	ChronogramInProgress ChronogramStatus = "in_progress"
	ChronogramCompleted  ChronogramStatus = "completed"
	ChronogramDelayed    ChronogramStatus = "delayed"
	ChronogramCancelled  ChronogramStatus = "cancelled"
)

// Visit is one site visit to a construction location.
type Visit struct {
	ID         uuid.UUID
	LocationID uuid.UUID
	Date       time.Time
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ChronogramEntry is one planned task inside a visit's chronogram, with its
// actual execution record once known.
type ChronogramEntry struct {
	ID           uuid.UUID
	VisitID      uuid.UUID
	TaskName     string
	PlannedStart time.Time
	PlannedEnd   time.Time
	ActualStart  *time.Time
	ActualEnd    *time.Time
	Status       ChronogramStatus
	Dependencies []uuid.UUID // entry IDs of tasks this one waited on
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PlannedDays returns the planned duration in calendar days.
func (e ChronogramEntry) PlannedDays() float64 {
	return e.PlannedEnd.Sub(e.PlannedStart).Hours() / 24
}

// ActualDays returns the actual duration in calendar days, or false when
// either actual timestamp is missing.
func (e ChronogramEntry) ActualDays() (float64, bool) {
	if e.ActualStart == nil || e.ActualEnd == nil {
		return 0, false
	}
	return e.ActualEnd.Sub(*e.ActualStart).Hours() / 24, true
}
