package history

import (
	"time"

	"github.com/google/uuid"

	"construction-visit-analysis/internal/model"
)

// DependencyRecord is one observed predecessor of a historical task record.
type DependencyRecord struct {
	TaskName  string
	ActualEnd *time.Time
}

// TaskRecord is one historical execution of a task name at a location.
type TaskRecord struct {
	TaskName     string
	PlannedDays  float64
	ActualDays   *float64 // nil unless both actual timestamps were recorded
	Status       model.ChronogramStatus
	ActualStart  *time.Time
	ActualEnd    *time.Time
	Success      bool // completed with both actual timestamps
	Dependencies []DependencyRecord
}

// HistoricalContext is the reduction of a location's past visits used to
// ground a new schedule analysis.
type HistoricalContext struct {
	Tasks        map[string][]TaskRecord
	Patterns     []string
	SuccessRates map[string]float64
	Deviations   map[string]float64 // signed days, actual minus planned
}

// EmptyContext returns a usable zero context. Gather degrades to this when
// the repository is unreachable.
func EmptyContext() HistoricalContext {
	return HistoricalContext{
		Tasks:        make(map[string][]TaskRecord),
		SuccessRates: make(map[string]float64),
		Deviations:   make(map[string]float64),
	}
}

// IsEmpty reports whether the context carries no task history.
func (c HistoricalContext) IsEmpty() bool {
	return len(c.Tasks) == 0
}

// --- UseCase Inputs ---

type CreateVisitInput struct {
	LocationID uuid.UUID
	Date       time.Time
	Notes      string
}

type AddEntryInput struct {
	VisitID      uuid.UUID
	TaskName     string
	PlannedStart time.Time
	PlannedEnd   time.Time
	Dependencies []uuid.UUID
}

type UpdateProgressInput struct {
	EntryID     uuid.UUID
	ActualStart *time.Time
	ActualEnd   *time.Time
	Status      model.ChronogramStatus
}
