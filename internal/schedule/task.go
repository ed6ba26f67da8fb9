package schedule

import "github.com/google/uuid"

// TaskStatus is the lifecycle status of a schedule task.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
	StatusDelayed    TaskStatus = "delayed"
	StatusBlocked    TaskStatus = "blocked"
)

// HistoricalStats summarizes past executions of a task name at a location.
// Durations are calendar days. Populated by the historical enhancer from
// completed records only.
type HistoricalStats struct {
	Count            int
	AvgDuration      float64
	RecentAvg        float64 // mean of the most recent completions
	MinDuration      float64
	MaxDuration      float64
	TypicalDeviation float64 // avg actual minus avg planned
	RecentDeviation  float64 // recent avg minus avg planned
	SuccessRate      float64 // fraction completed within planned * on-time factor
}

// TaskMetadata carries the extraction annotations and historical enrichment
// for a task. Explicit fields for everything the pipeline understands; Extra
// is the escape hatch for annotations the pipeline does not interpret.
type TaskMetadata struct {
	Confidence          *float64
	HistoricalDeviation *float64
	Risks               []string
	Historical          *HistoricalStats
	Warnings            []string
	Extra               map[string]any
}

// Task is one scheduling unit extracted from a visit transcript.
// The ID is assigned at creation and never reused; the duration is the
// declared estimate and is never rewritten by historical data.
type Task struct {
	ID            uuid.UUID
	Name          string
	Description   string
	Duration      Duration
	CanBeParallel bool
	Responsible   string
	Location      string
	Status        TaskStatus
	Metadata      TaskMetadata
}

// NewTask creates a pending task with a fresh identity.
func NewTask(name string, duration Duration) *Task {
	return &Task{
		ID:       uuid.New(),
		Name:     name,
		Duration: duration,
		Status:   StatusPending,
	}
}

// AddWarning appends a warning string to the task metadata.
func (t *Task) AddWarning(w string) {
	t.Metadata.Warnings = append(t.Metadata.Warnings, w)
}
