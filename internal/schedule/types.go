package schedule

import (
	"time"

	"github.com/google/uuid"
)

// TaskSchedule is the computed calendar window for one task.
type TaskSchedule struct {
	Start time.Time
	End   time.Time
}

// --- UseCase Inputs ---

// AnalyzeInput is one transcript analysis request.
type AnalyzeInput struct {
	Transcript string
	LocationID uuid.UUID
	StartDate  time.Time

	// ExportCalendar pushes the computed task windows as calendar events
	// when a calendar client is configured. Export failure never fails the
	// analysis.
	ExportCalendar bool
}

// --- UseCase Outputs ---

// AnalyzeOutput is the finalized schedule for one transcript.
type AnalyzeOutput struct {
	Graph *ScheduleGraph
	Dates map[uuid.UUID]TaskSchedule

	// Gantt is the mermaid gantt rendering of the computed chronogram.
	Gantt string

	// CalendarLinks holds event links when calendar export ran.
	CalendarLinks []string
}
