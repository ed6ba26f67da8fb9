package schedule

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyTranscript = errors.New("transcript text is empty")
	ErrNoTasks         = errors.New("extraction produced no tasks")
	ErrTaskNotFound    = errors.New("task not found in schedule graph")
)

// UnsupportedUnitError reports a duration unit outside the accepted set.
// Fatal once the duration is needed for scheduling.
type UnsupportedUnitError struct {
	Unit string
}

func (e *UnsupportedUnitError) Error() string {
	return fmt.Sprintf("unsupported duration unit %q", e.Unit)
}

// CircularDependencyError reports a cycle among SEQUENTIAL/DELAY edges.
// Remaining lists the tasks that could not be topologically ordered, i.e.
// every task on or downstream of the cycle.
type CircularDependencyError struct {
	Remaining []uuid.UUID
}

func (e *CircularDependencyError) Error() string {
	ids := make([]string, len(e.Remaining))
	for i, id := range e.Remaining {
		ids[i] = id.String()
	}
	return fmt.Sprintf("circular dependency detected among tasks [%s]", strings.Join(ids, ", "))
}
