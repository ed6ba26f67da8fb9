package usecase

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"construction-visit-analysis/internal/schedule"
)

// computeDates assigns a calendar window to every task. Only SEQUENTIAL and
// DELAY edges impose ordering; PARALLEL edges are annotations. The pass is a
// pure function of the graph and start date, so repeated runs over the same
// inputs reproduce identical windows.
func (uc *implUseCase) computeDates(g *schedule.ScheduleGraph, startDate time.Time) (map[uuid.UUID]schedule.TaskSchedule, error) {
	order, err := topologicalOrder(g)
	if err != nil {
		return nil, err
	}

	dates := make(map[uuid.UUID]schedule.TaskSchedule, len(order))
	for _, id := range order {
		t, _ := g.Task(id)

		start := startDate
		for _, rel := range g.IncomingPrecedence(id) {
			pred, ok := dates[rel.FromTaskID]
			if !ok {
				// Unreachable once the topological pass succeeded.
				return nil, schedule.ErrTaskNotFound
			}

			candidate := pred.End.Add(daysToDuration(uc.edgeGapDays(rel)))
			if candidate.After(start) {
				start = candidate
			}
		}

		dates[id] = schedule.TaskSchedule{
			Start: start,
			End:   start.Add(daysToDuration(t.Duration.Days())),
		}
	}
	return dates, nil
}

// edgeGapDays returns the gap a precedence edge imposes between the
// predecessor's end and the successor's start. A DELAY edge that never got a
// delay assigned falls back to the sequential buffer.
func (uc *implUseCase) edgeGapDays(rel *schedule.TaskRelationship) float64 {
	if rel.Type == schedule.RelationDelay && rel.Delay != nil {
		return rel.Delay.Days()
	}
	return uc.th.SequentialBufferDays
}

// topologicalOrder runs an iterative Kahn sort over the precedence edges.
// Ties break on task-ID order so the result is deterministic. A cycle yields
// a CircularDependencyError listing every task left unordered.
func topologicalOrder(g *schedule.ScheduleGraph) ([]uuid.UUID, error) {
	inDegree := make(map[uuid.UUID]int, len(g.Tasks))
	successors := make(map[uuid.UUID][]uuid.UUID)
	for id := range g.Tasks {
		inDegree[id] = 0
	}
	for _, rel := range g.Relationships {
		if !rel.IsPrecedence() {
			continue
		}
		if _, ok := g.Tasks[rel.FromTaskID]; !ok {
			continue
		}
		if _, ok := g.Tasks[rel.ToTaskID]; !ok {
			continue
		}
		inDegree[rel.ToTaskID]++
		successors[rel.FromTaskID] = append(successors[rel.FromTaskID], rel.ToTaskID)
	}

	var ready []uuid.UUID
	for _, id := range g.SortedTaskIDs() {
		if inDegree[id] == 0 {
			ready = append(ready, id)
		}
	}

	order := make([]uuid.UUID, 0, len(g.Tasks))
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		order = append(order, id)

		var unlocked []uuid.UUID
		for _, succ := range successors[id] {
			inDegree[succ]--
			if inDegree[succ] == 0 {
				unlocked = append(unlocked, succ)
			}
		}
		sort.Slice(unlocked, func(i, j int) bool { return unlocked[i].String() < unlocked[j].String() })
		ready = append(ready, unlocked...)
	}

	if len(order) != len(g.Tasks) {
		var remaining []uuid.UUID
		for _, id := range g.SortedTaskIDs() {
			if inDegree[id] > 0 {
				remaining = append(remaining, id)
			}
		}
		return nil, &schedule.CircularDependencyError{Remaining: remaining}
	}
	return order, nil
}

// daysToDuration converts fractional calendar days to a time.Duration.
func daysToDuration(days float64) time.Duration {
	return time.Duration(days * 24 * float64(time.Hour))
}
