package schedule

import (
	"sort"

	"github.com/google/uuid"
)

// ScheduleGraph is the aggregate of tasks, relationships and parallel groups
// produced for one transcript analysis. It is built once per analysis and is
// not safe for concurrent mutation; callers serialize access per graph.
//
// Parallel groups are stored as ordered slices: insertion order is the
// deterministic order used when a group is downgraded to a sequential chain.
type ScheduleGraph struct {
	Tasks          map[uuid.UUID]*Task
	Relationships  []*TaskRelationship
	ParallelGroups [][]uuid.UUID
	Warnings       []string
}

// NewScheduleGraph returns an empty graph.
func NewScheduleGraph() *ScheduleGraph {
	return &ScheduleGraph{
		Tasks: make(map[uuid.UUID]*Task),
	}
}

// AddTask registers a task under its ID.
func (g *ScheduleGraph) AddTask(t *Task) {
	g.Tasks[t.ID] = t
}

// AddRelationship appends a relationship. Endpoints are expected to resolve
// against Tasks; the builder only appends resolved edges.
func (g *ScheduleGraph) AddRelationship(r *TaskRelationship) {
	g.Relationships = append(g.Relationships, r)
}

// AddParallelGroup appends a group of task IDs declared parallelizable.
func (g *ScheduleGraph) AddParallelGroup(group []uuid.UUID) {
	g.ParallelGroups = append(g.ParallelGroups, group)
}

// Warn records a graph-level warning (dropped edges, downgraded groups).
func (g *ScheduleGraph) Warn(msg string) {
	g.Warnings = append(g.Warnings, msg)
}

// Task returns the task for id.
func (g *ScheduleGraph) Task(id uuid.UUID) (*Task, bool) {
	t, ok := g.Tasks[id]
	return t, ok
}

// SortedTaskIDs returns all task IDs in lexicographic order. Iteration over
// the Tasks map is randomized; every pass that must be reproducible starts
// from this order.
func (g *ScheduleGraph) SortedTaskIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(g.Tasks))
	for id := range g.Tasks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}

// IncomingPrecedence returns the SEQUENTIAL and DELAY edges pointing at id,
// in insertion order.
func (g *ScheduleGraph) IncomingPrecedence(id uuid.UUID) []*TaskRelationship {
	var in []*TaskRelationship
	for _, rel := range g.Relationships {
		if rel.ToTaskID == id && rel.IsPrecedence() {
			in = append(in, rel)
		}
	}
	return in
}
