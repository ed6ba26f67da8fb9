package schedule_test

import (
	"sort"
	"testing"

	"construction-visit-analysis/internal/schedule"
)

func TestScheduleGraph(t *testing.T) {
	g := schedule.NewScheduleGraph()
	a := schedule.NewTask("A", schedule.DurationDays(1))
	b := schedule.NewTask("B", schedule.DurationDays(2))
	c := schedule.NewTask("C", schedule.DurationDays(3))
	g.AddTask(a)
	g.AddTask(b)
	g.AddTask(c)

	g.AddRelationship(&schedule.TaskRelationship{FromTaskID: a.ID, ToTaskID: c.ID, Type: schedule.RelationSequential})
	g.AddRelationship(&schedule.TaskRelationship{FromTaskID: b.ID, ToTaskID: c.ID, Type: schedule.RelationDelay})
	g.AddRelationship(&schedule.TaskRelationship{FromTaskID: a.ID, ToTaskID: b.ID, Type: schedule.RelationParallel})

	t.Run("sorted task ids are stable", func(t *testing.T) {
		ids := g.SortedTaskIDs()
		if len(ids) != 3 {
			t.Fatalf("expected 3 ids, got %d", len(ids))
		}
		if !sort.SliceIsSorted(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() }) {
			t.Error("expected lexicographically sorted ids")
		}
	})

	t.Run("incoming precedence excludes parallel edges", func(t *testing.T) {
		in := g.IncomingPrecedence(c.ID)
		if len(in) != 2 {
			t.Fatalf("expected 2 precedence edges into C, got %d", len(in))
		}
		if got := g.IncomingPrecedence(b.ID); len(got) != 0 {
			t.Errorf("expected parallel edge ignored, got %d edges", len(got))
		}
	})

	t.Run("task lookup", func(t *testing.T) {
		if _, ok := g.Task(a.ID); !ok {
			t.Error("expected task A present")
		}
		if _, ok := g.Task(schedule.NewTask("ghost", schedule.DurationDays(1)).ID); ok {
			t.Error("expected unknown id to miss")
		}
	})
}
