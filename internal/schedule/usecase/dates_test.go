package usecase

import (
	"errors"
	"testing"
	"time"

	"construction-visit-analysis/internal/schedule"
)

func TestComputeDates(t *testing.T) {
	uc := newTestUseCase()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("sequential chain with one-day buffer", func(t *testing.T) {
		g := schedule.NewScheduleGraph()
		foundation := schedule.NewTask("Cimentación", schedule.DurationDays(5))
		walls := schedule.NewTask("Muros", schedule.DurationDays(10))
		g.AddTask(foundation)
		g.AddTask(walls)
		g.AddRelationship(&schedule.TaskRelationship{
			FromTaskID: foundation.ID,
			ToTaskID:   walls.ID,
			Type:       schedule.RelationSequential,
		})

		dates, err := uc.computeDates(g, start)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		f := dates[foundation.ID]
		if !f.Start.Equal(start) {
			t.Errorf("foundation start: expected %v, got %v", start, f.Start)
		}
		if want := start.AddDate(0, 0, 5); !f.End.Equal(want) {
			t.Errorf("foundation end: expected %v, got %v", want, f.End)
		}

		w := dates[walls.ID]
		if want := start.AddDate(0, 0, 6); !w.Start.Equal(want) {
			t.Errorf("walls start: expected %v (end + 1-day buffer), got %v", want, w.Start)
		}
		if want := start.AddDate(0, 0, 16); !w.End.Equal(want) {
			t.Errorf("walls end: expected %v, got %v", want, w.End)
		}
	})

	t.Run("delay edge uses explicit delay", func(t *testing.T) {
		g := schedule.NewScheduleGraph()
		cure := schedule.NewTask("Fraguado", schedule.DurationDays(2))
		next := schedule.NewTask("Desencofrado", schedule.DurationDays(1))
		g.AddTask(cure)
		g.AddTask(next)
		delay := schedule.DurationDays(7)
		g.AddRelationship(&schedule.TaskRelationship{
			FromTaskID: cure.ID,
			ToTaskID:   next.ID,
			Type:       schedule.RelationDelay,
			Delay:      &delay,
		})

		dates, err := uc.computeDates(g, start)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := start.AddDate(0, 0, 9); !dates[next.ID].Start.Equal(want) {
			t.Errorf("expected start at end + 7-day delay (%v), got %v", want, dates[next.ID].Start)
		}
	})

	t.Run("parallel edges impose no ordering", func(t *testing.T) {
		g := schedule.NewScheduleGraph()
		a := schedule.NewTask("A", schedule.DurationDays(3))
		b := schedule.NewTask("B", schedule.DurationDays(4))
		g.AddTask(a)
		g.AddTask(b)
		g.AddRelationship(&schedule.TaskRelationship{
			FromTaskID: a.ID, ToTaskID: b.ID, Type: schedule.RelationParallel,
		})

		dates, err := uc.computeDates(g, start)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !dates[a.ID].Start.Equal(start) || !dates[b.ID].Start.Equal(start) {
			t.Error("expected both parallel tasks to start at the project start")
		}
	})

	t.Run("max over incoming edges", func(t *testing.T) {
		g := schedule.NewScheduleGraph()
		short := schedule.NewTask("Corta", schedule.DurationDays(1))
		long := schedule.NewTask("Larga", schedule.DurationDays(8))
		join := schedule.NewTask("Unión", schedule.DurationDays(2))
		g.AddTask(short)
		g.AddTask(long)
		g.AddTask(join)
		g.AddRelationship(&schedule.TaskRelationship{FromTaskID: short.ID, ToTaskID: join.ID, Type: schedule.RelationSequential})
		g.AddRelationship(&schedule.TaskRelationship{FromTaskID: long.ID, ToTaskID: join.ID, Type: schedule.RelationSequential})

		dates, err := uc.computeDates(g, start)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := start.AddDate(0, 0, 9); !dates[join.ID].Start.Equal(want) {
			t.Errorf("expected join after the longer predecessor (%v), got %v", want, dates[join.ID].Start)
		}
	})

	t.Run("cycle is a fatal error", func(t *testing.T) {
		g := schedule.NewScheduleGraph()
		a := schedule.NewTask("A", schedule.DurationDays(1))
		b := schedule.NewTask("B", schedule.DurationDays(1))
		c := schedule.NewTask("C", schedule.DurationDays(1))
		g.AddTask(a)
		g.AddTask(b)
		g.AddTask(c)
		g.AddRelationship(&schedule.TaskRelationship{FromTaskID: a.ID, ToTaskID: b.ID, Type: schedule.RelationSequential})
		g.AddRelationship(&schedule.TaskRelationship{FromTaskID: b.ID, ToTaskID: c.ID, Type: schedule.RelationSequential})
		g.AddRelationship(&schedule.TaskRelationship{FromTaskID: c.ID, ToTaskID: a.ID, Type: schedule.RelationSequential})

		_, err := uc.computeDates(g, start)
		var cycleErr *schedule.CircularDependencyError
		if !errors.As(err, &cycleErr) {
			t.Fatalf("expected CircularDependencyError, got %v", err)
		}
		if len(cycleErr.Remaining) != 3 {
			t.Errorf("expected all 3 tasks reported, got %d", len(cycleErr.Remaining))
		}
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		g := schedule.NewScheduleGraph()
		var prev *schedule.Task
		for _, name := range []string{"A", "B", "C", "D", "E"} {
			task := schedule.NewTask(name, schedule.DurationDays(2))
			g.AddTask(task)
			if prev != nil {
				g.AddRelationship(&schedule.TaskRelationship{FromTaskID: prev.ID, ToTaskID: task.ID, Type: schedule.RelationSequential})
			}
			prev = task
		}

		first, err := uc.computeDates(g, start)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := 0; i < 10; i++ {
			again, aerr := uc.computeDates(g, start)
			if aerr != nil {
				t.Fatalf("unexpected error: %v", aerr)
			}
			for id, window := range first {
				if !again[id].Start.Equal(window.Start) || !again[id].End.Equal(window.End) {
					t.Fatal("expected identical dates on re-run")
				}
			}
		}
	})
}
