package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"construction-visit-analysis/internal/schedule"
)

func parallelPair(nameA, nameB string, days float64) (*schedule.ScheduleGraph, *schedule.Task, *schedule.Task) {
	g := schedule.NewScheduleGraph()
	a := schedule.NewTask(nameA, schedule.DurationDays(days))
	b := schedule.NewTask(nameB, schedule.DurationDays(days))
	g.AddTask(a)
	g.AddTask(b)
	g.AddParallelGroup([]uuid.UUID{a.ID, b.ID})
	return g, a, b
}

func countSequential(g *schedule.ScheduleGraph) int {
	n := 0
	for _, rel := range g.Relationships {
		if rel.Type == schedule.RelationSequential {
			n++
		}
	}
	return n
}

func TestValidateGraph(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	t.Run("feasible group kept", func(t *testing.T) {
		g, _, _ := parallelPair("Pintura", "Carpintería", 5)
		uc.validateGraph(ctx, g)

		if len(g.ParallelGroups) != 1 {
			t.Errorf("expected group kept, got %d groups", len(g.ParallelGroups))
		}
		if countSequential(g) != 0 {
			t.Error("expected no downgrade edges")
		}
	})

	t.Run("low historical success rate downgrades", func(t *testing.T) {
		g, a, b := parallelPair("Muros", "Columnas", 5)
		a.Metadata.Historical = &schedule.HistoricalStats{Count: 4, SuccessRate: 0.5}

		uc.validateGraph(ctx, g)

		if len(g.ParallelGroups) != 0 {
			t.Fatal("expected group downgraded")
		}
		if countSequential(g) != 1 {
			t.Fatalf("expected one sequential chain edge, got %d", countSequential(g))
		}
		rel := g.Relationships[0]
		if rel.FromTaskID != a.ID || rel.ToTaskID != b.ID {
			t.Error("expected chain to follow stored member order")
		}
		if len(g.Warnings) == 0 {
			t.Error("expected a downgrade warning")
		}
	})

	t.Run("historical warning flag downgrades", func(t *testing.T) {
		g, a, _ := parallelPair("Muros", "Columnas", 5)
		a.AddWarning("recent executions average 9.0 days, above the historical 4.0 days")

		uc.validateGraph(ctx, g)

		if len(g.ParallelGroups) != 0 {
			t.Error("expected warned group downgraded")
		}
	})

	t.Run("validation ceiling is stricter than build ceiling", func(t *testing.T) {
		// 40 total days passes the 90-day build check but not the 30-day
		// validation check.
		g, _, _ := parallelPair("Estructura", "Fachada", 20)
		uc.validateGraph(ctx, g)

		if len(g.ParallelGroups) != 0 {
			t.Error("expected 40-day group rejected at the 30-day ceiling")
		}
		if countSequential(g) != 1 {
			t.Errorf("expected downgrade chain, got %d sequential edges", countSequential(g))
		}
	})

	t.Run("task in two groups keeps only the first", func(t *testing.T) {
		g := schedule.NewScheduleGraph()
		a := schedule.NewTask("A", schedule.DurationDays(2))
		b := schedule.NewTask("B", schedule.DurationDays(2))
		c := schedule.NewTask("C", schedule.DurationDays(2))
		g.AddTask(a)
		g.AddTask(b)
		g.AddTask(c)
		g.AddParallelGroup([]uuid.UUID{a.ID, b.ID})
		g.AddParallelGroup([]uuid.UUID{b.ID, c.ID})

		uc.validateGraph(ctx, g)

		if len(g.ParallelGroups) != 1 {
			t.Fatalf("expected 1 surviving group, got %d", len(g.ParallelGroups))
		}
		if g.ParallelGroups[0][0] != a.ID {
			t.Error("expected the first group to survive")
		}
	})
}
