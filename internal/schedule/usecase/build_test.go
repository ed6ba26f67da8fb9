package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"construction-visit-analysis/internal/schedule"
)

func TestBuildGraph(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	t.Run("single task with dangling relationship", func(t *testing.T) {
		raw := schedule.RawSchedule{
			Tasks: []schedule.RawTask{
				{Name: "Cimentación", Duration: &schedule.RawDuration{Amount: 5, Unit: "días"}},
			},
			Relationships: []schedule.RawRelationship{
				{FromTask: "Cimentación", ToTask: "Muros", Type: "secuencial"},
			},
		}

		g, err := uc.buildGraph(ctx, raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(g.Tasks) != 1 {
			t.Errorf("expected 1 task, got %d", len(g.Tasks))
		}
		if len(g.Relationships) != 0 {
			t.Errorf("expected dangling relationship to be dropped, got %d", len(g.Relationships))
		}
		if len(g.Warnings) == 0 {
			t.Error("expected a warning for the dropped relationship")
		}
	})

	t.Run("missing duration defaults to one day", func(t *testing.T) {
		raw := schedule.RawSchedule{
			Tasks: []schedule.RawTask{{Name: "Limpieza"}},
		}

		g, err := uc.buildGraph(ctx, raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, task := range g.Tasks {
			if task.Duration.Days() != 1 {
				t.Errorf("expected default 1 day, got %v", task.Duration.Days())
			}
		}
	})

	t.Run("duplicate task name keeps first occurrence", func(t *testing.T) {
		raw := schedule.RawSchedule{
			Tasks: []schedule.RawTask{
				{Name: "Pintura", Duration: &schedule.RawDuration{Amount: 3, Unit: "dias"}},
				{Name: "Pintura", Duration: &schedule.RawDuration{Amount: 9, Unit: "dias"}},
			},
		}

		g, err := uc.buildGraph(ctx, raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(g.Tasks) != 1 {
			t.Fatalf("expected 1 task, got %d", len(g.Tasks))
		}
		for _, task := range g.Tasks {
			if task.Duration.Days() != 3 {
				t.Errorf("expected first occurrence (3 days), got %v", task.Duration.Days())
			}
		}
		if len(g.Warnings) != 1 {
			t.Errorf("expected 1 duplicate warning, got %d", len(g.Warnings))
		}
	})

	t.Run("unknown relation type skipped with warning", func(t *testing.T) {
		raw := schedule.RawSchedule{
			Tasks: []schedule.RawTask{
				{Name: "A", Duration: &schedule.RawDuration{Amount: 1, Unit: "dias"}},
				{Name: "B", Duration: &schedule.RawDuration{Amount: 1, Unit: "dias"}},
			},
			Relationships: []schedule.RawRelationship{
				{FromTask: "A", ToTask: "B", Type: "simultaneo"},
			},
		}

		g, err := uc.buildGraph(ctx, raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(g.Relationships) != 0 {
			t.Errorf("expected relationship to be skipped, got %d", len(g.Relationships))
		}
	})

	t.Run("unsupported duration unit is fatal", func(t *testing.T) {
		raw := schedule.RawSchedule{
			Tasks: []schedule.RawTask{
				{Name: "A", Duration: &schedule.RawDuration{Amount: 2, Unit: "fortnight"}},
			},
		}

		_, err := uc.buildGraph(ctx, raw)
		var unitErr *schedule.UnsupportedUnitError
		if !errors.As(err, &unitErr) {
			t.Fatalf("expected UnsupportedUnitError, got %v", err)
		}
		if unitErr.Unit != "fortnight" {
			t.Errorf("expected offending unit in error, got %q", unitErr.Unit)
		}
	})

	t.Run("parallel group over build ceiling rejected", func(t *testing.T) {
		raw := schedule.RawSchedule{
			Tasks: []schedule.RawTask{
				{Name: "Estructura", Duration: &schedule.RawDuration{Amount: 2, Unit: "meses"}},
				{Name: "Instalaciones", Duration: &schedule.RawDuration{Amount: 2, Unit: "meses"}},
			},
			ParallelGroups: [][]string{{"Estructura", "Instalaciones"}},
		}

		g, err := uc.buildGraph(ctx, raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(g.ParallelGroups) != 0 {
			t.Errorf("expected 120-day group to be rejected at the 90-day ceiling")
		}
	})

	t.Run("high risk marker blocks parallel group", func(t *testing.T) {
		raw := schedule.RawSchedule{
			Tasks: []schedule.RawTask{
				{Name: "Excavación", Duration: &schedule.RawDuration{Amount: 5, Unit: "dias"}, Risks: []string{"Alto riesgo por lluvias"}},
				{Name: "Drenaje", Duration: &schedule.RawDuration{Amount: 5, Unit: "dias"}},
			},
			ParallelGroups: [][]string{{"Excavación", "Drenaje"}},
		}

		g, err := uc.buildGraph(ctx, raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(g.ParallelGroups) != 0 {
			t.Error("expected high-risk group to be rejected")
		}
		found := false
		for _, w := range g.Warnings {
			if strings.Contains(w, "high-risk") {
				found = true
			}
		}
		if !found {
			t.Error("expected a high-risk warning")
		}
	})

	t.Run("low confidence blocks parallel group", func(t *testing.T) {
		raw := schedule.RawSchedule{
			Tasks: []schedule.RawTask{
				{Name: "A", Duration: &schedule.RawDuration{Amount: 2, Unit: "dias"}, Confidence: floatPtr(0.5)},
				{Name: "B", Duration: &schedule.RawDuration{Amount: 2, Unit: "dias"}, Confidence: floatPtr(0.9)},
			},
			ParallelGroups: [][]string{{"A", "B"}},
		}

		g, err := uc.buildGraph(ctx, raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(g.ParallelGroups) != 0 {
			t.Error("expected low-confidence group to be rejected")
		}
	})

	t.Run("no tasks is an error", func(t *testing.T) {
		_, err := uc.buildGraph(ctx, schedule.RawSchedule{})
		if !errors.Is(err, schedule.ErrNoTasks) {
			t.Fatalf("expected ErrNoTasks, got %v", err)
		}
	})
}
