package report_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"construction-visit-analysis/internal/report"
	"construction-visit-analysis/internal/schedule"
)

func TestMermaidGantt(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	g := schedule.NewScheduleGraph()
	foundation := schedule.NewTask("Cimentación", schedule.DurationDays(5))
	walls := schedule.NewTask("Muros", schedule.DurationDays(10))
	paint := schedule.NewTask("Pintura", schedule.DurationDays(3))
	paint.Metadata.Risks = []string{"alto riesgo por humedad"}
	g.AddTask(foundation)
	g.AddTask(walls)
	g.AddTask(paint)
	g.AddParallelGroup([]uuid.UUID{walls.ID, paint.ID})

	dates := map[uuid.UUID]schedule.TaskSchedule{
		foundation.ID: {Start: start, End: start.AddDate(0, 0, 5)},
		walls.ID:      {Start: start.AddDate(0, 0, 6), End: start.AddDate(0, 0, 16)},
		paint.ID:      {Start: start.AddDate(0, 0, 6), End: start.AddDate(0, 0, 9)},
	}

	out := report.MermaidGantt(g, dates)

	for _, want := range []string{
		"gantt",
		"dateFormat YYYY-MM-DD",
		"title Cronograma de Construcción",
		"section Tareas Paralelas 1",
		"section Tareas Secuenciales",
		"Cimentación : 2024-01-01, 2024-01-06",
		"Muros : 2024-01-07, 2024-01-17",
		"%% Risk: alto riesgo por humedad",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q\n---\n%s", want, out)
		}
	}

	if !strings.Contains(out, "Pintura 🚨") {
		t.Error("expected risk marker on Pintura")
	}

	if again := report.MermaidGantt(g, dates); again != out {
		t.Error("expected deterministic rendering")
	}
}
