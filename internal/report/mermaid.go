// Package report renders computed schedules for human consumption.
package report

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"construction-visit-analysis/internal/schedule"
)

const ganttDateLayout = "2006-01-02"

// MermaidGantt renders the computed chronogram as a Mermaid.js gantt
// diagram. Parallel groups get their own sections; everything else lands in
// the sequential section, in deterministic task-ID order.
func MermaidGantt(g *schedule.ScheduleGraph, dates map[uuid.UUID]schedule.TaskSchedule) string {
	lines := []string{
		"gantt",
		"    dateFormat YYYY-MM-DD",
		"    title Cronograma de Construcción",
		"",
	}

	grouped := make(map[uuid.UUID]bool)
	for i, group := range g.ParallelGroups {
		lines = append(lines, fmt.Sprintf("    section Tareas Paralelas %d", i+1))
		for _, id := range group {
			grouped[id] = true
			lines = appendTaskLine(lines, g, id, dates)
		}
		lines = append(lines, "")
	}

	var sequential []uuid.UUID
	for _, id := range g.SortedTaskIDs() {
		if !grouped[id] {
			sequential = append(sequential, id)
		}
	}
	if len(sequential) > 0 {
		lines = append(lines, "    section Tareas Secuenciales")
		for _, id := range sequential {
			lines = appendTaskLine(lines, g, id, dates)
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func appendTaskLine(lines []string, g *schedule.ScheduleGraph, id uuid.UUID, dates map[uuid.UUID]schedule.TaskSchedule) []string {
	t, ok := g.Task(id)
	if !ok {
		return lines
	}
	window, ok := dates[id]
	if !ok {
		return lines
	}

	marker := ""
	if len(t.Metadata.Risks) > 0 {
		marker = " 🚨"
	}
	lines = append(lines, fmt.Sprintf("    %s%s : %s, %s",
		t.Name, marker,
		window.Start.Format(ganttDateLayout),
		window.End.Format(ganttDateLayout),
	))
	for _, risk := range t.Metadata.Risks {
		lines = append(lines, fmt.Sprintf("    %%%% Risk: %s", risk))
	}
	return lines
}
