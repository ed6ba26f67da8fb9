package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"construction-visit-analysis/internal/report"
	"construction-visit-analysis/internal/schedule"
	"construction-visit-analysis/pkg/gcalendar"
)

// Analyze runs the full pipeline for one transcript: gather history, extract
// candidate data, build, enhance, validate, compute dates, render the gantt
// and optionally export to the calendar.
func (uc *implUseCase) Analyze(ctx context.Context, input schedule.AnalyzeInput) (schedule.AnalyzeOutput, error) {
	if strings.TrimSpace(input.Transcript) == "" {
		return schedule.AnalyzeOutput{}, schedule.ErrEmptyTranscript
	}

	uc.l.Infof(ctx, "schedule.Analyze: location=%s transcript_length=%d", input.LocationID, len(input.Transcript))

	hc := uc.historyUC.Gather(ctx, input.LocationID)

	raw, err := uc.extractor.ExtractSchedule(ctx, input.Transcript, hc)
	if err != nil {
		uc.l.Errorf(ctx, "schedule.Analyze.ExtractSchedule: %v", err)
		return schedule.AnalyzeOutput{}, fmt.Errorf("failed to extract schedule from transcript: %w", err)
	}

	g, err := uc.buildGraph(ctx, raw)
	if err != nil {
		uc.l.Errorf(ctx, "schedule.Analyze.buildGraph: %v", err)
		return schedule.AnalyzeOutput{}, err
	}

	uc.enhanceGraph(ctx, g, hc)
	uc.validateGraph(ctx, g)

	dates, err := uc.computeDates(g, input.StartDate)
	if err != nil {
		uc.l.Errorf(ctx, "schedule.Analyze.computeDates: %v", err)
		return schedule.AnalyzeOutput{}, err
	}

	out := schedule.AnalyzeOutput{
		Graph: g,
		Dates: dates,
		Gantt: report.MermaidGantt(g, dates),
	}

	if input.ExportCalendar && uc.calendar != nil {
		out.CalendarLinks = uc.exportToCalendar(ctx, g, dates)
	}
	return out, nil
}

// exportToCalendar pushes one event per task. Export failure never fails the
// analysis; failed tasks are logged and skipped.
func (uc *implUseCase) exportToCalendar(ctx context.Context, g *schedule.ScheduleGraph, dates map[uuid.UUID]schedule.TaskSchedule) []string {
	var links []string
	for _, id := range g.SortedTaskIDs() {
		t, _ := g.Task(id)
		window, ok := dates[id]
		if !ok {
			continue
		}

		event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			Summary:     t.Name,
			Description: t.Description,
			StartTime:   window.Start,
			EndTime:     window.End,
			Timezone:    uc.timezone,
		})
		if err != nil {
			uc.l.Errorf(ctx, "schedule.exportToCalendar: task=%q: %v", t.Name, err)
			continue
		}
		links = append(links, event.HtmlLink)
	}
	return links
}
