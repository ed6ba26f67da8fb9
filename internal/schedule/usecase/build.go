package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"construction-visit-analysis/internal/schedule"
)

// buildGraph turns the raw extraction payload into a ScheduleGraph. Dangling
// or malformed records are skipped with a warning; nothing here fails the
// whole build. Cycle detection is deferred to the date calculator.
func (uc *implUseCase) buildGraph(ctx context.Context, raw schedule.RawSchedule) (*schedule.ScheduleGraph, error) {
	if len(raw.Tasks) == 0 {
		return nil, schedule.ErrNoTasks
	}

	g := schedule.NewScheduleGraph()
	byName := make(map[string]uuid.UUID, len(raw.Tasks))

	for _, rt := range raw.Tasks {
		key := normalizeTaskName(rt.Name)
		if key == "" {
			g.Warn("skipped task with empty name")
			continue
		}
		if _, exists := byName[key]; exists {
			g.Warn(fmt.Sprintf("duplicate task name %q, keeping the first occurrence", rt.Name))
			continue
		}

		dur := schedule.DurationDays(1)
		if rt.Duration != nil {
			d, err := schedule.NewDuration(rt.Duration.Amount, rt.Duration.Unit)
			if err != nil {
				uc.l.Errorf(ctx, "schedule.buildGraph.NewDuration: task=%q: %v", rt.Name, err)
				return nil, err
			}
			dur = d
		}

		t := schedule.NewTask(rt.Name, dur)
		t.Description = rt.Description
		t.CanBeParallel = rt.CanBeParallel
		t.Responsible = rt.Responsible
		t.Location = rt.Location
		t.Metadata.Confidence = rt.Confidence
		t.Metadata.HistoricalDeviation = rt.HistoricalDeviation
		t.Metadata.Risks = rt.Risks

		g.AddTask(t)
		byName[key] = t.ID
	}

	if len(g.Tasks) == 0 {
		return nil, schedule.ErrNoTasks
	}

	for _, rr := range raw.Relationships {
		fromID, okFrom := byName[normalizeTaskName(rr.FromTask)]
		toID, okTo := byName[normalizeTaskName(rr.ToTask)]
		if !okFrom || !okTo {
			g.Warn(fmt.Sprintf("skipped relationship %q -> %q: unresolved task name", rr.FromTask, rr.ToTask))
			continue
		}

		relType, err := schedule.ParseRelationType(rr.Type)
		if err != nil {
			g.Warn(fmt.Sprintf("skipped relationship %q -> %q: %v", rr.FromTask, rr.ToTask, err))
			continue
		}

		rel := &schedule.TaskRelationship{
			FromTaskID: fromID,
			ToTaskID:   toID,
			Type:       relType,
		}
		if rr.Delay != nil {
			d, derr := schedule.NewDuration(rr.Delay.Amount, rr.Delay.Unit)
			if derr != nil {
				g.Warn(fmt.Sprintf("dropped delay on %q -> %q: %v", rr.FromTask, rr.ToTask, derr))
			} else {
				rel.Delay = &d
			}
		}
		g.AddRelationship(rel)
	}

	for _, names := range raw.ParallelGroups {
		var members []uuid.UUID
		for _, name := range names {
			id, ok := byName[normalizeTaskName(name)]
			if !ok {
				continue
			}
			members = append(members, id)
		}
		if len(members) < 2 {
			continue
		}

		if reason := uc.groupInfeasible(g, members, uc.th.BuildParallelCeilingDays, false); reason != "" {
			g.Warn(fmt.Sprintf("rejected parallel group %v: %s", names, reason))
			continue
		}
		g.AddParallelGroup(members)
	}

	uc.l.Infof(ctx, "schedule.buildGraph: tasks=%d relationships=%d parallel_groups=%d warnings=%d",
		len(g.Tasks), len(g.Relationships), len(g.ParallelGroups), len(g.Warnings))
	return g, nil
}

// groupInfeasible runs the parallel-group feasibility checks and returns a
// reason string when the group must be rejected, or "" when it passes. The
// historical checks only apply on the validation pass.
func (uc *implUseCase) groupInfeasible(g *schedule.ScheduleGraph, members []uuid.UUID, ceilingDays float64, historical bool) string {
	var total float64
	for _, id := range members {
		t, ok := g.Task(id)
		if !ok {
			return fmt.Sprintf("member %s not in graph", id)
		}
		total += t.Duration.Days()

		if c := t.Metadata.Confidence; c != nil && *c < uc.th.MinParallelConfidence {
			return fmt.Sprintf("task %q confidence %.2f below %.2f", t.Name, *c, uc.th.MinParallelConfidence)
		}
		if hasHighRiskMarker(t.Metadata.Risks) {
			return fmt.Sprintf("task %q carries a high-risk annotation", t.Name)
		}

		if !historical {
			continue
		}
		if h := t.Metadata.Historical; h != nil && h.SuccessRate < uc.th.MinHistoricalSuccessRate {
			return fmt.Sprintf("task %q historical success rate %.2f below %.2f", t.Name, h.SuccessRate, uc.th.MinHistoricalSuccessRate)
		}
		if len(t.Metadata.Warnings) > 0 {
			return fmt.Sprintf("task %q carries historical warnings", t.Name)
		}
	}

	if total > ceilingDays {
		return fmt.Sprintf("total duration %.1f days exceeds %.0f-day ceiling", total, ceilingDays)
	}
	return ""
}
