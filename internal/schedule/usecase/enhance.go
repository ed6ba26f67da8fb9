package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"

	"construction-visit-analysis/internal/history"
	"construction-visit-analysis/internal/model"
	"construction-visit-analysis/internal/schedule"
)

// enhanceGraph annotates the graph in place with per-task historical
// statistics and per-relationship gap statistics. Declared durations are
// never rewritten; history lands in metadata, warnings and synthesized
// delays only.
func (uc *implUseCase) enhanceGraph(ctx context.Context, g *schedule.ScheduleGraph, hc history.HistoricalContext) {
	if hc.IsEmpty() {
		uc.l.Debugf(ctx, "schedule.enhanceGraph: no historical context, skipping")
		return
	}

	for _, id := range g.SortedTaskIDs() {
		t, _ := g.Task(id)
		uc.enhanceTask(t, hc.Tasks[t.Name])
	}

	for _, rel := range g.Relationships {
		uc.enhanceRelationship(g, rel, hc)
	}
}

// enhanceTask computes completed-run statistics for one task and emits
// warnings when the declared estimate disagrees with history.
func (uc *implUseCase) enhanceTask(t *schedule.Task, records []history.TaskRecord) {
	completed := completedRecords(records)
	if len(completed) == 0 {
		return
	}

	var sumActual, sumPlanned, minActual, maxActual float64
	var onTime int
	for i, rec := range completed {
		actual := *rec.ActualDays
		sumActual += actual
		sumPlanned += rec.PlannedDays
		if i == 0 || actual < minActual {
			minActual = actual
		}
		if i == 0 || actual > maxActual {
			maxActual = actual
		}
		if actual <= rec.PlannedDays*uc.th.OnTimeFactor {
			onTime++
		}
	}

	n := float64(len(completed))
	avgActual := sumActual / n
	avgPlanned := sumPlanned / n

	recent := completed
	if len(recent) > uc.th.RecentWindow {
		recent = recent[len(recent)-uc.th.RecentWindow:]
	}
	var recentSum float64
	for _, rec := range recent {
		recentSum += *rec.ActualDays
	}
	recentAvg := recentSum / float64(len(recent))

	t.Metadata.Historical = &schedule.HistoricalStats{
		Count:            len(completed),
		AvgDuration:      avgActual,
		RecentAvg:        recentAvg,
		MinDuration:      minActual,
		MaxDuration:      maxActual,
		TypicalDeviation: avgActual - avgPlanned,
		RecentDeviation:  recentAvg - avgPlanned,
		SuccessRate:      float64(onTime) / n,
	}

	if diff := t.Duration.Days() - avgActual; math.Abs(diff) > uc.th.DeviationWarningDays {
		t.AddWarning(fmt.Sprintf("estimate of %.1f days differs from historical average of %.1f days", t.Duration.Days(), avgActual))
	}
	if recentAvg > avgActual*uc.th.RecentSlowdownFactor {
		t.AddWarning(fmt.Sprintf("recent executions average %.1f days, above the historical %.1f days", recentAvg, avgActual))
	}
}

// enhanceRelationship computes observed-gap statistics for one edge and
// synthesizes a delay when recent gaps say the pair consistently needs one.
// Explicit delays are never overwritten.
func (uc *implUseCase) enhanceRelationship(g *schedule.ScheduleGraph, rel *schedule.TaskRelationship, hc history.HistoricalContext) {
	from, okFrom := g.Task(rel.FromTaskID)
	to, okTo := g.Task(rel.ToTaskID)
	if !okFrom || !okTo {
		return
	}

	gaps := observedGaps(hc.Tasks[to.Name], from.Name)
	if len(gaps) == 0 {
		return
	}

	var sum, minGap, maxGap float64
	for i, gap := range gaps {
		sum += gap
		if i == 0 || gap < minGap {
			minGap = gap
		}
		if i == 0 || gap > maxGap {
			maxGap = gap
		}
	}

	recent := gaps
	if len(recent) > uc.th.GapRecentWindow {
		recent = recent[len(recent)-uc.th.GapRecentWindow:]
	}
	var recentSum float64
	for _, gap := range recent {
		recentSum += gap
	}
	recentAvg := recentSum / float64(len(recent))

	rel.Gap = &schedule.GapStats{
		Count:     len(gaps),
		AvgGap:    sum / float64(len(gaps)),
		MinGap:    minGap,
		MaxGap:    maxGap,
		RecentAvg: recentAvg,
	}

	if rel.Delay == nil && recentAvg > uc.th.GapDelayThresholdDays {
		d := schedule.DurationDays(math.Round(recentAvg * uc.th.GapSafetyFactor))
		rel.Delay = &d
		g.Warn(fmt.Sprintf("added %.0f-day delay between %q and %q from recent gap history", d.Amount, from.Name, to.Name))
	}
}

// completedRecords filters to fully recorded completions, ordered by actual
// completion date ascending so recency windows read from the tail.
func completedRecords(records []history.TaskRecord) []history.TaskRecord {
	var out []history.TaskRecord
	for _, rec := range records {
		if rec.Status != model.ChronogramCompleted || rec.ActualDays == nil || rec.ActualEnd == nil {
			continue
		}
		out = append(out, rec)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ActualEnd.Before(*out[j].ActualEnd)
	})
	return out
}

// observedGaps returns the gaps in days between a predecessor's actual end
// and the successor's actual start, restricted to successful runs, in
// completion order.
func observedGaps(successorRecords []history.TaskRecord, predecessorName string) []float64 {
	var gaps []float64
	for _, rec := range successorRecords {
		if !rec.Success || rec.ActualStart == nil {
			continue
		}
		for _, dep := range rec.Dependencies {
			if dep.TaskName != predecessorName || dep.ActualEnd == nil {
				continue
			}
			gaps = append(gaps, rec.ActualStart.Sub(*dep.ActualEnd).Hours()/24)
		}
	}
	return gaps
}
