package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"construction-visit-analysis/internal/history"
	"construction-visit-analysis/internal/model"
)

// Gather reduces all past visits for a location into a HistoricalContext.
// Any repository failure degrades to an empty context with a warning; this
// method is never the reason an analysis aborts.
func (uc *implUseCase) Gather(ctx context.Context, locationID uuid.UUID) history.HistoricalContext {
	if cached, ok := uc.cache.Get(locationID.String()); ok {
		return cached
	}

	hc := history.EmptyContext()

	visits, err := uc.repo.ListVisitsByLocation(ctx, locationID)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Gather: visit history unavailable for location %s, continuing without context: %v", locationID, err)
		return hc
	}

	for _, visit := range visits {
		entries, err := uc.repo.ListEntriesByVisit(ctx, visit.ID)
		if err != nil {
			uc.l.Warnf(ctx, "uc.Gather: chronogram unavailable for visit %s, continuing without context: %v", visit.ID, err)
			return history.EmptyContext()
		}
		for _, entry := range entries {
			hc.Tasks[entry.TaskName] = append(hc.Tasks[entry.TaskName], buildRecord(entry, entries))
		}
	}

	hc.Patterns = timingPatterns(hc.Tasks)
	hc.SuccessRates = successRates(hc.Tasks)
	hc.Deviations = meanDeviations(hc.Tasks)

	uc.cache.Add(locationID.String(), hc)
	uc.l.Debugf(ctx, "uc.Gather: location=%s visits=%d task_names=%d", locationID, len(visits), len(hc.Tasks))
	return hc
}

// buildRecord converts one chronogram entry to a TaskRecord, resolving its
// dependency entry IDs against the sibling entries of the same visit.
func buildRecord(entry model.ChronogramEntry, siblings []model.ChronogramEntry) history.TaskRecord {
	record := history.TaskRecord{
		TaskName:    entry.TaskName,
		PlannedDays: entry.PlannedDays(),
		Status:      entry.Status,
		ActualStart: entry.ActualStart,
		ActualEnd:   entry.ActualEnd,
	}

	if actual, ok := entry.ActualDays(); ok {
		record.ActualDays = &actual
	}
	record.Success = entry.Status == model.ChronogramCompleted &&
		entry.ActualStart != nil && entry.ActualEnd != nil

	for _, depID := range entry.Dependencies {
		for _, sibling := range siblings {
			if sibling.ID == depID {
				record.Dependencies = append(record.Dependencies, history.DependencyRecord{
					TaskName:  sibling.TaskName,
					ActualEnd: sibling.ActualEnd,
				})
				break
			}
		}
	}
	return record
}

// timingPatterns emits a human-readable line per task name whose mean
// deviation from plan is at least one day.
func timingPatterns(tasks map[string][]history.TaskRecord) []string {
	var patterns []string
	for _, name := range sortedNames(tasks) {
		dev, ok := groupDeviation(tasks[name])
		if !ok {
			continue
		}
		if dev >= 1 || dev <= -1 {
			patterns = append(patterns, fmt.Sprintf("%s typically takes %+.1f days compared to plan", name, dev))
		}
	}
	return patterns
}

// successRates computes count(success)/count(records) per task name.
// A name with zero records rates 0.0; never divides by zero.
func successRates(tasks map[string][]history.TaskRecord) map[string]float64 {
	rates := make(map[string]float64, len(tasks))
	for name, records := range tasks {
		if len(records) == 0 {
			rates[name] = 0.0
			continue
		}
		succeeded := 0
		for _, r := range records {
			if r.Success {
				succeeded++
			}
		}
		rates[name] = float64(succeeded) / float64(len(records))
	}
	return rates
}

// meanDeviations computes the mean signed actual-minus-planned deviation per
// task name, over records with an actual duration.
func meanDeviations(tasks map[string][]history.TaskRecord) map[string]float64 {
	deviations := make(map[string]float64)
	for name, records := range tasks {
		if dev, ok := groupDeviation(records); ok {
			deviations[name] = dev
		}
	}
	return deviations
}

func groupDeviation(records []history.TaskRecord) (float64, bool) {
	var sum float64
	count := 0
	for _, r := range records {
		if r.ActualDays == nil {
			continue
		}
		sum += *r.ActualDays - r.PlannedDays
		count++
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

func sortedNames(tasks map[string][]history.TaskRecord) []string {
	names := make([]string, 0, len(tasks))
	for name := range tasks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
