package usecase

import (
	"context"

	"github.com/google/uuid"

	"construction-visit-analysis/internal/history"
	"construction-visit-analysis/internal/history/repository"
	"construction-visit-analysis/internal/model"
)

// CreateVisit records a new site visit and invalidates the location's cached
// context.
func (uc *implUseCase) CreateVisit(ctx context.Context, input history.CreateVisitInput) (model.Visit, error) {
	visit, err := uc.repo.CreateVisit(ctx, repository.CreateVisitOptions{
		LocationID: input.LocationID,
		Date:       input.Date,
		Notes:      input.Notes,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateVisit: %v", err)
		return model.Visit{}, err
	}

	uc.cache.Remove(input.LocationID.String())
	uc.l.Infof(ctx, "uc.CreateVisit: created visit %s for location %s", visit.ID, input.LocationID)
	return visit, nil
}

// ListVisits returns all visits for a location, oldest first.
func (uc *implUseCase) ListVisits(ctx context.Context, locationID uuid.UUID) ([]model.Visit, error) {
	visits, err := uc.repo.ListVisitsByLocation(ctx, locationID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListVisits: %v", err)
		return nil, err
	}
	return visits, nil
}

// AddEntry records a planned chronogram entry for a visit.
func (uc *implUseCase) AddEntry(ctx context.Context, input history.AddEntryInput) (model.ChronogramEntry, error) {
	if !input.PlannedEnd.After(input.PlannedStart) {
		return model.ChronogramEntry{}, history.ErrInvalidPlanning
	}

	entry, err := uc.repo.CreateEntry(ctx, repository.CreateEntryOptions{
		VisitID:      input.VisitID,
		TaskName:     input.TaskName,
		PlannedStart: input.PlannedStart,
		PlannedEnd:   input.PlannedEnd,
		Dependencies: input.Dependencies,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddEntry: %v", err)
		return model.ChronogramEntry{}, err
	}

	// The visit -> location mapping is not loaded here, so drop all cached
	// contexts.
	uc.cache.Purge()
	return entry, nil
}

// UpdateProgress records actual execution data for an entry.
func (uc *implUseCase) UpdateProgress(ctx context.Context, input history.UpdateProgressInput) (model.ChronogramEntry, error) {
	existing, err := uc.repo.GetEntry(ctx, input.EntryID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateProgress GetEntry: %v", err)
		return model.ChronogramEntry{}, err
	}
	if existing.ID == uuid.Nil {
		return model.ChronogramEntry{}, history.ErrEntryNotFound
	}

	entry, err := uc.repo.UpdateEntryProgress(ctx, repository.UpdateEntryProgressOptions{
		EntryID:     input.EntryID,
		ActualStart: input.ActualStart,
		ActualEnd:   input.ActualEnd,
		Status:      input.Status,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateProgress: %v", err)
		return model.ChronogramEntry{}, err
	}

	uc.cache.Purge()
	return entry, nil
}
