package http

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"construction-visit-analysis/internal/history"
	"construction-visit-analysis/internal/model"
)

const dateLayout = "2006-01-02"

// --- Request DTOs ---

type createVisitReq struct {
	LocationID string `json:"location_id" binding:"required,uuid"`
	Date       string `json:"date"        binding:"required,datetime=2006-01-02"`
	Notes      string `json:"notes"       binding:"max=10000"`
}

func (r createVisitReq) toInput() (history.CreateVisitInput, error) {
	locationID, err := uuid.Parse(r.LocationID)
	if err != nil {
		return history.CreateVisitInput{}, err
	}
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return history.CreateVisitInput{}, err
	}
	return history.CreateVisitInput{
		LocationID: locationID,
		Date:       date,
		Notes:      r.Notes,
	}, nil
}

type addEntryReq struct {
	VisitID      string   `json:"-"`
	TaskName     string   `json:"task_name"     binding:"required,min=1,max=255"`
	PlannedStart string   `json:"planned_start" binding:"required,datetime=2006-01-02"`
	PlannedEnd   string   `json:"planned_end"   binding:"required,datetime=2006-01-02"`
	Dependencies []string `json:"dependencies"  binding:"omitempty,dive,uuid"`
}

func (r addEntryReq) toInput() (history.AddEntryInput, error) {
	visitID, err := uuid.Parse(r.VisitID)
	if err != nil {
		return history.AddEntryInput{}, err
	}
	plannedStart, err := time.Parse(dateLayout, r.PlannedStart)
	if err != nil {
		return history.AddEntryInput{}, err
	}
	plannedEnd, err := time.Parse(dateLayout, r.PlannedEnd)
	if err != nil {
		return history.AddEntryInput{}, err
	}

	deps := make([]uuid.UUID, 0, len(r.Dependencies))
	for _, raw := range r.Dependencies {
		id, perr := uuid.Parse(raw)
		if perr != nil {
			return history.AddEntryInput{}, perr
		}
		deps = append(deps, id)
	}

	return history.AddEntryInput{
		VisitID:      visitID,
		TaskName:     r.TaskName,
		PlannedStart: plannedStart,
		PlannedEnd:   plannedEnd,
		Dependencies: deps,
	}, nil
}

type updateProgressReq struct {
	EntryID     string  `json:"-"`
	ActualStart *string `json:"actual_start" binding:"omitempty,datetime=2006-01-02"`
	ActualEnd   *string `json:"actual_end"   binding:"omitempty,datetime=2006-01-02"`
	Status      string  `json:"status"       binding:"required,oneof=planned in_progress completed delayed cancelled"`
}

func (r updateProgressReq) toInput() (history.UpdateProgressInput, error) {
	entryID, err := uuid.Parse(r.EntryID)
	if err != nil {
		return history.UpdateProgressInput{}, err
	}

	input := history.UpdateProgressInput{
		EntryID: entryID,
		Status:  model.ChronogramStatus(r.Status),
	}
	if r.ActualStart != nil {
		t, perr := time.Parse(dateLayout, *r.ActualStart)
		if perr != nil {
			return history.UpdateProgressInput{}, perr
		}
		input.ActualStart = &t
	}
	if r.ActualEnd != nil {
		t, perr := time.Parse(dateLayout, *r.ActualEnd)
		if perr != nil {
			return history.UpdateProgressInput{}, perr
		}
		input.ActualEnd = &t
	}
	return input, nil
}

// --- Response DTOs ---

type visitResp struct {
	ID         string    `json:"id"`
	LocationID string    `json:"location_id"`
	Date       string    `json:"date"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func newVisitResp(v model.Visit) visitResp {
	return visitResp{
		ID:         v.ID.String(),
		LocationID: v.LocationID.String(),
		Date:       v.Date.Format(dateLayout),
		Notes:      v.Notes,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

type listVisitsResp struct {
	Visits []visitResp `json:"visits"`
	Total  int         `json:"total"`
}

func (h *handler) newListVisitsResp(visits []model.Visit) listVisitsResp {
	out := make([]visitResp, len(visits))
	for i, v := range visits {
		out[i] = newVisitResp(v)
	}
	return listVisitsResp{Visits: out, Total: len(out)}
}

type entryResp struct {
	ID           string   `json:"id"`
	VisitID      string   `json:"visit_id"`
	TaskName     string   `json:"task_name"`
	PlannedStart string   `json:"planned_start"`
	PlannedEnd   string   `json:"planned_end"`
	ActualStart  *string  `json:"actual_start,omitempty"`
	ActualEnd    *string  `json:"actual_end,omitempty"`
	Status       string   `json:"status"`
	Dependencies []string `json:"dependencies,omitempty"`
}

func newEntryResp(e model.ChronogramEntry) entryResp {
	resp := entryResp{
		ID:           e.ID.String(),
		VisitID:      e.VisitID.String(),
		TaskName:     e.TaskName,
		PlannedStart: e.PlannedStart.Format(dateLayout),
		PlannedEnd:   e.PlannedEnd.Format(dateLayout),
		Status:       string(e.Status),
	}
	if e.ActualStart != nil {
		s := e.ActualStart.Format(dateLayout)
		resp.ActualStart = &s
	}
	if e.ActualEnd != nil {
		s := e.ActualEnd.Format(dateLayout)
		resp.ActualEnd = &s
	}
	for _, dep := range e.Dependencies {
		resp.Dependencies = append(resp.Dependencies, dep.String())
	}
	return resp
}

type contextResp struct {
	TaskNames    []string           `json:"task_names"`
	Patterns     []string           `json:"patterns,omitempty"`
	SuccessRates map[string]float64 `json:"success_rates"`
	Deviations   map[string]float64 `json:"deviations"`
}

func (h *handler) newContextResp(hc history.HistoricalContext) contextResp {
	names := make([]string, 0, len(hc.Tasks))
	for name := range hc.Tasks {
		names = append(names, name)
	}
	sort.Strings(names)

	return contextResp{
		TaskNames:    names,
		Patterns:     hc.Patterns,
		SuccessRates: hc.SuccessRates,
		Deviations:   hc.Deviations,
	}
}
