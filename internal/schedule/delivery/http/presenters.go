package http

import (
	"time"

	"github.com/google/uuid"

	"construction-visit-analysis/internal/schedule"
)

// --- Request DTOs ---

type analyzeReq struct {
	Transcript     string `json:"transcript"      binding:"required"`
	LocationID     string `json:"location_id"     binding:"required,uuid"`
	StartDate      string `json:"start_date"      binding:"required,datetime=2006-01-02"`
	ExportCalendar bool   `json:"export_calendar"`
}

func (r analyzeReq) toInput() (schedule.AnalyzeInput, error) {
	locationID, err := uuid.Parse(r.LocationID)
	if err != nil {
		return schedule.AnalyzeInput{}, err
	}
	startDate, err := time.Parse("2006-01-02", r.StartDate)
	if err != nil {
		return schedule.AnalyzeInput{}, err
	}
	return schedule.AnalyzeInput{
		Transcript:     r.Transcript,
		LocationID:     locationID,
		StartDate:      startDate,
		ExportCalendar: r.ExportCalendar,
	}, nil
}

// --- Response DTOs ---

type historicalResp struct {
	Count            int     `json:"count"`
	AvgDuration      float64 `json:"avg_duration_days"`
	RecentAvg        float64 `json:"recent_avg_days"`
	MinDuration      float64 `json:"min_duration_days"`
	MaxDuration      float64 `json:"max_duration_days"`
	TypicalDeviation float64 `json:"typical_deviation_days"`
	RecentDeviation  float64 `json:"recent_deviation_days"`
	SuccessRate      float64 `json:"success_rate"`
}

type taskResp struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	DurationDays  float64         `json:"duration_days"`
	CanBeParallel bool            `json:"can_be_parallel"`
	Responsible   string          `json:"responsible,omitempty"`
	Location      string          `json:"location,omitempty"`
	Status        string          `json:"status"`
	Confidence    *float64        `json:"confidence,omitempty"`
	Risks         []string        `json:"risks,omitempty"`
	Warnings      []string        `json:"warnings,omitempty"`
	Historical    *historicalResp `json:"historical,omitempty"`
	Start         string          `json:"start,omitempty"`
	End           string          `json:"end,omitempty"`
}

type relationshipResp struct {
	FromTaskID string   `json:"from_task_id"`
	ToTaskID   string   `json:"to_task_id"`
	Type       string   `json:"type"`
	DelayDays  *float64 `json:"delay_days,omitempty"`
}

type analyzeResp struct {
	Tasks          []taskResp         `json:"tasks"`
	Relationships  []relationshipResp `json:"relationships"`
	ParallelGroups [][]string         `json:"parallel_groups"`
	Warnings       []string           `json:"warnings,omitempty"`
	Gantt          string             `json:"gantt"`
	CalendarLinks  []string           `json:"calendar_links,omitempty"`
}

const dateLayout = "2006-01-02"

func (h *handler) newAnalyzeResp(out schedule.AnalyzeOutput) analyzeResp {
	g := out.Graph

	tasks := make([]taskResp, 0, len(g.Tasks))
	for _, id := range g.SortedTaskIDs() {
		t, _ := g.Task(id)
		tr := taskResp{
			ID:            t.ID.String(),
			Name:          t.Name,
			Description:   t.Description,
			DurationDays:  t.Duration.Days(),
			CanBeParallel: t.CanBeParallel,
			Responsible:   t.Responsible,
			Location:      t.Location,
			Status:        string(t.Status),
			Confidence:    t.Metadata.Confidence,
			Risks:         t.Metadata.Risks,
			Warnings:      t.Metadata.Warnings,
		}
		if hs := t.Metadata.Historical; hs != nil {
			tr.Historical = &historicalResp{
				Count:            hs.Count,
				AvgDuration:      hs.AvgDuration,
				RecentAvg:        hs.RecentAvg,
				MinDuration:      hs.MinDuration,
				MaxDuration:      hs.MaxDuration,
				TypicalDeviation: hs.TypicalDeviation,
				RecentDeviation:  hs.RecentDeviation,
				SuccessRate:      hs.SuccessRate,
			}
		}
		if window, ok := out.Dates[id]; ok {
			tr.Start = window.Start.Format(dateLayout)
			tr.End = window.End.Format(dateLayout)
		}
		tasks = append(tasks, tr)
	}

	rels := make([]relationshipResp, 0, len(g.Relationships))
	for _, rel := range g.Relationships {
		rr := relationshipResp{
			FromTaskID: rel.FromTaskID.String(),
			ToTaskID:   rel.ToTaskID.String(),
			Type:       string(rel.Type),
		}
		if rel.Delay != nil {
			days := rel.Delay.Days()
			rr.DelayDays = &days
		}
		rels = append(rels, rr)
	}

	groups := make([][]string, 0, len(g.ParallelGroups))
	for _, group := range g.ParallelGroups {
		ids := make([]string, len(group))
		for i, id := range group {
			ids[i] = id.String()
		}
		groups = append(groups, ids)
	}

	return analyzeResp{
		Tasks:          tasks,
		Relationships:  rels,
		ParallelGroups: groups,
		Warnings:       g.Warnings,
		Gantt:          out.Gantt,
		CalendarLinks:  out.CalendarLinks,
	}
}
