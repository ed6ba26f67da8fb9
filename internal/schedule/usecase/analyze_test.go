package usecase_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"construction-visit-analysis/internal/extraction"
	"construction-visit-analysis/internal/history"
	"construction-visit-analysis/internal/model"
	"construction-visit-analysis/internal/schedule"
	"construction-visit-analysis/internal/schedule/usecase"
	"construction-visit-analysis/pkg/gcalendar"
	"construction-visit-analysis/pkg/openai"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockHistoryUC struct{}

func (m *mockHistoryUC) Gather(ctx context.Context, locationID uuid.UUID) history.HistoricalContext {
	return history.EmptyContext()
}

func (m *mockHistoryUC) CreateVisit(ctx context.Context, input history.CreateVisitInput) (model.Visit, error) {
	return model.Visit{}, nil
}

func (m *mockHistoryUC) ListVisits(ctx context.Context, locationID uuid.UUID) ([]model.Visit, error) {
	return nil, nil
}

func (m *mockHistoryUC) AddEntry(ctx context.Context, input history.AddEntryInput) (model.ChronogramEntry, error) {
	return model.ChronogramEntry{}, nil
}

func (m *mockHistoryUC) UpdateProgress(ctx context.Context, input history.UpdateProgressInput) (model.ChronogramEntry, error) {
	return model.ChronogramEntry{}, nil
}

type mockCalendarClient struct {
	created int
	fail    bool
}

func (m *mockCalendarClient) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.fail {
		return nil, errors.New("cal error")
	}
	m.created++
	return &gcalendar.Event{HtmlLink: "http://cal.link/" + req.Summary}, nil
}

const extractionArguments = `{\"tasks\": [{\"name\": \"Cimentación\", \"duration\": {\"amount\": 5, \"unit\": \"días\"}, \"confidence\": 0.9}, {\"name\": \"Muros\", \"duration\": {\"amount\": 10, \"unit\": \"días\"}, \"confidence\": 0.85}], \"relationships\": [{\"from_task\": \"Cimentación\", \"to_task\": \"Muros\", \"type\": \"secuencial\"}], \"parallel_groups\": []}`

func TestAnalyze(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		body := string(raw)

		if strings.Contains(body, "error_llm_500") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if strings.Contains(body, "error_llm_nocall") {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "no function call"}}]}`))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"choices": [
				{
					"message": {
						"role": "assistant",
						"content": "",
						"function_call": {
							"name": "extract_construction_tasks",
							"arguments": "` + extractionArguments + `"
						}
					}
				}
			]
		}`))
	}))
	defer ts.Close()

	llmClient := openai.NewClient("test-key")
	llmClient.SetAPIURL(ts.URL)
	extractor := extraction.New(&mockLogger{}, llmClient)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success path", func(t *testing.T) {
		cal := &mockCalendarClient{}
		uc := usecase.New(&mockLogger{}, extractor, &mockHistoryUC{}, cal, "UTC", schedule.DefaultThresholds())

		out, err := uc.Analyze(context.Background(), schedule.AnalyzeInput{
			Transcript:     "Primero la cimentación, cinco días. Después los muros, diez días.",
			LocationID:     uuid.New(),
			StartDate:      start,
			ExportCalendar: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Graph.Tasks) != 2 {
			t.Fatalf("expected 2 tasks, got %d", len(out.Graph.Tasks))
		}
		if len(out.Dates) != 2 {
			t.Fatalf("expected dates for both tasks, got %d", len(out.Dates))
		}
		if !strings.Contains(out.Gantt, "gantt") || !strings.Contains(out.Gantt, "Cimentación") {
			t.Error("expected a mermaid gantt naming the tasks")
		}
		if cal.created != 2 {
			t.Errorf("expected 2 calendar events, got %d", cal.created)
		}
		if len(out.CalendarLinks) != 2 {
			t.Errorf("expected 2 calendar links, got %d", len(out.CalendarLinks))
		}

		// Verify the computed windows follow the sequential buffer.
		for id, task := range out.Graph.Tasks {
			switch task.Name {
			case "Cimentación":
				if !out.Dates[id].Start.Equal(start) {
					t.Errorf("foundation start: got %v", out.Dates[id].Start)
				}
			case "Muros":
				if want := start.AddDate(0, 0, 6); !out.Dates[id].Start.Equal(want) {
					t.Errorf("walls start: expected %v, got %v", want, out.Dates[id].Start)
				}
			}
		}
	})

	t.Run("empty transcript", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, extractor, &mockHistoryUC{}, nil, "UTC", schedule.DefaultThresholds())

		_, err := uc.Analyze(context.Background(), schedule.AnalyzeInput{Transcript: "   "})
		if !errors.Is(err, schedule.ErrEmptyTranscript) {
			t.Fatalf("expected ErrEmptyTranscript, got %v", err)
		}
	})

	t.Run("llm failure", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, extractor, &mockHistoryUC{}, nil, "UTC", schedule.DefaultThresholds())

		_, err := uc.Analyze(context.Background(), schedule.AnalyzeInput{
			Transcript: "error_llm_500",
			LocationID: uuid.New(),
			StartDate:  start,
		})
		if err == nil {
			t.Error("expected llm 500 error")
		}

		_, err = uc.Analyze(context.Background(), schedule.AnalyzeInput{
			Transcript: "error_llm_nocall",
			LocationID: uuid.New(),
			StartDate:  start,
		})
		if !errors.Is(err, extraction.ErrEmptyResponse) {
			t.Errorf("expected ErrEmptyResponse, got %v", err)
		}
	})

	t.Run("calendar failure never fails analysis", func(t *testing.T) {
		cal := &mockCalendarClient{fail: true}
		uc := usecase.New(&mockLogger{}, extractor, &mockHistoryUC{}, cal, "UTC", schedule.DefaultThresholds())

		out, err := uc.Analyze(context.Background(), schedule.AnalyzeInput{
			Transcript:     "Primero la cimentación.",
			LocationID:     uuid.New(),
			StartDate:      start,
			ExportCalendar: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.CalendarLinks) != 0 {
			t.Errorf("expected no links on calendar failure, got %d", len(out.CalendarLinks))
		}
	})
}
