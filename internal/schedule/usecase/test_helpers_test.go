package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"construction-visit-analysis/internal/history"
	"construction-visit-analysis/internal/model"
	"construction-visit-analysis/internal/schedule"
	"construction-visit-analysis/pkg/gcalendar"
)

// Mock logger for testing
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

// Mock extractor returning a fixed payload
type mockExtractor struct {
	raw  schedule.RawSchedule
	fail bool
}

func (m *mockExtractor) ExtractSchedule(ctx context.Context, transcript string, hc history.HistoricalContext) (schedule.RawSchedule, error) {
	if m.fail {
		return schedule.RawSchedule{}, errors.New("extraction failed")
	}
	return m.raw, nil
}

// Mock history use case returning a fixed context
type mockHistory struct {
	hc history.HistoricalContext
}

func (m *mockHistory) Gather(ctx context.Context, locationID uuid.UUID) history.HistoricalContext {
	if m.hc.Tasks == nil {
		return history.EmptyContext()
	}
	return m.hc
}

func (m *mockHistory) CreateVisit(ctx context.Context, input history.CreateVisitInput) (model.Visit, error) {
	return model.Visit{}, nil
}

func (m *mockHistory) ListVisits(ctx context.Context, locationID uuid.UUID) ([]model.Visit, error) {
	return nil, nil
}

func (m *mockHistory) AddEntry(ctx context.Context, input history.AddEntryInput) (model.ChronogramEntry, error) {
	return model.ChronogramEntry{}, nil
}

func (m *mockHistory) UpdateProgress(ctx context.Context, input history.UpdateProgressInput) (model.ChronogramEntry, error) {
	return model.ChronogramEntry{}, nil
}

// Mock calendar client
type mockCalendar struct {
	created []gcalendar.CreateEventRequest
	fail    bool
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.fail {
		return nil, errors.New("calendar unavailable")
	}
	m.created = append(m.created, req)
	return &gcalendar.Event{HtmlLink: "http://cal.link/" + req.Summary}, nil
}

func newTestUseCase() *implUseCase {
	return New(&mockLogger{}, &mockExtractor{}, &mockHistory{}, nil, "UTC", schedule.DefaultThresholds())
}

func floatPtr(v float64) *float64 { return &v }
