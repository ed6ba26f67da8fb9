package extraction

import (
	"context"

	"construction-visit-analysis/internal/history"
	"construction-visit-analysis/internal/schedule"
)

// Extractor turns a raw visit transcript into unvalidated candidate schedule
// data. The historical context is embedded in the prompt so the model can
// lean on past performance when proposing durations and parallel groups.
type Extractor interface {
	ExtractSchedule(ctx context.Context, transcript string, hc history.HistoricalContext) (schedule.RawSchedule, error)
}
