package schedule

import "context"

// UseCase is the transcript-to-chronogram pipeline: historical context fetch,
// LLM extraction, graph build, historical enhancement, parallel validation
// and date computation, run as one unit of work per transcript.
type UseCase interface {
	// Analyze converts a visit transcript into a validated, dated schedule
	// graph for the given location.
	Analyze(ctx context.Context, input AnalyzeInput) (AnalyzeOutput, error)
}
