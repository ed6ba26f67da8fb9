package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"construction-visit-analysis/internal/history"
	"construction-visit-analysis/internal/schedule"
	"construction-visit-analysis/pkg/log"
	"construction-visit-analysis/pkg/openai"
)

const extractionTemperature = 0.3

type implExtractor struct {
	l      log.Logger
	client openai.IOpenAI
}

var _ Extractor = &implExtractor{}

// New creates an Extractor backed by the chat-completions client.
func New(l log.Logger, client openai.IOpenAI) Extractor {
	return &implExtractor{
		l:      l,
		client: client,
	}
}

// ExtractSchedule asks the model for the structured schedule behind a
// transcript. The function schema pins the output shape; a sanitizing
// fallback handles models that wrap the arguments in markdown fences.
func (e *implExtractor) ExtractSchedule(ctx context.Context, transcript string, hc history.HistoricalContext) (schedule.RawSchedule, error) {
	req := &openai.Request{
		Messages: []openai.Message{
			{Role: "system", Content: systemPrompt(hc)},
			{Role: "user", Content: transcript},
		},
		Functions: []openai.FunctionDef{
			{
				Name:        extractFunctionName,
				Description: "Extrae tareas de construcción, sus duraciones y relaciones de una transcripción de visita de obra",
				Parameters:  extractionSchema(),
			},
		},
		ForceFunction: extractFunctionName,
		Temperature:   extractionTemperature,
	}

	resp, err := e.client.CreateChatCompletion(ctx, req)
	if err != nil {
		e.l.Errorf(ctx, "extraction.ExtractSchedule.CreateChatCompletion: %v", err)
		return schedule.RawSchedule{}, err
	}
	if resp == nil || resp.FunctionCall == nil || resp.FunctionCall.Arguments == "" {
		e.l.Warnf(ctx, "extraction.ExtractSchedule: model returned no function call")
		return schedule.RawSchedule{}, ErrEmptyResponse
	}

	raw, err := parseArguments(resp.FunctionCall.Arguments)
	if err != nil {
		e.l.Errorf(ctx, "extraction.ExtractSchedule.parseArguments: %v", err)
		return schedule.RawSchedule{}, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return raw, nil
}

// parseArguments decodes the function-call arguments, retrying once on a
// sanitized copy when the raw payload fails to parse.
func parseArguments(arguments string) (schedule.RawSchedule, error) {
	var raw schedule.RawSchedule
	if err := json.Unmarshal([]byte(arguments), &raw); err == nil {
		return raw, nil
	}

	cleaned := sanitizeJSONResponse(arguments)
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return schedule.RawSchedule{}, err
	}
	return raw, nil
}

var codeFencePattern = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// sanitizeJSONResponse strips markdown code fences and surrounding prose so
// the remaining text is parseable JSON.
func sanitizeJSONResponse(s string) string {
	if m := codeFencePattern.FindStringSubmatch(s); len(m) == 2 {
		s = m[1]
	}
	s = strings.TrimSpace(s)

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		s = s[start : end+1]
	}
	return s
}

// sortedKeys returns map keys in lexical order for stable prompt output.
func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
