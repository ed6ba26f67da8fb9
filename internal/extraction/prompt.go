package extraction

import (
	"fmt"
	"strings"

	"construction-visit-analysis/internal/history"
)

// extractFunctionName is the function the model is pinned to.
const extractFunctionName = "extract_construction_tasks"

// systemPrompt instructs the model in the language of the transcripts.
// The historical summary is appended so estimates are grounded in past
// performance at this location.
func systemPrompt(hc history.HistoricalContext) string {
	var sb strings.Builder
	sb.WriteString(`Eres un analizador de proyectos de construcción que extrae tareas y sus relaciones de transcripciones.
Considera estos datos históricos de proyectos similares:
`)
	sb.WriteString(formatHistoricalContext(hc))
	sb.WriteString(`

Usa este contexto histórico para:
1. Validar las duraciones propuestas contra el rendimiento pasado
2. Identificar riesgos potenciales de tiempo basados en patrones anteriores
3. Sugerir ejecución en paralelo basada en experiencias exitosas pasadas
4. Ajustar estimaciones de tiempo basadas en desviaciones históricas

Para cada tarea identifica:
- Nombre y descripción de la tarea
- Duración (con unidad: días, semanas, meses)
- Dependencias con otras tareas
- Si se puede hacer en paralelo (basado en historial)
- Cualquier retraso o período de espera requerido
- Nivel de confianza basado en datos históricos`)
	return sb.String()
}

// formatHistoricalContext renders the context as prompt lines.
func formatHistoricalContext(hc history.HistoricalContext) string {
	if hc.IsEmpty() {
		return "(sin datos históricos para esta ubicación)"
	}

	var lines []string
	if len(hc.Patterns) > 0 {
		lines = append(lines, "Historical Task Patterns:")
		for _, p := range hc.Patterns {
			lines = append(lines, fmt.Sprintf("- %s", p))
		}
	}
	if len(hc.Deviations) > 0 {
		lines = append(lines, "", "Typical Deviations:")
		for _, name := range sortedKeys(hc.Deviations) {
			lines = append(lines, fmt.Sprintf("- %s: %+.1f days", name, hc.Deviations[name]))
		}
	}
	if len(hc.SuccessRates) > 0 {
		lines = append(lines, "", "Success Rates:")
		for _, name := range sortedKeys(hc.SuccessRates) {
			lines = append(lines, fmt.Sprintf("- %s: %.0f%%", name, hc.SuccessRates[name]*100))
		}
	}
	return strings.Join(lines, "\n")
}

// extractionSchema is the JSON Schema for the extraction function, matching
// the RawSchedule shape the builder consumes.
func extractionSchema() map[string]any {
	duration := func(units []string) map[string]any {
		return map[string]any{
			"type": "object",
			"properties": map[string]any{
				"amount": map[string]any{"type": "number"},
				"unit":   map[string]any{"type": "string", "enum": units},
			},
		}
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"tasks": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name":        map[string]any{"type": "string"},
						"description": map[string]any{"type": "string"},
						"duration": duration([]string{
							"dia", "dias", "día", "días",
							"semana", "semanas",
							"mes", "meses",
						}),
						"can_be_parallel":      map[string]any{"type": "boolean"},
						"confidence":           map[string]any{"type": "number"},
						"historical_deviation": map[string]any{"type": "number"},
						"responsible":          map[string]any{"type": "string"},
						"location":             map[string]any{"type": "string"},
						"risks": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
					"required": []string{"name"},
				},
			},
			"relationships": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"from_task": map[string]any{"type": "string"},
						"to_task":   map[string]any{"type": "string"},
						"type": map[string]any{
							"type": "string",
							"enum": []string{"secuencial", "paralelo", "espera"},
						},
						"delay": duration([]string{"dias", "semanas", "meses"}),
					},
					"required": []string{"from_task", "to_task", "type"},
				},
			},
			"parallel_groups": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
		},
	}
}
