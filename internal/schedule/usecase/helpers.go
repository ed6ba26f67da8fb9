package usecase

import (
	"strings"
)

// accentFolder strips the accented vowels that show up in transcribed Spanish
// so lookups survive inconsistent transcription.
var accentFolder = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u",
	"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u",
	"ñ", "n", "Ñ", "n", "ü", "u", "Ü", "u",
)

// normalizeTaskName canonicalizes a task name for lookup-table keys. Display
// names keep their original form; only the keys are folded.
func normalizeTaskName(name string) string {
	folded := accentFolder.Replace(strings.TrimSpace(name))
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

// highRiskMarkers are the substrings that flag a risk annotation as blocking
// for parallel execution, in either transcript language.
var highRiskMarkers = []string{"alto riesgo", "high risk"}

// hasHighRiskMarker reports whether any risk annotation carries a blocking
// marker. Matching is case- and accent-insensitive.
func hasHighRiskMarker(risks []string) bool {
	for _, risk := range risks {
		folded := strings.ToLower(accentFolder.Replace(risk))
		for _, marker := range highRiskMarkers {
			if strings.Contains(folded, marker) {
				return true
			}
		}
	}
	return false
}
