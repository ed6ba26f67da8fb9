package schedule

// Thresholds holds every tunable constant of the schedule engine. The
// defaults are carried over from the original field-tested analyzer; they are
// surfaced here so operators can override them from config instead of
// recompiling.
type Thresholds struct {
	// BuildParallelCeilingDays caps the summed duration of a parallel group
	// at build time. Coarse sanity filter: more than three months of work in
	// parallel is operationally risky regardless of history.
	BuildParallelCeilingDays float64

	// ValidateParallelCeilingDays caps the summed duration at validation
	// time. Stricter than the build ceiling: this pass runs after historical
	// enhancement may have surfaced new risk signals.
	ValidateParallelCeilingDays float64

	// MinParallelConfidence is the extraction-confidence floor for parallel
	// group members.
	MinParallelConfidence float64

	// MinHistoricalSuccessRate is the historical success floor applied by
	// the validator.
	MinHistoricalSuccessRate float64

	// OnTimeFactor defines historical success: actual <= planned * factor.
	OnTimeFactor float64

	// RecentWindow is how many of the latest completions feed the recent
	// averages.
	RecentWindow int

	// GapRecentWindow is how many of the latest observed gaps feed the
	// recent gap average.
	GapRecentWindow int

	// GapSafetyFactor is the margin applied when synthesizing a delay from
	// the recent gap average.
	GapSafetyFactor float64

	// GapDelayThresholdDays is the recent gap average above which a delay is
	// synthesized on a relationship without an explicit one.
	GapDelayThresholdDays float64

	// SequentialBufferDays is the fixed minimum gap between a task and its
	// sequential successor, independent of explicit delays.
	SequentialBufferDays float64

	// DeviationWarningDays flags estimates that differ from the historical
	// average by more than this many days.
	DeviationWarningDays float64

	// RecentSlowdownFactor flags task names whose recent average exceeds the
	// historical average by this factor.
	RecentSlowdownFactor float64
}

// DefaultThresholds returns the engine defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{
		BuildParallelCeilingDays:    90,
		ValidateParallelCeilingDays: 30,
		MinParallelConfidence:       0.7,
		MinHistoricalSuccessRate:    0.7,
		OnTimeFactor:                1.1,
		RecentWindow:                5,
		GapRecentWindow:             3,
		GapSafetyFactor:             1.1,
		GapDelayThresholdDays:       2,
		SequentialBufferDays:        1,
		DeviationWarningDays:        2,
		RecentSlowdownFactor:        1.1,
	}
}
