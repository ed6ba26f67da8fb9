package schedule

// Raw candidate data produced by the extraction step. Everything here is
// unvalidated: names may dangle, types may be misspelled, durations may use
// unknown units. The builder is responsible for turning this into a graph.

type RawDuration struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

type RawTask struct {
	Name                string       `json:"name"`
	Description         string       `json:"description"`
	Duration            *RawDuration `json:"duration"`
	CanBeParallel       bool         `json:"can_be_parallel"`
	Confidence          *float64     `json:"confidence"`
	HistoricalDeviation *float64     `json:"historical_deviation"`
	Responsible         string       `json:"responsible"`
	Location            string       `json:"location"`
	Risks               []string     `json:"risks"`
}

type RawRelationship struct {
	FromTask string       `json:"from_task"`
	ToTask   string       `json:"to_task"`
	Type     string       `json:"type"`
	Delay    *RawDuration `json:"delay"`
}

// RawSchedule is the full extraction payload for one transcript.
type RawSchedule struct {
	Tasks          []RawTask         `json:"tasks"`
	Relationships  []RawRelationship `json:"relationships"`
	ParallelGroups [][]string        `json:"parallel_groups"`
}
