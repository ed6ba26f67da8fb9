package schedule

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// TaskRelationType classifies a directed edge between two tasks.
type TaskRelationType string

const (
	RelationSequential TaskRelationType = "sequential"
	RelationParallel   TaskRelationType = "parallel"
	RelationDelay      TaskRelationType = "delay"
)

// relationSpellings maps the extraction step's type strings (either language)
// to canonical types.
var relationSpellings = map[string]TaskRelationType{
	"sequential": RelationSequential,
	"secuencial": RelationSequential,
	"parallel":   RelationParallel,
	"paralelo":   RelationParallel,
	"delay":      RelationDelay,
	"espera":     RelationDelay,
	"wait":       RelationDelay,
}

// ParseRelationType normalizes a raw relation-type string.
func ParseRelationType(raw string) (TaskRelationType, error) {
	t, ok := relationSpellings[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return "", fmt.Errorf("unknown relation type %q", raw)
	}
	return t, nil
}

// GapStats summarizes historically observed gaps between a task pair:
// actual start of the successor minus actual end of the predecessor.
type GapStats struct {
	Count     int
	AvgGap    float64
	MinGap    float64
	MaxGap    float64
	RecentAvg float64 // mean over the most recent observations
}

// TaskRelationship is a directed edge: FromTaskID precedes ToTaskID.
// Delay is set either explicitly by the extraction or synthesized by the
// historical enhancer; an explicit delay is never overwritten.
type TaskRelationship struct {
	FromTaskID uuid.UUID
	ToTaskID   uuid.UUID
	Type       TaskRelationType
	Delay      *Duration
	Gap        *GapStats
}

// IsPrecedence reports whether the edge imposes ordering for date
// computation. PARALLEL edges are annotations only.
func (r *TaskRelationship) IsPrecedence() bool {
	return r.Type == RelationSequential || r.Type == RelationDelay
}
