package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"construction-visit-analysis/internal/schedule"
)

// validateGraph re-checks every parallel group against the stricter
// post-enhancement rules. Failing groups are downgraded to a sequential
// chain in their stored member order; validation never fails the schedule.
func (uc *implUseCase) validateGraph(ctx context.Context, g *schedule.ScheduleGraph) {
	seen := make(map[uuid.UUID]bool)
	var kept [][]uuid.UUID
	downgraded := 0

	for _, group := range g.ParallelGroups {
		reason := uc.groupInfeasible(g, group, uc.th.ValidateParallelCeilingDays, true)
		if reason == "" {
			if overlap := firstOverlap(group, seen); overlap != uuid.Nil {
				t, _ := g.Task(overlap)
				reason = fmt.Sprintf("task %q already belongs to another parallel group", t.Name)
			}
		}

		if reason == "" {
			for _, id := range group {
				seen[id] = true
			}
			kept = append(kept, group)
			continue
		}

		uc.downgradeGroup(g, group, reason)
		downgraded++
	}

	g.ParallelGroups = kept
	uc.l.Infof(ctx, "schedule.validateGraph: kept=%d downgraded=%d", len(kept), downgraded)
}

// downgradeGroup replaces a rejected parallel group with a chain of
// sequential edges over its members in stored order.
func (uc *implUseCase) downgradeGroup(g *schedule.ScheduleGraph, group []uuid.UUID, reason string) {
	for i := 0; i+1 < len(group); i++ {
		g.AddRelationship(&schedule.TaskRelationship{
			FromTaskID: group[i],
			ToTaskID:   group[i+1],
			Type:       schedule.RelationSequential,
		})
	}
	g.Warn(fmt.Sprintf("downgraded parallel group to sequential chain: %s", reason))
}

// firstOverlap returns the first member already claimed by a kept group, or
// uuid.Nil when the group is disjoint.
func firstOverlap(group []uuid.UUID, seen map[uuid.UUID]bool) uuid.UUID {
	for _, id := range group {
		if seen[id] {
			return id
		}
	}
	return uuid.Nil
}
