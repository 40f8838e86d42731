package usecase

import "github.com/m-mizutani/sweeper/pkg/domain/model"

// Reconcile partitions the fetched release list against the target. The
// first release matching the target (in listing order) is kept; every
// other release becomes a deletion candidate, listing order preserved.
// When nothing matches, Kept is nil and every release is a candidate.
//
// The function is pure and visits each release exactly once, so the same
// input always yields the same partition. A duplicate match later in the
// list is treated as a deletion candidate, not a second keeper.
func Reconcile(releases []model.Release, target model.Target) *model.ReconcileResult {
	result := &model.ReconcileResult{
		ToDelete: make([]model.Release, 0, len(releases)),
	}

	for i := range releases {
		if result.Kept == nil && target.Matches(&releases[i]) {
			kept := releases[i]
			result.Kept = &kept
			continue
		}
		result.ToDelete = append(result.ToDelete, releases[i])
	}

	return result
}
