package usecase

import "github.com/m-mizutani/sweeper/pkg/domain/model"

// Summarize aggregates a reconcile result and its deletion outcomes into a
// run summary. Pure; it never inspects the store.
//
// Status precedence: any failed deletion makes the run a partial failure;
// otherwise a missing target is flagged; otherwise the run is ok.
func Summarize(result *model.ReconcileResult, outcomes []model.DeletionOutcome, dryRun bool) *model.RunSummary {
	summary := &model.RunSummary{
		Kept:        result.Kept,
		TargetFound: result.TargetFound(),
		DryRun:      dryRun,
		Planned:     result.ToDelete,
		Outcomes:    outcomes,
	}

	for _, o := range outcomes {
		if o.Succeeded() {
			summary.SuccessCount++
		} else {
			summary.FailureCount++
		}
	}

	switch {
	case summary.FailureCount > 0:
		summary.Status = model.StatusPartialFailure
	case !summary.TargetFound:
		summary.Status = model.StatusTargetNotFound
	default:
		summary.Status = model.StatusOK
	}

	return summary
}
