package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/sweeper/pkg/domain/interfaces"
	"github.com/m-mizutani/sweeper/pkg/domain/model"
	"github.com/m-mizutani/sweeper/pkg/domain/types"
)

type cleanupUseCase struct {
	store  interfaces.ReleaseStore
	target model.Target

	dryRun             bool
	allowMissingTarget bool
}

// CleanupOption is a functional option for the cleanup use case
type CleanupOption func(*cleanupUseCase)

// WithDryRun plans and reports without deleting anything
func WithDryRun(enabled bool) CleanupOption {
	return func(uc *cleanupUseCase) {
		uc.dryRun = enabled
	}
}

// WithAllowMissingTarget permits deleting every release when no release
// matches the target. Without it, a run with a missing target performs
// zero deletions.
func WithAllowMissingTarget(enabled bool) CleanupOption {
	return func(uc *cleanupUseCase) {
		uc.allowMissingTarget = enabled
	}
}

// NewCleanup creates a new instance of CleanupUseCase
func NewCleanup(store interfaces.ReleaseStore, target model.Target, opts ...CleanupOption) interfaces.CleanupUseCase {
	uc := &cleanupUseCase{
		store:  store,
		target: target,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Plan fetches the full release list and partitions it against the target
func (uc *cleanupUseCase) Plan(ctx context.Context) (*model.ReconcileResult, error) {
	logger := ctxlog.From(ctx)

	releases, err := uc.store.ListReleases(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list releases",
			goerr.T(types.ErrTagFetch),
			goerr.V("target_name", uc.target.Name),
			goerr.V("target_tag", uc.target.Tag),
		)
	}

	result := Reconcile(releases, uc.target)

	logger.Info("Planned release cleanup",
		"total", len(releases),
		"to_delete", len(result.ToDelete),
		"target_found", result.TargetFound(),
		"target_name", uc.target.Name,
		"target_tag", uc.target.Tag,
	)

	if !result.TargetFound() {
		logger.Warn("Target release not found; every release is a deletion candidate",
			"target_name", uc.target.Name,
			"target_tag", uc.target.Tag,
		)
	}

	return result, nil
}

// Execute deletes every candidate sequentially. A failed deletion is
// recorded and the batch continues; one outcome is produced per candidate
// in candidate order. Cancelling the context stops issuing deletions, and
// the remaining candidates are recorded as failed with the cancellation
// error so the ledger stays total.
func (uc *cleanupUseCase) Execute(ctx context.Context, toDelete []model.Release) []model.DeletionOutcome {
	logger := ctxlog.From(ctx)

	outcomes := make([]model.DeletionOutcome, 0, len(toDelete))

	for i, release := range toDelete {
		if err := ctx.Err(); err != nil {
			logger.Warn("Cleanup cancelled; remaining deletions skipped",
				"attempted", i,
				"remaining", len(toDelete)-i,
			)
			for _, rest := range toDelete[i:] {
				outcomes = append(outcomes, newFailedOutcome(rest, err))
			}
			break
		}

		if err := uc.store.DeleteRelease(ctx, release.ID); err != nil {
			wrapped := goerr.Wrap(err, "failed to delete release",
				goerr.T(types.ErrTagDeletion),
				goerr.V("release_id", release.ID),
				goerr.V("release_tag", release.Tag),
			)
			logger.Error("Failed to delete release",
				"error", wrapped,
				"release_id", release.ID,
				"release_name", release.Name,
				"release_tag", release.Tag,
			)
			outcomes = append(outcomes, newFailedOutcome(release, wrapped))
			continue
		}

		logger.Info("Deleted release",
			"release_id", release.ID,
			"release_name", release.Name,
			"release_tag", release.Tag,
		)
		outcomes = append(outcomes, model.DeletionOutcome{Release: release})
	}

	return outcomes
}

// Run performs a full plan-execute-summarize cycle without interactive
// gates. Used by the webhook-triggered mode and by `cleanup --yes`.
func (uc *cleanupUseCase) Run(ctx context.Context) (*model.RunSummary, error) {
	logger := ctxlog.From(ctx)

	result, err := uc.Plan(ctx)
	if err != nil {
		return nil, err
	}

	if !result.TargetFound() && !uc.allowMissingTarget {
		logger.Warn("Refusing to delete all releases without explicit permission")
		return Summarize(result, nil, uc.dryRun), nil
	}

	if uc.dryRun {
		logger.Info("Dry run; no releases deleted", "planned", len(result.ToDelete))
		return Summarize(result, nil, true), nil
	}

	outcomes := uc.Execute(ctx, result.ToDelete)
	return Summarize(result, outcomes, false), nil
}

func newFailedOutcome(release model.Release, err error) model.DeletionOutcome {
	return model.DeletionOutcome{
		Release: release,
		Error:   err.Error(),
		Err:     err,
	}
}
