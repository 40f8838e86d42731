package interfaces

import (
	"context"

	"github.com/m-mizutani/sweeper/pkg/domain/model"
)

// CleanupUseCase defines the interface for release cleanup runs
type CleanupUseCase interface {
	// Plan fetches the release list and partitions it against the target
	Plan(ctx context.Context) (*model.ReconcileResult, error)

	// Execute deletes every candidate, one outcome per candidate in order
	Execute(ctx context.Context, toDelete []model.Release) []model.DeletionOutcome

	// Run performs a full plan-execute-summarize cycle
	Run(ctx context.Context) (*model.RunSummary, error)
}

// WebhookUseCase defines the interface for webhook event processing
type WebhookUseCase interface {
	// ProcessEvent processes a webhook event
	ProcessEvent(ctx context.Context, event *model.WebhookEvent) error
}

// Notifier delivers a run summary to an external channel
type Notifier interface {
	// NotifySummary posts the summary of a finished cleanup run
	NotifySummary(ctx context.Context, summary *model.RunSummary) error
}
