package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/sweeper/pkg/domain/interfaces"
	"github.com/m-mizutani/sweeper/pkg/domain/model"
)

type webhookUseCase struct {
	cleanup  interfaces.CleanupUseCase
	notifier interfaces.Notifier
}

// WebhookOption is a functional option for the webhook use case
type WebhookOption func(*webhookUseCase)

// WithNotifier posts the run summary after each triggered cleanup
func WithNotifier(n interfaces.Notifier) WebhookOption {
	return func(uc *webhookUseCase) {
		uc.notifier = n
	}
}

// NewWebhook creates a new instance of WebhookUseCase
func NewWebhook(cleanup interfaces.CleanupUseCase, opts ...WebhookOption) interfaces.WebhookUseCase {
	uc := &webhookUseCase{
		cleanup: cleanup,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// ProcessEvent processes a webhook event. A published release event starts
// a cleanup run; everything else is logged and ignored.
func (uc *webhookUseCase) ProcessEvent(ctx context.Context, event *model.WebhookEvent) error {
	logger := ctxlog.From(ctx)

	logger.Info("Processing webhook event",
		"id", event.ID,
		"type", event.Type,
		"action", event.Action,
		"repository", event.Repository,
		"sender", event.Sender,
	)

	if !event.TriggersCleanup() {
		logger.Debug("Event does not trigger cleanup",
			"type", event.Type,
			"action", event.Action,
		)
		return nil
	}

	summary, err := uc.cleanup.Run(ctx)
	if err != nil {
		return goerr.Wrap(err, "cleanup run triggered by webhook failed",
			goerr.V("delivery_id", event.ID),
		)
	}

	logger.Info("Cleanup run finished",
		"status", summary.Status,
		"deleted", summary.SuccessCount,
		"failed", summary.FailureCount,
		"target_found", summary.TargetFound,
	)

	if uc.notifier != nil {
		if err := uc.notifier.NotifySummary(ctx, summary); err != nil {
			// Notification failure must not fail the run
			logger.Warn("Failed to send run summary notification", "error", err)
		}
	}

	return nil
}
