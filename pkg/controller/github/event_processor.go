package github

import (
	"context"
	"time"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/sweeper/pkg/domain/interfaces"
	"github.com/m-mizutani/sweeper/pkg/domain/model"
)

// EventProcessor converts GitHub webhook payloads into domain events and
// forwards them to the webhook use case
type EventProcessor struct {
	webhookUC interfaces.WebhookUseCase
}

// NewEventProcessor creates a new GitHub event processor
func NewEventProcessor(webhookUC interfaces.WebhookUseCase) *EventProcessor {
	return &EventProcessor{
		webhookUC: webhookUC,
	}
}

// ProcessEvent processes a parsed GitHub webhook payload
func (p *EventProcessor) ProcessEvent(ctx context.Context, deliveryID, eventType string, payload interface{}) error {
	logger := ctxlog.From(ctx)

	event := &model.WebhookEvent{
		ID:         deliveryID,
		Type:       model.WebhookEventType(eventType),
		ReceivedAt: time.Now(),
	}

	switch e := payload.(type) {
	case *github.ReleaseEvent:
		event.Action = e.GetAction()
		event.Repository = e.GetRepo().GetFullName()
		event.Sender = e.GetSender().GetLogin()
	case *github.PingEvent:
		event.Type = model.EventTypePing
		logger.Info("Received ping event", "delivery_id", deliveryID)
	default:
		event.Type = model.EventTypeUnknown
		logger.Info("Ignoring unsupported event type",
			"event_type", eventType,
			"delivery_id", deliveryID,
		)
	}

	return p.webhookUC.ProcessEvent(ctx, event)
}
