package slack

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/sweeper/pkg/domain/interfaces"
	"github.com/m-mizutani/sweeper/pkg/domain/model"
	"github.com/slack-go/slack"
)

type notifier struct {
	webhookURL string
}

// NewNotifier creates a notifier that posts run summaries to a Slack
// incoming webhook
func NewNotifier(webhookURL string) interfaces.Notifier {
	return &notifier{
		webhookURL: webhookURL,
	}
}

// NotifySummary posts the summary of a finished cleanup run
func (n *notifier) NotifySummary(ctx context.Context, summary *model.RunSummary) error {
	msg := &slack.WebhookMessage{
		Text: formatSummary(summary),
	}

	if err := slack.PostWebhookContext(ctx, n.webhookURL, msg); err != nil {
		return goerr.Wrap(err, "failed to post run summary to Slack")
	}

	return nil
}

func formatSummary(summary *model.RunSummary) string {
	var b strings.Builder

	switch summary.Status {
	case model.StatusOK:
		b.WriteString(":white_check_mark: Release cleanup finished")
	case model.StatusPartialFailure:
		b.WriteString(":warning: Release cleanup finished with failures")
	case model.StatusTargetNotFound:
		b.WriteString(":question: Release cleanup: target release not found")
	}

	if summary.DryRun {
		b.WriteString(" (dry run)")
	}
	b.WriteString("\n")

	if summary.Kept != nil {
		fmt.Fprintf(&b, "Kept: %s (tag: %s)\n", summary.Kept.Name, summary.Kept.Tag)
	}
	fmt.Fprintf(&b, "Deleted: %d, Failed: %d\n", summary.SuccessCount, summary.FailureCount)

	for _, o := range summary.Failures() {
		fmt.Fprintf(&b, "• %s (tag: %s): %s\n", o.Release.Name, o.Release.Tag, o.Error)
	}

	return b.String()
}
