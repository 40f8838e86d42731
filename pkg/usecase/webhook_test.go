package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/sweeper/pkg/domain/model"
	"github.com/m-mizutani/sweeper/pkg/usecase"
)

// MockNotifier records summaries it was asked to deliver
type MockNotifier struct {
	summaries []*model.RunSummary
	err       error
}

func (m *MockNotifier) NotifySummary(ctx context.Context, summary *model.RunSummary) error {
	m.summaries = append(m.summaries, summary)
	return m.err
}

func publishedEvent() *model.WebhookEvent {
	return &model.WebhookEvent{
		ID:         "delivery-1",
		Type:       model.EventTypeRelease,
		Action:     "published",
		Repository: "johnkord/toki-pona-anki",
		Sender:     "github-actions[bot]",
		ReceivedAt: time.Now(),
	}
}

func TestWebhook_ProcessEvent_TriggersCleanup(t *testing.T) {
	ctx := context.Background()

	mockStore := &MockReleaseStore{
		listReleasesFunc: func(ctx context.Context) ([]model.Release, error) {
			return testReleases(), nil
		},
	}
	cleanup := usecase.NewCleanup(mockStore, keepTarget())
	notifier := &MockNotifier{}

	uc := usecase.NewWebhook(cleanup, usecase.WithNotifier(notifier))

	err := uc.ProcessEvent(ctx, publishedEvent())
	gt.NoError(t, err)
	gt.Number(t, len(mockStore.deleteCalls)).Equal(3)

	gt.Number(t, len(notifier.summaries)).Equal(1)
	gt.Value(t, notifier.summaries[0].Status).Equal(model.StatusOK)
}

func TestWebhook_ProcessEvent_IgnoresOtherActions(t *testing.T) {
	ctx := context.Background()

	mockStore := &MockReleaseStore{
		listReleasesFunc: func(ctx context.Context) ([]model.Release, error) {
			t.Fatal("cleanup must not run for ignored events")
			return nil, nil
		},
	}
	cleanup := usecase.NewCleanup(mockStore, keepTarget())

	uc := usecase.NewWebhook(cleanup)

	event := publishedEvent()
	event.Action = "deleted"

	gt.NoError(t, uc.ProcessEvent(ctx, event))
	gt.Number(t, len(mockStore.deleteCalls)).Equal(0)
}

func TestWebhook_ProcessEvent_FetchErrorPropagates(t *testing.T) {
	ctx := context.Background()

	mockStore := &MockReleaseStore{
		listReleasesFunc: func(ctx context.Context) ([]model.Release, error) {
			return nil, errors.New("connection refused")
		},
	}
	cleanup := usecase.NewCleanup(mockStore, keepTarget())

	uc := usecase.NewWebhook(cleanup)

	err := uc.ProcessEvent(ctx, publishedEvent())
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("cleanup run triggered by webhook failed")
}

func TestWebhook_ProcessEvent_NotifierFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()

	mockStore := &MockReleaseStore{
		listReleasesFunc: func(ctx context.Context) ([]model.Release, error) {
			return testReleases(), nil
		},
	}
	cleanup := usecase.NewCleanup(mockStore, keepTarget())
	notifier := &MockNotifier{err: errors.New("slack is down")}

	uc := usecase.NewWebhook(cleanup, usecase.WithNotifier(notifier))

	gt.NoError(t, uc.ProcessEvent(ctx, publishedEvent()))
	gt.Number(t, len(notifier.summaries)).Equal(1)
}
