package slack_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/sweeper/pkg/domain/model"
	slackinfra "github.com/m-mizutani/sweeper/pkg/infra/slack"
)

func TestNotifier_NotifySummary(t *testing.T) {
	var received []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatal(err)
		}
		received = body
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	summary := &model.RunSummary{
		Status:      model.StatusPartialFailure,
		Kept:        &model.Release{ID: 1, Name: "deck", Tag: "v1"},
		TargetFound: true,
		Outcomes: []model.DeletionOutcome{
			{Release: model.Release{ID: 2, Name: "old", Tag: "v0"}},
			{Release: model.Release{ID: 3, Name: "older", Tag: "v00"}, Error: "boom", Err: errors.New("boom")},
		},
		SuccessCount: 1,
		FailureCount: 1,
	}

	n := slackinfra.NewNotifier(srv.URL)
	gt.NoError(t, n.NotifySummary(context.Background(), summary))

	var msg struct {
		Text string `json:"text"`
	}
	gt.NoError(t, json.Unmarshal(received, &msg))
	gt.String(t, msg.Text).Contains("Kept: deck (tag: v1)")
	gt.String(t, msg.Text).Contains("Deleted: 1, Failed: 1")
	gt.String(t, msg.Text).Contains("older (tag: v00): boom")
}

func TestNotifier_WebhookError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid_payload", http.StatusBadRequest)
	}))
	defer srv.Close()

	n := slackinfra.NewNotifier(srv.URL)
	err := n.NotifySummary(context.Background(), &model.RunSummary{Status: model.StatusOK})
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("failed to post run summary")
}
