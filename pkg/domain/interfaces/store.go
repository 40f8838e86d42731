package interfaces

import (
	"context"

	"github.com/m-mizutani/sweeper/pkg/domain/model"
)

// ReleaseStore defines operations on the remote release collection
type ReleaseStore interface {
	// ListReleases returns every release of the repository in listing order
	ListReleases(ctx context.Context) ([]model.Release, error)

	// DeleteRelease permanently deletes a release by its store-assigned ID
	DeleteRelease(ctx context.Context, id int64) error
}
