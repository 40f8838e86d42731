package github

import (
	"context"
	"net/http"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/sweeper/pkg/domain/interfaces"
	"github.com/m-mizutani/sweeper/pkg/domain/model"
	"github.com/m-mizutani/sweeper/pkg/domain/types"
)

type client struct {
	githubClient *github.Client
	owner        string
	repo         string
}

// NewClient creates a release store backed by the GitHub Releases API,
// authenticated with a personal access or Actions token
func NewClient(token, owner, repo string) (interfaces.ReleaseStore, error) {
	if token == "" {
		return nil, goerr.New("no GitHub token provided",
			goerr.T(types.ErrTagAuth),
		)
	}
	if owner == "" || repo == "" {
		return nil, goerr.New("repository owner and name are required",
			goerr.T(types.ErrTagConfig),
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}

	return &client{
		githubClient: github.NewClient(nil).WithAuthToken(token),
		owner:        owner,
		repo:         repo,
	}, nil
}

// NewAppClient creates a release store authenticated as a GitHub App
// installation; used by the webhook server
func NewAppClient(appID, installationID int64, privateKey []byte, owner, repo string) (interfaces.ReleaseStore, error) {
	if owner == "" || repo == "" {
		return nil, goerr.New("repository owner and name are required",
			goerr.T(types.ErrTagConfig),
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}

	itr, err := ghinstallation.New(http.DefaultTransport, appID, installationID, privateKey)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GitHub App transport",
			goerr.T(types.ErrTagAuth),
			goerr.V("app_id", appID),
		)
	}

	return &client{
		githubClient: github.NewClient(&http.Client{Transport: itr}),
		owner:        owner,
		repo:         repo,
	}, nil
}

// ListReleases returns every release of the repository in listing order,
// following pagination
func (c *client) ListReleases(ctx context.Context) ([]model.Release, error) {
	var releases []model.Release

	opts := &github.ListOptions{PerPage: 100}
	for {
		page, resp, err := c.githubClient.Repositories.ListReleases(ctx, c.owner, c.repo, opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list releases",
				goerr.T(types.ErrTagFetch),
				goerr.V("owner", c.owner),
				goerr.V("repo", c.repo),
			)
		}

		for _, r := range page {
			releases = append(releases, model.Release{
				ID:   r.GetID(),
				Name: r.GetName(),
				Tag:  r.GetTagName(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return releases, nil
}

// DeleteRelease permanently deletes a release by ID
func (c *client) DeleteRelease(ctx context.Context, id int64) error {
	if _, err := c.githubClient.Repositories.DeleteRelease(ctx, c.owner, c.repo, id); err != nil {
		return goerr.Wrap(err, "failed to delete release",
			goerr.T(types.ErrTagDeletion),
			goerr.V("owner", c.owner),
			goerr.V("repo", c.repo),
			goerr.V("release_id", id),
		)
	}

	return nil
}
