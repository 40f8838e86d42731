package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// GitHubApp holds GitHub App credentials for the webhook server
type GitHubApp struct {
	AppID          int64
	InstallationID int64
	PrivateKeyPath string
	WebhookSecret  string `masq:"secret"`
}

// Flags returns CLI flags for GitHub App configuration
func (c *GitHubApp) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID (token auth is used when unset)",
			Destination: &c.AppID,
			Sources:     cli.EnvVars("SWEEPER_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-installation-id",
			Usage:       "GitHub App installation ID",
			Destination: &c.InstallationID,
			Sources:     cli.EnvVars("SWEEPER_GITHUB_INSTALLATION_ID"),
		},
		&cli.StringFlag{
			Name:        "github-private-key",
			Usage:       "Path to GitHub App private key (PEM)",
			Destination: &c.PrivateKeyPath,
			Sources:     cli.EnvVars("SWEEPER_GITHUB_PRIVATE_KEY"),
		},
		&cli.StringFlag{
			Name:        "github-webhook-secret",
			Usage:       "GitHub webhook secret",
			Required:    true,
			Destination: &c.WebhookSecret,
			Sources:     cli.EnvVars("SWEEPER_GITHUB_WEBHOOK_SECRET"),
		},
	}
}

// PrivateKey reads the App private key from the configured path
func (c *GitHubApp) PrivateKey() ([]byte, error) {
	key, err := os.ReadFile(c.PrivateKeyPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read GitHub App private key",
			goerr.V("path", c.PrivateKeyPath),
		)
	}
	return key, nil
}
