package config

import "github.com/urfave/cli/v3"

// GitHub holds repository and token configuration. The token is resolved
// from the first non-empty environment variable in the Sources chain; it
// is never logged (masq redacts it).
type GitHub struct {
	Token string `masq:"secret"`
	Owner string
	Repo  string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token with repo permissions",
			Destination: &c.Token,
			Sources:     cli.EnvVars("SWEEPER_GITHUB_TOKEN", "GITHUB_TOKEN", "GH_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "owner",
			Usage:       "Repository owner",
			Required:    true,
			Destination: &c.Owner,
			Sources:     cli.EnvVars("SWEEPER_OWNER"),
		},
		&cli.StringFlag{
			Name:        "repo",
			Usage:       "Repository name",
			Required:    true,
			Destination: &c.Repo,
			Sources:     cli.EnvVars("SWEEPER_REPO"),
		},
	}
}
