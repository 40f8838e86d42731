package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/sweeper/pkg/cli/config"
	githubinfra "github.com/m-mizutani/sweeper/pkg/infra/github"
	slackinfra "github.com/m-mizutani/sweeper/pkg/infra/slack"
	"github.com/m-mizutani/sweeper/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdCleanup() *cli.Command {
	var (
		githubCfg config.GitHub
		targetCfg config.Target
		notifyCfg config.Notify

		configPath         string
		yes                bool
		dryRun             bool
		allowMissingTarget bool
		output             string
	)

	flags := append(githubCfg.Flags(), targetCfg.Flags()...)
	flags = append(flags, notifyCfg.Flags()...)
	flags = append(flags,
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to TOML config file",
			Destination: &configPath,
			Sources:     cli.EnvVars("SWEEPER_CONFIG"),
		},
		&cli.BoolFlag{
			Name:        "yes",
			Aliases:     []string{"y"},
			Usage:       "Skip the confirmation prompt",
			Destination: &yes,
			Sources:     cli.EnvVars("SWEEPER_YES"),
		},
		&cli.BoolFlag{
			Name:        "dry-run",
			Usage:       "Show what would be deleted without deleting anything",
			Destination: &dryRun,
			Sources:     cli.EnvVars("SWEEPER_DRY_RUN"),
		},
		&cli.BoolFlag{
			Name:        "allow-missing-target",
			Usage:       "Proceed with deleting every release when the target is not found",
			Destination: &allowMissingTarget,
			Sources:     cli.EnvVars("SWEEPER_ALLOW_MISSING_TARGET"),
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Output format (text, json)",
			Value:       "text",
			Destination: &output,
			Sources:     cli.EnvVars("SWEEPER_OUTPUT"),
		},
	)

	return &cli.Command{
		Name:    "cleanup",
		Aliases: []string{"c"},
		Usage:   "Delete every release of the repository except the target",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if configPath != "" {
				file, err := config.LoadFile(configPath)
				if err != nil {
					return err
				}
				file.ApplyTo(&targetCfg)
				if file.Policy.AllowMissingTarget {
					allowMissingTarget = true
				}
			}

			if output != "text" && output != "json" {
				return goerr.New("invalid output format", goerr.V("output", output))
			}

			target, err := targetCfg.Configure()
			if err != nil {
				return err
			}

			store, err := githubinfra.NewClient(githubCfg.Token, githubCfg.Owner, githubCfg.Repo)
			if err != nil {
				return err
			}

			logger.Info("Starting release cleanup",
				"owner", githubCfg.Owner,
				"repo", githubCfg.Repo,
				"keep_name", target.Name,
				"keep_tag", target.Tag,
				"match", target.Mode,
				"dry_run", dryRun,
			)

			uc := usecase.NewCleanup(store, target,
				usecase.WithDryRun(dryRun),
				usecase.WithAllowMissingTarget(allowMissingTarget),
			)

			result, err := uc.Plan(ctx)
			if err != nil {
				return err
			}

			out := os.Stdout
			if output == "text" {
				renderPlan(out, result)
			}

			if len(result.ToDelete) == 0 {
				summary := usecase.Summarize(result, nil, dryRun)
				return renderResult(out, summary, output)
			}

			if !result.TargetFound() && !allowMissingTarget {
				if yes || dryRun {
					// Non-interactive run without explicit permission:
					// deleting every release is refused, not an error
					logger.Warn("Target release not found; pass --allow-missing-target to delete all releases")
					summary := usecase.Summarize(result, nil, dryRun)
					return renderResult(out, summary, output)
				}
				if !confirm(os.Stdin, out, "The release to keep was not found. Delete ALL releases anyway? (y/N): ") {
					summary := usecase.Summarize(result, nil, dryRun)
					return renderResult(out, summary, output)
				}
			}

			if !yes && !dryRun {
				if !confirm(os.Stdin, out, "Are you sure you want to delete these releases? (y/N): ") {
					logger.Info("Aborted by user; no releases deleted")
					summary := usecase.Summarize(result, nil, false)
					return renderResult(out, summary, output)
				}
			}

			summary := usecase.Summarize(result, nil, true)
			if !dryRun {
				outcomes := uc.Execute(ctx, result.ToDelete)
				summary = usecase.Summarize(result, outcomes, false)
			}

			if notifyCfg.SlackWebhookURL != "" {
				notifier := slackinfra.NewNotifier(notifyCfg.SlackWebhookURL)
				if err := notifier.NotifySummary(ctx, summary); err != nil {
					logger.Warn("Failed to send run summary notification", "error", err)
				}
			}

			if err := renderResult(out, summary, output); err != nil {
				return err
			}

			if summary.FailureCount > 0 {
				return goerr.New("some releases could not be deleted",
					goerr.V("failed", summary.FailureCount),
					goerr.V("deleted", summary.SuccessCount),
				)
			}

			return nil
		},
	}
}
