package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/sweeper/pkg/cli/config"
	controller "github.com/m-mizutani/sweeper/pkg/controller/http"
	"github.com/m-mizutani/sweeper/pkg/domain/interfaces"
	githubinfra "github.com/m-mizutani/sweeper/pkg/infra/github"
	slackinfra "github.com/m-mizutani/sweeper/pkg/infra/slack"
	"github.com/m-mizutani/sweeper/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg config.Server
		githubCfg config.GitHub
		appCfg    config.GitHubApp
		targetCfg config.Target
		notifyCfg config.Notify
		sentryCfg config.Sentry

		allowMissingTarget bool
	)

	flags := append(serverCfg.Flags(), githubCfg.Flags()...)
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, targetCfg.Flags()...)
	flags = append(flags, notifyCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)
	flags = append(flags,
		&cli.BoolFlag{
			Name:        "allow-missing-target",
			Usage:       "Proceed with deleting every release when the target is not found",
			Destination: &allowMissingTarget,
			Sources:     cli.EnvVars("SWEEPER_ALLOW_MISSING_TARGET"),
		},
	)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server that runs cleanup on release webhook events",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if err := sentryCfg.Configure(); err != nil {
				return err
			}
			defer sentry.Flush(2 * time.Second)

			target, err := targetCfg.Configure()
			if err != nil {
				return err
			}

			store, err := newServeStore(&githubCfg, &appCfg)
			if err != nil {
				return err
			}

			logger.Info("Starting sweeper server",
				slog.String("addr", serverCfg.Addr),
				slog.String("owner", githubCfg.Owner),
				slog.String("repo", githubCfg.Repo),
				slog.String("keep_tag", target.Tag),
			)

			// Webhook runs are non-interactive, so the missing-target gate
			// is the flag alone
			cleanupUC := usecase.NewCleanup(store, target,
				usecase.WithAllowMissingTarget(allowMissingTarget),
			)

			var webhookOpts []usecase.WebhookOption
			if notifyCfg.SlackWebhookURL != "" {
				webhookOpts = append(webhookOpts, usecase.WithNotifier(slackinfra.NewNotifier(notifyCfg.SlackWebhookURL)))
			}
			webhookUC := usecase.NewWebhook(cleanupUC, webhookOpts...)

			server, err := controller.NewServer(
				ctx,
				webhookUC,
				controller.WithAddr(serverCfg.Addr),
				controller.WithWebhookSecret(appCfg.WebhookSecret),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}

// newServeStore builds the release store for server mode: GitHub App
// installation auth when an App ID is configured, token auth otherwise
func newServeStore(githubCfg *config.GitHub, appCfg *config.GitHubApp) (interfaces.ReleaseStore, error) {
	if appCfg.AppID == 0 {
		return githubinfra.NewClient(githubCfg.Token, githubCfg.Owner, githubCfg.Repo)
	}

	key, err := appCfg.PrivateKey()
	if err != nil {
		return nil, err
	}

	return githubinfra.NewAppClient(appCfg.AppID, appCfg.InstallationID, key, githubCfg.Owner, githubCfg.Repo)
}
