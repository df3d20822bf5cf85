package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/oncall-override/pkg/cli/config"
	controller "github.com/secmon-lab/oncall-override/pkg/controller/http"
	slackCtrl "github.com/secmon-lab/oncall-override/pkg/controller/slack"
	"github.com/secmon-lab/oncall-override/pkg/service/directory"
	"github.com/secmon-lab/oncall-override/pkg/usecase"
	"github.com/secmon-lab/oncall-override/pkg/utils/async"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

type validator interface {
	Validate() error
}

func cmdServe() *cli.Command {
	var (
		serverCfg config.Server
		slackCfg  config.Slack
		rootlyCfg config.Rootly
		cacheCfg  config.Cache
		sentryCfg config.Sentry
		policyCfg config.Policy
	)

	flags := joinFlags(
		serverCfg.Flags(),
		slackCfg.Flags(),
		rootlyCfg.Flags(),
		cacheCfg.Flags(),
		sentryCfg.Flags(),
		policyCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server receiving Slack webhooks",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting oncall-override server",
				slog.Any("server", serverCfg),
				slog.Any("slack", slackCfg),
				slog.Any("rootly", rootlyCfg),
				slog.Any("cache", cacheCfg),
				slog.Any("sentry", sentryCfg),
				slog.Any("policy", policyCfg),
			)

			if err := validateAll(&serverCfg, &slackCfg, &rootlyCfg, &cacheCfg); err != nil {
				return err
			}
			if slackCfg.SigningSecret == "" {
				logger.Warn("Slack signing secret is not set. Every webhook will be rejected with 401")
			}
			if rootlyCfg.APIKey == "" || rootlyCfg.ScheduleID == "" {
				logger.Warn("Rootly API key or schedule ID is not set. Override requests will fail until configured")
			}

			flush, err := sentryCfg.Configure()
			if err != nil {
				return err
			}
			defer flush()

			policy, err := policyCfg.Configure()
			if err != nil {
				return err
			}

			store, err := cacheCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if err := store.Close(); err != nil {
					logger.Warn("Failed to close cache store", "error", err)
				}
			}()

			queue := async.NewQueue()
			messenger := slackCfg.Configure()
			rootlyClient := rootlyCfg.Configure()
			cachedDirectory := directory.NewCached(rootlyClient, store, queue, directory.WithTTL(cacheCfg.TTL))

			overrideUC := usecase.NewOverrideUseCase(cachedDirectory, messenger, usecase.OverrideConfig{
				ScheduleID:      rootlyCfg.Schedule(),
				NotifyChannelID: slackCfg.NotifyChannel(),
				Policy:          policy,
			})
			interactionUC := usecase.NewSlackInteraction(overrideUC, cachedDirectory, messenger, queue, policy)

			server := controller.NewServer(
				ctx,
				serverCfg.Addr,
				slackCfg.SigningSecret,
				slackCtrl.NewHandler(interactionUC),
				controller.WithRateLimit(serverCfg.RateLimit, serverCfg.RateBurst),
			)

			sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			eg, egCtx := errgroup.WithContext(sigCtx)
			eg.Go(func() error {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return goerr.Wrap(err, "HTTP server error")
				}
				return nil
			})
			eg.Go(func() error {
				<-egCtx.Done()
				logger.Info("Shutting down...")

				shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}
				if err := queue.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to drain background tasks")
				}
				return nil
			})

			if err := eg.Wait(); err != nil {
				return err
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}

func validateAll(configs ...validator) error {
	for _, cfg := range configs {
		if err := cfg.Validate(); err != nil {
			return goerr.Wrap(err, "invalid configuration")
		}
	}
	return nil
}
