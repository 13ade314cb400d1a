package main

import (
	"context"
	"errors"
	nethttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"kotoba/backend/internal/handler"
	transport "kotoba/backend/internal/http"
	"kotoba/backend/internal/logger"
	"kotoba/backend/internal/scheduler"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(ctx *commandContext) *cobra.Command {
	var noScheduler bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the daily summary scheduler",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if cfg.Job.Enabled && !noScheduler {
				sched, err := startScheduler(a)
				if err != nil {
					return err
				}
				defer sched.Stop()
			}

			router := transport.NewRouter(
				a.auth,
				handler.NewAuthHandler(a.auth),
				handler.NewTranslationHandler(a.trans),
				handler.NewSummaryHandler(a.summary),
				cfg.StaticDir,
			)

			g, gctx := errgroup.WithContext(runCtx)
			g.Go(func() error {
				logger.Info("server started", "module", "http", "action", "start", "resource", "server", "result", "ok", "addr", cfg.Addr)
				if err := router.Start(cfg.Addr); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
					return err
				}
				return nil
			})
			g.Go(func() error {
				<-gctx.Done()
				logger.Info("server stopping", "module", "http", "action", "stop", "resource", "server", "result", "ok")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				return router.Shutdown(shutdownCtx)
			})
			return g.Wait()
		},
	}
	cmd.Flags().BoolVar(&noScheduler, "no-scheduler", false, "Serve the API without the daily summary job")
	return cmd
}

func newCronCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "cron",
		Short: "Run only the daily summary scheduler",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			sched, err := startScheduler(a)
			if err != nil {
				return err
			}
			<-runCtx.Done()
			sched.Stop()
			return nil
		},
	}
}

func startScheduler(a *app) (*scheduler.Scheduler, error) {
	sched, err := scheduler.New(a.job, a.cfg.Job.Schedule, a.loc)
	if err != nil {
		return nil, err
	}
	sched.Start()
	return sched, nil
}
