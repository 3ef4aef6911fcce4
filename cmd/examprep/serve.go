package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"examprep/internal/bootstrap"
	cachedto "examprep/internal/modules/cache/dto"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(opts *rootOptions) *cobra.Command {
	var listen string
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the app origin through the offline resource cache",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return withApp(ctx, opts, func(ctx context.Context, app *bootstrap.App) error {
				addr := app.Config.ListenAddr
				if listen != "" {
					addr = listen
				}
				return runServer(ctx, app, addr, cmd)
			})
		},
	}
	serve.Flags().StringVar(&listen, "listen", "", "listen address (overrides config)")
	return serve
}

func runServer(ctx context.Context, app *bootstrap.App, addr string, cmd *cobra.Command) error {
	logger := app.Logger
	installed, err := app.Cache.Install(ctx)
	if err != nil {
		return fmt.Errorf("install controller: %w", err)
	}
	activated, err := app.Cache.Activate(ctx)
	if err != nil {
		return fmt.Errorf("activate controller: %w", err)
	}
	logger.Info("controller active",
		zap.String("version", installed.Version),
		zap.Int("precached", len(installed.Cached)),
		zap.Strings("deleted", activated.Deleted))

	events := make(chan cachedto.Event)
	handler, err := app.HTTPHandler(events)
	if err != nil {
		return err
	}
	srv := &http.Server{Addr: addr, Handler: handler, ReadHeaderTimeout: 10 * time.Second}

	// The loop outlives the server so in-flight requests still get replies
	// while the server drains.
	loopCtx, stopLoop := context.WithCancel(context.Background())
	defer stopLoop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.Cache.Run(loopCtx, events)
	})
	g.Go(func() error {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "serving %s on http://%s\n", app.Config.Origin, addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		stopLoop()
		return err
	})
	err = g.Wait()

	if serr := app.Cache.Supersede(); serr != nil {
		logger.Debug("supersede controller", zap.Error(serr))
	}
	if terr := app.Cache.Terminate(); terr != nil {
		logger.Warn("terminate controller", zap.Error(terr))
	}
	logger.Info("controller stopped", zap.String("state", app.Cache.State()))
	return err
}
