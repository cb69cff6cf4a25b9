package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"krushnagate.dev/portfolio/internal/config"
	"krushnagate.dev/portfolio/internal/logging"
	mw "krushnagate.dev/portfolio/internal/middleware"
)

func newServeCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, flags, map[string]string{
				"server.addr": "addr",
				"server.dev":  "dev",
				"log.level":   "log-level",
			})
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Log.Level, cfg.Server.Dev)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if ephemeral := mw.ConfigureSessions(cfg.Session.Key, cfg.Session.Secure); ephemeral {
				logger.Warn("session.key not set; sessions will not survive a restart")
			}

			a, err := newApp(cfg, logger)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
	cmd.Flags().String("addr", config.DefaultAddr, "HTTP listen address")
	cmd.Flags().Bool("dev", false, "reparse templates on every request and disable asset caching")
	cmd.Flags().String("log-level", config.DefaultLogLevel, "log level: debug, info, warn or error")
	return cmd
}

// serve runs until ctx is cancelled, then drains in-flight requests.
func (a *app) serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.cfg.Server.Addr,
		Handler:           a.routes(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      a.cfg.Server.Timeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("listening",
			zap.String("addr", srv.Addr),
			zap.Bool("dev", a.cfg.Server.Dev),
			zap.String("env", a.cfg.Server.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
