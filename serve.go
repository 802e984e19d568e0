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

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kyrah/portfolio/internal/analytics"
	"github.com/kyrah/portfolio/internal/config"
	"github.com/kyrah/portfolio/internal/contact"
	"github.com/kyrah/portfolio/internal/content"
	"github.com/kyrah/portfolio/internal/server"
	"github.com/kyrah/portfolio/internal/ui"
)

const (
	shutdownTimeout = 10 * time.Second
	cleanupInterval = 24 * time.Hour
	recorderBuffer  = 256
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address, overrides PORT and the config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	gin.SetMode(cfg.Mode)

	log, err := newLogger(cfg.Mode)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync()

	site, err := content.Load(cfg.ContentPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		store    *analytics.Store
		recorder *analytics.Recorder
	)
	if cfg.Analytics.Enabled {
		store, err = analytics.Open(ctx, cfg.DatabasePath)
		if err != nil {
			return err
		}
		defer store.Close()
		recorder = analytics.NewRecorder(store, recorderBuffer, log)
		defer recorder.Close()
	}

	sessions := ui.NewSessions(cfg.Sessions.TTL)
	srv := server.New(server.Options{
		Config:    cfg,
		Site:      site,
		Sessions:  sessions,
		Submitter: contact.NewSubmitter(cfg.Contact.SubmitDelay, newDelivery(cfg, log), log),
		Store:     store,
		Recorder:  recorder,
		Logger:    log,
	})

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      config.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server starting", zap.String("addr", cfg.Addr), zap.String("mode", cfg.Mode))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		sessions.Run(gctx, cfg.Sessions.SweepInterval, func(removed int) {
			log.Info("expired sessions removed", zap.Int("removed", removed))
		})
		return nil
	})
	if store != nil {
		g.Go(func() error {
			runRetention(gctx, store, cfg.Analytics.Retention, log)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("server stopped")
	return nil
}

func newLogger(mode string) (*zap.Logger, error) {
	if mode == gin.ReleaseMode {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func newDelivery(cfg *config.Config, log *zap.Logger) contact.Delivery {
	if cfg.Contact.Delivery == config.DeliverySMTP {
		return contact.NewSMTPDelivery(cfg.Contact.SMTP, log)
	}
	return contact.NewLogDelivery(log)
}

// runRetention deletes analytics rows past retention at start-up and then
// once a day until ctx is done.
func runRetention(ctx context.Context, store *analytics.Store, retention time.Duration, log *zap.Logger) {
	cleanup := func() {
		removed, err := store.Cleanup(ctx, retention)
		if err != nil {
			if ctx.Err() == nil {
				log.Error("error cleaning up old visitor data", zap.Error(err))
			}
			return
		}
		if removed > 0 {
			log.Info("privacy cleanup", zap.Int64("removed", removed), zap.Duration("retention", retention))
		}
	}

	cleanup()
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cleanup()
		}
	}
}
