package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"dormroomstudios.com/web/internal/catalog"
	"dormroomstudios.com/web/internal/cms"
	"dormroomstudios.com/web/internal/config"
	"dormroomstudios.com/web/internal/handlers"
	"dormroomstudios.com/web/internal/observability"
	"dormroomstudios.com/web/internal/seo"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "web: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Flags override environment
	flag.StringVar(&cfg.Server.Addr, "addr", cfg.Server.Addr, "HTTP listen address")
	flag.StringVar(&cfg.Paths.Templates, "templates", cfg.Paths.Templates, "templates directory")
	flag.StringVar(&cfg.Paths.Public, "public", cfg.Paths.Public, "public assets directory")
	flag.StringVar(&cfg.Paths.Content, "content", cfg.Paths.Content, "markdown content directory")
	flag.StringVar(&cfg.Catalog.File, "catalog", cfg.Catalog.File, "optional YAML game catalog")
	flag.Parse()

	logger, err := observability.NewLogger(cfg.LogLevel, cfg.Dev)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	s, err := newSite(cfg)
	if err != nil {
		logger.Error("startup failed", zap.Error(err))
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           newRouter(s, logger, cfg.Paths.Public, cfg.Dev),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("web listening",
			zap.String("addr", cfg.Server.Addr),
			zap.Bool("dev", cfg.Dev),
			zap.Int("games", s.games.Len()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			logger.Error("listen failed", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
		return err
	}
	logger.Info("server stopped")
	return nil
}

// newSite assembles the catalog, content client and templates described by cfg.
func newSite(cfg config.Config) (*site, error) {
	games := catalog.DefaultGames()
	if cfg.Catalog.File != "" {
		loaded, err := catalog.LoadFile(cfg.Catalog.File)
		if err != nil {
			return nil, err
		}
		games = loaded
	}
	store, err := catalog.NewStore(games, catalog.WithFeaturedInLatest(cfg.Catalog.FeaturedInLatest))
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	views, err := newRenderer(cfg.Paths.Templates, cfg.Dev)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	content := cms.NewClient(cfg.Paths.Content)
	content.SetCacheTTL(cfg.News.CacheTTL)

	return &site{
		games:   store,
		content: content,
		layout: handlers.Layout{
			Site: seo.Site{
				Name:    cfg.Site.Name,
				BaseURL: cfg.Site.BaseURL,
				Twitter: cfg.Site.Twitter,
			},
			Analytics: handlers.Analytics{
				GA4MeasurementID: cfg.Analytics.GA4MeasurementID,
				GTMContainerID:   cfg.Analytics.GTMContainerID,
				Debug:            cfg.Analytics.Debug,
			},
		},
		views:       views,
		latestLimit: cfg.Catalog.LatestLimit,
		newsOnHome:  cfg.News.HomeLimit,
		now:         time.Now,
	}, nil
}
