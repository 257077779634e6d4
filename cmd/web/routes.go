package main

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	mw "dormroomstudios.com/web/internal/middleware"
)

// newRouter mounts the page routes and the ambient endpoints.
func newRouter(s *site, logger *zap.Logger, publicDir string, dev bool) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP.
	r.Use(middleware.RealIP)
	r.Use(mw.Logger(logger))
	r.Use(mw.Recoverer)
	r.Use(middleware.GetHead)
	r.Use(middleware.Compress(5))
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Handle("/assets/*", http.StripPrefix("/assets", mw.AssetsWithCache(filepath.Join(publicDir, "assets"), dev)))

	r.Get("/", s.HomeHandler)
	r.Get("/games", s.GamesHandler)
	r.Get("/games/{id}", s.GameHandler)
	r.Get("/about", s.AboutHandler)
	r.Get("/news", s.NewsHandler)

	r.NotFound(s.NotFoundHandler)
	return r
}
