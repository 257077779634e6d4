package main

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"dormroomstudios.com/web/internal/catalog"
	"dormroomstudios.com/web/internal/cms"
	"dormroomstudios.com/web/internal/handlers"
	"dormroomstudios.com/web/internal/observability"
)

// pageTemplate is the layout every page renders through; it switches on the payload.
const pageTemplate = "base"

// site wires the catalog, content and templates into page handlers.
type site struct {
	games   *catalog.Store
	content *cms.Client
	layout  handlers.Layout
	views   *renderer

	latestLimit int
	newsOnHome  int
	now         func() time.Time
}

// HomeHandler renders the landing page: featured game, latest games and news teasers.
func (s *site) HomeHandler(w http.ResponseWriter, r *http.Request) {
	var featured *catalog.Game
	if g, ok := s.games.Featured(); ok {
		featured = &g
	}
	var news []handlers.NewsItem
	if s.newsOnHome > 0 {
		posts, err := s.content.ListNews(r.Context(), s.newsOnHome)
		if err != nil {
			observability.FromContext(r.Context()).Warn("news unavailable", zap.Error(err))
		}
		news = handlers.NewsItems(posts)
	}
	vm := s.layout.BuildHome(featured, s.games.Latest(s.latestLimit), news, s.now())
	s.views.render(w, r, http.StatusOK, pageTemplate, vm)
}

// GamesHandler renders the full catalog in authoring order.
func (s *site) GamesHandler(w http.ResponseWriter, r *http.Request) {
	vm := s.layout.BuildGames(s.games.All(), s.now())
	s.views.render(w, r, http.StatusOK, pageTemplate, vm)
}

// GameHandler renders a single game, or the not-found page for unknown ids.
func (s *site) GameHandler(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	game, ok := s.games.Lookup(raw)
	if !ok {
		s.renderNotFound(w, r, "We couldn't find a game with id "+strings.TrimSpace(raw)+".")
		return
	}
	posts, err := s.content.ListNews(r.Context(), 0)
	if err != nil {
		observability.FromContext(r.Context()).Warn("news unavailable", zap.Error(err))
	}
	vm := s.layout.BuildGame(game, handlers.RelatedNews(posts, game.ID), s.now())
	s.views.render(w, r, http.StatusOK, pageTemplate, vm)
}

// AboutHandler renders the studio page from content/pages/about.md.
func (s *site) AboutHandler(w http.ResponseWriter, r *http.Request) {
	s.contentPage(w, r, "about")
}

// NewsHandler renders every news post, newest first.
func (s *site) NewsHandler(w http.ResponseWriter, r *http.Request) {
	posts, err := s.content.ListNews(r.Context(), 0)
	if err != nil {
		observability.FromContext(r.Context()).Error("list news", zap.Error(err))
		http.Error(w, "news unavailable", http.StatusInternalServerError)
		return
	}
	s.views.render(w, r, http.StatusOK, pageTemplate, s.layout.BuildNews(posts))
}

// NotFoundHandler renders the catch-all not-found page.
func (s *site) NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	s.renderNotFound(w, r, "")
}

func (s *site) renderNotFound(w http.ResponseWriter, r *http.Request, message string) {
	s.views.render(w, r, http.StatusNotFound, pageTemplate, s.layout.BuildNotFound(r.URL.Path, message))
}

func (s *site) contentPage(w http.ResponseWriter, r *http.Request, slug string) {
	page, err := s.content.GetPage(r.Context(), slug)
	if errors.Is(err, cms.ErrNotFound) {
		s.renderNotFound(w, r, "")
		return
	}
	if err != nil {
		observability.FromContext(r.Context()).Error("load page", zap.String("slug", slug), zap.Error(err))
		http.Error(w, "page unavailable", http.StatusInternalServerError)
		return
	}
	s.views.render(w, r, http.StatusOK, pageTemplate, s.layout.BuildContent(r.URL.Path, page))
}
