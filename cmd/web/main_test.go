package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"dormroomstudios.com/web/internal/config"
	"dormroomstudios.com/web/internal/testutil"
)

var testNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

// newTestServer builds the router the same way main does, with repo-relative paths.
func newTestServer(t *testing.T, env map[string]string) http.Handler {
	t.Helper()
	vars := map[string]string{
		"DORMROOM_WEB_TEMPLATES_DIR": "../../templates",
		"DORMROOM_WEB_PUBLIC_DIR":    "../../public",
		"DORMROOM_WEB_CONTENT_DIR":   "../../content",
		"DORMROOM_WEB_BASE_URL":      "https://dormroomstudios.test",
		"DORMROOM_WEB_DEV":           "true",
	}
	for k, v := range env {
		vars[k] = v
	}
	cfg, err := config.FromEnv(func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	})
	require.NoError(t, err)

	s, err := newSite(cfg)
	require.NoError(t, err)
	s.now = func() time.Time { return testNow }
	return newRouter(s, zap.NewNop(), cfg.Paths.Public, cfg.Dev)
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealthz(t *testing.T) {
	t.Parallel()
	rec := get(t, newTestServer(t, nil), "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	require.Equal(t, "ok", string(body))
}

func TestHomePage(t *testing.T) {
	t.Parallel()
	rec := get(t, newTestServer(t, nil), "/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	doc := testutil.ParseHTML(t, rec.Body.Bytes())
	require.Equal(t, "DormRoom Studios", strings.TrimSpace(doc.Find("title").Text()))
	require.Equal(t, "Echoes of Yesterday", strings.TrimSpace(doc.Find(".featured-title").Text()))
	require.Equal(t,
		[]string{"Mythic Legends", "Velocity Rush", "Neon Shadows"},
		testutil.Texts(doc, ".latest .game-title"),
	)
	require.Equal(t,
		[]string{"Mythic Legends arrives January 30", "Echoes of Yesterday is out now"},
		testutil.Texts(doc, ".home-news .news-title"),
	)
	require.Equal(t, []string{"Home"}, testutil.Texts(doc, ".site-header a.active"))
	// the home page has no breadcrumb trail
	require.Zero(t, doc.Find(".breadcrumbs").Length())
	require.Equal(t, []string{"https://dormroomstudios.test/"}, testutil.Attrs(doc, `link[rel="canonical"]`, "href"))
	require.Contains(t, doc.Find(`script[type="application/ld+json"]`).Text(), `"Organization"`)
}

func TestHomePageIncludesFeaturedInLatestWhenConfigured(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, map[string]string{"DORMROOM_WEB_LATEST_INCLUDES_FEATURED": "true"})
	doc := testutil.ParseHTML(t, get(t, h, "/").Body.Bytes())
	require.Equal(t,
		[]string{"Mythic Legends", "Echoes of Yesterday", "Velocity Rush"},
		testutil.Texts(doc, ".latest .game-title"),
	)
}

func TestHomePageRespectsLatestLimit(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, map[string]string{
		"DORMROOM_WEB_LATEST_LIMIT":    "1",
		"DORMROOM_WEB_NEWS_HOME_LIMIT": "0",
	})
	doc := testutil.ParseHTML(t, get(t, h, "/").Body.Bytes())
	require.Equal(t, []string{"Mythic Legends"}, testutil.Texts(doc, ".latest .game-title"))
	require.Zero(t, doc.Find(".home-news").Length())
}

func TestGamesPage(t *testing.T) {
	t.Parallel()
	rec := get(t, newTestServer(t, nil), "/games")
	require.Equal(t, http.StatusOK, rec.Code)

	doc := testutil.ParseHTML(t, rec.Body.Bytes())
	require.Equal(t,
		[]string{"Echoes of Yesterday", "Neon Shadows", "Mythic Legends", "Velocity Rush"},
		testutil.Texts(doc, ".game-card .game-title"),
	)
	require.Equal(t,
		[]string{"game-1", "game-2", "game-3", "game-4"},
		testutil.Attrs(doc, ".game-card", "id"),
	)
	require.Equal(t, []string{"Games"}, testutil.Texts(doc, ".site-header a.active"))
	require.Equal(t, "Games | DormRoom Studios", strings.TrimSpace(doc.Find("title").Text()))
}

func TestGameDetail(t *testing.T) {
	t.Parallel()
	rec := get(t, newTestServer(t, nil), "/games/1")
	require.Equal(t, http.StatusOK, rec.Code)

	doc := testutil.ParseHTML(t, rec.Body.Bytes())
	require.Equal(t, "Echoes of Yesterday", strings.TrimSpace(doc.Find(".game-detail .game-title").Text()))
	require.Equal(t, 5, doc.Find(".features li").Length())
	require.Equal(t, 3, doc.Find(".screenshots img").Length())
	require.Zero(t, doc.Find(".play-link").Length())
	require.Zero(t, doc.Find(".trailer-link").Length())
	require.Equal(t, []string{"Echoes of Yesterday is out now"}, testutil.Texts(doc, ".related-news .news-title"))
	require.Equal(t, []string{"Home", "Games", "Echoes of Yesterday"}, testutil.Texts(doc, ".breadcrumbs li"))
	require.Equal(t, []string{"Games"}, testutil.Texts(doc, ".site-header a.active"))

	ld := doc.Find(`script[type="application/ld+json"]`).Text()
	require.Contains(t, ld, `"VideoGame"`)
	require.Contains(t, ld, `"BreadcrumbList"`)
}

func TestGameDetailLenientID(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, nil)
	for _, path := range []string{"/games/3abc", "/games/03"} {
		rec := get(t, h, path)
		require.Equal(t, http.StatusOK, rec.Code, path)
		doc := testutil.ParseHTML(t, rec.Body.Bytes())
		require.Equal(t, "Mythic Legends", strings.TrimSpace(doc.Find(".game-detail .game-title").Text()), path)
		require.Equal(t,
			[]string{"https://dormroomstudios.test/games/3"},
			testutil.Attrs(doc, `link[rel="canonical"]`, "href"),
			path,
		)
	}
}

func TestNotFound(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, nil)
	cases := []struct {
		path    string
		message string
	}{
		{path: "/games/99", message: "id 99"},
		{path: "/games/abc", message: "id abc"},
		{path: "/games/0", message: "id 0"},
		{path: "/unknown/path", message: "does not exist"},
		{path: "/news/older", message: "does not exist"},
	}
	for _, tc := range cases {
		rec := get(t, h, tc.path)
		require.Equal(t, http.StatusNotFound, rec.Code, tc.path)

		doc := testutil.ParseHTML(t, rec.Body.Bytes())
		section := doc.Find(`[data-testid="not-found"]`)
		require.Equal(t, 1, section.Length(), tc.path)
		require.Contains(t, section.Text(), tc.message, tc.path)
		require.Equal(t, []string{"noindex"}, testutil.Attrs(doc, `meta[name="robots"]`, "content"), tc.path)
		require.Zero(t, doc.Find(".breadcrumbs").Length(), tc.path)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	t.Parallel()
	rec := httptest.NewRecorder()
	newTestServer(t, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/games", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHeadRequestsHaveNoBody(t *testing.T) {
	t.Parallel()
	rec := httptest.NewRecorder()
	newTestServer(t, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/games", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Zero(t, rec.Body.Len())
}

func TestAboutPage(t *testing.T) {
	t.Parallel()
	rec := get(t, newTestServer(t, nil), "/about")
	require.Equal(t, http.StatusOK, rec.Code)

	doc := testutil.ParseHTML(t, rec.Body.Bytes())
	require.Equal(t, "About DormRoom Studios", strings.TrimSpace(doc.Find(".content-page h1").Text()))
	require.Contains(t, testutil.Texts(doc, ".prose h2"), "What we make")
	require.Equal(t, []string{"About"}, testutil.Texts(doc, ".site-header a.active"))
	require.Equal(t,
		[]string{"DormRoom Studios is a small independent game studio that started in a college dorm room."},
		testutil.Attrs(doc, `meta[name="description"]`, "content"),
	)
}

func TestAboutPageFallsBackToBuiltInCopy(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, map[string]string{"DORMROOM_WEB_CONTENT_DIR": t.TempDir()})
	rec := get(t, h, "/about")
	require.Equal(t, http.StatusOK, rec.Code)
	doc := testutil.ParseHTML(t, rec.Body.Bytes())
	require.Equal(t, "About DormRoom Studios", strings.TrimSpace(doc.Find(".content-page h1").Text()))
}

func TestNewsPage(t *testing.T) {
	t.Parallel()
	rec := get(t, newTestServer(t, nil), "/news")
	require.Equal(t, http.StatusOK, rec.Code)

	doc := testutil.ParseHTML(t, rec.Body.Bytes())
	require.Equal(t,
		[]string{
			"news-mythic-legends-release-date",
			"news-echoes-of-yesterday-launch",
			"news-velocity-rush-season-one",
			"news-neon-shadows-patch-notes",
		},
		testutil.Attrs(doc, ".news-post", "id"),
	)
	require.Equal(t, 3, doc.Find(".news-post").Last().Find(".prose li").Length())
	require.Equal(t, []string{"News"}, testutil.Texts(doc, ".site-header a.active"))
	require.Contains(t, doc.Find(`script[type="application/ld+json"]`).Text(), `"NewsArticle"`)
}

func TestEmptyCatalog(t *testing.T) {
	t.Parallel()
	file := filepath.Join(t.TempDir(), "games.yaml")
	require.NoError(t, os.WriteFile(file, []byte("games: []\n"), 0o644))
	h := newTestServer(t, map[string]string{"DORMROOM_WEB_CATALOG_FILE": file})

	doc := testutil.ParseHTML(t, get(t, h, "/").Body.Bytes())
	require.Zero(t, doc.Find(".featured").Length())
	require.Zero(t, doc.Find(".latest").Length())

	rec := get(t, h, "/games")
	require.Equal(t, http.StatusOK, rec.Code)
	doc = testutil.ParseHTML(t, rec.Body.Bytes())
	require.Zero(t, doc.Find(".game-card").Length())
	require.Contains(t, doc.Find(".empty").Text(), "No games yet")

	require.Equal(t, http.StatusNotFound, get(t, h, "/games/1").Code)
}

func TestCatalogFileDrivesPages(t *testing.T) {
	t.Parallel()
	file := filepath.Join(t.TempDir(), "games.yaml")
	catalogYAML := `games:
  - id: 7
    title: Paper Planes
    short_description: Fold, throw, repeat.
    platforms: [PC]
    release_date: 2023-03-03
    play_link: https://example.com/play
`
	require.NoError(t, os.WriteFile(file, []byte(catalogYAML), 0o644))
	h := newTestServer(t, map[string]string{"DORMROOM_WEB_CATALOG_FILE": file})

	// a lone unfeatured record still becomes the hero
	doc := testutil.ParseHTML(t, get(t, h, "/").Body.Bytes())
	require.Equal(t, "Paper Planes", strings.TrimSpace(doc.Find(".featured-title").Text()))

	rec := get(t, h, "/games/7")
	require.Equal(t, http.StatusOK, rec.Code)
	doc = testutil.ParseHTML(t, rec.Body.Bytes())
	require.Equal(t, []string{"https://example.com/play"}, testutil.Attrs(doc, ".play-link", "href"))
	require.Zero(t, doc.Find(".trailer-link").Length())
}

func TestAssetsServedWithETag(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, map[string]string{"DORMROOM_WEB_DEV": "false"})

	rec := get(t, h, "/assets/css/site.css")
	require.Equal(t, http.StatusOK, rec.Code)
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)
	require.Contains(t, rec.Header().Get("Cache-Control"), "max-age")

	req := httptest.NewRequest(http.MethodGet, "/assets/css/site.css", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotModified, rec.Code)
}

func TestNewRendererRequiresTemplates(t *testing.T) {
	t.Parallel()
	_, err := newRenderer(t.TempDir(), false)
	require.ErrorContains(t, err, "no templates found")
}

func TestRenderUnknownTemplateIsServerError(t *testing.T) {
	t.Parallel()
	rd, err := newRenderer("../../templates", false)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	rd.render(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusOK, "missing", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
