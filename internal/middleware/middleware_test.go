package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"dormroomstudios.com/web/internal/observability"
)

func TestLoggerRecordsRouteAndStatus(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	r := chi.NewRouter()
	r.Use(Logger(zap.New(core)))
	r.Get("/games/{id}", func(w http.ResponseWriter, r *http.Request) {
		observability.FromContext(r.Context()).Info("handler")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("missing"))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/games/99", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "handler", entries[0].Message)
	require.Equal(t, "/games/99", entries[0].ContextMap()["path"])

	last := entries[1]
	require.Equal(t, zapcore.WarnLevel, last.Level)
	fields := last.ContextMap()
	require.Equal(t, "/games/{id}", fields["route"])
	require.Equal(t, int64(http.StatusNotFound), fields["status"])
	require.Equal(t, int64(len("missing")), fields["bytes"])
}

func TestRecovererReturns500(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	r := chi.NewRouter()
	r.Use(Logger(zap.New(core)))
	r.Use(Recoverer)
	r.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("boom") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
	require.Equal(t, zapcore.ErrorLevel, logs.FilterMessage("request").All()[0].Level)
}

func TestAssetsWithCacheETag(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "css", "site.css"), []byte("body{}"), 0o600))

	h := http.StripPrefix("/assets", AssetsWithCache(dir, false))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/css/site.css", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, assetCacheControl, rec.Header().Get("Cache-Control"))
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)

	req := httptest.NewRequest(http.MethodGet, "/assets/css/site.css", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotModified, rec.Code)

	dev := http.StripPrefix("/assets", AssetsWithCache(dir, true))
	rec = httptest.NewRecorder()
	dev.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/css/site.css", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	require.Empty(t, rec.Header().Get("ETag"))
}
