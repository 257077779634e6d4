package main

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"dormroomstudios.com/web/internal/format"
	"dormroomstudios.com/web/internal/observability"
)

// renderer executes page templates. In dev mode templates are reparsed on each request.
type renderer struct {
	dir string
	dev bool

	mu     sync.RWMutex
	parsed *template.Template
}

func newRenderer(dir string, dev bool) (*renderer, error) {
	rd := &renderer{dir: dir, dev: dev}
	// parse eagerly even in dev mode so broken templates fail at startup
	t, err := parseTemplates(dir)
	if err != nil {
		return nil, err
	}
	rd.parsed = t
	return rd, nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"now":  time.Now,
		"year": format.Year,
		"date": format.Date,
	}
}

func parseTemplates(dir string) (*template.Template, error) {
	// Recursively discover and parse all .tmpl files. Note: ParseGlob doesn't support **.
	var files []string
	if err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", dir)
	}
	return template.New("_root").Funcs(templateFuncs()).ParseFiles(files...)
}

func (rd *renderer) templates() (*template.Template, error) {
	if rd.dev {
		t, err := parseTemplates(rd.dir)
		if err != nil {
			return nil, err
		}
		rd.mu.Lock()
		rd.parsed = t
		rd.mu.Unlock()
		return t, nil
	}
	rd.mu.RLock()
	defer rd.mu.RUnlock()
	return rd.parsed, nil
}

// render executes the named template into a buffer and writes it with status.
// Failures are logged and surface as a plain 500.
func (rd *renderer) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	logger := observability.FromContext(r.Context())
	t, err := rd.templates()
	if err != nil {
		logger.Error("template parse failed", zap.Error(err))
		http.Error(w, "template parse error", http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		logger.Error("template exec failed", zap.String("template", name), zap.Error(err))
		http.Error(w, "template exec error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if r.Method != http.MethodHead {
		_, _ = buf.WriteTo(w)
	}
}
