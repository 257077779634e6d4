package cms

import (
	"bytes"
	"errors"
	"html"
	"html/template"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// ErrNotFound is returned when a content item cannot be located.
var ErrNotFound = errors.New("cms: not found")

const (
	defaultContentDir = "content"
	defaultCacheTTL   = 5 * time.Minute
)

// Client reads markdown content (news posts and static pages) from a local directory,
// falling back to built-in copy when the directory has nothing to offer.
type Client struct {
	contentDir string
	ttl        time.Duration
	now        func() time.Time

	md     goldmark.Markdown
	policy *bluemonday.Policy
	strict *bluemonday.Policy

	mu    sync.RWMutex
	cache map[string]cacheEntry
}

type cacheEntry struct {
	value   any
	expires time.Time
}

// NewClient constructs a Client rooted at contentDir.
func NewClient(contentDir string) *Client {
	contentDir = strings.TrimSpace(contentDir)
	if contentDir == "" {
		contentDir = defaultContentDir
	}
	return &Client{
		contentDir: contentDir,
		ttl:        defaultCacheTTL,
		now:        time.Now,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Typographer),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
		policy: bluemonday.UGCPolicy(),
		strict: bluemonday.StrictPolicy(),
		cache:  map[string]cacheEntry{},
	}
}

// ContentDir returns the configured content directory.
func (c *Client) ContentDir() string { return c.contentDir }

// SetCacheTTL overrides the in-memory cache duration. Zero or negative disables caching.
func (c *Client) SetCacheTTL(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ttl = d
	c.cache = map[string]cacheEntry{}
}

func (c *Client) cached(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.cache[key]
	if !ok || c.now().After(entry.expires) {
		return nil, false
	}
	return entry.value, true
}

func (c *Client) store(key string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ttl <= 0 {
		return
	}
	c.cache[key] = cacheEntry{value: v, expires: c.now().Add(c.ttl)}
}

// render converts markdown (or raw html) to sanitized HTML.
func (c *Client) render(body, format string) (template.HTML, error) {
	var raw []byte
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "html":
		raw = []byte(body)
	default:
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(body), &buf); err != nil {
			return "", err
		}
		raw = buf.Bytes()
	}
	return template.HTML(c.policy.SanitizeBytes(raw)), nil
}

// plainText strips all markup from rendered HTML.
func (c *Client) plainText(h template.HTML) string {
	text := html.UnescapeString(c.strict.Sanitize(string(h)))
	return strings.Join(strings.Fields(text), " ")
}
