package cms

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Page represents a static page (e.g. about) sourced from local markdown.
type Page struct {
	Slug      string
	Title     string
	Summary   string
	Body      template.HTML
	UpdatedAt time.Time
	SEO       SEO
}

// SEO holds optional metadata overrides.
type SEO struct {
	Title       string
	Description string
	OGImage     string
}

type frontMatter struct {
	Title     string         `yaml:"title"`
	Summary   string         `yaml:"summary"`
	Format    string         `yaml:"format"`
	Date      string         `yaml:"date"`
	UpdatedAt string         `yaml:"updated_at"`
	Author    string         `yaml:"author"`
	GameID    int            `yaml:"game_id"`
	Image     string         `yaml:"image"`
	SEO       frontMatterSEO `yaml:"seo"`
}

type frontMatterSEO struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	OGImage     string `yaml:"og_image"`
}

type document struct {
	front   frontMatter
	body    string
	modTime time.Time
}

// GetPage returns the static page for slug, consulting local markdown first and
// built-in copy second.
func (c *Client) GetPage(ctx context.Context, slug string) (Page, error) {
	slug = sanitizeSlug(slug)
	if slug == "" {
		return Page{}, ErrNotFound
	}
	key := "page|" + slug
	if v, ok := c.cached(key); ok {
		return v.(Page), nil
	}
	if err := ctx.Err(); err != nil {
		return Page{}, err
	}

	page, err := c.readPage(slug)
	if errors.Is(err, ErrNotFound) {
		fb, ok := fallbackPages[slug]
		if !ok {
			return Page{}, ErrNotFound
		}
		page, err = c.buildPage(slug, fb)
	}
	if err != nil {
		return Page{}, err
	}
	c.store(key, page)
	return page, nil
}

func (c *Client) readPage(slug string) (Page, error) {
	doc, err := readDocument(filepath.Join(c.contentDir, "pages", slug+".md"))
	if err != nil {
		return Page{}, err
	}
	return c.buildPage(slug, doc)
}

func (c *Client) buildPage(slug string, doc document) (Page, error) {
	body, err := c.render(doc.body, doc.front.Format)
	if err != nil {
		return Page{}, fmt.Errorf("cms: render page %s: %w", slug, err)
	}
	page := Page{
		Slug:    slug,
		Title:   strings.TrimSpace(doc.front.Title),
		Summary: strings.TrimSpace(doc.front.Summary),
		Body:    body,
		SEO: SEO{
			Title:       strings.TrimSpace(doc.front.SEO.Title),
			Description: strings.TrimSpace(doc.front.SEO.Description),
			OGImage:     strings.TrimSpace(doc.front.SEO.OGImage),
		},
	}
	page.UpdatedAt = parseDate(doc.front.UpdatedAt)
	if page.UpdatedAt.IsZero() {
		page.UpdatedAt = doc.modTime
	}
	if page.Title == "" {
		page.Title = prettifySlug(slug)
	}
	if page.Summary == "" {
		page.Summary = c.plainText(body)
	}
	return page, nil
}

// readDocument loads a markdown file with optional YAML front matter.
// Missing files map to ErrNotFound.
func readDocument(file string) (document, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return document{}, ErrNotFound
		}
		return document{}, err
	}
	doc, err := parseDocument(string(data))
	if err != nil {
		return document{}, fmt.Errorf("cms: %s: %w", file, err)
	}
	if info, statErr := os.Stat(file); statErr == nil {
		doc.modTime = info.ModTime()
	}
	return doc, nil
}

func parseDocument(input string) (document, error) {
	fm, body := splitFrontMatter(input)
	var front frontMatter
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return document{}, fmt.Errorf("parse front matter: %w", err)
		}
	}
	return document{front: front, body: body}, nil
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	input = strings.ReplaceAll(input, "\r\n", "\n")
	lines := strings.Split(input, "\n")
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n")
		}
	}
	return "", input
}

func parseDate(v string) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02", "2006/01/02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func prettifySlug(slug string) string {
	parts := strings.Split(strings.TrimSpace(slug), "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		r := []rune(part)
		if r[0] >= 'a' && r[0] <= 'z' {
			r[0] -= 'a' - 'A'
		}
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}

func sanitizeSlug(slug string) string {
	slug = strings.Trim(strings.TrimSpace(strings.ToLower(slug)), "/")
	if slug == "" || strings.Contains(slug, "..") || strings.ContainsAny(slug, `/\`) {
		return ""
	}
	return slug
}
