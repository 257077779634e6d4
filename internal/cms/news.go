package cms

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Post is a studio news entry.
type Post struct {
	Slug    string
	Title   string
	Summary string
	Author  string
	Date    time.Time
	GameID  int // related catalog game, 0 when none
	Image   string
	Body    template.HTML
}

// ListNews returns news posts newest first. A limit of zero or less returns all posts.
// When the news directory is missing or empty the built-in feed is used.
func (c *Client) ListNews(ctx context.Context, limit int) ([]Post, error) {
	posts, err := c.allNews(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}
	out := make([]Post, len(posts))
	copy(out, posts)
	return out, nil
}

// GetNews returns a single post by slug.
func (c *Client) GetNews(ctx context.Context, slug string) (Post, error) {
	slug = sanitizeSlug(slug)
	if slug == "" {
		return Post{}, ErrNotFound
	}
	posts, err := c.allNews(ctx)
	if err != nil {
		return Post{}, err
	}
	for _, p := range posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return Post{}, ErrNotFound
}

func (c *Client) allNews(ctx context.Context) ([]Post, error) {
	const key = "news"
	if v, ok := c.cached(key); ok {
		return v.([]Post), nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	docs, err := readNewsDir(filepath.Join(c.contentDir, "news"))
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		docs = fallbackNews
	}
	posts := make([]Post, 0, len(docs))
	for slug, doc := range docs {
		p, err := c.buildPost(slug, doc)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	sortPosts(posts)
	c.store(key, posts)
	return posts, nil
}

func (c *Client) buildPost(slug string, doc document) (Post, error) {
	body, err := c.render(doc.body, doc.front.Format)
	if err != nil {
		return Post{}, fmt.Errorf("cms: render news %s: %w", slug, err)
	}
	p := Post{
		Slug:    slug,
		Title:   strings.TrimSpace(doc.front.Title),
		Summary: strings.TrimSpace(doc.front.Summary),
		Author:  strings.TrimSpace(doc.front.Author),
		Date:    parseDate(doc.front.Date),
		GameID:  doc.front.GameID,
		Image:   strings.TrimSpace(doc.front.Image),
		Body:    body,
	}
	if p.Date.IsZero() {
		p.Date = doc.modTime
	}
	if p.Title == "" {
		p.Title = prettifySlug(slug)
	}
	if p.Summary == "" {
		p.Summary = c.plainText(body)
	}
	return p, nil
}

// sortPosts orders by date descending, then slug for a stable listing.
func sortPosts(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		if !posts[i].Date.Equal(posts[j].Date) {
			return posts[i].Date.After(posts[j].Date)
		}
		return posts[i].Slug < posts[j].Slug
	})
}

func readNewsDir(dir string) (map[string]document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("cms: read news: %w", err)
	}
	docs := map[string]document{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		slug := sanitizeSlug(strings.TrimSuffix(e.Name(), ".md"))
		if slug == "" {
			continue
		}
		doc, err := readDocument(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		docs[slug] = doc
	}
	return docs, nil
}
