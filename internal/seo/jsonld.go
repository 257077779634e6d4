package seo

import (
	"encoding/json"
)

const schemaContext = "https://schema.org"

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Organization returns a minimal Organization schema.
func Organization(name, url, logoURL string) map[string]any {
	m := map[string]any{
		"@context": schemaContext,
		"@type":    "Organization",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if logoURL != "" {
		m["logo"] = logoURL
	}
	return m
}

// WebSite returns a minimal WebSite schema.
func WebSite(name, url string) map[string]any {
	m := map[string]any{
		"@context": schemaContext,
		"@type":    "WebSite",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	return m
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds schema.org BreadcrumbList.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.Item,
		})
	}
	return map[string]any{
		"@context":        schemaContext,
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}

// VideoGame describes a catalog title for the VideoGame schema.
type VideoGame struct {
	Name        string
	Description string
	URL         string
	Image       string
	Screenshots []string
	Platforms   []string
	ReleaseDate string // YYYY-MM-DD
	Publisher   string
	TrailerURL  string
}

// VideoGameSchema returns a schema.org VideoGame payload.
func VideoGameSchema(g VideoGame) map[string]any {
	m := map[string]any{
		"@context":    schemaContext,
		"@type":       "VideoGame",
		"name":        g.Name,
		"description": g.Description,
	}
	if g.URL != "" {
		m["url"] = g.URL
	}
	if g.Image != "" {
		m["image"] = g.Image
	}
	if len(g.Screenshots) > 0 {
		m["screenshot"] = g.Screenshots
	}
	if len(g.Platforms) > 0 {
		m["gamePlatform"] = g.Platforms
	}
	if g.ReleaseDate != "" {
		m["datePublished"] = g.ReleaseDate
	}
	if g.Publisher != "" {
		m["publisher"] = map[string]any{"@type": "Organization", "name": g.Publisher}
	}
	if g.TrailerURL != "" {
		m["trailer"] = map[string]any{"@type": "VideoObject", "embedUrl": g.TrailerURL}
	}
	return m
}

// NewsArticle returns a minimal NewsArticle schema payload.
func NewsArticle(headline, url, imageURL, authorName, datePublished string) map[string]any {
	m := map[string]any{
		"@context": schemaContext,
		"@type":    "NewsArticle",
		"headline": headline,
	}
	if url != "" {
		m["url"] = url
	}
	if imageURL != "" {
		m["image"] = imageURL
	}
	if authorName != "" {
		m["author"] = map[string]any{"@type": "Person", "name": authorName}
	}
	if datePublished != "" {
		m["datePublished"] = datePublished
	}
	return m
}
