package seo

import (
	"html/template"
	"net/url"
	"strings"
)

// OpenGraph holds og:* properties.
type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
}

// Twitter holds twitter:* card properties.
type Twitter struct {
	Card  string
	Site  string
	Image string
}

// Meta is the per-page head metadata rendered by the base layout.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
	JSONLD      []template.JS
}

// Site describes the site identity used to derive absolute URLs and defaults.
type Site struct {
	Name    string
	BaseURL string
	Twitter string
}

// Absolute resolves p against the site base URL. Absolute inputs are returned as-is.
func (s Site) Absolute(p string) string {
	if p == "" {
		return ""
	}
	if u, err := url.Parse(p); err == nil && u.IsAbs() {
		return p
	}
	base := strings.TrimRight(s.BaseURL, "/")
	if base == "" {
		return p
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return base + p
}

// Page builds Meta for a page at path with sensible OpenGraph/Twitter defaults.
// An empty title yields the bare site name; otherwise "Title | Site".
func (s Site) Page(title, description, path, image string) Meta {
	full := s.Name
	if title != "" && title != s.Name {
		full = title + " | " + s.Name
	}
	canonical := s.Absolute(path)
	m := Meta{
		Title:       full,
		Description: description,
		Canonical:   canonical,
		OG: OpenGraph{
			Title:       full,
			Description: description,
			Image:       image,
			Type:        "website",
			URL:         canonical,
			SiteName:    s.Name,
		},
		Twitter: Twitter{
			Card:  "summary",
			Site:  s.Twitter,
			Image: image,
		},
	}
	if image != "" {
		m.Twitter.Card = "summary_large_image"
	}
	return m
}

// AddJSONLD appends schema payloads, skipping any that fail to encode.
func (m *Meta) AddJSONLD(payloads ...map[string]any) {
	for _, p := range payloads {
		if s := JSON(p); s != "" {
			m.JSONLD = append(m.JSONLD, template.JS(s))
		}
	}
}
