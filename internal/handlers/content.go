package handlers

import (
	"html/template"

	"dormroomstudios.com/web/internal/cms"
)

// ContentView drives markdown-backed static pages such as about.
type ContentView struct {
	Title   string
	Summary string
	Body    template.HTML
}

// BuildContent constructs a static page at path from CMS content.
func (l Layout) BuildContent(path string, p cms.Page) PageData {
	title := p.Title
	if p.SEO.Title != "" {
		title = p.SEO.Title
	}
	description := p.Summary
	if p.SEO.Description != "" {
		description = p.SEO.Description
	}
	meta := l.Site.Page(title, description, path, p.SEO.OGImage)
	page := l.newPage(path, meta, nil)
	page.Content = &ContentView{
		Title:   p.Title,
		Summary: p.Summary,
		Body:    p.Body,
	}
	return page
}

// NotFoundView drives the not-found page.
type NotFoundView struct {
	Heading string
	Message string
	Path    string
}

// BuildNotFound constructs the not-found page for the requested path.
// message overrides the default copy (e.g. for an unknown game).
func (l Layout) BuildNotFound(path, message string) PageData {
	if message == "" {
		message = "The page you are looking for does not exist or has been moved."
	}
	meta := l.Site.Page("Page not found", message, path, "")
	meta.Robots = "noindex"
	page := l.newPage(path, meta, nil)
	// unknown paths should not produce misleading breadcrumbs
	page.Breadcrumbs = nil
	page.SEO.JSONLD = nil
	page.Missing = &NotFoundView{
		Heading: "Page not found",
		Message: message,
		Path:    path,
	}
	return page
}
