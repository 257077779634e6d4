package handlers

import (
	"dormroomstudios.com/web/internal/nav"
	"dormroomstudios.com/web/internal/seo"
)

// PageData is the view model shared by every page rendered through the base layout.
type PageData struct {
	SiteName  string
	SEO       seo.Meta
	Analytics Analytics

	Path        string
	Nav         []nav.RenderedItem
	Breadcrumbs []nav.Crumb

	// Per-page payloads; only one is set for a given view.
	Home    *HomeView
	Games   *GamesView
	Game    *GameView
	News    *NewsView
	Content *ContentView
	Missing *NotFoundView
}

// Layout carries what every page needs regardless of payload.
type Layout struct {
	Site      seo.Site
	Analytics Analytics
}

// newPage fills the common layout fields for path.
func (l Layout) newPage(path string, meta seo.Meta, labels map[string]string) PageData {
	crumbs := nav.Breadcrumbs(path, labels)
	if len(crumbs) > 1 {
		items := make([]seo.BreadcrumbItem, 0, len(crumbs))
		for _, c := range crumbs {
			items = append(items, seo.BreadcrumbItem{Name: c.Label, Item: l.Site.Absolute(c.Href)})
		}
		meta.AddJSONLD(seo.BreadcrumbList(items))
	}
	return PageData{
		SiteName:    l.Site.Name,
		SEO:         meta,
		Analytics:   l.Analytics,
		Path:        path,
		Nav:         nav.Build(path),
		Breadcrumbs: crumbs,
	}
}
