package handlers

import (
	"time"

	"dormroomstudios.com/web/internal/catalog"
	"dormroomstudios.com/web/internal/seo"
)

// HomeView drives the landing page.
type HomeView struct {
	Tagline  string
	Featured *GameView
	Latest   []GameCard
	News     []NewsItem
}

// BuildHome constructs the landing page. featured is nil when the catalog is empty.
func (l Layout) BuildHome(featured *catalog.Game, latest []catalog.Game, news []NewsItem, now time.Time) PageData {
	tagline := "Indie games made with heart, from a dorm room to your screen."
	image := ""
	if featured != nil {
		image = featured.CoverImage
	}
	meta := l.Site.Page("", tagline, "/", image)
	meta.AddJSONLD(
		seo.Organization(l.Site.Name, l.Site.Absolute("/"), ""),
		seo.WebSite(l.Site.Name, l.Site.Absolute("/")),
	)
	page := l.newPage("/", meta, nil)
	view := &HomeView{
		Tagline: tagline,
		Latest:  buildCards(latest, now),
		News:    news,
	}
	if featured != nil {
		view.Featured = &GameView{
			Card:        buildCard(*featured, now),
			Description: featured.Description,
			Screenshots: featured.Screenshots,
			Features:    featured.Features,
			PlayLink:    featured.PlayLink,
			TrailerURL:  featured.TrailerURL,
		}
	}
	page.Home = view
	return page
}
