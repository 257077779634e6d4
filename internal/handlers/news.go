package handlers

import (
	"html/template"

	"dormroomstudios.com/web/internal/cms"
	"dormroomstudios.com/web/internal/format"
	"dormroomstudios.com/web/internal/seo"
)

// NewsItem is a rendered news entry.
type NewsItem struct {
	Anchor    string
	Href      string
	Title     string
	Summary   string
	Author    string
	DateISO   string
	DateLabel string
	Image     string
	Body      template.HTML
	GameHref  string
}

// NewsView drives the news page.
type NewsView struct {
	Heading string
	Items   []NewsItem
}

// NewsItems converts posts into view items.
func NewsItems(posts []cms.Post) []NewsItem {
	items := make([]NewsItem, 0, len(posts))
	for _, p := range posts {
		it := NewsItem{
			Anchor:    "news-" + p.Slug,
			Href:      "/news#news-" + p.Slug,
			Title:     p.Title,
			Summary:   p.Summary,
			Author:    p.Author,
			DateISO:   format.ISODate(p.Date),
			DateLabel: format.Date(p.Date),
			Image:     p.Image,
			Body:      p.Body,
		}
		if p.GameID > 0 {
			it.GameHref = gameHref(p.GameID)
		}
		items = append(items, it)
	}
	return items
}

// RelatedNews returns the posts that reference gameID.
func RelatedNews(posts []cms.Post, gameID int) []NewsItem {
	var related []cms.Post
	for _, p := range posts {
		if p.GameID == gameID {
			related = append(related, p)
		}
	}
	return NewsItems(related)
}

// BuildNews constructs the news page.
func (l Layout) BuildNews(posts []cms.Post) PageData {
	meta := l.Site.Page("News", "Announcements and updates from "+l.Site.Name+".", "/news", "")
	for _, p := range posts {
		meta.AddJSONLD(seo.NewsArticle(p.Title, l.Site.Absolute("/news#news-"+p.Slug), p.Image, p.Author, format.ISODate(p.Date)))
	}
	page := l.newPage("/news", meta, nil)
	page.News = &NewsView{
		Heading: "News",
		Items:   NewsItems(posts),
	}
	return page
}
