package handlers

import (
	"strconv"
	"time"

	"dormroomstudios.com/web/internal/catalog"
	"dormroomstudios.com/web/internal/format"
	"dormroomstudios.com/web/internal/seo"
)

// GameCard is the compact representation used in lists and teasers.
type GameCard struct {
	ID           int
	Anchor       string
	Href         string
	Title        string
	Summary      string
	CoverImage   string
	Platforms    []string
	PlatformList string
	ReleaseISO   string
	ReleaseLabel string
	Featured     bool
}

// GamesView drives the catalog page.
type GamesView struct {
	Heading string
	Cards   []GameCard
}

// GameView drives the game detail page.
type GameView struct {
	Card        GameCard
	Description string
	Screenshots []string
	Features    []string
	PlayLink    string
	TrailerURL  string
	News        []NewsItem
}

func gameHref(id int) string { return "/games/" + strconv.Itoa(id) }

func buildCard(g catalog.Game, now time.Time) GameCard {
	summary := g.ShortDescription
	if summary == "" {
		summary = format.Truncate(g.Description, 140)
	}
	return GameCard{
		ID:           g.ID,
		Anchor:       "game-" + strconv.Itoa(g.ID),
		Href:         gameHref(g.ID),
		Title:        g.Title,
		Summary:      summary,
		CoverImage:   g.CoverImage,
		Platforms:    g.Platforms,
		PlatformList: format.List(g.Platforms),
		ReleaseISO:   format.ISODate(g.ReleaseDate),
		ReleaseLabel: format.ReleaseLabel(g.ReleaseDate, now),
		Featured:     g.Featured,
	}
}

func buildCards(games []catalog.Game, now time.Time) []GameCard {
	cards := make([]GameCard, 0, len(games))
	for _, g := range games {
		cards = append(cards, buildCard(g, now))
	}
	return cards
}

// BuildGames constructs the catalog page listing every game in authoring order.
func (l Layout) BuildGames(games []catalog.Game, now time.Time) PageData {
	image := ""
	if len(games) > 0 {
		image = games[0].CoverImage
	}
	meta := l.Site.Page("Games", "Every game made by "+l.Site.Name+".", "/games", image)
	page := l.newPage("/games", meta, nil)
	page.Games = &GamesView{
		Heading: "Our Games",
		Cards:   buildCards(games, now),
	}
	return page
}

// BuildGame constructs the detail page for g; related lists news posts about it.
func (l Layout) BuildGame(g catalog.Game, related []NewsItem, now time.Time) PageData {
	path := gameHref(g.ID)
	card := buildCard(g, now)
	meta := l.Site.Page(g.Title, card.Summary, path, g.CoverImage)
	meta.OG.Type = "video.game"
	meta.AddJSONLD(seo.VideoGameSchema(seo.VideoGame{
		Name:        g.Title,
		Description: g.Description,
		URL:         l.Site.Absolute(path),
		Image:       g.CoverImage,
		Screenshots: g.Screenshots,
		Platforms:   g.Platforms,
		ReleaseDate: format.ISODate(g.ReleaseDate),
		Publisher:   l.Site.Name,
		TrailerURL:  g.TrailerURL,
	}))
	page := l.newPage(path, meta, map[string]string{strconv.Itoa(g.ID): g.Title})
	page.Game = &GameView{
		Card:        card,
		Description: g.Description,
		Screenshots: g.Screenshots,
		Features:    g.Features,
		PlayLink:    g.PlayLink,
		TrailerURL:  g.TrailerURL,
		News:        related,
	}
	return page
}
