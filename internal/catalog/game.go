package catalog

import (
	"time"
)

// DefaultLatestLimit is the number of games shown in "latest" listings when the caller has no preference.
const DefaultLatestLimit = 3

// Game is a single catalog entry describing one title and its metadata.
// PlayLink and TrailerURL are optional; an empty string means the link is absent.
type Game struct {
	ID               int    `validate:"gt=0"`
	Title            string `validate:"required"`
	Description      string
	ShortDescription string
	CoverImage       string    `validate:"omitempty,url"`
	Screenshots      []string  `validate:"dive,url"`
	Platforms        []string  `validate:"dive,required"`
	ReleaseDate      time.Time `validate:"required"`
	Featured         bool
	Features         []string
	PlayLink         string `validate:"omitempty,url"`
	TrailerURL       string `validate:"omitempty,url"`
}

// HasPlayLink reports whether the game links to a playable build or store page.
func (g Game) HasPlayLink() bool { return g.PlayLink != "" }

// HasTrailer reports whether the game has a trailer.
func (g Game) HasTrailer() bool { return g.TrailerURL != "" }

// Released reports whether the release date is on or before now.
func (g Game) Released(now time.Time) bool {
	return !g.ReleaseDate.After(now)
}

func (g Game) clone() Game {
	cp := g
	cp.Screenshots = cloneStrings(g.Screenshots)
	cp.Platforms = cloneStrings(g.Platforms)
	cp.Features = cloneStrings(g.Features)
	return cp
}

func cloneStrings(src []string) []string {
	if src == nil {
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

func cloneGames(src []Game) []Game {
	out := make([]Game, len(src))
	for i, g := range src {
		out[i] = g.clone()
	}
	return out
}

// date builds a UTC calendar date.
func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
