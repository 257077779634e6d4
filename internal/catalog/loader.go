package catalog

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Games []gameDocument `yaml:"games"`
}

type gameDocument struct {
	ID               int      `yaml:"id"`
	Title            string   `yaml:"title"`
	Description      string   `yaml:"description"`
	ShortDescription string   `yaml:"short_description"`
	CoverImage       string   `yaml:"cover_image"`
	Screenshots      []string `yaml:"screenshots"`
	Platforms        []string `yaml:"platforms"`
	ReleaseDate      string   `yaml:"release_date"`
	Featured         bool     `yaml:"featured"`
	Features         []string `yaml:"features"`
	PlayLink         string   `yaml:"play_link"`
	TrailerURL       string   `yaml:"trailer_url"`
}

// LoadFile reads a YAML catalog from path. Records are returned in file order and
// are not validated; pass them to NewStore for that.
func LoadFile(path string) ([]Game, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	games, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", path, err)
	}
	return games, nil
}

// Parse decodes a YAML catalog document.
func Parse(raw []byte) ([]Game, error) {
	var doc catalogFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	games := make([]Game, 0, len(doc.Games))
	for i, d := range doc.Games {
		released, err := parseReleaseDate(d.ReleaseDate)
		if err != nil {
			return nil, fmt.Errorf("game %d (id %d): %w", i, d.ID, err)
		}
		games = append(games, Game{
			ID:               d.ID,
			Title:            strings.TrimSpace(d.Title),
			Description:      strings.TrimSpace(d.Description),
			ShortDescription: strings.TrimSpace(d.ShortDescription),
			CoverImage:       strings.TrimSpace(d.CoverImage),
			Screenshots:      d.Screenshots,
			Platforms:        d.Platforms,
			ReleaseDate:      released,
			Featured:         d.Featured,
			Features:         d.Features,
			PlayLink:         strings.TrimSpace(d.PlayLink),
			TrailerURL:       strings.TrimSpace(d.TrailerURL),
		})
	}
	return games, nil
}

func parseReleaseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, fmt.Errorf("missing release_date")
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006/01/02"} {
		if t, err := time.Parse(layout, v); err == nil {
			y, m, d := t.Date()
			return date(y, m, d), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid release_date %q", v)
}
