package seo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSitePageDefaults(t *testing.T) {
	t.Parallel()

	site := Site{Name: "DormRoom Studios", BaseURL: "https://dormroom.example/"}

	home := site.Page("", "Indie games", "/", "")
	require.Equal(t, "DormRoom Studios", home.Title)
	require.Equal(t, "https://dormroom.example/", home.Canonical)
	require.Equal(t, "summary", home.Twitter.Card)

	games := site.Page("Games", "All games", "/games", "https://cdn.example/cover.jpg")
	require.Equal(t, "Games | DormRoom Studios", games.Title)
	require.Equal(t, "https://dormroom.example/games", games.OG.URL)
	require.Equal(t, "summary_large_image", games.Twitter.Card)
	require.Equal(t, "https://cdn.example/cover.jpg", site.Absolute("https://cdn.example/cover.jpg"))

	bare := Site{Name: "x"}
	require.Equal(t, "/games", bare.Absolute("/games"))
}

func TestVideoGameSchema(t *testing.T) {
	t.Parallel()

	var m Meta
	m.AddJSONLD(VideoGameSchema(VideoGame{
		Name:        "Neon Shadows",
		Description: "Cyberpunk RPG",
		Platforms:   []string{"PC"},
		ReleaseDate: "2024-08-22",
		Publisher:   "DormRoom Studios",
	}))
	require.Len(t, m.JSONLD, 1)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(m.JSONLD[0]), &decoded))
	require.Equal(t, "VideoGame", decoded["@type"])
	require.Equal(t, "2024-08-22", decoded["datePublished"])
	require.Equal(t, []any{"PC"}, decoded["gamePlatform"])
	require.NotContains(t, decoded, "trailer")
}

func TestBreadcrumbList(t *testing.T) {
	t.Parallel()

	bl := BreadcrumbList([]BreadcrumbItem{{Name: "Home", Item: "/"}, {Name: "Games", Item: "/games"}})
	items := bl["itemListElement"].([]map[string]any)
	require.Len(t, items, 2)
	require.Equal(t, 2, items[1]["position"])
}
