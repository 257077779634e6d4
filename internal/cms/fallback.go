package cms

// Built-in copy served when no content directory is deployed alongside the binary.

var fallbackPages = map[string]document{
	"about": {
		front: frontMatter{
			Title:   "About DormRoom Studios",
			Summary: "A tiny independent studio making story-driven games.",
		},
		body: `DormRoom Studios started in a shared college dorm with one laptop and too much coffee.
Today we are a small, fully remote team building games we would want to play ourselves.

## What we make

We focus on **narrative-driven** experiences, tactical depth and worlds worth exploring.
Every project starts as a weekend prototype and only grows up if it keeps surprising us.

## How we work

- Small team, long-term projects
- Regular playtests with our community
- Cross-platform releases whenever we can`,
	},
}

var fallbackNews = map[string]document{
	"mythic-legends-release-date": {
		front: frontMatter{
			Title:   "Mythic Legends arrives January 30",
			Date:    "2025-01-10",
			Author:  "DormRoom Studios",
			GameID:  3,
			Summary: "Our tactical RPG inspired by world mythologies has a release date.",
		},
		body: `Mythic Legends launches on **January 30, 2025** for PC, PlayStation 5, Xbox Series X and mobile.

Over fifty heroes, turn-based battles and a prophecy that will not solve itself.`,
	},
	"echoes-of-yesterday-launch": {
		front: frontMatter{
			Title:   "Echoes of Yesterday is out now",
			Date:    "2024-11-15",
			Author:  "DormRoom Studios",
			GameID:  1,
			Summary: "Our narrative mystery is available today.",
		},
		body: `Echoes of Yesterday is available now on PC, PlayStation 5 and Xbox Series X.

Thank you to everyone who played the demo and sent feedback.`,
	},
	"velocity-rush-season-one": {
		front: frontMatter{
			Title:  "Velocity Rush: Season One tournaments",
			Date:   "2024-09-24",
			Author: "DormRoom Studios",
			GameID: 4,
		},
		body: `The first seasonal tournament of the Velocity Circuit starts next week.
Sign up in game to compete for exclusive vehicle skins.`,
	},
}
