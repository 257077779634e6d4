package catalog

import "time"

const pexelsParams = "?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"

func pexels(id string) string {
	return "https://images.pexels.com/photos/" + id + "/pexels-photo-" + id + ".jpeg" + pexelsParams
}

// DefaultGames returns the studio's published catalog in authoring order.
// Every call returns a fresh copy.
func DefaultGames() []Game {
	return []Game{
		{
			ID:               1,
			Title:            "Echoes of Yesterday",
			Description:      "Embark on an epic journey through space and time. Cosmic Odyssey is a grand space exploration game where players navigate the far reaches of the galaxy, discovering new planets, encountering mysterious alien species, and unraveling the secrets of the universe. Featuring an expansive open world, deep character customization, and strategic ship combat.",
			ShortDescription: "A haunting narrative-driven mystery unraveling a forgotten past.",
			CoverImage:       pexels("1169754"),
			Screenshots:      []string{pexels("1252890"), pexels("3056059"), pexels("176851")},
			Platforms:        []string{"PC", "PlayStation 5", "Xbox Series X"},
			ReleaseDate:      date(2024, time.November, 15),
			Featured:         true,
			Features: []string{
				"Vast open universe with over 100 planets to explore",
				"Deep character progression system",
				"Strategic ship combat and customization",
				"Compelling narrative with branching storylines",
				"Dynamic economy and trading system",
			},
		},
		{
			ID:               2,
			Title:            "Neon Shadows",
			Description:      "Dive into a cyberpunk world of intrigue and danger. Neon Shadows is a fast-paced action RPG set in a dystopian future where corporations rule and technology has transformed humanity. Play as a skilled hacker navigating the neon-lit streets, taking on dangerous missions, and making choices that will shape the fate of the city.",
			ShortDescription: "Navigate the dangerous streets of a cyberpunk dystopia as a skilled hacker.",
			CoverImage:       pexels("3358654"),
			Screenshots:      []string{pexels("3052361"), pexels("1634278"), pexels("924824")},
			Platforms:        []string{"PC", "PlayStation 5", "Xbox Series X", "Nintendo Switch"},
			ReleaseDate:      date(2024, time.August, 22),
			Features: []string{
				"Immersive cyberpunk world with stunning neon visuals",
				"Complex hacking system with real-time puzzle elements",
				"Fluid combat combining melee and ranged weapons",
				"Meaningful choices affecting story outcomes",
				"Extensive character augmentation system",
			},
		},
		{
			ID:               3,
			Title:            "Mythic Legends",
			Description:      "Step into a world of magic and ancient mythology. Mythic Legends is a tactical RPG where players command a party of heroes inspired by mythologies from around the world. Engage in turn-based combat, solve intricate puzzles, and uncover the truth behind an ancient prophecy that threatens to bring about the end of days.",
			ShortDescription: "Command legendary heroes in a tactical RPG inspired by world mythologies.",
			CoverImage:       pexels("3329822"),
			Screenshots:      []string{pexels("5865634"), pexels("4348078"), pexels("3685271")},
			Platforms:        []string{"PC", "PlayStation 5", "Xbox Series X", "Mobile"},
			ReleaseDate:      date(2025, time.January, 30),
			Features: []string{
				"Deep tactical combat system with unique character abilities",
				"Over 50 heroes inspired by world mythologies",
				"Rich narrative woven with historical and mythological elements",
				"Challenging puzzles that test strategy and knowledge",
				"Cross-platform multiplayer battles",
			},
		},
		{
			ID:               4,
			Title:            "Velocity Rush",
			Description:      "Feel the adrenaline in this futuristic racing game. Velocity Rush combines high-speed racing with combat elements in a world where traditional sports have been replaced by dangerous, weaponized races. Customize your vehicle, master treacherous tracks, and outmaneuver opponents to become the champion of the Velocity Circuit.",
			ShortDescription: "Race at breakneck speeds in futuristic vehicles equipped with weapons.",
			CoverImage:       pexels("4975361"),
			Screenshots:      []string{pexels("2127039"), pexels("3894818"), pexels("5486791")},
			Platforms:        []string{"PC", "PlayStation 5", "Xbox Series X"},
			ReleaseDate:      date(2024, time.September, 10),
			Features: []string{
				"Ultra-responsive racing mechanics with realistic physics",
				"Extensive vehicle customization with performance impacts",
				"Dynamic tracks that change during races",
				"Competitive online multiplayer with seasonal tournaments",
				"Destructible environments affected by weapons and crashes",
			},
		},
	}
}
