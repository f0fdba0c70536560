package seed

// CategorySeed is a catalog category
type CategorySeed struct {
	Name        string
	Description string
}

// GameSeed is a catalog entry. Prices are decimal strings and ReleaseDate
// is YYYY-MM-DD
type GameSeed struct {
	Title            string
	ShortDescription string
	Description      string
	HeaderImage      string
	Price            string
	OriginalPrice    string
	Discount         int
	ReleaseDate      string
	Developer        string
	Publisher        string
	Languages        string
	Featured         bool
	SpecialOffer     bool
	NewRelease       bool
	Popular          bool
	Categories       []string
	Screenshots      []string
}

var Categories = []CategorySeed{
	{Name: "Action", Description: "Fast-paced and intense gameplay"},
	{Name: "Adventure", Description: "Exploration and puzzle-solving"},
	{Name: "RPG", Description: "Role-playing and character development"},
	{Name: "Strategy", Description: "Planning and tactical gameplay"},
	{Name: "Simulation", Description: "Realistic mechanics and experiences"},
	{Name: "Sports", Description: "Competitive athletic activities"},
	{Name: "Racing", Description: "Vehicle competition and driving"},
	{Name: "Indie", Description: "Independent developer games"},
	{Name: "Multiplayer", Description: "Online competitive and cooperative play"},
	{Name: "FPS", Description: "First-person shooter games"},
	{Name: "Open World", Description: "Large explorable environments"},
	{Name: "Souls-like", Description: "Challenging combat with RPG elements"},
}

var Games = []GameSeed{
	{
		Title:            "Elden Ring",
		ShortDescription: "A vast world where open fields with a variety of situations and huge dungeons with complex designs are seamlessly connected",
		Description:      "THE NEW FANTASY ACTION RPG. Rise, Tarnished, and be guided by grace to brandish the power of the Elden Ring and become an Elden Lord in the Lands Between.\n\nA vast world where open fields with a variety of situations and huge dungeons with complex and three-dimensional designs are seamlessly connected. As you explore, the joy of discovering unknown and overwhelming threats await you, leading to a high sense of accomplishment.\n\nCreate your character, determine your playstyle, and immerse yourself in a world full of wonder and peril. The path to becoming Elden Lord will be challenging but rewarding.",
		HeaderImage:      "https://cdn.cloudflare.steamstatic.com/steam/apps/1245620/header.jpg?t=1683618675",
		Price:            "44.99",
		OriginalPrice:    "59.99",
		Discount:         25,
		ReleaseDate:      "2022-02-25",
		Developer:        "FromSoftware Inc.",
		Publisher:        "Bandai Namco",
		Languages:        "English, Japanese, French, German, Italian, Spanish",
		SpecialOffer:     true,
		Categories:       []string{"RPG", "Action", "Open World", "Souls-like"},
		Screenshots:      []string{
			"https://cdn.cloudflare.steamstatic.com/steam/apps/1245620/ss_e80a907c2c43337e53316c71555c3c3035a1343e.jpg",
			"https://cdn.cloudflare.steamstatic.com/steam/apps/1245620/ss_c372a517856a462d1a7a2e438cd5c7a76faa31d8.jpg",
			"https://cdn.cloudflare.steamstatic.com/steam/apps/1245620/ss_8b5be7ef5213fa53c786132c317bd6b43d18e5e2.jpg",
			"https://cdn.cloudflare.steamstatic.com/steam/apps/1245620/ss_eb131176775366dbb555dae5057a89f997d16d85.jpg",
		},
	},
	{
		Title:            "Cyberpunk 2077",
		ShortDescription: "An open-world, action-adventure story set in Night City, a megalopolis obsessed with power, glamour and body modification",
		Description:      "Cyberpunk 2077 is an open-world, action-adventure RPG set in the megalopolis of Night City, where you play as a cyberpunk mercenary wrapped up in a do-or-die fight for survival. Improved and featuring all-new free additional content, customize your character and playstyle as you take on jobs, build a reputation, and unlock upgrades. The relationships you forge and the choices you make will shape the story and the world around you. Legends are made here. What will yours be?",
		HeaderImage:      "https://cdn.cloudflare.steamstatic.com/steam/apps/1091500/header.jpg?t=1686849726",
		Price:            "39.99",
		OriginalPrice:    "59.99",
		Discount:         33,
		ReleaseDate:      "2020-12-10",
		Developer:        "CD PROJEKT RED",
		Publisher:        "CD PROJEKT RED",
		Languages:        "English, French, Italian, German, Spanish, Polish, Portuguese, Russian, Japanese, Chinese",
		SpecialOffer:     true,
		Categories:       []string{"RPG", "Open World", "Action"},
		Screenshots:      []string{
			"https://cdn.cloudflare.steamstatic.com/steam/apps/1091500/ss_84f85cfe8a6ad763d4f7c7444fc9dd75b9fd8bba.jpg",
			"https://cdn.cloudflare.steamstatic.com/steam/apps/1091500/ss_d28af00a6a1d9f36abbfc690393fec65f0c86537.jpg",
			"https://cdn.cloudflare.steamstatic.com/steam/apps/1091500/ss_9284d1c5b148a948ebe7ffc1f1121b06e0a5eebf.jpg",
			"https://cdn.cloudflare.steamstatic.com/steam/apps/1091500/ss_b529e4cb8ef2bc0e138b75f63fa1ce21c487e4ce.jpg",
		},
	},
	{
		Title:            "God of War",
		ShortDescription: "Enter the Norse realm. His vengeance against the Gods of Olympus years behind him, Kratos now lives as a man in the realm of Norse Gods and monsters.",
		Description:      "Enter the Norse realm. His vengeance against the Gods of Olympus years behind him, Kratos now lives as a man in the realm of Norse Gods and monsters. It is in this harsh, unforgiving world that he must fight to survive… and teach his son to do the same.",
		HeaderImage:      "https://cdn.cloudflare.steamstatic.com/steam/apps/1593500/header.jpg?t=1650554420",
		Price:            "39.99",
		OriginalPrice:    "49.99",
		Discount:         20,
		ReleaseDate:      "2022-01-14",
		Developer:        "Santa Monica Studio",
		Publisher:        "PlayStation PC LLC",
		Languages:        "English, French, Italian, German, Spanish, Japanese, Korean, Polish, Portuguese, Russian, Turkish",
		SpecialOffer:     true,
		Categories:       []string{"Action", "Adventure"},
	},
	{
		Title:            "Resident Evil 4",
		ShortDescription: "Survival is just the beginning. With modern gameplay, a reimagined storyline, and detailed graphics, Resident Evil 4 is reborn",
		Description:      "Survival is just the beginning. Six years have passed since the biological disaster in Raccoon City. Leon S. Kennedy, one of the survivors, tracks the president's kidnapped daughter to a secluded European village, where there is something terribly wrong with the locals.",
		HeaderImage:      "https://cdn.cloudflare.steamstatic.com/steam/apps/1817070/header.jpg?t=1682624042",
		Price:            "50.99",
		OriginalPrice:    "59.99",
		Discount:         15,
		ReleaseDate:      "2023-03-24",
		Developer:        "CAPCOM Co., Ltd.",
		Publisher:        "CAPCOM Co., Ltd.",
		Languages:        "English, French, Italian, German, Spanish, Japanese, Korean, Polish, Portuguese, Russian, Chinese",
		SpecialOffer:     true,
		Categories:       []string{"Action", "Adventure"},
	},
	{
		Title:            "Starfield",
		ShortDescription: "In this next generation role-playing game, create any character you want and explore with unparalleled freedom",
		Description:      "Starfield is the first new universe in 25 years from Bethesda Game Studios, the award-winning creators of The Elder Scrolls V: Skyrim and Fallout 4. In this next generation role-playing game set amongst the stars, create any character you want and explore with unparalleled freedom as you embark on an epic journey to answer humanity's greatest mystery.",
		HeaderImage:      "https://cdn.cloudflare.steamstatic.com/steam/apps/1716740/header.jpg?t=1685745137",
		Price:            "69.99",
		OriginalPrice:    "69.99",
		Discount:         0,
		ReleaseDate:      "2023-09-06",
		Developer:        "Bethesda Game Studios",
		Publisher:        "Bethesda Softworks",
		Languages:        "English, French, German, Spanish, Italian, Japanese, Polish, Portuguese, Russian, Chinese",
		NewRelease:       true,
		Categories:       []string{"RPG", "Open World", "Adventure"},
	},
	{
		Title:            "Hogwarts Legacy",
		ShortDescription: "Experience Hogwarts in the 1800s. Your character is a student who holds the key to an ancient secret that threatens to tear the wizarding world apart",
		Description:      "Hogwarts Legacy is an immersive, open-world action RPG set in the world first introduced in the Harry Potter books. Embark on a journey through familiar and new locations as you explore and discover fantastic beasts, customize your character and craft potions, master spell casting, upgrade talents, and become the wizard you want to be.",
		HeaderImage:      "https://cdn.cloudflare.steamstatic.com/steam/apps/990080/header.jpg?t=1687383930",
		Price:            "59.99",
		OriginalPrice:    "59.99",
		Discount:         0,
		ReleaseDate:      "2023-02-10",
		Developer:        "Avalanche Software",
		Publisher:        "Warner Bros. Games",
		Languages:        "English, French, Italian, German, Spanish, Japanese, Korean, Polish, Portuguese, Russian, Chinese",
		NewRelease:       true,
		Categories:       []string{"RPG", "Open World", "Adventure"},
	},
	{
		Title:            "Street Fighter 6",
		ShortDescription: "Here comes the newest challenger in the Street Fighter series! The fighting game begins a new era!",
		Description:      "Street Fighter 6 spans three distinct game modes, including World Tour, Fighting Ground and Battle Hub. Diverse play options combine with expanded gameplay features and the new Modern Control Type to make Street Fighter 6 accessible to players of all skill levels.",
		HeaderImage:      "https://cdn.cloudflare.steamstatic.com/steam/apps/1919590/header.jpg?t=1686847726",
		Price:            "59.99",
		OriginalPrice:    "59.99",
		Discount:         0,
		ReleaseDate:      "2023-06-02",
		Developer:        "CAPCOM Co., Ltd.",
		Publisher:        "CAPCOM Co., Ltd.",
		Languages:        "English, French, Italian, German, Spanish, Japanese, Korean, Portuguese, Russian, Chinese",
		NewRelease:       true,
		Categories:       []string{"Action", "Multiplayer"},
	},
	{
		Title:            "Diablo IV",
		ShortDescription: "Fight for humanity's salvation in Diablo IV, the ultimate action RPG adventure",
		Description:      "Join the fight for humanity's salvation in Diablo IV, the ultimate action RPG experience. A new chapter of the Diablo saga is here: a choice of 5 classes, an expansive open world, formidable hostile families, and unimaginable nightmares waiting to be vanquished.",
		HeaderImage:      "https://cdn.cloudflare.steamstatic.com/steam/apps/1966720/header.jpg?t=1686838243",
		Price:            "69.99",
		OriginalPrice:    "69.99",
		Discount:         0,
		ReleaseDate:      "2023-06-06",
		Developer:        "Blizzard Entertainment",
		Publisher:        "Blizzard Entertainment",
		Languages:        "English, French, Italian, German, Spanish, Japanese, Korean, Polish, Portuguese, Russian, Chinese",
		NewRelease:       true,
		Categories:       []string{"RPG", "Action", "Multiplayer"},
	},
	{
		Title:            "Grand Theft Auto V",
		ShortDescription: "Experience Rockstar Games' critically acclaimed open world game. The ever-evolving online version comes included.",
		Description:      "Grand Theft Auto V for PC offers players the option to explore the award-winning world of Los Santos and Blaine County in resolutions of up to 4k and beyond, as well as the chance to experience the game running at 60 frames per second.",
		HeaderImage:      "https://cdn.cloudflare.steamstatic.com/steam/apps/271590/header.jpg?t=1678296348",
		Price:            "29.99",
		OriginalPrice:    "29.99",
		Discount:         0,
		ReleaseDate:      "2015-04-14",
		Developer:        "Rockstar North",
		Publisher:        "Rockstar Games",
		Languages:        "English, French, Italian, German, Spanish, Japanese, Korean, Polish, Portuguese, Russian, Chinese",
		Popular:          true,
		Categories:       []string{"Action", "Open World", "Multiplayer"},
	},
	{
		Title:            "Dota 2",
		ShortDescription: "Every day, millions of players worldwide enter battle as one of over a hundred Dota heroes",
		Description:      "Every day, millions of players worldwide enter battle as one of over a hundred Dota heroes. And no matter if it's their 10th hour of play or 1,000th, there's always something new to discover. With regular updates that ensure a constant evolution of gameplay, features, and heroes, Dota 2 has taken on a life of its own.",
		HeaderImage:      "https://cdn.cloudflare.steamstatic.com/steam/apps/570/header.jpg?t=1682639497",
		Price:            "0.00",
		OriginalPrice:    "0.00",
		Discount:         0,
		ReleaseDate:      "2013-07-09",
		Developer:        "Valve",
		Publisher:        "Valve",
		Languages:        "English, French, German, Spanish, Italian, Russian, Chinese, Japanese, Korean, Portuguese",
		Popular:          true,
		Categories:       []string{"Strategy", "Multiplayer"},
	},
	{
		Title:            "Apex Legends",
		ShortDescription: "A free-to-play battle royale game where legendary competitors battle for glory, fame, and fortune",
		Description:      "Apex Legends is the award-winning, free-to-play Hero Shooter from Respawn Entertainment. Conquer with character in Apex Legends, a free-to-play Hero Shooter where legendary characters with powerful abilities team up to battle for fame & fortune on the fringes of the Frontier.",
		HeaderImage:      "https://cdn.cloudflare.steamstatic.com/steam/apps/1172470/header.jpg?t=1683150208",
		Price:            "0.00",
		OriginalPrice:    "0.00",
		Discount:         0,
		ReleaseDate:      "2020-11-04",
		Developer:        "Respawn Entertainment",
		Publisher:        "Electronic Arts",
		Languages:        "English, French, German, Spanish, Italian, Japanese, Korean, Polish, Portuguese, Russian, Chinese",
		Featured:         true,
		Popular:          true,
		Categories:       []string{"FPS", "Multiplayer", "Action"},
		Screenshots:      []string{
			"https://cdn.cloudflare.steamstatic.com/steam/apps/1172470/ss_2f24571d106cbe49b68a142e5e5474e5c12b03c3.jpg",
			"https://cdn.cloudflare.steamstatic.com/steam/apps/1172470/ss_ad14a7a36b9288aff1ae9ab600ecc3f5bc4309a1.jpg",
			"https://cdn.cloudflare.steamstatic.com/steam/apps/1172470/ss_b5627aca62aef0b66d197b087aa9baf3a2988c8f.jpg",
			"https://cdn.cloudflare.steamstatic.com/steam/apps/1172470/ss_ecaef8580ce257f43d3d7176a4cf8c77961f7b04.jpg",
		},
	},
	{
		Title:            "Counter-Strike: Global Offensive",
		ShortDescription: "A team-based first-person shooter game pitting two teams against each other: the Terrorists and the Counter-Terrorists",
		Description:      "Counter-Strike: Global Offensive (CS: GO) expands upon the team-based action gameplay that it pioneered when it was launched 19 years ago. CS: GO features new maps, characters, weapons, and game modes, and delivers updated versions of the classic CS content.",
		HeaderImage:      "https://cdn.cloudflare.steamstatic.com/steam/apps/730/header.jpg?t=1683566506",
		Price:            "0.00",
		OriginalPrice:    "0.00",
		Discount:         0,
		ReleaseDate:      "2012-08-21",
		Developer:        "Valve",
		Publisher:        "Valve",
		Languages:        "English, French, German, Spanish, Italian, Japanese, Korean, Polish, Portuguese, Russian, Chinese",
		Popular:          true,
		Categories:       []string{"FPS", "Multiplayer", "Action"},
	},
}
