package catalog

import "github.com/matchday-api/internal/domain"

var allSizes = []string{"S", "M", "L", "XL"}

// kits is the storefront catalog. Images resolve against the S3 image
// store when one is configured; the Image field is the static fallback.
var kits = []domain.Product{
	{
		ID:          "kit-aurora-home",
		Name:        "Aurora FC Home Kit",
		Club:        "Aurora FC",
		Season:      "2025/26",
		Price:       94,
		Description: "Breathable mesh home shirt with the aurora gradient chest band.",
		Image:       "/images/kits/aurora-home.png",
		Home:        true,
		Badge:       "New season",
		Colors:      []string{"#58f2ff", "#05051a"},
		Sizes:       allSizes,
	},
	{
		ID:          "kit-aurora-away",
		Name:        "Aurora FC Away Kit",
		Club:        "Aurora FC",
		Season:      "2025/26",
		Price:       89,
		Description: "Deep-space navy away shirt with reflective piping.",
		Image:       "/images/kits/aurora-away.png",
		Home:        false,
		Badge:       "Away nights",
		Colors:      []string{"#0b1030", "#ec66ff"},
		Sizes:       allSizes,
	},
	{
		ID:          "kit-velocity-home",
		Name:        "Velocity United Home Kit",
		Club:        "Velocity United",
		Season:      "2025/26",
		Price:       99,
		Description: "Speed-stripe home shirt in the classic magenta and black.",
		Image:       "/images/kits/velocity-home.png",
		Home:        true,
		Badge:       "Club classic",
		Colors:      []string{"#ec66ff", "#05051a"},
		Sizes:       allSizes,
	},
	{
		ID:          "kit-velocity-third",
		Name:        "Velocity United Third Kit",
		Club:        "Velocity United",
		Season:      "2025/26",
		Price:       104,
		Description: "Limited third shirt with glow-in-the-dark crest.",
		Image:       "/images/kits/velocity-third.png",
		Home:        false,
		Badge:       "Limited drop",
		Colors:      []string{"#121212", "#58f2ff"},
		Sizes:       []string{"S", "M", "L"},
		Limited:     true,
	},
	{
		ID:          "kit-borealis-home",
		Name:        "Borealis SC Home Kit",
		Club:        "Borealis SC",
		Season:      "2025/26",
		Price:       92,
		Description: "Ice-white home shirt with the northern lights sleeve print.",
		Image:       "/images/kits/borealis-home.png",
		Home:        true,
		Badge:       "Fan favourite",
		Colors:      []string{"#f5f7ff", "#58f2ff"},
		Sizes:       allSizes,
	},
	{
		ID:          "kit-borealis-keeper",
		Name:        "Borealis SC Keeper Kit",
		Club:        "Borealis SC",
		Season:      "2025/26",
		Price:       86,
		Description: "Long-sleeve keeper shirt with padded elbows.",
		Image:       "/images/kits/borealis-keeper.png",
		Home:        false,
		Badge:       "Keeper",
		Colors:      []string{"#1fe07f", "#05051a"},
		Sizes:       []string{"M", "L", "XL"},
	},
}
