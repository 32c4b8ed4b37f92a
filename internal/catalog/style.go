package catalog

import "assetgen/internal/domain"

// ArtDirection is the shared style prefix every asset is rendered with.
const ArtDirection = "2D pixel art, isometric view, fantasy RPG style, " +
	"warm color palette, soft shadows, 16-bit era aesthetic, " +
	"transparent background, game asset, consistent top-left lighting, " +
	"clean crisp pixel edges"

// Profile fixes the output size and style augmentation of one category.
type Profile struct {
	Dimensions domain.Dimensions
	Extra      string
}

var profiles = map[domain.Category]Profile{
	domain.CategoryTerrain: {
		Dimensions: domain.Dimensions{Width: 48, Height: 48},
		Extra:      "isometric diamond-shaped terrain tile, top-down 2:1 ratio, 3D block with visible top face and two darker side faces for depth",
	},
	domain.CategoryBuilding: {
		Dimensions: domain.Dimensions{Width: 96, Height: 128},
		Extra:      "isometric building structure, detailed architectural pixel art, slightly larger than terrain tiles, sits on ground",
	},
	domain.CategoryResource: {
		Dimensions: domain.Dimensions{Width: 32, Height: 32},
		Extra:      "small game resource object sprite, clear silhouette, recognizable at small size",
	},
	domain.CategoryItem: {
		Dimensions: domain.Dimensions{Width: 24, Height: 24},
		Extra:      "game inventory icon, clean and recognizable at very small size, simple but charming pixel art, item on transparent background",
	},
	domain.CategoryCharacter: {
		Dimensions: domain.Dimensions{Width: 48, Height: 64},
		Extra:      "chibi/super-deformed RPG character sprite, large head (40% of body), big expressive eyes, small body, front-facing view",
	},
	domain.CategoryUIMinimap: {
		Dimensions: domain.Dimensions{Width: 12, Height: 12},
		Extra:      "tiny minimap marker icon, extremely simple, 2-3 colors max, must be recognizable at 12x12 pixels",
	},
	domain.CategoryUIEmotion: {
		Dimensions: domain.Dimensions{Width: 16, Height: 16},
		Extra:      "small emoji-style emotion bubble icon, expressive face, simple shapes, cute",
	},
	domain.CategoryUIAction: {
		Dimensions: domain.Dimensions{Width: 16, Height: 16},
		Extra:      "small action indicator icon, simple and clear silhouette, game HUD style",
	},
	domain.CategoryUIBubble: {
		Dimensions: domain.Dimensions{Width: 64, Height: 48},
		Extra:      "speech bubble UI frame element, clean rounded shape with tail/pointer",
	},
}

// ProfileFor returns the size and augmentation for c.
func ProfileFor(c domain.Category) (Profile, bool) {
	p, ok := profiles[c]
	return p, ok
}

func commonStyle() domain.StyleFields {
	return domain.StyleFields{
		ArtStyle:     "2D pixel art",
		View:         "isometric view",
		Genre:        "fantasy RPG style",
		Palette:      "warm color palette",
		Shadows:      "soft shadows",
		Era:          "16-bit era aesthetic",
		Background:   "transparent background (PNG with alpha)",
		AssetType:    "game asset",
		Lighting:     "consistent top-left lighting",
		Edges:        "clean crisp pixel edges, no anti-aliasing blur",
		ArtDirection: ArtDirection,
	}
}

type entry struct {
	category    domain.Category
	path        string
	title       string
	description string
}

// spec expands a table entry using its category profile. Dimensions always
// come from the profile.
func (e entry) spec() domain.AssetSpec {
	style := commonStyle()
	p, ok := profiles[e.category]
	if ok {
		style.Extra = p.Extra
	}
	return domain.AssetSpec{
		Title:       e.title,
		Description: e.description,
		Category:    e.category,
		Dimensions:  p.Dimensions,
		Style:       style,
		OutputPath:  e.path,
	}
}
