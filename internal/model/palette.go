package model

// Season identifies one of the four seasonal color palettes.
type Season string

// Season constants.
const (
	SeasonSpring Season = "Spring"
	SeasonSummer Season = "Summer"
	SeasonAutumn Season = "Autumn"
	SeasonWinter Season = "Winter"
)

// Seasons returns every season in canonical order.
func Seasons() []Season {
	return []Season{SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter}
}

// SeasonalPalette is a named set of color swatches.
type SeasonalPalette struct {
	Name        Season   `json:"name"`
	Description string   `json:"description"`
	Colors      []string `json:"colors"`
}

// RecommendationSet is the recommendation derived from a single undertone.
// All holds the full palette table for side by side comparison.
type RecommendationSet struct {
	Recommended []Season          `json:"recommended"`
	All         []SeasonalPalette `json:"all"`
}

// IsRecommended reports whether s is part of the recommended seasons.
func (r RecommendationSet) IsRecommended(s Season) bool {
	for _, rec := range r.Recommended {
		if rec == s {
			return true
		}
	}
	return false
}

var seasonalPalettes = []SeasonalPalette{
	{
		Name:        SeasonSpring,
		Colors:      []string{"#FF5733", "#FFC300", "#DAF7A6", "#C70039", "#900C3F"},
		Description: "Warm, golden hues that bring brightness and energy.",
	},
	{
		Name:        SeasonSummer,
		Colors:      []string{"#AED6F1", "#85C1E9", "#D2B4DE", "#A569BD", "#F5B7B1"},
		Description: "Cool, muted tones that create a soft, gentle appearance.",
	},
	{
		Name:        SeasonAutumn,
		Colors:      []string{"#BA4A00", "#D35400", "#7D6608", "#784212", "#6E2C00"},
		Description: "Rich, earthy shades that reflect warmth and depth.",
	},
	{
		Name:        SeasonWinter,
		Colors:      []string{"#1B4F72", "#2E86C1", "#8E44AD", "#C0392B", "#17202A"},
		Description: "Bold, cool colors that create dramatic contrast.",
	},
}

// SeasonalPalettes returns a copy of the palette table in canonical order.
func SeasonalPalettes() []SeasonalPalette {
	out := make([]SeasonalPalette, len(seasonalPalettes))
	for i, p := range seasonalPalettes {
		out[i] = p.clone()
	}
	return out
}

// PaletteFor returns the palette for a season.
func PaletteFor(s Season) (SeasonalPalette, bool) {
	for _, p := range seasonalPalettes {
		if p.Name == s {
			return p.clone(), true
		}
	}
	return SeasonalPalette{}, false
}

func (p SeasonalPalette) clone() SeasonalPalette {
	colors := make([]string, len(p.Colors))
	copy(colors, p.Colors)
	p.Colors = colors
	return p
}
