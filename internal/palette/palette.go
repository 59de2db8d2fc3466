// Package palette maps skin undertones to seasonal color recommendations.
package palette

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/Veraticus/tonematch/internal/model"
)

const (
	black = "#000000"
	white = "#ffffff"
)

// Recommend returns the recommendation set for an undertone. It is pure and
// total; an undefined undertone is treated as neutral.
func Recommend(u model.Undertone) model.RecommendationSet {
	var recommended []model.Season

	switch u {
	case model.UndertoneWarm:
		recommended = []model.Season{model.SeasonSpring, model.SeasonAutumn}
	case model.UndertoneCool:
		recommended = []model.Season{model.SeasonSummer, model.SeasonWinter}
	default:
		recommended = model.Seasons()
	}

	return model.RecommendationSet{
		Recommended: recommended,
		All:         model.SeasonalPalettes(),
	}
}

// RecommendedPalettes resolves the recommended seasons of a set to their
// palettes, preserving recommendation order.
func RecommendedPalettes(set model.RecommendationSet) []model.SeasonalPalette {
	out := make([]model.SeasonalPalette, 0, len(set.Recommended))
	for _, season := range set.Recommended {
		for _, p := range set.All {
			if p.Name == season {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// Others returns the palettes of a set that are not recommended.
func Others(set model.RecommendationSet) []model.SeasonalPalette {
	var out []model.SeasonalPalette
	for _, p := range set.All {
		if !set.IsRecommended(p.Name) {
			out = append(out, p)
		}
	}
	return out
}

// IsHexColor reports whether s is a #RRGGBB color.
func IsHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	_, err := colorful.Hex(s)
	return err == nil
}

// ContrastColor returns black for light backgrounds and white for dark ones,
// using perceived luminance.
func ContrastColor(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return black
	}

	r, g, b := c.RGB255()
	luminance := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255
	if luminance > 0.5 {
		return black
	}
	return white
}

// SkinToneColor returns the swatch color for a catalog tone name, or black
// when the name is unknown.
func SkinToneColor(name string) string {
	for _, tone := range model.SkinTones {
		if strings.EqualFold(tone.Name, name) {
			return tone.Hex
		}
	}
	return black
}
