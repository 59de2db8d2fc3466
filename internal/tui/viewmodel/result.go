package viewmodel

// ResultView is the display data for a resolved analysis.
type ResultView struct {
	Tone       string
	Undertone  string
	Confidence string
	ToneSwatch SwatchView
	Palettes   []PaletteView
	// Hidden counts palettes left out because only recommendations are shown.
	Hidden          int
	ConfidenceValue int
}

// PaletteView is one seasonal palette.
type PaletteView struct {
	Name        string
	Description string
	Swatches    []SwatchView
	Recommended bool
}

// SwatchView is a single color chip with a readable label color.
type SwatchView struct {
	Hex       string
	TextColor string
}

// RecommendedNames returns the names of the recommended palettes in display order.
func (r ResultView) RecommendedNames() []string {
	var names []string
	for _, p := range r.Palettes {
		if p.Recommended {
			names = append(names, p.Name)
		}
	}
	return names
}
