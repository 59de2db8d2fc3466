package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/tonematch/internal/engine"
	"github.com/Veraticus/tonematch/internal/model"
	"github.com/Veraticus/tonematch/internal/palette"
	"github.com/Veraticus/tonematch/internal/tui/viewmodel"
)

// ErrNoResult is returned when a snapshot carries no resolved analysis.
var ErrNoResult = errors.New("analysis has no result")

// Report is the machine-readable form of a resolved analysis.
type Report struct {
	Image       *ReportImage            `json:"image,omitempty"`
	Tone        string                  `json:"tone"`
	ToneHex     string                  `json:"tone_hex"`
	Undertone   model.Undertone         `json:"undertone"`
	Recommended []model.Season          `json:"recommended"`
	Palettes    []model.SeasonalPalette `json:"palettes"`
	Confidence  int                     `json:"confidence"`
}

// ReportImage describes the analyzed photo.
type ReportImage struct {
	Name   string            `json:"name"`
	Format string            `json:"format"`
	Source model.ImageSource `json:"source"`
	Width  int               `json:"width"`
	Height int               `json:"height"`
}

// NewReport builds a report from a resolved snapshot.
func NewReport(snap engine.Snapshot) (Report, error) {
	if snap.State != engine.StateResolved || snap.Record == nil || snap.Recommendations == nil {
		return Report{}, ErrNoResult
	}

	report := Report{
		Tone:        snap.Record.Tone,
		ToneHex:     palette.SkinToneColor(snap.Record.Tone),
		Undertone:   snap.Record.Undertone,
		Confidence:  snap.Record.Confidence,
		Recommended: snap.Recommendations.Recommended,
		Palettes:    snap.Recommendations.All,
	}
	if snap.Image != nil {
		report.Image = &ReportImage{
			Name:   snap.Image.Name,
			Format: snap.Image.Format,
			Source: snap.Image.Source,
			Width:  snap.Image.Width,
			Height: snap.Image.Height,
		}
	}
	return report, nil
}

// WriteJSON writes the report for snap as indented JSON.
func WriteJSON(w io.Writer, snap engine.Snapshot) error {
	report, err := NewReport(snap)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// RenderSnapshot writes a styled summary of a resolved snapshot. Only the
// recommended palettes are listed unless showAll is set.
func RenderSnapshot(w io.Writer, snap engine.Snapshot, showAll bool) error {
	view := viewmodel.Project(snap, viewmodel.Options{ShowAll: showAll})
	if !view.HasResult() {
		return ErrNoResult
	}
	result := view.Result

	var b strings.Builder
	b.WriteString(FormatTitle("Your color analysis"))
	b.WriteString("\n")

	if view.Capture.ImageName != "" {
		info := view.Capture.ImageName
		if view.Capture.ImageSize != "" {
			info += " · " + view.Capture.ImageSize
		}
		b.WriteString(SubtleStyle.Render("Photo: "+info) + "\n\n")
	}

	lines := []string{
		LabelStyle.Render("Skin tone") + BoldStyle.Render(result.Tone) + "  " +
			RenderSwatch(result.ToneSwatch.Hex, result.ToneSwatch.TextColor, "    "),
		LabelStyle.Render("Undertone") + BoldStyle.Render(result.Undertone),
		LabelStyle.Render("Confidence") + result.Confidence,
	}
	b.WriteString(BoxStyle.Render(strings.Join(lines, "\n")))
	b.WriteString("\n\n")

	if names := result.RecommendedNames(); len(names) > 0 {
		b.WriteString(BoldStyle.Render("Recommended for you: "+strings.Join(names, ", ")) + "\n\n")
	}

	b.WriteString(renderPaletteViews(result.Palettes))

	if result.Hidden > 0 {
		b.WriteString(SubtleStyle.Render(fmt.Sprintf("%d more palette(s) hidden. Use --all to compare all.", result.Hidden)))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderPalettes writes the palette table. Palettes recommended for
// undertone are marked; an empty undertone marks none.
func RenderPalettes(w io.Writer, undertone model.Undertone) error {
	var recommended model.RecommendationSet
	if undertone != "" {
		recommended = palette.Recommend(undertone)
	}

	views := make([]viewmodel.PaletteView, 0, len(model.Seasons()))
	for _, p := range model.SeasonalPalettes() {
		pv := viewmodel.PaletteView{
			Name:        string(p.Name),
			Description: p.Description,
			Recommended: recommended.IsRecommended(p.Name),
		}
		for _, hex := range p.Colors {
			pv.Swatches = append(pv.Swatches, viewmodel.SwatchView{Hex: hex, TextColor: palette.ContrastColor(hex)})
		}
		views = append(views, pv)
	}

	title := "Seasonal palettes"
	if undertone != "" {
		title += " for " + strings.ToLower(undertone.Title()) + " undertones"
	}

	_, err := io.WriteString(w, FormatTitle(title)+"\n"+renderPaletteViews(views))
	return err
}

func renderPaletteViews(palettes []viewmodel.PaletteView) string {
	var b strings.Builder
	for _, pv := range palettes {
		header := BoldStyle.Render(pv.Name)
		if pv.Recommended {
			header += " " + BadgeStyle.Render(StarIcon+" recommended")
		}
		b.WriteString(header + "\n")
		b.WriteString(SubtleStyle.Render(pv.Description) + "\n")

		chips := make([]string, 0, len(pv.Swatches))
		for _, s := range pv.Swatches {
			chips = append(chips, RenderSwatch(s.Hex, s.TextColor, s.Hex))
		}
		b.WriteString(strings.Join(chips, "") + "\n\n")
	}
	return b.String()
}
