package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUndertone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Undertone
		wantErr bool
	}{
		{name: "warm", input: "warm", want: UndertoneWarm},
		{name: "mixed case with spaces", input: "  Cool ", want: UndertoneCool},
		{name: "neutral upper", input: "NEUTRAL", want: UndertoneNeutral},
		{name: "unknown", input: "olive", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUndertone(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUndertone_Title(t *testing.T) {
	assert.Equal(t, "Warm", UndertoneWarm.Title())
	assert.Equal(t, "Neutral", UndertoneNeutral.Title())
	assert.Equal(t, "", Undertone("").Title())
}

func TestToneRecord_Validate(t *testing.T) {
	tests := []struct {
		name    string
		record  ToneRecord
		wantErr bool
	}{
		{name: "valid", record: ToneRecord{Tone: "Medium", Undertone: UndertoneWarm, Confidence: 80}},
		{name: "zero confidence allowed", record: ToneRecord{Tone: "Medium", Undertone: UndertoneCool}},
		{name: "missing tone", record: ToneRecord{Undertone: UndertoneWarm, Confidence: 80}, wantErr: true},
		{name: "bad undertone", record: ToneRecord{Tone: "Medium", Undertone: "olive", Confidence: 80}, wantErr: true},
		{name: "confidence too high", record: ToneRecord{Tone: "Medium", Undertone: UndertoneWarm, Confidence: 101}, wantErr: true},
		{name: "negative confidence", record: ToneRecord{Tone: "Medium", Undertone: UndertoneWarm, Confidence: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSkinTones_CoverEveryUndertone(t *testing.T) {
	seen := make(map[Undertone]bool)
	for _, tone := range SkinTones {
		assert.NotEmpty(t, tone.Name)
		assert.True(t, tone.Undertone.IsValid(), tone.Name)
		seen[tone.Undertone] = true
	}
	for _, u := range Undertones() {
		assert.True(t, seen[u], "no catalog entry for %s", u)
	}
}

func TestSeasonalPalettes_ReturnsCopies(t *testing.T) {
	first := SeasonalPalettes()
	require.Len(t, first, 4)
	first[0].Colors[0] = "#000000"
	first[1].Name = "Monsoon"

	second := SeasonalPalettes()
	assert.Equal(t, "#FF5733", second[0].Colors[0])
	assert.Equal(t, SeasonSummer, second[1].Name)
}

func TestSeasonalPalettes_CanonicalOrderAndNonEmpty(t *testing.T) {
	palettes := SeasonalPalettes()
	for i, season := range Seasons() {
		assert.Equal(t, season, palettes[i].Name)
		assert.NotEmpty(t, palettes[i].Colors)
		assert.NotEmpty(t, palettes[i].Description)
	}
}

func TestPaletteFor(t *testing.T) {
	p, ok := PaletteFor(SeasonWinter)
	require.True(t, ok)
	assert.Equal(t, SeasonWinter, p.Name)

	_, ok = PaletteFor("Monsoon")
	assert.False(t, ok)
}

func TestRecommendationSet_IsRecommended(t *testing.T) {
	set := RecommendationSet{Recommended: []Season{SeasonSpring, SeasonAutumn}}
	assert.True(t, set.IsRecommended(SeasonSpring))
	assert.False(t, set.IsRecommended(SeasonWinter))
}

func TestImage_MIMEType(t *testing.T) {
	assert.Equal(t, "image/jpeg", Image{Format: "jpeg"}.MIMEType())
	assert.Equal(t, "image/webp", Image{Format: "webp"}.MIMEType())
	assert.Equal(t, "application/octet-stream", Image{Format: "heic"}.MIMEType())
	assert.True(t, Image{}.IsEmpty())
}
