// Package model defines the core domain models used throughout the application.
package model

import (
	"fmt"
	"strings"
)

// Undertone is the skin undertone produced by a classifier.
type Undertone string

// Undertone constants.
const (
	UndertoneWarm    Undertone = "warm"
	UndertoneCool    Undertone = "cool"
	UndertoneNeutral Undertone = "neutral"
)

// Undertones returns every undertone in display order.
func Undertones() []Undertone {
	return []Undertone{UndertoneWarm, UndertoneCool, UndertoneNeutral}
}

// IsValid reports whether u is one of the defined undertones.
func (u Undertone) IsValid() bool {
	switch u {
	case UndertoneWarm, UndertoneCool, UndertoneNeutral:
		return true
	default:
		return false
	}
}

// Title returns the undertone with an upper-case first letter.
func (u Undertone) Title() string {
	if u == "" {
		return ""
	}
	s := string(u)
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseUndertone parses a case-insensitive undertone name.
func ParseUndertone(s string) (Undertone, error) {
	u := Undertone(strings.ToLower(strings.TrimSpace(s)))
	if !u.IsValid() {
		return "", fmt.Errorf("unknown undertone %q (want warm, cool or neutral)", s)
	}
	return u, nil
}

// ToneRecord is the result of classifying one image.
type ToneRecord struct {
	Tone       string    `json:"tone"`
	Undertone  Undertone `json:"undertone"`
	Confidence int       `json:"confidence"`
}

// Validate checks that the record is structurally sound.
func (r ToneRecord) Validate() error {
	if r.Tone == "" {
		return fmt.Errorf("tone record has no tone name")
	}
	if !r.Undertone.IsValid() {
		return fmt.Errorf("tone record has invalid undertone %q", r.Undertone)
	}
	if r.Confidence < 0 || r.Confidence > 100 {
		return fmt.Errorf("tone record confidence %d outside 0-100", r.Confidence)
	}
	return nil
}

// ToneSwatch is a catalog entry pairing a tone name with its undertone and a
// representative skin color.
type ToneSwatch struct {
	Name      string
	Hex       string
	Undertone Undertone
}

// SkinTones is a simplified Monk skin tone scale.
var SkinTones = []ToneSwatch{
	{Name: "Very Light", Hex: "#f6ede4", Undertone: UndertoneCool},
	{Name: "Light", Hex: "#f3e7db", Undertone: UndertoneCool},
	{Name: "Light Medium", Hex: "#f0d9c9", Undertone: UndertoneNeutral},
	{Name: "Medium", Hex: "#ebc8a4", Undertone: UndertoneWarm},
	{Name: "Medium Dark", Hex: "#c68e6e", Undertone: UndertoneWarm},
	{Name: "Dark", Hex: "#9b6b4e", Undertone: UndertoneNeutral},
	{Name: "Deep", Hex: "#7a5032", Undertone: UndertoneCool},
	{Name: "Very Deep", Hex: "#5a3825", Undertone: UndertoneCool},
	{Name: "Deep Dark", Hex: "#4a2c18", Undertone: UndertoneWarm},
	{Name: "Deepest", Hex: "#33241a", Undertone: UndertoneWarm},
}
