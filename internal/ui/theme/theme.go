// Package theme holds the design tokens shared by every UI component:
// colors, spacing, typography, shadows, radii, gradients and breakpoints.
//
// The table is built once at package init and handed out by value, so no
// caller can change what another component sees.
package theme

import (
	"fmt"

	"turnos-web/internal/domain/entity"
)

// ColorToken names one entry of the color table
type ColorToken string

const (
	ColorPrimary      ColorToken = "primary"
	ColorPrimaryLight ColorToken = "primaryLight"
	ColorSecondary    ColorToken = "secondary"
	ColorAccent       ColorToken = "accent"
	ColorAccentRed    ColorToken = "accentRed"
	ColorSuccess      ColorToken = "success"
	ColorWarning      ColorToken = "warning"
	ColorBackground   ColorToken = "background"
	ColorSurface      ColorToken = "surface"
	ColorText         ColorToken = "text"
	ColorTextMuted    ColorToken = "textMuted"
	ColorBorder       ColorToken = "border"
	ColorWhite        ColorToken = "white"
)

type Colors struct {
	Primary      string `json:"primary"`
	PrimaryLight string `json:"primaryLight"`
	Secondary    string `json:"secondary"`
	Accent       string `json:"accent"`
	AccentRed    string `json:"accentRed"`
	Success      string `json:"success"`
	Warning      string `json:"warning"`
	Background   string `json:"background"`
	Surface      string `json:"surface"`
	Text         string `json:"text"`
	TextMuted    string `json:"textMuted"`
	Border       string `json:"border"`
	White        string `json:"white"`
}

// Value resolves a token to its CSS color. Unknown tokens resolve to Text.
func (c Colors) Value(token ColorToken) string {
	switch token {
	case ColorPrimary:
		return c.Primary
	case ColorPrimaryLight:
		return c.PrimaryLight
	case ColorSecondary:
		return c.Secondary
	case ColorAccent:
		return c.Accent
	case ColorAccentRed:
		return c.AccentRed
	case ColorSuccess:
		return c.Success
	case ColorWarning:
		return c.Warning
	case ColorBackground:
		return c.Background
	case ColorSurface:
		return c.Surface
	case ColorTextMuted:
		return c.TextMuted
	case ColorBorder:
		return c.Border
	case ColorWhite:
		return c.White
	default:
		return c.Text
	}
}

type Spacing struct {
	XS  string `json:"xs"`
	SM  string `json:"sm"`
	MD  string `json:"md"`
	LG  string `json:"lg"`
	XL  string `json:"xl"`
	XXL string `json:"xxl"`
}

type FontSizes struct {
	XS   string `json:"xs"`
	SM   string `json:"sm"`
	Base string `json:"base"`
	LG   string `json:"lg"`
	XL   string `json:"xl"`
	XXL  string `json:"xxl"`
	XXXL string `json:"xxxl"`
}

type FontWeights struct {
	Regular  int `json:"regular"`
	Medium   int `json:"medium"`
	Semibold int `json:"semibold"`
	Bold     int `json:"bold"`
}

type Typography struct {
	FontFamily  string      `json:"fontFamily"`
	HeadingFont string      `json:"headingFont"`
	Sizes       FontSizes   `json:"sizes"`
	Weights     FontWeights `json:"weights"`
	LineHeight  string      `json:"lineHeight"`
}

type Shadows struct {
	SM string `json:"sm"`
	MD string `json:"md"`
	LG string `json:"lg"`
	XL string `json:"xl"`
}

type Radii struct {
	SM   string `json:"sm"`
	MD   string `json:"md"`
	LG   string `json:"lg"`
	Full string `json:"full"`
}

type Gradients struct {
	Primary string `json:"primary"`
	Accent  string `json:"accent"`
	Header  string `json:"header"`
	Danger  string `json:"danger"`
}

type Breakpoints struct {
	Mobile  string `json:"mobile"`
	Tablet  string `json:"tablet"`
	Desktop string `json:"desktop"`
	Wide    string `json:"wide"`
}

// MinWidth returns a CSS media query matching viewports at least as wide as bp
func MinWidth(bp string) string {
	return fmt.Sprintf("@media (min-width: %s)", bp)
}

// Palette is the subset of colors that flips between light and dark mode
type Palette struct {
	Background  string `json:"background"`
	Surface     string `json:"surface"`
	Text        string `json:"text"`
	TextMuted   string `json:"textMuted"`
	Border      string `json:"border"`
	Spinner     string `json:"spinner"`
	SpinnerBase string `json:"spinnerBase"`
}

type Tokens struct {
	Colors      Colors      `json:"colors"`
	Spacing     Spacing     `json:"spacing"`
	Typography  Typography  `json:"typography"`
	Shadows     Shadows     `json:"shadows"`
	Radii       Radii       `json:"borderRadius"`
	Gradients   Gradients   `json:"gradients"`
	Breakpoints Breakpoints `json:"breakpoints"`
	Light       Palette     `json:"light"`
	Dark        Palette     `json:"dark"`
}

var tokens = build()

// Default returns a copy of the design token table
func Default() Tokens {
	return tokens
}

// PaletteFor picks the light or dark palette
func PaletteFor(mode entity.ThemeMode) Palette {
	if mode.IsDark() {
		return tokens.Dark
	}
	return tokens.Light
}

func linearGradient(from, to string) string {
	return fmt.Sprintf("linear-gradient(135deg, %s 0%%, %s 100%%)", from, to)
}

func build() Tokens {
	colors := Colors{
		Primary:      "#0f4c81",
		PrimaryLight: "#3b7bbf",
		Secondary:    "#2c3e50",
		Accent:       "#00a8a8",
		AccentRed:    "#e53e3e",
		Success:      "#38a169",
		Warning:      "#dd6b20",
		Background:   "#f7fafc",
		Surface:      "#ffffff",
		Text:         "#1a202c",
		TextMuted:    "#718096",
		Border:       "#e2e8f0",
		White:        "#ffffff",
	}

	return Tokens{
		Colors: colors,
		Spacing: Spacing{
			XS:  "4px",
			SM:  "8px",
			MD:  "16px",
			LG:  "24px",
			XL:  "32px",
			XXL: "48px",
		},
		Typography: Typography{
			FontFamily:  "'Inter', 'Segoe UI', Roboto, sans-serif",
			HeadingFont: "'Poppins', 'Segoe UI', sans-serif",
			Sizes: FontSizes{
				XS:   "0.75rem",
				SM:   "0.875rem",
				Base: "1rem",
				LG:   "1.125rem",
				XL:   "1.25rem",
				XXL:  "1.5rem",
				XXXL: "2rem",
			},
			Weights: FontWeights{
				Regular:  400,
				Medium:   500,
				Semibold: 600,
				Bold:     700,
			},
			LineHeight: "1.5",
		},
		Shadows: Shadows{
			SM: "0 1px 2px rgba(0, 0, 0, 0.05)",
			MD: "0 4px 6px rgba(0, 0, 0, 0.1)",
			LG: "0 10px 15px rgba(0, 0, 0, 0.1)",
			XL: "0 20px 25px rgba(0, 0, 0, 0.15)",
		},
		Radii: Radii{
			SM:   "4px",
			MD:   "8px",
			LG:   "16px",
			Full: "9999px",
		},
		Gradients: Gradients{
			Primary: linearGradient(colors.Primary, colors.PrimaryLight),
			Accent:  linearGradient(colors.Accent, colors.PrimaryLight),
			Header:  linearGradient(colors.Secondary, colors.Primary),
			Danger:  linearGradient(colors.AccentRed, colors.Warning),
		},
		Breakpoints: Breakpoints{
			Mobile:  "480px",
			Tablet:  "768px",
			Desktop: "1024px",
			Wide:    "1280px",
		},
		Light: Palette{
			Background:  colors.Background,
			Surface:     colors.Surface,
			Text:        colors.Text,
			TextMuted:   colors.TextMuted,
			Border:      colors.Border,
			Spinner:     colors.Primary,
			SpinnerBase: colors.Border,
		},
		Dark: Palette{
			Background:  "#0f172a",
			Surface:     "#1e293b",
			Text:        "#f1f5f9",
			TextMuted:   "#94a3b8",
			Border:      "#334155",
			Spinner:     colors.Accent,
			SpinnerBase: "#334155",
		},
	}
}
