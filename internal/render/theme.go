package render

import "github.com/andy/invoicegenius/internal/domain"

// Neutral colors shared by all templates.
const (
	colorWhite    = "#ffffff"
	colorInk      = "#0f172a"
	colorSlate800 = "#1e293b"
	colorSlate700 = "#334155"
	colorSlate500 = "#64748b"
	colorSlate400 = "#94a3b8"
	colorSlate200 = "#e2e8f0"
	colorSlate100 = "#f1f5f9"
	colorSlate50  = "#f8fafc"
	colorNight    = "#0a0a0a"
)

// Palette is the small fixed set of accents a color theme contributes
// to a template.
type Palette struct {
	Primary      string // main fill
	Text         string // text accent
	Border       string
	Light        string // light background
	GradientFrom string
	GradientTo   string
}

var palettes = map[domain.ColorTheme]Palette{
	domain.ThemePurple: {
		Primary:      "#9333ea",
		Text:         "#9333ea",
		Border:       "#9333ea",
		Light:        "#faf5ff",
		GradientFrom: "#9333ea",
		GradientTo:   "#4f46e5",
	},
	domain.ThemeBlue: {
		Primary:      "#2563eb",
		Text:         "#2563eb",
		Border:       "#2563eb",
		Light:        "#eff6ff",
		GradientFrom: "#2563eb",
		GradientTo:   "#0891b2",
	},
	domain.ThemeEmerald: {
		Primary:      "#059669",
		Text:         "#059669",
		Border:       "#059669",
		Light:        "#ecfdf5",
		GradientFrom: "#059669",
		GradientTo:   "#0d9488",
	},
	domain.ThemeRose: {
		Primary:      "#e11d48",
		Text:         "#e11d48",
		Border:       "#e11d48",
		Light:        "#fff1f2",
		GradientFrom: "#e11d48",
		GradientTo:   "#db2777",
	},
	domain.ThemeSlate: {
		Primary:      "#1e293b",
		Text:         "#1e293b",
		Border:       "#1e293b",
		Light:        "#f8fafc",
		GradientFrom: "#1e293b",
		GradientTo:   "#1f2937",
	},
	domain.ThemeOrange: {
		Primary:      "#f97316",
		Text:         "#f97316",
		Border:       "#f97316",
		Light:        "#fff7ed",
		GradientFrom: "#f97316",
		GradientTo:   "#ef4444",
	},
}

// PaletteFor returns the palette for a theme, falling back to purple
// for anything outside the closed set.
func PaletteFor(theme domain.ColorTheme) Palette {
	if p, ok := palettes[theme]; ok {
		return p
	}
	return palettes[domain.ThemePurple]
}
