package domain

// TemplateType selects one of the five fixed page layouts. The set is
// closed; rendering dispatches over it exhaustively.
type TemplateType string

const (
	TemplateModern  TemplateType = "modern"
	TemplateClassic TemplateType = "classic"
	TemplateBold    TemplateType = "bold"
	TemplateNeo     TemplateType = "neo"
	TemplateGlitch  TemplateType = "glitch"
)

// Templates lists all template types in display order.
var Templates = []TemplateType{
	TemplateModern,
	TemplateClassic,
	TemplateBold,
	TemplateNeo,
	TemplateGlitch,
}

// Valid reports whether t is a known template.
func (t TemplateType) Valid() bool {
	switch t {
	case TemplateModern, TemplateClassic, TemplateBold, TemplateNeo, TemplateGlitch:
		return true
	}
	return false
}

// ColorTheme selects the accent palette applied within a template.
type ColorTheme string

const (
	ThemePurple  ColorTheme = "purple"
	ThemeBlue    ColorTheme = "blue"
	ThemeEmerald ColorTheme = "emerald"
	ThemeRose    ColorTheme = "rose"
	ThemeSlate   ColorTheme = "slate"
	ThemeOrange  ColorTheme = "orange"
)

// Themes lists all color themes in display order.
var Themes = []ColorTheme{
	ThemePurple,
	ThemeBlue,
	ThemeEmerald,
	ThemeRose,
	ThemeSlate,
	ThemeOrange,
}

// Valid reports whether c is a known theme.
func (c ColorTheme) Valid() bool {
	switch c {
	case ThemePurple, ThemeBlue, ThemeEmerald, ThemeRose, ThemeSlate, ThemeOrange:
		return true
	}
	return false
}

// FontChoice selects the type family applied to the whole document.
type FontChoice string

const (
	FontSans   FontChoice = "sans"
	FontOutfit FontChoice = "outfit"
	FontSpace  FontChoice = "space"
)

// Fonts lists all font choices in display order.
var Fonts = []FontChoice{FontSans, FontOutfit, FontSpace}

// Valid reports whether f is a known font choice.
func (f FontChoice) Valid() bool {
	switch f {
	case FontSans, FontOutfit, FontSpace:
		return true
	}
	return false
}

// DesignSettings is the purely presentational projection: switching any
// of its fields never changes invoice or company content.
type DesignSettings struct {
	Template   TemplateType `json:"template"`
	ColorTheme ColorTheme   `json:"colorTheme"`
	Font       FontChoice   `json:"font"`
}
