package config

// ColorScheme is an immutable palette definition. Values are compared with ==.
// NameKey is a string resource key, not a display name.
type ColorScheme struct {
	ID      string
	NameKey string

	Primary    string
	Accent     string
	Background string
	Foreground string
	Muted      string
	Error      string
}

var colorSchemes = []ColorScheme{
	{
		ID:         "default",
		NameKey:    "color_scheme_default",
		Primary:    "#ff5fd2",
		Accent:     "#5fd7ff",
		Background: "#1c1c1c",
		Foreground: "#ffffff",
		Muted:      "#626262",
		Error:      "#ff005f",
	},
	{
		ID:         "dark_grey",
		NameKey:    "color_scheme_dark_grey",
		Primary:    "#bcbcbc",
		Accent:     "#8a8a8a",
		Background: "#121212",
		Foreground: "#e4e4e4",
		Muted:      "#585858",
		Error:      "#d75f5f",
	},
	{
		ID:         "red_grey",
		NameKey:    "color_scheme_red_grey",
		Primary:    "#ff5f5f",
		Accent:     "#d78787",
		Background: "#262626",
		Foreground: "#eeeeee",
		Muted:      "#6c6c6c",
		Error:      "#ff0000",
	},
	{
		ID:         "teal_grey",
		NameKey:    "color_scheme_teal_grey",
		Primary:    "#00afaf",
		Accent:     "#5fd7d7",
		Background: "#262626",
		Foreground: "#eeeeee",
		Muted:      "#6c6c6c",
		Error:      "#ff5f5f",
	},
}

// ColorSchemes returns the built-in schemes in display order.
func ColorSchemes() []ColorScheme {
	out := make([]ColorScheme, len(colorSchemes))
	copy(out, colorSchemes)
	return out
}

// DefaultColorScheme is the first built-in scheme.
func DefaultColorScheme() ColorScheme {
	return colorSchemes[0]
}

func ColorSchemeByID(id string) (ColorScheme, bool) {
	for _, cs := range colorSchemes {
		if cs.ID == id {
			return cs, true
		}
	}
	return ColorScheme{}, false
}
