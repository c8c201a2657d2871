package model

import "fmt"

// Theme identifies one of the supported display themes.
type Theme int

const (
	ThemeDefault Theme = iota
	ThemeDark
	ThemeLight
	ThemeSolarizedDark
	ThemeSolarizedLight
	ThemeGruvboxDark
	ThemeGruvboxLight
	ThemeKanagawaWave
	ThemeKanagawaDragon
	ThemeKanagawaLotus
	ThemeTokyoNight
	ThemeTokyoNightLight
	ThemeTokyoNightStorm
	ThemeMoonfly
	ThemeNightfly
	ThemeNord
	ThemeFerra
	ThemeDracula
	ThemeOxocarbon

	// ThemeCount is the number of themes in the catalog.
	ThemeCount = int(iota)
)

var themeNames = [ThemeCount]string{
	ThemeDefault:         "Default",
	ThemeDark:            "Dark",
	ThemeLight:           "Light",
	ThemeSolarizedDark:   "SolarizedDark",
	ThemeSolarizedLight:  "SolarizedLight",
	ThemeGruvboxDark:     "GruvboxDark",
	ThemeGruvboxLight:    "GruvboxLight",
	ThemeKanagawaWave:    "KanagawaWave",
	ThemeKanagawaDragon:  "KanagawaDragon",
	ThemeKanagawaLotus:   "KanagawaLotus",
	ThemeTokyoNight:      "TokyoNight",
	ThemeTokyoNightLight: "TokyoNightLight",
	ThemeTokyoNightStorm: "TokyoNightStorm",
	ThemeMoonfly:         "Moonfly",
	ThemeNightfly:        "Nightfly",
	ThemeNord:            "Nord",
	ThemeFerra:           "Ferra",
	ThemeDracula:         "Dracula",
	ThemeOxocarbon:       "Oxocarbon",
}

// Catalog returns every supported theme in display order.
func Catalog() []Theme {
	out := make([]Theme, ThemeCount)
	for i := range out {
		out[i] = Theme(i)
	}
	return out
}

// ParseTheme looks a theme up by its identifier.
func ParseTheme(name string) (Theme, bool) {
	for i, n := range themeNames {
		if n == name {
			return Theme(i), true
		}
	}
	return ThemeDefault, false
}

func (t Theme) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Theme(%d)", int(t))
	}
	return themeNames[t]
}

// Valid reports whether t is part of the catalog.
func (t Theme) Valid() bool {
	return t >= 0 && int(t) < ThemeCount
}

func (t Theme) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("unknown theme %d", int(t))
	}
	return []byte(themeNames[t]), nil
}

func (t *Theme) UnmarshalText(b []byte) error {
	parsed, ok := ParseTheme(string(b))
	if !ok {
		return fmt.Errorf("unknown theme %q", string(b))
	}
	*t = parsed
	return nil
}

// Next returns the theme after t in the catalog, wrapping around.
func (t Theme) Next() Theme {
	return Theme((int(t) + 1) % ThemeCount)
}
