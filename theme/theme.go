// Package theme maps the persisted theme identifiers to terminal colors.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"taskmaster/model"
)

// Palette is a concrete visual theme.
type Palette struct {
	Name       string
	Background lipgloss.Color
	Text       lipgloss.Color
	Primary    lipgloss.Color
	Success    lipgloss.Color
	Danger     lipgloss.Color
}

var (
	Light           = Palette{"Light", "#FFFFFF", "#000000", "#5E7CE2", "#12664F", "#C3423F"}
	Dark            = Palette{"Dark", "#202225", "#E6E6E6", "#5E7CE2", "#12664F", "#C3423F"}
	SolarizedDark   = Palette{"Solarized Dark", "#002B36", "#839496", "#2AA198", "#859900", "#DC322F"}
	SolarizedLight  = Palette{"Solarized Light", "#FDF6E3", "#657B83", "#2AA198", "#859900", "#DC322F"}
	GruvboxDark     = Palette{"Gruvbox Dark", "#282828", "#FBF1C7", "#458588", "#98971A", "#CC241D"}
	GruvboxLight    = Palette{"Gruvbox Light", "#FBF1C7", "#282828", "#458588", "#98971A", "#CC241D"}
	KanagawaWave    = Palette{"Kanagawa Wave", "#1F1F28", "#DCD7BA", "#7FB4CA", "#76946A", "#C34043"}
	KanagawaDragon  = Palette{"Kanagawa Dragon", "#181616", "#C5C9C5", "#8BA4B0", "#8A9A7B", "#C4746E"}
	KanagawaLotus   = Palette{"Kanagawa Lotus", "#F2ECBC", "#545464", "#4D699B", "#6E915F", "#C84053"}
	TokyoNight      = Palette{"Tokyo Night", "#1A1B26", "#9AA5CE", "#2AC3DE", "#9ECE6A", "#F7768E"}
	TokyoNightLight = Palette{"Tokyo Night Light", "#D5D6DB", "#565A6E", "#166775", "#485E30", "#8C4351"}
	TokyoNightStorm = Palette{"Tokyo Night Storm", "#24283B", "#9AA5CE", "#2AC3DE", "#9ECE6A", "#F7768E"}
	Moonfly         = Palette{"Moonfly", "#080808", "#BDBDBD", "#80A0FF", "#8CC85F", "#FF5454"}
	Nightfly        = Palette{"Nightfly", "#011627", "#BDC1C6", "#82AAFF", "#A1CD5E", "#FC514E"}
	Nord            = Palette{"Nord", "#2E3440", "#ECEFF4", "#8FBCBB", "#A3BE8C", "#BF616A"}
	Ferra           = Palette{"Ferra", "#2B292D", "#FECDB2", "#D1D1E0", "#B1B695", "#E06B75"}
	Dracula         = Palette{"Dracula", "#282A36", "#F8F8F2", "#BD93F9", "#50FA7B", "#FF5555"}
	Oxocarbon       = Palette{"Oxocarbon", "#232323", "#D0D0D0", "#00B4FF", "#00C15A", "#F62D0F"}
)

// palettes is indexed by model.Theme; its length pins the mapping to the
// catalog size.
var palettes = [model.ThemeCount]*Palette{
	model.ThemeDefault:         &Light,
	model.ThemeDark:            &Dark,
	model.ThemeLight:           &Light,
	model.ThemeSolarizedDark:   &SolarizedDark,
	model.ThemeSolarizedLight:  &SolarizedLight,
	model.ThemeGruvboxDark:     &GruvboxDark,
	model.ThemeGruvboxLight:    &GruvboxLight,
	model.ThemeKanagawaWave:    &KanagawaWave,
	model.ThemeKanagawaDragon:  &KanagawaDragon,
	model.ThemeKanagawaLotus:   &KanagawaLotus,
	model.ThemeTokyoNight:      &TokyoNight,
	model.ThemeTokyoNightLight: &TokyoNightLight,
	model.ThemeTokyoNightStorm: &TokyoNightStorm,
	model.ThemeMoonfly:         &Moonfly,
	model.ThemeNightfly:        &Nightfly,
	model.ThemeNord:            &Nord,
	model.ThemeFerra:           &Ferra,
	model.ThemeDracula:         &Dracula,
	model.ThemeOxocarbon:       &Oxocarbon,
}

// For returns the palette of t. Values outside the catalog get Light.
func For(t model.Theme) Palette {
	if !t.Valid() {
		return Light
	}
	return *palettes[t]
}

// Title styles a screen heading.
func (p Palette) Title() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(p.Primary)
}

// Base styles ordinary text.
func (p Palette) Base() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Text)
}

// Selected styles the row under the cursor.
func (p Palette) Selected() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(p.Background).Background(p.Primary)
}

// Status styles the status label of a task.
func (p Palette) Status(s model.Status) lipgloss.Style {
	switch s {
	case model.StatusComplete:
		return lipgloss.NewStyle().Foreground(p.Success)
	case model.StatusInProgress:
		return lipgloss.NewStyle().Foreground(p.Primary)
	default:
		return lipgloss.NewStyle().Foreground(p.Text).Faint(true)
	}
}

// Muted styles hints and help lines.
func (p Palette) Muted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Text).Faint(true)
}

// Error styles destructive actions.
func (p Palette) Error() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Danger)
}
