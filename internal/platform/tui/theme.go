package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sky-runner/internal/config"
	"github.com/vovakirdan/sky-runner/internal/core"
)

// Theme holds the styles for one world: the sky behind the playfield and
// the menu and scoreboard chrome.
type Theme struct {
	Sky lipgloss.Color // background of every playfield cell

	Title       lipgloss.Style
	ItemNormal  lipgloss.Style
	ItemActive  lipgloss.Style
	Description lipgloss.Style
	Value       lipgloss.Style
	Muted       lipgloss.Style
	Border      lipgloss.Color
}

// DefaultTheme is used by the menu before a world is picked.
func DefaultTheme() Theme {
	return Theme{
		Sky:         lipgloss.Color(""),
		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		ItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Value:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Border:      lipgloss.Color("240"),
	}
}

// WorldTheme returns the theme for a world.
func WorldTheme(w config.World) Theme {
	theme := DefaultTheme()
	switch w {
	case config.WorldCloudKingdom:
		theme.Sky = lipgloss.Color("17")                                               // Night blue
		theme.Title = lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true) // Sky blue
		theme.Border = lipgloss.Color("25")
	case config.WorldCrystalCanyon:
		theme.Sky = lipgloss.Color("53")                                               // Dusk purple
		theme.Title = lipgloss.NewStyle().Foreground(lipgloss.Color("219")).Bold(true) // Crystal pink
		theme.Border = lipgloss.Color("97")
	case config.WorldFloatingCity:
		theme.Sky = lipgloss.Color("235")                                              // Smog gray
		theme.Title = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true) // Neon amber
		theme.Border = lipgloss.Color("94")
	}
	return theme
}

// cellStyles builds the foreground styles for every screen color on top of
// the theme's sky.
func (t Theme) cellStyles() map[int]lipgloss.Style {
	palette := core.Palette()
	out := make(map[int]lipgloss.Style, len(palette))
	for _, c := range palette {
		st := lipgloss.NewStyle()
		code := c.ANSI()
		if code != "" {
			st = st.Foreground(lipgloss.Color(code))
		}
		if t.Sky != "" {
			st = st.Background(t.Sky)
		}
		out[int(c)] = st
	}
	return out
}
