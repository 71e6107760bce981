package tui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Theme holds the lipgloss styles of the terminal frontend.
type Theme struct {
	Cells map[core.Color]lipgloss.Style // Screen cell foregrounds

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
	HelpSep  lipgloss.Style
	Status   lipgloss.Style
}

// DefaultTheme returns the classic look: white paddles and ball on a dim net.
func DefaultTheme() Theme {
	return Theme{
		Cells: map[core.Color]lipgloss.Style{
			core.ColorDefault:     lipgloss.NewStyle(),
			core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")), // Paddles
			core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Bold(true),
			core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("250")), // Scores
			core.ColorDarkGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")), // Net, version
			core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
			core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
		},
		HelpKey:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HelpDesc: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		HelpSep:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	}
}

// NeonTheme returns a high-contrast colored theme.
func NeonTheme() Theme {
	theme := DefaultTheme()
	theme.Cells[core.ColorWhite] = lipgloss.NewStyle().Foreground(lipgloss.Color("87"))        // Neon cyan
	theme.Cells[core.ColorBrightWhite] = lipgloss.NewStyle().Foreground(lipgloss.Color("199")) // Neon pink
	theme.Cells[core.ColorGray] = lipgloss.NewStyle().Foreground(lipgloss.Color("227"))        // Neon yellow
	theme.Cells[core.ColorDarkGray] = lipgloss.NewStyle().Foreground(lipgloss.Color("171"))    // Neon purple
	return theme
}

// MonochromeTheme returns a theme without any color, for dumb terminals.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	for c := range theme.Cells {
		theme.Cells[c] = lipgloss.NewStyle()
	}
	theme.HelpKey = lipgloss.NewStyle()
	theme.HelpDesc = lipgloss.NewStyle()
	theme.HelpSep = lipgloss.NewStyle()
	theme.Status = lipgloss.NewStyle()
	return theme
}

var themes = map[string]func() Theme{
	"classic":    DefaultTheme,
	"neon":       NeonTheme,
	"monochrome": MonochromeTheme,
}

// ThemeByName looks up a theme for the --theme flag. Empty means classic.
func ThemeByName(name string) (Theme, error) {
	if name == "" {
		return DefaultTheme(), nil
	}
	f, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("tui: unknown theme %q (available: %v)", name, ThemeNames())
	}
	return f(), nil
}

// ThemeNames lists the available themes, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// helpStyles adapts the theme to the bubbles help component.
func (t Theme) helpStyles() help.Styles {
	s := help.New().Styles
	s.ShortKey = t.HelpKey
	s.ShortDesc = t.HelpDesc
	s.ShortSeparator = t.HelpSep
	s.FullKey = t.HelpKey
	s.FullDesc = t.HelpDesc
	s.FullSeparator = t.HelpSep
	return s
}

// cellStyle returns the style for c, falling back to the default.
func (t Theme) cellStyle(c core.Color) lipgloss.Style {
	if style, ok := t.Cells[c]; ok {
		return style
	}
	return t.Cells[core.ColorDefault]
}
