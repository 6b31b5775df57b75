package ui

import (
	"github.com/alvinbaena/pwd-meter/pkg/strength"
	"github.com/charmbracelet/lipgloss"
)

// Styles contains the lipgloss styles used by the panel
type Styles struct {
	enabled bool

	Caption   lipgloss.Style
	Value     lipgloss.Style
	Met       lipgloss.Style
	Unmet     lipgloss.Style
	Item      lipgloss.Style
	levels    map[strength.Level]lipgloss.Style
	barColors map[strength.Level]string
}

// NewStyles creates styles, colored only when enabled
func NewStyles(enabled bool) *Styles {
	s := &Styles{enabled: enabled}

	if enabled {
		s.Caption = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Value = lipgloss.NewStyle().Bold(true)
		s.Met = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
		s.Unmet = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Item = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

		s.barColors = map[strength.Level]string{
			strength.Waiting:    "#626262",
			strength.VeryWeak:   "#FF4136",
			strength.Weak:       "#FF851B",
			strength.Fair:       "#FFDC00",
			strength.Strong:     "#2ECC40",
			strength.VeryStrong: "#39CCCC",
		}
		s.levels = make(map[strength.Level]lipgloss.Style, len(s.barColors))
		for level, color := range s.barColors {
			s.levels[level] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color))
		}
	} else {
		s.Caption = lipgloss.NewStyle()
		s.Value = lipgloss.NewStyle()
		s.Met = lipgloss.NewStyle()
		s.Unmet = lipgloss.NewStyle()
		s.Item = lipgloss.NewStyle()
		s.levels = map[strength.Level]lipgloss.Style{}
		s.barColors = map[strength.Level]string{}
	}

	return s
}

// Enabled returns whether colors are on
func (s *Styles) Enabled() bool {
	return s.enabled
}

// Level returns the style for a strength level
func (s *Styles) Level(l strength.Level) lipgloss.Style {
	if style, ok := s.levels[l]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// BarColor returns the fill color of the bar for a level, empty when colors are off
func (s *Styles) BarColor(l strength.Level) string {
	return s.barColors[l]
}
