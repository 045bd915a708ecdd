package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// taskpet theme (CLI + TUI). Reusable styles and a few icons.

const (
	IconTask    = "📝"
	IconDone    = "✅"
	IconTrash   = "🗑️"
	IconSparkle = "✨"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconHeart   = "❤️"
	IconSleep   = "💤"
	IconWarn    = "⚠️"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold)
)

// StatBar renders a 10-cell bar for a 0..100 stat value.
func StatBar(value float64) string {
	filled := int(value) / 10
	if filled > 10 {
		filled = 10
	}
	var b strings.Builder
	for i := 0; i < 10; i++ {
		if i < filled {
			b.WriteString("█")
		} else {
			b.WriteString("░")
		}
	}
	return b.String()
}

// BarStyle colors a stat bar by how healthy the value is. For hunger the
// scale is inverted: high hunger is the bad end.
func BarStyle(value float64, inverted bool) lipgloss.Style {
	v := value
	if inverted {
		v = 100 - value
	}
	switch {
	case v >= 60:
		return Good
	case v >= 30:
		return Warn
	default:
		return Bad
	}
}
