package ui

import "github.com/charmbracelet/lipgloss"

// Styles bundles palette + symbols for one color mode.
// All rendering helpers pull from the active set.
type Styles struct {
	Title    lipgloss.Style
	Accent   lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	Pending  lipgloss.Style
	Error    lipgloss.Style
	Done     lipgloss.Style
	Help     lipgloss.Style
	Selected lipgloss.Style
	Banner   lipgloss.Style
	Panel    lipgloss.Style

	BoxChecked, BoxUnchecked string
}

// Light is the default palette.
func Light() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Muted:    lipgloss.NewStyle().Faint(true),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		Banner: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(0, 1),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1),
		BoxChecked:   "☑",
		BoxUnchecked: "☐",
	}
}

// Dark shifts the palette to bright-on-dark colors.
func Dark() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("84")),
		Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Done:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		Banner: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("86")).
			Padding(0, 1),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		BoxChecked:   "◼",
		BoxUnchecked: "◻",
	}
}

// ForMode picks the style set for the dark mode flag.
func ForMode(dark bool) Styles {
	if dark {
		return Dark()
	}
	return Light()
}
