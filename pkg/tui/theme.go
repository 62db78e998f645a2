package tui

import (
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/diario/pkg/notify"
)

// Theme centralizes Lip Gloss styles for the terminal UI.
type Theme struct {
	Tabs     TabTheme
	Panel    PanelTheme
	Footer   FooterTheme
	Calendar CalendarTheme
	Toast    map[notify.Severity]lipgloss.Style
}

// TabTheme styles the section bar.
type TabTheme struct {
	Active   lipgloss.Style
	Inactive lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Empty    lipgloss.Style
	Selected lipgloss.Style
	Done     lipgloss.Style
}

// FooterTheme styles the bottom help and prompt lines.
type FooterTheme struct {
	Help   lipgloss.Style
	Prompt lipgloss.Style
}

// CalendarTheme styles month grid cells.
type CalendarTheme struct {
	Header   lipgloss.Style
	Empty    lipgloss.Style
	Tasks    lipgloss.Style
	Events   lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		Tabs: TabTheme{
			Active:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("#819A91")).Padding(0, 1),
			Inactive: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Title:    lipgloss.NewStyle().Bold(true),
			Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
			Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Selected: lipgloss.NewStyle().Reverse(true),
			Done:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		},
		Calendar: CalendarTheme{
			Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
			Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Tasks:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
			Events:   lipgloss.NewStyle().Foreground(lipgloss.Color("#A7C1A8")),
			Today:    lipgloss.NewStyle().Underline(true),
			Selected: lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
		},
		Toast: map[notify.Severity]lipgloss.Style{
			notify.Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#819A91")).Bold(true),
			notify.Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
			notify.Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
			notify.Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		},
	}
}
