package viz

import "github.com/charmbracelet/lipgloss"

var (
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	LabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	ValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
)
