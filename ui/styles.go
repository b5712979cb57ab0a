package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	savefileStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	faintStyle    = lipgloss.NewStyle().Faint(true)
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)
