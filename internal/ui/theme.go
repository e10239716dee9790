package ui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Clock   lipgloss.Style
	Border  lipgloss.Style
	Hint    lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
}

var DefaultTheme = Theme{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7BD9FF")),
	Label:   lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#89B4FA")),
	Value:   lipgloss.NewStyle().Foreground(lipgloss.Color("#EAF0F6")),
	Clock:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B1FF9E")),
	Border:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
	Hint:    lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#B9C4D0")),
	Muted:   lipgloss.NewStyle().Faint(true),
	Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFB26B")),
	Success: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B1FF9E")),
}
