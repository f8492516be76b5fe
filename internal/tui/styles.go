package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext  lipgloss.Color = "#a6adc8"
	colorOverlay  lipgloss.Color = "#6c7086"
	colorSurface  lipgloss.Color = "#313244"
	colorPink     lipgloss.Color = "#f5c2e7"
	colorLavender lipgloss.Color = "#b4befe"
	colorRed      lipgloss.Color = "#f38ba8"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorTeal     lipgloss.Color = "#94e2d5"
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorPink).MarginBottom(1)
	rowStyle       = lipgloss.NewStyle().Foreground(colorText)
	selectedStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorLavender).Background(colorSurface)
	publisherStyle = lipgloss.NewStyle().Foreground(colorSubtext)
	mutedStyle     = lipgloss.NewStyle().Foreground(colorOverlay)
	statusStyle    = lipgloss.NewStyle().Foreground(colorTeal)
	errorStyle     = lipgloss.NewStyle().Foreground(colorRed)
	favouriteStyle = lipgloss.NewStyle().Foreground(colorYellow)
	filterStyle    = lipgloss.NewStyle().Foreground(colorLavender)
	footerStyle    = lipgloss.NewStyle().Foreground(colorOverlay).MarginTop(1)
	detailsTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorPink)
)
