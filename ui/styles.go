package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/devia2025/progtop/model"
)

var (
	// Colors
	colorRed    = lipgloss.Color("#FF5555")
	colorYellow = lipgloss.Color("#F1FA8C")
	colorGreen  = lipgloss.Color("#50FA7B")
	colorCyan   = lipgloss.Color("#8BE9FD")
	colorWhite  = lipgloss.Color("#F8F8F2")
	colorGray   = lipgloss.Color("#6272A4")
	colorPanel  = lipgloss.Color("#44475A")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	headerStyle   = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	valueStyle    = lipgloss.NewStyle().Foreground(colorWhite)
	warnStyle     = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	critStyle     = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	okStyle       = lipgloss.NewStyle().Foreground(colorGreen)
	dimStyle      = lipgloss.NewStyle().Foreground(colorGray)
	selectedStyle = lipgloss.NewStyle().Background(colorPanel).Foreground(colorWhite)
	pinStyle      = lipgloss.NewStyle().Foreground(colorYellow)
)

// statusStyle maps a threshold status to its emphasis style.
// Anything that is not WARNING or CRITICAL renders unemphasized;
// the classification itself comes from the engine, never from here.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case model.StatusCritical:
		return critStyle
	case model.StatusWarning:
		return warnStyle
	default:
		return valueStyle
	}
}

// statusBadge renders the overall program status column.
func statusBadge(status string) string {
	switch status {
	case model.StatusCritical:
		return critStyle.Render(status)
	case model.StatusWarning:
		return warnStyle.Render(status)
	case model.StatusOK:
		return okStyle.Render(status)
	default:
		return dimStyle.Render(status)
	}
}
