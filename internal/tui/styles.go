package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-clinic-sync/models"
)

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	labelStyle      = lipgloss.NewStyle().Faint(true).Width(16)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	okStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	warnStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

func modeStyle(mode models.Mode) lipgloss.Style {
	switch mode {
	case models.ModeCloud:
		return okStyle
	case models.ModeLocal:
		return warnStyle
	default:
		return errorStyle
	}
}
