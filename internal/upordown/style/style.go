package style

import (
	"VCS_Status_Microservice/internal/status-service/model"

	"github.com/charmbracelet/lipgloss"
)

var (
	Green = lipgloss.Color("#10B981")
	Red   = lipgloss.Color("#EF4444")
	Dim   = lipgloss.Color("#6B7280")

	Healthy   = lipgloss.NewStyle().Foreground(Green).Bold(true)
	Unhealthy = lipgloss.NewStyle().Foreground(Red).Bold(true)
	DimText   = lipgloss.NewStyle().Foreground(Dim)
)

func Verdict(v model.Verdict) string {
	if v == model.VerdictUp {
		return Healthy.Render(v.String())
	}
	return Unhealthy.Render(v.String())
}
