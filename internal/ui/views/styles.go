package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all the lipgloss styles used by the renderer
type Styles struct {
	Title       lipgloss.Style
	TitleAccent lipgloss.Style
	StatusBar   lipgloss.Style
	StatusError lipgloss.Style
	StatusInfo  lipgloss.Style
	Loading     lipgloss.Style
	Selected    lipgloss.Style
	Dim         lipgloss.Style
	PopupBorder lipgloss.Style
	PopupTitle  lipgloss.Style
	PopupHint   lipgloss.Style
	TableHeader lipgloss.Style
	TableCursor lipgloss.Style
}

// NewStyles creates the default style set
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		TitleAccent: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
		StatusInfo: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")),
		Loading: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")),
		Dim: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		PopupBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2),
		PopupTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		PopupHint: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		TableHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("240")),
		TableCursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false),
	}
}
