package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelpContent renders the full key binding reference shown in the pager
func renderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99"))

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("artshelf Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Navigation"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("↑/↓, j/k"), descStyle.Render("Move row cursor")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("←/→, h/l"), descStyle.Render("Previous/next page")))
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("g"), descStyle.Render("Go to a specific page")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Selection"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s     %s\n", keyStyle.Render("space"), descStyle.Render("Toggle selection of the current row")))
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("n"), descStyle.Render("Select the next N artworks across pages")))
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("c"), descStyle.Render("Clear the whole selection")))
	help.WriteString("\n")
	help.WriteString(descStyle.Render("  Selecting N clears the current selection and fills from the current\n"))
	help.WriteString(descStyle.Render("  page onward, loading further pages as needed. Toggling a row by hand\n"))
	help.WriteString(descStyle.Render("  while the fill is running stops it; your selection is kept as is.\n"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s   %s\n", keyStyle.Render("i/enter"), descStyle.Render("Full artwork details")))
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("?"), descStyle.Render("This help")))
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("q"), descStyle.Render("Quit")))

	return help.String()
}
