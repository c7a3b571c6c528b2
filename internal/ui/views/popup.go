package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderCentered renders a framed popup centered in the window
func (pr *PopupRenderer) RenderCentered(title, body string, width, height int) string {
	content := &strings.Builder{}
	content.WriteString(pr.styles.PopupTitle.Render(title))
	content.WriteString("\n\n")
	content.WriteString(body)

	popup := pr.styles.PopupBorder.Render(content.String())

	return lipgloss.Place(width, height,
		lipgloss.Center, lipgloss.Center,
		popup,
		lipgloss.WithWhitespaceChars(" "),
	)
}

// RenderPrompt renders a titled input prompt with a hint line underneath
func (pr *PopupRenderer) RenderPrompt(title, inputView, hint string, width, height int) string {
	body := inputView + "\n\n" + pr.styles.PopupHint.Render(hint)
	return pr.RenderCentered(title, body, width, height)
}
