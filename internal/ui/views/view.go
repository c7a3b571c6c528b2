package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ViewState contains everything the renderer needs for the chrome around
// the table: header, status bar and footer
type ViewState struct {
	Width        int
	CurrentPage  int
	TotalPages   int
	TotalCount   int
	SelectedSize int
	Loading      bool
	Spinner      string
	Filling      bool
	FillTarget   int
	FillPending  int
	StatusMsg    string
	StatusIsErr  bool
	HelpLine     string
}

// Renderer handles view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles exposes the shared style set
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Popup exposes the popup renderer
func (r *Renderer) Popup() *PopupRenderer {
	return r.popupRender
}

// RenderHeader produces the title line with loading and fill indicators
func (r *Renderer) RenderHeader(state ViewState) string {
	logo := r.styles.Title.Render("artshelf")
	subtitle := r.styles.TitleAccent.Render("  · artwork catalog")

	indicators := []string{}
	if state.Loading {
		indicators = append(indicators, r.styles.Loading.Render(
			fmt.Sprintf("%s loading page %d", state.Spinner, state.CurrentPage)))
	}
	if state.Filling {
		done := state.FillTarget - state.FillPending
		indicators = append(indicators, r.styles.Selected.Render(
			fmt.Sprintf("◉ selecting %d of %d", done, state.FillTarget)))
	}

	left := logo + subtitle
	if len(indicators) == 0 {
		return left
	}

	right := strings.Join(indicators, "  ")
	gap := state.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// RenderStatusBar produces the pagination and selection summary line.
// The selected count reports committed membership only; an in-progress fill
// shows its pending remainder separately in the header, never folded into
// this number.
func (r *Renderer) RenderStatusBar(state ViewState) string {
	parts := []string{
		fmt.Sprintf("page %d/%d", state.CurrentPage, state.TotalPages),
		fmt.Sprintf("%d artworks", state.TotalCount),
		fmt.Sprintf("%d selected", state.SelectedSize),
	}
	line := r.styles.StatusBar.Render(strings.Join(parts, "  ·  "))

	if state.StatusMsg != "" {
		msgStyle := r.styles.StatusInfo
		if state.StatusIsErr {
			msgStyle = r.styles.StatusError
		}
		line += "  " + msgStyle.Render(state.StatusMsg)
	}
	return line
}

// RenderFooter produces the short help line
func (r *Renderer) RenderFooter(state ViewState) string {
	return r.styles.Dim.Render(state.HelpLine)
}
