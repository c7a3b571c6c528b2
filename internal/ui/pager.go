package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"artshelf/internal/domain"
)

// Pager shows long-form content (artwork details, help) in the ov pager,
// temporarily taking over the terminal from Bubble Tea
type Pager struct {
	program *tea.Program
}

// NewPager creates a new pager
func NewPager() *Pager {
	return &Pager{}
}

// SetProgram sets the program reference for terminal management
func (p *Pager) SetProgram(prog *tea.Program) {
	p.program = prog
}

// ShowArtwork pages through the full record of a single artwork
func (p *Pager) ShowArtwork(art domain.Artwork) error {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(art.Title))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s  %d\n", labelStyle.Render("ID"), art.ID)
	fmt.Fprintf(&b, "%s  %s\n", labelStyle.Render("Origin"), orBlank(art.PlaceOfOrigin))
	fmt.Fprintf(&b, "%s  %s\n", labelStyle.Render("Dates"), formatDateRange(art.DateStart, art.DateEnd))
	fmt.Fprintf(&b, "\n%s\n%s\n", labelStyle.Render("Artist"), orBlank(art.ArtistDisplay))

	return p.run(b.String())
}

// ShowHelp pages through the key binding reference
func (p *Pager) ShowHelp(content string) error {
	return p.run(content)
}

// run releases the terminal, hands the content to ov and restores the
// terminal when the pager exits
func (p *Pager) run(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Give ov a moment to fully exit before redrawing
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	cfg := oviewer.NewConfig()
	cfg.IsWriteOnExit = false
	cfg.IsWriteOriginal = false
	root.SetConfig(cfg)

	return root.Run()
}

func orBlank(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func formatDateRange(start, end int) string {
	if start == 0 && end == 0 {
		return "-"
	}
	if start == end {
		return fmt.Sprintf("%d", start)
	}
	return fmt.Sprintf("%d-%d", start, end)
}
