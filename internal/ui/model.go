package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"artshelf/internal/config"
	"artshelf/internal/domain"
	"artshelf/internal/eventbus"
	"artshelf/internal/ui/services/bulkfill"
	"artshelf/internal/ui/services/pages"
	"artshelf/internal/ui/services/selection"
	"artshelf/internal/ui/views"
)

// inputMode is the modal state of the presentation surface
type inputMode int

const (
	modeNormal inputMode = iota
	modeBulk             // quantity-entry popover open
	modeJump             // go-to-page popover open
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config

	// Services
	pages *pages.Service
	sel   *selection.Service
	bulk  *bulkfill.Service

	// Components
	tbl      table.Model
	input    textinput.Model
	spin     spinner.Model
	help     help.Model
	keys     keyMap
	renderer *views.Renderer
	pager    *Pager

	// UI-specific state
	width     int
	height    int
	mode      inputMode
	inputErr  string
	statusMsg string
	statusErr bool
	statusSeq int
	startPage int

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, startPage int) *Model {
	sel := selection.NewService(bus)
	pageStore := pages.NewService(bus, cfg.PageSize)
	bulk := bulkfill.NewService(sel, bus, cfg.PageSize)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	ti := textinput.New()
	ti.CharLimit = 6
	ti.Width = 12

	if startPage < 1 {
		startPage = 1
	}

	m := &Model{
		bus:       bus,
		config:    cfg,
		pages:     pageStore,
		sel:       sel,
		bulk:      bulk,
		input:     ti,
		spin:      sp,
		help:      help.New(),
		keys:      defaultKeyMap(),
		renderer:  views.NewRenderer(),
		pager:     NewPager(),
		startPage: startPage,
	}

	m.tbl = table.New(
		table.WithColumns(m.columns(80)),
		table.WithFocused(true),
		table.WithHeight(cfg.PageSize),
	)
	m.applyTableStyles()

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Init returns the initial commands: spinner animation plus the first fetch
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.spin.Tick,
		func() tea.Msg { return initialPageMsg{pageNumber: m.startPage} },
	)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.tbl.SetColumns(m.columns(msg.Width))
		m.tbl.SetWidth(msg.Width)
		m.tbl.SetHeight(m.tableHeight())
		return m, nil

	case initialPageMsg:
		m.pages.GoToPage(msg.pageNumber, 0)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.statusMsg = ""
			m.statusErr = false
		}
		return m, nil

	case detailPagerMsg:
		if msg.err != nil {
			logrus.WithError(msg.err).Warn("detail pager failed")
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			logrus.WithError(msg.err).Warn("help pager failed")
		}
		return m, nil

	case EventMsg:
		return m.handleEvent(msg.Event)

	case tea.KeyMsg:
		if m.mode != modeNormal {
			return m.handlePromptKey(msg)
		}
		return m.handleNormalKey(msg)
	}

	return m, nil
}

// handleEvent processes domain events arriving from the bus. All state
// mutation happens here, on the update loop, one event at a time.
func (m *Model) handleEvent(event eventbus.DomainEvent) (tea.Model, tea.Cmd) {
	switch ev := event.(type) {
	case eventbus.PageLoadedEvent:
		m.pages.ApplyLoaded(ev.Page)
		effects := m.bulk.Absorb(ev.Page, ev.Generation)
		m.runEffects(effects)
		m.refreshTable()
		return m, nil

	case eventbus.PageLoadFailedEvent:
		m.pages.ApplyFailed(ev.PageNumber, ev.Err)
		return m, m.setStatus(fmt.Sprintf("failed to load page %d", ev.PageNumber), true)

	case eventbus.SelectionChangedEvent, eventbus.SelectionClearedEvent:
		m.refreshTable()
		return m, nil

	case eventbus.BulkStartedEvent:
		return m, m.setStatus(fmt.Sprintf("selecting %d artworks", ev.Target), false)

	case eventbus.BulkFinishedEvent:
		m.refreshTable()
		return m, m.setStatus(fmt.Sprintf("%d artworks selected", ev.Selected), false)

	case eventbus.ErrorEvent:
		return m, m.setStatus(ev.Message, true)
	}

	return m, nil
}

// handleNormalKey processes key presses in browse mode
func (m *Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit

	case key.Matches(msg, k.PrevPage):
		m.pages.PrevPage(0)
		return m, nil

	case key.Matches(msg, k.NextPage):
		m.pages.NextPage(0)
		return m, nil

	case key.Matches(msg, k.Toggle):
		return m, m.toggleCurrentRow()

	case key.Matches(msg, k.BulkSelect):
		if m.pages.TotalCount() == 0 {
			return m, m.setStatus("catalog not loaded yet", true)
		}
		m.mode = modeBulk
		m.inputErr = ""
		m.input.Placeholder = "how many?"
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, k.JumpPage):
		if m.pages.TotalCount() == 0 {
			return m, m.setStatus("catalog not loaded yet", true)
		}
		m.mode = modeJump
		m.inputErr = ""
		m.input.Placeholder = "page number"
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, k.ClearAll):
		m.bulk.ClearAll()
		m.refreshTable()
		return m, m.setStatus("selection cleared", false)

	case key.Matches(msg, k.Detail):
		art, ok := m.currentArtwork()
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg {
			return detailPagerMsg{err: m.pager.ShowArtwork(art)}
		}

	case key.Matches(msg, k.Help):
		content := renderHelpContent()
		return m, func() tea.Msg {
			return helpPagerMsg{err: m.pager.ShowHelp(content)}
		}
	}

	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return m, cmd
}

// handlePromptKey processes key presses while a popover is open
func (m *Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePrompt()
		return m, nil

	case "enter":
		value := strings.TrimSpace(m.input.Value())
		if m.mode == modeBulk {
			return m.submitBulkTarget(value)
		}
		return m.submitJumpPage(value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submitBulkTarget validates the quantity-entry value and starts the fill.
// Out-of-range values are rejected, not clamped; empty input or 0 dismisses
// the popover without touching any state.
func (m *Model) submitBulkTarget(value string) (tea.Model, tea.Cmd) {
	if value == "" || value == "0" {
		m.closePrompt()
		return m, nil
	}

	target, err := strconv.Atoi(value)
	if err != nil {
		m.inputErr = "enter a whole number"
		return m, nil
	}

	total := m.pages.TotalCount()
	if target < 1 || target > total {
		m.inputErr = fmt.Sprintf("must be between 1 and %d", total)
		return m, nil
	}

	m.closePrompt()
	effects := m.bulk.Start(target, m.loadedPage())
	m.runEffects(effects)
	m.refreshTable()
	return m, nil
}

// submitJumpPage validates the page prompt and navigates
func (m *Model) submitJumpPage(value string) (tea.Model, tea.Cmd) {
	if value == "" {
		m.closePrompt()
		return m, nil
	}

	page, err := strconv.Atoi(value)
	if err != nil {
		m.inputErr = "enter a whole number"
		return m, nil
	}
	if page < 1 || page > m.pages.TotalPages() {
		m.inputErr = fmt.Sprintf("must be between 1 and %d", m.pages.TotalPages())
		return m, nil
	}

	m.closePrompt()
	m.pages.GoToPage(page, 0)
	return m, nil
}

func (m *Model) closePrompt() {
	m.mode = modeNormal
	m.inputErr = ""
	m.input.Blur()
	m.input.SetValue("")
}

// toggleCurrentRow flips the selection of the row under the cursor. A manual
// toggle during a fill stops the fill first, then applies only the toggle.
func (m *Model) toggleCurrentRow() tea.Cmd {
	art, ok := m.currentArtwork()
	if !ok {
		return nil
	}

	m.bulk.ManualToggle()
	selected := m.sel.Toggle(art.ID)
	m.refreshTable()

	if selected {
		return m.setStatus(fmt.Sprintf("selected %q", art.Title), false)
	}
	return m.setStatus(fmt.Sprintf("deselected %q", art.Title), false)
}

// currentArtwork returns the artwork under the table cursor
func (m *Model) currentArtwork() (domain.Artwork, bool) {
	arts := m.pages.Artworks()
	idx := m.tbl.Cursor()
	if idx < 0 || idx >= len(arts) {
		return domain.Artwork{}, false
	}
	return arts[idx], true
}

// loadedPage reconstructs the current page value held by the page store.
// While a fetch is outstanding the held records still belong to the page the
// user navigated away from, so there is no loaded page to hand out; the
// in-flight load reaches the caller through the event path once it arrives.
func (m *Model) loadedPage() *domain.Page {
	if m.pages.Loading() {
		return nil
	}
	return &domain.Page{
		Number:     m.pages.CurrentPage(),
		Artworks:   m.pages.Artworks(),
		TotalCount: m.pages.TotalCount(),
	}
}

// runEffects executes the declarative effects a bulk transition produced
func (m *Model) runEffects(effects []bulkfill.Effect) {
	for _, eff := range effects {
		switch e := eff.(type) {
		case bulkfill.RequestPage:
			m.pages.GoToPage(e.PageNumber, e.Generation)
		}
	}
}

// setStatus shows a transient status message
func (m *Model) setStatus(msg string, isErr bool) tea.Cmd {
	m.statusMsg = msg
	m.statusErr = isErr
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return statusClearMsg{seq: seq}
	})
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	state := m.viewState()

	if m.mode != modeNormal {
		title := "Select artworks"
		hint := fmt.Sprintf("1-%d · enter to confirm · esc to cancel", m.pages.TotalCount())
		if m.mode == modeJump {
			title = "Go to page"
			hint = fmt.Sprintf("1-%d · enter to confirm · esc to cancel", m.pages.TotalPages())
		}
		if m.inputErr != "" {
			hint = m.renderer.Styles().StatusError.Render(m.inputErr)
		}
		return m.renderer.Popup().RenderPrompt(title, m.input.View(), hint, m.width, m.height)
	}

	sections := []string{
		m.renderer.RenderHeader(state),
		"",
		m.tbl.View(),
		m.renderer.RenderStatusBar(state),
		m.renderer.RenderFooter(state),
	}
	return strings.Join(sections, "\n")
}

func (m *Model) viewState() views.ViewState {
	bulkState := m.bulk.State()
	return views.ViewState{
		Width:        m.width,
		CurrentPage:  m.pages.CurrentPage(),
		TotalPages:   m.pages.TotalPages(),
		TotalCount:   m.pages.TotalCount(),
		SelectedSize: m.sel.Size(),
		Loading:      m.pages.Loading(),
		Spinner:      m.spin.View(),
		Filling:      m.bulk.Filling(),
		FillTarget:   bulkState.Target,
		FillPending:  bulkState.Remaining,
		StatusMsg:    m.statusMsg,
		StatusIsErr:  m.statusErr,
		HelpLine:     m.help.View(m.keys),
	}
}

// refreshTable rebuilds the table rows from the page store and selection set
func (m *Model) refreshTable() {
	arts := m.pages.Artworks()
	rows := make([]table.Row, 0, len(arts))
	for _, art := range arts {
		mark := " "
		if m.sel.Contains(art.ID) {
			mark = "✓"
		}
		row := table.Row{mark, strconv.FormatInt(art.ID, 10), art.Title}
		if m.config.UI.ShowOrigin {
			row = append(row, art.PlaceOfOrigin)
		}
		row = append(row, firstLine(art.ArtistDisplay))
		if m.config.UI.ShowDateRange {
			row = append(row, formatDateRange(art.DateStart, art.DateEnd))
		}
		rows = append(rows, row)
	}
	m.tbl.SetRows(rows)

	if cursor := m.tbl.Cursor(); cursor >= len(rows) && len(rows) > 0 {
		m.tbl.SetCursor(len(rows) - 1)
	}
}

// columns computes the table layout for a given terminal width. Origin and
// date columns can be switched off in the config.
func (m *Model) columns(width int) []table.Column {
	fixed := 3 + 8 + 10 // checkbox, id, cell padding
	if m.config.UI.ShowDateRange {
		fixed += 12
	}
	rest := width - fixed
	if rest < 30 {
		rest = 30
	}

	titleW := rest * 5 / 10
	originW := 0
	if m.config.UI.ShowOrigin {
		titleW = rest * 4 / 10
		originW = rest * 2 / 10
	}
	artistW := rest - titleW - originW

	cols := []table.Column{
		{Title: " ", Width: 3},
		{Title: "ID", Width: 8},
		{Title: "Title", Width: titleW},
	}
	if m.config.UI.ShowOrigin {
		cols = append(cols, table.Column{Title: "Origin", Width: originW})
	}
	cols = append(cols, table.Column{Title: "Artist", Width: artistW})
	if m.config.UI.ShowDateRange {
		cols = append(cols, table.Column{Title: "Dates", Width: 12})
	}
	return cols
}

func (m *Model) tableHeight() int {
	// Header, blank line, table header, status bar and footer
	h := m.height - 6
	if h < 3 {
		h = 3
	}
	if h > m.config.PageSize+1 {
		h = m.config.PageSize + 1
	}
	return h
}

func (m *Model) applyTableStyles() {
	styles := table.DefaultStyles()
	rStyles := m.renderer.Styles()
	styles.Header = rStyles.TableHeader
	styles.Selected = rStyles.TableCursor
	m.tbl.SetStyles(styles)
}

// firstLine trims a multi-line artist display down to its first line
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
