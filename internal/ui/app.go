// Package ui provides the Bubble Tea TUI for easel: a paginated artwork
// table with a detail pane, cross-page selection, and a bulk-select modal.
package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"easel/internal/artic"
	"easel/internal/prefs"
	"easel/internal/selection"
	"easel/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    artic.Fetcher
	Selection *selection.State
	Cache     *state.Cache
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    artic.Fetcher
	selection *selection.State
	cache     *state.Cache
	prefsPath string

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool

	// Page state
	page       int // requested page number
	pageData   artic.Page
	hasPage    bool
	loading    bool
	lastError  error
	totalRows  int
	totalPages int

	// Table state
	cursor int

	// Detail pane
	detailViewport viewport.Model

	// Bulk select
	bulk        *bulkModal
	bulkRunning bool
	bulkCancel  context.CancelFunc

	// Help overlay
	showHelp bool

	// Transient status line, cleared on esc or the next action
	statusMsg string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return Model{
		ctx:       ctx,
		client:    opts.Client,
		selection: opts.Selection,
		cache:     opts.Cache,
		prefsPath: prefsPath,
		theme:     GetTheme(themeName),
		page:      1,
		loading:   true,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.fetchPageCmd(1),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.detailViewport = viewport.New(0, 0)
		}
		m.ready = true
		m.resizeDetailViewport()
		m.updateDetailViewport()
		return m, nil

	case pageMsg:
		// Stale responses from superseded navigation are dropped.
		if msg.Number != m.page {
			return m, nil
		}
		m.pageData = artic.Page(msg)
		m.hasPage = true
		m.loading = false
		m.lastError = nil
		m.totalRows = msg.Pagination.Total
		m.totalPages = msg.Pagination.TotalPages
		if max := len(msg.Artworks) - 1; m.cursor > max {
			m.cursor = max
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		m.updateDetailViewport()
		// Prime the cache for the likely next navigation.
		if next := msg.Number + 1; m.totalPages == 0 || next <= m.totalPages {
			return m, m.prefetchPageCmd(next)
		}
		return m, nil

	case pageErrMsg:
		if msg.page != m.page {
			return m, nil
		}
		m.loading = false
		m.lastError = msg.err
		return m, nil

	case bulkDoneMsg:
		m.bulkRunning = false
		m.bulkCancel = nil
		m.statusMsg = formatBulkStatus(msg.res, msg.err)
		m.updateDetailViewport()
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.bulk != nil {
		return m.renderBulkModal()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.bulk != nil {
		return m.handleBulkKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		if m.bulkCancel != nil {
			m.bulkCancel()
		}
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case "esc":
		if m.bulkRunning && m.bulkCancel != nil {
			m.bulkCancel()
			return m, nil
		}
		m.statusMsg = ""
		return m, nil

	case "r":
		m.cache.Drop(m.page)
		return m.gotoPage(m.page)

	case "h", "left":
		if m.page > 1 {
			return m.gotoPage(m.page - 1)
		}
		return m, nil

	case "l", "right":
		if m.totalPages == 0 || m.page < m.totalPages {
			return m.gotoPage(m.page + 1)
		}
		return m, nil

	case "b":
		if !m.bulkRunning {
			m.bulk = newBulkModal(m.page)
		}
		return m, nil
	}

	return m.handleTableKey(msg)
}

// handleTableKey processes keys that act on the visible page rows.
func (m Model) handleTableKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := len(m.pageData.Artworks)

	switch msg.String() {
	case "j", "down":
		if m.cursor < rows-1 {
			m.cursor++
			m.updateDetailViewport()
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
			m.updateDetailViewport()
		}
	case "g", "home":
		m.cursor = 0
		m.updateDetailViewport()
	case "G", "end":
		if rows > 0 {
			m.cursor = rows - 1
			m.updateDetailViewport()
		}
	case "ctrl+d":
		m.detailViewport.HalfViewDown()
	case "ctrl+u":
		m.detailViewport.HalfViewUp()

	case " ":
		if art := m.artworkUnderCursor(); art != nil {
			m.statusMsg = ""
			m.selection.Bind(m.pageData.Number).Toggle(art.ID)
			m.updateDetailViewport()
		}
	case "a":
		if m.hasPage && rows > 0 {
			m.statusMsg = ""
			m.selection.Bind(m.pageData.Number).SelectAll(m.pageData.IDs())
			m.updateDetailViewport()
		}
	case "u":
		if m.hasPage {
			m.statusMsg = ""
			m.selection.Bind(m.pageData.Number).DeselectAll()
			m.updateDetailViewport()
		}
	case "C":
		m.statusMsg = ""
		m.selection.Clear()
		m.updateDetailViewport()
	}

	return m, nil
}

// gotoPage navigates to the given page, serving from cache when fresh.
func (m Model) gotoPage(page int) (tea.Model, tea.Cmd) {
	m.page = page
	m.loading = true
	m.lastError = nil
	m.statusMsg = ""
	if cached, ok := m.cache.Get(page); ok {
		m.pageData = cached
		m.hasPage = true
		m.loading = false
		m.totalRows = cached.Pagination.Total
		m.totalPages = cached.Pagination.TotalPages
		if max := len(cached.Artworks) - 1; m.cursor > max {
			m.cursor = max
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		m.updateDetailViewport()
		if next := page + 1; m.totalPages == 0 || next <= m.totalPages {
			return m, m.prefetchPageCmd(next)
		}
		return m, nil
	}
	return m, m.fetchPageCmd(page)
}

// artworkUnderCursor returns the highlighted artwork, or nil when the page is
// empty.
func (m Model) artworkUnderCursor() *artic.Artwork {
	if !m.hasPage || m.cursor < 0 || m.cursor >= len(m.pageData.Artworks) {
		return nil
	}
	return &m.pageData.Artworks[m.cursor]
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderBrowse())

	return b.String()
}

// Messages

type pageMsg artic.Page

type pageErrMsg struct {
	page int
	err  error
}

type bulkDoneMsg struct {
	res selection.BulkResult
	err error
}

// Commands

func (m Model) fetchPageCmd(page int) tea.Cmd {
	client, cache, ctx := m.client, m.cache, m.ctx
	return func() tea.Msg {
		if cached, ok := cache.Get(page); ok {
			return pageMsg(cached)
		}
		fetched, err := client.FetchPage(ctx, page)
		if err != nil {
			return pageErrMsg{page: page, err: err}
		}
		cache.Put(fetched)
		return pageMsg(fetched)
	}
}

// prefetchPageCmd primes the cache for a page without surfacing the result.
// Errors are ignored; the page is fetched for real when navigated to.
func (m Model) prefetchPageCmd(page int) tea.Cmd {
	client, cache, ctx := m.client, m.cache, m.ctx
	return func() tea.Msg {
		if _, ok := cache.Get(page); ok {
			return nil
		}
		fetched, err := client.FetchPage(ctx, page)
		if err != nil {
			return nil
		}
		cache.Put(fetched)
		return nil
	}
}

func (m Model) bulkSelectCmd(ctx context.Context, startPage, count int) tea.Cmd {
	sel, client := m.selection, m.client
	return func() tea.Msg {
		res, err := sel.BulkSelect(ctx, startPage, count, client.FetchPageIDs)
		return bulkDoneMsg{res: res, err: err}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
