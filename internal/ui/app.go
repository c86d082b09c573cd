package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/calebwray/shopfront/internal/catalog"
	"github.com/calebwray/shopfront/internal/config"
	"github.com/calebwray/shopfront/internal/controller"
	"github.com/calebwray/shopfront/internal/logging"
	"github.com/calebwray/shopfront/internal/pipeline"
	"github.com/calebwray/shopfront/internal/store"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is the root Bubble Tea model
type Model struct {
	ctrl    *controller.Controller
	source  *catalog.Source
	cache   *store.Store    // nil when the snapshot store is unavailable
	cfg     *config.Config  // nil when preferences are not persisted
	offline bool

	view    controller.View
	styles  styles
	search  textinput.Model
	spinner spinner.Model
	pager   paginator.Model

	searching bool   // search input focused
	fetching  bool   // fetch in flight; refresh requests are dropped meanwhile
	errText   string // classified fetch failure, "" when healthy
	width     int
	height    int
}

// New creates the app model. cache may be nil; cfg may be nil for defaults.
func New(src *catalog.Source, cache *store.Store, cfg *config.Config, offline bool) Model {
	theme := ""
	if cfg != nil {
		theme = cfg.UI.Theme
	}
	st := newStyles(theme)

	ti := textinput.New()
	ti.Placeholder = "type to filter titles"
	ti.Prompt = "/ "
	ti.CharLimit = 64

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(st.accent)

	pg := paginator.New()
	pg.Type = paginator.Dots
	pg.ActiveDot = st.activeDot.Render("•")
	pg.InactiveDot = st.inactiveDot.Render("•")

	ctrl := controller.New()
	m := Model{
		ctrl:     ctrl,
		source:   src,
		cache:    cache,
		cfg:      cfg,
		offline:  offline,
		styles:   st,
		search:   ti,
		spinner:  sp,
		pager:    pg,
		fetching: true,
	}

	if cfg != nil {
		// An out-of-range configured size falls through as a no-op,
		// keeping the default.
		m.view = ctrl.Dispatch(controller.PageSizeChanged{Size: cfg.UI.PageSize})
	} else {
		m.view = ctrl.View()
	}
	return m
}

// Init kicks off the spinner and the initial catalog load
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCatalog())
}

// loadCatalog fetches the catalog (or reads the offline snapshot) off the
// update loop and reports back with a CatalogLoaded message.
func (m Model) loadCatalog() tea.Cmd {
	src, cache, offline := m.source, m.cache, m.offline
	return func() tea.Msg {
		if offline {
			products, err := cache.LoadSnapshot()
			return CatalogLoaded{Products: products, Err: err, FromCache: true}
		}
		products, err := src.FetchAll(context.Background())
		return CatalogLoaded{Products: products, Err: err}
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.search.Width = min(msg.Width-8, 48)
		return m, nil

	case spinner.TickMsg:
		if !m.fetching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case CatalogLoaded:
		m.fetching = false
		if msg.Err != nil {
			logging.Error("catalog load failed", "err", msg.Err)
			m.errText = catalog.Classify(msg.Err).Message()
			// Nothing stale stays visible after a failed load
			m.view = m.ctrl.Dispatch(controller.ProductsLoaded{})
			m.syncPager()
			return m, nil
		}
		m.errText = ""
		m.view = m.ctrl.Dispatch(controller.ProductsLoaded{Products: msg.Products})
		m.syncPager()
		logging.Info("catalog loaded", "products", len(msg.Products), "cache", msg.FromCache)
		if m.cache != nil && !msg.FromCache {
			if err := m.cache.SaveSnapshot(msg.Products); err != nil {
				logging.Warn("failed to save snapshot", "err", err)
			}
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink

	case "p":
		m.dispatch(controller.SortToggled{Field: pipeline.SortPrice})

	case "t":
		m.dispatch(controller.SortToggled{Field: pipeline.SortTitle})

	case "left", "h", "[":
		m.dispatch(controller.PageSelected{Page: m.view.Page.Current - 1})

	case "right", "l", "]":
		m.dispatch(controller.PageSelected{Page: m.view.Page.Current + 1})

	case "g":
		m.dispatch(controller.PageSelected{Page: 1})

	case "G":
		m.dispatch(controller.PageSelected{Page: m.view.Page.TotalPages})

	case "5":
		m.setPageSize(5)

	case "0":
		m.setPageSize(10)

	case "2":
		m.setPageSize(20)

	case "r":
		// One fetch at a time; offline mode has nothing to refresh
		if m.fetching || m.offline {
			return m, nil
		}
		m.fetching = true
		return m, tea.Batch(m.spinner.Tick, m.loadCatalog())
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.dispatch(controller.SearchChanged{Term: ""})
		return m, nil

	case "enter":
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	// Live filtering: every keystroke re-runs the chain
	m.dispatch(controller.SearchChanged{Term: m.search.Value()})
	return m, cmd
}

// setPageSize dispatches a size change and persists an accepted one, so the
// choice survives restarts. An out-of-range size never reaches the config.
func (m *Model) setPageSize(size int) {
	before := m.view.Page.Size
	m.dispatch(controller.PageSizeChanged{Size: size})
	if m.cfg == nil || m.view.Page.Size == before {
		return
	}
	m.cfg.UI.PageSize = m.view.Page.Size
	if err := m.cfg.Save(); err != nil {
		logging.Warn("failed to save config", "err", err)
	}
}

// dispatch routes an event through the controller and refreshes the
// derived view plus the pagination widget.
func (m *Model) dispatch(ev controller.Event) {
	m.view = m.ctrl.Dispatch(ev)
	m.syncPager()
}

// syncPager mirrors the page state into the dots widget.
func (m *Model) syncPager() {
	m.pager.TotalPages = m.view.Page.TotalPages
	m.pager.Page = m.view.Page.Current - 1
}

// View renders the UI
func (m Model) View() string {
	var sections []string

	sections = append(sections, m.styles.header.Width(max(m.width, 1)).Render(m.renderHeader()))

	switch {
	case m.fetching:
		sections = append(sections, fmt.Sprintf("\n  %s Loading catalog...\n", m.spinner.View()))
	case m.errText != "":
		sections = append(sections, "\n  "+m.styles.errText.Render(m.errText)+"\n")
	default:
		sections = append(sections, m.renderTable())
	}

	if m.searching || m.search.Value() != "" {
		sections = append(sections, "  "+m.search.View())
	}

	// Pagination controls only appear when there is more than one page
	if !m.fetching && m.errText == "" && m.view.Page.TotalPages > 1 {
		sections = append(sections, m.renderPageBar())
	}

	sections = append(sections, m.styles.status.Width(max(m.width, 1)).Render(m.renderStatusBar()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	header := fmt.Sprintf("  SHOPFRONT  ·  %d products  ·  sort: %s",
		m.ctrl.TotalProducts(), m.sortLabel())
	if m.offline {
		header += "  ·  offline snapshot"
	}
	return header
}

func (m Model) sortLabel() string {
	s := m.ctrl.Sort()
	var name string
	switch s.Field {
	case pipeline.SortPrice:
		name = "price"
	case pipeline.SortTitle:
		name = "title"
	default:
		return "none"
	}
	if s.Direction == pipeline.Descending {
		return name + " ↓"
	}
	return name + " ↑"
}

func (m Model) renderTable() string {
	items := m.view.Items
	if len(items) == 0 {
		if m.ctrl.Search().Term != "" {
			return "\n  " + m.styles.muted.Render(fmt.Sprintf("No titles match %q.", m.ctrl.Search().Term)) + "\n"
		}
		return "\n  " + m.styles.muted.Render("The catalog is empty. Press r to refresh.") + "\n"
	}

	titleWidth := max(m.width-34, 24)

	var rows []string
	rows = append(rows, m.styles.tableHeader.Render(
		fmt.Sprintf("  %-*s  %10s  %-16s", titleWidth, "TITLE", "PRICE", "CATEGORY")))

	for _, p := range items {
		price := "-"
		if p.Price != nil {
			price = fmt.Sprintf("$%.2f", *p.Price)
		}
		rows = append(rows, m.styles.row.Render(
			fmt.Sprintf("  %-*s  %10s  %-16s",
				titleWidth, truncate(p.Title, titleWidth),
				price, truncate(p.CategoryName(), 16))))
	}

	return "\n" + strings.Join(rows, "\n") + "\n"
}

func (m Model) renderPageBar() string {
	page := m.view.Page
	label := m.styles.muted.Render(
		fmt.Sprintf("  page %d/%d  ·  %d items", page.Current, page.TotalPages, page.TotalItems))
	return "  " + m.pager.View() + label
}

func (m Model) renderStatusBar() string {
	if m.searching {
		return "  [enter] keep filter  [esc] clear"
	}
	return "  [/] search  [p] price  [t] title  [←→] page  [5/0/2] page size  [r] refresh  [q] quit"
}

func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 2 {
		return s[:maxLen]
	}
	return s[:maxLen-2] + ".."
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
