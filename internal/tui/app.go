package tui

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Akhsuna07/contentdeck/internal/config"
	"github.com/Akhsuna07/contentdeck/internal/content"
	"github.com/Akhsuna07/contentdeck/internal/database/repository"
	"github.com/Akhsuna07/contentdeck/internal/service"
)

const appName = "ContentDeck"

// Tab indices
const (
	tabContent = 0
	tabGraphs  = 1
	tabCount   = 2
)

// App ties together views.
type App struct {
	ctx      context.Context
	repos    Repos
	services Services
	cfg      config.Config
	diag     *log.Logger

	keys      keyMap
	modalKeys modalKeyMap

	activeTab int
	table     ContentTable
	records   []content.Record
	graphs    []content.Graph

	selectedPolicy string
	modal          modalState
	picker         *pickerState
	importInput    textinput.Model
	lastImport     *service.IngestResult
	status         string
	width          int
	height         int
	ready          bool
}

type Repos struct {
	Content *repository.ContentRepo
	Graphs  *repository.GraphRepo
}

type Services struct {
	Ingest      *service.IngestService
	Maintenance *service.MaintenanceService
}

type modalState string

const (
	modalNone         modalState = ""
	modalGraphPicker  modalState = "graphPicker"
	modalPolicyPicker modalState = "policyPicker"
	modalConfirmReset modalState = "confirmReset"
	modalImport       modalState = "importPrompt"
)

// New builds the app model. diag may be nil; it receives derivation
// diagnostics such as the policy options trace.
func New(ctx context.Context, cfg config.Config, repos Repos, services Services, loc *time.Location, diag *log.Logger) *App {
	if loc == nil {
		loc = time.Local
	}
	fmtr := content.RowFormatter{Layout: cfg.UI.DateFormat, Location: loc}
	table := NewContentTable(fmtr, cfg.UI.PageSize)
	table.SetGraph(cfg.UI.Graph)

	importInput := textinput.New()
	importInput.Placeholder = "records.json"
	importInput.Prompt = "> "
	importInput.CharLimit = 128

	return &App{
		ctx:         ctx,
		repos:       repos,
		services:    services,
		cfg:         cfg,
		diag:        diag,
		keys:        newKeyMap(),
		modalKeys:   modalKeyMap{keyMap: newKeyMap()},
		table:       table,
		importInput: importInput,
		status:      "loading...",
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loadContent(), a.loadGraphs())
}

func (a *App) loadContent() tea.Cmd {
	return func() tea.Msg {
		records, err := a.repos.Content.List(a.ctx, repository.ContentFilters{})
		if err != nil {
			return errMsg{err}
		}
		return contentMsg(records)
	}
}

func (a *App) loadGraphs() tea.Cmd {
	return func() tea.Msg {
		graphs, err := a.repos.Graphs.List(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return graphsMsg(graphs)
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
		return a, nil
	case tea.KeyMsg:
		if a.modal != modalNone {
			return a.handleModalKey(m)
		}
		if a.activeTab == tabContent && a.table.SearchFocused() {
			return a.handleSearchKey(m)
		}
		return a.handleMainKey(m)
	case contentMsg:
		a.records = []content.Record(m)
		a.table.SetRecords(a.records)
		a.ready = true
		if a.status == "" || a.status == "loading..." {
			a.status = "Ready. Press tab to switch views, / to search ids."
		}
	case graphsMsg:
		a.graphs = []content.Graph(m)
		a.ensureGraphSelection()
	case statusMsg:
		a.status = string(m)
	case errMsg:
		a.status = "error: " + m.Error()
	case importDoneMsg:
		a.lastImport = &m.Result
		summary := fmt.Sprintf("imported %d, skipped %d", m.Result.Imported, m.Result.Skipped)
		if len(m.Result.Errors) > 0 {
			summary += fmt.Sprintf(", errors %d", len(m.Result.Errors))
		}
		a.status = summary
		return a, tea.Batch(a.loadContent(), a.loadGraphs())
	}
	return a, nil
}

// ensureGraphSelection keeps the table pointed at a real graph: the
// configured one when it exists, otherwise the first registered graph. A
// near-miss gets a suggestion in the status bar.
func (a *App) ensureGraphSelection() {
	if len(a.graphs) == 0 {
		return
	}
	current := a.table.Graph()
	if current != "" && a.graphByName(current) != nil {
		return
	}
	if current != "" {
		if suggestion, ok := content.NearestGraph(current, a.graphs); ok {
			a.status = fmt.Sprintf("graph %q not found, showing %q instead", current, suggestion)
			a.table.SetGraph(suggestion)
			return
		}
		a.status = fmt.Sprintf("graph %q not found, showing %q", current, a.graphs[0].Name)
	}
	a.table.SetGraph(a.graphs[0].Name)
}

func (a *App) graphByName(name string) *content.Graph {
	for i := range a.graphs {
		if a.graphs[i].Name == name {
			return &a.graphs[i]
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Key-input handlers
// ---------------------------------------------------------------------------

func (a *App) handleMainKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "tab":
		a.activeTab = (a.activeTab + 1) % tabCount
		return a, nil
	case "shift+tab":
		a.activeTab = (a.activeTab - 1 + tabCount) % tabCount
		return a, nil
	case "r":
		a.status = "refreshing..."
		return a, tea.Batch(a.loadContent(), a.loadGraphs())
	}

	if a.activeTab == tabContent {
		switch m.String() {
		case "m":
			mode := a.table.ToggleMode()
			a.status = "mode: " + string(mode)
			return a, nil
		case "/":
			return a, a.table.FocusSearch()
		case "g":
			a.openGraphPicker()
			return a, nil
		case "p":
			a.openPolicyPicker()
			return a, nil
		case "s":
			size := a.table.CyclePageSize()
			a.status = fmt.Sprintf("page size: %d", size)
			return a, nil
		case "i":
			return a, a.openImportPrompt()
		default:
			var cmd tea.Cmd
			a.table, cmd = a.table.Update(m)
			return a, cmd
		}
	}

	if a.activeTab == tabGraphs && m.String() == "x" {
		a.modal = modalConfirmReset
	}
	return a, nil
}

func (a *App) handleSearchKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "esc", "enter":
		// Leave the query in place; browse mode ignores it anyway.
		a.table.BlurSearch()
		return a, nil
	}
	var cmd tea.Cmd
	a.table, cmd = a.table.Update(m)
	return a, cmd
}

func (a *App) handleImportKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "esc":
		a.modal = modalNone
		a.importInput.Blur()
		return a, nil
	case "enter":
		path := strings.TrimSpace(a.importInput.Value())
		if path == "" {
			a.status = "enter a JSON path"
			return a, nil
		}
		a.modal = modalNone
		a.importInput.Blur()
		return a, a.importCmd(path)
	}
	var cmd tea.Cmd
	a.importInput, cmd = a.importInput.Update(m)
	return a, cmd
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.modal == modalConfirmReset {
		switch m.String() {
		case "y", "Y":
			a.modal = modalNone
			return a, a.resetCmd()
		case "n", "N", "esc":
			a.modal = modalNone
		}
		return a, nil
	}
	if a.modal == modalImport {
		return a.handleImportKey(m)
	}
	if m.String() == "ctrl+c" {
		return a, tea.Quit
	}

	res := a.picker.HandleKey(m.String())
	switch res.Action {
	case pickerActionCancelled:
		a.closePicker()
	case pickerActionSelected:
		modal := a.modal
		a.closePicker()
		switch modal {
		case modalGraphPicker:
			return a, a.selectGraphCmd(res.ItemLabel)
		case modalPolicyPicker:
			a.applyPolicySelection(res.ItemID, res.ItemLabel)
		}
	}
	return a, nil
}

// ---------------------------------------------------------------------------
// Pickers
// ---------------------------------------------------------------------------

func (a *App) openGraphPicker() {
	items := make([]pickerItem, 0, len(a.graphs))
	for i, g := range a.graphs {
		items = append(items, pickerItem{
			ID:    i,
			Label: g.Name,
			Meta:  fmt.Sprintf("%d policies", len(g.Policies)),
		})
	}
	a.picker = newPicker("Select Graph", items)
	a.modal = modalGraphPicker
}

func (a *App) openPolicyPicker() {
	options := content.PolicyOptionsLogged(a.graphs, a.diag)
	items := make([]pickerItem, 0, len(options))
	for i, opt := range options {
		meta := opt.Value
		if i < len(a.graphs) {
			meta = a.graphs[i].Name
		}
		items = append(items, pickerItem{ID: i, Label: opt.Label, Meta: meta})
	}
	a.picker = newPicker("Select Policy", items)
	a.modal = modalPolicyPicker
}

func (a *App) closePicker() {
	a.modal = modalNone
	a.picker = nil
}

// openImportPrompt keeps the previous path around so re-importing the same
// export is one Enter away.
func (a *App) openImportPrompt() tea.Cmd {
	a.modal = modalImport
	return a.importInput.Focus()
}

// applyPolicySelection records the chosen option. Options are positional and
// picking one drives no extraction yet, so this is display state only.
func (a *App) applyPolicySelection(idx int, label string) {
	options := content.PolicyOptions(a.graphs)
	if idx < 0 || idx >= len(options) {
		return
	}
	a.selectedPolicy = options[idx].Value
	a.status = "selected " + label
}

// ---------------------------------------------------------------------------
// Commands
// ---------------------------------------------------------------------------

func (a *App) selectGraphCmd(name string) tea.Cmd {
	a.table.SetGraph(name)
	a.cfg.UI.Graph = name
	return tea.Batch(
		func() tea.Msg {
			if err := config.Save(a.cfg); err != nil {
				return errMsg{err}
			}
			return statusMsg("graph: " + name)
		},
		a.loadContent(),
	)
}

// importCmd ingests a JSON export off the Update loop. Records without
// memberships land in the graph currently on screen.
func (a *App) importCmd(path string) tea.Cmd {
	abs := path
	if !filepath.IsAbs(path) {
		if p, err := filepath.Abs(path); err == nil {
			abs = p
		}
	}
	a.status = "importing..."
	graph := a.table.Graph()
	if a.services.Ingest == nil {
		return func() tea.Msg { return errMsg{fmt.Errorf("ingest service not configured")} }
	}
	return func() tea.Msg {
		f, err := os.Open(abs)
		if err != nil {
			return errMsg{fmt.Errorf("open %s: %w", abs, err)}
		}
		defer f.Close()

		res, err := a.services.Ingest.ImportJSON(a.ctx, f, graph)
		if err != nil {
			return errMsg{err}
		}
		return importDoneMsg{Result: res}
	}
}

func (a *App) resetCmd() tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			if a.services.Maintenance == nil {
				return errMsg{fmt.Errorf("maintenance not configured")}
			}
			if err := a.services.Maintenance.Reset(a.ctx); err != nil {
				return errMsg{err}
			}
			return statusMsg("content cleared - import or seed to refill")
		},
		a.loadContent(),
		a.loadGraphs(),
	)
}

// ---------------------------------------------------------------------------
// Views
// ---------------------------------------------------------------------------

func (a *App) View() string {
	if !a.ready {
		return statusStyle.Render(a.status)
	}

	header := renderHeader(appName, a.activeTab, a.width)
	statusLine := a.renderStatus(a.statusText())
	footer := a.renderFooter(a.footerBindings())

	var body string
	switch a.activeTab {
	case tabGraphs:
		body = a.graphsView()
	default:
		body = a.contentView()
	}
	main := header + "\n\n" + body

	if a.modal != modalNone {
		return a.composeModal(main, statusLine, footer)
	}
	return a.placeWithFooter(main, statusLine, footer)
}

func (a *App) contentView() string {
	title := "Content"
	if g := a.table.Graph(); g != "" {
		title = "Content · " + g
	}
	return a.renderSection(title, a.table.View(a.listContentWidth()))
}

func (a *App) graphsView() string {
	if len(a.graphs) == 0 {
		return a.renderSection("Graphs", statusStyle.Render("(no extraction graphs registered)"))
	}
	var lines []string
	for i, g := range a.graphs {
		name := lipgloss.NewStyle().Foreground(graphAccent(i)).Bold(true).Render(g.Name)
		records := len(content.FilterByGraph(a.records, g.Name))
		counts := statusStyle.Render(fmt.Sprintf("  %d policies · %d records", len(g.Policies), records))
		lines = append(lines, name+counts)
		for _, p := range g.Policies {
			policy := "    " + p.Name
			if p.Extractor != "" {
				policy += statusStyle.Render("  (" + p.Extractor + ")")
			}
			lines = append(lines, policy)
		}
		lines = append(lines, "")
	}
	if len(lines) > 0 {
		lines = lines[:len(lines)-1]
	}
	return a.renderSection("Graphs", strings.Join(lines, "\n"))
}

func (a *App) popupView() string {
	if a.modal == modalConfirmReset {
		return titleStyle.Render("Clear all content?") + "\n" +
			"Graphs and policies stay registered.\n\n" +
			helpKeyStyle.Render("y") + helpDescStyle.Render(" yes  ") +
			helpKeyStyle.Render("n") + helpDescStyle.Render(" no")
	}
	if a.modal == modalImport {
		return a.importPromptView()
	}
	return renderPicker(a.picker, a.pickerWidth())
}

func (a *App) importPromptView() string {
	body := titleStyle.Render("Import JSON") + "\n" +
		"Path to a JSON array of content records.\n" +
		a.importInput.View() + "\n"
	if a.lastImport != nil {
		last := fmt.Sprintf("last: %d imported, %d skipped", a.lastImport.Imported, a.lastImport.Skipped)
		if len(a.lastImport.Errors) > 0 {
			last += "\n" + truncate("first error: "+a.lastImport.Errors[0].Error(), a.pickerWidth())
		}
		body += statusStyle.Render(last) + "\n"
	}
	body += "\n" + helpKeyStyle.Render("enter") + helpDescStyle.Render(" import  ") +
		helpKeyStyle.Render("esc") + helpDescStyle.Render(" cancel")
	return body
}

func (a *App) statusText() string {
	if a.selectedPolicy == "" {
		return a.status
	}
	return a.status + "  ·  policy: " + a.selectedPolicy
}

func (a *App) footerBindings() []key.Binding {
	if a.modal == modalImport {
		return []key.Binding{a.keys.Enter, a.keys.Close}
	}
	if a.modal != modalNone {
		return a.modalKeys.ShortHelp()
	}
	if a.activeTab == tabContent && a.table.SearchFocused() {
		return []key.Binding{a.keys.Enter, a.keys.Close, a.keys.Mode}
	}
	if a.activeTab == tabGraphs {
		return []key.Binding{a.keys.NextTab, a.keys.Refresh, a.keys.Reset, a.keys.Quit}
	}
	return []key.Binding{
		a.keys.NextTab, a.keys.Mode, a.keys.Search, a.keys.Graph,
		a.keys.Policy, a.keys.PageSize, a.keys.Import, a.keys.Pages, a.keys.Quit,
	}
}

// ---------------------------------------------------------------------------
// Bubble Tea messages
// ---------------------------------------------------------------------------

type contentMsg []content.Record

type graphsMsg []content.Graph

type statusMsg string

type errMsg struct{ error }

type importDoneMsg struct {
	Result service.IngestResult
}
