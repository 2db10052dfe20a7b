package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Akhsuna07/contentdeck/internal/content"
)

// Column widths. ULIDs are 26 characters, so ids fit unclipped.
const (
	idColWidth       = 26
	childrenColWidth = 8
	createdColWidth  = 16
)

const defaultPageSize = 10

var pageSizes = []int{5, 10, 20, 50}

// ContentTable shows the content of one extraction graph as a paged table
// with a browse mode and an id-search mode. It fetches nothing itself: the
// app hands it a record snapshot and the table re-derives its visible rows
// every render.
type ContentTable struct {
	graph   string
	records []content.Record
	mode    content.Mode
	search  textinput.Model
	pager   paginator.Model
	fmtr    content.RowFormatter
}

func NewContentTable(fmtr content.RowFormatter, perPage int) ContentTable {
	if perPage <= 0 {
		perPage = defaultPageSize
	}
	input := textinput.New()
	input.Placeholder = "content id"
	input.Prompt = "/ "
	input.CharLimit = 64

	pager := paginator.New()
	pager.Type = paginator.Dots
	pager.PerPage = perPage
	pager.ActiveDot = lipgloss.NewStyle().Foreground(colorAccent).Render("•")
	pager.InactiveDot = lipgloss.NewStyle().Foreground(colorSurface2).Render("•")

	return ContentTable{
		mode:   content.ModeIngested,
		search: input,
		pager:  pager,
		fmtr:   fmtr,
	}
}

func (t *ContentTable) SetGraph(name string) {
	if name == t.graph {
		return
	}
	t.graph = name
	t.pager.Page = 0
	t.syncPager()
}

func (t ContentTable) Graph() string { return t.graph }

func (t *ContentTable) SetRecords(records []content.Record) {
	t.records = records
	t.syncPager()
}

func (t ContentTable) Mode() content.Mode { return t.mode }

// SetMode switches the view mode. Unknown or empty values leave the current
// mode untouched.
func (t *ContentTable) SetMode(raw string) {
	mode, ok := content.ParseMode(raw)
	if !ok || mode == t.mode {
		return
	}
	t.mode = mode
	t.pager.Page = 0
	t.syncPager()
}

// ToggleMode flips between browsing and id search. Leaving search keeps the
// typed query around; browse mode simply ignores it.
func (t *ContentTable) ToggleMode() content.Mode {
	if t.mode == content.ModeSearch {
		t.SetMode(string(content.ModeIngested))
		t.search.Blur()
	} else {
		t.SetMode(string(content.ModeSearch))
	}
	return t.mode
}

// FocusSearch switches to search mode and puts the cursor in the query box.
func (t *ContentTable) FocusSearch() tea.Cmd {
	t.SetMode(string(content.ModeSearch))
	return t.search.Focus()
}

func (t *ContentTable) BlurSearch() { t.search.Blur() }

func (t ContentTable) SearchFocused() bool { return t.search.Focused() }

func (t ContentTable) SearchQuery() string { return t.search.Value() }

func (t ContentTable) PageSize() int { return t.pager.PerPage }

func (t *ContentTable) SetPageSize(n int) {
	if n <= 0 {
		return
	}
	t.pager.PerPage = n
	t.pager.Page = 0
	t.syncPager()
}

// CyclePageSize advances to the next preset page size and returns it.
func (t *ContentTable) CyclePageSize() int {
	next := pageSizes[0]
	for i, s := range pageSizes {
		if s == t.pager.PerPage {
			next = pageSizes[(i+1)%len(pageSizes)]
			break
		}
	}
	t.SetPageSize(next)
	return next
}

func (t ContentTable) Update(msg tea.Msg) (ContentTable, tea.Cmd) {
	if t.search.Focused() {
		before := t.search.Value()
		var cmd tea.Cmd
		t.search, cmd = t.search.Update(msg)
		if t.search.Value() != before {
			t.pager.Page = 0
		}
		t.syncPager()
		return t, cmd
	}
	var cmd tea.Cmd
	t.pager, cmd = t.pager.Update(msg)
	t.syncPager()
	return t, cmd
}

// visibleRows runs the full derivation for the current state: graph filter,
// display projection, then mode filter.
func (t ContentTable) visibleRows() []content.DisplayRow {
	filtered := content.FilterByGraph(t.records, t.graph)
	rows := content.ProjectRows(filtered, t.fmtr)
	return content.VisibleRows(rows, t.mode, t.search.Value())
}

func (t ContentTable) View(width int) string {
	vis := t.visibleRows()
	start, end := t.pageBounds(len(vis))

	lines := []string{t.modeLine(), ""}
	lines = append(lines, splitLines(renderContentRows(vis[start:end], width))...)

	if len(vis) == 0 {
		why := fmt.Sprintf("no content in graph %q", t.graph)
		if t.mode == content.ModeSearch && strings.TrimSpace(t.search.Value()) != "" {
			why = fmt.Sprintf("no ids match %q", t.search.Value())
		}
		lines = append(lines, statusStyle.Render("  ("+why+")"))
		return strings.Join(lines, "\n")
	}

	indicator := scrollStyle.Render(fmt.Sprintf("── showing %d-%d of %d ──", start+1, end, len(vis)))
	lines = append(lines, indicator, t.pager.View())
	return strings.Join(lines, "\n")
}

func (t ContentTable) modeLine() string {
	mode := modeStyle.Render("mode: " + string(t.mode))
	if t.mode == content.ModeSearch {
		return mode + "  " + t.search.View()
	}
	return mode
}

// pageBounds clamps the pager window against the current row count, which
// may have shrunk since the last key event.
func (t ContentTable) pageBounds(n int) (int, int) {
	per := t.pager.PerPage
	if per < 1 {
		per = 1
	}
	start := t.pager.Page * per
	if start >= n {
		start = 0
		if n > 0 {
			start = ((n - 1) / per) * per
		}
	}
	end := start + per
	if end > n {
		end = n
	}
	return start, end
}

// syncPager re-derives the page count after anything that changes the
// visible set, so the paginator keys stay within bounds.
func (t *ContentTable) syncPager() {
	n := len(t.visibleRows())
	if n == 0 {
		t.pager.Page = 0
		t.pager.TotalPages = 1
		return
	}
	t.pager.SetTotalPages(n)
	if t.pager.Page >= t.pager.TotalPages {
		t.pager.Page = t.pager.TotalPages - 1
	}
}

func renderContentRows(rows []content.DisplayRow, width int) string {
	labelsWidth := width - idColWidth - childrenColWidth - createdColWidth - 6
	if labelsWidth < 8 {
		labelsWidth = 8
	}

	header := fmt.Sprintf("%-*s  %*s  %-*s  %-*s",
		idColWidth, "ID", childrenColWidth, "Children", labelsWidth, "Labels", createdColWidth, "Created At")
	lines := []string{tableHeaderStyle.Render(header)}

	for _, row := range rows {
		id := padRight(truncate(row.ID, idColWidth), idColWidth)
		children := fmt.Sprintf("%*d", childrenColWidth, row.Children)
		labels := padRight(truncate(row.Labels, labelsWidth), labelsWidth)
		created := padRight(truncate(row.CreatedAt, createdColWidth), createdColWidth)
		lines = append(lines, id+"  "+children+"  "+labels+"  "+created)
	}
	return strings.Join(lines, "\n")
}
