package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Akhsuna07/contentdeck/internal/content"
)

func keyMsg(k string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// testRecords returns 25 records in graph "invoices" and one in "wiki".
func testRecords() []content.Record {
	recs := make([]content.Record, 0, 26)
	for i := 0; i < 25; i++ {
		recs = append(recs, content.Record{
			ID:         fmt.Sprintf("rec-%02d", i),
			GraphNames: []string{"invoices"},
			CreatedAt:  1700000000 + int64(i),
		})
	}
	recs = append(recs, content.Record{
		ID:         "wiki-only",
		GraphNames: []string{"wiki"},
		CreatedAt:  1700000100,
	})
	return recs
}

func newTestTable(perPage int) ContentTable {
	tbl := NewContentTable(content.RowFormatter{}, perPage)
	tbl.SetGraph("invoices")
	tbl.SetRecords(testRecords())
	return tbl
}

func TestContentTableSetModeIgnoresUnknown(t *testing.T) {
	tbl := NewContentTable(content.RowFormatter{}, 10)
	if tbl.Mode() != content.ModeIngested {
		t.Fatalf("initial mode = %q, want %q", tbl.Mode(), content.ModeIngested)
	}

	tbl.SetMode("bogus")
	if tbl.Mode() != content.ModeIngested {
		t.Fatalf("mode after bogus = %q, want %q", tbl.Mode(), content.ModeIngested)
	}

	tbl.SetMode("search")
	if tbl.Mode() != content.ModeSearch {
		t.Fatalf("mode after search = %q, want %q", tbl.Mode(), content.ModeSearch)
	}

	tbl.SetMode("")
	if tbl.Mode() != content.ModeSearch {
		t.Fatalf("mode after empty = %q, want %q", tbl.Mode(), content.ModeSearch)
	}
}

func TestContentTableToggleModeKeepsQuery(t *testing.T) {
	tbl := newTestTable(10)

	_ = tbl.FocusSearch()
	if !tbl.SearchFocused() {
		t.Fatal("search should be focused after FocusSearch")
	}
	for _, k := range []string{"r", "e", "c"} {
		tbl, _ = tbl.Update(keyMsg(k))
	}
	if tbl.SearchQuery() != "rec" {
		t.Fatalf("query = %q, want %q", tbl.SearchQuery(), "rec")
	}

	mode := tbl.ToggleMode()
	if mode != content.ModeIngested {
		t.Fatalf("mode after toggle = %q, want %q", mode, content.ModeIngested)
	}
	if tbl.SearchFocused() {
		t.Fatal("leaving search mode should blur the input")
	}
	if tbl.SearchQuery() != "rec" {
		t.Fatalf("query should survive toggle, got %q", tbl.SearchQuery())
	}

	mode = tbl.ToggleMode()
	if mode != content.ModeSearch {
		t.Fatalf("mode after second toggle = %q, want %q", mode, content.ModeSearch)
	}
}

func TestContentTableSearchFiltersCaseSensitively(t *testing.T) {
	tbl := NewContentTable(content.RowFormatter{}, 10)
	tbl.SetGraph("g")
	tbl.SetRecords([]content.Record{
		{ID: "abc123", GraphNames: []string{"g"}},
		{ID: "abd456", GraphNames: []string{"g"}},
		{ID: "ABC789", GraphNames: []string{"g"}},
	})

	_ = tbl.FocusSearch()
	for _, k := range []string{"a", "b"} {
		tbl, _ = tbl.Update(keyMsg(k))
	}

	rows := tbl.visibleRows()
	if len(rows) != 2 {
		t.Fatalf("visible rows = %d, want 2", len(rows))
	}
	if rows[0].ID != "abc123" || rows[1].ID != "abd456" {
		t.Fatalf("visible ids = %q,%q; uppercase id should not match", rows[0].ID, rows[1].ID)
	}

	// Browse mode ignores the query entirely.
	if mode := tbl.ToggleMode(); mode != content.ModeIngested {
		t.Fatalf("mode = %q, want %q", mode, content.ModeIngested)
	}
	if got := len(tbl.visibleRows()); got != 3 {
		t.Fatalf("visible rows in browse mode = %d, want 3", got)
	}
}

func TestContentTableGraphFilter(t *testing.T) {
	tbl := newTestTable(10)
	if got := len(tbl.visibleRows()); got != 25 {
		t.Fatalf("invoices rows = %d, want 25", got)
	}

	tbl.SetGraph("wiki")
	rows := tbl.visibleRows()
	if len(rows) != 1 || rows[0].ID != "wiki-only" {
		t.Fatalf("wiki rows = %v, want just wiki-only", rows)
	}

	tbl.SetGraph("nope")
	if got := len(tbl.visibleRows()); got != 0 {
		t.Fatalf("unknown graph rows = %d, want 0", got)
	}
}

func TestContentTablePagination(t *testing.T) {
	tbl := newTestTable(10)
	if tbl.pager.TotalPages != 3 {
		t.Fatalf("total pages = %d, want 3", tbl.pager.TotalPages)
	}

	start, end := tbl.pageBounds(len(tbl.visibleRows()))
	if start != 0 || end != 10 {
		t.Fatalf("page 0 bounds = %d-%d, want 0-10", start, end)
	}

	tbl, _ = tbl.Update(keyMsg("l"))
	start, end = tbl.pageBounds(len(tbl.visibleRows()))
	if start != 10 || end != 20 {
		t.Fatalf("page 1 bounds = %d-%d, want 10-20", start, end)
	}

	tbl, _ = tbl.Update(keyMsg("l"))
	start, end = tbl.pageBounds(len(tbl.visibleRows()))
	if start != 20 || end != 25 {
		t.Fatalf("page 2 bounds = %d-%d, want 20-25", start, end)
	}

	// Paging past the end stays on the last page.
	tbl, _ = tbl.Update(keyMsg("l"))
	if tbl.pager.Page != 2 {
		t.Fatalf("page after overshoot = %d, want 2", tbl.pager.Page)
	}

	tbl, _ = tbl.Update(keyMsg("h"))
	if tbl.pager.Page != 1 {
		t.Fatalf("page after back = %d, want 1", tbl.pager.Page)
	}
}

func TestContentTablePageClampsWhenRowsShrink(t *testing.T) {
	tbl := newTestTable(10)
	tbl, _ = tbl.Update(keyMsg("l"))
	tbl, _ = tbl.Update(keyMsg("l"))
	if tbl.pager.Page != 2 {
		t.Fatalf("page = %d, want 2", tbl.pager.Page)
	}

	short := testRecords()[:5]
	tbl.SetRecords(short)
	if tbl.pager.Page != 0 {
		t.Fatalf("page after shrink = %d, want 0", tbl.pager.Page)
	}
	if tbl.pager.TotalPages != 1 {
		t.Fatalf("total pages after shrink = %d, want 1", tbl.pager.TotalPages)
	}
	start, end := tbl.pageBounds(len(tbl.visibleRows()))
	if start != 0 || end != 5 {
		t.Fatalf("bounds after shrink = %d-%d, want 0-5", start, end)
	}
}

func TestContentTableSearchTypingResetsPage(t *testing.T) {
	tbl := newTestTable(10)

	// Park the search query, then page while blurred.
	_ = tbl.FocusSearch()
	for _, k := range []string{"r", "e", "c"} {
		tbl, _ = tbl.Update(keyMsg(k))
	}
	tbl.BlurSearch()
	tbl, _ = tbl.Update(keyMsg("l"))
	tbl, _ = tbl.Update(keyMsg("l"))
	if tbl.pager.Page != 2 {
		t.Fatalf("page = %d, want 2", tbl.pager.Page)
	}

	// Narrowing the query jumps back to the first page.
	_ = tbl.FocusSearch()
	for _, k := range []string{"-", "1"} {
		tbl, _ = tbl.Update(keyMsg(k))
	}
	if tbl.SearchQuery() != "rec-1" {
		t.Fatalf("query = %q, want %q", tbl.SearchQuery(), "rec-1")
	}
	if tbl.pager.Page != 0 {
		t.Fatalf("page after narrowing = %d, want 0", tbl.pager.Page)
	}
	if got := len(tbl.visibleRows()); got != 10 {
		t.Fatalf("visible rows = %d, want 10", got)
	}
}

func TestContentTableSetGraphResetsPage(t *testing.T) {
	tbl := newTestTable(10)
	tbl, _ = tbl.Update(keyMsg("l"))
	if tbl.pager.Page != 1 {
		t.Fatalf("page = %d, want 1", tbl.pager.Page)
	}

	// Re-setting the same graph is a no-op.
	tbl.SetGraph("invoices")
	if tbl.pager.Page != 1 {
		t.Fatalf("page after same graph = %d, want 1", tbl.pager.Page)
	}

	tbl.SetGraph("wiki")
	if tbl.pager.Page != 0 {
		t.Fatalf("page after graph switch = %d, want 0", tbl.pager.Page)
	}
}

func TestContentTableCyclePageSize(t *testing.T) {
	tbl := newTestTable(10)
	tbl, _ = tbl.Update(keyMsg("l"))

	sizes := []int{20, 50, 5, 10}
	for _, want := range sizes {
		if got := tbl.CyclePageSize(); got != want {
			t.Fatalf("cycled size = %d, want %d", got, want)
		}
	}
	if tbl.pager.Page != 0 {
		t.Fatalf("page after size change = %d, want 0", tbl.pager.Page)
	}

	// A size outside the presets restarts the cycle.
	odd := NewContentTable(content.RowFormatter{}, 7)
	if got := odd.CyclePageSize(); got != 5 {
		t.Fatalf("cycled size from 7 = %d, want 5", got)
	}
}

func TestContentTableViewShowsRowsAndIndicator(t *testing.T) {
	tbl := newTestTable(10)
	view := tbl.View(100)

	if !strings.Contains(view, "mode: ingested") {
		t.Fatalf("expected mode line in view:\n%s", view)
	}
	for _, col := range []string{"ID", "Children", "Labels", "Created At"} {
		if !strings.Contains(view, col) {
			t.Fatalf("expected %q header in view:\n%s", col, view)
		}
	}
	if !strings.Contains(view, "rec-00") || !strings.Contains(view, "rec-09") {
		t.Fatalf("expected first page rows in view:\n%s", view)
	}
	if strings.Contains(view, "rec-10") {
		t.Fatalf("row from the second page leaked into view:\n%s", view)
	}
	if !strings.Contains(view, "{}") {
		t.Fatalf("expected empty labels placeholder in view:\n%s", view)
	}
	if !strings.Contains(view, "2023-11-14 22:13") {
		t.Fatalf("expected formatted created-at in view:\n%s", view)
	}
	if !strings.Contains(view, "showing 1-10 of 25") {
		t.Fatalf("expected scroll indicator in view:\n%s", view)
	}
}

func TestContentTableViewEmptyStates(t *testing.T) {
	tbl := newTestTable(10)

	tbl.SetGraph("empty")
	view := tbl.View(100)
	if !strings.Contains(view, `no content in graph "empty"`) {
		t.Fatalf("expected empty graph notice in view:\n%s", view)
	}

	tbl.SetGraph("invoices")
	_ = tbl.FocusSearch()
	for _, k := range []string{"z", "z", "z"} {
		tbl, _ = tbl.Update(keyMsg(k))
	}
	view = tbl.View(100)
	if !strings.Contains(view, `no ids match "zzz"`) {
		t.Fatalf("expected empty search notice in view:\n%s", view)
	}
}

func TestContentTableModeLineShowsSearchInput(t *testing.T) {
	tbl := newTestTable(10)
	_ = tbl.FocusSearch()
	for _, k := range []string{"r", "e", "c"} {
		tbl, _ = tbl.Update(keyMsg(k))
	}

	view := tbl.View(100)
	if !strings.Contains(view, "mode: search") {
		t.Fatalf("expected search mode line in view:\n%s", view)
	}
	if !strings.Contains(view, "rec") {
		t.Fatalf("expected query text in view:\n%s", view)
	}
}
