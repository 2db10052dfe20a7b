package content

import "strings"

// Mode selects which row filter the table applies.
type Mode string

const (
	// ModeIngested shows every projected row.
	ModeIngested Mode = "ingested"
	// ModeSearch narrows rows to ids containing the search text.
	ModeSearch Mode = "search"
)

// ParseMode maps a raw string onto a mode, reporting whether it named one.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeIngested:
		return ModeIngested, true
	case ModeSearch:
		return ModeSearch, true
	}
	return "", false
}

// VisibleRows applies mode to rows. Ingested mode is the identity and
// ignores the search text entirely. Search mode keeps rows whose id contains
// search as a case-sensitive substring; the empty search matches every row.
// Unrecognized modes behave as ingested.
func VisibleRows(rows []DisplayRow, mode Mode, search string) []DisplayRow {
	if mode != ModeSearch {
		return rows
	}
	out := make([]DisplayRow, 0, len(rows))
	for _, r := range rows {
		if !strings.Contains(r.ID, search) {
			continue
		}
		out = append(out, r)
	}
	return out
}
