package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// pickerItem is one selectable row in a picker modal.
type pickerItem struct {
	ID    int
	Label string
	Meta  string
}

// pickerState is a single-select fuzzy-filtered list. The query narrows the
// items; enter picks the row under the cursor.
type pickerState struct {
	items    []pickerItem
	filtered []pickerItem
	query    string
	cursor   int
	title    string
}

type pickerAction int

const (
	pickerActionNone pickerAction = iota
	pickerActionMoved
	pickerActionSelected
	pickerActionCancelled
)

type pickerResult struct {
	Action    pickerAction
	ItemID    int
	ItemLabel string
}

type scoredPickerItem struct {
	item  pickerItem
	score int
}

func newPicker(title string, items []pickerItem) *pickerState {
	p := &pickerState{title: title}
	p.SetItems(items)
	return p
}

func (p *pickerState) SetItems(items []pickerItem) {
	if p == nil {
		return
	}
	p.items = append([]pickerItem(nil), items...)
	p.rebuildFiltered()
}

func (p *pickerState) SetQuery(q string) {
	if p == nil {
		return
	}
	p.query = q
	p.rebuildFiltered()
}

func (p *pickerState) CursorUp() {
	if p == nil {
		return
	}
	if p.cursor > 0 {
		p.cursor--
	}
}

func (p *pickerState) CursorDown() {
	if p == nil {
		return
	}
	if p.cursor < len(p.filtered)-1 {
		p.cursor++
	}
}

func (p *pickerState) Current() (pickerItem, bool) {
	if p == nil || len(p.filtered) == 0 {
		return pickerItem{}, false
	}
	idx := p.cursor
	if idx < 0 {
		idx = 0
	}
	if idx >= len(p.filtered) {
		idx = len(p.filtered) - 1
	}
	return p.filtered[idx], true
}

func (p *pickerState) HandleKey(keyName string) pickerResult {
	if p == nil {
		return pickerResult{Action: pickerActionNone}
	}

	switch keyName {
	case "k", "up":
		before := p.cursor
		p.CursorUp()
		if p.cursor != before {
			return pickerResult{Action: pickerActionMoved}
		}
		return pickerResult{Action: pickerActionNone}
	case "j", "down":
		before := p.cursor
		p.CursorDown()
		if p.cursor != before {
			return pickerResult{Action: pickerActionMoved}
		}
		return pickerResult{Action: pickerActionNone}
	case "enter":
		if item, ok := p.Current(); ok {
			return pickerResult{
				Action:    pickerActionSelected,
				ItemID:    item.ID,
				ItemLabel: item.Label,
			}
		}
		return pickerResult{Action: pickerActionNone}
	case "esc":
		return pickerResult{Action: pickerActionCancelled}
	case "backspace":
		if len(p.query) > 0 {
			p.SetQuery(p.query[:len(p.query)-1])
		}
		return pickerResult{Action: pickerActionNone}
	default:
		if isPrintableASCIIKey(keyName) {
			p.SetQuery(p.query + keyName)
		}
		return pickerResult{Action: pickerActionNone}
	}
}

func renderPicker(p *pickerState, width int) string {
	if p == nil {
		return ""
	}
	var lines []string

	title := titleStyle.Render(p.title)
	if width > 0 {
		title = padStyledLine(title, width)
	}
	lines = append(lines, title)

	query := strings.TrimSpace(p.query)
	searchValue := lipgloss.NewStyle().Foreground(colorOverlay1).Render("(type to filter)")
	if query != "" {
		searchValue = searchInputStyle.Render(query)
	}
	searchLine := infoLabelStyle.Render("Filter: ") + searchValue
	if width > 0 {
		searchLine = padStyledLine(searchLine, width)
	}
	lines = append(lines, searchLine, "")

	if len(p.filtered) == 0 {
		empty := lipgloss.NewStyle().Foreground(colorOverlay1).Render("  (no matches)")
		lines = append(lines, padStyledLine(empty, width))
	}
	for i := range p.filtered {
		it := p.filtered[i]
		label := lipgloss.NewStyle().Foreground(colorText).Render(it.Label)
		meta := ""
		if strings.TrimSpace(it.Meta) != "" {
			meta = lipgloss.NewStyle().Foreground(colorSubtext0).Render(" - " + strings.TrimSpace(it.Meta))
		}
		row := "  " + label + meta
		row = stylePickerRow(row, p.cursor == i, width)
		lines = append(lines, row)
	}

	hint := helpKeyStyle.Render("j/k") + helpDescStyle.Render(" navigate  ") +
		helpKeyStyle.Render("enter") + helpDescStyle.Render(" select  ") +
		helpKeyStyle.Render("esc") + helpDescStyle.Render(" cancel")
	lines = append(lines, "", hint)

	return strings.Join(lines, "\n")
}

func stylePickerRow(content string, isCursor bool, width int) string {
	style := lipgloss.NewStyle()
	if isCursor {
		style = style.Background(colorSurface1).Bold(true)
	}
	if width > 0 {
		return style.Render(padStyledLine(content, width))
	}
	return style.Render(content)
}

func padStyledLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func (p *pickerState) rebuildFiltered() {
	if p == nil {
		return
	}
	q := strings.TrimSpace(p.query)
	scored := make([]scoredPickerItem, 0, len(p.items))
	for _, it := range p.items {
		matched, score := fuzzyMatchScore(it.Label, q)
		if !matched {
			continue
		}
		scored = append(scored, scoredPickerItem{item: it, score: score})
	}
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		li := strings.ToLower(scored[i].item.Label)
		lj := strings.ToLower(scored[j].item.Label)
		if li != lj {
			return li < lj
		}
		return scored[i].item.ID < scored[j].item.ID
	})

	out := make([]pickerItem, 0, len(scored))
	for i := range scored {
		out = append(out, scored[i].item)
	}
	p.filtered = out

	if p.cursor >= len(p.filtered) {
		p.cursor = len(p.filtered) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func fuzzyMatchScore(label, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	labelLower := strings.ToLower(label)
	queryLower := strings.ToLower(query)

	matchIdx := make([]int, 0, len(queryLower))
	searchFrom := 0
	for i := 0; i < len(queryLower); i++ {
		ch := queryLower[i]
		found := false
		for j := searchFrom; j < len(labelLower); j++ {
			if labelLower[j] == ch {
				matchIdx = append(matchIdx, j)
				searchFrom = j + 1
				found = true
				break
			}
		}
		if !found {
			return false, 0
		}
	}

	score := len(queryLower)
	if len(matchIdx) > 0 && matchIdx[0] == 0 {
		score += 10
	}
	for i := 1; i < len(matchIdx); i++ {
		if matchIdx[i] == matchIdx[i-1]+1 {
			score += 3
		}
	}
	if strings.EqualFold(strings.TrimSpace(label), strings.TrimSpace(query)) {
		score += 20
	}
	return true, score
}

func isPrintableASCIIKey(keyName string) bool {
	return len(keyName) == 1 && keyName[0] >= 32 && keyName[0] < 127
}
