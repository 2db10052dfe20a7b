package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlayCenter composites popup centered over base, treating both as
// line-based grids of width x height cells. Widths are measured after
// stripping ANSI sequences so styled content lines up.
func overlayCenter(base, popup string, width, height int) string {
	baseLines := splitLines(base)
	popupLines := splitLines(popup)

	popupWidth := 0
	for _, line := range popupLines {
		if w := ansi.StringWidth(line); w > popupWidth {
			popupWidth = w
		}
	}
	x := (width - popupWidth) / 2
	if x < 0 {
		x = 0
	}
	y := (height - len(popupLines)) / 2
	if y < 0 {
		y = 0
	}

	for i, line := range popupLines {
		row := y + i
		if row >= len(baseLines) || row >= height {
			break
		}
		baseLines[row] = spliceLine(baseLines[row], padRight(line, popupWidth), x, width)
	}
	return strings.Join(baseLines, "\n")
}

// spliceLine overwrites the cells of line starting at column x with popup,
// keeping whatever of the line shows to either side.
func spliceLine(line, popup string, x, width int) string {
	target := padRight(line, width)

	left := ansi.Truncate(target, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}

	end := x + ansi.StringWidth(popup)
	right := ""
	if width > 0 {
		right = ansi.TruncateLeft(target, end, "")
		if gap := width - end - ansi.StringWidth(right); gap > 0 {
			right = strings.Repeat(" ", gap) + right
		}
	}
	return left + popup + right
}

// ---------------------------------------------------------------------------
// String utilities
// ---------------------------------------------------------------------------

// splitLines splits a string on newlines, returning at least one element.
func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

// padRight pads s with spaces so its visual width equals width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// truncate shortens s to the given visual width, appending an ellipsis when
// something was cut.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}
