package ui

import "github.com/mattn/go-runewidth"

// truncateString cuts s to at most maxLen terminal cells, ending with "…"
// when anything was dropped.
func truncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxLen, "…")
}

// fitCell truncates s and pads it with spaces to exactly width cells, so
// emoji icons and wide names keep grid columns aligned.
func fitCell(s string, width int) string {
	return runewidth.FillRight(truncateString(s, width), width)
}
