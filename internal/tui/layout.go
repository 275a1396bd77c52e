package tui

// Layout constants
const (
	MinContentWidth = 40
	ProgressWidth   = 20
	listRowsReserve = 4 // Page header and spacing above a list
)

// contentWidth is the usable width inside page padding
func (m Model) contentWidth() int {
	return max(m.Width-4, MinContentWidth)
}

// listHeight is the number of list rows that fit on a page
func (m Model) listHeight() int {
	return max(m.Height-ChromeHeight-listRowsReserve-2, 1)
}

// visibleRange returns the [start, end) window of n rows that keeps cursor
// on screen, scrolling so the cursor stays roughly centered
func visibleRange(cursor, n, height int) (int, int) {
	if n <= height {
		return 0, n
	}
	start := max(0, cursor-height/2)
	if start+height > n {
		start = n - height
	}
	return start, start + height
}
