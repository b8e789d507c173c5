package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// separatorRow is the index of the alignment-marker row in a parsed table.
const separatorRow = 1

// Table holds the parsed cells of one table block. Row 0 is the header,
// row 1 the separator (cells reduced to alignment markers), the rest data
// rows. After Parse succeeds every row has the same cell count and widths
// carries one display width per column.
type Table struct {
	cells  [][]string
	widths []int
}

// Parse splits the raw lines of one block into a Table and normalizes it:
// rows are padded to a common cell count, then all-empty leading and trailing
// columns are stripped, then per-column display widths are computed. It
// reports false when normalization yields zero columns; such a block should
// be emitted as its original raw lines.
func Parse(raw []string) (*Table, bool) {
	t := &Table{}
	for i, line := range raw {
		cells := splitRow(line)
		if i == separatorRow {
			for j := range cells {
				cells[j] = alignMarker(cells[j])
			}
		}
		t.cells = append(t.cells, cells)
	}
	t.addMissingCells()
	t.stripEmptyEdgeColumns()
	t.computeWidths()
	if len(t.widths) == 0 {
		return nil, false
	}
	return t, true
}

// splitRow splits a raw line on unescaped pipes and trims each cell. Empty
// cells produced by a leading or trailing pipe are discarded, so bare rows
// without outer pipes parse identically to fully piped ones.
func splitRow(line string) []string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil
	}

	var parts []string
	var cur []rune
	escaped := false
	for _, r := range trimmed {
		switch {
		case escaped:
			cur = append(cur, r)
			escaped = false
		case r == '\\':
			cur = append(cur, r)
			escaped = true
		case r == '|':
			parts = append(parts, string(cur))
			cur = cur[:0]
		default:
			cur = append(cur, r)
		}
	}
	parts = append(parts, string(cur))

	if strings.HasPrefix(trimmed, "|") {
		parts = parts[1:]
	}
	if len(parts) > 0 && parts[len(parts)-1] == "" && strings.HasSuffix(trimmed, "|") {
		parts = parts[:len(parts)-1]
	}
	if len(parts) == 0 {
		return nil
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// alignMarker reduces a separator cell to its alignment marker, keeping any
// colon at the same edge it held in the source cell.
func alignMarker(cell string) string {
	if cell == "" {
		return ""
	}
	left := strings.HasPrefix(cell, ":")
	right := len(cell) > 1 && strings.HasSuffix(cell, ":")
	switch {
	case left && right:
		return ":-:"
	case left:
		return ":-"
	case right:
		return "-:"
	default:
		return "-"
	}
}

// addMissingCells right-pads every row with empty cells up to the widest
// row's cell count. Rows are never truncated.
func (t *Table) addMissingCells() {
	n := 0
	for _, row := range t.cells {
		if len(row) > n {
			n = len(row)
		}
	}
	for i, row := range t.cells {
		for len(row) < n {
			row = append(row, "")
		}
		t.cells[i] = row
	}
}

// stripEmptyEdgeColumns removes leading and trailing columns whose header and
// data cells are all empty. The trim is directional: left to right until the
// first non-empty column, then right to left, so interior empty columns are
// preserved. The separator row is excluded from the emptiness test.
func (t *Table) stripEmptyEdgeColumns() {
	if len(t.cells) == 0 {
		return
	}
	n := len(t.cells[0])

	lo, hi := 0, n
	for lo < hi && t.columnEmpty(lo) {
		lo++
	}
	for hi > lo && t.columnEmpty(hi-1) {
		hi--
	}
	if lo == 0 && hi == n {
		return
	}
	for i, row := range t.cells {
		t.cells[i] = row[lo:hi]
	}
}

func (t *Table) columnEmpty(col int) bool {
	for i, row := range t.cells {
		if i == separatorRow {
			continue
		}
		if row[col] != "" {
			return false
		}
	}
	return true
}

// computeWidths records the display width of each column: the maximum width
// over the header and data cells at that index, with a floor of one so
// separator cells always keep at least one dash.
func (t *Table) computeWidths() {
	if len(t.cells) == 0 {
		t.widths = nil
		return
	}
	t.widths = make([]int, len(t.cells[0]))
	for i := range t.widths {
		t.widths[i] = 1
	}
	for i, row := range t.cells {
		if i == separatorRow {
			continue
		}
		for j, cell := range row {
			if w := runewidth.StringWidth(cell); w > t.widths[j] {
				t.widths[j] = w
			}
		}
	}
}

// Render emits the formatted table lines: header and data rows as
// pipe-delimited, space-padded cells, the separator as dash runs spanning
// each column with preserved alignment colons.
func (t *Table) Render() []string {
	lines := make([]string, 0, len(t.cells))
	for i, row := range t.cells {
		if i == separatorRow {
			lines = append(lines, t.renderSeparator(row))
			continue
		}
		lines = append(lines, t.renderRow(row))
	}
	return lines
}

func (t *Table) renderRow(row []string) string {
	var b strings.Builder
	b.WriteString("|")
	for j, cell := range row {
		b.WriteString(" ")
		b.WriteString(cell)
		b.WriteString(strings.Repeat(" ", t.widths[j]-runewidth.StringWidth(cell)))
		b.WriteString(" |")
	}
	return b.String()
}

func (t *Table) renderSeparator(row []string) string {
	var b strings.Builder
	b.WriteString("|")
	for j, marker := range row {
		span := t.widths[j] + 2
		left := strings.HasPrefix(marker, ":")
		right := len(marker) > 1 && strings.HasSuffix(marker, ":")
		dashes := span
		if left {
			dashes--
		}
		if right {
			dashes--
		}
		if left {
			b.WriteString(":")
		}
		b.WriteString(strings.Repeat("-", dashes))
		if right {
			b.WriteString(":")
		}
		b.WriteString("|")
	}
	return b.String()
}
