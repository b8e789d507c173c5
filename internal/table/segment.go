// Package table detects Markdown tables in a stream of text lines and
// reformats them so columns are padded to uniform width and separator rows
// use consistent dash counts. Lines outside tables pass through untouched.
package table

import "strings"

// SegmentKind distinguishes passthrough lines from detected table blocks.
type SegmentKind int

const (
	// KindPassthrough is a single line outside any table, emitted verbatim.
	KindPassthrough SegmentKind = iota
	// KindBlock is a contiguous run of raw lines forming one table.
	KindBlock
)

// Segment is one piece of segmented input: a single passthrough line or the
// raw lines of one table block (header, separator, data rows).
type Segment struct {
	Kind  SegmentKind
	Lines []string
}

// IsSeparatorLine reports whether line is a candidate table separator. After
// trimming surrounding whitespace and outer pipes, every pipe-delimited token
// must consist only of '-' and ':' and contain at least one '-'.
func IsSeparatorLine(line string) bool {
	trimmed := strings.Trim(strings.TrimSpace(line), "|")
	if !strings.Contains(trimmed, "-") {
		return false
	}
	for _, token := range strings.Split(trimmed, "|") {
		token = strings.TrimSpace(token)
		if token == "" || !strings.Contains(token, "-") {
			return false
		}
		if strings.IndexFunc(token, func(r rune) bool { return r != '-' && r != ':' }) != -1 {
			return false
		}
	}
	return true
}

// SplitSegments scans lines in order and groups table blocks, leaving every
// other line as its own passthrough segment. A table starts at a header-like
// line (non-blank, not itself a separator) immediately followed by a
// candidate separator, and runs until a blank line, end of input, or a line
// that begins the next table.
func SplitSegments(lines []string) []Segment {
	var segs []Segment
	i := 0
	for i < len(lines) {
		if !startsTable(lines, i) {
			segs = append(segs, Segment{Kind: KindPassthrough, Lines: lines[i : i+1]})
			i++
			continue
		}
		j := i + 2
		for j < len(lines) && !isBlank(lines[j]) && !startsTable(lines, j) {
			j++
		}
		segs = append(segs, Segment{Kind: KindBlock, Lines: lines[i:j]})
		i = j
	}
	return segs
}

func startsTable(lines []string, i int) bool {
	if i+1 >= len(lines) {
		return false
	}
	if isBlank(lines[i]) || IsSeparatorLine(lines[i]) {
		return false
	}
	return IsSeparatorLine(lines[i+1])
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
