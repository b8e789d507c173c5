package table

import "strings"

// FormatLines reformats every detected table block in lines, leaving all
// other lines untouched and in their original order. Blocks that fail to
// parse into at least one column are emitted as their original raw lines, so
// one malformed table never affects the rest of the input.
func FormatLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, seg := range SplitSegments(lines) {
		if seg.Kind != KindBlock {
			out = append(out, seg.Lines...)
			continue
		}
		t, ok := Parse(seg.Lines)
		if !ok {
			out = append(out, seg.Lines...)
			continue
		}
		out = append(out, t.Render()...)
	}
	return out
}

// FormatDocument reformats all tables in src. The presence or absence of a
// trailing newline is preserved, as is every passthrough line.
func FormatDocument(src string) string {
	if src == "" {
		return ""
	}
	trailing := strings.HasSuffix(src, "\n")
	trimmed := strings.TrimSuffix(src, "\n")
	out := strings.Join(FormatLines(strings.Split(trimmed, "\n")), "\n")
	if trailing {
		out += "\n"
	}
	return out
}
