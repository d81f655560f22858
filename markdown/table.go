package markdown

import "strings"

// FormatTable renders a Markdown table. The column count follows the
// header row. Column widths are sized to the widest data cell in each
// column; header cells are not measured, so a wide header overflows its
// column rather than widening it. Rows shorter than the header render
// their missing trailing cells as blank, and rows longer than the header
// have their extra cells dropped.
func FormatTable(headers []string, rows [][]string) string {
	if len(headers) == 0 || len(rows) == 0 {
		return ""
	}

	widths := make([]int, len(headers))
	for col := range widths {
		for _, row := range rows {
			if col < len(row) && len(row[col]) > widths[col] {
				widths[col] = len(row[col])
			}
		}
	}

	lines := make([]string, 0, len(rows)+2)

	headerCells := make([]string, len(headers))
	for i, h := range headers {
		headerCells[i] = ljust(h, widths[i])
	}
	lines = append(lines, "| "+strings.Join(headerCells, "|")+" |")

	dashes := make([]string, len(widths))
	for i, w := range widths {
		dashes[i] = strings.Repeat("-", w)
	}
	lines = append(lines, "| "+strings.Join(dashes, "|")+" |")

	for _, row := range rows {
		cells := make([]string, len(widths))
		for col := range widths {
			if col < len(row) {
				cells[col] = ljust(row[col], widths[col])
			}
		}
		lines = append(lines, "| "+strings.Join(cells, "|")+" |")
	}

	return strings.Join(lines, "\n") + "\n"
}

// ljust left-justifies s in a field of width w. Strings already at or
// past the width are returned unchanged.
func ljust(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}
