// Package table renders pipe-delimited fixed-width text tables in the
// report dialect the harness emits: a separator row first, then the
// header, then data rows.
package table

import "strings"

// Align controls one column's justification and its separator markers.
type Align int

const (
	None Align = iota
	Left
	Right
	Center
)

func (a Align) markers() (string, string) {
	switch a {
	case Left:
		return ":", " "
	case Right:
		return " ", ":"
	case Center:
		return ":", ":"
	}
	return " ", " "
}

func (a Align) pad(cell string, width int) string {
	gap := width - len(cell)
	if gap <= 0 {
		return cell
	}
	switch a {
	case Right:
		return strings.Repeat(" ", gap) + cell
	case Center:
		left := gap / 2
		return strings.Repeat(" ", left) + cell + strings.Repeat(" ", gap-left)
	}
	return cell + strings.Repeat(" ", gap)
}

const tab = "  "

// Render lays out rows as a table, the first row being the header. The
// separator row is deliberately emitted before the header; the report
// consumer depends on that order. Alignments longer than the column
// count are truncated, shorter ones padded with None. A ragged row
// degrades to a single diagnostic line instead of failing the run.
func Render(rows [][]string, aligns []Align, indent int) []string {
	if len(rows) == 0 {
		return nil
	}

	cols := len(rows[0])
	if len(aligns) > cols {
		aligns = aligns[:cols]
	}
	for len(aligns) < cols {
		aligns = append(aligns, None)
	}

	widths := make([]int, cols)
	for _, row := range rows {
		if len(row) != cols {
			return []string{"Error: row size must be uniform"}
		}
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	prefix := strings.Repeat(tab, indent)
	out := make([]string, 0, len(rows)+1)

	divs := make([]string, cols)
	for i, w := range widths {
		l, r := aligns[i].markers()
		divs[i] = l + strings.Repeat("-", w) + r
	}
	out = append(out, prefix+"|"+strings.Join(divs, "|")+"|")

	cells := make([]string, cols)
	for _, row := range rows {
		for i, cell := range row {
			cells[i] = " " + aligns[i].pad(cell, widths[i]) + " "
		}
		out = append(out, prefix+"|"+strings.Join(cells, "|")+"|")
	}

	out[0], out[1] = out[1], out[0]
	return out
}
