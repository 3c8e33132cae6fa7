package report

import (
	"io"
	"strings"

	"golang.org/x/text/width"
)

// cellWidth returns the number of terminal columns s occupies;
// East Asian wide and fullwidth runes take two.
func cellWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianFullwidth, width.EastAsianWide:
			n += 2
		default:
			n++
		}
	}
	return n
}

// writeBox draws rows as a bordered table. Rows may have different lengths;
// missing cells render empty.
func writeBox(b *strings.Builder, rows [][]string) {
	if len(rows) == 0 {
		return
	}

	columns := 0
	for _, row := range rows {
		columns = max(columns, len(row))
	}
	widths := make([]int, columns)
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], cellWidth(cell))
		}
	}

	border := func() {
		b.WriteByte('+')
		for _, w := range widths {
			b.WriteString(strings.Repeat("-", w+2))
			b.WriteByte('+')
		}
		b.WriteByte('\n')
	}

	border()
	for _, row := range rows {
		b.WriteByte('|')
		for i, w := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteByte(' ')
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", w-cellWidth(cell)+1))
			b.WriteByte('|')
		}
		b.WriteByte('\n')
		border()
	}
}

func renderTable(w io.Writer, r Report) error {
	var b strings.Builder

	writeBox(&b, summaryRows(r))
	if showEntries(r) {
		writeBox(&b, entryRows(r.Entries))
	}
	if r.Timed {
		b.WriteString(durationLine(r))
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}
