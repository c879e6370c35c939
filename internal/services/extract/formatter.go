package extract

import (
	"strings"

	"github.com/ternarybob/doceo/internal/models"
)

// FormatTable renders a validated grid as a pipe-delimited markdown table.
// Every cell is cleaned through the normalizer (embedded line breaks become
// spaces first), rows left fully empty by cleaning are dropped, and the first
// surviving row becomes the header followed by a separator row of the same
// column count. Returns the empty string when no content survives cleaning.
func FormatTable(grid models.RawTable) string {
	rows := make([][]string, 0, len(grid))
	for _, row := range grid {
		cleaned := make([]string, len(row))
		empty := true
		for i, cell := range row {
			cleaned[i] = cleanCell(cell)
			if cleaned[i] != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		rows = append(rows, cleaned)
	}

	if len(rows) == 0 {
		return ""
	}

	var b strings.Builder
	writeRow(&b, rows[0])
	writeSeparator(&b, len(rows[0]))
	for _, row := range rows[1:] {
		writeRow(&b, row)
	}

	return strings.TrimRight(b.String(), "\n")
}

// cleanCell normalizes one cell. Cells may contain embedded line breaks, so
// newlines become spaces before the normalization passes run.
func cleanCell(cell string) string {
	return Clean(strings.ReplaceAll(cell, "\n", " "))
}

func writeRow(b *strings.Builder, row []string) {
	b.WriteString("|")
	for _, cell := range row {
		b.WriteString(" ")
		b.WriteString(cell)
		b.WriteString(" |")
	}
	b.WriteString("\n")
}

func writeSeparator(b *strings.Builder, columns int) {
	b.WriteString("|")
	for i := 0; i < columns; i++ {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")
}
