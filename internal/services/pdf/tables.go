package pdf

import (
	"regexp"
	"strings"

	"github.com/ternarybob/doceo/internal/models"
)

// columnGapPattern splits a line into cells at a tab or a run of two or more
// spaces, which is how columnar data shows up in extracted PDF text.
var columnGapPattern = regexp.MustCompile(`\t|[ ]{2,}`)

// DetectCandidateTables scans extracted page text for runs of consecutive
// lines that split into two or more columns and returns each run as a raw
// grid. Detection is intentionally loose: diagrams, aligned code and multi
// column prose all produce candidates here, and the validator downstream is
// what separates real tables from layout noise. Grids are padded to a
// uniform column count.
func DetectCandidateTables(text string) []models.RawTable {
	var tables []models.RawTable
	var current models.RawTable

	flush := func() {
		if len(current) >= 2 {
			tables = append(tables, padToUniformWidth(current))
		}
		current = nil
	}

	for _, line := range strings.Split(text, "\n") {
		cells := splitColumns(line)
		if len(cells) < 2 {
			flush()
			continue
		}
		current = append(current, cells)
	}
	flush()

	return tables
}

// splitColumns breaks one line into cells at column gaps. Returns nil when
// the line has fewer than two non-empty cells.
func splitColumns(line string) []string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil
	}

	parts := columnGapPattern.Split(trimmed, -1)
	cells := make([]string, 0, len(parts))
	nonEmpty := 0
	for _, part := range parts {
		part = strings.TrimSpace(part)
		cells = append(cells, part)
		if part != "" {
			nonEmpty++
		}
	}

	if nonEmpty < 2 {
		return nil
	}
	return cells
}

func padToUniformWidth(grid models.RawTable) models.RawTable {
	width := 0
	for _, row := range grid {
		if len(row) > width {
			width = len(row)
		}
	}
	for i, row := range grid {
		for len(row) < width {
			row = append(row, "")
		}
		grid[i] = row
	}
	return grid
}
