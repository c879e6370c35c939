package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/ternarybob/doceo/internal/models"
)

// TableStats is an immutable snapshot of fill metrics over a candidate table
// grid. Derived quantities (density, average cell length, row fill rate) are
// computed on demand from the counts so they can never desynchronize.
type TableStats struct {
	// NonEmptyCells counts cells with non-whitespace content after trimming.
	NonEmptyCells int
	// TotalCells counts every cell in the grid, empty or not.
	TotalCells int
	// TotalTextLength is the summed rune length of trimmed non-empty cells.
	TotalTextLength int
	// NonEmptyRows counts rows containing at least one non-empty cell.
	NonEmptyRows int
	// RowFillCounts holds the filled-cell count of each non-empty row, in
	// row order. len(RowFillCounts) == NonEmptyRows.
	RowFillCounts []int
}

// ComputeStats derives TableStats from a raw grid. Empty grids produce zero
// stats, never an error.
func ComputeStats(grid models.RawTable) TableStats {
	stats := TableStats{}

	for _, row := range grid {
		filled := 0
		for _, cell := range row {
			stats.TotalCells++
			trimmed := strings.TrimSpace(cell)
			if trimmed == "" {
				continue
			}
			stats.NonEmptyCells++
			stats.TotalTextLength += utf8.RuneCountInString(trimmed)
			filled++
		}
		if filled > 0 {
			stats.NonEmptyRows++
			stats.RowFillCounts = append(stats.RowFillCounts, filled)
		}
	}

	return stats
}

// ContentDensity returns the fraction of grid cells holding non-whitespace
// text, or 0 for an empty grid.
func (s TableStats) ContentDensity() float64 {
	if s.TotalCells == 0 {
		return 0
	}
	return float64(s.NonEmptyCells) / float64(s.TotalCells)
}

// AvgCellLength returns the mean rune length of filled cells, or 0 when no
// cell is filled.
func (s TableStats) AvgCellLength() float64 {
	if s.NonEmptyCells == 0 {
		return 0
	}
	return float64(s.TotalTextLength) / float64(s.NonEmptyCells)
}

// AvgRowFillRate returns the mean fraction of columns filled per non-empty
// row, measured against numColumns. Returns 0 when numColumns is zero or no
// row holds content.
func (s TableStats) AvgRowFillRate(numColumns int) float64 {
	if numColumns <= 0 || len(s.RowFillCounts) == 0 {
		return 0
	}
	total := 0
	for _, count := range s.RowFillCounts {
		total += count
	}
	mean := float64(total) / float64(len(s.RowFillCounts))
	return mean / float64(numColumns)
}
