package extract

import (
	"strings"

	"github.com/ternarybob/doceo/internal/common"
	"github.com/ternarybob/doceo/internal/models"
)

// TableHeuristics holds the acceptance thresholds applied to candidate
// tables. Thresholds are fixed per run, passed in explicitly so tests can
// probe boundary values precisely.
type TableHeuristics struct {
	MinRows           int
	MinNonEmptyRows   int
	MinContentDensity float64
	MinAvgCellLength  float64
	MinRowFillRate    float64
}

// DefaultTableHeuristics returns the production thresholds.
func DefaultTableHeuristics() TableHeuristics {
	return TableHeuristics{
		MinRows:           2,
		MinNonEmptyRows:   4,
		MinContentDensity: 0.4,
		MinAvgCellLength:  15,
		MinRowFillRate:    0.4,
	}
}

// HeuristicsFromConfig builds TableHeuristics from the application config,
// falling back to defaults for unset values.
func HeuristicsFromConfig(cfg common.TableHeuristicsConfig) TableHeuristics {
	h := DefaultTableHeuristics()
	if cfg.MinRows > 0 {
		h.MinRows = cfg.MinRows
	}
	if cfg.MinNonEmptyRows > 0 {
		h.MinNonEmptyRows = cfg.MinNonEmptyRows
	}
	if cfg.MinContentDensity > 0 {
		h.MinContentDensity = cfg.MinContentDensity
	}
	if cfg.MinAvgCellLength > 0 {
		h.MinAvgCellLength = cfg.MinAvgCellLength
	}
	if cfg.MinRowFillRate > 0 {
		h.MinRowFillRate = cfg.MinRowFillRate
	}
	return h
}

// tableCheck is one named rejection predicate. Checks run in declaration
// order and short-circuit on the first rejection.
type tableCheck struct {
	name   string
	reject func(grid models.RawTable, stats TableStats, h TableHeuristics) bool
}

// tableChecks is the ordered rejection sequence. PDF table detectors
// over-trigger on any grid-aligned visual structure (diagrams, multi-column
// layouts); each check targets one failure shape and the order moves from
// cheap structural tests to statistical ones.
var tableChecks = []tableCheck{
	{
		// No header + data.
		name: "too_few_rows",
		reject: func(grid models.RawTable, _ TableStats, h TableHeuristics) bool {
			return len(grid) < h.MinRows
		},
	},
	{
		// Single-column grids are page furniture, not tables.
		name: "single_column",
		reject: func(grid models.RawTable, _ TableStats, _ TableHeuristics) bool {
			return len(grid[0]) == 1
		},
	},
	{
		// First row collapsing to one repeated value is a degenerate
		// repeated-label artifact.
		name: "repeated_header_value",
		reject: func(grid models.RawTable, _ TableStats, _ TableHeuristics) bool {
			return firstRowIsRepeatedValue(grid[0])
		},
	},
	{
		name: "low_content_density",
		reject: func(_ models.RawTable, stats TableStats, h TableHeuristics) bool {
			return stats.ContentDensity() < h.MinContentDensity
		},
	},
	{
		name: "too_few_filled_rows",
		reject: func(_ models.RawTable, stats TableStats, h TableHeuristics) bool {
			return stats.NonEmptyRows < h.MinNonEmptyRows
		},
	},
	{
		// Short fragmented cells indicate a diagram laid out as a grid.
		name: "short_cells",
		reject: func(_ models.RawTable, stats TableStats, h TableHeuristics) bool {
			return stats.AvgCellLength() < h.MinAvgCellLength
		},
	},
	{
		name: "sparse_rows",
		reject: func(grid models.RawTable, stats TableStats, h TableHeuristics) bool {
			return stats.AvgRowFillRate(len(grid[0])) < h.MinRowFillRate
		},
	},
}

// Validator decides whether a candidate table is a real semantic table or
// incidental whitespace noise.
type Validator struct {
	heuristics TableHeuristics
}

// NewValidator creates a validator with the given thresholds.
func NewValidator(heuristics TableHeuristics) *Validator {
	return &Validator{heuristics: heuristics}
}

// IsValid reports whether the grid passes every acceptance check.
func (v *Validator) IsValid(grid models.RawTable) bool {
	_, ok := v.Check(grid)
	return ok
}

// Check runs the ordered rejection sequence and returns the name of the
// first failed check, or ("", true) when the grid is accepted. The name is
// used for debug logging only.
func (v *Validator) Check(grid models.RawTable) (string, bool) {
	if len(grid) == 0 {
		return "too_few_rows", false
	}
	stats := ComputeStats(grid)
	for _, check := range tableChecks {
		if check.reject(grid, stats, v.heuristics) {
			return check.name, false
		}
	}
	return "", true
}

// firstRowIsRepeatedValue reports whether the row holds two or more non-empty
// cells that all carry the same value.
func firstRowIsRepeatedValue(row []string) bool {
	var first string
	count := 0
	for _, cell := range row {
		trimmed := strings.TrimSpace(cell)
		if trimmed == "" {
			continue
		}
		if count == 0 {
			first = trimmed
		} else if trimmed != first {
			return false
		}
		count++
	}
	return count >= 2
}
