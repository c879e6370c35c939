package extract

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/doceo/internal/models"
)

func TestBuildPageBlock(t *testing.T) {
	// A realistic page: glyph artifacts in the body text, one dense table
	// that should survive, one diagram-shaped sparse grid that should not,
	// and two images.
	sparse := make(models.RawTable, 5)
	for r := range sparse {
		sparse[r] = make([]string, 5)
		sparse[r][r] = "x"
	}

	page := &models.PageContent{
		PageNumber: 3,
		Text:       "Quarterly results (cid:12) improved across all regions.",
		Tables: []models.RawTable{
			{
				{"Region FirstColumn 01", "Revenue Amounts 2024"},
				{"North America region", "Total of 1,200,000 USD"},
				{"Europe Middle East ..", "Total of 0,950,000 USD"},
				{"Asia Pacific regions", "Total of 0,780,000 USD"},
				{"Latin America region", "Total of 0,310,000 USD"},
			},
			sparse,
		},
		ImageCount: 2,
	}

	v := NewValidator(DefaultTableHeuristics())
	block := BuildPageBlock(page, v)

	assert.Contains(t, block, "Quarterly results improved across all regions.")
	assert.NotContains(t, block, "(cid:")

	assert.Contains(t, block, "Table 1:")
	assert.NotContains(t, block, "Table 2:")
	assert.Contains(t, block, "| North America region | Total of 1,200,000 USD |")

	assert.Contains(t, block, "[This page contains 2 image(s)/figure(s)]")

	// Sections are ordered text, tables, annotation.
	sections := strings.Split(block, "\n\n")
	require.Len(t, sections, 3)
	assert.True(t, strings.HasPrefix(sections[1], "Table 1:\n"))
}

func TestBuildPageBlock_EmptyPage(t *testing.T) {
	page := &models.PageContent{
		PageNumber: 7,
		Text:       "  (cid:4)  ",
	}

	v := NewValidator(DefaultTableHeuristics())
	assert.Empty(t, BuildPageBlock(page, v))
}

func TestBuildPageBlock_NilPage(t *testing.T) {
	v := NewValidator(DefaultTableHeuristics())
	assert.Empty(t, BuildPageBlock(nil, v))
}

func TestBuildPageBlock_TextOnly(t *testing.T) {
	page := &models.PageContent{
		PageNumber: 1,
		Text:       "Introduction   to the   report.",
	}

	v := NewValidator(DefaultTableHeuristics())
	assert.Equal(t, "Introduction to the report.", BuildPageBlock(page, v))
}

func TestBuildPageBlock_TableIndexCountsRenderedOnly(t *testing.T) {
	// The index labels count tables that actually render, not candidate
	// position, so a rejected candidate between two accepted ones does not
	// leave a gap.
	dense := func(seed string) models.RawTable {
		grid := make(models.RawTable, 5)
		for r := range grid {
			grid[r] = make([]string, 2)
			for c := range grid[r] {
				grid[r][c] = fmt.Sprintf("%s cell body text %d-%d", seed, r, c)
			}
		}
		return grid
	}
	rejected := models.RawTable{{"only one row here today, kept long"}}

	page := &models.PageContent{
		PageNumber: 4,
		Tables:     []models.RawTable{dense("first"), rejected, dense("second")},
	}

	v := NewValidator(DefaultTableHeuristics())
	block := BuildPageBlock(page, v)

	assert.Contains(t, block, "Table 1:")
	assert.Contains(t, block, "Table 2:")
	assert.NotContains(t, block, "Table 3:")
	assert.Contains(t, block, "first cell body text 0-0")
	assert.Contains(t, block, "second cell body text 0-0")
}
