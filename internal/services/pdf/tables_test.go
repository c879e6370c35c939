package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectCandidateTables(t *testing.T) {
	text := "Report heading\n" +
		"Region        Revenue       Units\n" +
		"North         1,200,000     340\n" +
		"South         950,000       295\n" +
		"\n" +
		"Closing paragraph of prose."

	tables := DetectCandidateTables(text)
	require.Len(t, tables, 1)

	grid := tables[0]
	require.Len(t, grid, 3)
	assert.Equal(t, []string{"Region", "Revenue", "Units"}, grid[0])
	assert.Equal(t, []string{"North", "1,200,000", "340"}, grid[1])
	assert.Equal(t, []string{"South", "950,000", "295"}, grid[2])
}

func TestDetectCandidateTables_TabSeparated(t *testing.T) {
	text := "Name\tRole\nAlice\tAdmin\nBob\tUser"

	tables := DetectCandidateTables(text)
	require.Len(t, tables, 1)
	assert.Equal(t, []string{"Name", "Role"}, tables[0][0])
	assert.Len(t, tables[0], 3)
}

func TestDetectCandidateTables_SingleRowRunIgnored(t *testing.T) {
	// One columnar line between prose lines is not a table.
	text := "Some prose here.\nleft side    right side\nMore prose follows."

	assert.Empty(t, DetectCandidateTables(text))
}

func TestDetectCandidateTables_BlankLineSplitsRuns(t *testing.T) {
	text := "a1    b1\na2    b2\n\nc1    d1\nc2    d2"

	tables := DetectCandidateTables(text)
	require.Len(t, tables, 2)
	assert.Equal(t, "a1", tables[0][0][0])
	assert.Equal(t, "c1", tables[1][0][0])
}

func TestDetectCandidateTables_RaggedRowsPadded(t *testing.T) {
	text := "h1    h2    h3\nv1    v2\nw1    w2    w3"

	tables := DetectCandidateTables(text)
	require.Len(t, tables, 1)

	grid := tables[0]
	for _, row := range grid {
		assert.Len(t, row, 3)
	}
	assert.Equal(t, []string{"v1", "v2", ""}, grid[1])
}

func TestDetectCandidateTables_NoColumns(t *testing.T) {
	assert.Empty(t, DetectCandidateTables("just a plain paragraph of text\nwith single spaces only"))
	assert.Empty(t, DetectCandidateTables(""))
}

func TestSplitColumns(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"two columns", "alpha    beta", []string{"alpha", "beta"}},
		{"tab gap", "alpha\tbeta", []string{"alpha", "beta"}},
		{"single column", "alpha beta", nil},
		{"blank", "   ", nil},
		{"one non-empty cell", "alpha   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitColumns(tt.line))
		})
	}
}
