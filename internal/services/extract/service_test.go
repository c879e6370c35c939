package extract

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/doceo/internal/models"
)

// fakeSource serves pages from memory. Pages whose index appears in failAt
// return an extraction error.
type fakeSource struct {
	pages  []*models.PageContent
	failAt map[int]bool
}

func (f *fakeSource) PageCount() int { return len(f.pages) }

func (f *fakeSource) Metadata() *models.PDFMetadata {
	return &models.PDFMetadata{PageCount: len(f.pages)}
}

func (f *fakeSource) Page(_ context.Context, index int) (*models.PageContent, error) {
	if f.failAt[index] {
		return nil, fmt.Errorf("extracting page %d: content stream damaged", index+1)
	}
	return f.pages[index], nil
}

func (f *fakeSource) Close() error { return nil }

func textPage(number int, text string) *models.PageContent {
	return &models.PageContent{PageNumber: number, Text: text}
}

func newTestService() *Service {
	return NewService(DefaultTableHeuristics(), arbor.NewLogger())
}

func TestBuildDocument(t *testing.T) {
	source := &fakeSource{
		pages: []*models.PageContent{
			textPage(1, "First page body."),
			textPage(2, "Second page body."),
			textPage(3, "Third page body."),
		},
	}

	got, err := newTestService().BuildDocument(context.Background(), source, nil)
	require.NoError(t, err)

	assert.Equal(t,
		"--- Page 1 ---\nFirst page body.\n\n"+
			"--- Page 2 ---\nSecond page body.\n\n"+
			"--- Page 3 ---\nThird page body.",
		got)
}

func TestBuildDocument_PageRange(t *testing.T) {
	source := &fakeSource{
		pages: []*models.PageContent{
			textPage(1, "alpha"),
			textPage(2, "beta"),
			textPage(3, "gamma"),
			textPage(4, "delta"),
		},
	}

	got, err := newTestService().BuildDocument(context.Background(), source, &models.PageRange{Start: 2, End: 3})
	require.NoError(t, err)

	assert.NotContains(t, got, "alpha")
	assert.Contains(t, got, "--- Page 2 ---\nbeta")
	assert.Contains(t, got, "--- Page 3 ---\ngamma")
	assert.NotContains(t, got, "delta")
}

func TestBuildDocument_RangePastEnd(t *testing.T) {
	source := &fakeSource{
		pages: []*models.PageContent{textPage(1, "only page")},
	}

	got, err := newTestService().BuildDocument(context.Background(), source, &models.PageRange{Start: 5, End: 9})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBuildDocument_SkipsEmptyPages(t *testing.T) {
	source := &fakeSource{
		pages: []*models.PageContent{
			textPage(1, "content"),
			textPage(2, "   "),
			textPage(3, "more content"),
		},
	}

	got, err := newTestService().BuildDocument(context.Background(), source, nil)
	require.NoError(t, err)

	assert.NotContains(t, got, "--- Page 2 ---")
	// No double separator where the empty page was dropped.
	assert.Equal(t, "--- Page 1 ---\ncontent\n\n--- Page 3 ---\nmore content", got)
}

func TestBuildDocument_SkipsFailedPages(t *testing.T) {
	source := &fakeSource{
		pages: []*models.PageContent{
			textPage(1, "good"),
			textPage(2, "never served"),
			textPage(3, "also good"),
		},
		failAt: map[int]bool{1: true},
	}

	got, err := newTestService().BuildDocument(context.Background(), source, nil)
	require.NoError(t, err)

	assert.Contains(t, got, "good")
	assert.Contains(t, got, "also good")
	assert.NotContains(t, got, "never served")
}

func TestBuildDocument_NilSource(t *testing.T) {
	_, err := newTestService().BuildDocument(context.Background(), nil, nil)
	assert.Error(t, err)
}

func TestBuildDocument_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	source := &fakeSource{pages: []*models.PageContent{textPage(1, "body")}}

	_, err := newTestService().BuildDocument(ctx, source, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildDocument_TablesFlowThrough(t *testing.T) {
	dense := make(models.RawTable, 5)
	for r := range dense {
		dense[r] = make([]string, 2)
		for c := range dense[r] {
			dense[r][c] = fmt.Sprintf("table cell contents %d-%d", r, c)
		}
	}

	source := &fakeSource{
		pages: []*models.PageContent{
			{
				PageNumber: 1,
				Text:       "Page with a table.",
				Tables:     []models.RawTable{dense, {{"short"}}},
			},
		},
	}

	got, err := newTestService().BuildDocument(context.Background(), source, nil)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "--- Page 1 ---\nPage with a table."))
	assert.Contains(t, got, "Table 1:")
	assert.NotContains(t, got, "Table 2:")
	assert.Contains(t, got, "| table cell contents 0-0 | table cell contents 0-1 |")
}
