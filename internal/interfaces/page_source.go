// -----------------------------------------------------------------------
// Page Source Interface - Per-page raw content from a PDF document
// -----------------------------------------------------------------------

package interfaces

import (
	"context"

	"github.com/ternarybob/doceo/internal/models"
)

// PageSource abstracts the raw PDF extraction capability: given a page index,
// return raw text, candidate table grids, and an image count. Implementations
// may use different backends (pdfcpu, remote extraction services); the
// cleaning/validation pipeline consumes this interface and never touches the
// PDF itself.
type PageSource interface {
	// PageCount returns the total number of pages in the document.
	PageCount() int

	// Metadata returns lightweight document metadata without extracting text.
	Metadata() *models.PDFMetadata

	// Page returns the raw content of one page. The index is 0-based; the
	// returned PageContent carries the 1-based page number. Candidate tables
	// are unvalidated and may be extraction noise.
	Page(ctx context.Context, index int) (*models.PageContent, error)

	// Close releases any resources held for the document.
	Close() error
}
