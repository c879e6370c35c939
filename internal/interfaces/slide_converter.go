package interfaces

import (
	"context"

	"github.com/ternarybob/doceo/internal/models"
)

// SlideConverter turns an extracted document body into Marp presentation
// markdown using a large-language-model provider.
type SlideConverter interface {
	// ConvertToMarp generates a Marp slide deck from the document body,
	// honoring the style, language and target-length parameters of the
	// request. The returned markdown always starts with a Marp frontmatter
	// block.
	ConvertToMarp(ctx context.Context, body string, req *models.ConversionRequest) (*models.ConversionResult, error)
}
