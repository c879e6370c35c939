package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Presentation styles supported by the conversion prompt.
const (
	StyleDefault  = "default"
	StyleMinimal  = "minimal"
	StyleAcademic = "academic"
)

// Output languages supported by the conversion prompt.
const (
	LanguageEnglish  = "en"
	LanguageJapanese = "ja"
)

// PageRange is a 1-indexed inclusive page selection. Start >= 1 and
// End >= Start are enforced at the CLI/MCP boundary via Validate; resolution
// against a document's page count happens in the extract package and clamps
// silently rather than erroring.
type PageRange struct {
	Start int `validate:"min=1"`
	End   int `validate:"gtefield=Start"`
}

// ParsePageRange parses a "start-end" string (e.g. "66-100") into a PageRange.
func ParsePageRange(s string) (*PageRange, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return nil, fmt.Errorf("page range must be in format 'start-end', got %q", s)
	}

	start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, fmt.Errorf("invalid start page %q: %w", parts[0], err)
	}
	end, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, fmt.Errorf("invalid end page %q: %w", parts[1], err)
	}

	r := &PageRange{Start: start, End: end}
	if err := validate.Struct(r); err != nil {
		return nil, fmt.Errorf("invalid page range %d-%d: start must be >= 1 and end >= start", start, end)
	}
	return r, nil
}

// ConversionRequest carries the user-facing parameters for one PDF-to-Marp
// conversion run.
type ConversionRequest struct {
	Style        string     `validate:"oneof=default minimal academic"`
	Language     string     `validate:"oneof=en ja"`
	TargetSlides int        `validate:"min=1"`
	Provider     string     `validate:"omitempty,oneof=claude gemini"`
	Model        string     `validate:"-"`
	Pages        *PageRange `validate:"omitempty"`
}

// ConversionResult is the outcome of a conversion run.
type ConversionResult struct {
	Markdown   string
	Provider   string
	Model      string
	SlideCount int
	Cached     bool
}

var validate = validator.New()

// Validate checks the request parameters, including the nested page range.
func (r *ConversionRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid conversion request: %w", err)
	}
	if r.Pages != nil {
		if err := validate.Struct(r.Pages); err != nil {
			return fmt.Errorf("invalid page range %d-%d: start must be >= 1 and end >= start", r.Pages.Start, r.Pages.End)
		}
	}
	return nil
}
