package extract

import (
	"fmt"
	"strings"

	"github.com/ternarybob/doceo/internal/models"
)

// BuildPageBlock renders one page's contribution to the document body: the
// cleaned page text, each surviving table preceded by a 1-based index label,
// and an image/figure count annotation when the page carries images. Returns
// the empty string when nothing survives cleaning and validation, so empty
// pages contribute nothing to the output body.
func BuildPageBlock(page *models.PageContent, validator *Validator) string {
	if page == nil {
		return ""
	}

	var sections []string

	if text := Clean(page.Text); text != "" {
		sections = append(sections, text)
	}

	tableIndex := 0
	for _, grid := range page.Tables {
		if !validator.IsValid(grid) {
			continue
		}
		rendered := FormatTable(grid)
		if rendered == "" {
			continue
		}
		tableIndex++
		sections = append(sections, fmt.Sprintf("Table %d:\n%s", tableIndex, rendered))
	}

	if page.ImageCount > 0 {
		sections = append(sections, fmt.Sprintf("[This page contains %d image(s)/figure(s)]", page.ImageCount))
	}

	return strings.Join(sections, "\n\n")
}
