package models

// RawTable is a candidate table grid reported by the extraction layer: an
// ordered sequence of rows, each an ordered sequence of cell strings. The
// extraction layer over-triggers on grid-aligned visual structure, so a
// RawTable is not yet confirmed as a genuine semantic table.
type RawTable [][]string

// PageContent holds the raw extraction output for a single PDF page.
type PageContent struct {
	PageNumber int        `json:"page_number"` // 1-indexed
	Text       string     `json:"text"`
	Tables     []RawTable `json:"tables,omitempty"`
	ImageCount int        `json:"image_count"`
}

// PDFMetadata contains metadata about a PDF document.
type PDFMetadata struct {
	Title       string `json:"title,omitempty"`
	PageCount   int    `json:"page_count"`
	FileSize    int64  `json:"file_size"`
	IsEncrypted bool   `json:"is_encrypted"`
}
