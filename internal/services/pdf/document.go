// -----------------------------------------------------------------------
// PDF Document Source - Per-page text and image extraction
// Uses pdfcpu for Go-native PDF processing
// -----------------------------------------------------------------------

package pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/doceo/internal/interfaces"
	"github.com/ternarybob/doceo/internal/models"
)

// Document is a PageSource backed by a PDF file on disk. Extraction runs
// once, lazily, on the first page request; pages are then served from the
// parsed per-page text and image counts.
type Document struct {
	path     string
	workDir  string
	metadata *models.PDFMetadata
	logger   arbor.ILogger

	extractOnce sync.Once
	extractErr  error
	pageTexts   map[int]string
	imageCounts map[int]int
}

// Compile-time interface assertion
var _ interfaces.PageSource = (*Document)(nil)

// Open reads the PDF at path and prepares it for page extraction. The
// returned Document owns a temp working directory; callers must Close it.
func Open(path string, logger arbor.ILogger) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat PDF file: %w", err)
	}

	pdfCtx, err := api.ReadContextFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF context: %w", err)
	}

	workDir, err := os.MkdirTemp("", "doceo-pdf-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}

	metadata := &models.PDFMetadata{
		Title:       strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		PageCount:   pdfCtx.PageCount,
		FileSize:    info.Size(),
		IsEncrypted: pdfCtx.Encrypt != nil,
	}

	logger.Debug().
		Str("path", path).
		Int("page_count", metadata.PageCount).
		Int64("file_size", metadata.FileSize).
		Bool("encrypted", metadata.IsEncrypted).
		Msg("Opened PDF document")

	return &Document{
		path:     path,
		workDir:  workDir,
		metadata: metadata,
		logger:   logger,
	}, nil
}

// PageCount returns the total number of pages in the document.
func (d *Document) PageCount() int {
	return d.metadata.PageCount
}

// Metadata returns document-level metadata captured at open time.
func (d *Document) Metadata() *models.PDFMetadata {
	return d.metadata
}

// Page returns the content of one page by 0-based index. The returned
// PageContent carries the 1-based page number, the raw page text, candidate
// table grids detected in the text, and the page's image count.
func (d *Document) Page(ctx context.Context, index int) (*models.PageContent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if index < 0 || index >= d.metadata.PageCount {
		return nil, fmt.Errorf("page index %d out of range [0,%d)", index, d.metadata.PageCount)
	}

	d.extractOnce.Do(d.extract)
	if d.extractErr != nil {
		return nil, d.extractErr
	}

	pageNum := index + 1
	text := d.pageTexts[pageNum]

	return &models.PageContent{
		PageNumber: pageNum,
		Text:       text,
		Tables:     DetectCandidateTables(text),
		ImageCount: d.imageCounts[pageNum],
	}, nil
}

// Close removes the temp working directory.
func (d *Document) Close() error {
	return os.RemoveAll(d.workDir)
}

// extract runs pdfcpu text and image extraction for the whole document into
// the working directory and parses the results into per-page maps. Image
// extraction failures are tolerated; text extraction failure fails the
// document.
func (d *Document) extract() {
	conf := model.NewDefaultConfiguration()

	contentDir := filepath.Join(d.workDir, "content")
	if err := os.MkdirAll(contentDir, 0755); err != nil {
		d.extractErr = fmt.Errorf("failed to create content directory: %w", err)
		return
	}

	if err := api.ExtractContentFile(d.path, contentDir, nil, conf); err != nil {
		d.extractErr = fmt.Errorf("failed to extract PDF content: %w", err)
		return
	}
	d.pageTexts = readPageFiles(contentDir)

	imageDir := filepath.Join(d.workDir, "images")
	os.MkdirAll(imageDir, 0755)
	if err := api.ExtractImagesFile(d.path, imageDir, nil, conf); err != nil {
		d.logger.Warn().Err(err).Msg("Failed to extract PDF images, image counts unavailable")
		d.imageCounts = map[int]int{}
	} else {
		d.imageCounts = countImagesByPage(imageDir)
	}

	d.logger.Debug().
		Int("pages_with_text", len(d.pageTexts)).
		Int("pages_with_images", len(d.imageCounts)).
		Msg("Extracted PDF document")
}

// readPageFiles parses extracted per-page content files into a map keyed by
// 1-based page number. pdfcpu names them Content_page_N.txt.
func readPageFiles(dir string) map[int]string {
	pageTexts := make(map[int]string)
	files, _ := os.ReadDir(dir)
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		var pageNum int
		if _, err := fmt.Sscanf(file.Name(), "Content_page_%d", &pageNum); err != nil {
			if _, err := fmt.Sscanf(file.Name(), "page_%d", &pageNum); err != nil {
				continue
			}
		}
		content, err := os.ReadFile(filepath.Join(dir, file.Name()))
		if err != nil {
			continue
		}
		pageTexts[pageNum] = string(content)
	}
	return pageTexts
}

// countImagesByPage counts extracted image files per 1-based page number.
// pdfcpu image filenames embed the page number as the trailing _N before
// the object suffix, e.g. report_page_3_Im0.png; parsing is tolerant and
// unparseable names are skipped.
func countImagesByPage(dir string) map[int]int {
	counts := make(map[int]int)
	files, _ := os.ReadDir(dir)
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		if pageNum, ok := pageNumberFromImageName(file.Name()); ok {
			counts[pageNum]++
		}
	}
	return counts
}

func pageNumberFromImageName(name string) (int, bool) {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	parts := strings.Split(base, "_")
	for i, part := range parts {
		if part != "page" || i+1 >= len(parts) {
			continue
		}
		var pageNum int
		if _, err := fmt.Sscanf(parts[i+1], "%d", &pageNum); err == nil && pageNum > 0 {
			return pageNum, true
		}
	}
	return 0, false
}
