package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/doceo/internal/interfaces"
	"github.com/ternarybob/doceo/internal/models"
)

// Service runs the per-page cleaning and validation pipeline over a
// PageSource and assembles the document body handed to the slide converter.
type Service struct {
	validator *Validator
	logger    arbor.ILogger
}

// NewService creates an extraction service with the given table heuristics.
func NewService(heuristics TableHeuristics, logger arbor.ILogger) *Service {
	return &Service{
		validator: NewValidator(heuristics),
		logger:    logger,
	}
}

// Validator exposes the table validator for callers that score grids
// directly.
func (s *Service) Validator() *Validator {
	return s.validator
}

// BuildDocument extracts, cleans and assembles the requested page range into
// one document body. Pages are processed strictly in increasing index order;
// a page that fails to extract is logged and skipped rather than aborting
// the batch. Page blocks are joined with "--- Page N ---" separators.
func (s *Service) BuildDocument(ctx context.Context, source interfaces.PageSource, pageRange *models.PageRange) (string, error) {
	if source == nil {
		return "", fmt.Errorf("page source is required")
	}

	total := source.PageCount()
	start, end := ResolveRange(total, pageRange)

	s.logger.Debug().
		Int("total_pages", total).
		Int("start_idx", start).
		Int("end_idx", end).
		Msg("Resolved page range")

	var blocks []string
	validTables := 0
	rejectedTables := 0

	for i := start; i < end; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		page, err := source.Page(ctx, i)
		if err != nil {
			s.logger.Warn().Err(err).Int("page", i+1).Msg("Failed to extract page, skipping")
			continue
		}

		for _, grid := range page.Tables {
			if reason, ok := s.validator.Check(grid); !ok {
				rejectedTables++
				s.logger.Debug().
					Int("page", page.PageNumber).
					Int("rows", len(grid)).
					Str("reason", reason).
					Msg("Rejected candidate table")
			} else {
				validTables++
			}
		}

		block := BuildPageBlock(page, s.validator)
		if block == "" {
			continue
		}
		blocks = append(blocks, fmt.Sprintf("--- Page %d ---\n%s", page.PageNumber, block))
	}

	s.logger.Info().
		Int("pages_with_content", len(blocks)).
		Int("tables_accepted", validTables).
		Int("tables_rejected", rejectedTables).
		Msg("Assembled document body")

	return strings.Join(blocks, "\n\n"), nil
}
