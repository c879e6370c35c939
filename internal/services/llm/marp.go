package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/doceo/internal/interfaces"
	"github.com/ternarybob/doceo/internal/models"
)

// contentGenerator is the slice of ProviderFactory the converter needs.
type contentGenerator interface {
	GenerateContent(ctx context.Context, request *ContentRequest) (*ContentResponse, error)
}

// MarpService converts extracted document bodies into Marp slide decks via
// an AI provider, with an optional cache so identical runs skip the API.
type MarpService struct {
	generator contentGenerator
	cache     interfaces.ConversionCache
	logger    arbor.ILogger
}

// Compile-time interface assertion
var _ interfaces.SlideConverter = (*MarpService)(nil)

// NewMarpService creates a Marp conversion service. cache may be nil to
// disable caching.
func NewMarpService(generator contentGenerator, cache interfaces.ConversionCache, logger arbor.ILogger) *MarpService {
	return &MarpService{
		generator: generator,
		cache:     cache,
		logger:    logger,
	}
}

// ConvertToMarp generates a Marp slide deck from the document body. The
// response is unwrapped from any code fence and guaranteed to carry Marp
// frontmatter before being returned or cached.
func (s *MarpService) ConvertToMarp(ctx context.Context, body string, req *models.ConversionRequest) (*models.ConversionResult, error) {
	if body == "" {
		return nil, fmt.Errorf("document body is empty, nothing to convert")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	key := conversionKey(body, req)

	if s.cache != nil {
		if entry, err := s.cache.Get(ctx, key); err == nil {
			s.logger.Info().
				Str("provider", entry.Provider).
				Str("model", entry.Model).
				Int("slide_count", entry.SlideCount).
				Msg("Serving conversion from cache")
			return &models.ConversionResult{
				Markdown:   entry.Markdown,
				Provider:   entry.Provider,
				Model:      entry.Model,
				SlideCount: entry.SlideCount,
				Cached:     true,
			}, nil
		}
	}

	prompt := BuildConversionPrompt(body, req)

	s.logger.Info().
		Str("style", req.Style).
		Str("language", req.Language).
		Int("target_slides", req.TargetSlides).
		Int("body_length", len(body)).
		Msg("Converting document to Marp presentation")

	resp, err := s.generator.GenerateContent(ctx, &ContentRequest{
		Model:  s.requestModel(req),
		Prompt: prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("conversion failed: %w", err)
	}

	markdown := EnsureFrontmatter(StripCodeFence(resp.Text))
	slideCount := CountSlides(markdown)

	s.logger.Info().
		Str("provider", string(resp.Provider)).
		Str("model", resp.Model).
		Int("slide_count", slideCount).
		Msg("Generated Marp presentation")

	result := &models.ConversionResult{
		Markdown:   markdown,
		Provider:   string(resp.Provider),
		Model:      resp.Model,
		SlideCount: slideCount,
	}

	if s.cache != nil {
		entry := &interfaces.ConversionCacheEntry{
			Key:        key,
			Markdown:   result.Markdown,
			Provider:   result.Provider,
			Model:      result.Model,
			SlideCount: result.SlideCount,
			CreatedAt:  time.Now().UTC(),
		}
		if err := s.cache.Put(ctx, entry); err != nil {
			s.logger.Warn().Err(err).Msg("Failed to cache conversion result")
		}
	}

	return result, nil
}

// requestModel maps the request's provider/model selection onto a model
// string the factory can route. An explicit model wins; a bare provider
// becomes a prefix the factory resolves to that provider's default model.
func (s *MarpService) requestModel(req *models.ConversionRequest) string {
	if req.Model != "" {
		return req.Model
	}
	if req.Provider != "" {
		return req.Provider + "/"
	}
	return ""
}

// conversionKey digests the document body and every parameter that changes
// the generated deck. Page selection is already baked into the body.
func conversionKey(body string, req *models.ConversionRequest) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%s\x00%d\x00%s\x00%s\x00", req.Style, req.Language, req.TargetSlides, req.Provider, req.Model)
	h.Write([]byte(body))
	return hex.EncodeToString(h.Sum(nil))
}
