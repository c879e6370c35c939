package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/doceo/internal/interfaces"
	"github.com/ternarybob/doceo/internal/models"
)

// stubGenerator returns a canned response and records the requests it saw.
type stubGenerator struct {
	response *ContentResponse
	err      error
	requests []*ContentRequest
}

func (s *stubGenerator) GenerateContent(_ context.Context, request *ContentRequest) (*ContentResponse, error) {
	s.requests = append(s.requests, request)
	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

// memoryCache is an in-memory ConversionCache for tests.
type memoryCache struct {
	entries map[string]*interfaces.ConversionCacheEntry
	puts    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string]*interfaces.ConversionCacheEntry{}}
}

func (m *memoryCache) Get(_ context.Context, key string) (*interfaces.ConversionCacheEntry, error) {
	if entry, ok := m.entries[key]; ok {
		return entry, nil
	}
	return nil, interfaces.ErrCacheMiss
}

func (m *memoryCache) Put(_ context.Context, entry *interfaces.ConversionCacheEntry) error {
	m.puts++
	m.entries[entry.Key] = entry
	return nil
}

func (m *memoryCache) Close() error { return nil }

func deckResponse() *ContentResponse {
	return &ContentResponse{
		Text:     "---\nmarp: true\ntheme: default\npaginate: true\n---\n\n# Title\n\n---\n\n# Body\n\n---\n\n# Conclusion",
		Provider: ProviderClaude,
		Model:    "claude-sonnet-4-20250514",
	}
}

func TestConvertToMarp(t *testing.T) {
	gen := &stubGenerator{response: deckResponse()}
	svc := NewMarpService(gen, nil, arbor.NewLogger())

	result, err := svc.ConvertToMarp(context.Background(), "--- Page 1 ---\nbody", baseRequest())
	require.NoError(t, err)

	assert.Equal(t, "claude", result.Provider)
	assert.Equal(t, "claude-sonnet-4-20250514", result.Model)
	assert.Equal(t, 3, result.SlideCount)
	assert.False(t, result.Cached)
	assert.Contains(t, result.Markdown, "marp: true")

	require.Len(t, gen.requests, 1)
	assert.Contains(t, gen.requests[0].Prompt, "--- Page 1 ---\nbody")
}

func TestConvertToMarp_FencedResponse(t *testing.T) {
	gen := &stubGenerator{response: &ContentResponse{
		Text:     "```markdown\n# Only Slide\n```",
		Provider: ProviderGemini,
		Model:    "gemini-3-flash-preview",
	}}
	svc := NewMarpService(gen, nil, arbor.NewLogger())

	result, err := svc.ConvertToMarp(context.Background(), "body", baseRequest())
	require.NoError(t, err)

	assert.NotContains(t, result.Markdown, "```")
	assert.Contains(t, result.Markdown, "marp: true")
	assert.Equal(t, 1, result.SlideCount)
}

func TestConvertToMarp_CacheRoundTrip(t *testing.T) {
	gen := &stubGenerator{response: deckResponse()}
	cache := newMemoryCache()
	svc := NewMarpService(gen, cache, arbor.NewLogger())

	first, err := svc.ConvertToMarp(context.Background(), "body", baseRequest())
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.Equal(t, 1, cache.puts)

	second, err := svc.ConvertToMarp(context.Background(), "body", baseRequest())
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Markdown, second.Markdown)
	assert.Equal(t, first.SlideCount, second.SlideCount)

	// Provider was only called once.
	assert.Len(t, gen.requests, 1)
}

func TestConvertToMarp_CacheKeyVariesWithParameters(t *testing.T) {
	gen := &stubGenerator{response: deckResponse()}
	cache := newMemoryCache()
	svc := NewMarpService(gen, cache, arbor.NewLogger())

	_, err := svc.ConvertToMarp(context.Background(), "body", baseRequest())
	require.NoError(t, err)

	other := baseRequest()
	other.Style = models.StyleAcademic
	_, err = svc.ConvertToMarp(context.Background(), "body", other)
	require.NoError(t, err)

	assert.Len(t, gen.requests, 2)
	assert.Len(t, cache.entries, 2)
}

func TestConvertToMarp_EmptyBody(t *testing.T) {
	svc := NewMarpService(&stubGenerator{}, nil, arbor.NewLogger())

	_, err := svc.ConvertToMarp(context.Background(), "", baseRequest())
	assert.Error(t, err)
}

func TestConvertToMarp_InvalidRequest(t *testing.T) {
	svc := NewMarpService(&stubGenerator{}, nil, arbor.NewLogger())

	req := baseRequest()
	req.Style = "sparkly"
	_, err := svc.ConvertToMarp(context.Background(), "body", req)
	assert.Error(t, err)
}

func TestConvertToMarp_GeneratorError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("api unavailable")}
	svc := NewMarpService(gen, nil, arbor.NewLogger())

	_, err := svc.ConvertToMarp(context.Background(), "body", baseRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conversion failed")
}

func TestRequestModel(t *testing.T) {
	svc := NewMarpService(&stubGenerator{}, nil, arbor.NewLogger())

	req := baseRequest()
	assert.Equal(t, "", svc.requestModel(req))

	req.Provider = "gemini"
	assert.Equal(t, "gemini/", svc.requestModel(req))

	req.Model = "claude-sonnet-4-20250514"
	assert.Equal(t, "claude-sonnet-4-20250514", svc.requestModel(req))
}
