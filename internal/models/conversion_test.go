package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePageRange(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *PageRange
		wantErr bool
	}{
		{"simple range", "66-100", &PageRange{Start: 66, End: 100}, false},
		{"single page", "5-5", &PageRange{Start: 5, End: 5}, false},
		{"spaces tolerated", " 10 - 20 ", &PageRange{Start: 10, End: 20}, false},
		{"missing dash", "66", nil, true},
		{"too many parts", "1-2-3", nil, true},
		{"non-numeric", "a-b", nil, true},
		{"zero start", "0-10", nil, true},
		{"end before start", "20-10", nil, true},
		{"empty", "", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePageRange(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func validRequest() *ConversionRequest {
	return &ConversionRequest{
		Style:        StyleDefault,
		Language:     LanguageEnglish,
		TargetSlides: 20,
	}
}

func TestConversionRequestValidate(t *testing.T) {
	assert.NoError(t, validRequest().Validate())

	withProvider := validRequest()
	withProvider.Provider = "gemini"
	assert.NoError(t, withProvider.Validate())

	withPages := validRequest()
	withPages.Pages = &PageRange{Start: 1, End: 10}
	assert.NoError(t, withPages.Validate())
}

func TestConversionRequestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ConversionRequest)
	}{
		{"unknown style", func(r *ConversionRequest) { r.Style = "flashy" }},
		{"unknown language", func(r *ConversionRequest) { r.Language = "fr" }},
		{"zero slides", func(r *ConversionRequest) { r.TargetSlides = 0 }},
		{"unknown provider", func(r *ConversionRequest) { r.Provider = "openai" }},
		{"bad page range", func(r *ConversionRequest) { r.Pages = &PageRange{Start: 10, End: 2} }},
		{"zero page start", func(r *ConversionRequest) { r.Pages = &PageRange{Start: 0, End: 2} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			assert.Error(t, req.Validate())
		})
	}
}
