package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain fence",
			input: "```\n# Deck\ncontent\n```",
			want:  "# Deck\ncontent",
		},
		{
			name:  "markdown fence",
			input: "```markdown\n# Deck\n```",
			want:  "# Deck",
		},
		{
			name:  "no fence",
			input: "# Deck\ncontent",
			want:  "# Deck\ncontent",
		},
		{
			name:  "unterminated fence left alone",
			input: "```\n# Deck",
			want:  "```\n# Deck",
		},
		{
			name:  "internal fence untouched",
			input: "# Deck\n```\ncode\n```\nmore",
			want:  "# Deck\n```\ncode\n```\nmore",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCodeFence(tt.input))
		})
	}
}

func TestEnsureFrontmatter_AddsBlock(t *testing.T) {
	got := EnsureFrontmatter("# Title Slide\n\ncontent")

	assert.True(t, strings.HasPrefix(got, "---\n"))
	assert.Contains(t, got, "marp: true")
	assert.Contains(t, got, "theme: default")
	assert.Contains(t, got, "paginate: true")
	assert.True(t, strings.HasSuffix(got, "# Title Slide\n\ncontent"))
}

func TestEnsureFrontmatter_PreservesExistingKeys(t *testing.T) {
	input := "---\nmarp: true\ntheme: gaia\n---\n\n# Deck"
	got := EnsureFrontmatter(input)

	assert.Contains(t, got, "theme: gaia")
	assert.NotContains(t, got, "theme: default")
	assert.Contains(t, got, "marp: true")
	assert.Contains(t, got, "paginate: true")
	assert.Contains(t, got, "# Deck")
}

func TestEnsureFrontmatter_FillsMissingMarpKey(t *testing.T) {
	input := "---\ntitle: My Deck\n---\n\n# Deck"
	got := EnsureFrontmatter(input)

	assert.Contains(t, got, "marp: true")
	assert.Contains(t, got, "title: My Deck")
}

func TestCountSlides(t *testing.T) {
	deck := "---\nmarp: true\n---\n\n# Slide One\n\n---\n\n# Slide Two\n\n---\n\n# Slide Three"
	assert.Equal(t, 3, CountSlides(deck))
}

func TestCountSlides_SingleSlide(t *testing.T) {
	assert.Equal(t, 1, CountSlides("# Only Slide\n\ncontent"))
}

func TestCountSlides_EmptyDeck(t *testing.T) {
	assert.Equal(t, 0, CountSlides(""))
	assert.Equal(t, 0, CountSlides("---\nmarp: true\n---\n"))
}

func TestCountSlides_FrontmatterNotCounted(t *testing.T) {
	withFM := "---\nmarp: true\n---\n\n# A\n\n---\n\n# B"
	withoutFM := "# A\n\n---\n\n# B"
	assert.Equal(t, CountSlides(withoutFM), CountSlides(withFM))
	assert.Equal(t, 2, CountSlides(withFM))
}
