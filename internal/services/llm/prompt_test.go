package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ternarybob/doceo/internal/models"
)

func baseRequest() *models.ConversionRequest {
	return &models.ConversionRequest{
		Style:        models.StyleDefault,
		Language:     models.LanguageEnglish,
		TargetSlides: 20,
	}
}

func TestBuildConversionPrompt(t *testing.T) {
	prompt := BuildConversionPrompt("--- Page 1 ---\nDocument body here.", baseRequest())

	assert.Contains(t, prompt, "Marp presentation")
	assert.Contains(t, prompt, "clean, professional style")
	assert.Contains(t, prompt, "Generate the presentation in English.")
	assert.Contains(t, prompt, "approximately 20 slides")
	assert.Contains(t, prompt, "marp: true")
	assert.True(t, strings.Contains(prompt, "Document body here."))
}

func TestBuildConversionPrompt_Styles(t *testing.T) {
	req := baseRequest()

	req.Style = models.StyleMinimal
	assert.Contains(t, BuildConversionPrompt("body", req), "minimal design")

	req.Style = models.StyleAcademic
	assert.Contains(t, BuildConversionPrompt("body", req), "academic presentation style")

	req.Style = "unknown"
	assert.Contains(t, BuildConversionPrompt("body", req), "clean, professional style")
}

func TestBuildConversionPrompt_Japanese(t *testing.T) {
	req := baseRequest()
	req.Language = models.LanguageJapanese

	prompt := BuildConversionPrompt("body", req)
	assert.Contains(t, prompt, "Generate the presentation in Japanese.")
	assert.Contains(t, prompt, "Japanese business presentation style")
}

func TestBuildConversionPrompt_DetailScalesWithTargetSlides(t *testing.T) {
	req := baseRequest()

	req.TargetSlides = 10
	short := BuildConversionPrompt("body", req)
	assert.Contains(t, short, "fewer topics")

	req.TargetSlides = 25
	medium := BuildConversionPrompt("body", req)
	assert.Contains(t, medium, "most important content")

	req.TargetSlides = 50
	long := BuildConversionPrompt("body", req)
	assert.Contains(t, long, "thorough, comprehensive presentation")
}
