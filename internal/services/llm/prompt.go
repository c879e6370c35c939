package llm

import (
	"fmt"

	"github.com/ternarybob/doceo/internal/models"
)

// styleInstructions maps presentation style names to prompt guidance.
var styleInstructions = map[string]string{
	models.StyleDefault:  "Use a clean, professional style with good visual hierarchy.",
	models.StyleMinimal:  "Use minimal design with focus on content. Avoid decorations.",
	models.StyleAcademic: "Use academic presentation style with clear structure and citations.",
}

// languageInstructions maps output languages to prompt guidance. Japanese
// decks follow business presentation conventions, which favor dense,
// self-contained slides over sparse talking points.
var languageInstructions = map[string]string{
	models.LanguageEnglish: "Generate the presentation in English.",
	models.LanguageJapanese: `Generate the presentation in Japanese. Follow Japanese business presentation style:
- Create information-dense slides (not minimal talking points)
- Include comprehensive details, examples, and explanations on slides
- Preserve all important information from the source
- Think of slides as a condensed written document, not just visual aids
- Use detailed bullet points with sub-points and explanations
- Include concrete examples, data, and specific details on slides
- Maintain academic/business document quality`,
}

// detailGuide returns per-slide density guidance scaled to the target deck
// length.
func detailGuide(targetSlides int) string {
	switch {
	case targetSlides <= 15:
		return "Cover main concepts comprehensively but fewer topics. Pack significant information into each slide."
	case targetSlides <= 30:
		return "Cover most important content with substantial detail. Include explanations, examples, and context. Each slide should be information-rich."
	default:
		return "Create a thorough, comprehensive presentation covering nearly all content. Include detailed explanations, multiple examples, specific data, and full context for each point. Preserve as much information from the source as possible."
	}
}

// BuildConversionPrompt assembles the full generation prompt for one
// conversion: fixed structural instructions, style/language/density guidance
// and the extracted document body. Unknown styles and languages fall back to
// the defaults rather than erroring, matching the request validator's job of
// rejecting them upstream.
func BuildConversionPrompt(body string, req *models.ConversionRequest) string {
	styleGuide, ok := styleInstructions[req.Style]
	if !ok {
		styleGuide = styleInstructions[models.StyleDefault]
	}

	languageGuide, ok := languageInstructions[req.Language]
	if !ok {
		languageGuide = languageInstructions[models.LanguageEnglish]
	}

	return fmt.Sprintf(`Convert the following text extracted from a PDF ebook into a Marp presentation.

Instructions:
1. Create comprehensive, information-dense slides that preserve important content
2. Add proper Marp frontmatter with theme configuration
3. Break content into logical sections with clear headings
4. Use detailed bullet points with sub-points and explanations
5. %s
6. Include substantial information per slide - aim for detailed coverage not minimal points
7. Use nested bullet points, numbered lists, and tables to pack information efficiently
8. Add slide separators (---) between slides
9. Include a title slide and conclusion slide
10. %s
11. Target approximately %d slides total (excluding title/conclusion)
12. %s
13. Preserve specific examples, data points, frameworks, and explanations from source
14. Each slide should be able to stand alone as reference material

Marp frontmatter should include:
`+"```"+`
---
marp: true
theme: default
paginate: true
---
`+"```"+`

Source text:
%s

Please generate the complete Marp presentation with comprehensive, detailed content:`,
		styleGuide, languageGuide, req.TargetSlides, detailGuide(req.TargetSlides), body)
}
