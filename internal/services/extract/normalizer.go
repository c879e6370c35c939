// Package extract implements the heuristic cleaning and table-validation
// layer of the PDF extraction stage: text normalization, page-range
// resolution, candidate-table statistics, validation and formatting, and
// per-page assembly of the document body handed to the slide converter.
//
// All functions in this package are total over their input domain: empty
// grids, absent cells and out-of-range page requests map to defined
// degenerate outputs rather than errors, so one malformed table never aborts
// a multi-page batch.
package extract

import (
	"regexp"
	"strings"
	"unicode"
)

// glyphPlaceholderPattern matches the textual stand-ins emitted when a PDF's
// embedded font cannot be mapped to a real character, e.g. "(cid:123)".
var glyphPlaceholderPattern = regexp.MustCompile(`\(cid:\d+\)`)

var whitespacePattern = regexp.MustCompile(`\s+`)

// Clean normalizes a block of extracted page text. Passes run in a fixed
// order: glyph placeholders are removed first, then running-header noise,
// then whitespace runs collapse to single spaces. Clean is idempotent and
// treats empty input as empty output.
func Clean(text string) string {
	if text == "" {
		return ""
	}
	text = StripGlyphPlaceholders(text)
	text = StripHeaderNoise(text)
	return CollapseWhitespace(text)
}

// StripGlyphPlaceholders deletes "(cid:NNN)" artifacts left by broken font
// encoding tables. Spacing around removed placeholders is repaired by the
// final whitespace collapse.
func StripGlyphPlaceholders(text string) string {
	return glyphPlaceholderPattern.ReplaceAllString(text, "")
}

// StripHeaderNoise removes running-header artifacts produced by PDFs that
// render header text twice-overlapped: tokens in which every letter is
// doubled ("IInnttrroodduuccttiioonn"), and roman-numeral-shaped tokens
// repeated three times in a row ("XII XII XII"). Go's regexp engine has no
// backreferences, so both shapes are detected by token scanning. Token
// separation is normalized to single spaces; the whitespace collapse pass
// makes the same change uniformly.
func StripHeaderNoise(text string) string {
	tokens := strings.Fields(text)
	kept := make([]string, 0, len(tokens))

	for i := 0; i < len(tokens); i++ {
		if isLetterDoubledToken(tokens[i]) {
			continue
		}
		if isRomanShapedToken(tokens[i]) &&
			i+2 < len(tokens) &&
			tokens[i+1] == tokens[i] &&
			tokens[i+2] == tokens[i] {
			i += 2
			continue
		}
		kept = append(kept, tokens[i])
	}

	return strings.Join(kept, " ")
}

// CollapseWhitespace collapses all whitespace runs, newlines included, to
// single spaces and strips leading/trailing whitespace.
func CollapseWhitespace(text string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}

// isLetterDoubledToken reports whether every letter in the token appears
// twice consecutively, e.g. "CChhaapptteerr". Requires at least two doubled
// pairs so short legitimate tokens like "aa" are kept.
func isLetterDoubledToken(token string) bool {
	runes := []rune(token)
	if len(runes) < 4 || len(runes)%2 != 0 {
		return false
	}
	for i := 0; i < len(runes); i += 2 {
		if !unicode.IsLetter(runes[i]) || runes[i] != runes[i+1] {
			return false
		}
	}
	return true
}

// isRomanShapedToken reports whether the token looks like an uppercase roman
// numeral. Lowercase is excluded to avoid matching ordinary words.
func isRomanShapedToken(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		switch r {
		case 'I', 'V', 'X', 'L', 'C', 'D', 'M':
		default:
			return false
		}
	}
	return true
}
