package llm

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	gtext "github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

// StripCodeFence unwraps a response that arrived wrapped in a markdown code
// fence. Models sometimes fence the whole deck even when asked not to.
func StripCodeFence(markdown string) string {
	trimmed := strings.TrimSpace(markdown)
	if !strings.HasPrefix(trimmed, "```") {
		return markdown
	}

	lines := strings.Split(trimmed, "\n")
	if len(lines) < 2 || strings.TrimSpace(lines[len(lines)-1]) != "```" {
		return markdown
	}

	return strings.TrimSpace(strings.Join(lines[1:len(lines)-1], "\n"))
}

// EnsureFrontmatter guarantees the deck starts with a Marp frontmatter
// block. Existing frontmatter keys are preserved; marp, theme and paginate
// are filled in when missing. A deck with no frontmatter gets the default
// block prepended.
func EnsureFrontmatter(markdown string) string {
	body := strings.TrimSpace(markdown)

	fields := map[string]interface{}{}
	if fm, rest, ok := splitFrontmatter(body); ok {
		if err := yaml.Unmarshal([]byte(fm), &fields); err != nil {
			fields = map[string]interface{}{}
		}
		body = rest
	}

	if _, ok := fields["marp"]; !ok {
		fields["marp"] = true
	}
	if _, ok := fields["theme"]; !ok {
		fields["theme"] = "default"
	}
	if _, ok := fields["paginate"]; !ok {
		fields["paginate"] = true
	}

	fm, err := yaml.Marshal(fields)
	if err != nil {
		// Marshal of a string-keyed map cannot realistically fail; fall back
		// to the fixed default block.
		fm = []byte("marp: true\npaginate: true\ntheme: default\n")
	}

	return fmt.Sprintf("---\n%s---\n\n%s", string(fm), body)
}

// splitFrontmatter separates a leading YAML frontmatter block from the body.
// Frontmatter is delimited by --- at the start of the content.
func splitFrontmatter(markdown string) (frontmatter, body string, ok bool) {
	if !strings.HasPrefix(markdown, "---\n") {
		return "", markdown, false
	}

	rest := markdown[4:]
	endIdx := strings.Index(rest, "\n---")
	if endIdx == -1 {
		return "", markdown, false
	}

	after := rest[endIdx+4:]
	if after != "" && after[0] != '\n' {
		return "", markdown, false
	}

	return rest[:endIdx+1], strings.TrimSpace(after), true
}

// CountSlides counts the slides in a Marp deck: one more than the number of
// thematic breaks in the body. The frontmatter block does not count as a
// break. Returns 0 for an empty deck.
func CountSlides(markdown string) int {
	_, body, _ := splitFrontmatter(strings.TrimSpace(markdown))
	if strings.TrimSpace(body) == "" {
		return 0
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.Table, extension.Strikethrough, extension.Linkify),
	)

	source := []byte(body)
	doc := md.Parser().Parse(gtext.NewReader(source))

	breaks := 0
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == ast.KindThematicBreak {
			breaks++
		}
		return ast.WalkContinue, nil
	})

	return breaks + 1
}
