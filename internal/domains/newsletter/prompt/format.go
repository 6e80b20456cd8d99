package prompt

import (
	"regexp"
	"strings"
)

// The model is told to leave blank lines around headers and bullets but
// does not reliably do so. Normalize applies a fixed, order-dependent
// sequence of substitutions to the raw output. Running it on already
// well-formatted text is a no-op.
var (
	beforeHeaderRegex = regexp.MustCompile(`\n+(## )`)
	afterHeaderRegex  = regexp.MustCompile(`(?m)^(##[^\n]*)\n+`)
	horizontalRegex   = regexp.MustCompile(`\n+---\n+`)
	bulletPairRegex   = regexp.MustCompile(`(?m)^(- [^\n]*)\n(- )`)
	newlineRunRegex   = regexp.MustCompile(`\n{4,}`)
)

// Normalize cleans up blank-line spacing in generated newsletter text.
func Normalize(text string) string {
	// Two blank lines before every ## header
	text = beforeHeaderRegex.ReplaceAllString(text, "\n\n\n$1")

	// One blank line after a header line
	text = afterHeaderRegex.ReplaceAllString(text, "$1\n\n")

	// Horizontal rules get one blank line on each side
	text = horizontalRegex.ReplaceAllString(text, "\n\n---\n\n")

	// Blank line between adjacent bullets. A single replace pass
	// consumes the second bullet's prefix, so repeat until stable.
	for {
		normalized := bulletPairRegex.ReplaceAllString(text, "$1\n\n$2")
		if normalized == text {
			break
		}
		text = normalized
	}

	// Collapse runs of more than three newlines to exactly three
	text = newlineRunRegex.ReplaceAllString(text, "\n\n\n")

	return strings.TrimSpace(text)
}
