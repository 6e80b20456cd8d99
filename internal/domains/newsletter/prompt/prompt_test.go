package prompt

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewritePrompt(t *testing.T) {
	transcript := "so um today we're going to talk about testing in go"

	p := RewritePrompt("How To Test", "Gopher Academy", 754, transcript)

	assert.Contains(t, p, "- Title: How To Test")
	assert.Contains(t, p, "- Author: Gopher Academy")
	// 754 seconds floors to 12 minutes
	assert.Contains(t, p, "- Duration: 12 minutes")
	assert.Contains(t, p, transcript)
	assert.Contains(t, p, "80-90%")
	assert.Contains(t, p, "2,000-8,000 words")
}

func TestNewsletterPrompt(t *testing.T) {
	rewritten := "## Introduction\nTesting matters because..."

	p := NewsletterPrompt("How To Test", "Gopher Academy", 59, rewritten)

	assert.Contains(t, p, "- Title: How To Test")
	assert.Contains(t, p, "- Author: Gopher Academy")
	// Sub-minute videos floor to 0
	assert.Contains(t, p, "- Duration: 0 minutes")
	assert.Contains(t, p, rewritten)
	assert.Contains(t, p, "600-1,000 words")
	assert.Contains(t, p, "Subject Line Suggestion")
}

func TestPrompts_EmbedLiteralPercentSigns(t *testing.T) {
	// The templates go through fmt.Sprintf; a stray verb would leave
	// %!x(MISSING) artifacts in the prompt.
	for name, p := range map[string]string{
		"rewrite":    RewritePrompt("T", "A", 60, "text"),
		"newsletter": NewsletterPrompt("T", "A", 60, "text"),
	} {
		assert.NotContains(t, p, "%!", fmt.Sprintf("%s prompt has a formatting artifact", name))
	}
}
