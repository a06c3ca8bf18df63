package perplexity

import (
	"regexp"
	"strings"
)

var (
	reasoningBlockRe = regexp.MustCompile(`(?s)<think>.*?</think>`)
	citationRe       = regexp.MustCompile(`\[\d+\]`)
)

// StripReasoning removes <think>...</think> spans, markers included.
func StripReasoning(s string) string {
	return reasoningBlockRe.ReplaceAllString(s, "")
}

// StripCitations removes bracketed numeric citation markers like [1].
func StripCitations(s string) string {
	return citationRe.ReplaceAllString(s, "")
}

// ReplaceEmDashes replaces em-dashes with " - ".
func ReplaceEmDashes(s string) string {
	return strings.ReplaceAll(s, "—", " - ")
}

// Clean runs the full post-processing pipeline on model output. The step
// order is part of the contract: reasoning blocks, then citations, then
// em-dashes, then trim.
func Clean(s string) string {
	s = StripReasoning(s)
	s = StripCitations(s)
	s = ReplaceEmDashes(s)
	return strings.TrimSpace(s)
}
