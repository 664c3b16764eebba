package pipeline

import (
	"regexp"
	"strings"
)

// Kind selects the top-level JSON shape Extract looks for.
type Kind int

const (
	KindArray Kind = iota
	KindObject
)

var (
	fenceRe       = regexp.MustCompile("(?i)```(?:json)?\n?")
	arrayMatchRe  = regexp.MustCompile(`\[[\s\S]*\]`)
	objectMatchRe = regexp.MustCompile(`\{[\s\S]*\}`)
)

// Extract strips markdown code fences and surrounding prose from raw model
// output and returns the substring most likely to hold the expected JSON
// value. It never fails: when no bracketed region is found, the trimmed
// input is returned for the parser to reject.
func Extract(raw string, kind Kind) string {
	text := fenceRe.ReplaceAllString(raw, "")
	text = strings.TrimSpace(text)

	open, closing, matchRe := "[", "]", arrayMatchRe
	if kind == KindObject {
		open, closing, matchRe = "{", "}", objectMatchRe
	}

	if i := strings.Index(text, open); i > 0 {
		text = text[i:]
	}
	if i := strings.LastIndex(text, closing); i >= 0 && i < len(text)-1 {
		text = text[:i+1]
	}

	if m := matchRe.FindString(text); m != "" {
		return m
	}
	return text
}
