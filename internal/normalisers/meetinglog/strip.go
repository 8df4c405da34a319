package meetinglog

import (
	"regexp"
	"strings"
)

var (
	codeBlockRe   = regexp.MustCompile("(?s)```.*?```")
	inlineCodeRe  = regexp.MustCompile("`([^`]+)`")
	doubleLinkRe  = regexp.MustCompile(`\[\[([^\]]+)\]\]\(([^)]+)\)`)
	plainLinkRe   = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	doubleBrackRe = regexp.MustCompile(`\[\[([^\]]+)\]\]`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
)

// StripPlain converts a short markdown fragment to plain text for search
// and display. Link syntax collapses to its text, code fences and markdown
// punctuation disappear, and the "&middot;" topic separator becomes "|".
// Punctuation removal is boundary-aware so identifiers like def_method or
// Foo#bar survive intact.
func StripPlain(text string) string {
	text = codeBlockRe.ReplaceAllString(text, "")
	text = inlineCodeRe.ReplaceAllString(text, "${1}")
	text = strings.ReplaceAll(text, "`", "")
	text = doubleLinkRe.ReplaceAllString(text, "${1}")
	text = plainLinkRe.ReplaceAllString(text, "${1}")
	text = doubleBrackRe.ReplaceAllString(text, "${1}")
	text = stripUnlessAfterWord(text, "#*~>|")
	text = stripLooseAsterisks(text)
	text = stripEmphasisUnderscores(text)
	text = strings.ReplaceAll(text, "&middot;", "|")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// stripUnlessAfterWord removes runes in set unless the preceding rune of
// the input is a word character, so mid-identifier punctuation like the
// "#" in Foo#bar is kept.
func stripUnlessAfterWord(s, set string) string {
	var b strings.Builder
	b.Grow(len(s))
	prev := rune(0)
	first := true
	for _, r := range s {
		if strings.ContainsRune(set, r) && (first || !isWordASCII(prev)) {
			prev, first = r, false
			continue
		}
		b.WriteRune(r)
		prev, first = r, false
	}
	return b.String()
}

// stripLooseAsterisks removes emphasis asterisks. An asterisk survives
// only when word characters sit on both sides, as in a*b.
func stripLooseAsterisks(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i, r := range runes {
		if r == '*' {
			prevWord := i > 0 && isWordASCII(runes[i-1])
			nextWord := i+1 < len(runes) && isWordASCII(runes[i+1])
			if !prevWord || !nextWord {
				continue
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// stripEmphasisUnderscores removes underscores at a word-to-space or
// space-to-word boundary while keeping snake_case identifiers and
// underscores at the string edges.
func stripEmphasisUnderscores(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i, r := range runes {
		if r == '_' && i > 0 && i+1 < len(runes) {
			prevSpace := isSpaceASCII(runes[i-1])
			nextSpace := isSpaceASCII(runes[i+1])
			if prevSpace != nextSpace {
				continue
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isWordASCII(r rune) bool {
	return r == '_' ||
		(r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z')
}

func isSpaceASCII(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
