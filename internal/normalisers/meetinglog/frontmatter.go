package meetinglog

import (
	"regexp"
	"strings"

	"github.com/adrg/frontmatter"
)

// frontmatterRe matches an optional YAML frontmatter block at the very
// start of a document.
var frontmatterRe = regexp.MustCompile(`(?s)\A---\s*\n(.*?\n?)---\s*\n`)

type docMeta struct {
	Lang string `yaml:"lang"`
}

// splitFrontmatter separates an optional frontmatter block from the body.
// The block is stripped from the body even when its YAML is malformed; in
// that case ok is false and parsing continues with defaults.
func splitFrontmatter(raw string) (meta docMeta, body string, ok bool) {
	loc := frontmatterRe.FindStringIndex(raw)
	if loc == nil {
		return docMeta{}, raw, false
	}
	body = raw[loc[1]:]
	if _, err := frontmatter.Parse(strings.NewReader(raw), &meta); err != nil {
		return docMeta{}, body, false
	}
	return meta, body, true
}
