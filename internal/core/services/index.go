package services

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/minutes-cli/internal/core/domain"
)

// Index content stripping is deliberately simpler than the summary
// stripping in the extractor: inline code is dropped rather than kept and
// punctuation is removed unconditionally. Search matches against this
// rougher text; display fields come from the record.
var (
	indexCodeBlockRe  = regexp.MustCompile("(?s)```.*?```")
	indexInlineCodeRe = regexp.MustCompile("`[^`]+`")
	indexLinkRe       = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	indexMarkdownRe   = regexp.MustCompile(`[#*_~>|]`)
	indexSpaceRe      = regexp.MustCompile(`\s+`)
)

// BuildIndex flattens meetings into search index entries. Output order
// equals input order exactly; the caller decides the ordering (the build
// pipeline sorts newest first before calling).
func BuildIndex(meetings []*domain.Meeting) []domain.IndexEntry {
	entries := make([]domain.IndexEntry, 0, len(meetings))
	for _, m := range meetings {
		entries = append(entries, domain.IndexEntry{
			Title:   m.Title,
			Date:    m.DateString(),
			Year:    m.Year,
			URL:     m.URL,
			Summary: m.SummaryPlain,
			Tickets: m.Tickets,
			Content: capRunes(stripIndexContent(m.Body), domain.IndexContentCap),
		})
	}
	return entries
}

func stripIndexContent(body string) string {
	body = indexCodeBlockRe.ReplaceAllString(body, "")
	body = indexInlineCodeRe.ReplaceAllString(body, "")
	body = indexLinkRe.ReplaceAllString(body, "${1}")
	body = indexMarkdownRe.ReplaceAllString(body, "")
	body = indexSpaceRe.ReplaceAllString(body, " ")
	return strings.TrimSpace(body)
}

func capRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
