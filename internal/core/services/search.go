package services

import (
	"context"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/custodia-labs/minutes-cli/internal/core/domain"
	"github.com/custodia-labs/minutes-cli/internal/core/ports/driven"
	"github.com/custodia-labs/minutes-cli/internal/core/ports/driving"
	"github.com/custodia-labs/minutes-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchEngine = (*SearchService)(nil)

const (
	// MinQueryLen is the minimum query length, in characters, before any
	// scoring runs.
	MinQueryLen = 2

	// MaxResults caps how many results a query returns.
	MaxResults = 20

	// Snippet window around the first matching term, in characters.
	snippetBefore = 60
	snippetAfter  = 100

	// Snippet length when no term occurs in the text.
	snippetFallbackLen = 150

	// A term can earn the occurrence bonus at most this many times.
	maxOccurrenceBonus = 5
)

// Term score weights. Ticket matches short-circuit the rest of the term.
const (
	ticketWeight     = 100
	titleWeight      = 50
	summaryWeight    = 30
	contentWeight    = 10
	occurrenceWeight = 2
	yearWeight       = 20
)

// SearchService answers ranked queries against the built index.
//
// The index is loaded once, on the first query, and cached for the
// service's lifetime. A failed load leaves the service inert: queries
// return no results and no error until the process restarts. There is no
// retry because the index is a build-time static artifact.
type SearchService struct {
	source driven.IndexSource

	once    sync.Once
	entries []domain.IndexEntry
	loadErr error
}

// NewSearchService creates a search service over the given index source.
func NewSearchService(source driven.IndexSource) *SearchService {
	return &SearchService{source: source}
}

// Search scores every index entry against the whitespace-separated query
// terms and returns the best MaxResults matches, highest score first, ties
// in index order.
func (s *SearchService) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinQueryLen {
		logger.Debug("Query below minimum length, returning no results")
		return []domain.SearchResult{}, nil
	}

	entries := s.load(ctx)
	if len(entries) == 0 {
		return []domain.SearchResult{}, nil
	}

	terms := strings.Fields(strings.ToLower(query))

	var results []domain.SearchResult
	for _, entry := range entries {
		if score := scoreEntry(entry, terms); score > 0 {
			results = append(results, domain.SearchResult{Entry: entry, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > MaxResults {
		results = results[:MaxResults]
	}

	for i := range results {
		text := results[i].Entry.Content
		if text == "" {
			text = results[i].Entry.Summary
		}
		results[i].Snippet = makeSnippet(text, terms)
	}

	logger.Debug("Query %q matched %d entries", query, len(results))
	return results, nil
}

// load fetches and caches the index. Only the first call hits the source;
// concurrent and subsequent calls reuse the outcome, including a failure.
func (s *SearchService) load(ctx context.Context) []domain.IndexEntry {
	s.once.Do(func() {
		entries, err := s.source.Load(ctx)
		if err != nil {
			s.loadErr = err
			logger.Warn("Search index unavailable: %v", err)
			return
		}
		s.entries = entries
		logger.Debug("Search index loaded: %d entries", len(entries))
	})
	return s.entries
}

// scoreEntry sums per-term scores. A term that looks like a ticket number
// (optionally prefixed "#") and appears in the entry's ticket list scores
// the ticket weight and nothing else; every other signal is additive.
func scoreEntry(entry domain.IndexEntry, terms []string) int {
	title := strings.ToLower(entry.Title)
	summary := strings.ToLower(entry.Summary)
	content := strings.ToLower(entry.Content)
	tickets := strings.Join(entry.Tickets, " ")
	year := strconv.Itoa(entry.Year)

	score := 0
	for _, term := range terms {
		if num := strings.TrimPrefix(term, "#"); isDigits(num) && strings.Contains(tickets, num) {
			score += ticketWeight
			continue
		}
		if strings.Contains(title, term) {
			score += titleWeight
		}
		if strings.Contains(summary, term) {
			score += summaryWeight
		}
		if n := strings.Count(content, term); n > 0 {
			score += contentWeight + min(n, maxOccurrenceBonus)*occurrenceWeight
		}
		if term == year {
			score += yearWeight
		}
	}
	return score
}

// Markdown link forms and stray code or bracket markers that survive
// index stripping. Double-bracketed links like [[Feature 123]](url) do
// not parse as plain links upstream, so snippets strip them here.
var (
	snippetLinkRe   = regexp.MustCompile(`\[+([^\[\]]+)\]+\([^)]*\)`)
	snippetMarkerRe = regexp.MustCompile("[`\\[\\]]")
	snippetSpaceRe  = regexp.MustCompile(`\s+`)
)

func cleanSnippetText(text string) string {
	text = snippetLinkRe.ReplaceAllString(text, "$1")
	text = snippetMarkerRe.ReplaceAllString(text, "")
	return strings.TrimSpace(snippetSpaceRe.ReplaceAllString(text, " "))
}

// makeSnippet extracts a window around the first term that occurs in text,
// with ellipses where the window cuts into surrounding content. When no
// term occurs the snippet is simply the head of the text.
func makeSnippet(text string, terms []string) string {
	text = cleanSnippetText(text)
	runes := []rune(text)
	lower := strings.ToLower(text)

	pos := -1
	for _, term := range terms {
		if i := strings.Index(lower, term); i >= 0 {
			pos = utf8.RuneCountInString(lower[:i])
			break
		}
	}

	if pos == -1 {
		if len(runes) > snippetFallbackLen {
			return string(runes[:snippetFallbackLen])
		}
		return text
	}

	start := max(pos-snippetBefore, 0)
	end := min(pos+snippetAfter, len(runes))
	snippet := string(runes[start:end])
	if start > 0 {
		snippet = "..." + snippet
	}
	if end < len(runes) {
		snippet += "..."
	}
	return snippet
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
