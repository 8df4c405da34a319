// Package list provides the result list component for the TUI.
package list

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/minutes-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/minutes-cli/internal/core/domain"
)

// ResultList displays scored search results in a navigable list.
// Moving down past the last result wraps to the first; moving up from
// the first is reported to the caller so focus can return to the query
// input instead of wrapping.
type ResultList struct {
	results  []domain.SearchResult
	terms    []string
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewResultList creates a new result list component.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		results:  nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the result list.
func (r *ResultList) Init() tea.Cmd {
	return nil
}

// Update handles list messages. Navigation is driven by the app model,
// so the list itself is passive.
func (r *ResultList) Update(msg tea.Msg) (*ResultList, tea.Cmd) {
	return r, nil
}

// View renders the result list.
func (r *ResultList) View() string {
	if len(r.results) == 0 {
		return r.styles.Muted.Render("No matching meetings")
	}

	lines := make([]string, 0, len(r.results)*3+2)

	header := r.styles.Subtitle.Render(fmt.Sprintf("Meetings (%d)", len(r.results)))
	lines = append(lines, header, "")

	// Each result renders as three lines: title, url, snippet.
	visibleCount := (r.height - 4) / 3
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(r.results) {
		end = len(r.results)
	}

	for i := start; i < end; i++ {
		lines = append(lines, r.renderResult(i, &r.results[i]))
	}

	return strings.Join(lines, "\n")
}

// renderResult formats a single search result.
func (r *ResultList) renderResult(index int, result *domain.SearchResult) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	title := result.Entry.Title
	if title == "" {
		title = "(Untitled)"
	}
	if result.Entry.Date != "" {
		title = title + "  " + result.Entry.Date
	}

	maxTitleLen := r.width - 12
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen-3] + "..."
	}

	score := fmt.Sprintf("%d", result.Score)

	var titleLine string
	if index == r.selected {
		// The selected row keeps its full-line emphasis.
		titleLine = r.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s", indicator, maxTitleLen, title, score))
	} else {
		titleLine = r.renderHighlighted(fmt.Sprintf("%s%-*s  ", indicator, maxTitleLen, title), r.styles.Normal) +
			r.styles.Muted.Render(score)
	}

	urlLine := r.styles.Muted.Render("    " + result.Entry.URL)

	snippet := result.Snippet
	if snippet == "" {
		snippet = result.Entry.Summary
	}
	maxSnippetLen := r.width - 6
	if maxSnippetLen < 20 {
		maxSnippetLen = 20
	}
	if len(snippet) > maxSnippetLen {
		snippet = snippet[:maxSnippetLen-3] + "..."
	}
	snippetLine := r.renderHighlighted("    "+snippet, r.styles.Muted)

	return titleLine + "\n" + urlLine + "\n" + snippetLine
}

// span is a half-open byte range of text matched by a query term.
type span struct {
	start, end int
}

// matchSpans finds every case-insensitive occurrence of each term in
// text and merges overlapping or touching ranges. A leading "#" on a
// term is ignored so ticket queries highlight the bare number.
func matchSpans(text string, terms []string) []span {
	lower := strings.ToLower(text)

	var spans []span
	for _, term := range terms {
		t := strings.TrimPrefix(strings.ToLower(term), "#")
		if t == "" {
			continue
		}
		for from := 0; ; {
			i := strings.Index(lower[from:], t)
			if i < 0 {
				break
			}
			start := from + i
			spans = append(spans, span{start: start, end: start + len(t)})
			from = start + len(t)
		}
	}
	if len(spans) == 0 {
		return nil
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	merged := spans[:1]
	for _, s := range spans[1:] {
		last := &merged[len(merged)-1]
		if s.start <= last.end {
			if s.end > last.end {
				last.end = s.end
			}
			continue
		}
		merged = append(merged, s)
	}
	return merged
}

// renderHighlighted renders text in the base style with query-term
// matches in the highlight style.
func (r *ResultList) renderHighlighted(text string, base lipgloss.Style) string {
	spans := matchSpans(text, r.terms)
	if len(spans) == 0 {
		return base.Render(text)
	}

	var b strings.Builder
	prev := 0
	for _, s := range spans {
		if s.start > prev {
			b.WriteString(base.Render(text[prev:s.start]))
		}
		b.WriteString(r.styles.Highlight.Render(text[s.start:s.end]))
		prev = s.end
	}
	if prev < len(text) {
		b.WriteString(base.Render(text[prev:]))
	}
	return b.String()
}

// SetResults replaces the result list and resets the cursor.
func (r *ResultList) SetResults(results []domain.SearchResult) {
	r.results = results
	r.selected = 0
}

// SetTerms sets the query terms used to highlight matches in rendered
// results.
func (r *ResultList) SetTerms(terms []string) {
	r.terms = terms
}

// Terms returns the current highlight terms.
func (r *ResultList) Terms() []string {
	return r.terms
}

// Results returns the current results.
func (r *ResultList) Results() []domain.SearchResult {
	return r.results
}

// Selected returns the index of the highlighted result.
func (r *ResultList) Selected() int {
	return r.selected
}

// SetSelected sets the highlighted index.
func (r *ResultList) SetSelected(index int) {
	if index >= 0 && index < len(r.results) {
		r.selected = index
	}
}

// SelectedResult returns the currently highlighted result, or nil.
func (r *ResultList) SelectedResult() *domain.SearchResult {
	if len(r.results) == 0 || r.selected < 0 || r.selected >= len(r.results) {
		return nil
	}
	return &r.results[r.selected]
}

// MoveUp moves the cursor up. It returns false when the cursor is
// already on the first result, signalling the caller to refocus the
// query input.
func (r *ResultList) MoveUp() bool {
	if r.selected == 0 {
		return false
	}
	r.selected--
	return true
}

// MoveDown moves the cursor down, wrapping to the first result after
// the last.
func (r *ResultList) MoveDown() {
	if len(r.results) == 0 {
		return
	}
	r.selected++
	if r.selected >= len(r.results) {
		r.selected = 0
	}
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Width returns the current width.
func (r *ResultList) Width() int {
	return r.width
}

// Height returns the current height.
func (r *ResultList) Height() int {
	return r.height
}

// Count returns the number of results.
func (r *ResultList) Count() int {
	return len(r.results)
}

// IsEmpty returns whether the list is empty.
func (r *ResultList) IsEmpty() bool {
	return len(r.results) == 0
}
