package meetinglog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/minutes-cli/internal/core/domain"
	"github.com/custodia-labs/minutes-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.MeetingExtractor = (*Extractor)(nil)

var wrappingParagraphRe = regexp.MustCompile(`(?s)\A<p>(.*)</p>\z`)

// Extractor turns raw meeting-log documents into Meeting records.
type Extractor struct {
	renderer driven.MarkdownRenderer
}

// New creates a meeting-log extractor. The renderer is used only for the
// short summary fragment.
func New(renderer driven.MarkdownRenderer) *Extractor {
	return &Extractor{renderer: renderer}
}

// Extract parses one document. relPath is relative to the corpus root and
// its first segment names the year directory.
func (e *Extractor) Extract(relPath string, raw []byte) (*domain.Meeting, error) {
	if e.renderer == nil {
		return nil, domain.ErrRendererUnavailable
	}
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	meta, rawBody, hasFrontmatter := splitFrontmatter(string(raw))
	body := Normalise(rawBody)

	langDeclared := hasFrontmatter && meta.Lang != ""
	md, err := extractMetadata(relPath, langDeclared)
	if err != nil {
		return nil, err
	}

	lang := domain.LanguageEN
	switch {
	case langDeclared:
		lang = domain.Language(meta.Lang)
	case md.forceJapanese:
		lang = domain.LanguageJA
	}

	tickets := extractTickets(body)
	summaryMD := summaryMarkdown(body)
	summaryHTML, err := e.renderSummary(summaryMD)
	if err != nil {
		return nil, fmt.Errorf("render summary for %s: %w", relPath, err)
	}

	return &domain.Meeting{
		ID:             uuid.New().String(),
		SourcePath:     relPath,
		RawBody:        rawBody,
		Body:           body,
		Language:       lang,
		Date:           md.Date,
		Year:           md.Year,
		Month:          md.Month,
		Day:            md.Day,
		Title:          md.Title,
		Slug:           md.Slug,
		URL:            md.URL,
		Tickets:        tickets,
		TicketCount:    len(tickets),
		SummaryHTML:    summaryHTML,
		SummaryPlain:   StripPlain(summaryMD),
		HasFrontmatter: hasFrontmatter,
	}, nil
}

// renderSummary converts the summary markdown to inline HTML, dropping the
// wrapping paragraph tags the renderer adds around a single block.
func (e *Extractor) renderSummary(md string) (string, error) {
	if strings.TrimSpace(md) == "" {
		return "", nil
	}
	html, err := e.renderer.Render(md)
	if err != nil {
		return "", err
	}
	html = strings.TrimSpace(html)
	if m := wrappingParagraphRe.FindStringSubmatch(html); m != nil {
		html = m[1]
	}
	return html, nil
}
