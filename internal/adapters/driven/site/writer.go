// Package site writes the built archive to an output directory: the
// search index JSON, the meeting and year manifests, and one HTML page
// per meeting.
package site

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"

	"github.com/custodia-labs/minutes-cli/internal/core/domain"
	"github.com/custodia-labs/minutes-cli/internal/core/ports/driven"
)

// Output file names under the archive root.
const (
	IndexFileName    = "search-index.json"
	ManifestFileName = "meetings.json"
	YearsFileName    = "years.json"
)

// Ensure Writer implements the interface.
var _ driven.SiteWriter = (*Writer)(nil)

// Writer emits the archive to a local directory tree.
type Writer struct {
	outputDir string
	renderer  driven.MarkdownRenderer
	pageTmpl  *template.Template
}

// NewWriter creates a site writer rooted at outputDir. The renderer
// converts meeting bodies to HTML for the per-meeting pages.
func NewWriter(outputDir string, renderer driven.MarkdownRenderer) (*Writer, error) {
	tmpl, err := template.New("meeting").Parse(meetingPageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	return &Writer{
		outputDir: outputDir,
		renderer:  renderer,
		pageTmpl:  tmpl,
	}, nil
}

// WriteIndex writes the search index as pretty-printed JSON. An empty
// corpus still produces a valid empty array.
func (w *Writer) WriteIndex(_ context.Context, entries []domain.IndexEntry) error {
	if entries == nil {
		entries = []domain.IndexEntry{}
	}
	return w.writeJSON(IndexFileName, entries)
}

// manifestEntry is the serialized projection of a Meeting for consumers
// of the archive manifest.
type manifestEntry struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Date             string   `json:"date,omitempty"`
	DateFormatted    string   `json:"date_formatted"`
	Year             int      `json:"year"`
	Month            int      `json:"month"`
	MonthName        string   `json:"month_name,omitempty"`
	Day              int      `json:"day"`
	Slug             string   `json:"slug"`
	Lang             string   `json:"lang"`
	URL              string   `json:"url"`
	SummaryHTML      string   `json:"summary_html"`
	SummaryPlain     string   `json:"summary_plain"`
	TicketCount      int      `json:"ticket_count"`
	Tickets          []string `json:"tickets"`
	HasLanguagePair  bool     `json:"has_language_pair"`
	LanguagePairURL  string   `json:"language_pair_url,omitempty"`
	LanguagePairLang string   `json:"language_pair_lang"`
}

// recentCount is how many of the newest meetings the year file surfaces.
const recentCount = 5

// yearEntry groups one year's meetings, newest first.
type yearEntry struct {
	Year     int             `json:"year"`
	Count    int             `json:"count"`
	Meetings []manifestEntry `json:"meetings"`
}

// yearsFile is the shape of years.json: per-year groupings with years
// descending, plus the newest meetings across the whole archive.
type yearsFile struct {
	TotalMeetings  int             `json:"total_meetings"`
	Years          []yearEntry     `json:"years"`
	RecentMeetings []manifestEntry `json:"recent_meetings"`
}

// WriteManifest writes the full meeting manifest and the year groupings.
func (w *Writer) WriteManifest(_ context.Context, meetings []*domain.Meeting) error {
	manifest := make([]manifestEntry, 0, len(meetings))
	for _, m := range meetings {
		manifest = append(manifest, toManifestEntry(m))
	}
	if err := w.writeJSON(ManifestFileName, manifest); err != nil {
		return err
	}
	return w.writeJSON(YearsFileName, buildYearsFile(meetings))
}

func buildYearsFile(meetings []*domain.Meeting) yearsFile {
	sorted := make([]*domain.Meeting, len(meetings))
	copy(sorted, meetings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SortDate().After(sorted[j].SortDate())
	})

	byYear := make(map[int]*yearEntry)
	order := make([]int, 0)
	for _, m := range sorted {
		entry, ok := byYear[m.Year]
		if !ok {
			entry = &yearEntry{Year: m.Year}
			byYear[m.Year] = entry
			order = append(order, m.Year)
		}
		entry.Count++
		entry.Meetings = append(entry.Meetings, toManifestEntry(m))
	}
	sort.Sort(sort.Reverse(sort.IntSlice(order)))

	years := make([]yearEntry, 0, len(order))
	for _, y := range order {
		years = append(years, *byYear[y])
	}

	recent := make([]manifestEntry, 0, recentCount)
	for _, m := range sorted[:min(len(sorted), recentCount)] {
		recent = append(recent, toManifestEntry(m))
	}

	return yearsFile{
		TotalMeetings:  len(meetings),
		Years:          years,
		RecentMeetings: recent,
	}
}

// WritePages renders one HTML page per meeting at
// {outputDir}/meetings/{year}/{slug}/index.html.
func (w *Writer) WritePages(ctx context.Context, meetings []*domain.Meeting) error {
	for _, m := range meetings {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := w.writePage(m); err != nil {
			return fmt.Errorf("writing page for %s: %w", m.SourcePath, err)
		}
	}
	return nil
}

func (w *Writer) writePage(m *domain.Meeting) error {
	bodyHTML, err := w.renderer.Render(m.Body)
	if err != nil {
		return err
	}

	dir := filepath.Join(w.outputDir, "meetings", fmt.Sprintf("%d", m.Year), m.Slug)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(dir, "index.html"))
	if err != nil {
		return err
	}
	defer f.Close()

	data := struct {
		Meeting  manifestEntry
		BodyHTML template.HTML
	}{
		Meeting:  toManifestEntry(m),
		BodyHTML: template.HTML(bodyHTML),
	}
	if err := w.pageTmpl.Execute(f, data); err != nil {
		return err
	}
	return f.Close()
}

func (w *Writer) writeJSON(name string, v any) error {
	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	data = append(data, '\n')
	return os.WriteFile(filepath.Join(w.outputDir, name), data, 0o644)
}

func toManifestEntry(m *domain.Meeting) manifestEntry {
	entry := manifestEntry{
		ID:               m.ID,
		Title:            m.Title,
		Date:             m.DateString(),
		DateFormatted:    m.Title,
		Year:             m.Year,
		Month:            m.Month,
		Day:              m.Day,
		Slug:             m.Slug,
		Lang:             string(m.Language),
		URL:              m.URL,
		SummaryHTML:      m.SummaryHTML,
		SummaryPlain:     m.SummaryPlain,
		TicketCount:      m.TicketCount,
		Tickets:          firstN(m.Tickets, 5),
		HasLanguagePair:  m.LanguagePairURL != "",
		LanguagePairURL:  m.LanguagePairURL,
		LanguagePairLang: string(m.Language.Other()),
	}
	if m.Date != nil {
		entry.DateFormatted = m.Date.Format("January 02, 2006")
		entry.MonthName = m.Date.Format("January")
	}
	return entry
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

const meetingPageTemplate = `<!DOCTYPE html>
<html lang="{{.Meeting.Lang}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Meeting.Title}}</title>
</head>
<body>
<article class="meeting">
<header>
<h1>{{.Meeting.Title}}</h1>
<p class="meeting-date">{{.Meeting.DateFormatted}}</p>
{{if .Meeting.HasLanguagePair}}<p class="language-pair"><a href="{{.Meeting.LanguagePairURL}}">{{.Meeting.LanguagePairLang}}</a></p>{{end}}
</header>
{{.BodyHTML}}
</article>
</body>
</html>
`
