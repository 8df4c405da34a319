package domain

import "time"

// Language tags a meeting log by its written language.
type Language string

const (
	// LanguageEN is the default language for meeting logs.
	LanguageEN Language = "en"

	// LanguageJA marks Japanese meeting logs, by frontmatter or
	// filename convention.
	LanguageJA Language = "ja"
)

// Other returns the paired language (en <-> ja).
func (l Language) Other() Language {
	if l == LanguageJA {
		return LanguageEN
	}
	return LanguageJA
}

// Meeting represents a single meeting log extracted from one source document.
// It is the canonical record after normalisation and extraction.
//
// A Meeting is immutable once built, with two exceptions that are late-bound
// by corpus-wide passes after every record exists: Title may gain a
// disambiguating " #N" suffix, and LanguagePairURL is populated when a
// same-date record in the other language is found. Both passes return updated
// copies of the collection rather than mutating records in place.
type Meeting struct {
	// ID is the unique identifier assigned at extraction time.
	ID string

	// SourcePath is the origin file, relative to the corpus root.
	SourcePath string

	// RawBody is the document text as read, frontmatter stripped.
	RawBody string

	// Body is the normalised text. Every stage downstream of the
	// normaliser reads Body, never RawBody.
	Body string

	// Language is the meeting log language, defaulting to "en".
	Language Language

	// Date is the full calendar date, when the filename carries one.
	Date *time.Time

	// Year is always present; derived from the corpus directory segment
	// even when no full date parses. When Date is set, Date.Year() == Year.
	Year int

	// Month and Day default to 1 when no convention matched.
	Month int
	Day   int

	// Title is the display title ("Mar 2019 Meeting", …).
	Title string

	// Slug is the URL path segment: lowercase, restricted to [a-z0-9-].
	Slug string

	// URL is "/meetings/{year}/{slug}/".
	URL string

	// Tickets holds the distinct ticket numbers referenced in the body,
	// in first-occurrence order.
	Tickets []string

	// TicketCount is len(Tickets), captured at extraction time.
	TicketCount int

	// SummaryHTML is the short synopsis rendered as inline-safe HTML.
	SummaryHTML string

	// SummaryPlain is the same synopsis with markdown syntax stripped.
	SummaryPlain string

	// LanguagePairURL points at the same meeting logged in the other
	// language, when one exists. Populated by the pairing pass.
	LanguagePairURL string

	// HasFrontmatter records whether the source document declared a
	// frontmatter block; filename language markers defer to frontmatter.
	HasFrontmatter bool
}

// SortDate returns the date used for corpus ordering. Records without a
// full calendar date sort at January 1 of their year.
func (m *Meeting) SortDate() time.Time {
	if m.Date != nil {
		return *m.Date
	}
	return time.Date(m.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// DateString returns the date in YYYY-MM-DD form, or "" when absent.
func (m *Meeting) DateString() string {
	if m.Date == nil {
		return ""
	}
	return m.Date.Format("2006-01-02")
}
