package meetinglog

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/custodia-labs/minutes-cli/internal/core/domain"
)

// Filename conventions, ordered oldest-corpus-last. First match wins.
var (
	devMeetingRe        = regexp.MustCompile(`\ADevMeeting-(\d{4})-(\d{2})-(\d{2})(-JA)?\z`)
	developersMeetingRe = regexp.MustCompile(`\ADevelopersMeeting(\d{4})(\d{2})(\d{2})Japan\z`)
	devCampRe           = regexp.MustCompile(`\ADevCamp-(\d{2})-(\d{2})\z`)
)

// metadata holds the fields derived from a document's path.
type metadata struct {
	Date  *time.Time
	Year  int
	Month int
	Day   int
	Title string
	Slug  string
	URL   string

	// forceJapanese is set by the -JA filename marker when no
	// frontmatter declared a language.
	forceJapanese bool
}

// extractMetadata derives date, title, slug, and url from a corpus-relative
// path. The year comes from the first path segment and is authoritative even
// when the filename yields no date. langDeclared reports whether frontmatter
// already fixed the document language, which suppresses the -JA marker's
// effect on slug and language.
//
// An impossible calendar date in a fully dated convention is an error and
// drops the document; the two-field DevCamp convention instead records
// month and day with no date.
func extractMetadata(relPath string, langDeclared bool) (metadata, error) {
	base := strings.TrimSuffix(path.Base(relPath), ".md")
	year := leadingInt(firstSegment(relPath))

	md := metadata{Year: year}

	switch {
	case devMeetingRe.MatchString(base):
		m := devMeetingRe.FindStringSubmatch(base)
		isJA := m[4] != ""
		date, ok := calendarDate(leadingInt(m[1]), leadingInt(m[2]), leadingInt(m[3]))
		if !ok {
			return metadata{}, fmt.Errorf("%q: impossible date: %w", base, domain.ErrInvalidInput)
		}
		md.Date = &date
		md.Month = int(date.Month())
		md.Day = date.Day()
		md.Title = date.Format("Jan 2006") + " Meeting"
		md.Slug = date.Format("01-02")
		if isJA && !langDeclared {
			md.Slug += "-ja"
			md.forceJapanese = true
		}

	case developersMeetingRe.MatchString(base):
		m := developersMeetingRe.FindStringSubmatch(base)
		date, ok := calendarDate(leadingInt(m[1]), leadingInt(m[2]), leadingInt(m[3]))
		if !ok {
			return metadata{}, fmt.Errorf("%q: impossible date: %w", base, domain.ErrInvalidInput)
		}
		md.Date = &date
		md.Month = int(date.Month())
		md.Day = date.Day()
		md.Title = date.Format("Jan 2006") + " Meeting"
		md.Slug = date.Format("01-02")

	case devCampRe.MatchString(base):
		m := devCampRe.FindStringSubmatch(base)
		month, day := leadingInt(m[1]), leadingInt(m[2])
		md.Month = month
		md.Day = day
		md.Slug = fmt.Sprintf("devcamp-%02d-%02d", month, day)
		abbrev := ""
		if date, ok := calendarDate(year, month, day); ok {
			md.Date = &date
			abbrev = date.Format("Jan")
		}
		md.Title = fmt.Sprintf("%s %d DevCamp", abbrev, year)

	default:
		md.Title = base
		md.Slug = fallbackSlug(base)
		md.Month = 1
		md.Day = 1
	}

	md.URL = fmt.Sprintf("/meetings/%d/%s/", md.Year, md.Slug)
	return md, nil
}

// calendarDate builds a UTC date and reports whether the components name a
// real calendar day. time.Date normalises overflow, so a round-trip check
// catches inputs like month 13 or February 30.
func calendarDate(year, month, day int) (time.Time, bool) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// fallbackSlug lowercases a basename and replaces every character outside
// [a-z0-9-] with a dash.
func fallbackSlug(base string) string {
	lowered := strings.ToLower(base)
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return b.String()
}

func firstSegment(relPath string) string {
	if i := strings.IndexByte(relPath, '/'); i >= 0 {
		return relPath[:i]
	}
	return relPath
}

// leadingInt parses the leading decimal digits of s, ignoring the rest.
func leadingInt(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
	}
	return n
}
