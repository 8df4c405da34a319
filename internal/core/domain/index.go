package domain

// IndexContentCap is the maximum length, in runes, of an index entry's
// plain-text content projection.
const IndexContentCap = 1501

// IndexEntry is the flattened projection of a Meeting consumed by the
// search engine. It is written once at build time and never mutated;
// the serialized array preserves builder input order exactly.
type IndexEntry struct {
	// Title is the (possibly disambiguated) meeting title.
	Title string `json:"title"`

	// Date is the YYYY-MM-DD date string, absent when the source
	// filename carried no full date.
	Date string `json:"date,omitempty"`

	// Year is always present.
	Year int `json:"year"`

	// URL is the meeting page path.
	URL string `json:"url"`

	// Summary is the plain-text synopsis.
	Summary string `json:"summary"`

	// Tickets holds the referenced ticket numbers, first-occurrence order.
	Tickets []string `json:"tickets"`

	// Content is the plain-text body, capped at IndexContentCap runes.
	Content string `json:"content"`
}

// SearchResult pairs an index entry with its relevance score and a
// context snippet for the query that produced it.
type SearchResult struct {
	// Entry is the matched index entry.
	Entry IndexEntry

	// Score is the summed per-term relevance score.
	Score int

	// Snippet is a short excerpt around the first term occurrence,
	// clamped with ellipses where it cuts into surrounding text.
	Snippet string
}
