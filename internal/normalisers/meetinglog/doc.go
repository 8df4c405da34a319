// Package meetinglog turns raw meeting-log markdown documents into
// structured Meeting records.
//
// The corpus spans nearly two decades of inconsistent conventions:
// optional YAML frontmatter, Google Docs export artifacts, several
// historical ticket-link dialects, and redacted sections. Extraction
// runs in a fixed order:
//
//  1. Frontmatter split (language override)
//  2. Body normalisation (secret removal, redirect unwrapping,
//     link repair, ticket-link canonicalisation)
//  3. Filename metadata (date, title, slug, language, url)
//  4. Ticket and summary extraction from the normalised body
//
// Each document is extracted independently. Corpus-wide concerns such
// as language pairing and title disambiguation live in the services
// layer.
package meetinglog
