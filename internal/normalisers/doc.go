// Package normalisers holds the format-specific extraction code that
// turns raw corpus documents into domain records. The meetinglog
// subpackage implements the developer meeting-log dialect: frontmatter,
// filename conventions, ticket links, and summary extraction.
package normalisers
