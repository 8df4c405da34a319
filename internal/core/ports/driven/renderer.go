package driven

// MarkdownRenderer renders a markdown fragment to HTML.
//
// Used for meeting summaries (where the surrounding <p> wrapper is stripped
// by the caller) and for full meeting page bodies.
type MarkdownRenderer interface {
	Render(markdown string) (string, error)
}
