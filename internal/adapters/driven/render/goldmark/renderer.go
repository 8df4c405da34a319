// Package goldmark adapts the goldmark library to the MarkdownRenderer
// port. GFM extensions are enabled because the corpus was written against
// a GFM-flavoured renderer.
package goldmark

import (
	"bytes"
	"fmt"
	"strings"

	gm "github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/custodia-labs/minutes-cli/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.MarkdownRenderer = (*Renderer)(nil)

// Renderer converts markdown to HTML.
type Renderer struct {
	md gm.Markdown
}

// New creates a GFM markdown renderer. Raw HTML passes through, matching
// how the corpus has historically been rendered.
func New() *Renderer {
	return &Renderer{
		md: gm.New(
			gm.WithExtensions(extension.GFM),
			gm.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

// Render converts a markdown fragment to HTML.
func (r *Renderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}
