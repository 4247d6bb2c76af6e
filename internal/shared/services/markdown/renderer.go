// Package markdown turns user-entered Markdown into HTML that is safe to embed
// in a page.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer converts Markdown to sanitized HTML.
type Renderer interface {
	Render(markdown string) (string, error)
}

type renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewRenderer returns a GFM renderer whose output passes through a UGC
// sanitizer. Raw HTML in the source is dropped.
func NewRenderer() Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)

	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "pre")

	return &renderer{
		md:     md,
		policy: policy,
	}
}

func (r *renderer) Render(markdown string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}
	return r.policy.Sanitize(buf.String()), nil
}
