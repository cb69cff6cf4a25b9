package content

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	md = goldmark.New(
		goldmark.WithExtensions(extension.Linkify, extension.Typographer),
	)
	// goldmark escapes raw HTML by default; the policy guards links and attributes.
	htmlPolicy = bluemonday.UGCPolicy()
)

// RenderMarkdown converts markdown to sanitized HTML. It returns an empty string
// for blank input or when conversion fails.
func RenderMarkdown(src string) string {
	if strings.TrimSpace(src) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return ""
	}
	return htmlPolicy.Sanitize(buf.String())
}
