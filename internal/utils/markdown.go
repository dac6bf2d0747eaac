package utils

import (
	"bytes"
	"html/template"
	"log"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	mdParser = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)
	policy = bluemonday.UGCPolicy()

	// Memoizes rendered markdown keyed by the source text itself, so edits
	// always miss and the cache can never serve stale content.
	renderCache *lru.Cache[string, template.HTML]
)

func init() {
	// Allow images
	policy.AllowImages()
	// Force links to open in new tab
	policy.AddTargetBlankToFullyQualifiedLinks(true)
	policy.RequireNoReferrerOnLinks(true)

	var err error
	renderCache, err = lru.New[string, template.HTML](500)
	if err != nil {
		log.Fatalf("Failed to create render cache: %v", err)
	}
}

// RenderMarkdown converts user-authored markdown to sanitized HTML.
func RenderMarkdown(source string) template.HTML {
	if cached, ok := renderCache.Get(source); ok {
		return cached
	}

	var buf bytes.Buffer
	if err := mdParser.Convert([]byte(source), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(source)) // Fallback
	}

	sanitized := policy.SanitizeBytes(buf.Bytes())
	rendered := EnhanceHTMLContent(string(sanitized))

	renderCache.Add(source, rendered)
	return rendered
}
