package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Markdown converts page sources into HTML body fragments.
type Markdown struct {
	md goldmark.Markdown
}

// NewMarkdown assembles a goldmark instance for the given feature set.
// The chroma style name is only consulted when FeatureHighlight is set.
func NewMarkdown(features FeatureEnum, chromaStyle string) *Markdown {
	var exts []goldmark.Extender

	if features.Has(FeatureTables) {
		exts = append(exts, extension.Table)
	}

	if features.Has(FeatureStrikethrough) {
		exts = append(exts, extension.Strikethrough)
	}

	if features.Has(FeatureHighlight) {
		exts = append(exts, highlighting.NewHighlighting(
			highlighting.WithStyle(chromaStyle),
		))
	}

	var parserOpts []parser.Option

	if features.Has(FeatureHeadingIDs) {
		parserOpts = append(parserOpts, parser.WithAutoHeadingID())
	}

	if features.Has(FeatureTOC) {
		parserOpts = append(parserOpts, parser.WithASTTransformers(
			util.Prioritized(&tocTransformer{}, tocTransformerPriority),
		))
	}

	var rendererOpts []renderer.Option

	if features.Has(FeatureRawHTML) {
		rendererOpts = append(rendererOpts, html.WithUnsafe())
	}

	return &Markdown{md: goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(parserOpts...),
		goldmark.WithRendererOptions(rendererOpts...),
	)}
}

// Render converts one source document to an HTML fragment and returns the
// raw link and image destinations found in it, in document order.
func (m *Markdown) Render(src []byte) (body []byte, links []string, err error) {
	doc := m.md.Parser().Parse(text.NewReader(src))
	links = linkDestinations(doc)

	var buf bytes.Buffer

	err = m.md.Renderer().Render(&buf, src, doc)
	if err != nil {
		return nil, nil, fmt.Errorf("rendering markdown: %w", err)
	}

	return buf.Bytes(), links, nil
}

// Links parses one source document and returns its link and image
// destinations without rendering. Incremental builds use it to keep link
// checking complete for pages whose output is reused.
func (m *Markdown) Links(src []byte) []string {
	return linkDestinations(m.md.Parser().Parse(text.NewReader(src)))
}

func linkDestinations(doc ast.Node) []string {
	var links []string

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch v := n.(type) {
		case *ast.Link:
			links = append(links, string(v.Destination))
		case *ast.Image:
			links = append(links, string(v.Destination))
		}

		return ast.WalkContinue, nil
	})

	return links
}
