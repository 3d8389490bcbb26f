package render

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/toc"
)

// tocMarker is the paragraph text that gets replaced by a table of
// contents for the surrounding document.
const tocMarker = "[TOC]"

// tocTransformerPriority runs after the auto-heading-ID transformer so the
// generated list links to final heading anchors.
const tocTransformerPriority = 200

// tocTransformer replaces [TOC] paragraphs with a nested list of the
// document's headings. Documents without headings get the marker removed.
type tocTransformer struct{}

func (t *tocTransformer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	src := reader.Source()

	var markers []*ast.Paragraph

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		p, ok := n.(*ast.Paragraph)
		if ok && string(paragraphSource(p, src)) == tocMarker {
			markers = append(markers, p)
		}

		return ast.WalkContinue, nil
	})

	if len(markers) == 0 {
		return
	}

	tree, err := toc.Inspect(doc, src)
	if err != nil {
		return
	}

	for _, p := range markers {
		parent := p.Parent()

		// Each marker gets its own list node; one node cannot sit at
		// two places in the tree.
		list := toc.RenderList(tree)
		if list == nil {
			parent.RemoveChild(parent, p)
			continue
		}

		parent.ReplaceChild(parent, p, list)
	}
}

// paragraphSource returns the trimmed raw source text of a paragraph.
func paragraphSource(p *ast.Paragraph, src []byte) []byte {
	var buf bytes.Buffer

	lines := p.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(src))
	}

	return bytes.TrimSpace(buf.Bytes())
}
