package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pages-generator/internal/config"
)

func TestMarkdownRendersCoreConstructs(t *testing.T) {
	md := NewMarkdown(FeatureTables|FeatureStrikethrough|FeatureHeadingIDs, "")

	src := []byte(`# Getting Started

See [setup](setup.md) and ![logo](img/logo.svg).

` + "```go\nfunc main() {}\n```" + `

| a | b |
|---|---|
| 1 | 2 |

~~old~~
`)

	body, links, err := md.Render(src)
	require.NoError(t, err)

	html := string(body)
	assert.Contains(t, html, `<h1 id="getting-started">Getting Started</h1>`)
	assert.Contains(t, html, `<code class="language-go">`)
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "<del>old</del>")
	assert.Equal(t, []string{"setup.md", "img/logo.svg"}, links)
}

func TestMarkdownLinksWithoutRendering(t *testing.T) {
	md := NewMarkdown(FeatureAll, "github-dark")

	links := md.Links([]byte("[a](one.md) then ![b](img/two.svg) and [c](https://example.com)\n"))

	assert.Equal(t, []string{"one.md", "img/two.svg", "https://example.com"}, links)
}

func TestMarkdownKeepsRawHTML(t *testing.T) {
	md := NewMarkdown(FeatureRawHTML, "")

	body, _, err := md.Render([]byte("before\n\n<div class=\"note\">kept</div>\n"))
	require.NoError(t, err)

	assert.Contains(t, string(body), `<div class="note">kept</div>`)
}

func TestMarkdownDropsRawHTMLWhenDisabled(t *testing.T) {
	md := NewMarkdown(FeatureNone, "")

	body, _, err := md.Render([]byte("<script>alert(1)</script>\n"))
	require.NoError(t, err)

	assert.NotContains(t, string(body), "<script>")
}

func TestMarkdownHighlightsServerSide(t *testing.T) {
	md := NewMarkdown(FeatureHighlight, "github-dark")

	body, _, err := md.Render([]byte("```go\nfunc main() {}\n```\n"))
	require.NoError(t, err)

	// chroma emits inline styles instead of language classes
	assert.Contains(t, string(body), "<pre")
	assert.Contains(t, string(body), "style=")
	assert.NotContains(t, string(body), "language-go")
}

func TestMarkdownExpandsTOCMarker(t *testing.T) {
	md := NewMarkdown(FeatureHeadingIDs|FeatureTOC, "")

	body, _, err := md.Render([]byte("[TOC]\n\n# First\n\n## Second\n"))
	require.NoError(t, err)

	html := string(body)
	assert.NotContains(t, html, "[TOC]")
	assert.Contains(t, html, `href="#first"`)
	assert.Contains(t, html, `href="#second"`)
}

func TestMarkdownRemovesTOCMarkerWithoutHeadings(t *testing.T) {
	md := NewMarkdown(FeatureHeadingIDs|FeatureTOC, "")

	body, _, err := md.Render([]byte("[TOC]\n\nJust prose.\n"))
	require.NoError(t, err)

	assert.NotContains(t, string(body), "[TOC]")
	assert.Contains(t, string(body), "<p>Just prose.</p>")
}

func TestMarkdownTOCMarkerStaysWhenDisabled(t *testing.T) {
	md := NewMarkdown(FeatureHeadingIDs, "")

	body, _, err := md.Render([]byte("[TOC]\n\n# First\n"))
	require.NoError(t, err)

	assert.Contains(t, string(body), "[TOC]")
}

func TestFeaturesFromSite(t *testing.T) {
	site := config.Default()

	f := FeaturesFromSite(site)
	assert.True(t, f.Has(FeatureTables))
	assert.True(t, f.Has(FeatureTOC))
	assert.False(t, f.Has(FeatureHighlight))

	off := false
	site.Markdown.TOC = &off
	site.Markdown.Highlight = config.HighlightServer

	f = FeaturesFromSite(site)
	assert.False(t, f.Has(FeatureTOC))
	assert.True(t, f.Has(FeatureHighlight))
}
