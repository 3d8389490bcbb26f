package render

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pages-generator/internal/config"
	"pages-generator/internal/plan"
)

func fixedClock() time.Time {
	return time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
}

func TestShellWrapsBody(t *testing.T) {
	shell, err := NewShell(config.Default())
	require.NoError(t, err)

	shell.now = fixedClock

	task := plan.Task{
		Kind:    plan.KindPage,
		Title:   "setup",
		RelRoot: "..",
		Crumbs:  []plan.Crumb{{Label: "guides", Href: "index.html"}},
	}

	page, err := shell.Page(task, []byte("<h1>Setup</h1>"))
	require.NoError(t, err)

	html := string(page)
	assert.Contains(t, html, "<title>setup</title>")
	assert.Contains(t, html, `<a href="../index.html" class="home-btn">🏠</a>`)
	assert.Contains(t, html, `<a href="../index.html">🏠 Home</a>`)
	assert.Contains(t, html, `<a href="index.html">guides</a>`)
	assert.Contains(t, html, "<h1>Setup</h1>")
	assert.Contains(t, html,
		"Generated on 2025-03-14 15:09:26 | Made with ❤️ by GitHub Pages Generator")
}

func TestShellClientHighlightScripts(t *testing.T) {
	shell, err := NewShell(config.Default())
	require.NoError(t, err)

	page, err := shell.Page(plan.Task{Title: "x", RelRoot: "."}, []byte("body"))
	require.NoError(t, err)

	assert.Contains(t, string(page), "highlight.min.js")
	assert.Contains(t, string(page), "hljs.highlightElement")
}

func TestShellServerModeOmitsClientScripts(t *testing.T) {
	site := config.Default()
	site.Markdown.Highlight = config.HighlightServer

	shell, err := NewShell(site)
	require.NoError(t, err)

	page, err := shell.Page(plan.Task{Title: "x", RelRoot: "."}, []byte("body"))
	require.NoError(t, err)

	html := string(page)
	assert.NotContains(t, html, "highlight.min.js")
	assert.NotContains(t, html, "hljs.highlightElement")
	assert.Contains(t, html, "copy-btn")
}

func TestShellCustomFooter(t *testing.T) {
	site := config.Default()
	site.Footer = "Team Handbook"

	shell, err := NewShell(site)
	require.NoError(t, err)

	shell.now = fixedClock

	page, err := shell.Page(plan.Task{Title: "x", RelRoot: "."}, nil)
	require.NoError(t, err)

	assert.Contains(t, string(page), "Generated on 2025-03-14 15:09:26 | Team Handbook")
}

func TestShellCustomTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shell.html")
	tmpl := "<!DOCTYPE html><title>{{.Title}}</title><main>{{.Content}}</main>"
	require.NoError(t, os.WriteFile(path, []byte(tmpl), 0o644))

	site := config.Default()
	site.Template = path

	shell, err := NewShell(site)
	require.NoError(t, err)

	page, err := shell.Page(plan.Task{Title: "hello", RelRoot: "."}, []byte("<p>hi</p>"))
	require.NoError(t, err)

	assert.Equal(t, "<!DOCTYPE html><title>hello</title><main><p>hi</p></main>", string(page))
}

func TestShellMissingTemplateFails(t *testing.T) {
	site := config.Default()
	site.Template = filepath.Join(t.TempDir(), "absent.html")

	_, err := NewShell(site)
	assert.Error(t, err)
}
