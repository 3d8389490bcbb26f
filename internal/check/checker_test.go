package check

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pages-generator/internal/config"
	"pages-generator/internal/plan"
	"pages-generator/internal/scan"
)

func fixturePlan(t *testing.T) *plan.Plan {
	t.Helper()

	root := t.TempDir()
	files := map[string]string{
		"readme.md":       "# Readme",
		"guides/setup.md": "# Setup",
		"guides/extra.md": "# Extra",
		"img/logo.svg":    "<svg/>",
	}

	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}

	site := config.Default()

	tree, _, err := scan.Scan(root, scan.FromSite(site))
	require.NoError(t, err)

	return plan.NewResolver(tree, site).Resolve()
}

func TestCheckerAcceptsResolvableLinks(t *testing.T) {
	c := New(fixturePlan(t))

	diags := c.Run([]PageLinks{
		{Page: "guides/setup.md", Dests: []string{
			"extra.md",
			"extra.html",
			"../readme.html",
			"../img/logo.svg",
			"../index.html",
			"..",
			"#usage",
			"https://example.com/page",
			"mailto:docs@example.com",
			"/absolute/path.md",
		}},
	})

	assert.Empty(t, diags.Errors)
}

func TestCheckerFlagsBrokenLinksWithSuggestions(t *testing.T) {
	c := New(fixturePlan(t))

	diags := c.Run([]PageLinks{
		{Page: "readme.md", Dests: []string{"guides/setp.html"}},
	})

	require.Len(t, diags.Errors, 1)

	d := diags.Errors[0]
	assert.Equal(t, "broken_link", d.Code)
	assert.Equal(t, "readme.md", d.Page)
	assert.Equal(t, "guides/setp.html", d.Path)
	require.NotEmpty(t, d.Suggestions)
	assert.Equal(t, "guides/setup.html", d.Suggestions[0])
}

func TestCheckerFlagsEscapingLinks(t *testing.T) {
	c := New(fixturePlan(t))

	diags := c.Run([]PageLinks{
		{Page: "readme.md", Dests: []string{"../elsewhere.md"}},
	})

	require.Len(t, diags.Errors, 1)
	assert.Equal(t, "broken_link", diags.Errors[0].Code)
	assert.Contains(t, diags.Errors[0].Message, "outside the source tree")
}

func TestCheckerDirectoryAndSourceLinks(t *testing.T) {
	c := New(fixturePlan(t))

	diags := c.Run([]PageLinks{
		{Page: "readme.md", Dests: []string{
			"guides/",
			"guides",
			"img/logo.svg",
			"guides/setup.md",
			"guides/setup.html#install",
		}},
	})

	assert.Empty(t, diags.Errors)
}

func TestCheckerUnknownTargetGetsNoFarSuggestions(t *testing.T) {
	c := New(fixturePlan(t))

	diags := c.Run([]PageLinks{
		{Page: "readme.md", Dests: []string{"zzzz/qqqq/wwww.pdf"}},
	})

	require.Len(t, diags.Errors, 1)
	assert.Empty(t, diags.Errors[0].Suggestions)
}
