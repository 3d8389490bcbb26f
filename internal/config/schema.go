package config

import (
	"pages-generator/internal/common"
)

// Site represents the root of a site configuration file.
type Site struct {
	// Version of the configuration schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Title is the heading of the root directory listing.
	Title string `yaml:"title,omitempty"`

	// Source is the documentation tree to publish.
	Source string `yaml:"source,omitempty"`

	// Output is the directory the generated site is written to. Its base
	// name is also the skip marker: directories with that name are never
	// scanned, wherever they appear in the source tree.
	Output string `yaml:"output,omitempty"`

	// BaseURL is reserved for absolute URL generation (sitemaps, feeds).
	// Generated pages always use relative links and work from any prefix.
	BaseURL string `yaml:"base_url,omitempty"`

	// CustomDomain, when set, is written to a CNAME file in the output so
	// GitHub Pages serves the site on that domain.
	CustomDomain string `yaml:"custom_domain,omitempty"`

	// Footer is the attribution part of the footer line on every page.
	Footer string `yaml:"footer,omitempty"`

	// Template is the path to a custom page template. Empty means the
	// built-in shell.
	Template string `yaml:"template,omitempty"`

	// Exclude lists glob patterns for paths that must not be published.
	// A pattern matches if it matches the slash-relative path or the base
	// name of a file or directory.
	Exclude StringOrArray `yaml:"exclude,omitempty"`

	// Markdown configures the Markdown renderer.
	Markdown MarkdownOptions `yaml:"markdown,omitempty"`

	// Assets configures copying of non-page files.
	Assets AssetOptions `yaml:"assets,omitempty"`
}

// MarkdownOptions configures the Markdown renderer.
type MarkdownOptions struct {
	// TOC enables expansion of [TOC] paragraphs into a table of contents.
	// Defaults to true.
	TOC *bool `yaml:"toc,omitempty"`

	// Highlight selects the code highlighting mode.
	Highlight HighlightMode `yaml:"highlight,omitempty"`

	// ChromaStyle is the style name used in server highlighting mode.
	ChromaStyle string `yaml:"chroma_style,omitempty"`
}

// AssetOptions configures copying of non-page files into the output tree.
type AssetOptions struct {
	// Copy enables asset copying. Defaults to true.
	Copy *bool `yaml:"copy,omitempty"`

	// Extensions lists the file extensions treated as assets.
	Extensions StringOrArray `yaml:"extensions,omitempty"`
}

// HighlightMode indicates how fenced code blocks are highlighted.
type HighlightMode string

const (
	// HighlightClient emits bare language-tagged code blocks and lets the
	// page shell highlight them with highlight.js in the browser.
	HighlightClient HighlightMode = "client"
	// HighlightServer highlights code at build time with chroma.
	HighlightServer HighlightMode = "server"
	// HighlightNone disables highlighting entirely.
	HighlightNone HighlightMode = "none"
)

// IsValid returns true if the mode is a recognized value.
func (m HighlightMode) IsValid() bool {
	return m == HighlightClient || m == HighlightServer || m == HighlightNone
}

// String returns the mode name, or "unknown" for unrecognized values.
func (m HighlightMode) String() string {
	if !m.IsValid() {
		return common.UnknownStr
	}

	return string(m)
}

// TOCEnabled reports whether [TOC] expansion is on, honoring the default.
func (m MarkdownOptions) TOCEnabled() bool {
	return m.TOC == nil || *m.TOC
}

// CopyEnabled reports whether asset copying is on, honoring the default.
func (a AssetOptions) CopyEnabled() bool {
	return a.Copy == nil || *a.Copy
}
