package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/alecthomas/chroma/v2/styles"

	"pages-generator/internal/diagnostic"
)

// Validate validates a site configuration.
// This is a structural validation step only; filesystem problems beyond the
// custom template's existence surface later, during the build itself.
func Validate(s *Site) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if s == nil {
		res.AddError("config_is_nil", "site configuration is nil", "", "")
		return res
	}

	if s.Output == "" {
		res.AddError("empty_output", "output directory must not be empty", "", "")
	}

	if s.Output != "" && filepath.Clean(s.Output) == filepath.Clean(s.Source) {
		res.AddError("output_equals_source",
			fmt.Sprintf("output directory %q must differ from the source directory", s.Output), "", s.Output)
	}

	if !s.Markdown.Highlight.IsValid() {
		res.AddError("unknown_highlight_mode",
			fmt.Sprintf("highlight mode %q is not one of client, server, none", string(s.Markdown.Highlight)),
			"", "markdown.highlight")
	}

	if s.Markdown.Highlight == HighlightServer {
		if _, ok := styles.Registry[s.Markdown.ChromaStyle]; !ok {
			res.AddWarning("unknown_chroma_style",
				fmt.Sprintf("chroma style %q is not registered; the fallback style will be used", s.Markdown.ChromaStyle),
				"", "markdown.chroma_style")
		}
	}

	for _, pattern := range s.Exclude {
		// filepath.Match reports malformed patterns regardless of the name
		// they are probed against.
		if _, err := filepath.Match(pattern, "probe"); err != nil {
			res.AddError("bad_exclude_pattern",
				fmt.Sprintf("exclude pattern %q is malformed: %v", pattern, err), "", pattern)
		}
	}

	if s.Template != "" {
		if _, err := os.Stat(s.Template); err != nil {
			res.AddError("template_not_found",
				fmt.Sprintf("custom template %q is not readable: %v", s.Template, err), "", s.Template)
		}
	}

	if s.BaseURL != "" {
		if _, err := url.Parse(s.BaseURL); err != nil {
			res.AddWarning("bad_base_url",
				fmt.Sprintf("base_url %q does not parse as a URL: %v", s.BaseURL, err), "", s.BaseURL)
		}
	}

	return res
}
