// Package config provides YAML schema definitions, parsing, defaults, and
// validation for the site configuration file.
//
// Everything is optional: a missing or empty file yields a fully usable
// default configuration.
//
// # Schema Overview
//
// The site file (conventionally "site.yaml" in the source root) has the
// following structure:
//
//	version: "1"
//	title: Documentation       # root listing heading
//	source: .                  # documentation tree to publish
//	output: docs               # generated site directory
//	base_url: ""               # reserved for absolute URL generation
//	custom_domain: ""          # written to CNAME when set
//	footer: ""                 # appended to the page footer
//	template: ""               # optional custom page template file
//	exclude:                   # glob patterns, matched against the
//	  - drafts/*               # slash-relative path and the base name
//	markdown:
//	  toc: true                # expand [TOC] markers
//	  highlight: client        # client | server | none
//	  chroma_style: github-dark
//	assets:
//	  copy: true
//	  extensions: [.png, .svg, .css]
//
// # Precedence
//
// Command-line arguments override file values, which override defaults.
// The merge is performed by the caller (cmd) via Site field assignment after
// LoadFile; this package only guarantees that defaults are applied on every
// parse.
package config
