package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"pages-generator/internal/common"
)

// DefaultFileName is the conventional configuration file name, looked up in
// the source root when no explicit --config path is given.
const DefaultFileName = "site.yaml"

// DefaultFooter is the attribution line shown when the configuration does
// not set its own.
const DefaultFooter = "Made with ❤️ by GitHub Pages Generator"

// DefaultAssetExtensions are the file extensions copied as assets when the
// configuration does not list its own.
var DefaultAssetExtensions = []string{
	".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp", ".ico",
	".css", ".js", ".pdf",
}

// Default returns the configuration used when no file is present.
func Default() *Site {
	s := &Site{}
	applyDefaults(s)

	return s
}

// LoadFile loads and parses a YAML site file from the given path.
// A missing file is not an error: it yields the default configuration and
// found == false.
func LoadFile(path string) (s *Site, found bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), false, nil
		}

		return nil, false, fmt.Errorf("failed to read site file %s: %w", path, err)
	}

	s, err = Parse(data)
	if err != nil {
		return nil, true, err
	}

	return s, true, nil
}

// Parse parses YAML data into a Site.
func Parse(data []byte) (*Site, error) {
	var s Site

	err := yaml.Unmarshal(data, &s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse site YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&s)

	return &s, nil
}

// applyDefaults fills in default values for optional fields and normalizes
// asset extensions to lowercase dot-prefixed form.
func applyDefaults(s *Site) {
	if s.Version == "" {
		s.Version = "1"
	}

	if s.Title == "" {
		s.Title = "Documentation"
	}

	if s.Source == "" {
		s.Source = "."
	}

	if s.Output == "" {
		s.Output = "docs"
	}

	if s.Footer == "" {
		s.Footer = DefaultFooter
	}

	if s.Markdown.Highlight == "" {
		s.Markdown.Highlight = HighlightClient
	}

	if s.Markdown.ChromaStyle == "" {
		s.Markdown.ChromaStyle = "github-dark"
	}

	if len(s.Assets.Extensions) == 0 {
		s.Assets.Extensions = DefaultAssetExtensions
	}

	for i, ext := range s.Assets.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}

		s.Assets.Extensions[i] = ext
	}

	s.Exclude = StringOrArray(common.Dedupe([]string(s.Exclude)))
}

// Marshal serializes a Site to YAML.
func Marshal(s *Site) ([]byte, error) {
	return yaml.Marshal(s)
}

// WriteFile writes a Site to the given path.
func WriteFile(s *Site, path string) error {
	data, err := Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal site config: %w", err)
	}

	err = os.WriteFile(path, data, 0o644)
	if err != nil {
		return fmt.Errorf("failed to write site file %s: %w", path, err)
	}

	return nil
}
