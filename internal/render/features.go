package render

import "pages-generator/internal/config"

type FeatureEnum int

const (
	FeatureTables        FeatureEnum = 1 << iota // GitHub-style pipe tables
	FeatureStrikethrough                         // ~~text~~ strikethrough spans
	FeatureHeadingIDs                            // stable id attributes on headings
	FeatureTOC                                   // [TOC] paragraph expansion (needs FeatureHeadingIDs for working anchors)
	FeatureRawHTML                               // raw HTML blocks passed through unescaped
	FeatureHighlight                             // build-time syntax highlighting via chroma

	FeatureAll  = (1 << iota) - 1 // all features combined
	FeatureNone = 0               // no features selected
)

// Has reports whether all bits of the given feature set are enabled.
func (f FeatureEnum) Has(bits FeatureEnum) bool {
	return f&bits == bits
}

// FeaturesFromSite derives the renderer feature set from a site
// configuration. Tables, strikethrough, heading IDs, and raw HTML are
// always on.
func FeaturesFromSite(s *config.Site) FeatureEnum {
	f := FeatureTables | FeatureStrikethrough | FeatureHeadingIDs | FeatureRawHTML

	if s.Markdown.TOCEnabled() {
		f |= FeatureTOC
	}

	if s.Markdown.Highlight == config.HighlightServer {
		f |= FeatureHighlight
	}

	return f
}
