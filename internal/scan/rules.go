package scan

import (
	"path"
	"strings"

	"pages-generator/internal/config"
)

// PageExtensions are the source extensions rendered to HTML.
// Plain-text files go through the Markdown renderer too, so a stray
// notes.txt still becomes a readable page.
var PageExtensions = map[string]struct{}{
	".md":  {},
	".txt": {},
}

// Rules decides which parts of the source tree enter the model.
type Rules struct {
	// SkipName is the output directory's base name; directories with this
	// name are never scanned, wherever they appear.
	SkipName string
	// Excludes are glob patterns matched against the slash-relative path
	// and the base name.
	Excludes []string
	// AssetExts are the extensions copied as assets.
	AssetExts map[string]struct{}
	// CopyAssets disables asset collection entirely when false.
	CopyAssets bool
}

// FromSite builds scan rules from a site configuration.
func FromSite(s *config.Site) Rules {
	exts := make(map[string]struct{}, len(s.Assets.Extensions))
	for _, ext := range s.Assets.Extensions {
		if ext != "" {
			exts[ext] = struct{}{}
		}
	}

	return Rules{
		SkipName:   path.Base(strings.ReplaceAll(s.Output, "\\", "/")),
		Excludes:   s.Exclude,
		AssetExts:  exts,
		CopyAssets: s.Assets.CopyEnabled(),
	}
}

// SkipDir reports whether a directory must be skipped.
func (r Rules) SkipDir(rel, name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}

	if r.SkipName != "" && name == r.SkipName {
		return true
	}

	return r.excluded(rel, name)
}

// Classify decides whether a file enters the model and as what kind.
func (r Rules) Classify(rel, name string) (FileKind, bool) {
	if strings.HasPrefix(name, ".") {
		return 0, false
	}

	if r.excluded(rel, name) {
		return 0, false
	}

	ext := strings.ToLower(path.Ext(name))

	if _, ok := PageExtensions[ext]; ok {
		return FilePage, true
	}

	if r.CopyAssets {
		if _, ok := r.AssetExts[ext]; ok {
			return FileAsset, true
		}
	}

	return 0, false
}

// excluded reports whether rel or name matches any exclude pattern.
// Malformed patterns were rejected by config validation; path.Match errors
// here are treated as non-matches.
func (r Rules) excluded(rel, name string) bool {
	for _, pattern := range r.Excludes {
		if ok, _ := path.Match(pattern, rel); ok {
			return true
		}

		if ok, _ := path.Match(pattern, name); ok {
			return true
		}
	}

	return false
}
