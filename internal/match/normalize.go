package match

import "strings"

// NormalizePath normalizes a relative path for fuzzy matching.
// The normalization pipeline:
//  1. Backslashes become forward slashes.
//  2. Leading "./" and "/" prefixes are trimmed.
//  3. Case-fold to lower.
//
// Extensions are kept: "Chapter.MD" and "chapter.md" normalize equal, while
// "chapter.md" and "chapter.txt" stay distinguishable.
func NormalizePath(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")

	for {
		switch {
		case strings.HasPrefix(p, "./"):
			p = p[2:]
		case strings.HasPrefix(p, "/"):
			p = p[1:]
		default:
			return strings.ToLower(p)
		}
	}
}

// BaseName returns the last path component of an already-normalized path.
func BaseName(p string) string {
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		return p[i+1:]
	}

	return p
}
