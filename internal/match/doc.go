// Package match provides path normalization, Levenshtein distance
// calculation, and candidate ranking for "did you mean" suggestions on
// broken links.
//
// Key functions:
//   - NormalizePath: normalizes relative paths for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - RankPaths: ranks known paths by similarity to a broken destination
package match
