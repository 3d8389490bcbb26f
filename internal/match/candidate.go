package match

import "sort"

// Candidate represents a known path that may be what a broken link meant.
type Candidate struct {
	// Path is the candidate in its original (non-normalized) form.
	Path string
	// Score is the similarity to the broken destination (0-1, higher is better).
	Score float64
}

// RankPaths ranks known paths by similarity to a broken destination.
// Both the destination and the candidates are normalized before scoring,
// and a candidate scores with the better of its full path and its base name,
// so "fixtures.md" still suggests "chapters/fixtures.md".
//
// Results are sorted by score (descending), ties broken by path, and cut to
// at most limit entries with a score of at least minScore.
func RankPaths(dest string, known []string, limit int, minScore float64) []Candidate {
	destNorm := NormalizePath(dest)
	if destNorm == "" || len(known) == 0 || limit <= 0 {
		return nil
	}

	candidates := make([]Candidate, 0, len(known))

	for _, k := range known {
		kNorm := NormalizePath(k)
		if kNorm == "" {
			continue
		}

		score := LevenshteinNormalized(destNorm, kNorm)

		if baseScore := LevenshteinNormalized(BaseName(destNorm), BaseName(kNorm)); baseScore > score {
			// Weight base-name matches slightly below a full-path match of
			// the same quality so exact paths always rank first.
			score = baseScore * 0.95
		}

		if score < minScore {
			continue
		}

		candidates = append(candidates, Candidate{Path: k, Score: score})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}

		return candidates[i].Path < candidates[j].Path
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	return candidates
}
