package plan

import (
	"strings"

	"pages-generator/internal/common"
)

// Breadcrumbs builds the trail for a directory, one crumb per path
// segment. The home link is not part of the trail; it depends only on
// RelRoot and is rendered separately.
func Breadcrumbs(dirRel string) []Crumb {
	parts := common.SplitRel(dirRel)
	if common.IsEmpty(parts) {
		return nil
	}

	crumbs := make([]Crumb, 0, len(parts))

	for i, part := range parts {
		levelsUp := len(parts) - i - 1

		href := "index.html"
		if levelsUp > 0 {
			href = strings.Repeat("../", levelsUp) + "index.html"
		}

		crumbs = append(crumbs, Crumb{Label: part, Href: href})
	}

	return crumbs
}
