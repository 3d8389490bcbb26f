package check

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"pages-generator/internal/diagnostic"
	"pages-generator/internal/match"
	"pages-generator/internal/plan"
	"pages-generator/internal/scan"
)

const (
	// maxSuggestions caps the "did you mean" list per broken link.
	maxSuggestions = 3
	// minSuggestionScore drops candidates too far from the destination.
	minSuggestionScore = 0.5
)

// PageLinks pairs a rendered page with the raw destinations found in it.
type PageLinks struct {
	// Page is the slash-relative source path of the linking page.
	Page string
	// Dests are the raw link and image destinations, in document order.
	Dests []string
}

// Checker resolves link destinations against one site plan.
type Checker struct {
	tree    *scan.Tree
	outputs map[string]struct{}
	known   []string
}

// New creates a checker for the given plan.
func New(p *plan.Plan) *Checker {
	outputs := p.Outputs()

	set := make(map[string]struct{}, len(outputs))
	for _, out := range outputs {
		set[out] = struct{}{}
	}

	known := p.Tree.Paths()
	known = append(known, outputs...)

	return &Checker{
		tree:    p.Tree,
		outputs: set,
		known:   known,
	}
}

// Run checks every collected destination and returns broken_link errors
// for those that resolve to nothing the site publishes.
func (c *Checker) Run(pages []PageLinks) *diagnostic.Diagnostics {
	diags := &diagnostic.Diagnostics{}

	for _, pl := range pages {
		base := path.Dir(pl.Page)

		for _, dest := range pl.Dests {
			c.checkOne(base, pl.Page, dest, diags)
		}
	}

	return diags
}

func (c *Checker) checkOne(base, page, dest string, diags *diagnostic.Diagnostics) {
	target, ok := localTarget(dest)
	if !ok {
		return
	}

	resolved := path.Join(base, target)

	if resolved == ".." || strings.HasPrefix(resolved, "../") {
		diags.Add(diagnostic.Diagnostic{
			Severity: diagnostic.SeverityError,
			Code:     "broken_link",
			Message:  "link points outside the source tree",
			Page:     page,
			Path:     dest,
		})

		return
	}

	if c.resolves(resolved) {
		return
	}

	d := diagnostic.Diagnostic{
		Severity: diagnostic.SeverityError,
		Code:     "broken_link",
		Message:  fmt.Sprintf("link target %s does not exist", resolved),
		Page:     page,
		Path:     dest,
	}

	for _, cand := range match.RankPaths(resolved, c.known, maxSuggestions, minSuggestionScore) {
		d.Suggestions = append(d.Suggestions, cand.Path)
	}

	diags.Add(d)
}

// localTarget extracts the verifiable path part of a destination.
// External URLs, absolute paths, and pure fragments return ok == false.
func localTarget(dest string) (string, bool) {
	dest = strings.TrimSpace(dest)
	if dest == "" || strings.HasPrefix(dest, "#") {
		return "", false
	}

	u, err := url.Parse(dest)
	if err != nil {
		return "", false
	}

	if u.Scheme != "" || u.Host != "" {
		return "", false
	}

	// Fragment and query are already stripped by the parse.
	target := u.Path
	if target == "" || strings.HasPrefix(target, "/") {
		return "", false
	}

	return target, true
}

// resolves reports whether a root-relative target names something the
// site publishes: a source file, a planned output, or a directory (every
// directory gets an index page).
func (c *Checker) resolves(rel string) bool {
	if rel == "" || rel == "." {
		return true
	}

	if c.tree.LookupDir(rel) != nil || c.tree.LookupFile(rel) != nil {
		return true
	}

	_, ok := c.outputs[rel]

	return ok
}
