package plan

import (
	"pages-generator/internal/diagnostic"
	"pages-generator/internal/scan"
)

// Plan is the final output of resolution. It contains everything needed
// to render and write the site.
type Plan struct {
	// Tasks is the ordered task list; each output file is written by
	// exactly one task.
	Tasks []Task
	// Tree holds the scanned source to allow path lookups later on.
	Tree *scan.Tree
	// Diagnostics contains all warnings from resolution.
	Diagnostics diagnostic.Diagnostics
}

// Task is one unit of build work.
type Task struct {
	// Kind selects the producer for this task.
	Kind Kind
	// SourceRel is the slash-relative source path. Listings carry the
	// directory path here, since the directory is what they render.
	SourceRel string
	// OutputRel is the slash-relative output path.
	OutputRel string
	// Title is the document title used in the HTML head.
	Title string
	// RelRoot is the relative path from the output file's directory back
	// to the site root, "." at the root.
	RelRoot string
	// Crumbs is the breadcrumb trail excluding the leading home link,
	// one crumb per directory level.
	Crumbs []Crumb
	// Listing carries the directory rows for listing tasks, nil otherwise.
	Listing *Listing
}

// Crumb is one breadcrumb link.
type Crumb struct {
	// Label is the raw directory name.
	Label string
	// Href is relative to the page carrying the trail.
	Href string
}

// Listing is the body content of a directory index page.
type Listing struct {
	// Heading is the title-cased directory name shown above the rows.
	Heading string
	// Entries are the subdirectory and page rows, directories first.
	Entries []ListingEntry
}

// ListingEntry is one row of a directory index page.
type ListingEntry struct {
	// Label is the link text; directories carry a trailing slash.
	Label string
	// Href is relative to the listing page.
	Href string
	// Type is the human-readable row type shown under the link.
	Type string
}

// CountByKind returns how many tasks the plan holds per kind,
// indexed by Kind.
func (p *Plan) CountByKind() [KindTotal]int {
	var counts [KindTotal]int

	for _, t := range p.Tasks {
		counts[t.Kind]++
	}

	return counts
}

// Outputs returns every output path the plan writes, in task order.
func (p *Plan) Outputs() []string {
	outputs := make([]string, len(p.Tasks))
	for i, t := range p.Tasks {
		outputs[i] = t.OutputRel
	}

	return outputs
}
