package plan

import (
	"fmt"
	"path"
	"strings"

	"pages-generator/internal/common"
	"pages-generator/internal/config"
	"pages-generator/internal/scan"
)

// indexStem is the page stem whose output the directory listing owns.
const indexStem = "index"

// Resolver turns a scanned tree into a plan for one site.
type Resolver struct {
	tree *scan.Tree
	site *config.Site
}

// NewResolver creates a new Resolver.
func NewResolver(tree *scan.Tree, site *config.Site) *Resolver {
	return &Resolver{tree: tree, site: site}
}

// Resolve walks the tree in deterministic order and emits one task per
// page, listing, and asset. When two sources claim the same output file
// the later one in directory order wins, matching a plain overwrite.
func (r *Resolver) Resolve() *Plan {
	p := &Plan{
		Tasks: []Task{},
		Tree:  r.tree,
	}

	r.tree.Dirs(func(d *scan.Dir) {
		r.resolveDir(d, p)
	})

	return p
}

func (r *Resolver) resolveDir(d *scan.Dir, p *Plan) {
	relRoot := common.RelToRoot(d.RelPath)
	crumbs := Breadcrumbs(d.RelPath)

	taskByOutput := make(map[string]int, len(d.Pages))

	for _, f := range d.Pages {
		stem := f.Stem()
		out := common.JoinRel(d.RelPath, stem+".html")

		if stem == indexStem {
			p.Diagnostics.AddWarning("index_overwritten",
				"page output is owned by the directory listing", f.RelPath, out)

			continue
		}

		task := Task{
			Kind:      KindPage,
			SourceRel: f.RelPath,
			OutputRel: out,
			Title:     stem,
			RelRoot:   relRoot,
			Crumbs:    crumbs,
		}

		if i, ok := taskByOutput[out]; ok {
			p.Diagnostics.AddWarning("output_collision",
				fmt.Sprintf("%s and %s render to the same file, keeping %s",
					p.Tasks[i].SourceRel, f.RelPath, f.RelPath), f.RelPath, out)

			p.Tasks[i] = task

			continue
		}

		taskByOutput[out] = len(p.Tasks)
		p.Tasks = append(p.Tasks, task)
	}

	p.Tasks = append(p.Tasks, Task{
		Kind:      KindListing,
		SourceRel: d.RelPath,
		OutputRel: common.JoinRel(d.RelPath, "index.html"),
		Title:     r.listingTitle(d),
		RelRoot:   relRoot,
		Crumbs:    crumbs,
		Listing:   r.listing(d),
	})

	for _, f := range d.Assets {
		p.Tasks = append(p.Tasks, Task{
			Kind:      KindAsset,
			SourceRel: f.RelPath,
			OutputRel: f.RelPath,
		})
	}
}

// listingTitle is the head title of a directory index page. The root keeps
// the fixed "Home" title so deployed sites land on a stable name.
func (r *Resolver) listingTitle(d *scan.Dir) string {
	if d.RelPath == "." {
		return "Home"
	}

	return d.Name
}

func (r *Resolver) listing(d *scan.Dir) *Listing {
	heading := common.TitleWords(d.Name)
	if d.RelPath == "." {
		heading = r.site.Title
	}

	entries := make([]ListingEntry, 0, len(d.Subdirs)+len(d.Pages))

	for _, sub := range d.Subdirs {
		entries = append(entries, ListingEntry{
			Label: sub.Name + "/",
			Href:  sub.Name + "/index.html",
			Type:  "📁 Directory",
		})
	}

	for _, f := range d.Pages {
		entries = append(entries, ListingEntry{
			Label: f.Name,
			Href:  f.Stem() + ".html",
			Type:  fmt.Sprintf("📄 %s File", strings.ToUpper(path.Ext(f.Name))),
		})
	}

	return &Listing{Heading: heading, Entries: entries}
}
