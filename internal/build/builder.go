package build

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"pages-generator/internal/check"
	"pages-generator/internal/config"
	"pages-generator/internal/diagnostic"
	"pages-generator/internal/manifest"
	"pages-generator/internal/plan"
	"pages-generator/internal/render"
	"pages-generator/internal/scan"
)

// Version is the generator version, shown by --version and stamped into
// build manifests.
const Version = "0.1.0"

// Builder runs site builds for one configuration.
type Builder struct {
	site *config.Site

	logger      Logger
	now         func() time.Time
	incremental bool
	checkLinks  bool
}

// Stats summarizes one build.
type Stats struct {
	// Pages is the number of rendered page documents.
	Pages int
	// Listings is the number of written directory index pages.
	Listings int
	// Assets is the number of copied asset files.
	Assets int
	// Skipped counts outputs reused from the previous build.
	Skipped int
	// Warnings is the number of warning diagnostics on the result.
	Warnings int
	// Duration is the wall-clock build time.
	Duration time.Duration
}

// Result carries everything a build produced besides the output files.
type Result struct {
	Stats       Stats
	Plan        *plan.Plan
	Diagnostics diagnostic.Diagnostics
}

// run carries the working state of one Build invocation.
type run struct {
	md     *render.Markdown
	shell  *render.Shell
	writer *render.Writer
	prev   *manifest.Manifest
	next   *manifest.Manifest
	res    *Result
	links  []check.PageLinks
}

// outPath maps a slash-relative output path to its filesystem location.
func (r *run) outPath(rel string) string {
	return filepath.Join(r.writer.Root(), filepath.FromSlash(rel))
}

// New creates a Builder for the given site configuration. The
// configuration is expected to have passed config.Validate.
func New(site *config.Site, opts ...Option) (*Builder, error) {
	if site == nil {
		return nil, errors.New("site configuration must not be nil")
	}

	b := &Builder{
		site:   site,
		logger: nopLogger{},
		now:    time.Now,
	}

	for _, opt := range opts {
		err := opt(b)
		if err != nil {
			return nil, fmt.Errorf("applying builder option: %w", err)
		}
	}

	return b, nil
}

// Build generates the site. The context is honored between tasks, so a
// canceled build leaves a partial output tree but returns promptly.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	start := b.now()
	res := &Result{}

	configSum, err := b.fingerprint()
	if err != nil {
		return nil, err
	}

	prev := b.loadPrevious(configSum, &res.Diagnostics)

	r := &run{
		writer: render.NewWriter(b.site.Output),
		prev:   prev,
		next:   manifest.New(configSum),
		res:    res,
	}
	r.next.Generator = Version

	if !b.incremental {
		err = r.writer.Clean()
		if err != nil {
			return nil, err
		}
	}

	err = b.writeMarkers(r.writer)
	if err != nil {
		return nil, err
	}

	tree, scanDiags, err := scan.Scan(b.site.Source, scan.FromSite(b.site))
	if err != nil {
		return nil, err
	}

	res.Diagnostics.Merge(*scanDiags)

	p := plan.NewResolver(tree, b.site).Resolve()
	res.Plan = p
	res.Diagnostics.Merge(p.Diagnostics)

	// Structural findings from scanning and planning surface in the log
	// as well as on the result.
	for _, w := range res.Diagnostics.Warnings {
		b.logger.Warn(w.String())
	}

	r.md = render.NewMarkdown(render.FeaturesFromSite(b.site), b.site.Markdown.ChromaStyle)

	r.shell, err = render.NewShell(b.site)
	if err != nil {
		return nil, err
	}

	r.shell.SetClock(b.now)

	for _, task := range p.Tasks {
		err = ctx.Err()
		if err != nil {
			return res, fmt.Errorf("build canceled: %w", err)
		}

		switch task.Kind {
		case plan.KindPage:
			b.buildPage(task, r)
		case plan.KindListing:
			b.buildListing(task, r)
		case plan.KindAsset:
			b.buildAsset(task, r)
		}
	}

	if b.checkLinks {
		b.reportBrokenLinks(p, r)
	}

	if r.prev != nil {
		b.removeStale(r)
	}

	err = r.next.WriteFile(filepath.Join(b.site.Output, manifest.FileName))
	if err != nil {
		// Only future incremental builds suffer; this one is complete.
		res.Diagnostics.AddWarning("manifest_write_failed", err.Error(), "", manifest.FileName)
	}

	res.Stats.Warnings = len(res.Diagnostics.Warnings)
	res.Stats.Duration = b.now().Sub(start)

	b.logger.Info("build complete",
		"pages", res.Stats.Pages,
		"listings", res.Stats.Listings,
		"assets", res.Stats.Assets,
		"skipped", res.Stats.Skipped,
		"warnings", res.Stats.Warnings,
		"duration", res.Stats.Duration.Round(time.Millisecond))

	return res, nil
}

// CheckLinks scans and plans the site, collects every link destination
// from the page sources, and resolves them without writing any output.
// Broken links are error diagnostics on the result.
func (b *Builder) CheckLinks(ctx context.Context) (*Result, error) {
	res := &Result{}

	tree, scanDiags, err := scan.Scan(b.site.Source, scan.FromSite(b.site))
	if err != nil {
		return nil, err
	}

	res.Diagnostics.Merge(*scanDiags)

	p := plan.NewResolver(tree, b.site).Resolve()
	res.Plan = p
	res.Diagnostics.Merge(p.Diagnostics)

	md := render.NewMarkdown(render.FeaturesFromSite(b.site), b.site.Markdown.ChromaStyle)

	var links []check.PageLinks

	for _, task := range p.Tasks {
		if task.Kind != plan.KindPage {
			continue
		}

		err = ctx.Err()
		if err != nil {
			return res, fmt.Errorf("check canceled: %w", err)
		}

		src, err := os.ReadFile(b.sourcePath(task.SourceRel))
		if err != nil {
			res.Diagnostics.AddWarning("page_failed",
				fmt.Sprintf("reading source: %v", err), task.SourceRel, "")

			continue
		}

		links = append(links, check.PageLinks{Page: task.SourceRel, Dests: md.Links(src)})
	}

	res.Diagnostics.Merge(*check.New(p).Run(links))
	res.Stats.Warnings = len(res.Diagnostics.Warnings)

	return res, nil
}

// buildPage renders one source page into the output tree. Failures are
// warnings: the page is skipped and the build moves on.
func (b *Builder) buildPage(task plan.Task, r *run) {
	src, err := os.ReadFile(b.sourcePath(task.SourceRel))
	if err != nil {
		b.skipTask(task, fmt.Sprintf("reading source: %v", err), r)

		return
	}

	sum := manifest.Checksum(src)

	if r.prev.UpToDate(task.OutputRel, task.SourceRel, sum, r.outPath(task.OutputRel)) {
		r.next.Add(task.OutputRel, task.SourceRel, sum)
		r.res.Stats.Skipped++

		if b.checkLinks {
			// Reused pages still contribute their links to the check.
			r.links = append(r.links, check.PageLinks{Page: task.SourceRel, Dests: r.md.Links(src)})
		}

		b.logger.Debug("page up to date", "source", task.SourceRel)

		return
	}

	body, links, err := r.md.Render(src)
	if err != nil {
		b.skipTask(task, fmt.Sprintf("rendering: %v", err), r)

		return
	}

	if b.checkLinks {
		r.links = append(r.links, check.PageLinks{Page: task.SourceRel, Dests: links})
	}

	page, err := r.shell.Page(task, body)
	if err != nil {
		b.skipTask(task, fmt.Sprintf("assembling page: %v", err), r)

		return
	}

	err = r.writer.WriteFile(task.OutputRel, page)
	if err != nil {
		b.skipTask(task, err.Error(), r)

		return
	}

	r.next.Add(task.OutputRel, task.SourceRel, sum)
	r.res.Stats.Pages++
	b.logger.Info("rendered page", "source", task.SourceRel, "output", task.OutputRel)
}

// buildListing writes one directory index page. Listings never carry a
// checksum and are regenerated on every build, incremental or not.
func (b *Builder) buildListing(task plan.Task, r *run) {
	page, err := r.shell.Page(task, render.ListingBody(task.Listing))
	if err != nil {
		b.skipTask(task, fmt.Sprintf("assembling listing: %v", err), r)

		return
	}

	err = r.writer.WriteFile(task.OutputRel, page)
	if err != nil {
		b.skipTask(task, err.Error(), r)

		return
	}

	r.next.Add(task.OutputRel, "", "")
	r.res.Stats.Listings++
	b.logger.Info("wrote listing", "dir", task.SourceRel, "output", task.OutputRel)
}

// buildAsset copies one static file into the output tree.
func (b *Builder) buildAsset(task plan.Task, r *run) {
	srcPath := b.sourcePath(task.SourceRel)

	sum, err := manifest.ChecksumFile(srcPath)
	if err != nil {
		b.skipTask(task, err.Error(), r)

		return
	}

	if r.prev.UpToDate(task.OutputRel, task.SourceRel, sum, r.outPath(task.OutputRel)) {
		r.next.Add(task.OutputRel, task.SourceRel, sum)
		r.res.Stats.Skipped++
		b.logger.Debug("asset up to date", "source", task.SourceRel)

		return
	}

	err = r.writer.CopyFile(task.OutputRel, srcPath)
	if err != nil {
		b.skipTask(task, err.Error(), r)

		return
	}

	r.next.Add(task.OutputRel, task.SourceRel, sum)
	r.res.Stats.Assets++
	b.logger.Debug("copied asset", "source", task.SourceRel)
}

// skipTask records a task failure as a warning and logs it.
func (b *Builder) skipTask(task plan.Task, reason string, r *run) {
	code := "page_failed"

	switch task.Kind {
	case plan.KindListing:
		code = "listing_failed"
	case plan.KindAsset:
		code = "asset_failed"
	}

	r.res.Diagnostics.AddWarning(code, reason, task.SourceRel, task.OutputRel)
	b.logger.Warn("skipping task", "kind", task.Kind, "source", task.SourceRel, "reason", reason)
}

// reportBrokenLinks runs the link checker over the collected destinations
// and downgrades its findings to warnings: a broken link must not fail a
// build, only the dedicated check command does that.
func (b *Builder) reportBrokenLinks(p *plan.Plan, r *run) {
	found := check.New(p).Run(r.links)

	for _, d := range found.Errors {
		d.Severity = diagnostic.SeverityWarning
		r.res.Diagnostics.Add(d)
		b.logger.Warn("broken link", "page", d.Page, "destination", d.Path)
	}
}

// removeStale deletes outputs recorded by the previous build that no task
// produced this time, so renamed and deleted sources disappear from the
// published tree. Emptied directories are left in place.
func (b *Builder) removeStale(r *run) {
	for _, e := range r.prev.Entries {
		if _, ok := r.next.Lookup(e.Output); ok {
			continue
		}

		err := os.Remove(r.outPath(e.Output))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			b.logger.Warn("could not remove stale output", "output", e.Output, "error", err)

			continue
		}

		b.logger.Debug("removed stale output", "output", e.Output)
	}
}

// writeMarkers drops the GitHub Pages control files into the output root:
// .nojekyll always, CNAME when a custom domain is configured.
func (b *Builder) writeMarkers(w *render.Writer) error {
	err := w.Touch(".nojekyll")
	if err != nil {
		return err
	}

	if b.site.CustomDomain != "" {
		err = w.WriteFile("CNAME", []byte(b.site.CustomDomain+"\n"))
		if err != nil {
			return err
		}
	}

	return nil
}

// fingerprint hashes everything that invalidates previous outputs
// wholesale: the effective configuration, the custom page template, and
// the generator version (the built-in template only changes with it).
func (b *Builder) fingerprint() (string, error) {
	data, err := config.Marshal(b.site)
	if err != nil {
		return "", fmt.Errorf("fingerprinting configuration: %w", err)
	}

	data = append(data, Version...)

	if b.site.Template != "" {
		tmpl, err := os.ReadFile(b.site.Template)
		if err != nil {
			return "", fmt.Errorf("reading page template: %w", err)
		}

		data = append(data, tmpl...)
	}

	return manifest.Checksum(data), nil
}

// loadPrevious returns the manifest of the last build when incremental
// reuse is both requested and safe. Any load problem degrades to a full
// rebuild, never to a failed one.
func (b *Builder) loadPrevious(configSum string, diags *diagnostic.Diagnostics) *manifest.Manifest {
	if !b.incremental {
		return nil
	}

	prev, err := manifest.Load(filepath.Join(b.site.Output, manifest.FileName))
	if err != nil {
		diags.AddWarning("manifest_unreadable",
			fmt.Sprintf("previous build manifest is unreadable, rebuilding everything: %v", err),
			"", manifest.FileName)

		return nil
	}

	if prev == nil {
		b.logger.Debug("no previous manifest, building everything")

		return nil
	}

	if prev.ConfigSum != configSum {
		b.logger.Info("configuration changed, rebuilding everything")

		return nil
	}

	return prev
}

// sourcePath maps a slash-relative source path to its filesystem location.
func (b *Builder) sourcePath(rel string) string {
	return filepath.Join(b.site.Source, filepath.FromSlash(rel))
}
