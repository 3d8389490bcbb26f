// Package main provides the CLI entrypoint for pages-generator.
//
// pages-generator turns a documentation tree into a static site ready for
// GitHub Pages:
//   - Renders Markdown and plain-text pages into a self-contained HTML shell
//   - Writes directory listings, copies assets, drops the .nojekyll marker
//   - Reuses unchanged outputs across builds and checks page links
//   - Previews the generated site locally, rebuilding as sources change
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/alecthomas/kingpin.v2"

	"pages-generator/internal/build"
	"pages-generator/internal/config"
	"pages-generator/internal/manifest"
	"pages-generator/internal/scan"
	"pages-generator/internal/serve"
)

type arguments struct {
	command string

	quiet   bool
	verbose bool

	configPath string
	source     string
	output     string

	incremental bool
	check       bool
	dumpPlan    bool

	addr  string
	watch bool

	force bool
	dir   string
}

func parseArgs(args []string) (*arguments, error) {
	app := kingpin.New("pages-generator", "Static documentation site generator for GitHub Pages.")
	app.Version(build.Version)
	app.HelpFlag.Short('h')

	quiet := app.Flag("quiet", "Only print warnings and errors.").Short('q').Bool()
	verbose := app.Flag("verbose", "Print debug output.").Short('v').Bool()

	buildCmd := app.Command("build", "Render the documentation tree into a static site.").Default()
	buildSource := buildCmd.Arg("source", "Documentation tree to publish.").String()
	buildOutput := buildCmd.Arg("output", "Directory the site is written to.").String()
	buildConfig := buildCmd.Flag("config", "Path to the site configuration file.").Short('c').String()
	incremental := buildCmd.Flag("incremental", "Reuse unchanged outputs from the previous build.").Bool()
	checkFlag := buildCmd.Flag("check", "Report broken page links as warnings.").Bool()
	dumpPlan := buildCmd.Flag("dump-plan", "Dump the resolved build plan after building.").Bool()

	serveCmd := app.Command("serve", "Preview the generated site locally.")
	serveOutput := serveCmd.Arg("output", "Generated site directory.").String()
	addr := serveCmd.Flag("addr", "Listen address.").Default(serve.DefaultAddr).String()
	watch := serveCmd.Flag("watch", "Rebuild when the source tree changes.").Bool()
	serveSource := serveCmd.Flag("source", "Source tree watched for --watch rebuilds.").String()
	serveConfig := serveCmd.Flag("config", "Path to the site configuration file.").Short('c').String()

	checkCmd := app.Command("check", "Verify that page links resolve within the site.")
	checkSource := checkCmd.Arg("source", "Documentation tree to check.").String()
	checkConfig := checkCmd.Flag("config", "Path to the site configuration file.").Short('c').String()

	cleanCmd := app.Command("clean", "Remove the generated site directory.")
	cleanOutput := cleanCmd.Arg("output", "Generated site directory.").String()
	cleanConfig := cleanCmd.Flag("config", "Path to the site configuration file.").Short('c').String()
	cleanForce := cleanCmd.Flag("force", "Remove the directory even without generator markers.").Bool()

	initCmd := app.Command("init", "Write a starter site configuration file.")
	initDir := initCmd.Arg("dir", "Directory to place the configuration in.").Default(".").String()
	initForce := initCmd.Flag("force", "Overwrite an existing configuration file.").Bool()

	command, err := app.Parse(args)
	if err != nil {
		return nil, err
	}

	switch {
	case *quiet && *verbose:
		return nil, errors.New("cannot set both --quiet and --verbose")
	case command == serveCmd.FullCommand() && *serveSource != "" && !*watch:
		return nil, errors.New("cannot set --source without --watch")
	}

	a := &arguments{command: command, quiet: *quiet, verbose: *verbose}

	switch command {
	case buildCmd.FullCommand():
		a.configPath = *buildConfig
		a.source = *buildSource
		a.output = *buildOutput
		a.incremental = *incremental
		a.check = *checkFlag
		a.dumpPlan = *dumpPlan
	case serveCmd.FullCommand():
		a.configPath = *serveConfig
		a.source = *serveSource
		a.output = *serveOutput
		a.addr = *addr
		a.watch = *watch
	case checkCmd.FullCommand():
		a.configPath = *checkConfig
		a.source = *checkSource
	case cleanCmd.FullCommand():
		a.configPath = *cleanConfig
		a.output = *cleanOutput
		a.force = *cleanForce
	case initCmd.FullCommand():
		a.dir = *initDir
		a.force = *initForce
	}

	return a, nil
}

// consoleLevel maps the verbosity flags onto the console logger level.
func (a *arguments) consoleLevel() logLevel {
	switch {
	case a.quiet:
		return levelWarn
	case a.verbose:
		return levelDebug
	default:
		return levelInfo
	}
}

// loadSite resolves the effective configuration: defaults first, then the
// configuration file, then command-line arguments on top.
func (a *arguments) loadSite(logger *consoleLogger) (*config.Site, error) {
	path := a.configPath
	if path == "" {
		dir := a.source
		if dir == "" {
			dir = "."
		}

		path = filepath.Join(dir, config.DefaultFileName)
	}

	site, found, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}

	if found {
		logger.Debug("loaded configuration", "path", path)
	} else if a.configPath != "" {
		return nil, fmt.Errorf("configuration file %s does not exist", a.configPath)
	}

	if a.source != "" {
		site.Source = a.source
	}
	if a.output != "" {
		site.Output = a.output
	}

	diags := config.Validate(site)
	for _, w := range diags.Warnings {
		logger.Warn(w.String())
	}

	err = diags.Error()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return site, nil
}

func (a *arguments) execute(ctx context.Context, stdout io.Writer, logger *consoleLogger) error {
	switch a.command {
	case "build":
		return a.runBuild(ctx, stdout, logger)
	case "serve":
		return a.runServe(ctx, logger)
	case "check":
		return a.runCheck(ctx, stdout, logger)
	case "clean":
		return a.runClean(stdout, logger)
	case "init":
		return a.runInit(stdout)
	}

	return fmt.Errorf("unknown command %q", a.command)
}

func (a *arguments) runBuild(ctx context.Context, stdout io.Writer, logger *consoleLogger) error {
	site, err := a.loadSite(logger)
	if err != nil {
		return err
	}

	if !a.quiet {
		fmt.Fprintln(stdout, "🚀 Starting site generation...")
	}

	opts := []build.Option{build.WithLogger(logger)}
	if a.incremental {
		opts = append(opts, build.WithIncremental())
	}
	if a.check {
		opts = append(opts, build.WithLinkCheck())
	}

	builder, err := build.New(site, opts...)
	if err != nil {
		return err
	}

	res, err := builder.Build(ctx)
	if err != nil {
		return err
	}

	if a.dumpPlan {
		spew.Fdump(stdout, res.Plan)
	}

	if !a.quiet {
		fmt.Fprintf(stdout, "\n🎉 Site generated successfully in '%s'!\n", site.Output)
		fmt.Fprintln(stdout, "📊 Ready for GitHub Pages deployment")
		fmt.Fprint(stdout, deployInstructions(site.Output))
	}

	return nil
}

func (a *arguments) runServe(ctx context.Context, logger *consoleLogger) error {
	site, err := a.loadSite(logger)
	if err != nil {
		return err
	}

	if a.watch {
		builder, err := build.New(site, build.WithLogger(logger), build.WithIncremental())
		if err != nil {
			return err
		}

		watcher, err := serve.NewWatcher(serve.WatcherConfig{
			Source: site.Source,
			Rebuild: func(ctx context.Context) error {
				_, err := builder.Build(ctx)
				return err
			},
			SkipDir: scan.FromSite(site).SkipDir,
			Logger:  logger,
		})
		if err != nil {
			return err
		}

		go func() {
			err := watcher.Run(ctx)
			if err != nil {
				logger.Error("watcher stopped", "error", err)
			}
		}()
	}

	return serve.New(a.addr, site.Output, logger).Run(ctx)
}

func (a *arguments) runCheck(ctx context.Context, stdout io.Writer, logger *consoleLogger) error {
	site, err := a.loadSite(logger)
	if err != nil {
		return err
	}

	builder, err := build.New(site, build.WithLogger(logger))
	if err != nil {
		return err
	}

	res, err := builder.CheckLinks(ctx)
	if err != nil {
		return err
	}

	for _, w := range res.Diagnostics.Warnings {
		logger.Warn(w.String())
	}

	for _, d := range res.Diagnostics.Errors {
		fmt.Fprintln(stdout, "❌ "+d.String())
	}

	if res.Diagnostics.HasErrors() {
		return fmt.Errorf("%d broken link(s)", len(res.Diagnostics.Errors))
	}

	if !a.quiet {
		fmt.Fprintln(stdout, "✅ All links resolve")
	}

	return nil
}

func (a *arguments) runClean(stdout io.Writer, logger *consoleLogger) error {
	output := a.output
	if output == "" {
		site, err := a.loadSite(logger)
		if err != nil {
			return err
		}

		output = site.Output
	}

	if !a.force && !looksGenerated(output) {
		return fmt.Errorf("%s does not look like a generated site (no .nojekyll or %s), use --force to remove it anyway",
			output, manifest.FileName)
	}

	err := os.RemoveAll(output)
	if err != nil {
		return fmt.Errorf("removing %s: %w", output, err)
	}

	if !a.quiet {
		fmt.Fprintf(stdout, "🧹 Removed '%s'\n", output)
	}

	return nil
}

// looksGenerated reports whether the directory carries the markers this
// tool leaves behind, guarding clean against eating arbitrary trees.
func looksGenerated(output string) bool {
	for _, marker := range []string{".nojekyll", manifest.FileName} {
		_, err := os.Stat(filepath.Join(output, marker))
		if err == nil {
			return true
		}
	}

	return false
}

func (a *arguments) runInit(stdout io.Writer) error {
	path := filepath.Join(a.dir, config.DefaultFileName)

	_, err := os.Stat(path)
	if err == nil && !a.force {
		return fmt.Errorf("%s already exists, use --force to overwrite it", path)
	}
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", path, err)
	}

	err = config.WriteFile(config.Default(), path)
	if err != nil {
		return err
	}

	if !a.quiet {
		fmt.Fprintf(stdout, "📝 Wrote '%s'\n", path)
	}

	return nil
}

// deployInstructions is the GitHub Pages setup checklist printed after a
// successful build, with the configured output directory filled in.
func deployInstructions(output string) string {
	return fmt.Sprintf(`
🚀 DEPLOYMENT INSTRUCTIONS:
1. git add %[1]s/
2. git commit -m "Add documentation site"
3. git push origin main
4. Go to GitHub repo Settings → Pages
5. Set source to "Deploy from a branch"
6. Select "main" branch and "/%[1]s" folder
7. Save and wait ~5 minutes

Your site will be live at: https://yourusername.github.io/yourrepo/
`, output)
}

func main() {
	args, err := parseArgs(os.Args[1:])
	if err != nil {
		kingpin.Fatalf("failed to parse arguments, %s, try --help", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := newConsoleLogger(os.Stderr, args.consoleLevel())

	err = args.execute(ctx, os.Stdout, logger)
	if err != nil {
		kingpin.Fatalf("%s", err)
	}
}
