package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pages-generator/internal/config"
	"pages-generator/internal/serve"
)

func TestParseArgsDefaultsToBuild(t *testing.T) {
	a, err := parseArgs(nil)

	require.NoError(t, err)
	assert.Equal(t, "build", a.command)
	assert.Empty(t, a.source)
	assert.Empty(t, a.output)
	assert.False(t, a.incremental)
	assert.False(t, a.quiet)
}

func TestParseArgsBuild(t *testing.T) {
	a, err := parseArgs([]string{
		"build", "handbook", "public",
		"--config", "handbook/site.yaml", "--incremental", "--check", "--dump-plan", "-q",
	})

	require.NoError(t, err)
	assert.Equal(t, "build", a.command)
	assert.Equal(t, "handbook", a.source)
	assert.Equal(t, "public", a.output)
	assert.Equal(t, "handbook/site.yaml", a.configPath)
	assert.True(t, a.incremental)
	assert.True(t, a.check)
	assert.True(t, a.dumpPlan)
	assert.True(t, a.quiet)
}

func TestParseArgsServe(t *testing.T) {
	a, err := parseArgs([]string{"serve", "public", "--addr", ":9999", "--watch", "--source", "handbook"})

	require.NoError(t, err)
	assert.Equal(t, "serve", a.command)
	assert.Equal(t, "public", a.output)
	assert.Equal(t, ":9999", a.addr)
	assert.True(t, a.watch)
	assert.Equal(t, "handbook", a.source)
}

func TestParseArgsServeDefaultsAddr(t *testing.T) {
	a, err := parseArgs([]string{"serve"})

	require.NoError(t, err)
	assert.Equal(t, serve.DefaultAddr, a.addr)
}

func TestParseArgsValidation(t *testing.T) {
	_, err := parseArgs([]string{"build", "--quiet", "--verbose"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot set both")

	_, err = parseArgs([]string{"serve", "--source", "handbook"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--source without --watch")

	_, err = parseArgs([]string{"frobnicate"})
	require.Error(t, err)
}

func TestParseArgsCleanAndInit(t *testing.T) {
	a, err := parseArgs([]string{"clean", "public", "--force"})
	require.NoError(t, err)
	assert.Equal(t, "clean", a.command)
	assert.Equal(t, "public", a.output)
	assert.True(t, a.force)

	a, err = parseArgs([]string{"init"})
	require.NoError(t, err)
	assert.Equal(t, "init", a.command)
	assert.Equal(t, ".", a.dir)
}

func TestConsoleLevelFromFlags(t *testing.T) {
	assert.Equal(t, levelInfo, (&arguments{}).consoleLevel())
	assert.Equal(t, levelWarn, (&arguments{quiet: true}).consoleLevel())
	assert.Equal(t, levelDebug, (&arguments{verbose: true}).consoleLevel())
}

func TestConsoleLoggerFiltersAndFormats(t *testing.T) {
	var buf bytes.Buffer
	logger := newConsoleLogger(&buf, levelInfo)

	logger.Debug("hidden")
	logger.Info("rendered page", "source", "readme.md", "output", "readme.html")
	logger.Warn("dangling", "key")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "INFO rendered page source=readme.md output=readme.html")
	assert.Contains(t, out, "WARN dangling key=%MISSING%")
}

func TestConsoleLoggerPlainTagsOffTerminal(t *testing.T) {
	var buf bytes.Buffer
	logger := newConsoleLogger(&buf, levelDebug)

	logger.Error("boom")

	assert.False(t, logger.emoji)
	assert.Contains(t, buf.String(), "ERROR boom")
}

func TestDeployInstructions(t *testing.T) {
	text := deployInstructions("public")

	assert.Contains(t, text, "DEPLOYMENT INSTRUCTIONS")
	assert.Contains(t, text, "git add public/")
	assert.Contains(t, text, `"/public" folder`)
	assert.Contains(t, text, "yourusername.github.io")
}

func TestLooksGenerated(t *testing.T) {
	plain := t.TempDir()
	assert.False(t, looksGenerated(plain))

	generated := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(generated, ".nojekyll"), nil, 0o644))
	assert.True(t, looksGenerated(generated))
}

func TestRunInitWritesStarterConfig(t *testing.T) {
	dir := t.TempDir()
	a := &arguments{command: "init", dir: dir}

	var buf bytes.Buffer
	require.NoError(t, a.runInit(&buf))

	path := filepath.Join(dir, config.DefaultFileName)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "title:")
	assert.Contains(t, buf.String(), "📝 Wrote")

	// A second init refuses to clobber the file unless forced.
	err = a.runInit(&buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	a.force = true
	require.NoError(t, a.runInit(&buf))
}

func TestRunCleanGuardsUnmarkedDirectories(t *testing.T) {
	var buf bytes.Buffer
	logger := newConsoleLogger(&buf, levelInfo)

	victim := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(victim, "precious.txt"), []byte("keep me"), 0o644))

	a := &arguments{command: "clean", output: victim}
	err := a.runClean(&buf, logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not look like a generated site")
	assert.FileExists(t, filepath.Join(victim, "precious.txt"))

	a.force = true
	require.NoError(t, a.runClean(&buf, logger))
	assert.NoDirExists(t, victim)
}

func TestRunCleanRemovesGeneratedSite(t *testing.T) {
	var buf bytes.Buffer
	logger := newConsoleLogger(&buf, levelInfo)

	output := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(output, ".nojekyll"), nil, 0o644))

	a := &arguments{command: "clean", output: output}
	require.NoError(t, a.runClean(&buf, logger))

	assert.NoDirExists(t, output)
	assert.Contains(t, buf.String(), "🧹 Removed")
}

func TestExecuteBuildEndToEnd(t *testing.T) {
	tmp := t.TempDir()
	source := filepath.Join(tmp, "handbook")
	output := filepath.Join(tmp, "public")
	require.NoError(t, os.MkdirAll(source, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(source, "readme.md"), []byte("# Welcome\n"), 0o644))

	a := &arguments{command: "build", source: source, output: output}

	var stdout, logs bytes.Buffer
	logger := newConsoleLogger(&logs, levelInfo)

	require.NoError(t, a.execute(context.Background(), &stdout, logger))

	assert.FileExists(t, filepath.Join(output, "readme.html"))
	assert.FileExists(t, filepath.Join(output, "index.html"))
	assert.FileExists(t, filepath.Join(output, ".nojekyll"))

	out := stdout.String()
	assert.Contains(t, out, "🚀 Starting site generation...")
	assert.Contains(t, out, "🎉 Site generated successfully in")
	assert.Contains(t, out, "DEPLOYMENT INSTRUCTIONS")
	assert.Contains(t, logs.String(), "build complete")
}

func TestExecuteBuildQuietPrintsNothing(t *testing.T) {
	tmp := t.TempDir()
	source := filepath.Join(tmp, "handbook")
	require.NoError(t, os.MkdirAll(source, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(source, "readme.md"), []byte("# Welcome\n"), 0o644))

	a := &arguments{
		command: "build",
		quiet:   true,
		source:  source,
		output:  filepath.Join(tmp, "public"),
	}

	var stdout bytes.Buffer
	logger := newConsoleLogger(&bytes.Buffer{}, levelWarn)

	require.NoError(t, a.execute(context.Background(), &stdout, logger))
	assert.Empty(t, stdout.String())
}

func TestExecuteCheckReportsBrokenLinks(t *testing.T) {
	tmp := t.TempDir()
	source := filepath.Join(tmp, "handbook")
	require.NoError(t, os.MkdirAll(source, 0o755))
	page := "# Welcome\n\nSee the [setup guide](gudies/setup.md).\n"
	require.NoError(t, os.WriteFile(filepath.Join(source, "readme.md"), []byte(page), 0o644))

	a := &arguments{command: "check", source: source}

	var stdout bytes.Buffer
	logger := newConsoleLogger(&bytes.Buffer{}, levelInfo)

	err := a.execute(context.Background(), &stdout, logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken link")
	assert.Contains(t, stdout.String(), "❌")
	assert.Contains(t, stdout.String(), "gudies/setup.md")
}

func TestExecuteCheckPassesCleanTree(t *testing.T) {
	tmp := t.TempDir()
	source := filepath.Join(tmp, "handbook")
	require.NoError(t, os.MkdirAll(source, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(source, "readme.md"), []byte("# Welcome\n"), 0o644))

	a := &arguments{command: "check", source: source}

	var stdout bytes.Buffer
	logger := newConsoleLogger(&bytes.Buffer{}, levelInfo)

	require.NoError(t, a.execute(context.Background(), &stdout, logger))
	assert.Contains(t, stdout.String(), "✅ All links resolve")
}
