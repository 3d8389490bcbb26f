package manifest

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

// FileName is the manifest's location inside the output directory. The
// dot prefix keeps it out of directory scans and GitHub Pages serving.
const FileName = ".pages-manifest.json"

// FormatVersion is bumped whenever the entry layout changes.
const FormatVersion = 1

// Manifest is the persistent record of one completed build.
type Manifest struct {
	// Version of the manifest format.
	Version int `json:"version"`
	// BuildID uniquely identifies the build that wrote the manifest.
	BuildID string `json:"build_id"`
	// Generator is the version of the tool that wrote the manifest.
	Generator string `json:"generator,omitempty"`
	// GeneratedAt is the completion time of the build.
	GeneratedAt time.Time `json:"generated_at"`
	// ConfigSum fingerprints the effective site configuration; a changed
	// configuration invalidates every entry.
	ConfigSum string `json:"config_sum"`
	// Entries lists written outputs, sorted by output path.
	Entries []Entry `json:"entries"`

	byOutput map[string]int
}

// Entry records one output file and the source it was produced from.
type Entry struct {
	// Output is the slash-relative output path.
	Output string `json:"output"`
	// Source is the slash-relative source path, empty for listings.
	Source string `json:"source,omitempty"`
	// SourceSum is the checksum of the source contents, empty for
	// listings.
	SourceSum string `json:"source_sum,omitempty"`
}

// New creates an empty manifest for a build of the given configuration.
func New(configSum string) *Manifest {
	return &Manifest{
		Version:     FormatVersion,
		BuildID:     uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		ConfigSum:   configSum,
		byOutput:    map[string]int{},
	}
}

// Add records one written output. Adding the same output again replaces
// the earlier entry.
func (m *Manifest) Add(output, source, sourceSum string) {
	if m.byOutput == nil {
		m.reindex()
	}

	e := Entry{Output: output, Source: source, SourceSum: sourceSum}

	if i, ok := m.byOutput[output]; ok {
		m.Entries[i] = e

		return
	}

	m.byOutput[output] = len(m.Entries)
	m.Entries = append(m.Entries, e)
}

// reindex rebuilds the output lookup from the entry slice.
func (m *Manifest) reindex() {
	m.byOutput = make(map[string]int, len(m.Entries))
	for i, e := range m.Entries {
		m.byOutput[e.Output] = i
	}
}

// Lookup returns the entry for an output path, if recorded. A nil
// manifest has no entries, so a missing previous build reads naturally.
func (m *Manifest) Lookup(output string) (Entry, bool) {
	if m == nil {
		return Entry{}, false
	}

	i, ok := m.byOutput[output]
	if !ok {
		return Entry{}, false
	}

	return m.Entries[i], true
}

// UpToDate reports whether an output can be reused: it was recorded with
// the same source and checksum, and the written file still exists.
func (m *Manifest) UpToDate(output, source, sourceSum, outPath string) bool {
	e, ok := m.Lookup(output)
	if !ok || e.Source != source || e.SourceSum == "" || e.SourceSum != sourceSum {
		return false
	}

	_, err := os.Stat(outPath)

	return err == nil
}

// Load reads a manifest from the given path. A missing file yields
// (nil, nil); any other failure is an error, so callers can distinguish
// "first build" from "corrupt record".
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var m Manifest

	err = jsoniter.ConfigFastest.Unmarshal(data, &m)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	if m.Version != FormatVersion {
		return nil, fmt.Errorf("manifest %s has unsupported version %d", path, m.Version)
	}

	m.reindex()

	return &m, nil
}

// WriteFile persists the manifest with entries sorted by output path.
func (m *Manifest) WriteFile(path string) error {
	sort.Slice(m.Entries, func(i, j int) bool {
		return m.Entries[i].Output < m.Entries[j].Output
	})

	m.reindex()

	data, err := jsoniter.ConfigFastest.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}

	err = os.WriteFile(path, append(data, '\n'), 0o644)
	if err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}

	return nil
}

// Checksum returns the hex sha256 of the given data.
func Checksum(data []byte) string {
	sum := sha256.Sum256(data)

	return hex.EncodeToString(sum[:])
}

// ChecksumFile returns the hex sha256 of a file's contents.
func ChecksumFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	return Checksum(data), nil
}
