package scan

import (
	"path"
	"sort"
)

// FileKind distinguishes renderable pages from copied assets.
type FileKind int

const (
	// FilePage is a Markdown or plain-text source rendered to HTML.
	FilePage FileKind = iota
	// FileAsset is copied into the output tree unchanged.
	FileAsset
)

// File is a single page or asset in the source tree.
type File struct {
	// RelPath is the slash-separated path relative to the source root.
	RelPath string
	// Name is the base name including the extension.
	Name string
	// Ext is the lowercased extension including the leading dot.
	Ext string
	// Kind distinguishes pages from assets.
	Kind FileKind
}

// Stem returns the base name without its extension.
func (f *File) Stem() string {
	return f.Name[:len(f.Name)-len(path.Ext(f.Name))]
}

// Dir is a single directory in the source tree.
type Dir struct {
	// RelPath is the slash-separated path relative to the source root,
	// "." for the root itself.
	RelPath string
	// Name is the base name, empty for the root.
	Name string
	// Subdirs are the child directories, sorted by name.
	Subdirs []*Dir
	// Pages are the renderable files in this directory, sorted by name.
	Pages []*File
	// Assets are the copied files in this directory, sorted by name.
	Assets []*File
}

// Tree is the scanned source tree.
type Tree struct {
	Root *Dir

	dirs  map[string]*Dir
	files map[string]*File
}

// newTree creates an empty tree with an initialized root.
func newTree() *Tree {
	root := &Dir{RelPath: "."}

	return &Tree{
		Root:  root,
		dirs:  map[string]*Dir{".": root},
		files: map[string]*File{},
	}
}

// LookupDir returns the directory at the given relative path, or nil.
func (t *Tree) LookupDir(rel string) *Dir {
	return t.dirs[rel]
}

// LookupFile returns the file at the given relative path, or nil.
func (t *Tree) LookupFile(rel string) *File {
	return t.files[rel]
}

// Dirs calls fn for every directory in deterministic pre-order
// (root first, children sorted by name).
func (t *Tree) Dirs(fn func(*Dir)) {
	var visit func(*Dir)

	visit = func(d *Dir) {
		fn(d)

		for _, sub := range d.Subdirs {
			visit(sub)
		}
	}

	visit(t.Root)
}

// Paths returns the relative paths of all files in the tree, sorted.
func (t *Tree) Paths() []string {
	paths := make([]string, 0, len(t.files))
	for rel := range t.files {
		paths = append(paths, rel)
	}

	sort.Strings(paths)

	return paths
}

// PageCount returns the number of pages in the tree.
func (t *Tree) PageCount() int {
	n := 0
	for _, f := range t.files {
		if f.Kind == FilePage {
			n++
		}
	}

	return n
}
