package scan

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"pages-generator/internal/common"
	"pages-generator/internal/diagnostic"
)

// Scan walks the source root and builds the tree model.
// Unreadable subdirectories produce warnings and are skipped; only an
// unreadable root is a hard error.
func Scan(root string, rules Rules) (*Tree, *diagnostic.Diagnostics, error) {
	diags := &diagnostic.Diagnostics{}

	info, err := os.Stat(root)
	if err != nil {
		return nil, diags, fmt.Errorf("source directory %s: %w", root, err)
	}

	if !info.IsDir() {
		return nil, diags, fmt.Errorf("source path %s is not a directory", root)
	}

	tree := newTree()

	err = scanDir(root, tree.Root, tree, rules, diags)
	if err != nil {
		return nil, diags, err
	}

	return tree, diags, nil
}

// scanDir reads one directory and recurses into its kept subdirectories.
// os.ReadDir returns entries sorted by name, so the model is deterministic
// by construction.
func scanDir(fsDir string, dir *Dir, tree *Tree, rules Rules, diags *diagnostic.Diagnostics) error {
	entries, err := os.ReadDir(fsDir)
	if err != nil {
		if dir.RelPath == "." {
			return fmt.Errorf("reading source directory %s: %w", fsDir, err)
		}

		diags.AddWarning("unreadable_directory",
			fmt.Sprintf("skipping unreadable directory: %v", err), dir.RelPath, "")

		return nil
	}

	for _, entry := range entries {
		name := entry.Name()
		rel := common.JoinRel(dir.RelPath, name)

		if entry.IsDir() {
			if rules.SkipDir(rel, name) {
				continue
			}

			sub := &Dir{RelPath: rel, Name: name}
			dir.Subdirs = append(dir.Subdirs, sub)
			tree.dirs[rel] = sub

			err := scanDir(filepath.Join(fsDir, name), sub, tree, rules, diags)
			if err != nil {
				return err
			}

			continue
		}

		// Symlinked directories report as non-dirs here and fall through
		// to classification, which drops them: they have no extension we
		// publish, and following them risks walking out of the tree.
		kind, ok := rules.Classify(rel, name)
		if !ok {
			continue
		}

		f := &File{
			RelPath: rel,
			Name:    name,
			Ext:     strings.ToLower(path.Ext(name)),
			Kind:    kind,
		}

		tree.files[rel] = f

		switch kind {
		case FilePage:
			dir.Pages = append(dir.Pages, f)
		case FileAsset:
			dir.Assets = append(dir.Assets, f)
		}
	}

	return nil
}
