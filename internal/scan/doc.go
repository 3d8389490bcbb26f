// Package scan walks a documentation source tree and builds a canonical
// in-memory model of its directories, pages, and assets.
//
// Key types:
//   - Tree: root directory + flat lookups by relative path
//   - Dir: one directory with sorted subdirectories, pages, and assets
//   - File: one page (.md/.txt) or asset (configured extensions)
//
// Skip rules match the publishing semantics: dot-prefixed names, the output
// directory's base name, and configured exclude patterns never enter the
// model, wherever they appear in the tree.
package scan
