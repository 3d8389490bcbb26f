// Package plan turns a scanned source tree into the ordered task list
// consumed by rendering and writing.
//
// Resolution pipeline:
//  1. Walk the tree in deterministic pre-order
//  2. For each directory:
//     - Emit one render task per page
//     - Emit the directory listing task, which owns index.html
//     - Emit one copy task per asset
//  3. Precompute navigation (breadcrumb trail, path back to root)
//  4. Emit diagnostics (output collisions, shadowed index pages)
package plan
