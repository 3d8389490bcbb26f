// Package manifest records what a build wrote so the next build can skip
// unchanged pages and assets.
//
// The manifest lives as a dot-file in the output directory. Every entry
// pairs an output path with the checksum of the source it was rendered
// from; listings are rebuilt unconditionally and carry no checksum. A
// manifest that cannot be read or parsed simply disables incremental
// reuse for that build.
package manifest
