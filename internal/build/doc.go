// Package build orchestrates complete site generation runs.
//
// One Build pass: scan the source tree, resolve the task plan, render
// pages and listings, copy assets, and record what was written in the
// build manifest. Page-level failures degrade to warnings so one bad
// page never sinks the site; only environment failures (unreadable
// source root, unwritable output) abort the run.
//
// Incremental mode reuses outputs whose recorded source checksums still
// match, invalidates everything when the configuration fingerprint
// changes, and removes outputs whose sources disappeared. Directory
// listings are regenerated unconditionally.
package build
