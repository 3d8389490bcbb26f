// Package check verifies that links collected from rendered pages resolve
// to files the site actually publishes.
//
// Destinations are resolved relative to the linking page against both the
// source tree (setup.md style links) and the planned outputs (setup.html
// style links, directory index pages, copied assets). External URLs,
// absolute paths, and pure fragments are out of scope. Unresolved
// destinations become broken_link errors carrying "did you mean"
// suggestions ranked by edit distance.
package check
