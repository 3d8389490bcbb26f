// Package diagnostic provides structured warnings, errors, and infos
// collected while scanning, planning, and rendering a site.
//
// Key capabilities:
//   - Output collision and clobbered-index warnings
//   - Broken link errors with "did you mean" suggestions
//   - Config validation errors keyed by stable snake_case codes
package diagnostic
