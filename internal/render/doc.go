// Package render turns plan tasks into finished HTML documents.
//
// Rendering approach uses goldmark for Markdown bodies and html/template
// for the page shell, so every page shares one layout.
//
// Render patterns:
//   - Markdown/plain-text body conversion with link collection
//   - [TOC] paragraph expansion into a nested heading list
//   - Directory listing bodies built from plan rows
//   - Breadcrumb trails assembled from precomputed crumbs
//   - Shell assembly (head, home button, content card, footer)
package render
