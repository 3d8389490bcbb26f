package plan

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind identifies what a task produces.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	// KindPage renders a Markdown or plain-text source to HTML.
	KindPage
	// KindListing writes a directory index page.
	KindListing
	// KindAsset copies a static file unchanged.
	KindAsset

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)
