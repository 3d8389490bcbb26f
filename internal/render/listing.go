package render

import (
	"bytes"
	"fmt"
	"html"

	"pages-generator/internal/plan"
)

// ListingBody builds the inner HTML of a directory index page from
// precomputed listing rows.
func ListingBody(l *plan.Listing) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "<h1>📚 %s</h1>", html.EscapeString(l.Heading))
	buf.WriteString("<p style='color: #94a3b8; margin-bottom: 2rem;'>" +
		"Browse through the available documentation files and folders.</p>")

	if len(l.Entries) == 0 {
		buf.WriteString(`<p style="color: #64748b;">No files found in this directory.</p>`)

		return buf.Bytes()
	}

	buf.WriteString(`<div class="file-list">`)

	for _, e := range l.Entries {
		fmt.Fprintf(&buf, `
                <div class="file-item">
                    <a href="%s">%s</a>
                    <div class="file-type">%s</div>
                </div>`,
			html.EscapeString(e.Href), html.EscapeString(e.Label), e.Type)
	}

	buf.WriteString("</div>")

	return buf.Bytes()
}
