package render

import (
	"fmt"
	"html"
	"html/template"
	"strings"

	"pages-generator/internal/plan"
)

// crumbSeparator sits between breadcrumb links.
const crumbSeparator = ` <span style="color: #64748b;">/</span> `

// breadcrumbHTML assembles the trail markup: the home link followed by
// one link per directory level.
func breadcrumbHTML(task plan.Task) template.HTML {
	var b strings.Builder

	fmt.Fprintf(&b, `<a href="%s/index.html">🏠 Home</a>`, task.RelRoot)

	for _, c := range task.Crumbs {
		b.WriteString(crumbSeparator)
		fmt.Fprintf(&b, `<a href="%s">%s</a>`, c.Href, html.EscapeString(c.Label))
	}

	return template.HTML(b.String())
}
