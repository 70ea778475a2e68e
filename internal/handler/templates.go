package handler

import (
	"context"
	"html/template"
	"strings"
	"time"

	"github.com/a-h/templ"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/DukeRupert/badrumsundsvall/internal/site"
	"github.com/DukeRupert/badrumsundsvall/internal/templ/components/leadform"
)

// TemplateFuncs returns a FuncMap with custom template functions
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		// Math functions
		"add": func(a, b int) int {
			return a + b
		},

		// Date/Time functions
		"year": func() int {
			return time.Now().Year()
		},

		// String functions
		"inSentence": inSentence,

		// Site helpers
		"isActive": site.IsActive,
		"absURL":   site.AbsoluteURL,

		// jsonLD encodes a schema for a <script type="application/ld+json">
		// block. The encoder escapes <, > and &, so the value is safe to
		// mark as JS.
		"jsonLD": func(s site.Schema) (template.JS, error) {
			out, err := site.MarshalJSONLD(s)
			if err != nil {
				return "", err
			}
			return template.JS(out), nil
		},

		// leadForm renders the lead form component into the page.
		// Usage: {{leadForm "full" "hero"}} or {{leadForm "compact" "sidebar"}}
		"leadForm": func(variant, id string) (template.HTML, error) {
			return templ.ToGoHTML(context.Background(), leadform.Form(leadform.Props{
				Variant: leadform.Variant(variant),
				ID:      id,
			}))
		},
	}
}

// inSentence prepares a heading-cased name for use inside a Swedish
// sentence: "Kakel & klinker" becomes "kakel & klinker". An all-caps
// first word such as "VVS" is kept.
func inSentence(s string) string {
	first, rest, _ := strings.Cut(s, " ")
	if first == "" || cases.Upper(language.Swedish).String(first) == first {
		return s
	}
	first = cases.Lower(language.Swedish).String(first)
	if rest == "" {
		return first
	}
	return first + " " + rest
}
