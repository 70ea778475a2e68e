// Package leadform renders the quote-request form shown on the marketing pages.
package leadform

import "github.com/DukeRupert/badrumsundsvall/internal/domain"

// Variant selects how much of the form is shown.
type Variant string

const (
	// VariantFull includes the optional description field.
	VariantFull Variant = "full"
	// VariantCompact is used in page sidebars and omits the description.
	VariantCompact Variant = "compact"
)

// Props configures one rendered form.
type Props struct {
	Variant Variant
	ID      string // id prefix, defaults to "lead"
	Class   string // extra classes merged onto the <form>
}

// Endpoint is where the client script posts the form as JSON.
const Endpoint = "/api/leads"

// ThankYouPath is where the client navigates after a successful submission.
const ThankYouPath = "/tack"

// selectField is a required <select> backed by a label table.
type selectField struct {
	Name        string
	Label       string
	Placeholder string
	Options     []domain.Option
}

func selectFields() []selectField {
	return []selectField{
		{"projectType", "Typ av projekt", "Välj typ av projekt", domain.ProjectTypeOptions()},
		{"size", "Ungefärlig storlek", "Välj storlek", domain.SizeOptions()},
		{"timeline", "När vill du starta?", "Välj tidsram", domain.TimelineOptions()},
	}
}

// inputField is a required single-line text control.
type inputField struct {
	Name         string
	Label        string
	Type         string
	InputMode    string
	Pattern      string
	Placeholder  string
	Autocomplete string
	MaxLength    int
}

func inputFields() []inputField {
	return []inputField{
		{"postalCode", "Postnummer", "text", "numeric", "[0-9]{5}", "t.ex. 85230", "postal-code", 5},
		{"name", "Namn", "text", "", "", "Ditt namn", "name", domain.MaxNameLength},
		{"email", "E-post", "email", "email", "", "namn@exempel.se", "email", domain.MaxEmailLength},
		{"phone", "Telefon", "tel", "tel", "", "07X XXX XX XX", "tel", domain.MaxPhoneLength},
	}
}

func (p Props) variant() Variant {
	if p.Variant == VariantCompact {
		return VariantCompact
	}
	return VariantFull
}

func (p Props) idPrefix() string {
	if p.ID == "" {
		return "lead"
	}
	return p.ID
}

func (p Props) controlID(name string) string {
	return p.idPrefix() + "-" + name
}

// Base classes shared by every control; variant classes are merged on top
// so a compact override replaces the conflicting base utility.
const (
	formClass     = "space-y-5"
	labelClass    = "block text-sm font-medium text-slate-800"
	controlClass  = "block w-full min-h-[44px] rounded-md border border-slate-300 bg-white px-3 py-2 text-base focus:border-sky-600 focus:outline-none focus:ring-2 focus:ring-sky-600/30"
	textareaClass = "min-h-[88px] resize-none"
	buttonClass   = "w-full min-h-[48px] rounded-md bg-sky-700 px-4 text-base font-semibold text-white hover:bg-sky-800 disabled:cursor-not-allowed disabled:opacity-60"
)

var compactClasses = map[string]string{
	"form":    "space-y-4",
	"control": "min-h-[40px] text-sm",
	"button":  "min-h-[42px] text-sm",
}

func classFor(v Variant, part string) string {
	if v == VariantCompact {
		return compactClasses[part]
	}
	return ""
}
