// Package domain contains core business types.
//
// This file defines the lead submitted through the quote-request form and
// the label tables used to present its enumerated fields.
package domain

// =============================================================================
// Enumerated Fields
// =============================================================================

// ProjectType is the kind of bathroom project the visitor asks about.
type ProjectType string

const (
	ProjectTypeRenovation ProjectType = "renovation"
	ProjectTypeNew        ProjectType = "new"
)

// Size is the approximate floor area bucket of the bathroom.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Timeline is when the visitor wants the work to start.
type Timeline string

const (
	TimelineNow        Timeline = "now"
	TimelineOneToThree Timeline = "1-3months"
	TimelineLater      Timeline = "later"
)

// Option is a code and its human-readable label, in display order.
type Option struct {
	Value string
	Label string
}

var projectTypeOptions = []Option{
	{string(ProjectTypeRenovation), "Renovering av befintligt badrum"},
	{string(ProjectTypeNew), "Nytt badrum"},
}

var sizeOptions = []Option{
	{string(SizeSmall), "Litet (under 5 kvm)"},
	{string(SizeMedium), "Mellan (5-10 kvm)"},
	{string(SizeLarge), "Stort (över 10 kvm)"},
}

var timelineOptions = []Option{
	{string(TimelineNow), "Så snart som möjligt"},
	{string(TimelineOneToThree), "Inom 1-3 månader"},
	{string(TimelineLater), "Senare / Planerar"},
}

// ProjectTypeOptions returns the selectable project types in display order.
func ProjectTypeOptions() []Option { return append([]Option(nil), projectTypeOptions...) }

// SizeOptions returns the selectable sizes in display order.
func SizeOptions() []Option { return append([]Option(nil), sizeOptions...) }

// TimelineOptions returns the selectable timelines in display order.
func TimelineOptions() []Option { return append([]Option(nil), timelineOptions...) }

// lookupLabel is a soft mapping: codes outside the table come back unchanged.
func lookupLabel(options []Option, value string) string {
	for _, o := range options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

// Label returns the human-readable label, or the raw code when unknown.
func (p ProjectType) Label() string { return lookupLabel(projectTypeOptions, string(p)) }

// Label returns the human-readable label, or the raw code when unknown.
func (s Size) Label() string { return lookupLabel(sizeOptions, string(s)) }

// Label returns the human-readable label, or the raw code when unknown.
func (t Timeline) Label() string { return lookupLabel(timelineOptions, string(t)) }

// =============================================================================
// Lead
// =============================================================================

// Field length limits for lead submissions, counted in characters.
const (
	MaxChoiceLength      = 64
	MaxNameLength        = 200
	MaxEmailLength       = 254
	MaxPhoneLength       = 50
	MaxDescriptionLength = 5000
	MaxSourceLength      = 2048
)

// LeadRequest is the JSON body posted by the lead form. Nothing in it is
// trusted until it has been validated into a LeadSubmission.
type LeadRequest struct {
	ProjectType string `json:"projectType"`
	Size        string `json:"size"`
	Timeline    string `json:"timeline"`
	PostalCode  string `json:"postalCode"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Description string `json:"description,omitempty"`
	SourcePath  string `json:"sourcePath,omitempty"`
	SourceURL   string `json:"sourceUrl,omitempty"`
}

// LeadSubmission is a validated, normalized lead. It is passed by value and
// lives only for the duration of one request.
type LeadSubmission struct {
	ProjectType ProjectType
	Size        Size
	Timeline    Timeline
	PostalCode  string
	Name        string
	Email       string // lowercased
	Phone       string
	Description string // empty when absent
	SourcePath  string // empty when absent
	SourceURL   string // empty when absent
}

// HasDescription reports whether the visitor wrote a description.
func (l LeadSubmission) HasDescription() bool {
	return l.Description != ""
}

// HasSource reports whether the originating page is known.
func (l LeadSubmission) HasSource() bool {
	return l.SourcePath != "" || l.SourceURL != ""
}
