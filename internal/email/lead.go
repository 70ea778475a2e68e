package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/DukeRupert/badrumsundsvall/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var leadHTMLTemplate = template.Must(template.ParseFS(templateFS, "templates/lead.html"))

// LeadHeading is the first line of every lead message.
const LeadHeading = "Ny badrumsförfrågan – Sundsvall"

// emptyPlaceholder stands in for an absent description.
const emptyPlaceholder = "-"

// leadView is what the HTML template sees. Enum fields carry labels.
type leadView struct {
	Subject     string
	Heading     string
	ProjectType string
	Size        string
	Timeline    string
	PostalCode  string
	HasSource   bool
	SourcePath  string
	SourceURL   string
	Name        string
	Email       string
	Phone       string
	Description string
}

// ComposeLeadMessage turns a validated lead into the notification sent to
// the business inbox. It has no side effects: the same lead and envelope
// always produce the same message.
func ComposeLeadMessage(lead domain.LeadSubmission, env Envelope) (Message, error) {
	subject := fmt.Sprintf("Ny badrumsförfrågan: %s (%s)", oneLine(lead.Name), lead.PostalCode)

	description := lead.Description
	if description == "" {
		description = emptyPlaceholder
	}

	view := leadView{
		Subject:     subject,
		Heading:     LeadHeading,
		ProjectType: lead.ProjectType.Label(),
		Size:        lead.Size.Label(),
		Timeline:    lead.Timeline.Label(),
		PostalCode:  lead.PostalCode,
		HasSource:   lead.HasSource(),
		SourcePath:  lead.SourcePath,
		SourceURL:   lead.SourceURL,
		Name:        lead.Name,
		Email:       lead.Email,
		Phone:       lead.Phone,
		Description: description,
	}

	var html bytes.Buffer
	if err := leadHTMLTemplate.Execute(&html, view); err != nil {
		return Message{}, fmt.Errorf("render lead html: %w", err)
	}

	return Message{
		To:          env.To,
		ToName:      env.ToName,
		From:        env.From,
		FromName:    env.FromName,
		ReplyTo:     lead.Email,
		ReplyToName: oneLine(lead.Name),
		Subject:     subject,
		TextBody:    leadText(view),
		HTMLBody:    html.String(),
	}, nil
}

// leadText renders the plain text body.
func leadText(v leadView) string {
	var b strings.Builder

	b.WriteString(v.Heading + "\n\n")
	fmt.Fprintf(&b, "Typ av projekt: %s\n", v.ProjectType)
	fmt.Fprintf(&b, "Storlek: %s\n", v.Size)
	fmt.Fprintf(&b, "Start: %s\n", v.Timeline)
	fmt.Fprintf(&b, "Postnummer: %s\n", v.PostalCode)
	if v.HasSource {
		fmt.Fprintf(&b, "Källa: %s\n", sourceLine(v.SourcePath, v.SourceURL))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Namn: %s\n", v.Name)
	fmt.Fprintf(&b, "E-post: %s\n", v.Email)
	fmt.Fprintf(&b, "Telefon: %s\n", v.Phone)
	b.WriteString("\n")
	b.WriteString("Beskrivning:\n")
	b.WriteString(v.Description + "\n")

	return b.String()
}

func sourceLine(path, url string) string {
	switch {
	case path != "" && url != "":
		return fmt.Sprintf("%s (%s)", path, url)
	case path != "":
		return path
	default:
		return url
	}
}

// oneLine collapses runs of whitespace, including line breaks, so user
// text can go into a header.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
