package service

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"

	"github.com/DukeRupert/badrumsundsvall/internal/domain"
)

var postalCodePattern = regexp.MustCompile(`^[0-9]{5}$`)

// leadInput is the normalized request with its validation rules. Field
// order is the order issues are reported in. Length limits mirror the
// domain.Max* constants.
type leadInput struct {
	ProjectType string `json:"projectType" validate:"required,max=64"`
	Size        string `json:"size" validate:"required,max=64"`
	Timeline    string `json:"timeline" validate:"required,max=64"`
	PostalCode  string `json:"postalCode" validate:"required,postalcode"`
	Name        string `json:"name" validate:"required,max=200"`
	Email       string `json:"email" validate:"required,max=254,email,maildomain"`
	Phone       string `json:"phone" validate:"required,max=50"`
	Description string `json:"description" validate:"max=5000"`
	SourcePath  string `json:"sourcePath" validate:"max=2048"`
	SourceURL   string `json:"sourceUrl" validate:"omitempty,max=2048,http_url"`
}

// leadValidator is safe for concurrent use and caches struct metadata.
var leadValidator = newLeadValidator()

func newLeadValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON field names so issues line up with the form controls.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("postalcode", func(fl validator.FieldLevel) bool {
		return postalCodePattern.MatchString(fl.Field().String())
	})

	// The email tag accepts single-label domains like "a@b"; a lead must
	// be reachable on the public internet.
	_ = v.RegisterValidation("maildomain", func(fl validator.FieldLevel) bool {
		addr := fl.Field().String()
		at := strings.LastIndexByte(addr, '@')
		if at < 0 {
			return false
		}
		domainPart := addr[at+1:]
		dot := strings.IndexByte(domainPart, '.')
		return dot > 0 && dot < len(domainPart)-1
	})

	return v
}

// normalizeLead trims and NFC-normalizes every field and lowercases the email.
func normalizeLead(req domain.LeadRequest) leadInput {
	clean := func(s string) string {
		return norm.NFC.String(strings.TrimSpace(s))
	}
	return leadInput{
		ProjectType: clean(req.ProjectType),
		Size:        clean(req.Size),
		Timeline:    clean(req.Timeline),
		PostalCode:  clean(req.PostalCode),
		Name:        clean(req.Name),
		Email:       strings.ToLower(clean(req.Email)),
		Phone:       clean(req.Phone),
		Description: clean(req.Description),
		SourcePath:  clean(req.SourcePath),
		SourceURL:   clean(req.SourceURL),
	}
}

// ValidateLead normalizes and validates a raw lead request. It returns
// either a complete LeadSubmission or a *domain.ValidationError listing
// every failing field in form order. Unknown enum codes are accepted.
func ValidateLead(req domain.LeadRequest) (domain.LeadSubmission, error) {
	const op = "lead.validate"

	in := normalizeLead(req)

	if err := leadValidator.Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return domain.LeadSubmission{}, domain.Internal(err, op, "Failed to validate lead")
		}

		ve := &domain.ValidationError{Op: op}
		for _, fe := range fieldErrs {
			ve.Issues = append(ve.Issues, domain.FieldIssue{
				Field:   fe.Field(),
				Code:    fe.Tag(),
				Message: issueMessage(fe.Field(), fe.Tag()),
			})
		}
		return domain.LeadSubmission{}, ve
	}

	return domain.LeadSubmission{
		ProjectType: domain.ProjectType(in.ProjectType),
		Size:        domain.Size(in.Size),
		Timeline:    domain.Timeline(in.Timeline),
		PostalCode:  in.PostalCode,
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Description: in.Description,
		SourcePath:  in.SourcePath,
		SourceURL:   in.SourceURL,
	}, nil
}

// issueMessage returns the visitor-facing message for a failed rule.
func issueMessage(field, tag string) string {
	if tag == "max" {
		return "Texten är för lång"
	}

	switch field {
	case "projectType":
		return "Välj typ av projekt"
	case "size":
		return "Välj badrummets storlek"
	case "timeline":
		return "Välj när du vill starta"
	case "postalCode":
		return "Ange ett postnummer med fem siffror"
	case "name":
		return "Ange ditt namn"
	case "email":
		if tag == "required" {
			return "Ange din e-postadress"
		}
		return "Ange en giltig e-postadress"
	case "phone":
		return "Ange ditt telefonnummer"
	case "sourceUrl":
		return "Ogiltig sidadress"
	default:
		return "Ogiltigt värde"
	}
}
