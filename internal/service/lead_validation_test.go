package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DukeRupert/badrumsundsvall/internal/domain"
)

// =============================================================================
// Lead Validation Tests
// =============================================================================

func validRequest() domain.LeadRequest {
	return domain.LeadRequest{
		ProjectType: "renovation",
		Size:        "small",
		Timeline:    "now",
		PostalCode:  "85230",
		Name:        "Anna Svensson",
		Email:       "anna@example.com",
		Phone:       "0701234567",
	}
}

func requireIssues(t *testing.T, err error) *domain.ValidationError {
	t.Helper()
	require.Error(t, err)
	ve, ok := err.(*domain.ValidationError)
	require.True(t, ok, "expected *domain.ValidationError, got %T", err)
	return ve
}

func TestValidateLead_Valid(t *testing.T) {
	lead, err := ValidateLead(validRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.ProjectTypeRenovation, lead.ProjectType)
	assert.Equal(t, domain.SizeSmall, lead.Size)
	assert.Equal(t, domain.TimelineNow, lead.Timeline)
	assert.Equal(t, "85230", lead.PostalCode)
	assert.Equal(t, "Anna Svensson", lead.Name)
	assert.Equal(t, "anna@example.com", lead.Email)
	assert.Equal(t, "0701234567", lead.Phone)
	assert.Empty(t, lead.Description)
}

func TestValidateLead_Normalizes(t *testing.T) {
	req := validRequest()
	req.Email = "  Test@Example.com "
	req.Name = "  Åsa Öberg\t"
	req.PostalCode = " 85230 "
	req.Description = "   "
	req.SourcePath = " /kontakt "

	lead, err := ValidateLead(req)
	require.NoError(t, err)

	assert.Equal(t, "test@example.com", lead.Email)
	assert.Equal(t, "Åsa Öberg", lead.Name)
	assert.Equal(t, "85230", lead.PostalCode)
	assert.Empty(t, lead.Description, "whitespace-only description is absent")
	assert.Equal(t, "/kontakt", lead.SourcePath)
}

func TestValidateLead_NFC(t *testing.T) {
	req := validRequest()
	req.Name = "A\u030asa \u00d6berg" // decomposed Å

	lead, err := ValidateLead(req)
	require.NoError(t, err)
	assert.Equal(t, "\u00c5sa \u00d6berg", lead.Name)
}

func TestValidateLead_MissingRequiredFields(t *testing.T) {
	testCases := []struct {
		name  string
		clear func(*domain.LeadRequest)
		field string
	}{
		{"project type", func(r *domain.LeadRequest) { r.ProjectType = "" }, "projectType"},
		{"size", func(r *domain.LeadRequest) { r.Size = " " }, "size"},
		{"timeline", func(r *domain.LeadRequest) { r.Timeline = "" }, "timeline"},
		{"postal code", func(r *domain.LeadRequest) { r.PostalCode = "" }, "postalCode"},
		{"name", func(r *domain.LeadRequest) { r.Name = "\n\t" }, "name"},
		{"email", func(r *domain.LeadRequest) { r.Email = "" }, "email"},
		{"phone", func(r *domain.LeadRequest) { r.Phone = "" }, "phone"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.clear(&req)

			_, err := ValidateLead(req)
			ve := requireIssues(t, err)
			require.Len(t, ve.Issues, 1)
			assert.Equal(t, tc.field, ve.Issues[0].Field)
			assert.Equal(t, "required", ve.Issues[0].Code)
			assert.NotEmpty(t, ve.Issues[0].Message)
		})
	}
}

func TestValidateLead_PostalCode(t *testing.T) {
	testCases := []struct {
		postalCode string
		valid      bool
	}{
		{"85230", true},
		{"12345", true},
		{"123", false},
		{"1234", false},
		{"123456", false},
		{"12a45", false},
		{"852 30", false},
		{"８５２３０", false}, // full-width digits
	}

	for _, tc := range testCases {
		t.Run(tc.postalCode, func(t *testing.T) {
			req := validRequest()
			req.PostalCode = tc.postalCode

			_, err := ValidateLead(req)
			if tc.valid {
				assert.NoError(t, err)
				return
			}
			ve := requireIssues(t, err)
			assert.True(t, ve.Has("postalCode"))
		})
	}
}

func TestValidateLead_Email(t *testing.T) {
	testCases := []struct {
		email string
		valid bool
	}{
		{"anna@example.com", true},
		{"anna.svensson+offert@exempel.se", true},
		{"not-an-email", false},
		{"a@b", false},
		{"a@b.", false},
		{"@example.com", false},
		{"anna@", false},
		{"anna svensson@example.com", false},
	}

	for _, tc := range testCases {
		t.Run(tc.email, func(t *testing.T) {
			req := validRequest()
			req.Email = tc.email

			_, err := ValidateLead(req)
			if tc.valid {
				assert.NoError(t, err)
				return
			}
			ve := requireIssues(t, err)
			assert.True(t, ve.Has("email"))
			assert.False(t, ve.Has("name"))
		})
	}
}

func TestValidateLead_UnknownCodesAccepted(t *testing.T) {
	req := validRequest()
	req.Size = "xlarge"
	req.Timeline = "nästa år"

	lead, err := ValidateLead(req)
	require.NoError(t, err)
	assert.Equal(t, domain.Size("xlarge"), lead.Size)
	assert.Equal(t, "xlarge", lead.Size.Label())
}

func TestValidateLead_MaxLengths(t *testing.T) {
	testCases := []struct {
		name  string
		set   func(*domain.LeadRequest, string)
		limit int
		field string
	}{
		{"name", func(r *domain.LeadRequest, v string) { r.Name = v }, domain.MaxNameLength, "name"},
		{"phone", func(r *domain.LeadRequest, v string) { r.Phone = v }, domain.MaxPhoneLength, "phone"},
		{"description", func(r *domain.LeadRequest, v string) { r.Description = v }, domain.MaxDescriptionLength, "description"},
		{"source path", func(r *domain.LeadRequest, v string) { r.SourcePath = v }, domain.MaxSourceLength, "sourcePath"},
		{"project type", func(r *domain.LeadRequest, v string) { r.ProjectType = v }, domain.MaxChoiceLength, "projectType"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.set(&req, strings.Repeat("ö", tc.limit))
			_, err := ValidateLead(req)
			assert.NoError(t, err, "limit counts characters, not bytes")

			tc.set(&req, strings.Repeat("ö", tc.limit+1))
			_, err = ValidateLead(req)
			ve := requireIssues(t, err)
			require.Len(t, ve.Issues, 1)
			assert.Equal(t, tc.field, ve.Issues[0].Field)
			assert.Equal(t, "max", ve.Issues[0].Code)
		})
	}
}

func TestValidateLead_SourceURL(t *testing.T) {
	tests := []struct {
		url   string
		valid bool
	}{
		{"https://badrum-sundsvall.se/tjanster/kakel-klinker?utm_source=google", true},
		{"http://localhost:8080/kontakt", true},
		{"inte en adress", false},
		{"/kontakt", false},
		{"javascript:alert(1)", false},
		{"data:text/html,<script>alert(1)</script>", false},
		{"ftp://badrum-sundsvall.se/", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			req := validRequest()
			req.SourceURL = tt.url

			_, err := ValidateLead(req)

			if tt.valid {
				assert.NoError(t, err)
				return
			}
			ve := requireIssues(t, err)
			assert.True(t, ve.Has("sourceUrl"))
		})
	}
}

func TestValidateLead_ReportsEveryFieldInFormOrder(t *testing.T) {
	_, err := ValidateLead(domain.LeadRequest{PostalCode: "123", Email: "not-an-email"})
	ve := requireIssues(t, err)

	var fields []string
	for _, issue := range ve.Issues {
		fields = append(fields, issue.Field)
	}
	assert.Equal(t, []string{"projectType", "size", "timeline", "postalCode", "name", "email", "phone"}, fields)
}
