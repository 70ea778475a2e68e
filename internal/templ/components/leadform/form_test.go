package leadform

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DukeRupert/badrumsundsvall/internal/domain"
)

func render(t *testing.T, p Props) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Form(p).Render(context.Background(), &buf))
	return buf.String()
}

func TestForm_FullIncludesDescription(t *testing.T) {
	html := render(t, Props{Variant: VariantFull})

	assert.Contains(t, html, `name="description"`)
	assert.Contains(t, html, "(valfritt)")
	assert.Contains(t, html, `data-variant="full"`)
}

func TestForm_CompactOmitsDescription(t *testing.T) {
	html := render(t, Props{Variant: VariantCompact})

	assert.NotContains(t, html, `name="description"`)
	assert.Contains(t, html, `data-variant="compact"`)
	assert.Contains(t, html, `name="phone"`)
}

func TestForm_DefaultsToFull(t *testing.T) {
	html := render(t, Props{})

	assert.Contains(t, html, `data-variant="full"`)
	assert.Contains(t, html, `id="lead-form"`)
	assert.Contains(t, html, `id="lead-postalCode"`)
}

func TestForm_RequiredControls(t *testing.T) {
	html := render(t, Props{})

	for _, name := range []string{"projectType", "size", "timeline", "postalCode", "name", "email", "phone"} {
		assert.Contains(t, html, `name="`+name+`"`, name)
	}
	assert.NotContains(t, html, `name="sourcePath"`, "source is derived by the client script")
	assert.NotContains(t, html, `name="sourceUrl"`)
	assert.Contains(t, html, `pattern="[0-9]{5}"`)
	assert.Contains(t, html, `type="email"`)
	assert.Contains(t, html, `data-success-url="/tack"`)
	assert.Contains(t, html, `action="/api/leads"`)
}

func TestForm_OptionsMatchLabelTables(t *testing.T) {
	html := render(t, Props{})

	tables := [][]domain.Option{domain.ProjectTypeOptions(), domain.SizeOptions(), domain.TimelineOptions()}
	for _, options := range tables {
		for _, o := range options {
			assert.Contains(t, html, `<option value="`+o.Value+`">`+o.Label+`</option>`, o.Value)
		}
	}

	// Display order follows the tables.
	small := strings.Index(html, `value="small"`)
	medium := strings.Index(html, `value="medium"`)
	large := strings.Index(html, `value="large"`)
	assert.True(t, small < medium && medium < large)
}

func TestForm_CompactClassesOverrideBase(t *testing.T) {
	html := render(t, Props{Variant: VariantCompact})

	assert.Contains(t, html, "min-h-[40px]")
	assert.Contains(t, html, "min-h-[42px]")
	assert.NotContains(t, html, "min-h-[44px]", "compact height replaces the base height")
	assert.NotContains(t, html, "min-h-[48px]")
}

func TestForm_ExtraClassAndIDPrefix(t *testing.T) {
	html := render(t, Props{ID: "hero", Class: "space-y-8"})

	assert.Contains(t, html, `id="hero-form"`)
	assert.Contains(t, html, `for="hero-email"`)
	assert.Contains(t, html, `class="space-y-8"`)
}

func TestForm_ButtonStates(t *testing.T) {
	html := render(t, Props{})

	assert.Contains(t, html, `data-submitting-text="Skickar..."`)
	assert.Contains(t, html, ">Få offert inom 24h</button>")
	assert.Contains(t, html, "Inget köpkrav – kostnadsfritt")
}

func TestForm_PlaceholderOptionIsEmptyValue(t *testing.T) {
	html := render(t, Props{})

	assert.Contains(t, html, `<option value="" disabled selected>Välj typ av projekt</option>`)
	assert.Contains(t, html, `<option value="" disabled selected>Välj tidsram</option>`)
}

func TestForm_EscapesProps(t *testing.T) {
	html := render(t, Props{ID: `x"><script>alert(1)</script>`, Class: `"onmouseover="alert(1)`})

	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, `"onmouseover=`)
	assert.Contains(t, html, `id="x&#34;&gt;&lt;script&gt;alert(1)&lt;/script&gt;-form"`)
}

func TestForm_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := Form(Props{}).Render(ctx, &buf)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}
