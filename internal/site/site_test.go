package site

import (
	"encoding/json"
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbsoluteURL(t *testing.T) {
	tests := []struct {
		name    string
		siteURL string
		path    string
		want    string
	}{
		{"root", "https://example.se", "/", "https://example.se/"},
		{"empty path", "https://example.se", "", "https://example.se/"},
		{"trailing slash on origin", "https://example.se/", "/faq", "https://example.se/faq"},
		{"relative path", "https://example.se", "kontakt", "https://example.se/kontakt"},
		{"nested", "https://example.se", "/tjanster/el-badrum", "https://example.se/tjanster/el-badrum"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AbsoluteURL(tt.siteURL, tt.path))
		})
	}
}

func TestIsActive(t *testing.T) {
	tests := []struct {
		nav     string
		current string
		want    bool
	}{
		{"/", "/", true},
		{"/", "/faq", false},
		{"/tjanster", "/tjanster", true},
		{"/tjanster", "/tjanster/kakel-klinker", true},
		{"/tjanster", "/tjanstertest", false},
		{"/faq", "/kontakt", false},
	}

	for _, tt := range tests {
		t.Run(tt.nav+" "+tt.current, func(t *testing.T) {
			assert.Equal(t, tt.want, IsActive(tt.nav, tt.current))
		})
	}
}

func TestPageByPath(t *testing.T) {
	p, ok := PageByPath("/kontakt")
	require.True(t, ok)
	assert.Equal(t, "contact", p.Template)

	p, ok = PageByPath("/tjanster/vvs-badrum")
	require.True(t, ok)
	assert.Equal(t, "service", p.Template)
	assert.Equal(t, "/tjanster", p.Parent)

	_, ok = PageByPath("/finns-inte")
	assert.False(t, ok)
}

func TestPages_UniquePaths(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Pages() {
		assert.False(t, seen[p.Path], "duplicate path %s", p.Path)
		seen[p.Path] = true
		assert.NotEmpty(t, p.Title, p.Path)
		assert.NotEmpty(t, p.Description, p.Path)
	}
	assert.Len(t, seen, 8+len(Services()))
}

func TestBreadcrumbs(t *testing.T) {
	home, _ := PageByPath("/")
	assert.Equal(t, []Crumb{{"Start", "/"}}, home.Breadcrumbs())

	faq, _ := PageByPath("/faq")
	assert.Equal(t, []Crumb{{"Start", "/"}, {"Vanliga frågor", "/faq"}}, faq.Breadcrumbs())

	svc, ok := ServiceBySlug("kakel-klinker")
	require.True(t, ok)
	crumbs := svc.Page().Breadcrumbs()
	require.Len(t, crumbs, 3)
	assert.Equal(t, "/tjanster", crumbs[1].Path)
	assert.Equal(t, "/tjanster/kakel-klinker", crumbs[2].Path)
}

func TestServiceBySlug(t *testing.T) {
	for _, slug := range []string{"helrenovering-badrum", "tatskikt-vatrum", "kakel-klinker", "vvs-badrum", "el-badrum"} {
		s, ok := ServiceBySlug(slug)
		require.True(t, ok, slug)
		assert.Equal(t, "/tjanster/"+slug, s.Path())
		assert.NotEmpty(t, s.FAQ, slug)
	}

	_, ok := ServiceBySlug("takbyte")
	assert.False(t, ok)
}

func TestRelatedServices_ExcludesCurrent(t *testing.T) {
	related := RelatedServices("vvs-badrum")
	require.NotEmpty(t, related)
	for _, s := range related {
		assert.NotEqual(t, "vvs-badrum", s.Slug)
	}
}

func TestGeneralFAQ_ReturnsCopy(t *testing.T) {
	faq := GeneralFAQ()
	require.Len(t, faq, 12)
	faq[0].Question = "ändrad"
	assert.NotEqual(t, "ändrad", GeneralFAQ()[0].Question)
}

func TestSitemap(t *testing.T) {
	lastMod := time.Date(2026, 3, 1, 23, 30, 0, 0, time.FixedZone("CET", 3600))
	out, err := Sitemap("https://example.se", lastMod)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), xml.Header))

	var set urlSet
	require.NoError(t, xml.Unmarshal(out, &set))

	byLoc := map[string]sitemapURL{}
	for _, u := range set.URLs {
		byLoc[u.Loc] = u
		assert.Equal(t, "2026-03-01", u.LastMod)
	}

	assert.Equal(t, "daily", byLoc["https://example.se/"].ChangeFreq)
	assert.Equal(t, "1.0", byLoc["https://example.se/"].Priority)
	assert.Equal(t, "0.9", byLoc["https://example.se/kontakt"].Priority)
	assert.Equal(t, "monthly", byLoc["https://example.se/faq"].ChangeFreq)
	assert.Equal(t, "0.7", byLoc["https://example.se/faq"].Priority)
	assert.Contains(t, byLoc, "https://example.se/tjanster/el-badrum")
	assert.NotContains(t, byLoc, "https://example.se/tack")
}

func TestRobots(t *testing.T) {
	robots := Robots("https://example.se/")
	assert.Contains(t, robots, "User-agent: *\n")
	assert.Contains(t, robots, "Disallow: /api/\n")
	assert.Contains(t, robots, "Sitemap: https://example.se/sitemap.xml\n")
}

func TestPageSchemas(t *testing.T) {
	types := func(schemas []Schema) []string {
		var out []string
		for _, s := range schemas {
			out = append(out, s["@type"].(string))
		}
		return out
	}

	home, _ := PageByPath("/")
	assert.Equal(t, []string{"WebPage", "BreadcrumbList", "LocalBusiness"}, types(PageSchemas("https://example.se", home)))

	faq, _ := PageByPath("/faq")
	faqSchemas := PageSchemas("https://example.se", faq)
	assert.Equal(t, []string{"WebPage", "BreadcrumbList", "FAQPage"}, types(faqSchemas))
	assert.Len(t, faqSchemas[2]["mainEntity"], 12)

	svc, _ := PageByPath("/tjanster/el-badrum")
	assert.Equal(t, []string{"WebPage", "BreadcrumbList", "Service", "FAQPage"}, types(PageSchemas("https://example.se", svc)))

	guide, _ := PageByPath("/guide")
	assert.Equal(t, []string{"WebPage", "BreadcrumbList"}, types(PageSchemas("https://example.se", guide)))
}

func TestMarshalJSONLD_EscapesScriptClose(t *testing.T) {
	out, err := MarshalJSONLD(FAQPageSchema([]FAQItem{{"</script><b>", "a & b"}}))
	require.NoError(t, err)
	assert.NotContains(t, out, "</script>")
	assert.NotContains(t, out, "<b>")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "FAQPage", decoded["@type"])
}
