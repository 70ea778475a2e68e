// Package site holds the content and search metadata of the marketing site:
// the page registry, service descriptions, FAQ, structured data and the
// sitemap. Nothing in here performs I/O.
package site

import "strings"

const (
	Name       = "Badrumsrenovering Sundsvall"
	Publisher  = "Innovo AB"
	Locale     = "sv_SE"
	Language   = "sv"
	ThemeColor = "#f5f3ee"

	// DefaultURL is the canonical origin when SITE_URL is not set.
	DefaultURL = "https://badrum-sundsvall.se"

	// OGImage is the share image served from /static.
	OGImage = "/static/img/og.jpg"
)

// NavItem is a link in the header or footer.
type NavItem struct {
	Label string
	Path  string
}

var navigation = []NavItem{
	{"Start", "/"},
	{"Tjänster", "/tjanster"},
	{"Vanliga frågor", "/faq"},
	{"Om oss", "/om-oss"},
	{"Kontakt", "/kontakt"},
}

// Navigation returns the header menu in display order.
func Navigation() []NavItem {
	return append([]NavItem(nil), navigation...)
}

// FooterLinks returns the quick links shown in the footer.
func FooterLinks() []NavItem {
	return append(Navigation(), NavItem{"Integritetspolicy", "/integritetspolicy"})
}

var serviceAreas = []string{"Sundsvall", "Timrå", "Alnö", "Njurunda"}

// ServiceAreas returns the towns leads are accepted from.
func ServiceAreas() []string {
	return append([]string(nil), serviceAreas...)
}

// CTA is the header call-to-action.
var CTA = NavItem{"Få offert", "/kontakt"}

// AbsoluteURL joins the site origin and a path.
func AbsoluteURL(siteURL, path string) string {
	siteURL = strings.TrimSuffix(siteURL, "/")
	if path == "" || path == "/" {
		return siteURL + "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return siteURL + path
}

// IsActive reports whether a navigation path should be highlighted for
// the current request path.
func IsActive(navPath, current string) bool {
	if navPath == "/" {
		return current == "/"
	}
	return current == navPath || strings.HasPrefix(current, navPath+"/")
}
