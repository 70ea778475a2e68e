package site

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// Sitemap renders sitemap.xml for every indexable page. The home page is
// listed as daily with priority 1.0, /kontakt at 0.9 and everything else
// monthly at 0.7.
func Sitemap(siteURL string, lastMod time.Time) ([]byte, error) {
	set := urlSet{Xmlns: sitemapNS}
	for _, p := range Pages() {
		if p.NoIndex {
			continue
		}
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        AbsoluteURL(siteURL, p.Path),
			LastMod:    lastMod.UTC().Format("2006-01-02"),
			ChangeFreq: p.ChangeFreq,
			Priority:   fmt.Sprintf("%.1f", p.Priority),
		})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

// Robots renders robots.txt: everything is crawlable except the API.
func Robots(siteURL string) string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /api/\n")
	b.WriteString("\n")
	b.WriteString("Sitemap: " + AbsoluteURL(siteURL, "/sitemap.xml") + "\n")
	return b.String()
}
