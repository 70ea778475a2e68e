package site

// Sitemap change frequencies.
const (
	ChangeDaily   = "daily"
	ChangeMonthly = "monthly"
)

// Crumb is one step in a breadcrumb trail.
type Crumb struct {
	Name string
	Path string
}

// Page is the search and routing metadata of one public page.
type Page struct {
	Path        string
	Template    string // page template name under pages/public
	Title       string // full document title
	Heading     string // breadcrumb label and WebPage name
	Description string
	NoIndex     bool
	ChangeFreq  string
	Priority    float64
	Parent      string // path of the parent page, empty for top level
}

// Breadcrumbs returns the trail from the home page to p.
func (p Page) Breadcrumbs() []Crumb {
	crumbs := []Crumb{{Name: "Start", Path: "/"}}
	if p.Path == "/" {
		return crumbs
	}
	if p.Parent != "" {
		if parent, ok := PageByPath(p.Parent); ok {
			crumbs = append(crumbs, Crumb{Name: parent.Heading, Path: parent.Path})
		}
	}
	return append(crumbs, Crumb{Name: p.Heading, Path: p.Path})
}

var pages = []Page{
	{
		Path:        "/",
		Template:    "home",
		Title:       "Badrumsrenovering i Sundsvall | Få kostnadsfri offert",
		Heading:     "Start",
		Description: "Få kostnadsfri offert på badrumsrenovering i Sundsvall. Vi förmedlar din förfrågan till lokala, kontrollerade hantverkare. ROT-avdrag. Svar inom 24h.",
		ChangeFreq:  ChangeDaily,
		Priority:    1.0,
	},
	{
		Path:        "/tjanster",
		Template:    "services",
		Title:       "Tjänster inom badrumsrenovering | Badrumsrenovering Sundsvall",
		Heading:     "Tjänster",
		Description: "Vi förmedlar helrenovering av badrum, tätskikt, kakel & klinker, VVS och el i Sundsvall. Få offert från lokala hantverkare.",
		ChangeFreq:  ChangeMonthly,
		Priority:    0.7,
	},
	{
		Path:        "/faq",
		Template:    "faq",
		Title:       "Vanliga frågor om badrumsrenovering i Sundsvall | Badrumsrenovering Sundsvall",
		Heading:     "Vanliga frågor",
		Description: "Svar på vanliga frågor om badrumsrenovering i Sundsvall: pris, tidsplan, ROT-avdrag, tätskikt, certifieringar och hur tjänsten fungerar.",
		ChangeFreq:  ChangeMonthly,
		Priority:    0.7,
	},
	{
		Path:        "/guide",
		Template:    "guide",
		Title:       "Guide: Så går en badrumsrenovering till | Steg för steg",
		Heading:     "Guide",
		Description: "Komplett guide: så går en badrumsrenovering till steg för steg. Ordning på moment, tidsplan, kostnadsdrivare, vanliga misstag och vad du ska tänka på i Sundsvall.",
		ChangeFreq:  ChangeMonthly,
		Priority:    0.7,
	},
	{
		Path:        "/om-oss",
		Template:    "about",
		Title:       "Om oss – Så fungerar tjänsten | Badrumsrenovering Sundsvall",
		Heading:     "Om oss",
		Description: "Läs om hur vår förmedling fungerar för badrumsrenovering i Sundsvall. Kostnadsfritt, utan köpkrav – vi matchar din förfrågan med lokala hantverkare.",
		ChangeFreq:  ChangeMonthly,
		Priority:    0.7,
	},
	{
		Path:        "/kontakt",
		Template:    "contact",
		Title:       "Kontakt & offertförfrågan – Badrumsrenovering i Sundsvall",
		Heading:     "Kontakt",
		Description: "Skicka en kostnadsfri offertförfrågan för badrumsrenovering i Sundsvall. Vi förmedlar din förfrågan till lokala företag. Målet är svar inom 24 timmar.",
		ChangeFreq:  ChangeMonthly,
		Priority:    0.9,
	},
	{
		Path:        "/integritetspolicy",
		Template:    "privacy",
		Title:       "Integritetspolicy (GDPR) – Badrumsrenovering i Sundsvall",
		Heading:     "Integritetspolicy",
		Description: "Läs hur vi hanterar personuppgifter enligt GDPR när du skickar en offertförfrågan för badrumsrenovering i Sundsvall.",
		ChangeFreq:  ChangeMonthly,
		Priority:    0.7,
	},
	{
		Path:        "/tack",
		Template:    "thanks",
		Title:       "Tack för din förfrågan | Badrumsrenovering Sundsvall",
		Heading:     "Tack",
		Description: "Vi har tagit emot din offertförfrågan för badrumsrenovering. Du kommer att kontaktas av intresserade hantverkare inom kort.",
		NoIndex:     true,
	},
}

// Pages returns every fixed page followed by the service detail pages.
func Pages() []Page {
	all := append([]Page(nil), pages...)
	for _, s := range services {
		all = append(all, s.Page())
	}
	return all
}

// PageByPath finds a fixed page or service page by its path.
func PageByPath(path string) (Page, bool) {
	for _, p := range pages {
		if p.Path == path {
			return p, true
		}
	}
	for _, s := range services {
		if s.Path() == path {
			return s.Page(), true
		}
	}
	return Page{}, false
}

// NotFoundPage is rendered for unknown paths.
var NotFoundPage = Page{
	Path:        "",
	Template:    "notfound",
	Title:       "Sidan kunde inte hittas | Badrumsrenovering Sundsvall",
	Heading:     "Sidan kunde inte hittas",
	Description: "Sidan du letade efter finns inte.",
	NoIndex:     true,
}
