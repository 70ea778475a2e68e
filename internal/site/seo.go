package site

import "encoding/json"

// Schema is one schema.org JSON-LD document.
type Schema map[string]any

const schemaContext = "https://schema.org"

// MarshalJSONLD encodes a schema for a <script type="application/ld+json">
// block. encoding/json escapes <, > and & so the output cannot close the
// surrounding script element.
func MarshalJSONLD(s Schema) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// WebPageSchema describes a single page.
func WebPageSchema(siteURL string, p Page) Schema {
	return Schema{
		"@context":    schemaContext,
		"@type":       "WebPage",
		"name":        p.Heading,
		"headline":    p.Title,
		"description": p.Description,
		"url":         AbsoluteURL(siteURL, p.Path),
		"inLanguage":  Language,
		"isPartOf": Schema{
			"@type": "WebSite",
			"name":  Name,
			"url":   AbsoluteURL(siteURL, "/"),
		},
		"publisher": Schema{
			"@type": "Organization",
			"name":  Publisher,
		},
	}
}

// BreadcrumbSchema describes the trail from the home page to p.
func BreadcrumbSchema(siteURL string, p Page) Schema {
	crumbs := p.Breadcrumbs()
	items := make([]Schema, len(crumbs))
	for i, c := range crumbs {
		items[i] = Schema{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     c.Name,
			"item":     AbsoluteURL(siteURL, c.Path),
		}
	}
	return Schema{
		"@context":        schemaContext,
		"@type":           "BreadcrumbList",
		"itemListElement": items,
	}
}

// FAQPageSchema describes a list of questions and answers.
func FAQPageSchema(items []FAQItem) Schema {
	questions := make([]Schema, len(items))
	for i, item := range items {
		questions[i] = Schema{
			"@type": "Question",
			"name":  item.Question,
			"acceptedAnswer": Schema{
				"@type": "Answer",
				"text":  item.Answer,
			},
		}
	}
	return Schema{
		"@context":   schemaContext,
		"@type":      "FAQPage",
		"mainEntity": questions,
	}
}

func areaServed() []Schema {
	areas := make([]Schema, len(serviceAreas))
	for i, a := range serviceAreas {
		areas[i] = Schema{"@type": "City", "name": a}
	}
	return areas
}

// LocalBusinessSchema describes the referral service on the home page.
func LocalBusinessSchema(siteURL string) Schema {
	return Schema{
		"@context":    schemaContext,
		"@type":       "LocalBusiness",
		"name":        Name,
		"description": "Förmedling av offertförfrågningar för badrumsrenovering till lokala, kontrollerade hantverkare i Sundsvall.",
		"serviceType": "Badrumsrenovering",
		"areaServed":  areaServed(),
		"geo": Schema{
			"@type":     "GeoCoordinates",
			"latitude":  62.3908,
			"longitude": 17.3069,
		},
		"url": AbsoluteURL(siteURL, "/"),
	}
}

// ServiceSchema describes one service detail page.
func ServiceSchema(siteURL string, s Service) Schema {
	return Schema{
		"@context":    schemaContext,
		"@type":       "Service",
		"name":        s.Name + " i Sundsvall",
		"serviceType": s.ServiceType,
		"description": s.Description,
		"url":         AbsoluteURL(siteURL, s.Path()),
		"areaServed":  areaServed(),
		"provider": Schema{
			"@type": "LocalBusiness",
			"name":  Name,
			"url":   AbsoluteURL(siteURL, "/"),
		},
	}
}

// PageSchemas returns every JSON-LD document for a page: WebPage and
// BreadcrumbList always, plus the page-specific ones.
func PageSchemas(siteURL string, p Page) []Schema {
	schemas := []Schema{WebPageSchema(siteURL, p), BreadcrumbSchema(siteURL, p)}

	switch p.Template {
	case "home":
		schemas = append(schemas, LocalBusinessSchema(siteURL))
	case "faq":
		schemas = append(schemas, FAQPageSchema(generalFAQ))
	case "contact":
		schemas = append(schemas, FAQPageSchema(ContactFAQ()))
	case "service":
		for _, s := range services {
			if s.Path() == p.Path {
				schemas = append(schemas, ServiceSchema(siteURL, s), FAQPageSchema(s.FAQ))
			}
		}
	}
	return schemas
}
