package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/DukeRupert/badrumsundsvall/internal/site"
)

// =============================================================================
// Template Data Types
// =============================================================================

// Tracking holds the optional third-party tag IDs. Empty IDs render nothing.
type Tracking struct {
	GAID                   string
	GoogleAdsID            string
	GoogleSiteVerification string
}

// PageData is passed to every public page template.
type PageData struct {
	Page         site.Page
	CurrentPath  string
	SiteURL      string
	Canonical    string
	Crumbs       []site.Crumb
	Schemas      []site.Schema
	Navigation   []site.NavItem
	FooterLinks  []site.NavItem
	ServiceAreas []string
	Services     []site.Service
	CTA          site.NavItem
	Tracking     Tracking
	Content      any // page-specific, see contentFor
}

// HomeContent is the page-specific data of the home page.
type HomeContent struct {
	ProcessSteps  []site.Highlight
	PriceRanges   []site.PriceRange
	TrustFeatures []site.Highlight
	FAQ           []site.FAQItem
}

// ContactContent is the page-specific data of the contact page.
type ContactContent struct {
	Benefits []string
	FAQ      []site.FAQItem
}

// GuideContent is the page-specific data of the renovation guide.
type GuideContent struct {
	Steps     []site.Highlight
	Mistakes  []site.Highlight
	Checklist []string
}

// ServiceContent is the page-specific data of a service detail page.
type ServiceContent struct {
	Service site.Service
	Related []site.Service
}

// =============================================================================
// Handler Configuration
// =============================================================================

// PageHandlerConfig holds the site-wide settings of the page handler.
type PageHandlerConfig struct {
	SiteURL  string
	Tracking Tracking
	// LastModified is reported for every sitemap entry, normally the
	// process start time.
	LastModified time.Time
}

// PageHandler serves the marketing pages, the sitemap and robots.txt.
type PageHandler struct {
	renderer TemplateRenderer
	config   PageHandlerConfig
	logger   *slog.Logger
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(renderer TemplateRenderer, config PageHandlerConfig, logger *slog.Logger) *PageHandler {
	if config.SiteURL == "" {
		config.SiteURL = site.DefaultURL
	}
	if config.LastModified.IsZero() {
		config.LastModified = time.Now()
	}
	return &PageHandler{
		renderer: renderer,
		config:   config,
		logger:   logger,
	}
}

// =============================================================================
// Route Registration
// =============================================================================

// RegisterRoutes registers every public page with the provided mux.
//
// Routes:
// - GET /{$}              -> home
// - GET /<page>           -> fixed pages from site.Pages
// - GET /tjanster/{slug}  -> Service
// - GET /sitemap.xml      -> Sitemap
// - GET /robots.txt       -> Robots
// - GET /                 -> NotFound (everything unmatched)
func (h *PageHandler) RegisterRoutes(mux *http.ServeMux) {
	for _, p := range site.Pages() {
		if p.Template == "service" {
			continue
		}
		pattern := "GET " + p.Path
		if p.Path == "/" {
			pattern = "GET /{$}"
		}
		mux.HandleFunc(pattern, h.page(p))
	}
	mux.HandleFunc("GET /tjanster/{slug}", h.Service)
	mux.HandleFunc("GET /sitemap.xml", h.Sitemap)
	mux.HandleFunc("GET /robots.txt", h.Robots)
	mux.HandleFunc("GET /", h.NotFound)
}

// page returns the handler for one fixed page.
func (h *PageHandler) page(p site.Page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.renderer.RenderHTTP(w, "public/"+p.Template, h.pageData(r, p, contentFor(p)))
	}
}

// Service renders a service detail page; unknown slugs get the 404 page.
func (h *PageHandler) Service(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	svc, ok := site.ServiceBySlug(slug)
	if !ok {
		h.logger.Debug("unknown service slug", "slug", slug)
		h.NotFound(w, r)
		return
	}

	content := ServiceContent{Service: svc, Related: site.RelatedServices(slug)}
	h.renderer.RenderHTTP(w, "public/service", h.pageData(r, svc.Page(), content))
}

// NotFound renders the 404 page.
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderer.RenderHTTPStatus(w, http.StatusNotFound, "public/notfound", h.pageData(r, site.NotFoundPage, nil))
}

// Sitemap serves sitemap.xml.
func (h *PageHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	out, err := site.Sitemap(h.config.SiteURL, h.config.LastModified)
	if err != nil {
		InternalErrorResponse(w, r, h.logger, err)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(out)
}

// Robots serves robots.txt.
func (h *PageHandler) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(site.Robots(h.config.SiteURL)))
}

// =============================================================================
// Helper Functions
// =============================================================================

func (h *PageHandler) pageData(r *http.Request, p site.Page, content any) PageData {
	data := PageData{
		Page:         p,
		CurrentPath:  r.URL.Path,
		SiteURL:      h.config.SiteURL,
		Navigation:   site.Navigation(),
		FooterLinks:  site.FooterLinks(),
		ServiceAreas: site.ServiceAreas(),
		Services:     site.Services(),
		CTA:          site.CTA,
		Tracking:     h.config.Tracking,
		Content:      content,
	}
	if p.Path != "" {
		data.Canonical = site.AbsoluteURL(h.config.SiteURL, p.Path)
		data.Crumbs = p.Breadcrumbs()
		data.Schemas = site.PageSchemas(h.config.SiteURL, p)
	}
	return data
}

// contentFor returns the page-specific data of a fixed page.
func contentFor(p site.Page) any {
	switch p.Template {
	case "home":
		return HomeContent{
			ProcessSteps:  site.ProcessSteps(),
			PriceRanges:   site.PriceRanges(),
			TrustFeatures: site.TrustFeatures(),
			FAQ:           site.HomeFAQ(),
		}
	case "faq":
		return site.GeneralFAQ()
	case "contact":
		return ContactContent{Benefits: site.ContactBenefits(), FAQ: site.ContactFAQ()}
	case "guide":
		return GuideContent{Steps: site.GuideSteps(), Mistakes: site.GuideMistakes(), Checklist: site.GuideChecklist()}
	case "about":
		return site.AboutSteps()
	case "thanks":
		return site.NextSteps()
	default:
		return nil
	}
}
