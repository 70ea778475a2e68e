package handler

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"sync"
)

// TemplateRenderer is the interface for rendering HTML templates.
type TemplateRenderer interface {
	RenderHTTP(w http.ResponseWriter, name string, data any)
	RenderHTTPStatus(w http.ResponseWriter, status int, name string, data any)
}

// Renderer manages template parsing and rendering with isolated template sets.
// Every page shares the "public" layout.
//
// Templates are organized as:
//   - layouts/public.html - base layout
//   - components/*.html - reusable components
//   - pages/public/*.html - one file per page, stored as "public/<name>"
type Renderer struct {
	templates map[string]*template.Template
	fsys      fs.FS
	logger    *slog.Logger
	isDev     bool
	mu        sync.RWMutex
}

// RendererConfig holds configuration for the renderer.
type RendererConfig struct {
	// FS is rooted at the templates directory: the embedded tree in
	// production, os.DirFS during development.
	FS     fs.FS
	Logger *slog.Logger
	// IsDev re-parses templates before every render.
	IsDev bool
}

// NewRenderer creates a new template renderer.
func NewRenderer(cfg RendererConfig) (*Renderer, error) {
	r := &Renderer{
		templates: make(map[string]*template.Template),
		fsys:      cfg.FS,
		logger:    cfg.Logger,
		isDev:     cfg.IsDev,
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}

	if err := r.loadTemplates(); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Renderer) loadTemplates() error {
	templates, err := parseTemplates(r.fsys)
	if err != nil {
		return err
	}
	r.templates = templates
	r.logger.Debug("templates loaded", "count", len(templates))
	return nil
}

func parseTemplates(fsys fs.FS) (map[string]*template.Template, error) {
	var componentFiles []string
	err := fs.WalkDir(fsys, "components", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(p, ".html") {
			componentFiles = append(componentFiles, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk components dir: %w", err)
	}

	base, err := template.New("public").Funcs(TemplateFuncs()).ParseFS(fsys, "layouts/public.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse public layout: %w", err)
	}
	if len(componentFiles) > 0 {
		base, err = base.ParseFS(fsys, componentFiles...)
		if err != nil {
			return nil, fmt.Errorf("failed to parse components into public layout: %w", err)
		}
	}

	pages, err := fs.Glob(fsys, "pages/public/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to glob public pages: %w", err)
	}

	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		pageTmpl, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone public template for %s: %w", page, err)
		}

		pageTmpl, err = pageTmpl.ParseFS(fsys, page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse public page %s: %w", page, err)
		}

		name := strings.TrimSuffix(path.Base(page), path.Ext(page))
		templates["public/"+name] = pageTmpl
	}

	return templates, nil
}

// Reload re-parses all templates. Used in development.
func (r *Renderer) Reload() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadTemplates()
}

// Render renders a template to an io.Writer.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	if r.isDev {
		if err := r.Reload(); err != nil {
			return fmt.Errorf("template reload failed: %w", err)
		}
	}

	r.mu.RLock()
	tmpl, ok := r.templates[name]
	r.mu.RUnlock()

	if !ok {
		return fmt.Errorf("template %q not found", name)
	}

	return tmpl.ExecuteTemplate(w, "public", data)
}

// RenderHTTP renders a template directly to an http.ResponseWriter with 200.
func (r *Renderer) RenderHTTP(w http.ResponseWriter, name string, data any) {
	r.RenderHTTPStatus(w, http.StatusOK, name, data)
}

// RenderHTTPStatus renders a template with the given status code. The page
// is rendered to a buffer first so a failing template never leaves a
// half-written response.
func (r *Renderer) RenderHTTPStatus(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := r.Render(&buf, name, data); err != nil {
		r.logger.Error("template execution failed", "name", name, "error", err)
		http.Error(w, "Sidan kunde inte visas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// ListTemplates returns a list of all loaded template names.
func (r *Renderer) ListTemplates() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	return names
}
