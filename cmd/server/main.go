package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/DukeRupert/badrumsundsvall/internal"
	"github.com/DukeRupert/badrumsundsvall/internal/email"
	"github.com/DukeRupert/badrumsundsvall/internal/handler"
	"github.com/DukeRupert/badrumsundsvall/internal/metrics"
	"github.com/DukeRupert/badrumsundsvall/internal/middleware"
	"github.com/DukeRupert/badrumsundsvall/internal/service"
	"github.com/DukeRupert/badrumsundsvall/web"
)

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Templates and static assets: straight from disk in development so
	// edits show up on reload, embedded otherwise.
	templatesFS, staticFS, err := webFS(cfg.IsDevelopment())
	if err != nil {
		return fmt.Errorf("web assets: %w", err)
	}

	renderer, err := handler.NewRenderer(handler.RendererConfig{
		FS:     templatesFS,
		Logger: logger,
		IsDev:  cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("renderer initialization failed: %w", err)
	}
	logger.Info("Templates loaded", "count", len(renderer.ListTemplates()))

	// ==========================================================================
	// Lead dispatch
	// ==========================================================================

	smtpConfig := email.SMTPConfig{
		Host:         cfg.SMTPHost,
		Port:         cfg.SMTPPort,
		Username:     cfg.SMTPUsername,
		Password:     cfg.SMTPPassword,
		From:         cfg.SMTPFrom,
		FromName:     cfg.SMTPFromName,
		Timeout:      cfg.SMTPTimeout,
		DKIMDomain:   cfg.DKIMDomain,
		DKIMSelector: cfg.DKIMSelector,
		DKIMKeyPath:  cfg.DKIMKeyPath,
	}
	// Missing mail settings do not stop the site; submissions fail with a
	// generic error until they are fixed.
	if err := smtpConfig.Validate(); err != nil {
		logger.Warn("Lead dispatch is not configured", "error", err)
	}

	sender := email.NewLazySMTPSender(smtpConfig, logger)
	leadService := service.NewLeadService(sender, email.Envelope{
		To:       cfg.LeadRecipient,
		ToName:   cfg.LeadRecipientName,
		From:     cfg.SMTPFrom,
		FromName: cfg.SMTPFromName,
	}, logger)

	// ==========================================================================
	// Middleware
	// ==========================================================================

	limiter := middleware.NewRateLimiter(cfg.LeadRateLimit, cfg.LeadRateWindow)
	go limiter.Cleanup(ctx)
	leadLimit := middleware.NewLeadRateLimitMiddleware(limiter, logger)

	metricsAuth := middleware.NewMetricsAuthMiddleware(cfg.MetricsUsername, cfg.MetricsPassword, logger)
	if !metricsAuth.Enabled() && !cfg.IsDevelopment() {
		logger.Warn("Metrics endpoint is unprotected; set METRICS_USERNAME and METRICS_PASSWORD")
	}

	logging := middleware.NewRequestLoggingMiddleware(logger)
	security := middleware.NewSecurityHeadersMiddleware(!cfg.IsDevelopment())

	// ==========================================================================
	// Create router and register routes
	// ==========================================================================

	mux := http.NewServeMux()

	// Static files
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticFS)))

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Metrics
	mux.Handle("GET /metrics", metricsAuth.Handler(promhttp.Handler()))

	// Lead API
	handler.NewLeadHandler(leadService, logger).RegisterRoutes(mux, leadLimit.Limit)

	// Public pages, sitemap, robots.txt and the 404 fallback
	handler.NewPageHandler(renderer, handler.PageHandlerConfig{
		SiteURL: cfg.SiteURL,
		Tracking: handler.Tracking{
			GAID:                   cfg.GAID,
			GoogleAdsID:            cfg.GoogleAdsID,
			GoogleSiteVerification: cfg.GoogleSiteVerification,
		},
		LastModified: time.Now(),
	}, logger).RegisterRoutes(mux)

	stack := middleware.Stack(logging.Handler, security.Handler, metrics.Middleware)

	// ==========================================================================
	// Start server
	// ==========================================================================

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           stack(mux),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server started", "address", server.Addr, "env", cfg.Env, "site_url", cfg.SiteURL)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}
	logger.Info("Shutdown signal received, initiating graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Graceful shutdown complete")
	return nil
}

// webFS returns the template and static asset trees.
func webFS(dev bool) (templates, static fs.FS, err error) {
	if dev {
		return os.DirFS("web/templates"), os.DirFS("web/static"), nil
	}
	templates, err = fs.Sub(web.FS, "templates")
	if err != nil {
		return nil, nil, err
	}
	static, err = fs.Sub(web.FS, "static")
	if err != nil {
		return nil, nil, err
	}
	return templates, static, nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
