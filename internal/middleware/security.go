package middleware

import (
	"net/http"
	"strings"
)

// SecurityHeadersMiddleware adds HTTP security headers to all responses.
type SecurityHeadersMiddleware struct {
	isSecure bool // Whether to enable HTTPS-specific headers (true in production)
	csp      string
}

// NewSecurityHeadersMiddleware creates a new security headers middleware.
// Set isSecure to true in production to enable HSTS.
func NewSecurityHeadersMiddleware(isSecure bool) *SecurityHeadersMiddleware {
	return &SecurityHeadersMiddleware{
		isSecure: isSecure,
		csp:      buildCSP(),
	}
}

// Handler returns middleware that sets security headers on all responses.
func (m *SecurityHeadersMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()

		// Prevent clickjacking - deny all framing
		h.Set("X-Frame-Options", "DENY")

		// Prevent MIME type sniffing
		h.Set("X-Content-Type-Options", "nosniff")

		// Control referrer information
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")

		// HSTS - only in production with HTTPS
		if m.isSecure {
			// max-age=31536000 = 1 year
			h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		h.Set("Content-Security-Policy", m.csp)

		// Permissions Policy - disable browser features we don't need
		h.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=(), payment=()")

		next.ServeHTTP(w, r)
	})
}

// Google tag origins used by gtag.js for Analytics and Ads conversion tracking.
var googleTagSources = []string{
	"https://www.googletagmanager.com",
	"https://*.google-analytics.com",
	"https://*.analytics.google.com",
	"https://*.g.doubleclick.net",
	"https://www.google.com",
}

// buildCSP constructs the Content-Security-Policy header value.
func buildCSP() string {
	google := strings.Join(googleTagSources, " ")
	directives := []string{
		"default-src 'self'",
		// Scripts: self + gtag.js; unsafe-inline for the inline gtag config block
		"script-src 'self' 'unsafe-inline' https://www.googletagmanager.com",
		// Styles: self + unsafe-inline for inline style attributes
		"style-src 'self' 'unsafe-inline'",
		// Images: self + data URIs + tracking pixels
		"img-src 'self' data: " + google,
		"font-src 'self'",
		// Connect: lead submissions to self + analytics beacons
		"connect-src 'self' " + google,
		"frame-ancestors 'none'",
		"base-uri 'self'",
		"form-action 'self'",
	}
	return strings.Join(directives, "; ")
}
