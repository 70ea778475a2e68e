package internal

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	Port     int
	LogLevel string

	// Public site URL (canonical links, sitemap, structured data)
	SiteURL string

	// SMTP relay for lead dispatch. Host, port, username, password and
	// from are all required before a lead can be sent; NewConfig does not
	// fail on them so the static pages stay up while mail is misconfigured.
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	SMTPFromName string
	SMTPTimeout  time.Duration

	// Optional DKIM signing of outgoing lead mail
	DKIMDomain   string
	DKIMSelector string
	DKIMKeyPath  string

	// Business inbox that receives every lead
	LeadRecipient     string
	LeadRecipientName string

	// Per-IP limit on lead submissions
	LeadRateLimit  int
	LeadRateWindow time.Duration

	// Metrics endpoint authentication
	// If both are empty, the /metrics endpoint will be unprotected (not recommended)
	MetricsUsername string
	MetricsPassword string

	// Third-party tags, rendered only when set
	GAID                   string
	GoogleAdsID            string
	GoogleSiteVerification string
}

// DefaultLeadRecipient is the business inbox leads are forwarded to.
const DefaultLeadRecipient = "linn@innovobygg.se"

func NewConfig() (*Config, error) {
	// Load .env file if it exists (ignored in production)
	_ = godotenv.Load()

	cfg := &Config{
		Env:      getEnv("ENV", "development"),
		Port:     getEnvInt("PORT", 8080),
		LogLevel: getEnv("LOG_LEVEL", "debug"),

		SiteURL: strings.TrimSuffix(getEnv("SITE_URL", "https://badrum-sundsvall.se"), "/"),

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnvInt("SMTP_PORT", 0),
		SMTPUsername: getEnv("SMTP_USER", getEnv("SMTP_USERNAME", "")),
		SMTPPassword: getEnv("SMTP_PASS", getEnv("SMTP_PASSWORD", "")),
		SMTPFrom:     getEnv("SMTP_FROM", ""),
		SMTPFromName: getEnv("SMTP_FROM_NAME", "Badrumsrenovering Sundsvall"),
		SMTPTimeout:  getEnvDuration("SMTP_TIMEOUT", 15*time.Second),

		DKIMDomain:   getEnv("DKIM_DOMAIN", ""),
		DKIMSelector: getEnv("DKIM_SELECTOR", "default"),
		DKIMKeyPath:  getEnv("DKIM_KEY_PATH", ""),

		LeadRecipient:     strings.ToLower(getEnv("LEAD_RECIPIENT", DefaultLeadRecipient)),
		LeadRecipientName: getEnv("LEAD_RECIPIENT_NAME", "Innovo Bygg"),

		LeadRateLimit:  getEnvInt("LEAD_RATE_LIMIT", 5),
		LeadRateWindow: getEnvDuration("LEAD_RATE_WINDOW", 10*time.Minute),

		MetricsUsername: getEnv("METRICS_USERNAME", ""),
		MetricsPassword: getEnv("METRICS_PASSWORD", ""),

		GAID:                   getEnv("GA_ID", ""),
		GoogleAdsID:            getEnv("GOOGLE_ADS_ID", ""),
		GoogleSiteVerification: getEnv("GOOGLE_SITE_VERIFICATION", ""),
	}

	if !strings.HasPrefix(cfg.SiteURL, "http://") && !strings.HasPrefix(cfg.SiteURL, "https://") {
		return nil, fmt.Errorf("SITE_URL must start with http:// or https://, got: %s", cfg.SiteURL)
	}

	if cfg.LeadRateLimit < 1 {
		return nil, fmt.Errorf("LEAD_RATE_LIMIT must be at least 1, got: %d", cfg.LeadRateLimit)
	}

	if cfg.LeadRateWindow <= 0 {
		return nil, fmt.Errorf("LEAD_RATE_WINDOW must be positive, got: %s", cfg.LeadRateWindow)
	}

	if cfg.DKIMKeyPath != "" && cfg.DKIMDomain == "" {
		return nil, fmt.Errorf("DKIM_DOMAIN is required when DKIM_KEY_PATH is set")
	}

	return cfg, nil
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
