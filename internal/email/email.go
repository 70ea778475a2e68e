// Package email delivers lead notifications to the business inbox.
//
// This package defines a Sender interface with implementations for:
// - SMTPTransport: submission through an authenticated SMTP relay
// - LazySender: builds the transport on first use and reuses it
package email

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// =============================================================================
// Interface Definition
// =============================================================================

// Sender hands one fully composed message to a mail transport.
//
// Send is called at most once per lead; implementations must not retry.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// =============================================================================
// Email Data Types
// =============================================================================

// Message is a single outbound email, composed once per lead.
type Message struct {
	To          string // Recipient email address
	ToName      string // Recipient display name
	From        string // Sender email address
	FromName    string // Sender display name
	ReplyTo     string // Address replies go to (the prospect)
	ReplyToName string // Display name for Reply-To
	Subject     string // Email subject line
	TextBody    string // Plain text content
	HTMLBody    string // HTML content
	Headers     map[string]string
}

// Envelope holds the fixed addresses every lead message is sent between.
type Envelope struct {
	To       string
	ToName   string
	From     string
	FromName string
}

// =============================================================================
// Configuration Types
// =============================================================================

// SMTPConfig holds SMTP relay configuration.
type SMTPConfig struct {
	Host     string        // Relay hostname
	Port     int           // 465 for implicit TLS, anything else uses STARTTLS
	Username string        // PLAIN auth username
	Password string        // PLAIN auth password
	From     string        // Envelope sender and From address
	FromName string        // From display name
	Timeout  time.Duration // Per-command and submission timeout

	// Optional DKIM signing
	DKIMDomain   string
	DKIMSelector string
	DKIMKeyPath  string
}

// Validate reports which required settings are missing, naming the
// environment variables that supply them.
func (c SMTPConfig) Validate() error {
	var missing []string
	if strings.TrimSpace(c.Host) == "" {
		missing = append(missing, "SMTP_HOST")
	}
	if c.Port <= 0 {
		missing = append(missing, "SMTP_PORT")
	}
	if c.Username == "" {
		missing = append(missing, "SMTP_USER")
	}
	if c.Password == "" {
		missing = append(missing, "SMTP_PASS")
	}
	if strings.TrimSpace(c.From) == "" {
		missing = append(missing, "SMTP_FROM")
	}
	if len(missing) > 0 {
		return fmt.Errorf("smtp not configured: missing %s", strings.Join(missing, ", "))
	}
	return nil
}

// =============================================================================
// Common Constants
// =============================================================================

const (
	// DefaultFromName is the default sender display name.
	DefaultFromName = "Badrumsrenovering Sundsvall"

	// DefaultTimeout bounds each SMTP command when none is configured.
	DefaultTimeout = 15 * time.Second

	// LeadReferenceHeader carries the per-lead reference id.
	LeadReferenceHeader = "X-Lead-Reference"
)
