package email

import (
	"bytes"
	"context"
	"crypto"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"sort"
	"strconv"

	"github.com/emersion/go-msgauth/dkim"
	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/jhillyerd/enmime"
)

// =============================================================================
// SMTP Transport Implementation
// =============================================================================

// SMTPTransport submits messages to an authenticated SMTP relay.
//
// The transport itself is immutable after construction and safe for
// concurrent use. Each Send opens its own connection because a go-smtp
// client is not safe to share between goroutines.
type SMTPTransport struct {
	config    SMTPConfig
	addr      string
	tlsConfig *tls.Config
	signer    crypto.Signer // nil when DKIM is disabled
	logger    *slog.Logger
}

// TransportOption customizes an SMTPTransport.
type TransportOption func(*SMTPTransport)

// WithTLSConfig replaces the TLS configuration used to reach the relay.
func WithTLSConfig(cfg *tls.Config) TransportOption {
	return func(t *SMTPTransport) {
		t.tlsConfig = cfg
	}
}

// NewSMTPTransport validates the configuration and builds a transport.
// The DKIM key, if configured, is loaded here so a bad key fails fast.
func NewSMTPTransport(config SMTPConfig, logger *slog.Logger, opts ...TransportOption) (*SMTPTransport, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if config.FromName == "" {
		config.FromName = DefaultFromName
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}

	t := &SMTPTransport{
		config: config,
		addr:   net.JoinHostPort(config.Host, strconv.Itoa(config.Port)),
		tlsConfig: &tls.Config{
			ServerName: config.Host,
			MinVersion: tls.VersionTLS12,
		},
		logger: logger,
	}

	if config.DKIMKeyPath != "" {
		signer, err := LoadDKIMSigner(config.DKIMKeyPath)
		if err != nil {
			return nil, fmt.Errorf("load dkim key: %w", err)
		}
		t.signer = signer
	}

	for _, opt := range opts {
		opt(t)
	}

	return t, nil
}

// =============================================================================
// Sender Interface Implementation
// =============================================================================

// Send encodes msg as multipart/alternative MIME, signs it when DKIM is
// configured, and submits it to the relay over TLS with PLAIN auth.
func (t *SMTPTransport) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := t.encode(msg)
	if err != nil {
		return err
	}

	c, err := t.dial()
	if err != nil {
		return fmt.Errorf("connect to %s: %w", t.addr, err)
	}
	defer c.Close()

	// Abort the conversation if the request goes away mid-send.
	stop := context.AfterFunc(ctx, func() { _ = c.Close() })
	defer stop()

	c.CommandTimeout = t.config.Timeout
	c.SubmissionTimeout = t.config.Timeout

	if err := c.Auth(sasl.NewPlainClient("", t.config.Username, t.config.Password)); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}

	if err := c.SendMail(t.config.From, []string{msg.To}, bytes.NewReader(raw)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	if err := c.Quit(); err != nil {
		t.logger.Debug("smtp quit failed", "error", err)
	}

	t.logger.Info("email sent",
		"to", msg.To,
		"subject", msg.Subject,
		"dkim", t.signer != nil,
	)

	return nil
}

// =============================================================================
// Internal Methods
// =============================================================================

// dial connects with implicit TLS on 465 and STARTTLS everywhere else.
func (t *SMTPTransport) dial() (*smtp.Client, error) {
	if usesImplicitTLS(t.config.Port) {
		return smtp.DialTLS(t.addr, t.tlsConfig)
	}
	return smtp.DialStartTLS(t.addr, t.tlsConfig)
}

func usesImplicitTLS(port int) bool {
	return port == 465
}

// encode builds the MIME message and applies the DKIM signature.
func (t *SMTPTransport) encode(msg Message) ([]byte, error) {
	builder := enmime.Builder().
		From(msg.FromName, msg.From).
		To(msg.ToName, msg.To).
		Subject(msg.Subject).
		Text([]byte(msg.TextBody)).
		HTML([]byte(msg.HTMLBody))

	if msg.ReplyTo != "" {
		builder = builder.ReplyTo(msg.ReplyToName, msg.ReplyTo)
	}

	// Sorted so the encoded header block does not depend on map order.
	keys := make([]string, 0, len(msg.Headers))
	for k := range msg.Headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		builder = builder.Header(k, msg.Headers[k])
	}

	part, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("build message: %w", err)
	}

	var envelope bytes.Buffer
	if err := part.Encode(&envelope); err != nil {
		return nil, fmt.Errorf("encode message: %w", err)
	}

	if t.signer == nil {
		return envelope.Bytes(), nil
	}

	var signed bytes.Buffer
	if err := dkim.Sign(&signed, &envelope, &dkim.SignOptions{
		Domain:   t.config.DKIMDomain,
		Selector: t.config.DKIMSelector,
		Signer:   t.signer,
	}); err != nil {
		return nil, fmt.Errorf("dkim sign: %w", err)
	}
	return signed.Bytes(), nil
}

// LoadDKIMSigner reads a PEM encoded private key (PKCS#8, or PKCS#1 RSA)
// and returns it as a crypto.Signer.
func LoadDKIMSigner(path string) (crypto.Signer, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	block, _ := pem.Decode(b)
	if block == nil {
		return nil, errors.New("no PEM block found")
	}

	if block.Type == "RSA PRIVATE KEY" {
		return x509.ParsePKCS1PrivateKey(block.Bytes)
	}

	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, err
	}
	signer, ok := key.(crypto.Signer)
	if !ok {
		return nil, fmt.Errorf("unsupported private key type %T", key)
	}
	return signer, nil
}

// =============================================================================
// Compile-time interface check
// =============================================================================

var _ Sender = (*SMTPTransport)(nil)
