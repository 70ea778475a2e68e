package email

import (
	"bytes"
	"context"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"io"
	"log/slog"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/jhillyerd/enmime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// In-process relay
// =============================================================================

type receivedMail struct {
	user string
	from string
	to   []string
	data []byte
}

type relayBackend struct {
	username string
	password string

	mu   sync.Mutex
	mail []receivedMail
}

func (b *relayBackend) NewSession(_ *smtp.Conn) (smtp.Session, error) {
	return &relaySession{backend: b}, nil
}

func (b *relayBackend) received() []receivedMail {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]receivedMail(nil), b.mail...)
}

type relaySession struct {
	backend *relayBackend
	current receivedMail
}

func (s *relaySession) AuthMechanisms() []string {
	return []string{sasl.Plain}
}

func (s *relaySession) Auth(mech string) (sasl.Server, error) {
	return sasl.NewPlainServer(func(identity, username, password string) error {
		if username != s.backend.username || password != s.backend.password {
			return errors.New("invalid credentials")
		}
		s.current.user = username
		return nil
	}), nil
}

func (s *relaySession) Mail(from string, _ *smtp.MailOptions) error {
	if s.current.user == "" {
		return smtp.ErrAuthRequired
	}
	s.current.from = from
	return nil
}

func (s *relaySession) Rcpt(to string, _ *smtp.RcptOptions) error {
	s.current.to = append(s.current.to, to)
	return nil
}

func (s *relaySession) Data(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.current.data = data

	s.backend.mu.Lock()
	s.backend.mail = append(s.backend.mail, s.current)
	s.backend.mu.Unlock()
	return nil
}

func (s *relaySession) Reset() {
	s.current = receivedMail{user: s.current.user}
}

func (s *relaySession) Logout() error { return nil }

func newRelayServer(t *testing.T) (*smtp.Server, *relayBackend) {
	t.Helper()

	backend := &relayBackend{username: "relay-user", password: "relay-pass"}

	server := smtp.NewServer(backend)
	server.Domain = "localhost"
	server.ReadTimeout = 5 * time.Second
	server.WriteTimeout = 5 * time.Second
	server.TLSConfig = &tls.Config{Certificates: []tls.Certificate{selfSignedCert(t)}}
	t.Cleanup(func() { _ = server.Close() })

	return server, backend
}

// startRelay runs a STARTTLS-capable SMTP server on a random local port.
func startRelay(t *testing.T) (*relayBackend, int) {
	t.Helper()

	server, backend := newRelayServer(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() { _ = server.Serve(ln) }()

	return backend, ln.Addr().(*net.TCPAddr).Port
}

// startTLSRelay runs an SMTP server that expects TLS from the first byte,
// like a submission relay on 465, and returns its address.
func startTLSRelay(t *testing.T) (*relayBackend, string) {
	t.Helper()

	server, backend := newRelayServer(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() { _ = server.Serve(tls.NewListener(ln, server.TLSConfig)) }()

	return backend, ln.Addr().String()
}

func selfSignedCert(t *testing.T) tls.Certificate {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "localhost"},
		DNSNames:     []string{"localhost"},
		IPAddresses:  []net.IP{net.IPv4(127, 0, 0, 1)},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)

	return tls.Certificate{Certificate: [][]byte{der}, PrivateKey: key}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func relayConfig(port int) SMTPConfig {
	return SMTPConfig{
		Host:     "127.0.0.1",
		Port:     port,
		Username: "relay-user",
		Password: "relay-pass",
		From:     "leads@badrum-sundsvall.se",
		FromName: "Badrumsrenovering Sundsvall",
		Timeout:  5 * time.Second,
	}
}

func insecureTLS() TransportOption {
	return WithTLSConfig(&tls.Config{InsecureSkipVerify: true}) //nolint:gosec // throwaway test certificate
}

// =============================================================================
// Tests
// =============================================================================

func TestSMTPTransport_DeliversOverSTARTTLS(t *testing.T) {
	backend, port := startRelay(t)

	transport, err := NewSMTPTransport(relayConfig(port), testLogger(), insecureTLS())
	require.NoError(t, err)

	msg, err := ComposeLeadMessage(sampleLead(), testEnvelope)
	require.NoError(t, err)
	msg.Headers = map[string]string{LeadReferenceHeader: "ref-123"}

	require.NoError(t, transport.Send(context.Background(), msg))

	mail := backend.received()
	require.Len(t, mail, 1)
	assert.Equal(t, "relay-user", mail[0].user)
	assert.Equal(t, "leads@badrum-sundsvall.se", mail[0].from)
	assert.Equal(t, []string{"linn@innovobygg.se"}, mail[0].to)

	env, err := enmime.ReadEnvelope(bytes.NewReader(mail[0].data))
	require.NoError(t, err)
	assert.Equal(t, "Ny badrumsförfrågan: Anna Svensson (85230)", env.GetHeader("Subject"))
	assert.Contains(t, env.GetHeader("Reply-To"), "anna@example.se")
	assert.Equal(t, "ref-123", env.GetHeader(LeadReferenceHeader))
	assert.Contains(t, env.Text, "Typ av projekt: Renovering av befintligt badrum")
	assert.Contains(t, env.HTML, "<td>Anna Svensson</td>")
}

func TestSMTPTransport_DeliversOverImplicitTLS(t *testing.T) {
	backend, addr := startTLSRelay(t)

	transport, err := NewSMTPTransport(relayConfig(465), testLogger(), insecureTLS())
	require.NoError(t, err)
	// Port 465 selects implicit TLS; the relay itself listens on a random port.
	transport.addr = addr

	msg, err := ComposeLeadMessage(sampleLead(), testEnvelope)
	require.NoError(t, err)

	require.NoError(t, transport.Send(context.Background(), msg))

	mail := backend.received()
	require.Len(t, mail, 1)
	assert.Equal(t, "relay-user", mail[0].user)
	assert.Equal(t, "leads@badrum-sundsvall.se", mail[0].from)
	assert.Equal(t, []string{"linn@innovobygg.se"}, mail[0].to)

	env, err := enmime.ReadEnvelope(bytes.NewReader(mail[0].data))
	require.NoError(t, err)
	assert.Equal(t, "Ny badrumsförfrågan: Anna Svensson (85230)", env.GetHeader("Subject"))
}

func TestSMTPTransport_RejectedCredentials(t *testing.T) {
	backend, port := startRelay(t)

	cfg := relayConfig(port)
	cfg.Password = "wrong"
	transport, err := NewSMTPTransport(cfg, testLogger(), insecureTLS())
	require.NoError(t, err)

	msg, err := ComposeLeadMessage(sampleLead(), testEnvelope)
	require.NoError(t, err)

	err = transport.Send(context.Background(), msg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "smtp auth")
	assert.Empty(t, backend.received())
}

func TestSMTPTransport_UnreachableRelay(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	transport, err := NewSMTPTransport(relayConfig(port), testLogger(), insecureTLS())
	require.NoError(t, err)

	msg, err := ComposeLeadMessage(sampleLead(), testEnvelope)
	require.NoError(t, err)

	err = transport.Send(context.Background(), msg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect to")
}

func TestSMTPTransport_CanceledContext(t *testing.T) {
	transport, err := NewSMTPTransport(relayConfig(2525), testLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = transport.Send(ctx, Message{To: "linn@innovobygg.se"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSMTPTransport_DKIMSignature(t *testing.T) {
	_, key, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	der, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)

	keyPath := filepath.Join(t.TempDir(), "dkim.pem")
	require.NoError(t, os.WriteFile(keyPath, pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}), 0o600))

	cfg := relayConfig(587)
	cfg.DKIMDomain = "badrum-sundsvall.se"
	cfg.DKIMSelector = "leads"
	cfg.DKIMKeyPath = keyPath

	transport, err := NewSMTPTransport(cfg, testLogger())
	require.NoError(t, err)

	msg, err := ComposeLeadMessage(sampleLead(), testEnvelope)
	require.NoError(t, err)

	raw, err := transport.encode(msg)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("DKIM-Signature:")))
	assert.Contains(t, string(raw), "d=badrum-sundsvall.se")
	assert.Contains(t, string(raw), "s=leads")
}

func TestSMTPTransport_NoDKIMByDefault(t *testing.T) {
	transport, err := NewSMTPTransport(relayConfig(587), testLogger())
	require.NoError(t, err)

	msg, err := ComposeLeadMessage(sampleLead(), testEnvelope)
	require.NoError(t, err)

	raw, err := transport.encode(msg)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "DKIM-Signature")
}

func TestNewSMTPTransport_BadDKIMKey(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "dkim.pem")
	require.NoError(t, os.WriteFile(keyPath, []byte("not a key"), 0o600))

	cfg := relayConfig(587)
	cfg.DKIMDomain = "badrum-sundsvall.se"
	cfg.DKIMKeyPath = keyPath

	_, err := NewSMTPTransport(cfg, testLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dkim")
}

func TestSMTPConfig_Validate(t *testing.T) {
	assert.NoError(t, relayConfig(587).Validate())

	err := SMTPConfig{Host: "smtp.example.com"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SMTP_PORT")
	assert.Contains(t, err.Error(), "SMTP_USER")
	assert.Contains(t, err.Error(), "SMTP_PASS")
	assert.Contains(t, err.Error(), "SMTP_FROM")
	assert.NotContains(t, err.Error(), "SMTP_HOST")
}

func TestUsesImplicitTLS(t *testing.T) {
	assert.True(t, usesImplicitTLS(465))
	assert.False(t, usesImplicitTLS(587))
	assert.False(t, usesImplicitTLS(25))
	assert.False(t, usesImplicitTLS(2525))
}
