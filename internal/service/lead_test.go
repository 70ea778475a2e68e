package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DukeRupert/badrumsundsvall/internal/domain"
	"github.com/DukeRupert/badrumsundsvall/internal/email"
)

// recordingSender captures every message handed to it.
type recordingSender struct {
	mu   sync.Mutex
	sent []email.Message
	err  error
}

func (s *recordingSender) Send(_ context.Context, msg email.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, msg)
	return s.err
}

func (s *recordingSender) messages() []email.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]email.Message(nil), s.sent...)
}

var testEnvelope = email.Envelope{
	To:       "linn@innovobygg.se",
	ToName:   "Innovo Bygg",
	From:     "leads@badrum-sundsvall.se",
	FromName: "Badrumsrenovering Sundsvall",
}

func newTestLeadService(sender email.Sender) LeadService {
	return NewLeadService(sender, testEnvelope, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestLeadService_Submit_Accepted(t *testing.T) {
	sender := &recordingSender{}
	svc := newTestLeadService(sender)

	receipt, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, receipt.Reference)

	sent := sender.messages()
	require.Len(t, sent, 1)
	msg := sent[0]

	assert.Equal(t, "linn@innovobygg.se", msg.To)
	assert.Equal(t, "anna@example.com", msg.ReplyTo)
	assert.Equal(t, receipt.Reference, msg.Headers[email.LeadReferenceHeader])
	assert.Contains(t, msg.TextBody, "Anna Svensson")
	assert.Contains(t, msg.TextBody, "85230")
	assert.Contains(t, msg.TextBody, "0701234567")
	assert.Contains(t, msg.TextBody, "Beskrivning:\n-\n")
}

func TestLeadService_Submit_InvalidSendsNothing(t *testing.T) {
	sender := &recordingSender{}
	svc := newTestLeadService(sender)

	req := validRequest()
	req.PostalCode = "123"

	_, err := svc.Submit(context.Background(), req)

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.True(t, ve.Has("postalCode"))
	assert.Empty(t, sender.messages())
}

func TestLeadService_Submit_DispatchFailure(t *testing.T) {
	sender := &recordingSender{err: errors.New("535 5.7.8 authentication failed for relay-user")}
	svc := newTestLeadService(sender)

	_, err := svc.Submit(context.Background(), validRequest())
	require.Error(t, err)

	assert.Equal(t, domain.EINTERNAL, domain.ErrorCode(err))
	assert.Equal(t, domain.GenericErrorMessage, domain.ErrorMessage(err))
	assert.NotContains(t, domain.ErrorMessage(err), "relay-user")
	assert.Len(t, sender.messages(), 1, "dispatch is attempted exactly once")
}

func TestLeadService_Submit_SequentialSendsBehaveAlike(t *testing.T) {
	sender := &recordingSender{}
	svc := newTestLeadService(sender)

	first, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	second, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	sent := sender.messages()
	require.Len(t, sent, 2)
	assert.NotEqual(t, first.Reference, second.Reference)

	// Apart from the reference header the two messages are identical.
	sent[0].Headers, sent[1].Headers = nil, nil
	assert.Equal(t, sent[0], sent[1])
}

func TestLeadService_Submit_ThroughLazySender(t *testing.T) {
	builds := 0
	inner := &recordingSender{}
	lazy := email.NewLazySender(func() (email.Sender, error) {
		builds++
		return inner, nil
	})
	svc := newTestLeadService(lazy)

	for i := 0; i < 3; i++ {
		_, err := svc.Submit(context.Background(), validRequest())
		require.NoError(t, err)
	}

	assert.Equal(t, 1, builds)
	assert.Len(t, inner.messages(), 3)
}
