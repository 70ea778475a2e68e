package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/DukeRupert/badrumsundsvall/internal/domain"
	"github.com/DukeRupert/badrumsundsvall/internal/email"
	"github.com/DukeRupert/badrumsundsvall/internal/metrics"
)

// LeadService defines the interface for lead submission.
type LeadService interface {
	// Submit validates the request, composes the notification and
	// dispatches it exactly once. It returns a *domain.ValidationError for
	// bad input and a domain.Internal error when dispatch fails.
	Submit(ctx context.Context, req domain.LeadRequest) (Receipt, error)
}

// Receipt identifies an accepted lead in logs and mail headers.
type Receipt struct {
	Reference string
}

// leadService implements LeadService.
type leadService struct {
	sender   email.Sender
	envelope email.Envelope
	logger   *slog.Logger
}

// NewLeadService creates a new LeadService.
func NewLeadService(sender email.Sender, envelope email.Envelope, logger *slog.Logger) LeadService {
	return &leadService{
		sender:   sender,
		envelope: envelope,
		logger:   logger,
	}
}

// Submit validates the request, composes the notification and dispatches it.
func (s *leadService) Submit(ctx context.Context, req domain.LeadRequest) (Receipt, error) {
	const op = "LeadService.Submit"

	lead, err := ValidateLead(req)
	if err != nil {
		metrics.LeadOutcome(metrics.OutcomeInvalid)
		return Receipt{}, err
	}

	msg, err := email.ComposeLeadMessage(lead, s.envelope)
	if err != nil {
		s.logger.Error("failed to compose lead message", "error", err, "op", op)
		metrics.LeadOutcome(metrics.OutcomeFailed)
		return Receipt{}, domain.Internal(err, op, "Failed to compose lead message")
	}

	ref := uuid.NewString()
	msg.Headers = map[string]string{email.LeadReferenceHeader: ref}

	start := time.Now()
	err = s.sender.Send(ctx, msg)
	metrics.MailDispatched(time.Since(start), err)
	if err != nil {
		s.logger.Error("failed to send lead",
			"error", err,
			"op", op,
			"lead_ref", ref,
			"postal_code", lead.PostalCode,
		)
		metrics.LeadOutcome(metrics.OutcomeFailed)
		return Receipt{}, domain.Internal(err, op, "Failed to send lead")
	}

	metrics.LeadOutcome(metrics.OutcomeAccepted)
	s.logger.Info("lead accepted",
		"lead_ref", ref,
		"project_type", string(lead.ProjectType),
		"postal_code", lead.PostalCode,
		"source_path", lead.SourcePath,
	)

	return Receipt{Reference: ref}, nil
}
