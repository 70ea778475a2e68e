package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/DukeRupert/badrumsundsvall/internal/domain"
	"github.com/DukeRupert/badrumsundsvall/internal/metrics"
	"github.com/DukeRupert/badrumsundsvall/internal/service"
)

// MaxLeadBodyBytes caps the size of a lead request body.
const MaxLeadBodyBytes = 64 << 10

// Client-facing messages for requests that never reach validation.
const (
	msgMalformedBody = "Ogiltig förfrågan. Ladda om sidan och försök igen."
	msgBodyTooLarge  = "Förfrågan är för stor."
)

// LeadResponse is the body of a successful submission.
type LeadResponse struct {
	OK bool `json:"ok"`
}

// LeadHandler handles quote-request submissions from the lead form.
type LeadHandler struct {
	leads  service.LeadService
	logger *slog.Logger
}

// NewLeadHandler creates a new LeadHandler.
func NewLeadHandler(leads service.LeadService, logger *slog.Logger) *LeadHandler {
	return &LeadHandler{
		leads:  leads,
		logger: logger,
	}
}

// RegisterRoutes registers the lead endpoint. wrap is applied to the
// handler, typically the lead rate limiter.
//
// Routes:
// - POST /api/leads -> Create
func (h *LeadHandler) RegisterRoutes(mux *http.ServeMux, wrap func(http.Handler) http.Handler) {
	mux.Handle("POST /api/leads", wrap(http.HandlerFunc(h.Create)))
}

// Create accepts one lead as a JSON object, validates it and forwards it
// by email.
//
// Responses:
//   - 200 {"ok": true}
//   - 400 {"error": ...} for a body that is not a JSON object
//   - 400 {"error": ..., "issues": [...]} for failed field checks
//   - 413 when the body exceeds MaxLeadBodyBytes
//   - 500 {"error": ...} when dispatch fails, with a generic message
func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := decodeLeadRequest(w, r)
	if err != nil {
		metrics.LeadOutcome(metrics.OutcomeMalformed)
		ErrorResponse(w, r, h.logger, err)
		return
	}

	if _, err := h.leads.Submit(r.Context(), req); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			ValidationErrorResponse(w, r, h.logger, err)
			return
		}
		ErrorResponse(w, r, h.logger, err)
		return
	}

	WriteJSON(w, http.StatusOK, LeadResponse{OK: true})
}

// decodeLeadRequest reads the capped body and decodes it as a JSON object.
// Unknown members are ignored; members of the wrong JSON type are not.
func decodeLeadRequest(w http.ResponseWriter, r *http.Request) (domain.LeadRequest, error) {
	const op = "lead.decode"

	var req domain.LeadRequest
	if r.Body == nil {
		return req, domain.Invalid(op, msgMalformedBody)
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxLeadBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return req, domain.Errorf(domain.ETOOLARGE, op, msgBodyTooLarge)
		}
		return req, &domain.Error{Code: domain.EINVALID, Op: op, Message: msgMalformedBody, Err: err}
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return req, domain.Invalid(op, msgMalformedBody)
	}

	if err := json.Unmarshal(trimmed, &req); err != nil {
		return req, &domain.Error{Code: domain.EINVALID, Op: op, Message: msgMalformedBody, Err: err}
	}
	return req, nil
}
