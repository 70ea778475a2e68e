package metrics

import "time"

// Lead outcomes
const (
	OutcomeAccepted  = "accepted"
	OutcomeInvalid   = "invalid"
	OutcomeMalformed = "malformed"
	OutcomeFailed    = "failed"
)

// LeadOutcome records the final outcome of one lead submission.
func LeadOutcome(outcome string) {
	LeadsTotal.WithLabelValues(outcome).Inc()
}

// MailDispatched records how long a dispatch took and whether it succeeded.
func MailDispatched(duration time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	MailDispatchDuration.WithLabelValues(result).Observe(duration.Seconds())
}

// LeadRateLimited records a submission rejected before validation.
func LeadRateLimited() {
	LeadsRateLimited.Inc()
}
