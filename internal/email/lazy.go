package email

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// LazySender builds its underlying Sender on the first Send and reuses it
// for the life of the process. A construction error is remembered too:
// configuration cannot change without a restart, so every later Send
// fails the same way without retrying the build.
type LazySender struct {
	get func() (Sender, error)
}

// NewLazySender wraps build so it runs at most once.
func NewLazySender(build func() (Sender, error)) *LazySender {
	return &LazySender{get: sync.OnceValues(build)}
}

// NewLazySMTPSender defers NewSMTPTransport until the first lead arrives,
// so the site keeps serving pages while mail is misconfigured.
func NewLazySMTPSender(config SMTPConfig, logger *slog.Logger, opts ...TransportOption) *LazySender {
	return NewLazySender(func() (Sender, error) {
		return NewSMTPTransport(config, logger, opts...)
	})
}

// Send forwards to the memoized transport.
func (l *LazySender) Send(ctx context.Context, msg Message) error {
	sender, err := l.get()
	if err != nil {
		return fmt.Errorf("mail transport unavailable: %w", err)
	}
	return sender.Send(ctx, msg)
}

var _ Sender = (*LazySender)(nil)
