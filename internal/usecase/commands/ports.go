package commands

import (
	"context"

	"neighbiz/internal/pkg/errs"
)

var ErrSMSSendFailed = errs.Dependency("SMS_SEND_FAILED", "failed to send verification message")

// SMSSender delivers text messages. Implementations must not be called inside a transaction.
type SMSSender interface {
	Send(ctx context.Context, phone, message string) error
}

// SendLimiter throttles verification messages per key (the phone number).
type SendLimiter interface {
	Allow(key string) bool
}
