package sms

import (
	"context"
	"log/slog"
	"net/http"

	"neighbiz/internal/pkg/config"
	"neighbiz/internal/pkg/errs"
	"neighbiz/internal/usecase/commands"

	"github.com/go-resty/resty/v2"
)

const (
	ProviderLog  = "log"
	ProviderHTTP = "http"

	messagesPath = "/messages"
)

var (
	ErrUnknownProvider = errs.New("unknown sms provider")
	ErrGatewayRejected = errs.New("sms gateway rejected message")
)

func NewSender(cfg config.SMSConfig) (commands.SMSSender, error) {
	switch cfg.Provider {
	case ProviderLog:
		return NewLogSender(), nil
	case ProviderHTTP:
		return NewHTTPSender(cfg), nil
	default:
		return nil, errs.Wrapf(ErrUnknownProvider, "provider %q", cfg.Provider)
	}
}

// LogSender writes messages to the log instead of delivering them. Development only.
type LogSender struct{}

func NewLogSender() *LogSender {
	return &LogSender{}
}

func (s *LogSender) Send(_ context.Context, phone, message string) error {
	slog.Info("sms not delivered (log provider)", "phone", phone, "message", message)
	return nil
}

// HTTPSender posts form-encoded messages to an SMS gateway.
type HTTPSender struct {
	client *resty.Client
	from   string
}

func NewHTTPSender(cfg config.SMSConfig) *HTTPSender {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.APIKey).
		SetHeader("Accept", "application/json")

	return &HTTPSender{client: client, from: cfg.Sender}
}

func (s *HTTPSender) Send(ctx context.Context, phone, message string) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"To":   phone,
			"From": s.from,
			"Body": message,
		}).
		Post(messagesPath)
	if err != nil {
		return errs.Wrap(err, "sms gateway request failed")
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		slog.Warn("sms gateway rejected message",
			"status", resp.StatusCode(),
			"body", resp.String())
		return errs.Wrapf(ErrGatewayRejected, "status %d", resp.StatusCode())
	}
	return nil
}
