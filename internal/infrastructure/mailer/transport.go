package mailer

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"gdgoc.backend/internal/config"
)

// Mail drivers
const (
	DriverSMTP     = "smtp"
	DriverSendgrid = "sendgrid"
	DriverConsole  = "console"
	DriverNoop     = "noop"
)

// Transport delivers a rendered message
type Transport interface {
	Name() string
	Send(ctx context.Context, msg *Message) error
}

// NewTransport builds the transport selected by cfg.Driver
func NewTransport(cfg config.MailConfig) (Transport, error) {
	from := mail.Address{Name: cfg.FromName, Address: cfg.FromAddress}

	switch strings.ToLower(cfg.Driver) {
	case DriverSMTP:
		if cfg.SMTPHost == "" {
			return nil, fmt.Errorf("mailer: SMTP_HOST is required for the smtp driver")
		}
		return NewSMTPTransport(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, from), nil
	case DriverSendgrid:
		if cfg.SendgridAPIKey == "" {
			return nil, fmt.Errorf("mailer: SENDGRID_API_KEY is required for the sendgrid driver")
		}
		return NewSendgridTransport(cfg.SendgridAPIKey, from), nil
	case DriverConsole, "":
		return NewConsoleTransport(from), nil
	case DriverNoop:
		return NoopTransport{}, nil
	default:
		return nil, fmt.Errorf("mailer: unsupported driver %q", cfg.Driver)
	}
}
