package mailer

import (
	"context"
	"net/mail"
	"sync"

	"go.uber.org/zap"

	"gdgoc.backend/pkg/logger"
)

// ConsoleTransport logs messages instead of sending them. Used in development.
type ConsoleTransport struct {
	from mail.Address
}

var _ Transport = (*ConsoleTransport)(nil)

func NewConsoleTransport(from mail.Address) *ConsoleTransport {
	return &ConsoleTransport{from: from}
}

func (t *ConsoleTransport) Name() string { return DriverConsole }

func (t *ConsoleTransport) Send(ctx context.Context, msg *Message) error {
	logger.Info(ctx, "Email (console transport)",
		zap.String("from", t.from.String()),
		zap.String("to", joinAddresses(msg.To)),
		zap.String("subject", msg.Subject),
		zap.String("template", msg.Template),
		zap.String("body", msg.TextContent),
	)
	return nil
}

// NoopTransport discards every message
type NoopTransport struct{}

func (NoopTransport) Name() string                         { return DriverNoop }
func (NoopTransport) Send(context.Context, *Message) error { return nil }

// RecordingTransport keeps sent messages in memory. Tests use it to assert on outgoing mail.
type RecordingTransport struct {
	mu   sync.Mutex
	sent []Message
	Err  error
}

func (t *RecordingTransport) Name() string { return "recording" }

func (t *RecordingTransport) Send(_ context.Context, msg *Message) error {
	if t.Err != nil {
		return t.Err
	}
	t.mu.Lock()
	t.sent = append(t.sent, *msg)
	t.mu.Unlock()
	return nil
}

// Sent returns a copy of the recorded messages
func (t *RecordingTransport) Sent() []Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Message, len(t.sent))
	copy(out, t.sent)
	return out
}
