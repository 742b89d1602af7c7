package mailer

import (
	"context"
	"net/mail"

	"gopkg.in/gomail.v2"
)

type smtpSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPTransport sends through an SMTP relay (Gmail in production)
type SMTPTransport struct {
	from   mail.Address
	sender smtpSender
}

var _ Transport = (*SMTPTransport)(nil)

func NewSMTPTransport(host string, port int, username, password string, from mail.Address) *SMTPTransport {
	return &SMTPTransport{
		from:   from,
		sender: gomail.NewDialer(host, port, username, password),
	}
}

func (t *SMTPTransport) Name() string { return DriverSMTP }

func (t *SMTPTransport) Send(ctx context.Context, msg *Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return t.sender.DialAndSend(t.build(msg))
}

func (t *SMTPTransport) build(msg *Message) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", t.from.Address, t.from.Name)

	to := make([]string, 0, len(msg.To))
	for _, a := range msg.To {
		to = append(to, m.FormatAddress(a.Address, a.Name))
	}
	m.SetHeader("To", to...)
	m.SetHeader("Subject", msg.Subject)

	if msg.HTMLContent != "" {
		m.SetBody("text/plain", msg.TextContent)
		m.AddAlternative("text/html", msg.HTMLContent)
	} else {
		m.SetBody("text/plain", msg.TextContent)
	}
	return m
}
