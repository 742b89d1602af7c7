package mailer

import (
	"context"
	"fmt"
	"net/http"
	"net/mail"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

var (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
	sendgridAPI      = sendgrid.API
)

// SendgridTransport sends through the SendGrid v3 HTTP API
type SendgridTransport struct {
	key  string
	from *sgmail.Email
}

var _ Transport = (*SendgridTransport)(nil)

func NewSendgridTransport(key string, from mail.Address) *SendgridTransport {
	return &SendgridTransport{
		key:  key,
		from: sgmail.NewEmail(from.Name, from.Address),
	}
}

func (t *SendgridTransport) Name() string { return DriverSendgrid }

func (t *SendgridTransport) Send(ctx context.Context, msg *Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	req := sendgrid.GetRequest(t.key, sendgridEndpoint, sendgridHost)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(t.prepare(msg))

	res, err := sendgridAPI(req)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid: unexpected status %d: %s", res.StatusCode, res.Body)
	}
	return nil
}

func (t *SendgridTransport) prepare(msg *Message) *sgmail.SGMailV3 {
	p := sgmail.NewPersonalization()
	p.Subject = msg.Subject
	for _, to := range msg.To {
		p.AddTos(sgmail.NewEmail(to.Name, to.Address))
	}

	m := sgmail.NewV3Mail()
	m.SetFrom(t.from)
	m.AddPersonalizations(p)
	m.AddContent(sgmail.NewContent("text/plain", msg.TextContent))
	if msg.HTMLContent != "" {
		m.AddContent(sgmail.NewContent("text/html", msg.HTMLContent))
	}
	return m
}
