package mailer

import (
	"bytes"
	"fmt"
	htmltmpl "html/template"
	"net/mail"
	"strings"
	texttmpl "text/template"
)

// Message is an outgoing email. Either Body or Template must be set.
type Message struct {
	To      []mail.Address
	Subject string
	Body    string // plain text, non-templated content

	Template string // template name without extension
	Data     interface{}

	TextContent string
	HTMLContent string
}

// ContextData is what every template receives
type ContextData struct {
	AppName         string
	FrontendBaseURL string
	Data            interface{}
}

func (m *Message) HasRecipients() bool { return len(m.To) > 0 }
func (m *Message) HasContent() bool    { return m.TextContent != "" || m.HTMLContent != "" }

// Recipients returns the bare addresses of every recipient
func (m *Message) Recipients() []string {
	out := make([]string, 0, len(m.To))
	for _, a := range m.To {
		out = append(out, a.Address)
	}
	return out
}

func joinAddresses(addrs []mail.Address) string {
	parts := make([]string, 0, len(addrs))
	for _, a := range addrs {
		parts = append(parts, a.String())
	}
	return strings.Join(parts, ", ")
}

// Renderer turns templated messages into text and HTML bodies
type Renderer struct {
	appName         string
	frontendBaseURL string
	text            map[string]*texttmpl.Template
	html            map[string]*htmltmpl.Template
}

// NewRenderer parses the embedded templates
func NewRenderer(appName, frontendBaseURL string) (*Renderer, error) {
	r := &Renderer{
		appName:         appName,
		frontendBaseURL: strings.TrimRight(frontendBaseURL, "/"),
		text:            make(map[string]*texttmpl.Template),
		html:            make(map[string]*htmltmpl.Template),
	}
	for _, name := range TemplateNames {
		tt, err := texttmpl.ParseFS(templateFS, "templates/layout.txt", "templates/"+name+".txt")
		if err != nil {
			return nil, fmt.Errorf("parse %s.txt: %w", name, err)
		}
		ht, err := htmltmpl.ParseFS(templateFS, "templates/layout.gohtml", "templates/"+name+".gohtml")
		if err != nil {
			return nil, fmt.Errorf("parse %s.gohtml: %w", name, err)
		}
		r.text[name] = tt.Option("missingkey=error")
		r.html[name] = ht.Option("missingkey=error")
	}
	return r, nil
}

// Render fills TextContent and HTMLContent
func (r *Renderer) Render(m *Message) error {
	if m.Body != "" {
		m.TextContent = m.Body
	}
	if m.Template == "" {
		return nil
	}

	tt, ok := r.text[m.Template]
	if !ok {
		return fmt.Errorf("unknown email template %q", m.Template)
	}
	data := ContextData{AppName: r.appName, FrontendBaseURL: r.frontendBaseURL, Data: m.Data}

	var buf bytes.Buffer
	if err := tt.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %s text: %w", m.Template, err)
	}
	m.TextContent = buf.String()

	buf.Reset()
	if err := r.html[m.Template].ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %s html: %w", m.Template, err)
	}
	m.HTMLContent = buf.String()
	return nil
}
