package mailer

import "embed"

//go:embed templates/*.txt templates/*.gohtml
var templateFS embed.FS

// Template names
const (
	TemplateContactReceived     = "contact_received"
	TemplateApplicationReceived = "application_received"
	TemplateApplicationDecision = "application_decision"
)

// TemplateNames lists every template parsed by NewRenderer
var TemplateNames = []string{
	TemplateContactReceived,
	TemplateApplicationReceived,
	TemplateApplicationDecision,
}

// ContactReceivedData feeds the contact acknowledgement
type ContactReceivedData struct {
	Name    string
	Message string
}

// ApplicationReceivedData feeds the registration/application acknowledgement
type ApplicationReceivedData struct {
	Name    string
	Program string // e.g. "GDG recruitment", "Brain Games"
	Details []Detail
}

// ApplicationDecisionData feeds the accepted/rejected notice
type ApplicationDecisionData struct {
	Name     string
	Program  string
	Accepted bool
}

// Detail is a label/value row shown in acknowledgement emails
type Detail struct {
	Label string
	Value string
}
