package entities

import "net/mail"

// NotificationKind selects which email a notification becomes
type NotificationKind string

const (
	NotificationContactReceived     NotificationKind = "contact_received"
	NotificationApplicationReceived NotificationKind = "application_received"
	NotificationApplicationDecision NotificationKind = "application_decision"
)

// NotificationDetail is a label/value row summarizing a submission
type NotificationDetail struct {
	Label string
	Value string
}

// Notification is a transactional email described in domain terms. Message
// is only used by contact acknowledgements and Accepted only by decisions.
type Notification struct {
	Kind     NotificationKind
	To       []mail.Address
	Subject  string
	Name     string
	Program  string
	Message  string
	Accepted bool
	Details  []NotificationDetail
}
