package mailer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"gdgoc.backend/internal/domain/entities"
	"gdgoc.backend/pkg/logger"
)

// NewMessage maps a domain notification onto its template and template data
func NewMessage(n *entities.Notification) (*Message, error) {
	if n == nil {
		return nil, fmt.Errorf("nil notification")
	}
	msg := &Message{To: n.To, Subject: n.Subject}

	switch n.Kind {
	case entities.NotificationContactReceived:
		msg.Template = TemplateContactReceived
		msg.Data = ContactReceivedData{Name: n.Name, Message: n.Message}
	case entities.NotificationApplicationReceived:
		details := make([]Detail, 0, len(n.Details))
		for _, d := range n.Details {
			details = append(details, Detail{Label: d.Label, Value: d.Value})
		}
		msg.Template = TemplateApplicationReceived
		msg.Data = ApplicationReceivedData{Name: n.Name, Program: n.Program, Details: details}
	case entities.NotificationApplicationDecision:
		msg.Template = TemplateApplicationDecision
		msg.Data = ApplicationDecisionData{Name: n.Name, Program: n.Program, Accepted: n.Accepted}
	default:
		return nil, fmt.Errorf("unknown notification kind %q", n.Kind)
	}
	return msg, nil
}

// Notify queues the email for n. It reports false when n has no template or
// the message was dropped.
func (d *Dispatcher) Notify(n *entities.Notification) bool {
	msg, err := NewMessage(n)
	if err != nil {
		mailsDropped.Inc()
		logger.Warn(context.Background(), "Dropping notification", zap.Error(err))
		return false
	}
	return d.Enqueue(msg)
}
