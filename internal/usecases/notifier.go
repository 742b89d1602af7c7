package usecases

import (
	"net/mail"
	"strconv"

	"gdgoc.backend/internal/domain/entities"
)

// Mailer queues outgoing notifications. Notify must not block.
type Mailer interface {
	Notify(n *entities.Notification) bool
}

// Notifier builds the transactional emails sent after form submissions and
// review decisions. A nil mailer disables notifications.
type Notifier struct {
	mailer Mailer
}

func NewNotifier(m Mailer) *Notifier {
	return &Notifier{mailer: m}
}

func (n *Notifier) send(msg *entities.Notification) {
	if n == nil || n.mailer == nil {
		return
	}
	n.mailer.Notify(msg)
}

func (n *Notifier) ContactReceived(c *entities.Contact) {
	n.send(&entities.Notification{
		Kind:    entities.NotificationContactReceived,
		To:      []mail.Address{{Name: c.Name, Address: c.Email}},
		Subject: SubjectContactReceived,
		Name:    c.Name,
		Message: c.Message,
	})
}

func (n *Notifier) RecruitmentReceived(app *entities.RecruitmentApplication) {
	n.send(&entities.Notification{
		Kind:    entities.NotificationApplicationReceived,
		To:      []mail.Address{{Name: app.FullName, Address: app.Email}},
		Subject: SubjectRecruitmentReceived,
		Name:    app.FullName,
		Program: ProgramRecruitment,
		Details: []entities.NotificationDetail{
			{Label: "Team", Value: app.SelectedTeam},
			{Label: "Role", Value: string(app.SelectedRole)},
			{Label: "Roll number", Value: app.RollNumber},
		},
	})
}

func (n *Notifier) RecruitmentDecision(app *entities.RecruitmentApplication) {
	n.decision(app.Status, ProgramRecruitment, app.FullName, mail.Address{Name: app.FullName, Address: app.Email})
}

func (n *Notifier) BrainGamesReceived(reg *entities.BrainGamesRegistration) {
	lead := reg.TeamLead()
	if lead == nil {
		return
	}
	n.send(&entities.Notification{
		Kind:    entities.NotificationApplicationReceived,
		To:      brainGamesRecipients(reg),
		Subject: SubjectBrainGamesReceived,
		Name:    lead.Name,
		Program: ProgramBrainGames,
		Details: []entities.NotificationDetail{
			{Label: "Team", Value: reg.TeamName},
			{Label: "Members", Value: strconv.Itoa(len(reg.Members))},
		},
	})
}

func (n *Notifier) BrainGamesDecision(reg *entities.BrainGamesRegistration) {
	lead := reg.TeamLead()
	if lead == nil {
		return
	}
	n.decision(reg.Status, ProgramBrainGames, lead.Name, brainGamesRecipients(reg)...)
}

func (n *Notifier) NewEventReceived(reg *entities.NewEventRegistration) {
	n.send(&entities.Notification{
		Kind:    entities.NotificationApplicationReceived,
		To:      []mail.Address{{Name: reg.Leader.Name, Address: reg.Leader.Email}},
		Subject: SubjectNewEventReceived,
		Name:    reg.Leader.Name,
		Program: ProgramNewEvent,
		Details: []entities.NotificationDetail{
			{Label: "Team", Value: reg.TeamName},
			{Label: "University", Value: reg.Leader.University},
			{Label: "Members", Value: strconv.Itoa(len(reg.Members) + 1)},
		},
	})
}

func (n *Notifier) NewEventDecision(reg *entities.NewEventRegistration) {
	n.decision(reg.Status, ProgramNewEvent, reg.Leader.Name, mail.Address{Name: reg.Leader.Name, Address: reg.Leader.Email})
}

func (n *Notifier) decision(status entities.ApplicationStatus, program, name string, to ...mail.Address) {
	if !status.IsDecision() || len(to) == 0 {
		return
	}
	accepted := status == entities.StatusAccepted
	subject := SubjectRejected
	if accepted {
		subject = SubjectAccepted
	}
	n.send(&entities.Notification{
		Kind:     entities.NotificationApplicationDecision,
		To:       to,
		Subject:  subject,
		Name:     name,
		Program:  program,
		Accepted: accepted,
	})
}

func brainGamesRecipients(reg *entities.BrainGamesRegistration) []mail.Address {
	out := make([]mail.Address, 0, len(reg.Members))
	for _, m := range reg.Members {
		out = append(out, mail.Address{Name: m.Name, Address: m.Email})
	}
	return out
}
