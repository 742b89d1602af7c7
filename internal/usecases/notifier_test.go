package usecases_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gdgoc.backend/internal/domain/entities"
	"gdgoc.backend/internal/infrastructure/mailer"
	"gdgoc.backend/internal/usecases"
)

func TestNotifier_NilMailerIsSilent(t *testing.T) {
	var n *usecases.Notifier
	n.ContactReceived(&entities.Contact{Email: "a@example.com"})
	usecases.NewNotifier(nil).ContactReceived(&entities.Contact{Email: "a@example.com"})
}

func TestNotifier_DecisionOnlyForFinalStatuses(t *testing.T) {
	mails := &fakeMailer{}
	n := usecases.NewNotifier(mails)

	n.RecruitmentDecision(&entities.RecruitmentApplication{FullName: "A", Email: "a@example.com", Status: entities.StatusSubmitted})
	n.NewEventDecision(&entities.NewEventRegistration{Leader: entities.NewEventLeader{Email: "l@example.com"}, Status: entities.StatusRegistered})
	n.BrainGamesDecision(&entities.BrainGamesRegistration{Status: entities.StatusAccepted})
	assert.Empty(t, mails.Messages())

	n.NewEventDecision(&entities.NewEventRegistration{Leader: entities.NewEventLeader{Name: "L", Email: "l@example.com"}, Status: entities.StatusAccepted})
	msgs := mails.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, entities.NotificationApplicationDecision, msgs[0].Kind)
	assert.True(t, msgs[0].Accepted)
	assert.Equal(t, usecases.ProgramNewEvent, msgs[0].Program)
	assert.Equal(t, usecases.SubjectAccepted, msgs[0].Subject)
}

func TestNotifier_MessagesRenderWithEmbeddedTemplates(t *testing.T) {
	mails := &fakeMailer{}
	n := usecases.NewNotifier(mails)
	r, err := mailer.NewRenderer("GDG on Campus", "http://localhost:3000")
	require.NoError(t, err)

	n.ContactReceived(&entities.Contact{Name: "A", Email: "a@example.com", Message: "hello world!"})
	n.RecruitmentReceived(&entities.RecruitmentApplication{FullName: "A", Email: "a@example.com", SelectedTeam: "AI/ML", SelectedRole: entities.RoleMember})
	n.BrainGamesReceived(&entities.BrainGamesRegistration{TeamName: "Alpha", Members: []entities.BrainGamesMember{{Name: "L", Email: "l@itu.edu.pk"}}})
	n.NewEventReceived(&entities.NewEventRegistration{TeamName: "Beta", Leader: entities.NewEventLeader{Name: "L", Email: "l@uni.edu"}})
	n.RecruitmentDecision(&entities.RecruitmentApplication{FullName: "A", Email: "a@example.com", Status: entities.StatusRejected})

	msgs := mails.Messages()
	require.Len(t, msgs, 5)
	for _, n := range msgs {
		msg, err := mailer.NewMessage(n)
		require.NoError(t, err, n.Subject)
		require.NoError(t, r.Render(msg), msg.Subject)
		assert.True(t, msg.HasContent())
	}
}
