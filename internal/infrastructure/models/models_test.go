package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"gdgoc.backend/internal/domain/entities"
)

func TestTableNames(t *testing.T) {
	assert.Equal(t, "admins", Admin{}.TableName())
	assert.Equal(t, "recruitment_applications", RecruitmentApplication{}.TableName())
	assert.Equal(t, "brain_games_registrations", BrainGamesRegistration{}.TableName())
	assert.Equal(t, "brain_games_members", BrainGamesMember{}.TableName())
	assert.Equal(t, "new_event_registrations", NewEventRegistration{}.TableName())
	assert.Len(t, All(), 7)
}

func TestAdminMapping(t *testing.T) {
	e := &entities.Admin{ID: uuid.New(), Name: "Root", Username: "root", PasswordHash: "h", CreatedAt: time.Now()}
	m := NewAdmin(e)
	assert.Nil(t, m.ProfileImage)
	assert.Equal(t, e, m.ToEntity())

	e.ProfileImage = null.StringFrom("https://img/x.png")
	m = NewAdmin(e)
	require.NotNil(t, m.ProfileImage)
	assert.Equal(t, "https://img/x.png", m.ToEntity().ProfileImage.String)
}

func TestEventMapping_NilImages(t *testing.T) {
	m := NewEvent(&entities.Event{ID: uuid.New(), Title: "t"})
	assert.NotNil(t, m.Images)
	assert.NotNil(t, (&Event{ID: "bad"}).ToEntity().Images)
	assert.Equal(t, uuid.Nil, (&Event{ID: "bad"}).ToEntity().ID)
}

func TestBrainGamesMapping(t *testing.T) {
	e := &entities.BrainGamesRegistration{
		ID:       uuid.New(),
		TeamName: "  Quizzards ",
		Members: []entities.BrainGamesMember{
			{Name: "a", Email: "a@itu.edu.pk", RollNumber: "bscs23001", IsTeamLead: true},
			{Name: "b", Email: "b@x.com", RollNumber: "bscs23002"},
		},
		Status: entities.StatusSubmitted,
	}
	m := NewBrainGamesRegistration(e)
	assert.Equal(t, "quizzards", m.TeamNameCI)
	require.Len(t, m.Members, 2)
	assert.Equal(t, 1, m.Members[1].Position)
	assert.Equal(t, m.ID, m.Members[0].RegistrationID)

	back := m.ToEntity()
	assert.Equal(t, e.Members, back.Members)
	assert.Equal(t, e.ID, back.ID)
}

func TestNewEventMapping(t *testing.T) {
	e := &entities.NewEventRegistration{
		ID:       uuid.New(),
		TeamName: "Byte Me",
		Leader:   entities.NewEventLeader{Name: "L", Email: "l@u.edu", University: "ITU"},
		Members: []entities.NewEventMember{
			{Name: "m", Email: "m@u.edu", University: null.StringFrom("LUMS")},
			{Name: "n", Email: "n@u.edu"},
		},
		Status: entities.StatusRegistered,
	}
	m := NewNewEventRegistration(e)
	assert.Nil(t, m.Members[1].University)
	assert.Equal(t, e, m.ToEntity())
}

func TestRecruitmentMapping(t *testing.T) {
	e := &entities.RecruitmentApplication{
		ID:           uuid.New(),
		FullName:     "A",
		SelectedRole: entities.RoleLead,
		GithubURL:    null.StringFrom("https://github.com/a"),
		Status:       entities.StatusSubmitted,
	}
	m := NewRecruitmentApplication(e)
	assert.Nil(t, m.LinkedinURL)
	assert.Equal(t, "lead", m.SelectedRole)
	assert.Equal(t, e, m.ToEntity())
}
