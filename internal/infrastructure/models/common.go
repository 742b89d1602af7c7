package models

import "github.com/google/uuid"

// Table and collection names
const (
	AdminsTable            = "admins"
	ContactsTable          = "contacts"
	EventsTable            = "events"
	RecruitmentTable       = "recruitment_applications"
	BrainGamesTable        = "brain_games_registrations"
	BrainGamesMembersTable = "brain_games_members"
	NewEventTable          = "new_event_registrations"
)

func parseID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}
