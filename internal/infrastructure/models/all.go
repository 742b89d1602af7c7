package models

// All returns every SQL model in migration order
func All() []interface{} {
	return []interface{}{
		&Admin{},
		&Contact{},
		&Event{},
		&RecruitmentApplication{},
		&BrainGamesRegistration{},
		&BrainGamesMember{},
		&NewEventRegistration{},
	}
}
