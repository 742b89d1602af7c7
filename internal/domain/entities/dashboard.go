package entities

import "time"

// DashboardStats is the aggregate view rendered on the admin home page
type DashboardStats struct {
	Admins         int64            `json:"admins"`
	Contacts       int64            `json:"contacts"`
	Events         int64            `json:"events"`
	Recruitment    RecruitmentStats `json:"recruitment"`
	BrainGames     StatusSummary    `json:"brainGames"`
	NewEvent       StatusSummary    `json:"newEvent"`
	RecentContacts []*Contact       `json:"recentContacts"`
	GeneratedAt    time.Time        `json:"generatedAt"`
}
