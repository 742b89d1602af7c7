package usecases

import "time"

// Event listing
const (
	DefaultLatestEvents = 3
	MaxLatestEvents     = 20
)

// Dashboard cache
const (
	DashboardCacheKey   = "dashboard:stats"
	DashboardCacheTTL   = 30 * time.Second
	RecentContactsLimit = 5
)

// Program names used in notification emails
const (
	ProgramRecruitment = "GDG on Campus recruitment"
	ProgramBrainGames  = "Brain Games"
	ProgramNewEvent    = "event"
)

// Notification subjects
const (
	SubjectContactReceived     = "We received your message"
	SubjectRecruitmentReceived = "Application received"
	SubjectBrainGamesReceived  = "Brain Games registration received"
	SubjectNewEventReceived    = "Registration received"
	SubjectAccepted            = "Congratulations! You have been accepted"
	SubjectRejected            = "Update on your application"
)
