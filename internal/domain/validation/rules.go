package validation

import (
	"regexp"
	"strings"
	"sync"

	"gdgoc.backend/internal/domain/entities"
)

// Patterns shared by the binding tags and the published form options
const (
	RollNumberPattern = `^bs.{7}$`
	UsernamePattern   = `^[a-z0-9_.]{3,30}$`
	PhonePattern      = `^\+?[0-9]{10,15}$`

	DefaultInstitutionDomain = "itu.edu.pk"
)

// Length limits mirrored by the binding tags on the entity inputs
const (
	ContactMessageMin = 10
	ContactMessageMax = 1000
	EventImagesMax    = 10
	PasswordMin       = 8
	PasswordMax       = 72
	WhyJoinMin        = 10
	SemesterMin       = 1
	SemesterMax       = 8
	TeamNameMax       = 60
)

var (
	rollNumberRegex = regexp.MustCompile(`(?i)` + RollNumberPattern)
	usernameRegex   = regexp.MustCompile(UsernamePattern)
	phoneRegex      = regexp.MustCompile(PhonePattern)

	domainMu          sync.RWMutex
	institutionDomain = DefaultInstitutionDomain
)

// SetInstitutionDomain sets the email domain required for team leads.
// A leading "@" is accepted and stripped.
func SetInstitutionDomain(domain string) {
	domain = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(domain)), "@")
	if domain == "" {
		domain = DefaultInstitutionDomain
	}
	domainMu.Lock()
	institutionDomain = domain
	domainMu.Unlock()
}

// InstitutionDomain returns the configured institutional email domain
func InstitutionDomain() string {
	domainMu.RLock()
	defer domainMu.RUnlock()
	return institutionDomain
}

// IsInstitutionalEmail reports whether email belongs to the institution
func IsInstitutionalEmail(email string) bool {
	return strings.HasSuffix(strings.ToLower(strings.TrimSpace(email)), "@"+InstitutionDomain())
}

// IsRollNumber reports whether s looks like a student roll number
func IsRollNumber(s string) bool {
	return rollNumberRegex.MatchString(strings.TrimSpace(s))
}

// IsUsername reports whether s is a valid admin username once lower-cased
func IsUsername(s string) bool {
	return usernameRegex.MatchString(strings.ToLower(strings.TrimSpace(s)))
}

// IsPhone reports whether s is a plausible phone number
func IsPhone(s string) bool {
	return phoneRegex.MatchString(strings.TrimSpace(s))
}

// NormalizeEmail trims and lower-cases an email for storage and comparison
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeRollNumber trims and lower-cases a roll number
func NormalizeRollNumber(roll string) string {
	return strings.ToLower(strings.TrimSpace(roll))
}

// FormOptions is the public description of the form rules
type FormOptions struct {
	Teams                  []string                   `json:"teams"`
	Roles                  []entities.RecruitmentRole `json:"roles"`
	Semesters              Range                      `json:"semesters"`
	RollNumberPattern      string                     `json:"rollNumberPattern"`
	PhonePattern           string                     `json:"phonePattern"`
	UsernamePattern        string                     `json:"usernamePattern"`
	InstitutionEmailDomain string                     `json:"institutionEmailDomain"`
	Limits                 map[string]int             `json:"limits"`
	Statuses               StatusOptions              `json:"statuses"`
}

// Range is an inclusive integer range
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// StatusOptions lists the valid statuses per resource
type StatusOptions struct {
	Recruitment []entities.ApplicationStatus `json:"recruitment"`
	BrainGames  []entities.ApplicationStatus `json:"brainGames"`
	NewEvent    []entities.ApplicationStatus `json:"newEvent"`
}

// Options returns the current form rules
func Options() FormOptions {
	return FormOptions{
		Teams:                  append([]string(nil), entities.RecruitmentTeams...),
		Roles:                  append([]entities.RecruitmentRole(nil), entities.RecruitmentRoles...),
		Semesters:              Range{Min: SemesterMin, Max: SemesterMax},
		RollNumberPattern:      RollNumberPattern,
		PhonePattern:           PhonePattern,
		UsernamePattern:        UsernamePattern,
		InstitutionEmailDomain: InstitutionDomain(),
		Limits: map[string]int{
			"contactMessageMin":    ContactMessageMin,
			"contactMessageMax":    ContactMessageMax,
			"eventImagesMax":       EventImagesMax,
			"passwordMin":          PasswordMin,
			"whyJoinMin":           WhyJoinMin,
			"teamNameMax":          TeamNameMax,
			"brainGamesMaxMembers": entities.BrainGamesMaxMembers,
			"newEventMaxMembers":   entities.NewEventMaxMembers,
		},
		Statuses: StatusOptions{
			Recruitment: entities.ReviewStatuses,
			BrainGames:  entities.ReviewStatuses,
			NewEvent:    entities.NewEventStatuses,
		},
	}
}
