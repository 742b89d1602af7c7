package entities

import (
	"time"

	"github.com/google/uuid"
)

// BrainGamesMaxMembers is the team size limit
const BrainGamesMaxMembers = 3

// BrainGamesMember is one participant; the first member is the team lead
type BrainGamesMember struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	RollNumber string `json:"rollNumber"`
	Phone      string `json:"phone,omitempty"`
	IsTeamLead bool   `json:"isTeamLead"`
}

// BrainGamesRegistration is a team sign-up for the brain games competition
type BrainGamesRegistration struct {
	ID           uuid.UUID          `json:"id"`
	TeamName     string             `json:"teamName"`
	Members      []BrainGamesMember `json:"members"`
	PaymentProof string             `json:"paymentProof"`
	Status       ApplicationStatus  `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

// TeamLead returns the first member
func (r *BrainGamesRegistration) TeamLead() *BrainGamesMember {
	if len(r.Members) == 0 {
		return nil
	}
	return &r.Members[0]
}

// BrainGamesMemberInput is one member in the registration form
type BrainGamesMemberInput struct {
	Name       string `json:"name" binding:"required,notblank,max=100"`
	Email      string `json:"email" binding:"required,email,max=254"`
	RollNumber string `json:"rollNumber" binding:"required,notblank,max=20"`
	Phone      string `json:"phone" binding:"omitempty,phone"`
}

// CreateBrainGamesInput is the brain games registration body. The team lead
// rules (institutional email, roll pattern) are applied by a struct-level rule.
type CreateBrainGamesInput struct {
	TeamName     string                  `json:"teamName" binding:"required,notblank,max=60"`
	Members      []BrainGamesMemberInput `json:"members" binding:"required,min=1,max=3,dive"`
	PaymentProof string                  `json:"paymentProof" binding:"required,url"`
}
