package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// NewEventMaxMembers is the number of members allowed besides the leader
const NewEventMaxMembers = 2

// NewEventLeader is the contact person of a new-event team
type NewEventLeader struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	RollNumber string `json:"rollNumber"`
	University string `json:"university"`
	Phone      string `json:"phone"`
}

// NewEventMember is an additional team member
type NewEventMember struct {
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	RollNumber string      `json:"rollNumber"`
	University null.String `json:"university"`
}

// NewEventRegistration is a team sign-up for the current flagship event
type NewEventRegistration struct {
	ID         uuid.UUID         `json:"id"`
	TeamName   string            `json:"teamName"`
	Leader     NewEventLeader    `json:"leader"`
	Members    []NewEventMember  `json:"members"`
	ReceiptURL string            `json:"receiptUrl"`
	Status     ApplicationStatus `json:"status"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

// NewEventLeaderInput is the leader block of the registration form
type NewEventLeaderInput struct {
	Name       string `json:"name" binding:"required,notblank,max=100"`
	Email      string `json:"email" binding:"required,email,max=254"`
	RollNumber string `json:"rollNumber" binding:"required,notblank,max=20"`
	University string `json:"university" binding:"required,notblank,max=150"`
	Phone      string `json:"phone" binding:"required,phone"`
}

// NewEventMemberInput is an additional member of the registration form
type NewEventMemberInput struct {
	Name       string `json:"name" binding:"required,notblank,max=100"`
	Email      string `json:"email" binding:"required,email,max=254"`
	RollNumber string `json:"rollNumber" binding:"required,notblank,max=20"`
	University string `json:"university" binding:"omitempty,max=150"`
}

// CreateNewEventInput is the new-event registration body
type CreateNewEventInput struct {
	TeamName   string                `json:"teamName" binding:"required,notblank,max=60"`
	Leader     NewEventLeaderInput   `json:"leader"`
	Members    []NewEventMemberInput `json:"members" binding:"max=2,dive"`
	ReceiptURL string                `json:"receiptUrl" binding:"required,url"`
}
