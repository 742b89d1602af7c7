package entities

import (
	"time"

	"github.com/google/uuid"
)

// Contact is an enquiry sent through the public contact form
type Contact struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Roll      string    `json:"roll"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"timestamp"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateContactInput represents the contact form body
type CreateContactInput struct {
	Name    string `json:"name" binding:"required,notblank,max=100"`
	Email   string `json:"email" binding:"required,email,max=254"`
	Roll    string `json:"roll" binding:"required,notblank,max=20"`
	Message string `json:"message" binding:"required,min=10,max=1000"`
}
