package entities

import (
	"time"

	"github.com/google/uuid"
)

// Event is a past or upcoming community event shown on the website
type Event struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// EventInput is used for both create and update
type EventInput struct {
	Title       string   `json:"title" binding:"required,notblank,max=200"`
	Description string   `json:"description" binding:"required,notblank,max=5000"`
	Images      []string `json:"images" binding:"max=10,dive,url"`
}
