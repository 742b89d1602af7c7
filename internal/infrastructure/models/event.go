package models

import (
	"time"

	"gdgoc.backend/internal/domain/entities"
)

type Event struct {
	ID          string    `gorm:"type:uuid;primaryKey" bson:"_id"`
	Title       string    `gorm:"type:varchar(200);not null" bson:"title"`
	Description string    `gorm:"type:text;not null" bson:"description"`
	Images      []string  `gorm:"type:text;serializer:json" bson:"images"`
	CreatedAt   time.Time `gorm:"index" bson:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt"`
}

func (Event) TableName() string { return EventsTable }

func NewEvent(e *entities.Event) *Event {
	images := e.Images
	if images == nil {
		images = []string{}
	}
	return &Event{
		ID:          e.ID.String(),
		Title:       e.Title,
		Description: e.Description,
		Images:      images,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (m *Event) ToEntity() *entities.Event {
	images := m.Images
	if images == nil {
		images = []string{}
	}
	return &entities.Event{
		ID:          parseID(m.ID),
		Title:       m.Title,
		Description: m.Description,
		Images:      images,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
