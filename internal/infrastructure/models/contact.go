package models

import (
	"time"

	"gdgoc.backend/internal/domain/entities"
)

type Contact struct {
	ID        string    `gorm:"type:uuid;primaryKey" bson:"_id"`
	Name      string    `gorm:"type:varchar(100);not null" bson:"name"`
	Email     string    `gorm:"type:varchar(254);not null" bson:"email"`
	Roll      string    `gorm:"type:varchar(20);not null" bson:"roll"`
	Message   string    `gorm:"type:text;not null" bson:"message"`
	CreatedAt time.Time `gorm:"index" bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

func (Contact) TableName() string { return ContactsTable }

func NewContact(e *entities.Contact) *Contact {
	return &Contact{
		ID:        e.ID.String(),
		Name:      e.Name,
		Email:     e.Email,
		Roll:      e.Roll,
		Message:   e.Message,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func (m *Contact) ToEntity() *entities.Contact {
	return &entities.Contact{
		ID:        parseID(m.ID),
		Name:      m.Name,
		Email:     m.Email,
		Roll:      m.Roll,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
