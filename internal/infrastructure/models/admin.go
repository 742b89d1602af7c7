package models

import (
	"time"

	"github.com/volatiletech/null/v8"

	"gdgoc.backend/internal/domain/entities"
)

type Admin struct {
	ID           string    `gorm:"type:uuid;primaryKey" bson:"_id"`
	Name         string    `gorm:"type:varchar(100);not null" bson:"name"`
	Username     string    `gorm:"type:varchar(30);uniqueIndex;not null" bson:"username"`
	PasswordHash string    `gorm:"type:varchar(255);not null" bson:"passwordHash"`
	ProfileImage *string   `gorm:"type:text" bson:"profileImage,omitempty"`
	CreatedAt    time.Time `bson:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}

func (Admin) TableName() string { return AdminsTable }

func NewAdmin(e *entities.Admin) *Admin {
	return &Admin{
		ID:           e.ID.String(),
		Name:         e.Name,
		Username:     e.Username,
		PasswordHash: e.PasswordHash,
		ProfileImage: e.ProfileImage.Ptr(),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func (m *Admin) ToEntity() *entities.Admin {
	return &entities.Admin{
		ID:           parseID(m.ID),
		Name:         m.Name,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		ProfileImage: null.StringFromPtr(m.ProfileImage),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
