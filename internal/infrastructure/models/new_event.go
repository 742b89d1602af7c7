package models

import (
	"time"

	"github.com/volatiletech/null/v8"

	"gdgoc.backend/internal/domain/entities"
)

type NewEventRegistration struct {
	ID         string           `gorm:"type:uuid;primaryKey" bson:"_id"`
	TeamName   string           `gorm:"type:varchar(60);not null" bson:"teamName"`
	Leader     NewEventLeader   `gorm:"embedded;embeddedPrefix:leader_" bson:"leader"`
	Members    []NewEventMember `gorm:"type:text;serializer:json" bson:"members"`
	ReceiptURL string           `gorm:"column:receipt_url;type:text;not null" bson:"receiptUrl"`
	Status     string           `gorm:"type:varchar(20);index;not null;default:'registered'" bson:"status"`
	CreatedAt  time.Time        `gorm:"index" bson:"createdAt"`
	UpdatedAt  time.Time        `bson:"updatedAt"`
}

func (NewEventRegistration) TableName() string { return NewEventTable }

type NewEventLeader struct {
	Name       string `gorm:"type:varchar(100);not null" bson:"name"`
	Email      string `gorm:"type:varchar(254);uniqueIndex;not null" bson:"email"`
	RollNumber string `gorm:"type:varchar(20);not null" bson:"rollNumber"`
	University string `gorm:"type:varchar(150);not null" bson:"university"`
	Phone      string `gorm:"type:varchar(20);not null" bson:"phone"`
}

type NewEventMember struct {
	Name       string  `json:"name" bson:"name"`
	Email      string  `json:"email" bson:"email"`
	RollNumber string  `json:"rollNumber" bson:"rollNumber"`
	University *string `json:"university,omitempty" bson:"university,omitempty"`
}

func NewNewEventRegistration(e *entities.NewEventRegistration) *NewEventRegistration {
	m := &NewEventRegistration{
		ID:       e.ID.String(),
		TeamName: e.TeamName,
		Leader: NewEventLeader{
			Name:       e.Leader.Name,
			Email:      e.Leader.Email,
			RollNumber: e.Leader.RollNumber,
			University: e.Leader.University,
			Phone:      e.Leader.Phone,
		},
		Members:    make([]NewEventMember, 0, len(e.Members)),
		ReceiptURL: e.ReceiptURL,
		Status:     string(e.Status),
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
	for _, mem := range e.Members {
		m.Members = append(m.Members, NewEventMember{
			Name:       mem.Name,
			Email:      mem.Email,
			RollNumber: mem.RollNumber,
			University: mem.University.Ptr(),
		})
	}
	return m
}

func (m *NewEventRegistration) ToEntity() *entities.NewEventRegistration {
	e := &entities.NewEventRegistration{
		ID:       parseID(m.ID),
		TeamName: m.TeamName,
		Leader: entities.NewEventLeader{
			Name:       m.Leader.Name,
			Email:      m.Leader.Email,
			RollNumber: m.Leader.RollNumber,
			University: m.Leader.University,
			Phone:      m.Leader.Phone,
		},
		Members:    make([]entities.NewEventMember, 0, len(m.Members)),
		ReceiptURL: m.ReceiptURL,
		Status:     entities.ApplicationStatus(m.Status),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	for _, mem := range m.Members {
		e.Members = append(e.Members, entities.NewEventMember{
			Name:       mem.Name,
			Email:      mem.Email,
			RollNumber: mem.RollNumber,
			University: null.StringFromPtr(mem.University),
		})
	}
	return e
}
