package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"gdgoc.backend/internal/domain/entities"
)

// BrainGamesRegistration stores members as a child table in SQL and as an
// embedded array in Mongo. TeamNameCI backs the case-insensitive unique name.
type BrainGamesRegistration struct {
	ID           string             `gorm:"type:uuid;primaryKey" bson:"_id"`
	TeamName     string             `gorm:"type:varchar(60);not null" bson:"teamName"`
	TeamNameCI   string             `gorm:"column:team_name_ci;type:varchar(60);uniqueIndex;not null" bson:"teamNameCI"`
	Members      []BrainGamesMember `gorm:"foreignKey:RegistrationID;constraint:OnDelete:CASCADE" bson:"members"`
	PaymentProof string             `gorm:"type:text;not null" bson:"paymentProof"`
	Status       string             `gorm:"type:varchar(20);index;not null;default:'submitted'" bson:"status"`
	CreatedAt    time.Time          `gorm:"index" bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

func (BrainGamesRegistration) TableName() string { return BrainGamesTable }

type BrainGamesMember struct {
	ID             string `gorm:"type:uuid;primaryKey" bson:"-"`
	RegistrationID string `gorm:"type:uuid;index;not null" bson:"-"`
	Position       int    `gorm:"not null" bson:"-"`
	Name           string `gorm:"type:varchar(100);not null" bson:"name"`
	Email          string `gorm:"type:varchar(254);uniqueIndex;not null" bson:"email"`
	RollNumber     string `gorm:"type:varchar(20);uniqueIndex;not null" bson:"rollNumber"`
	Phone          string `gorm:"type:varchar(20)" bson:"phone,omitempty"`
	IsTeamLead     bool   `gorm:"not null" bson:"isTeamLead"`
}

func (BrainGamesMember) TableName() string { return BrainGamesMembersTable }

func NewBrainGamesRegistration(e *entities.BrainGamesRegistration) *BrainGamesRegistration {
	m := &BrainGamesRegistration{
		ID:           e.ID.String(),
		TeamName:     e.TeamName,
		TeamNameCI:   strings.ToLower(strings.TrimSpace(e.TeamName)),
		Members:      make([]BrainGamesMember, 0, len(e.Members)),
		PaymentProof: e.PaymentProof,
		Status:       string(e.Status),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
	for i, mem := range e.Members {
		m.Members = append(m.Members, BrainGamesMember{
			ID:             uuid.NewString(),
			RegistrationID: m.ID,
			Position:       i,
			Name:           mem.Name,
			Email:          mem.Email,
			RollNumber:     mem.RollNumber,
			Phone:          mem.Phone,
			IsTeamLead:     mem.IsTeamLead,
		})
	}
	return m
}

func (m *BrainGamesRegistration) ToEntity() *entities.BrainGamesRegistration {
	e := &entities.BrainGamesRegistration{
		ID:           parseID(m.ID),
		TeamName:     m.TeamName,
		Members:      make([]entities.BrainGamesMember, 0, len(m.Members)),
		PaymentProof: m.PaymentProof,
		Status:       entities.ApplicationStatus(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	for _, mem := range m.Members {
		e.Members = append(e.Members, entities.BrainGamesMember{
			Name:       mem.Name,
			Email:      mem.Email,
			RollNumber: mem.RollNumber,
			Phone:      mem.Phone,
			IsTeamLead: mem.IsTeamLead,
		})
	}
	return e
}
