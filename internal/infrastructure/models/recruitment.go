package models

import (
	"time"

	"github.com/volatiletech/null/v8"

	"gdgoc.backend/internal/domain/entities"
)

type RecruitmentApplication struct {
	ID                 string  `gorm:"type:uuid;primaryKey" bson:"_id"`
	FullName           string  `gorm:"type:varchar(100);not null" bson:"fullName"`
	Email              string  `gorm:"type:varchar(254);uniqueIndex;not null" bson:"email"`
	RollNumber         string  `gorm:"type:varchar(20);uniqueIndex;not null" bson:"rollNumber"`
	PhoneNumber        string  `gorm:"type:varchar(20);not null" bson:"phoneNumber"`
	DegreeProgram      string  `gorm:"type:varchar(100);not null" bson:"degreeProgram"`
	Semester           int     `gorm:"not null" bson:"semester"`
	SelectedTeam       string  `gorm:"type:varchar(60);index;not null" bson:"selectedTeam"`
	SelectedRole       string  `gorm:"type:varchar(10);index;not null" bson:"selectedRole"`
	WhyJoin            string  `gorm:"type:text;not null" bson:"whyJoin"`
	RelevantExperience string  `gorm:"type:text;not null" bson:"relevantExperience"`
	LinkedinURL        *string `gorm:"column:linkedin_url;type:text" bson:"linkedinUrl,omitempty"`
	GithubURL          *string `gorm:"column:github_url;type:text" bson:"githubUrl,omitempty"`
	PortfolioURL       *string `gorm:"column:portfolio_url;type:text" bson:"portfolioUrl,omitempty"`

	LeadershipExperience string `gorm:"type:text" bson:"leadershipExperience,omitempty"`
	TeamVision           string `gorm:"type:text" bson:"teamVision,omitempty"`
	ConflictResolution   string `gorm:"type:text" bson:"conflictResolution,omitempty"`

	AgreeCommitment    bool `gorm:"not null" bson:"agreeCommitment"`
	AgreeAttendance    bool `gorm:"not null" bson:"agreeAttendance"`
	AgreeCodeOfConduct bool `gorm:"not null" bson:"agreeCodeOfConduct"`

	Status    string    `gorm:"type:varchar(20);index;not null;default:'submitted'" bson:"status"`
	CreatedAt time.Time `gorm:"index" bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

func (RecruitmentApplication) TableName() string { return RecruitmentTable }

func NewRecruitmentApplication(e *entities.RecruitmentApplication) *RecruitmentApplication {
	return &RecruitmentApplication{
		ID:                   e.ID.String(),
		FullName:             e.FullName,
		Email:                e.Email,
		RollNumber:           e.RollNumber,
		PhoneNumber:          e.PhoneNumber,
		DegreeProgram:        e.DegreeProgram,
		Semester:             e.Semester,
		SelectedTeam:         e.SelectedTeam,
		SelectedRole:         string(e.SelectedRole),
		WhyJoin:              e.WhyJoin,
		RelevantExperience:   e.RelevantExperience,
		LinkedinURL:          e.LinkedinURL.Ptr(),
		GithubURL:            e.GithubURL.Ptr(),
		PortfolioURL:         e.PortfolioURL.Ptr(),
		LeadershipExperience: e.LeadershipExperience,
		TeamVision:           e.TeamVision,
		ConflictResolution:   e.ConflictResolution,
		AgreeCommitment:      e.AgreeCommitment,
		AgreeAttendance:      e.AgreeAttendance,
		AgreeCodeOfConduct:   e.AgreeCodeOfConduct,
		Status:               string(e.Status),
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}
}

func (m *RecruitmentApplication) ToEntity() *entities.RecruitmentApplication {
	return &entities.RecruitmentApplication{
		ID:                   parseID(m.ID),
		FullName:             m.FullName,
		Email:                m.Email,
		RollNumber:           m.RollNumber,
		PhoneNumber:          m.PhoneNumber,
		DegreeProgram:        m.DegreeProgram,
		Semester:             m.Semester,
		SelectedTeam:         m.SelectedTeam,
		SelectedRole:         entities.RecruitmentRole(m.SelectedRole),
		WhyJoin:              m.WhyJoin,
		RelevantExperience:   m.RelevantExperience,
		LinkedinURL:          null.StringFromPtr(m.LinkedinURL),
		GithubURL:            null.StringFromPtr(m.GithubURL),
		PortfolioURL:         null.StringFromPtr(m.PortfolioURL),
		LeadershipExperience: m.LeadershipExperience,
		TeamVision:           m.TeamVision,
		ConflictResolution:   m.ConflictResolution,
		AgreeCommitment:      m.AgreeCommitment,
		AgreeAttendance:      m.AgreeAttendance,
		AgreeCodeOfConduct:   m.AgreeCodeOfConduct,
		Status:               entities.ApplicationStatus(m.Status),
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}
