package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// RecruitmentRole is the role an applicant applies for
type RecruitmentRole string

const (
	RoleMember RecruitmentRole = "member"
	RoleLead   RecruitmentRole = "lead"
)

// RecruitmentRoles lists the selectable roles
var RecruitmentRoles = []RecruitmentRole{RoleMember, RoleLead}

// RecruitmentTeams lists the teams an applicant can join
var RecruitmentTeams = []string{
	"Web Development",
	"App Development",
	"AI/ML",
	"Cloud Computing",
	"Cyber Security",
	"Competitive Programming",
	"UI/UX Design",
	"Game Development",
	"DevOps",
	"Blockchain",
	"Data Science",
	"Graphic Design",
	"Content Writing",
	"Marketing",
	"Public Relations",
	"Event Management",
	"Logistics",
	"Documentation",
}

// IsRecruitmentTeam reports whether team is one of RecruitmentTeams
func IsRecruitmentTeam(team string) bool {
	for _, t := range RecruitmentTeams {
		if t == team {
			return true
		}
	}
	return false
}

// RecruitmentApplication is a public submission to join a team
type RecruitmentApplication struct {
	ID                 uuid.UUID       `json:"id"`
	FullName           string          `json:"fullName"`
	Email              string          `json:"email"`
	RollNumber         string          `json:"rollNumber"`
	PhoneNumber        string          `json:"phoneNumber"`
	DegreeProgram      string          `json:"degreeProgram"`
	Semester           int             `json:"semester"`
	SelectedTeam       string          `json:"selectedTeam"`
	SelectedRole       RecruitmentRole `json:"selectedRole"`
	WhyJoin            string          `json:"whyJoin"`
	RelevantExperience string          `json:"relevantExperience"`
	LinkedinURL        null.String     `json:"linkedinUrl"`
	GithubURL          null.String     `json:"githubUrl"`
	PortfolioURL       null.String     `json:"portfolioUrl"`

	LeadershipExperience string `json:"leadershipExperience,omitempty"`
	TeamVision           string `json:"teamVision,omitempty"`
	ConflictResolution   string `json:"conflictResolution,omitempty"`

	AgreeCommitment    bool `json:"agreeCommitment"`
	AgreeAttendance    bool `json:"agreeAttendance"`
	AgreeCodeOfConduct bool `json:"agreeCodeOfConduct"`

	Status    ApplicationStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// CreateRecruitmentInput is the recruitment wizard body. Leadership fields are
// checked by a struct-level rule because they are only required for leads.
type CreateRecruitmentInput struct {
	FullName           string          `json:"fullName" binding:"required,notblank,max=100"`
	Email              string          `json:"email" binding:"required,email,max=254"`
	RollNumber         string          `json:"rollNumber" binding:"required,rollno"`
	PhoneNumber        string          `json:"phoneNumber" binding:"required,phone"`
	DegreeProgram      string          `json:"degreeProgram" binding:"required,notblank,max=100"`
	Semester           int             `json:"semester" binding:"required,min=1,max=8"`
	SelectedTeam       string          `json:"selectedTeam" binding:"required,team"`
	SelectedRole       RecruitmentRole `json:"selectedRole" binding:"required,oneof=member lead"`
	WhyJoin            string          `json:"whyJoin" binding:"required,min=10,max=2000"`
	RelevantExperience string          `json:"relevantExperience" binding:"required,notblank,max=2000"`
	LinkedinURL        string          `json:"linkedinUrl" binding:"omitempty,url"`
	GithubURL          string          `json:"githubUrl" binding:"omitempty,url"`
	PortfolioURL       string          `json:"portfolioUrl" binding:"omitempty,url"`

	LeadershipExperience string `json:"leadershipExperience" binding:"max=2000"`
	TeamVision           string `json:"teamVision" binding:"max=2000"`
	ConflictResolution   string `json:"conflictResolution" binding:"max=2000"`

	AgreeCommitment    bool `json:"agreeCommitment" binding:"istrue"`
	AgreeAttendance    bool `json:"agreeAttendance" binding:"istrue"`
	AgreeCodeOfConduct bool `json:"agreeCodeOfConduct" binding:"istrue"`
}

// BulkStatusInput updates the status of several applications at once
type BulkStatusInput struct {
	IDs    []string          `json:"ids" binding:"required,min=1,max=500,dive,uuid"`
	Status ApplicationStatus `json:"status" binding:"required"`
}

// RecruitmentStats aggregates applications by status, team and role
type RecruitmentStats struct {
	Total    int64        `json:"total"`
	ByStatus StatusCounts `json:"byStatus"`
	ByTeam   StatusCounts `json:"byTeam"`
	ByRole   StatusCounts `json:"byRole"`
}
