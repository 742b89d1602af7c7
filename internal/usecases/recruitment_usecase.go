package usecases

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"gdgoc.backend/internal/domain/entities"
	domainerrors "gdgoc.backend/internal/domain/errors"
	"gdgoc.backend/internal/domain/repositories"
	"gdgoc.backend/internal/domain/validation"
	"gdgoc.backend/pkg/logger"
	"gdgoc.backend/pkg/utils"
)

const msgDuplicateApplication = "an application with this email or roll number already exists"

// RecruitmentCSVHeader is the first row of the CSV export
var RecruitmentCSVHeader = []string{
	"Full Name", "Email", "Roll Number", "Phone Number", "Degree Program", "Semester",
	"Team", "Role", "Status", "Why Join", "Relevant Experience",
	"LinkedIn", "GitHub", "Portfolio",
	"Leadership Experience", "Team Vision", "Conflict Resolution",
	"Submitted At",
}

// RecruitmentUsecase handles team recruitment applications
type RecruitmentUsecase struct {
	recruitmentRepo repositories.RecruitmentRepository
	notifier        *Notifier
}

// NewRecruitmentUsecase creates a new recruitment usecase
func NewRecruitmentUsecase(recruitmentRepo repositories.RecruitmentRepository, notifier *Notifier) *RecruitmentUsecase {
	return &RecruitmentUsecase{recruitmentRepo: recruitmentRepo, notifier: notifier}
}

// Create stores an application. Email and roll number must both be unused.
func (u *RecruitmentUsecase) Create(ctx context.Context, input *entities.CreateRecruitmentInput) (*entities.RecruitmentApplication, error) {
	email := validation.NormalizeEmail(input.Email)
	roll := validation.NormalizeRollNumber(input.RollNumber)

	_, err := u.recruitmentRepo.FindByEmailOrRoll(ctx, email, roll)
	if err == nil {
		return nil, domainerrors.Duplicate(msgDuplicateApplication)
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	ts := now()
	app := &entities.RecruitmentApplication{
		ID:                 newID(),
		FullName:           trim(input.FullName),
		Email:              email,
		RollNumber:         roll,
		PhoneNumber:        trim(input.PhoneNumber),
		DegreeProgram:      trim(input.DegreeProgram),
		Semester:           input.Semester,
		SelectedTeam:       input.SelectedTeam,
		SelectedRole:       input.SelectedRole,
		WhyJoin:            trim(input.WhyJoin),
		RelevantExperience: trim(input.RelevantExperience),
		LinkedinURL:        optional(input.LinkedinURL),
		GithubURL:          optional(input.GithubURL),
		PortfolioURL:       optional(input.PortfolioURL),
		AgreeCommitment:    input.AgreeCommitment,
		AgreeAttendance:    input.AgreeAttendance,
		AgreeCodeOfConduct: input.AgreeCodeOfConduct,
		Status:             entities.StatusSubmitted,
		CreatedAt:          ts,
		UpdatedAt:          ts,
	}
	if app.SelectedRole == entities.RoleLead {
		app.LeadershipExperience = trim(input.LeadershipExperience)
		app.TeamVision = trim(input.TeamVision)
		app.ConflictResolution = trim(input.ConflictResolution)
	}

	if err := u.recruitmentRepo.Create(ctx, app); err != nil {
		return nil, duplicate(err, msgDuplicateApplication)
	}

	u.notifier.RecruitmentReceived(app)
	return app, nil
}

// GetByID gets an application by ID
func (u *RecruitmentUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.RecruitmentApplication, error) {
	app, err := u.recruitmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "application")
	}
	return app, nil
}

// List returns a filtered page of applications, newest first
func (u *RecruitmentUsecase) List(ctx context.Context, filter repositories.ListFilter) ([]*entities.RecruitmentApplication, int64, error) {
	if err := checkFilterStatus(filter.Status, entities.ReviewStatuses); err != nil {
		return nil, 0, err
	}
	filter.Search = trim(filter.Search)
	return u.recruitmentRepo.List(ctx, filter)
}

// All returns every application matching the filter
func (u *RecruitmentUsecase) All(ctx context.Context, filter repositories.ListFilter) ([]*entities.RecruitmentApplication, error) {
	filter.Page, filter.Limit = 1, 0
	items, _, err := u.List(ctx, filter)
	return items, err
}

// Emails returns the email of every application matching the filter
func (u *RecruitmentUsecase) Emails(ctx context.Context, filter repositories.ListFilter) ([]string, error) {
	if err := checkFilterStatus(filter.Status, entities.ReviewStatuses); err != nil {
		return nil, err
	}
	filter.Search = trim(filter.Search)
	return u.recruitmentRepo.Emails(ctx, filter)
}

// Stats counts applications by status, team and role
func (u *RecruitmentUsecase) Stats(ctx context.Context) (*entities.RecruitmentStats, error) {
	return u.recruitmentRepo.Stats(ctx)
}

// UpdateStatus sets the review status and notifies the applicant of decisions
func (u *RecruitmentUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApplicationStatus) (*entities.RecruitmentApplication, error) {
	if !entities.IsReviewStatus(status) {
		return nil, invalidStatus(status, entities.ReviewStatuses)
	}

	app, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.recruitmentRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, notFound(err, "application")
	}
	app.Status = status
	app.UpdatedAt = now()

	u.notifier.RecruitmentDecision(app)
	return app, nil
}

// BulkUpdateStatus sets the same status on several applications and returns
// how many were changed
func (u *RecruitmentUsecase) BulkUpdateStatus(ctx context.Context, input *entities.BulkStatusInput) (int64, error) {
	if !entities.IsReviewStatus(input.Status) {
		return 0, invalidStatus(input.Status, entities.ReviewStatuses)
	}
	ids, err := utils.ParseUUIDs(input.IDs)
	if err != nil {
		return 0, domainerrors.BadRequest("ids must be valid identifiers")
	}

	updated, err := u.recruitmentRepo.BulkUpdateStatus(ctx, ids, input.Status)
	if err != nil {
		return 0, err
	}

	if input.Status.IsDecision() {
		for _, id := range ids {
			app, err := u.recruitmentRepo.GetByID(ctx, id)
			if err != nil {
				logger.Warn(ctx, "Skipping decision email for missing application", zap.String("id", id.String()), zap.Error(err))
				continue
			}
			u.notifier.RecruitmentDecision(app)
		}
	}
	return updated, nil
}

// Delete removes an application
func (u *RecruitmentUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return notFound(u.recruitmentRepo.Delete(ctx, id), "application")
}

// ExportCSV writes every application matching the filter as CSV
func (u *RecruitmentUsecase) ExportCSV(ctx context.Context, filter repositories.ListFilter, w io.Writer) error {
	apps, err := u.All(ctx, filter)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(RecruitmentCSVHeader); err != nil {
		return err
	}
	for _, a := range apps {
		row := []string{
			a.FullName, a.Email, a.RollNumber, a.PhoneNumber, a.DegreeProgram, strconv.Itoa(a.Semester),
			a.SelectedTeam, string(a.SelectedRole), string(a.Status), a.WhyJoin, a.RelevantExperience,
			a.LinkedinURL.String, a.GithubURL.String, a.PortfolioURL.String,
			a.LeadershipExperience, a.TeamVision, a.ConflictResolution,
			a.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func optional(s string) null.String {
	s = trim(s)
	return null.NewString(s, s != "")
}

func checkFilterStatus(status entities.ApplicationStatus, allowed []entities.ApplicationStatus) error {
	if status == "" {
		return nil
	}
	for _, s := range allowed {
		if s == status {
			return nil
		}
	}
	return invalidStatus(status, allowed)
}
