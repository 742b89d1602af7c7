package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"gdgoc.backend/internal/domain/entities"
	domainerrors "gdgoc.backend/internal/domain/errors"
	"gdgoc.backend/internal/domain/repositories"
	"gdgoc.backend/internal/domain/validation"
)

const (
	msgDuplicateTeamName = "team name is already taken"
	msgDuplicateMember   = "one or more members are already registered"
)

// BrainGamesUsecase handles brain games team registrations
type BrainGamesUsecase struct {
	brainGamesRepo repositories.BrainGamesRepository
	notifier       *Notifier
}

// NewBrainGamesUsecase creates a new brain games usecase
func NewBrainGamesUsecase(brainGamesRepo repositories.BrainGamesRepository, notifier *Notifier) *BrainGamesUsecase {
	return &BrainGamesUsecase{brainGamesRepo: brainGamesRepo, notifier: notifier}
}

// Create registers a team. The first member becomes the team lead; no member
// email or roll number may already belong to another registration.
func (u *BrainGamesUsecase) Create(ctx context.Context, input *entities.CreateBrainGamesInput) (*entities.BrainGamesRegistration, error) {
	if len(input.Members) == 0 || len(input.Members) > entities.BrainGamesMaxMembers {
		return nil, domainerrors.BadRequest("a team needs between 1 and 3 members")
	}

	members := make([]entities.BrainGamesMember, 0, len(input.Members))
	emails := make([]string, 0, len(input.Members))
	rolls := make([]string, 0, len(input.Members))
	for i, m := range input.Members {
		member := entities.BrainGamesMember{
			Name:       trim(m.Name),
			Email:      validation.NormalizeEmail(m.Email),
			RollNumber: validation.NormalizeRollNumber(m.RollNumber),
			Phone:      trim(m.Phone),
			IsTeamLead: i == 0,
		}
		members = append(members, member)
		emails = append(emails, member.Email)
		rolls = append(rolls, member.RollNumber)
	}

	lead := members[0]
	if !validation.IsInstitutionalEmail(lead.Email) {
		return nil, domainerrors.Validation("invalid team lead", map[string]string{
			"members[0].email": "team lead email must end with @" + validation.InstitutionDomain(),
		})
	}
	if !validation.IsRollNumber(lead.RollNumber) {
		return nil, domainerrors.Validation("invalid team lead", map[string]string{
			"members[0].rollNumber": "team lead roll number must match " + validation.RollNumberPattern,
		})
	}

	teamName := trim(input.TeamName)
	taken, err := u.brainGamesRepo.TeamNameExists(ctx, teamName)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domainerrors.Duplicate(msgDuplicateTeamName)
	}

	registered, err := u.brainGamesRepo.MemberExists(ctx, emails, rolls)
	if err != nil {
		return nil, err
	}
	if registered {
		return nil, domainerrors.Duplicate(msgDuplicateMember)
	}

	ts := now()
	reg := &entities.BrainGamesRegistration{
		ID:           newID(),
		TeamName:     teamName,
		Members:      members,
		PaymentProof: trim(input.PaymentProof),
		Status:       entities.StatusSubmitted,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
	if err := u.brainGamesRepo.Create(ctx, reg); err != nil {
		return nil, u.insertConflict(ctx, teamName, err)
	}

	u.notifier.BrainGamesReceived(reg)
	return reg, nil
}

// insertConflict names the unique index a concurrent registration won. The
// winning row is committed by now, so the team name lookup tells the cases apart.
func (u *BrainGamesUsecase) insertConflict(ctx context.Context, teamName string, err error) error {
	if !errors.Is(err, domainerrors.ErrAlreadyExists) {
		return err
	}
	if taken, lookupErr := u.brainGamesRepo.TeamNameExists(ctx, teamName); lookupErr == nil && taken {
		return domainerrors.Duplicate(msgDuplicateTeamName)
	}
	return domainerrors.Duplicate(msgDuplicateMember)
}

// GetByID gets a registration by ID
func (u *BrainGamesUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.BrainGamesRegistration, error) {
	reg, err := u.brainGamesRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "registration")
	}
	return reg, nil
}

// List returns a filtered page of registrations, newest first
func (u *BrainGamesUsecase) List(ctx context.Context, filter repositories.ListFilter) ([]*entities.BrainGamesRegistration, int64, error) {
	if err := checkFilterStatus(filter.Status, entities.ReviewStatuses); err != nil {
		return nil, 0, err
	}
	filter.Search = trim(filter.Search)
	return u.brainGamesRepo.List(ctx, filter)
}

// All returns every registration matching the filter
func (u *BrainGamesUsecase) All(ctx context.Context, filter repositories.ListFilter) ([]*entities.BrainGamesRegistration, error) {
	filter.Page, filter.Limit = 1, 0
	items, _, err := u.List(ctx, filter)
	return items, err
}

// Stats counts registrations by status
func (u *BrainGamesUsecase) Stats(ctx context.Context) (*entities.StatusSummary, error) {
	return u.brainGamesRepo.Stats(ctx)
}

// UpdateStatus sets the review status and notifies the team of decisions
func (u *BrainGamesUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApplicationStatus) (*entities.BrainGamesRegistration, error) {
	if !entities.IsReviewStatus(status) {
		return nil, invalidStatus(status, entities.ReviewStatuses)
	}

	reg, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.brainGamesRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, notFound(err, "registration")
	}
	reg.Status = status
	reg.UpdatedAt = now()

	u.notifier.BrainGamesDecision(reg)
	return reg, nil
}

// Delete removes a registration
func (u *BrainGamesUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return notFound(u.brainGamesRepo.Delete(ctx, id), "registration")
}
