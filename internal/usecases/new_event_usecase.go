package usecases

import (
	"context"

	"github.com/google/uuid"

	"gdgoc.backend/internal/domain/entities"
	domainerrors "gdgoc.backend/internal/domain/errors"
	"gdgoc.backend/internal/domain/repositories"
	"gdgoc.backend/internal/domain/validation"
)

const msgDuplicateLeader = "a team with this leader email is already registered"

// NewEventRegistrationUsecase handles registrations for the current flagship event
type NewEventRegistrationUsecase struct {
	newEventRepo repositories.NewEventRegistrationRepository
	notifier     *Notifier
}

// NewNewEventUsecase creates a new new-event usecase
func NewNewEventUsecase(newEventRepo repositories.NewEventRegistrationRepository, notifier *Notifier) *NewEventRegistrationUsecase {
	return &NewEventRegistrationUsecase{newEventRepo: newEventRepo, notifier: notifier}
}

// Create registers a team. A leader email can only register once.
func (u *NewEventRegistrationUsecase) Create(ctx context.Context, input *entities.CreateNewEventInput) (*entities.NewEventRegistration, error) {
	if len(input.Members) > entities.NewEventMaxMembers {
		return nil, domainerrors.BadRequest("a team can have at most 2 members besides the leader")
	}

	leader := entities.NewEventLeader{
		Name:       trim(input.Leader.Name),
		Email:      validation.NormalizeEmail(input.Leader.Email),
		RollNumber: trim(input.Leader.RollNumber),
		University: trim(input.Leader.University),
		Phone:      trim(input.Leader.Phone),
	}

	exists, err := u.newEventRepo.LeaderEmailExists(ctx, leader.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domainerrors.Duplicate(msgDuplicateLeader)
	}

	members := make([]entities.NewEventMember, 0, len(input.Members))
	for _, m := range input.Members {
		members = append(members, entities.NewEventMember{
			Name:       trim(m.Name),
			Email:      validation.NormalizeEmail(m.Email),
			RollNumber: trim(m.RollNumber),
			University: optional(m.University),
		})
	}

	ts := now()
	reg := &entities.NewEventRegistration{
		ID:         newID(),
		TeamName:   trim(input.TeamName),
		Leader:     leader,
		Members:    members,
		ReceiptURL: trim(input.ReceiptURL),
		Status:     entities.StatusRegistered,
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}
	if err := u.newEventRepo.Create(ctx, reg); err != nil {
		return nil, duplicate(err, msgDuplicateLeader)
	}

	u.notifier.NewEventReceived(reg)
	return reg, nil
}

// GetByID gets a registration by ID
func (u *NewEventRegistrationUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.NewEventRegistration, error) {
	reg, err := u.newEventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "registration")
	}
	return reg, nil
}

// List returns a filtered page of registrations, newest first
func (u *NewEventRegistrationUsecase) List(ctx context.Context, filter repositories.ListFilter) ([]*entities.NewEventRegistration, int64, error) {
	if err := checkFilterStatus(filter.Status, entities.NewEventStatuses); err != nil {
		return nil, 0, err
	}
	filter.Search = trim(filter.Search)
	return u.newEventRepo.List(ctx, filter)
}

// Stats counts registrations by status
func (u *NewEventRegistrationUsecase) Stats(ctx context.Context) (*entities.StatusSummary, error) {
	return u.newEventRepo.Stats(ctx)
}

// Accept marks a registration accepted and notifies the leader
func (u *NewEventRegistrationUsecase) Accept(ctx context.Context, id uuid.UUID) (*entities.NewEventRegistration, error) {
	return u.UpdateStatus(ctx, id, entities.StatusAccepted)
}

// Reject marks a registration rejected and notifies the leader
func (u *NewEventRegistrationUsecase) Reject(ctx context.Context, id uuid.UUID) (*entities.NewEventRegistration, error) {
	return u.UpdateStatus(ctx, id, entities.StatusRejected)
}

// UpdateStatus sets any new-event status
func (u *NewEventRegistrationUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApplicationStatus) (*entities.NewEventRegistration, error) {
	if !entities.IsNewEventStatus(status) {
		return nil, invalidStatus(status, entities.NewEventStatuses)
	}

	reg, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.newEventRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, notFound(err, "registration")
	}
	reg.Status = status
	reg.UpdatedAt = now()

	u.notifier.NewEventDecision(reg)
	return reg, nil
}

// Delete removes a registration
func (u *NewEventRegistrationUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return notFound(u.newEventRepo.Delete(ctx, id), "registration")
}
