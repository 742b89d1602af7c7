package usecases

import (
	"context"

	"github.com/google/uuid"

	"gdgoc.backend/internal/domain/entities"
	"gdgoc.backend/internal/domain/repositories"
	"gdgoc.backend/internal/domain/validation"
)

// ContactUsecase handles contact form messages
type ContactUsecase struct {
	contactRepo repositories.ContactRepository
	notifier    *Notifier
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(contactRepo repositories.ContactRepository, notifier *Notifier) *ContactUsecase {
	return &ContactUsecase{contactRepo: contactRepo, notifier: notifier}
}

// Create stores a message and queues the confirmation email
func (u *ContactUsecase) Create(ctx context.Context, input *entities.CreateContactInput) (*entities.Contact, error) {
	ts := now()
	contact := &entities.Contact{
		ID:        newID(),
		Name:      trim(input.Name),
		Email:     validation.NormalizeEmail(input.Email),
		Roll:      trim(input.Roll),
		Message:   trim(input.Message),
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	if err := u.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}

	u.notifier.ContactReceived(contact)
	return contact, nil
}

// GetByID gets a contact message by ID
func (u *ContactUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.Contact, error) {
	contact, err := u.contactRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "contact")
	}
	return contact, nil
}

// List returns a page of messages, newest first
func (u *ContactUsecase) List(ctx context.Context, filter repositories.ListFilter) ([]*entities.Contact, int64, error) {
	filter.Search = trim(filter.Search)
	return u.contactRepo.List(ctx, filter)
}

// Delete removes a contact message
func (u *ContactUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return notFound(u.contactRepo.Delete(ctx, id), "contact")
}
