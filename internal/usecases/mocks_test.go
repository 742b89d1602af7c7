package usecases_test

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gdgoc.backend/internal/domain/entities"
	"gdgoc.backend/internal/domain/repositories"
)

// Mock AdminRepository
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Create(ctx context.Context, admin *entities.Admin) error {
	return m.Called(ctx, admin).Error(0)
}

func (m *MockAdminRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Admin), args.Error(1)
}

func (m *MockAdminRepository) GetByUsername(ctx context.Context, username string) (*entities.Admin, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Admin), args.Error(1)
}

func (m *MockAdminRepository) List(ctx context.Context, search string) ([]*entities.Admin, error) {
	args := m.Called(ctx, search)
	return args.Get(0).([]*entities.Admin), args.Error(1)
}

func (m *MockAdminRepository) Update(ctx context.Context, admin *entities.Admin) error {
	return m.Called(ctx, admin).Error(0)
}

func (m *MockAdminRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

func (m *MockAdminRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAdminRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock ContactRepository
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, contact *entities.Contact) error {
	return m.Called(ctx, contact).Error(0)
}

func (m *MockContactRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Contact), args.Error(1)
}

func (m *MockContactRepository) List(ctx context.Context, filter repositories.ListFilter) ([]*entities.Contact, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*entities.Contact), args.Get(1).(int64), args.Error(2)
}

func (m *MockContactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockContactRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock EventRepository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, event *entities.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Event), args.Error(1)
}

func (m *MockEventRepository) List(ctx context.Context, filter repositories.ListFilter) ([]*entities.Event, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*entities.Event), args.Get(1).(int64), args.Error(2)
}

func (m *MockEventRepository) Update(ctx context.Context, event *entities.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockEventRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock RecruitmentRepository
type MockRecruitmentRepository struct {
	mock.Mock
}

func (m *MockRecruitmentRepository) Create(ctx context.Context, app *entities.RecruitmentApplication) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockRecruitmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.RecruitmentApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.RecruitmentApplication), args.Error(1)
}

func (m *MockRecruitmentRepository) FindByEmailOrRoll(ctx context.Context, email, rollNumber string) (*entities.RecruitmentApplication, error) {
	args := m.Called(ctx, email, rollNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.RecruitmentApplication), args.Error(1)
}

func (m *MockRecruitmentRepository) List(ctx context.Context, filter repositories.ListFilter) ([]*entities.RecruitmentApplication, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*entities.RecruitmentApplication), args.Get(1).(int64), args.Error(2)
}

func (m *MockRecruitmentRepository) Emails(ctx context.Context, filter repositories.ListFilter) ([]string, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRecruitmentRepository) Stats(ctx context.Context) (*entities.RecruitmentStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.RecruitmentStats), args.Error(1)
}

func (m *MockRecruitmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApplicationStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockRecruitmentRepository) BulkUpdateStatus(ctx context.Context, ids []uuid.UUID, status entities.ApplicationStatus) (int64, error) {
	args := m.Called(ctx, ids, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecruitmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// Mock BrainGamesRepository
type MockBrainGamesRepository struct {
	mock.Mock
}

func (m *MockBrainGamesRepository) Create(ctx context.Context, reg *entities.BrainGamesRegistration) error {
	return m.Called(ctx, reg).Error(0)
}

func (m *MockBrainGamesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.BrainGamesRegistration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.BrainGamesRegistration), args.Error(1)
}

func (m *MockBrainGamesRepository) TeamNameExists(ctx context.Context, teamName string) (bool, error) {
	args := m.Called(ctx, teamName)
	return args.Bool(0), args.Error(1)
}

func (m *MockBrainGamesRepository) MemberExists(ctx context.Context, emails, rollNumbers []string) (bool, error) {
	args := m.Called(ctx, emails, rollNumbers)
	return args.Bool(0), args.Error(1)
}

func (m *MockBrainGamesRepository) List(ctx context.Context, filter repositories.ListFilter) ([]*entities.BrainGamesRegistration, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*entities.BrainGamesRegistration), args.Get(1).(int64), args.Error(2)
}

func (m *MockBrainGamesRepository) Stats(ctx context.Context) (*entities.StatusSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.StatusSummary), args.Error(1)
}

func (m *MockBrainGamesRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApplicationStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockBrainGamesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// Mock NewEventRegistrationRepository
type MockNewEventRepository struct {
	mock.Mock
}

func (m *MockNewEventRepository) Create(ctx context.Context, reg *entities.NewEventRegistration) error {
	return m.Called(ctx, reg).Error(0)
}

func (m *MockNewEventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.NewEventRegistration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.NewEventRegistration), args.Error(1)
}

func (m *MockNewEventRepository) LeaderEmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockNewEventRepository) List(ctx context.Context, filter repositories.ListFilter) ([]*entities.NewEventRegistration, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*entities.NewEventRegistration), args.Get(1).(int64), args.Error(2)
}

func (m *MockNewEventRepository) Stats(ctx context.Context) (*entities.StatusSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.StatusSummary), args.Error(1)
}

func (m *MockNewEventRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApplicationStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockNewEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// fakeMailer records queued notifications
type fakeMailer struct {
	mu   sync.Mutex
	msgs []*entities.Notification
}

func (f *fakeMailer) Notify(msg *entities.Notification) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = append(f.msgs, msg)
	return true
}

func (f *fakeMailer) Messages() []*entities.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*entities.Notification(nil), f.msgs...)
}
