package usecases

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"gdgoc.backend/internal/domain/entities"
	"gdgoc.backend/internal/domain/repositories"
	"gdgoc.backend/pkg/logger"
	"gdgoc.backend/pkg/redis"
)

var (
	cacheGetJSON = redis.GetJSON
	cacheSetJSON = redis.SetJSON
)

// DashboardRepositories groups the repositories the dashboard reads from
type DashboardRepositories struct {
	Admins      repositories.AdminRepository
	Contacts    repositories.ContactRepository
	Events      repositories.EventRepository
	Recruitment repositories.RecruitmentRepository
	BrainGames  repositories.BrainGamesRepository
	NewEvent    repositories.NewEventRegistrationRepository
}

// DashboardUsecase computes the admin home page statistics
type DashboardUsecase struct {
	repos DashboardRepositories
}

// NewDashboardUsecase creates a new dashboard usecase
func NewDashboardUsecase(repos DashboardRepositories) *DashboardUsecase {
	return &DashboardUsecase{repos: repos}
}

// Stats returns aggregate counts. Results are cached in Redis for
// DashboardCacheTTL when Redis is configured.
func (u *DashboardUsecase) Stats(ctx context.Context) (*entities.DashboardStats, error) {
	var cached entities.DashboardStats
	if cacheGetJSON(ctx, DashboardCacheKey, &cached) {
		return &cached, nil
	}

	stats, err := u.compute(ctx)
	if err != nil {
		return nil, err
	}

	if err := cacheSetJSON(ctx, DashboardCacheKey, stats, DashboardCacheTTL); err != nil && err != redis.ErrDisabled {
		logger.Warn(ctx, "Failed to cache dashboard stats", zap.Error(err))
	}
	return stats, nil
}

func (u *DashboardUsecase) compute(ctx context.Context) (*entities.DashboardStats, error) {
	stats := &entities.DashboardStats{GeneratedAt: now().UTC()}
	var err error

	if stats.Admins, err = u.repos.Admins.Count(ctx); err != nil {
		return nil, fmt.Errorf("count admins: %w", err)
	}
	if stats.Contacts, err = u.repos.Contacts.Count(ctx); err != nil {
		return nil, fmt.Errorf("count contacts: %w", err)
	}
	if stats.Events, err = u.repos.Events.Count(ctx); err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}

	recruitment, err := u.repos.Recruitment.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("recruitment stats: %w", err)
	}
	stats.Recruitment = *recruitment

	brainGames, err := u.repos.BrainGames.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("brain games stats: %w", err)
	}
	stats.BrainGames = *brainGames

	newEvent, err := u.repos.NewEvent.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("new event stats: %w", err)
	}
	stats.NewEvent = *newEvent

	recent, _, err := u.repos.Contacts.List(ctx, repositories.ListFilter{Page: 1, Limit: RecentContactsLimit})
	if err != nil {
		return nil, fmt.Errorf("recent contacts: %w", err)
	}
	stats.RecentContacts = recent

	return stats, nil
}
