package services

import (
	"context"
	"fmt"

	"github.com/mcpitc/mcpitc-backend/internal/models"
	"github.com/mcpitc/mcpitc-backend/internal/repositories"
)

type statsService struct {
	userRepo        repositories.UserRepository
	eventRepo       repositories.EventRepository
	segmentRepo     repositories.SegmentRepository
	blogRepo        repositories.BlogRepository
	applicationRepo repositories.ExecutiveApplicationRepository
}

func NewStatsService(
	userRepo repositories.UserRepository,
	eventRepo repositories.EventRepository,
	segmentRepo repositories.SegmentRepository,
	blogRepo repositories.BlogRepository,
	applicationRepo repositories.ExecutiveApplicationRepository,
) StatsService {
	return &statsService{
		userRepo:        userRepo,
		eventRepo:       eventRepo,
		segmentRepo:     segmentRepo,
		blogRepo:        blogRepo,
		applicationRepo: applicationRepo,
	}
}

// GetAdminStats counts every collection shown on the dashboard
func (s *statsService) GetAdminStats(ctx context.Context) (*models.AdminStats, error) {
	var (
		stats models.AdminStats
		err   error
	)

	if stats.Users, err = s.userRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if stats.Admins, err = s.userRepo.CountByRole(ctx, models.RoleAdmin); err != nil {
		return nil, fmt.Errorf("count admins: %w", err)
	}
	if stats.Events, err = s.eventRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}
	if stats.Segments, err = s.segmentRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("count segments: %w", err)
	}
	if stats.Blogs, err = s.blogRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("count blogs: %w", err)
	}
	if stats.Applications, err = s.applicationRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("count applications: %w", err)
	}
	return &stats, nil
}
