package services

import (
	"context"

	"github.com/mcpitc/mcpitc-backend/internal/models"
	"github.com/mcpitc/mcpitc-backend/internal/repositories"
)

// recruitmentService implements RecruitmentService
type recruitmentService struct {
	recruitmentRepo repositories.RecruitmentRepository
}

// NewRecruitmentService creates a new RecruitmentService
func NewRecruitmentService(recruitmentRepo repositories.RecruitmentRepository) RecruitmentService {
	return &recruitmentService{
		recruitmentRepo: recruitmentRepo,
	}
}

// GetStatus returns the toggle, switched off if it has never been set
func (s *recruitmentService) GetStatus(ctx context.Context) (*models.RecruitmentToggle, error) {
	return s.recruitmentRepo.GetOrCreate(ctx)
}

// SetStatus switches recruitment on or off
func (s *recruitmentService) SetStatus(ctx context.Context, status models.RecruitmentStatus) (*models.UpdateResult, error) {
	return s.recruitmentRepo.SetStatus(ctx, status)
}
