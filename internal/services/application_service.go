package services

import (
	"context"
	"errors"

	"github.com/mcpitc/mcpitc-backend/internal/models"
	"github.com/mcpitc/mcpitc-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type applicationService struct {
	applicationRepo repositories.ExecutiveApplicationRepository
}

func NewApplicationService(applicationRepo repositories.ExecutiveApplicationRepository) ApplicationService {
	return &applicationService{applicationRepo: applicationRepo}
}

func (s *applicationService) ListApplications(ctx context.Context) ([]*models.ExecutiveApplication, error) {
	return s.applicationRepo.FindAll(ctx)
}

func (s *applicationService) GetApplication(ctx context.Context, id primitive.ObjectID) (*models.ExecutiveApplication, error) {
	return s.applicationRepo.FindByID(ctx, id)
}

func (s *applicationService) ListApplicationsByEmail(ctx context.Context, email string) ([]*models.ExecutiveApplication, error) {
	return s.applicationRepo.FindAllByEmail(ctx, email)
}

// SubmitApplication checks for an earlier application from the same email
// before inserting. A concurrent submit that wins the race is caught by the
// unique email index and reported the same way.
func (s *applicationService) SubmitApplication(ctx context.Context, application *models.ExecutiveApplication) (*models.InsertResult, error) {
	existing, err := s.applicationRepo.FindByEmail(ctx, application.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &ApplicationExistsError{Existing: existing}
	}

	res, err := s.applicationRepo.Create(ctx, application)
	if errors.Is(err, repositories.ErrDuplicateKey) {
		existing, findErr := s.applicationRepo.FindByEmail(ctx, application.Email)
		if findErr != nil {
			return nil, findErr
		}
		return nil, &ApplicationExistsError{Existing: existing}
	}
	return res, err
}

func (s *applicationService) UpdateApplication(ctx context.Context, id primitive.ObjectID, patch *models.ExecutiveApplicationPatch) (*models.UpdateResult, error) {
	return s.applicationRepo.Update(ctx, id, patch)
}

func (s *applicationService) DeleteApplicationByEmail(ctx context.Context, email string) (*models.DeleteResult, error) {
	return s.applicationRepo.DeleteByEmail(ctx, email)
}
