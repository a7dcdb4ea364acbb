package services

import (
	"context"

	"github.com/mcpitc/mcpitc-backend/internal/models"
	"github.com/mcpitc/mcpitc-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// userService handles user-related business logic
type userService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{
		userRepo: userRepo,
	}
}

// GetAllUsers retrieves all users
func (s *userService) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.FindAll(ctx)
}

// GetUserByEmail retrieves a user by email. A missing user is (nil, nil).
func (s *userService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.userRepo.FindByEmail(ctx, email)
}

// SaveUser updates name/image when the request carries either, creating the
// user if needed. Otherwise it registers the user unless the email is known,
// in which case the stored record is returned unchanged.
func (s *userService) SaveUser(ctx context.Context, req *models.UserRequest) (*models.User, error) {
	if req.IsProfileUpdate() {
		return s.userRepo.UpsertProfile(ctx, req.Email, req.Name, req.Image)
	}
	return s.userRepo.InsertIfAbsent(ctx, &models.User{Email: req.Email})
}

// UpdateUser applies an admin role/designation patch
func (s *userService) UpdateUser(ctx context.Context, id primitive.ObjectID, patch *models.UserRolePatch) (*models.UpdateResult, error) {
	return s.userRepo.UpdateByID(ctx, id, patch)
}

// UpdateDesignation sets a user's committee designation
func (s *userService) UpdateDesignation(ctx context.Context, email, designation string) (*models.UpdateResult, error) {
	return s.userRepo.UpdateDesignation(ctx, email, designation)
}

// PromoteToAdmin grants the admin role to the user with email
func (s *userService) PromoteToAdmin(ctx context.Context, email string) (*models.UpdateResult, error) {
	return s.userRepo.UpdateRoleByEmail(ctx, email, models.RoleAdmin)
}

func (s *userService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user.IsAdmin(), nil
}
