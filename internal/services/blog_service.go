package services

import (
	"context"

	"github.com/mcpitc/mcpitc-backend/internal/models"
	"github.com/mcpitc/mcpitc-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type blogService struct {
	blogRepo repositories.BlogRepository
}

func NewBlogService(blogRepo repositories.BlogRepository) BlogService {
	return &blogService{blogRepo: blogRepo}
}

func (s *blogService) ListBlogs(ctx context.Context) ([]*models.Blog, error) {
	return s.blogRepo.FindAll(ctx)
}

func (s *blogService) GetBlog(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	return s.blogRepo.FindByID(ctx, id)
}

func (s *blogService) CreateBlog(ctx context.Context, blog *models.Blog) (*models.InsertResult, error) {
	return s.blogRepo.Create(ctx, blog)
}

func (s *blogService) UpdateBlog(ctx context.Context, id primitive.ObjectID, patch *models.BlogPatch) (*models.UpdateResult, error) {
	return s.blogRepo.Update(ctx, id, patch)
}

func (s *blogService) DeleteBlog(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	return s.blogRepo.Delete(ctx, id)
}
