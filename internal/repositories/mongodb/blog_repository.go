package mongodb

import (
	"context"
	"time"

	"github.com/mcpitc/mcpitc-backend/internal/models"
	"github.com/mcpitc/mcpitc-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var _ repositories.BlogRepository = (*BlogRepository)(nil)

type BlogRepository struct {
	documentStore
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{documentStore: newDocumentStore(db, BlogsCollection)}
}

func (r *BlogRepository) FindAll(ctx context.Context) ([]*models.Blog, error) {
	var blogs []*models.Blog
	if err := r.findMany(ctx, nil, newestFirst, &blogs); err != nil {
		return nil, err
	}
	if blogs == nil {
		blogs = []*models.Blog{}
	}
	return blogs, nil
}

func (r *BlogRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	var blog models.Blog
	found, err := r.findOne(ctx, bson.M{"_id": id}, &blog)
	if err != nil || !found {
		return nil, err
	}
	return &blog, nil
}

func (r *BlogRepository) Create(ctx context.Context, blog *models.Blog) (*models.InsertResult, error) {
	blog.ID = primitive.NewObjectID()
	if blog.Timestamp == 0 {
		blog.Timestamp = time.Now().UnixMilli()
	}
	return r.insertOne(ctx, blog)
}

func (r *BlogRepository) Update(ctx context.Context, id primitive.ObjectID, patch *models.BlogPatch) (*models.UpdateResult, error) {
	return r.updateOne(ctx, bson.M{"_id": id}, patch, false)
}

func (r *BlogRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	return r.deleteOne(ctx, bson.M{"_id": id})
}

func (r *BlogRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, nil)
}
