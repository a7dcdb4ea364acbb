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

var _ repositories.ExecutiveApplicationRepository = (*ExecutiveApplicationRepository)(nil)

// ExecutiveApplicationRepository handles MongoDB operations for recruitment forms
type ExecutiveApplicationRepository struct {
	documentStore
}

// NewExecutiveApplicationRepository creates a new ExecutiveApplicationRepository
func NewExecutiveApplicationRepository(db *mongo.Database) *ExecutiveApplicationRepository {
	return &ExecutiveApplicationRepository{documentStore: newDocumentStore(db, ApplicationsCollection)}
}

// FindAll retrieves all applications, newest first
func (r *ExecutiveApplicationRepository) FindAll(ctx context.Context) ([]*models.ExecutiveApplication, error) {
	return r.findApplications(ctx, nil)
}

// FindAllByEmail retrieves the applications submitted from email
func (r *ExecutiveApplicationRepository) FindAllByEmail(ctx context.Context, email string) ([]*models.ExecutiveApplication, error) {
	return r.findApplications(ctx, bson.M{"email": email})
}

func (r *ExecutiveApplicationRepository) findApplications(ctx context.Context, filter interface{}) ([]*models.ExecutiveApplication, error) {
	var applications []*models.ExecutiveApplication
	if err := r.findMany(ctx, filter, newestFirst, &applications); err != nil {
		return nil, err
	}
	if applications == nil {
		applications = []*models.ExecutiveApplication{}
	}
	return applications, nil
}

// FindByID finds an application by ID
func (r *ExecutiveApplicationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.ExecutiveApplication, error) {
	return r.findApplication(ctx, bson.M{"_id": id})
}

// FindByEmail finds the application submitted from email
func (r *ExecutiveApplicationRepository) FindByEmail(ctx context.Context, email string) (*models.ExecutiveApplication, error) {
	return r.findApplication(ctx, bson.M{"email": email})
}

func (r *ExecutiveApplicationRepository) findApplication(ctx context.Context, filter bson.M) (*models.ExecutiveApplication, error) {
	var application models.ExecutiveApplication
	found, err := r.findOne(ctx, filter, &application)
	if err != nil || !found {
		return nil, err
	}
	return &application, nil
}

// Create inserts a new application. The unique email index rejects duplicates
// that slip past the service-level check.
func (r *ExecutiveApplicationRepository) Create(ctx context.Context, application *models.ExecutiveApplication) (*models.InsertResult, error) {
	application.ID = primitive.NewObjectID()
	if application.Timestamp == 0 {
		application.Timestamp = time.Now().UnixMilli()
	}
	return r.insertOne(ctx, application)
}

// Update applies a partial update to an application
func (r *ExecutiveApplicationRepository) Update(ctx context.Context, id primitive.ObjectID, patch *models.ExecutiveApplicationPatch) (*models.UpdateResult, error) {
	return r.updateOne(ctx, bson.M{"_id": id}, patch, false)
}

// DeleteByEmail deletes the application submitted from email
func (r *ExecutiveApplicationRepository) DeleteByEmail(ctx context.Context, email string) (*models.DeleteResult, error) {
	return r.deleteOne(ctx, bson.M{"email": email})
}

// Count counts all applications
func (r *ExecutiveApplicationRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, nil)
}
