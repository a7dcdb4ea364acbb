package mongodb

import (
	"context"

	"github.com/mcpitc/mcpitc-backend/internal/models"
	"github.com/mcpitc/mcpitc-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ repositories.RecruitmentRepository = (*RecruitmentRepository)(nil)

// RecruitmentRepository stores the recruitment toggle as a single document with a fixed _id
type RecruitmentRepository struct {
	documentStore
}

// NewRecruitmentRepository creates a new RecruitmentRepository
func NewRecruitmentRepository(db *mongo.Database) *RecruitmentRepository {
	return &RecruitmentRepository{documentStore: newDocumentStore(db, RecruitmentCollection)}
}

// GetOrCreate returns the toggle, inserting {status: "off"} if it does not exist yet.
// The fixed _id makes concurrent first reads converge on one document.
func (r *RecruitmentRepository) GetOrCreate(ctx context.Context) (*models.RecruitmentToggle, error) {
	filter := bson.M{"_id": models.RecruitmentToggleID}
	update := bson.M{"$setOnInsert": bson.M{"status": models.RecruitmentOff}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var toggle models.RecruitmentToggle
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&toggle); err != nil {
		return nil, err
	}
	return &toggle, nil
}

// SetStatus switches recruitment on or off, creating the toggle if needed
func (r *RecruitmentRepository) SetStatus(ctx context.Context, status models.RecruitmentStatus) (*models.UpdateResult, error) {
	filter := bson.M{"_id": models.RecruitmentToggleID}
	return r.updateOne(ctx, filter, bson.M{"status": status}, true)
}
