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

var _ repositories.SegmentRepository = (*SegmentRepository)(nil)

// SegmentRepository handles MongoDB operations for event segments
type SegmentRepository struct {
	documentStore
}

// NewSegmentRepository creates a new SegmentRepository
func NewSegmentRepository(db *mongo.Database) *SegmentRepository {
	return &SegmentRepository{documentStore: newDocumentStore(db, SegmentsCollection)}
}

// FindAll retrieves every segment in natural order
func (r *SegmentRepository) FindAll(ctx context.Context) ([]*models.Segment, error) {
	return r.findSegments(ctx, nil)
}

// FindByEventName retrieves the segments of one event, unsorted
func (r *SegmentRepository) FindByEventName(ctx context.Context, eventName string) ([]*models.Segment, error) {
	return r.findSegments(ctx, bson.M{"eventName": eventName})
}

func (r *SegmentRepository) findSegments(ctx context.Context, filter interface{}) ([]*models.Segment, error) {
	var segments []*models.Segment
	if err := r.findMany(ctx, filter, nil, &segments); err != nil {
		return nil, err
	}
	if segments == nil {
		segments = []*models.Segment{}
	}
	return segments, nil
}

// FindByID finds a segment by ID
func (r *SegmentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Segment, error) {
	var segment models.Segment
	found, err := r.findOne(ctx, bson.M{"_id": id}, &segment)
	if err != nil || !found {
		return nil, err
	}
	return &segment, nil
}

// Create inserts a new segment
func (r *SegmentRepository) Create(ctx context.Context, segment *models.Segment) (*models.InsertResult, error) {
	segment.ID = primitive.NewObjectID()
	if segment.Timestamp == 0 {
		segment.Timestamp = time.Now().UnixMilli()
	}
	return r.insertOne(ctx, segment)
}

// Update applies a partial update to a segment
func (r *SegmentRepository) Update(ctx context.Context, id primitive.ObjectID, patch *models.SegmentPatch) (*models.UpdateResult, error) {
	return r.updateOne(ctx, bson.M{"_id": id}, patch, false)
}

// Delete deletes a segment by ID
func (r *SegmentRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	return r.deleteOne(ctx, bson.M{"_id": id})
}

// Count counts all segments
func (r *SegmentRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, nil)
}
