package services

import (
	"context"

	"github.com/mcpitc/mcpitc-backend/internal/models"
	"github.com/mcpitc/mcpitc-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type segmentService struct {
	segmentRepo repositories.SegmentRepository
}

func NewSegmentService(segmentRepo repositories.SegmentRepository) SegmentService {
	return &segmentService{segmentRepo: segmentRepo}
}

func (s *segmentService) ListSegments(ctx context.Context) ([]*models.Segment, error) {
	return s.segmentRepo.FindAll(ctx)
}

func (s *segmentService) GetSegment(ctx context.Context, id primitive.ObjectID) (*models.Segment, error) {
	return s.segmentRepo.FindByID(ctx, id)
}

// ListSegmentsByEvent returns the segments linked to eventName in storage order.
func (s *segmentService) ListSegmentsByEvent(ctx context.Context, eventName string) ([]*models.Segment, error) {
	return s.segmentRepo.FindByEventName(ctx, eventName)
}

func (s *segmentService) CreateSegment(ctx context.Context, segment *models.Segment) (*models.InsertResult, error) {
	return s.segmentRepo.Create(ctx, segment)
}

func (s *segmentService) UpdateSegment(ctx context.Context, id primitive.ObjectID, patch *models.SegmentPatch) (*models.UpdateResult, error) {
	return s.segmentRepo.Update(ctx, id, patch)
}

func (s *segmentService) DeleteSegment(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	return s.segmentRepo.Delete(ctx, id)
}
