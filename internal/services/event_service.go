package services

import (
	"context"

	"github.com/mcpitc/mcpitc-backend/internal/models"
	"github.com/mcpitc/mcpitc-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type eventService struct {
	eventRepo repositories.EventRepository
}

func NewEventService(eventRepo repositories.EventRepository) EventService {
	return &eventService{
		eventRepo: eventRepo,
	}
}

func (s *eventService) ListEvents(ctx context.Context) ([]*models.Event, error) {
	return s.eventRepo.FindAll(ctx)
}

func (s *eventService) GetEvent(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	return s.eventRepo.FindByID(ctx, id)
}

func (s *eventService) GetEventByName(ctx context.Context, name string) (*models.Event, error) {
	return s.eventRepo.FindByName(ctx, name)
}

func (s *eventService) CreateEvent(ctx context.Context, event *models.Event) (*models.InsertResult, error) {
	return s.eventRepo.Create(ctx, event)
}

func (s *eventService) DeleteEvent(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	return s.eventRepo.Delete(ctx, id)
}
