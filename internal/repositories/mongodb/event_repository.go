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

var _ repositories.EventRepository = (*EventRepository)(nil)

type EventRepository struct {
	documentStore
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{documentStore: newDocumentStore(db, EventsCollection)}
}

func (r *EventRepository) FindAll(ctx context.Context) ([]*models.Event, error) {
	var events []*models.Event
	if err := r.findMany(ctx, nil, newestFirst, &events); err != nil {
		return nil, err
	}
	if events == nil {
		events = []*models.Event{}
	}
	return events, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	return r.findEvent(ctx, bson.M{"_id": id})
}

func (r *EventRepository) FindByName(ctx context.Context, name string) (*models.Event, error) {
	return r.findEvent(ctx, bson.M{"name": name})
}

func (r *EventRepository) findEvent(ctx context.Context, filter bson.M) (*models.Event, error) {
	var event models.Event
	found, err := r.findOne(ctx, filter, &event)
	if err != nil || !found {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) Create(ctx context.Context, event *models.Event) (*models.InsertResult, error) {
	event.ID = primitive.NewObjectID()
	if event.Timestamp == 0 {
		event.Timestamp = time.Now().UnixMilli()
	}
	return r.insertOne(ctx, event)
}

func (r *EventRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	return r.deleteOne(ctx, bson.M{"_id": id})
}

func (r *EventRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, nil)
}
