package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/mcpitc/mcpitc-backend/internal/models"
	"github.com/mcpitc/mcpitc-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names
const (
	UsersCollection        = "users"
	EventsCollection       = "events"
	SegmentsCollection     = "segments"
	BlogsCollection        = "blogs"
	ApplicationsCollection = "executiveFormCollection"
	RecruitmentCollection  = "recruitment"
)

// newestFirst sorts by creation timestamp descending.
var newestFirst = bson.D{{Key: "timestamp", Value: -1}}

// documentStore is the per-collection accessor shared by every repository:
// findOne, findMany, insertOne, updateOne, deleteOne and count.
type documentStore struct {
	collection *mongo.Collection
}

func newDocumentStore(db *mongo.Database, name string) documentStore {
	return documentStore{collection: db.Collection(name)}
}

// findOne decodes the first match into out. found is false when nothing matched.
func (s documentStore) findOne(ctx context.Context, filter interface{}, out interface{}) (found bool, err error) {
	err = s.collection.FindOne(ctx, filter).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// findMany decodes every match into out, a pointer to a slice. A nil sort keeps natural order.
func (s documentStore) findMany(ctx context.Context, filter interface{}, sort interface{}, out interface{}) error {
	if filter == nil {
		filter = bson.M{}
	}
	opts := options.Find()
	if sort != nil {
		opts.SetSort(sort)
	}

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	return cursor.All(ctx, out)
}

func (s documentStore) insertOne(ctx context.Context, doc interface{}) (*models.InsertResult, error) {
	res, err := s.collection.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return nil, fmt.Errorf("%w: %v", repositories.ErrDuplicateKey, err)
	}
	if err != nil {
		return nil, err
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

// updateOne $sets the non-empty fields of patch on the first match.
func (s documentStore) updateOne(ctx context.Context, filter interface{}, patch interface{}, upsert bool) (*models.UpdateResult, error) {
	set, err := toSetDocument(patch)
	if err != nil {
		return nil, err
	}

	opts := options.Update().SetUpsert(upsert)
	res, err := s.collection.UpdateOne(ctx, filter, bson.M{"$set": set}, opts)
	if err != nil {
		return nil, err
	}
	return &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}

func (s documentStore) deleteOne(ctx context.Context, filter interface{}) (*models.DeleteResult, error) {
	res, err := s.collection.DeleteOne(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func (s documentStore) count(ctx context.Context, filter interface{}) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	return s.collection.CountDocuments(ctx, filter)
}

// toSetDocument marshals a typed patch and rejects it when no field survives omitempty.
func toSetDocument(patch interface{}) (bson.Raw, error) {
	raw, err := bson.Marshal(patch)
	if err != nil {
		return nil, err
	}
	elems, err := bson.Raw(raw).Elements()
	if err != nil {
		return nil, err
	}
	if len(elems) == 0 {
		return nil, repositories.ErrEmptyPatch
	}
	return raw, nil
}
