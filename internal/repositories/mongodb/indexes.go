package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the repositories rely on. It is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := []struct {
		collection string
		model      mongo.IndexModel
	}{
		{
			// at most one application per email, even under concurrent submits
			collection: ApplicationsCollection,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_application_email"),
			},
		},
		{
			// lets concurrent first-login upserts converge on one user
			collection: UsersCollection,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_user_email"),
			},
		},
		{
			collection: SegmentsCollection,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "eventName", Value: 1}},
				Options: options.Index().SetName("segment_event_name"),
			},
		},
	}

	for _, idx := range indexes {
		if _, err := db.Collection(idx.collection).Indexes().CreateOne(ctx, idx.model); err != nil {
			return fmt.Errorf("create index %s on %s: %w", *idx.model.Options.Name, idx.collection, err)
		}
	}
	return nil
}
