package mongodb

import (
	"context"
	"time"

	"github.com/mcpitc/mcpitc-backend/internal/models"
	"github.com/mcpitc/mcpitc-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure UserRepository implements the interface
var _ repositories.UserRepository = (*UserRepository)(nil)

// UserRepository handles MongoDB operations for User
type UserRepository struct {
	documentStore
	now func() time.Time
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		documentStore: newDocumentStore(db, UsersCollection),
		now:           time.Now,
	}
}

// FindAll retrieves all users
func (r *UserRepository) FindAll(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	if err := r.findMany(ctx, nil, nil, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []*models.User{}
	}
	return users, nil
}

// FindByEmail finds a user by email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	found, err := r.findOne(ctx, bson.M{"email": email}, &user)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

// InsertIfAbsent inserts user with a creation timestamp unless the email is
// already registered. The stored document is returned either way.
func (r *UserRepository) InsertIfAbsent(ctx context.Context, user *models.User) (*models.User, error) {
	doc := *user
	doc.ID = primitive.NilObjectID
	if doc.Timestamp == 0 {
		doc.Timestamp = r.now().UnixMilli()
	}

	filter := bson.M{"email": user.Email}
	update := bson.M{"$setOnInsert": doc}
	return r.findOneAndUpsert(ctx, filter, update)
}

// UpsertProfile sets name and image for email. The creation timestamp is only
// written when the upsert inserts.
func (r *UserRepository) UpsertProfile(ctx context.Context, email, name, image string) (*models.User, error) {
	set := bson.M{}
	if name != "" {
		set["name"] = name
	}
	if image != "" {
		set["image"] = image
	}
	if len(set) == 0 {
		return nil, repositories.ErrEmptyPatch
	}

	filter := bson.M{"email": email}
	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"timestamp": r.now().UnixMilli()},
	}
	return r.findOneAndUpsert(ctx, filter, update)
}

func (r *UserRepository) findOneAndUpsert(ctx context.Context, filter, update interface{}) (*models.User, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var user models.User
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateByID applies a role/designation patch to the user with id
func (r *UserRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, patch *models.UserRolePatch) (*models.UpdateResult, error) {
	return r.updateOne(ctx, bson.M{"_id": id}, patch, false)
}

// UpdateRoleByEmail sets the role of the user with email
func (r *UserRepository) UpdateRoleByEmail(ctx context.Context, email, role string) (*models.UpdateResult, error) {
	return r.updateOne(ctx, bson.M{"email": email}, bson.M{"role": role}, false)
}

// UpdateDesignation sets the designation of the user with email
func (r *UserRepository) UpdateDesignation(ctx context.Context, email, designation string) (*models.UpdateResult, error) {
	return r.updateOne(ctx, bson.M{"email": email}, bson.M{"designation": designation}, false)
}

// Count counts all users
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, nil)
}

// CountByRole counts users holding role
func (r *UserRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	return r.count(ctx, bson.M{"role": role})
}
