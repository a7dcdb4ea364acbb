package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/mcpitc/mcpitc-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrEmptyPatch is returned when an update carries no fields to set.
	ErrEmptyPatch = errors.New("update has no fields to set")
	// ErrDuplicateKey is returned when an insert violates a unique index.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrInvalidID is returned by ParseID for anything that is not a 24 character hex ObjectID.
	ErrInvalidID = errors.New("invalid ID format")
)

// ParseID converts a hex string path parameter into an ObjectID
func ParseID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, hex)
	}
	return id, nil
}

// Lookups that find nothing return (nil, nil); updates and deletes that match
// nothing return a zero-count result. Neither is an error.

// UserRepository defines the interface for user data operations
type UserRepository interface {
	FindAll(ctx context.Context) ([]*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// InsertIfAbsent atomically inserts user unless one with the same email
	// exists, and returns whichever document is stored afterwards.
	InsertIfAbsent(ctx context.Context, user *models.User) (*models.User, error)
	// UpsertProfile sets the non-empty name/image for email, creating the user if needed.
	UpsertProfile(ctx context.Context, email, name, image string) (*models.User, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, patch *models.UserRolePatch) (*models.UpdateResult, error)
	UpdateRoleByEmail(ctx context.Context, email, role string) (*models.UpdateResult, error)
	UpdateDesignation(ctx context.Context, email, designation string) (*models.UpdateResult, error)
	Count(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, role string) (int64, error)
}

// EventRepository defines the interface for event data operations
type EventRepository interface {
	// FindAll returns events newest first by timestamp.
	FindAll(ctx context.Context) ([]*models.Event, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error)
	FindByName(ctx context.Context, name string) (*models.Event, error)
	Create(ctx context.Context, event *models.Event) (*models.InsertResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
	Count(ctx context.Context) (int64, error)
}

// SegmentRepository defines the interface for event segment operations
type SegmentRepository interface {
	FindAll(ctx context.Context) ([]*models.Segment, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Segment, error)
	FindByEventName(ctx context.Context, eventName string) ([]*models.Segment, error)
	Create(ctx context.Context, segment *models.Segment) (*models.InsertResult, error)
	Update(ctx context.Context, id primitive.ObjectID, patch *models.SegmentPatch) (*models.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
	Count(ctx context.Context) (int64, error)
}

// BlogRepository defines the interface for blog operations
type BlogRepository interface {
	// FindAll returns blogs newest first by timestamp.
	FindAll(ctx context.Context) ([]*models.Blog, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error)
	Create(ctx context.Context, blog *models.Blog) (*models.InsertResult, error)
	Update(ctx context.Context, id primitive.ObjectID, patch *models.BlogPatch) (*models.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
	Count(ctx context.Context) (int64, error)
}

// ExecutiveApplicationRepository defines the interface for recruitment form operations
type ExecutiveApplicationRepository interface {
	FindAll(ctx context.Context) ([]*models.ExecutiveApplication, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.ExecutiveApplication, error)
	FindByEmail(ctx context.Context, email string) (*models.ExecutiveApplication, error)
	FindAllByEmail(ctx context.Context, email string) ([]*models.ExecutiveApplication, error)
	Create(ctx context.Context, application *models.ExecutiveApplication) (*models.InsertResult, error)
	Update(ctx context.Context, id primitive.ObjectID, patch *models.ExecutiveApplicationPatch) (*models.UpdateResult, error)
	DeleteByEmail(ctx context.Context, email string) (*models.DeleteResult, error)
	Count(ctx context.Context) (int64, error)
}

// RecruitmentRepository defines the interface for the recruitment toggle singleton
type RecruitmentRepository interface {
	// GetOrCreate returns the toggle, creating it switched off on first access.
	GetOrCreate(ctx context.Context) (*models.RecruitmentToggle, error)
	SetStatus(ctx context.Context, status models.RecruitmentStatus) (*models.UpdateResult, error)
}
