package services

import (
	"context"
	"errors"

	"github.com/mcpitc/mcpitc-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrApplicationExists is returned when an email already has an executive application.
	ErrApplicationExists = errors.New("an application has already been submitted with this email")
	// ErrEmailRequired is returned when a session is requested without an email claim.
	ErrEmailRequired = errors.New("email is required")
)

// ApplicationExistsError carries the stored application that blocked a submit.
// errors.Is(err, ErrApplicationExists) holds for it.
type ApplicationExistsError struct {
	Existing *models.ExecutiveApplication
}

func (e *ApplicationExistsError) Error() string { return ErrApplicationExists.Error() }

func (e *ApplicationExistsError) Unwrap() error { return ErrApplicationExists }

// AuthService issues session tokens
type AuthService interface {
	// IssueToken signs the request body into a session token.
	IssueToken(ctx context.Context, claims models.SessionRequest) (string, error)
}

// UserService defines the interface for user-related operations
type UserService interface {
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// SaveUser registers a first login or updates a profile, depending on
	// whether the request carries a name or image.
	SaveUser(ctx context.Context, req *models.UserRequest) (*models.User, error)

	UpdateUser(ctx context.Context, id primitive.ObjectID, patch *models.UserRolePatch) (*models.UpdateResult, error)
	UpdateDesignation(ctx context.Context, email, designation string) (*models.UpdateResult, error)
	PromoteToAdmin(ctx context.Context, email string) (*models.UpdateResult, error)

	// IsAdmin reports whether email belongs to a stored user with the admin role.
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// EventService defines the interface for event operations
type EventService interface {
	ListEvents(ctx context.Context) ([]*models.Event, error)
	GetEvent(ctx context.Context, id primitive.ObjectID) (*models.Event, error)
	GetEventByName(ctx context.Context, name string) (*models.Event, error)
	CreateEvent(ctx context.Context, event *models.Event) (*models.InsertResult, error)
	DeleteEvent(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
}

// SegmentService defines the interface for event segment operations
type SegmentService interface {
	ListSegments(ctx context.Context) ([]*models.Segment, error)
	GetSegment(ctx context.Context, id primitive.ObjectID) (*models.Segment, error)
	ListSegmentsByEvent(ctx context.Context, eventName string) ([]*models.Segment, error)
	CreateSegment(ctx context.Context, segment *models.Segment) (*models.InsertResult, error)
	UpdateSegment(ctx context.Context, id primitive.ObjectID, patch *models.SegmentPatch) (*models.UpdateResult, error)
	DeleteSegment(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
}

// BlogService defines the interface for blog operations
type BlogService interface {
	ListBlogs(ctx context.Context) ([]*models.Blog, error)
	GetBlog(ctx context.Context, id primitive.ObjectID) (*models.Blog, error)
	CreateBlog(ctx context.Context, blog *models.Blog) (*models.InsertResult, error)
	UpdateBlog(ctx context.Context, id primitive.ObjectID, patch *models.BlogPatch) (*models.UpdateResult, error)
	DeleteBlog(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
}

// ApplicationService defines the interface for executive application operations
type ApplicationService interface {
	ListApplications(ctx context.Context) ([]*models.ExecutiveApplication, error)
	GetApplication(ctx context.Context, id primitive.ObjectID) (*models.ExecutiveApplication, error)
	ListApplicationsByEmail(ctx context.Context, email string) ([]*models.ExecutiveApplication, error)

	// SubmitApplication stores a new application. It fails with an
	// *ApplicationExistsError when the email has already applied.
	SubmitApplication(ctx context.Context, application *models.ExecutiveApplication) (*models.InsertResult, error)

	UpdateApplication(ctx context.Context, id primitive.ObjectID, patch *models.ExecutiveApplicationPatch) (*models.UpdateResult, error)
	DeleteApplicationByEmail(ctx context.Context, email string) (*models.DeleteResult, error)
}

// RecruitmentService defines the interface for the recruitment toggle
type RecruitmentService interface {
	GetStatus(ctx context.Context) (*models.RecruitmentToggle, error)
	SetStatus(ctx context.Context, status models.RecruitmentStatus) (*models.UpdateResult, error)
}

// StatsService defines the interface for the admin dashboard counters
type StatsService interface {
	GetAdminStats(ctx context.Context) (*models.AdminStats, error)
}
