package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/mcpitc/mcpitc-backend/internal/models"
	"github.com/mcpitc/mcpitc-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	_ repositories.UserRepository                 = (*UserRepository)(nil)
	_ repositories.EventRepository                = (*EventRepository)(nil)
	_ repositories.SegmentRepository              = (*SegmentRepository)(nil)
	_ repositories.BlogRepository                 = (*BlogRepository)(nil)
	_ repositories.ExecutiveApplicationRepository = (*ExecutiveApplicationRepository)(nil)
	_ repositories.RecruitmentRepository          = (*RecruitmentRepository)(nil)
)

// UserRepository keeps users in memory, unique by email.
type UserRepository struct {
	*store[models.User]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{newStore(
		func(u *models.User) *primitive.ObjectID { return &u.ID },
		func(u *models.User) *int64 { return &u.Timestamp },
		false,
	)}
}

func byEmail(email string) func(*models.User) bool {
	return func(u *models.User) bool { return u.Email == email }
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*models.User, error) {
	return r.find(nil), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(byEmail(email)), nil
}

func (r *UserRepository) InsertIfAbsent(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.docs {
		if u.Email == user.Email {
			c := *u
			return &c, nil
		}
	}
	doc := *user
	r.insertLocked(&doc)
	return &doc, nil
}

func (r *UserRepository) UpsertProfile(ctx context.Context, email, name, image string) (*models.User, error) {
	if name == "" && image == "" {
		return nil, repositories.ErrEmptyPatch
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var target *models.User
	for _, u := range r.docs {
		if u.Email == email {
			target = u
			break
		}
	}
	if target == nil {
		doc := models.User{Email: email}
		r.insertLocked(&doc)
		target = r.docs[len(r.docs)-1]
	}
	if name != "" {
		target.Name = name
	}
	if image != "" {
		target.Image = image
	}
	c := *target
	return &c, nil
}

func (r *UserRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, patch *models.UserRolePatch) (*models.UpdateResult, error) {
	return r.update(r.hasID(id), patch)
}

func (r *UserRepository) UpdateRoleByEmail(ctx context.Context, email, role string) (*models.UpdateResult, error) {
	return r.update(byEmail(email), bson.M{"role": role})
}

func (r *UserRepository) UpdateDesignation(ctx context.Context, email, designation string) (*models.UpdateResult, error) {
	return r.update(byEmail(email), bson.M{"designation": designation})
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	return r.count(nil), nil
}

func (r *UserRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	return r.count(func(u *models.User) bool { return u.Role == role }), nil
}

// EventRepository keeps events in memory, newest first.
type EventRepository struct {
	*store[models.Event]
}

func NewEventRepository() *EventRepository {
	return &EventRepository{newStore(
		func(e *models.Event) *primitive.ObjectID { return &e.ID },
		func(e *models.Event) *int64 { return &e.Timestamp },
		true,
	)}
}

func (r *EventRepository) FindAll(ctx context.Context) ([]*models.Event, error) {
	return r.find(nil), nil
}

func (r *EventRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	return r.findByID(id), nil
}

func (r *EventRepository) FindByName(ctx context.Context, name string) (*models.Event, error) {
	return r.findOne(func(e *models.Event) bool { return e.Name == name }), nil
}

func (r *EventRepository) Create(ctx context.Context, event *models.Event) (*models.InsertResult, error) {
	return r.insert(event), nil
}

func (r *EventRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	return r.delete(r.hasID(id)), nil
}

func (r *EventRepository) Count(ctx context.Context) (int64, error) {
	return r.count(nil), nil
}

// SegmentRepository keeps segments in memory in insertion order.
type SegmentRepository struct {
	*store[models.Segment]
}

func NewSegmentRepository() *SegmentRepository {
	return &SegmentRepository{newStore(
		func(s *models.Segment) *primitive.ObjectID { return &s.ID },
		func(s *models.Segment) *int64 { return &s.Timestamp },
		false,
	)}
}

func (r *SegmentRepository) FindAll(ctx context.Context) ([]*models.Segment, error) {
	return r.find(nil), nil
}

func (r *SegmentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Segment, error) {
	return r.findByID(id), nil
}

func (r *SegmentRepository) FindByEventName(ctx context.Context, eventName string) ([]*models.Segment, error) {
	return r.find(func(s *models.Segment) bool { return s.EventName == eventName }), nil
}

func (r *SegmentRepository) Create(ctx context.Context, segment *models.Segment) (*models.InsertResult, error) {
	return r.insert(segment), nil
}

func (r *SegmentRepository) Update(ctx context.Context, id primitive.ObjectID, patch *models.SegmentPatch) (*models.UpdateResult, error) {
	return r.update(r.hasID(id), patch)
}

func (r *SegmentRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	return r.delete(r.hasID(id)), nil
}

func (r *SegmentRepository) Count(ctx context.Context) (int64, error) {
	return r.count(nil), nil
}

// BlogRepository keeps blogs in memory, newest first.
type BlogRepository struct {
	*store[models.Blog]
}

func NewBlogRepository() *BlogRepository {
	return &BlogRepository{newStore(
		func(b *models.Blog) *primitive.ObjectID { return &b.ID },
		func(b *models.Blog) *int64 { return &b.Timestamp },
		true,
	)}
}

func (r *BlogRepository) FindAll(ctx context.Context) ([]*models.Blog, error) {
	return r.find(nil), nil
}

func (r *BlogRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	return r.findByID(id), nil
}

func (r *BlogRepository) Create(ctx context.Context, blog *models.Blog) (*models.InsertResult, error) {
	return r.insert(blog), nil
}

func (r *BlogRepository) Update(ctx context.Context, id primitive.ObjectID, patch *models.BlogPatch) (*models.UpdateResult, error) {
	return r.update(r.hasID(id), patch)
}

func (r *BlogRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	return r.delete(r.hasID(id)), nil
}

func (r *BlogRepository) Count(ctx context.Context) (int64, error) {
	return r.count(nil), nil
}

// ExecutiveApplicationRepository keeps applications in memory, newest first
// and unique by email.
type ExecutiveApplicationRepository struct {
	*store[models.ExecutiveApplication]
}

func NewExecutiveApplicationRepository() *ExecutiveApplicationRepository {
	return &ExecutiveApplicationRepository{newStore(
		func(a *models.ExecutiveApplication) *primitive.ObjectID { return &a.ID },
		func(a *models.ExecutiveApplication) *int64 { return &a.Timestamp },
		true,
	)}
}

func applicationEmail(email string) func(*models.ExecutiveApplication) bool {
	return func(a *models.ExecutiveApplication) bool { return a.Email == email }
}

func (r *ExecutiveApplicationRepository) FindAll(ctx context.Context) ([]*models.ExecutiveApplication, error) {
	return r.find(nil), nil
}

func (r *ExecutiveApplicationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.ExecutiveApplication, error) {
	return r.findByID(id), nil
}

func (r *ExecutiveApplicationRepository) FindByEmail(ctx context.Context, email string) (*models.ExecutiveApplication, error) {
	return r.findOne(applicationEmail(email)), nil
}

func (r *ExecutiveApplicationRepository) FindAllByEmail(ctx context.Context, email string) ([]*models.ExecutiveApplication, error) {
	return r.find(applicationEmail(email)), nil
}

func (r *ExecutiveApplicationRepository) Create(ctx context.Context, application *models.ExecutiveApplication) (*models.InsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.docs {
		if a.Email == application.Email {
			return nil, fmt.Errorf("%w: email %q", repositories.ErrDuplicateKey, application.Email)
		}
	}
	return r.insertLocked(application), nil
}

func (r *ExecutiveApplicationRepository) Update(ctx context.Context, id primitive.ObjectID, patch *models.ExecutiveApplicationPatch) (*models.UpdateResult, error) {
	return r.update(r.hasID(id), patch)
}

func (r *ExecutiveApplicationRepository) DeleteByEmail(ctx context.Context, email string) (*models.DeleteResult, error) {
	return r.delete(applicationEmail(email)), nil
}

func (r *ExecutiveApplicationRepository) Count(ctx context.Context) (int64, error) {
	return r.count(nil), nil
}

// RecruitmentRepository holds the single recruitment toggle.
type RecruitmentRepository struct {
	mu     sync.Mutex
	toggle *models.RecruitmentToggle
}

func NewRecruitmentRepository() *RecruitmentRepository {
	return &RecruitmentRepository{}
}

func (r *RecruitmentRepository) GetOrCreate(ctx context.Context) (*models.RecruitmentToggle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.toggle == nil {
		r.toggle = &models.RecruitmentToggle{ID: models.RecruitmentToggleID, Status: models.RecruitmentOff}
	}
	c := *r.toggle
	return &c, nil
}

func (r *RecruitmentRepository) SetStatus(ctx context.Context, status models.RecruitmentStatus) (*models.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.toggle == nil {
		r.toggle = &models.RecruitmentToggle{ID: models.RecruitmentToggleID, Status: status}
		return &models.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: models.RecruitmentToggleID}, nil
	}
	res := &models.UpdateResult{Acknowledged: true, MatchedCount: 1}
	if r.toggle.Status != status {
		r.toggle.Status = status
		res.ModifiedCount = 1
	}
	return res, nil
}
