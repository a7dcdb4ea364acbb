package services

import (
	"context"
	"errors"
	"testing"

	"github.com/mcpitc/mcpitc-backend/internal/models"
	"github.com/mcpitc/mcpitc-backend/internal/repositories"
	"github.com/mcpitc/mcpitc-backend/internal/repositories/memory"
	"github.com/mcpitc/mcpitc-backend/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func strPtr(s string) *string { return &s }

func TestUserService_SaveUser(t *testing.T) {
	ctx := context.Background()

	t.Run("first login registers once", func(t *testing.T) {
		svc := NewUserService(memory.NewUserRepository())

		first, err := svc.SaveUser(ctx, &models.UserRequest{Email: "a@x.com"})
		require.NoError(t, err)
		assert.False(t, first.ID.IsZero())
		assert.NotZero(t, first.Timestamp)

		second, err := svc.SaveUser(ctx, &models.UserRequest{Email: "a@x.com"})
		require.NoError(t, err)
		assert.Equal(t, first, second)

		users, err := svc.GetAllUsers(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 1)
	})

	t.Run("profile update keeps role and timestamp", func(t *testing.T) {
		repo := memory.NewUserRepository()
		svc := NewUserService(repo)

		registered, err := svc.SaveUser(ctx, &models.UserRequest{Email: "a@x.com"})
		require.NoError(t, err)
		_, err = svc.PromoteToAdmin(ctx, "a@x.com")
		require.NoError(t, err)

		updated, err := svc.SaveUser(ctx, &models.UserRequest{Email: "a@x.com", Name: "Alice"})
		require.NoError(t, err)
		assert.Equal(t, "Alice", updated.Name)
		assert.Equal(t, models.RoleAdmin, updated.Role)
		assert.Equal(t, registered.Timestamp, updated.Timestamp)
		assert.Equal(t, registered.ID, updated.ID)
	})

	t.Run("profile update creates missing user", func(t *testing.T) {
		svc := NewUserService(memory.NewUserRepository())

		user, err := svc.SaveUser(ctx, &models.UserRequest{Email: "b@x.com", Image: "http://img"})
		require.NoError(t, err)
		assert.Equal(t, "http://img", user.Image)
		assert.NotZero(t, user.Timestamp)
	})
}

func TestUserService_IsAdmin(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(memory.NewUserRepository())

	ok, err := svc.IsAdmin(ctx, "ghost@x.com")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.SaveUser(ctx, &models.UserRequest{Email: "a@x.com"})
	require.NoError(t, err)
	ok, err = svc.IsAdmin(ctx, "a@x.com")
	require.NoError(t, err)
	assert.False(t, ok)

	res, err := svc.PromoteToAdmin(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.ModifiedCount)

	ok, err = svc.IsAdmin(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUserService_UpdateUser(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(memory.NewUserRepository())

	user, err := svc.SaveUser(ctx, &models.UserRequest{Email: "a@x.com", Name: "A"})
	require.NoError(t, err)

	res, err := svc.UpdateUser(ctx, user.ID, &models.UserRolePatch{Designation: strPtr("Treasurer")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.MatchedCount)

	got, err := svc.GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Treasurer", got.Designation)
	assert.Equal(t, "A", got.Name)

	res, err = svc.UpdateUser(ctx, primitive.NewObjectID(), &models.UserRolePatch{Designation: strPtr("x")})
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.MatchedCount)

	_, err = svc.UpdateUser(ctx, user.ID, &models.UserRolePatch{})
	assert.ErrorIs(t, err, repositories.ErrEmptyPatch)
}

func TestApplicationService_SubmitApplication(t *testing.T) {
	ctx := context.Background()
	svc := NewApplicationService(memory.NewExecutiveApplicationRepository())

	res, err := svc.SubmitApplication(ctx, &models.ExecutiveApplication{Email: "a@x.com", Name: "A"})
	require.NoError(t, err)
	assert.True(t, res.Acknowledged)

	_, err = svc.SubmitApplication(ctx, &models.ExecutiveApplication{Email: "a@x.com", Name: "Again"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrApplicationExists))

	var exists *ApplicationExistsError
	require.True(t, errors.As(err, &exists))
	assert.Equal(t, "A", exists.Existing.Name)

	all, err := svc.ListApplications(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

// racingApplicationRepo hides the first stored application from the
// pre-insert lookup, as if a concurrent submit landed in between.
type racingApplicationRepo struct {
	*memory.ExecutiveApplicationRepository
	lookups int
}

func (r *racingApplicationRepo) FindByEmail(ctx context.Context, email string) (*models.ExecutiveApplication, error) {
	r.lookups++
	if r.lookups == 1 {
		return nil, nil
	}
	return r.ExecutiveApplicationRepository.FindByEmail(ctx, email)
}

func TestApplicationService_SubmitApplication_UniqueIndexRace(t *testing.T) {
	ctx := context.Background()
	inner := memory.NewExecutiveApplicationRepository()
	_, err := inner.Create(ctx, &models.ExecutiveApplication{Email: "a@x.com", Name: "winner"})
	require.NoError(t, err)

	svc := NewApplicationService(&racingApplicationRepo{ExecutiveApplicationRepository: inner})
	_, err = svc.SubmitApplication(ctx, &models.ExecutiveApplication{Email: "a@x.com", Name: "loser"})

	var exists *ApplicationExistsError
	require.True(t, errors.As(err, &exists))
	assert.Equal(t, "winner", exists.Existing.Name)
}

func TestRecruitmentService(t *testing.T) {
	ctx := context.Background()
	svc := NewRecruitmentService(memory.NewRecruitmentRepository())

	toggle, err := svc.GetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.RecruitmentOff, toggle.Status)
	assert.Equal(t, models.RecruitmentToggleID, toggle.ID)

	_, err = svc.SetStatus(ctx, models.RecruitmentOn)
	require.NoError(t, err)

	toggle, err = svc.GetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.RecruitmentOn, toggle.Status)
}

func TestEventService(t *testing.T) {
	ctx := context.Background()
	svc := NewEventService(memory.NewEventRepository())

	older := &models.Event{Name: "Older", Timestamp: 100}
	newer := &models.Event{Name: "Newer", Timestamp: 200}
	_, err := svc.CreateEvent(ctx, older)
	require.NoError(t, err)
	_, err = svc.CreateEvent(ctx, newer)
	require.NoError(t, err)
	assert.Nil(t, older.Extra)

	events, err := svc.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Newer", events[0].Name)

	byName, err := svc.GetEventByName(ctx, "Older")
	require.NoError(t, err)
	assert.Equal(t, older.ID, byName.ID)

	res, err := svc.DeleteEvent(ctx, primitive.NewObjectID())
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.DeletedCount)

	res, err = svc.DeleteEvent(ctx, older.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.DeletedCount)

	missing, err := svc.GetEvent(ctx, older.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSegmentService(t *testing.T) {
	ctx := context.Background()
	svc := NewSegmentService(memory.NewSegmentRepository())

	for _, s := range []*models.Segment{
		{EventName: "Hackathon", Name: "Junior"},
		{EventName: "Quiz", Name: "Open"},
		{EventName: "Hackathon", Name: "Senior"},
	} {
		_, err := svc.CreateSegment(ctx, s)
		require.NoError(t, err)
	}

	segments, err := svc.ListSegmentsByEvent(ctx, "Hackathon")
	require.NoError(t, err)
	require.Len(t, segments, 2)
	assert.Equal(t, "Junior", segments[0].Name)
	assert.Equal(t, "Senior", segments[1].Name)

	none, err := svc.ListSegmentsByEvent(ctx, "Nothing")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	res, err := svc.UpdateSegment(ctx, segments[0].ID, &models.SegmentPatch{Prize: strPtr("Trophy")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.ModifiedCount)

	got, err := svc.GetSegment(ctx, segments[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Trophy", got.Prize)
	assert.Equal(t, "Junior", got.Name)
}

func TestBlogService(t *testing.T) {
	ctx := context.Background()
	svc := NewBlogService(memory.NewBlogRepository())

	blog := &models.Blog{Title: "Hello", Content: "World", Tags: []string{"go"}}
	_, err := svc.CreateBlog(ctx, blog)
	require.NoError(t, err)

	tags := []string{"go", "mongo"}
	res, err := svc.UpdateBlog(ctx, blog.ID, &models.BlogPatch{Tags: &tags})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.MatchedCount)

	got, err := svc.GetBlog(ctx, blog.ID)
	require.NoError(t, err)
	assert.Equal(t, tags, got.Tags)
	assert.Equal(t, "Hello", got.Title)

	del, err := svc.DeleteBlog(ctx, blog.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), del.DeletedCount)
}

func TestStatsService(t *testing.T) {
	ctx := context.Background()
	users := memory.NewUserRepository()
	events := memory.NewEventRepository()
	applications := memory.NewExecutiveApplicationRepository()

	_, _ = users.InsertIfAbsent(ctx, &models.User{Email: "a@x.com"})
	_, _ = users.InsertIfAbsent(ctx, &models.User{Email: "b@x.com"})
	_, _ = users.UpdateRoleByEmail(ctx, "a@x.com", models.RoleAdmin)
	_, _ = events.Create(ctx, &models.Event{Name: "E"})
	_, _ = applications.Create(ctx, &models.ExecutiveApplication{Email: "c@x.com", Name: "C"})

	svc := NewStatsService(users, events, memory.NewSegmentRepository(), memory.NewBlogRepository(), applications)
	stats, err := svc.GetAdminStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &models.AdminStats{Users: 2, Admins: 1, Events: 1, Applications: 1}, stats)
}

type failingIssuer struct{}

func (failingIssuer) Issue(map[string]interface{}) (string, error) {
	return "", errors.New("boom")
}

func TestAuthService_IssueToken(t *testing.T) {
	ctx := context.Background()
	tokens, err := jwt.NewSessionTokenService("secret", 0)
	require.NoError(t, err)
	svc := NewAuthService(tokens)

	token, err := svc.IssueToken(ctx, models.SessionRequest{"email": "a@x.com"})
	require.NoError(t, err)
	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims["email"])

	_, err = svc.IssueToken(ctx, models.SessionRequest{"name": "no email"})
	assert.ErrorIs(t, err, ErrEmailRequired)

	_, err = NewAuthService(failingIssuer{}).IssueToken(ctx, models.SessionRequest{"email": "a@x.com"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmailRequired)
}
