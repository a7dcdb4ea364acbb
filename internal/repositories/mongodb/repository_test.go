package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/mcpitc/mcpitc-backend/internal/models"
	"github.com/mcpitc/mcpitc-backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newMock(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func TestUserRepository(t *testing.T) {
	mt := newMock(t)
	defer mt.Close()
	ctx := context.Background()

	mt.Run("FindByEmail returns user", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "mcpitc.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "email", Value: "a@x.com"},
			{Key: "role", Value: "admin"},
		}))

		user, err := NewUserRepository(mt.DB).FindByEmail(ctx, "a@x.com")
		require.NoError(mt, err)
		require.NotNil(mt, user)
		assert.Equal(mt, id, user.ID)
		assert.True(mt, user.IsAdmin())
	})

	mt.Run("FindByEmail missing is not an error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "mcpitc.users", mtest.FirstBatch))

		user, err := NewUserRepository(mt.DB).FindByEmail(ctx, "nobody@x.com")
		assert.NoError(mt, err)
		assert.Nil(mt, user)
	})

	mt.Run("FindAll empty returns empty slice", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "mcpitc.users", mtest.FirstBatch))

		users, err := NewUserRepository(mt.DB).FindAll(ctx)
		require.NoError(mt, err)
		assert.NotNil(mt, users)
		assert.Empty(mt, users)
	})

	mt.Run("InsertIfAbsent uses setOnInsert with timestamp", func(mt *mtest.T) {
		fixed := time.UnixMilli(1700000000000)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "email", Value: "a@x.com"},
			{Key: "timestamp", Value: fixed.UnixMilli()},
		}}))

		repo := NewUserRepository(mt.DB)
		repo.now = func() time.Time { return fixed }

		user, err := repo.InsertIfAbsent(ctx, &models.User{Email: "a@x.com"})
		require.NoError(mt, err)
		assert.Equal(mt, fixed.UnixMilli(), user.Timestamp)

		started := mt.GetStartedEvent()
		assert.Equal(mt, "findAndModify", started.CommandName)
		assert.True(mt, started.Command.Lookup("upsert").Boolean())

		var inserted models.User
		require.NoError(mt, bson.Unmarshal(started.Command.Lookup("update", "$setOnInsert").Document(), &inserted))
		assert.Equal(mt, "a@x.com", inserted.Email)
		assert.Equal(mt, fixed.UnixMilli(), inserted.Timestamp)
	})

	mt.Run("UpsertProfile rejects empty profile", func(mt *mtest.T) {
		_, err := NewUserRepository(mt.DB).UpsertProfile(ctx, "a@x.com", "", "")
		assert.ErrorIs(mt, err, repositories.ErrEmptyPatch)
	})

	mt.Run("UpdateByID reports zero match", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		role := models.RoleAdmin
		res, err := NewUserRepository(mt.DB).UpdateByID(ctx, primitive.NewObjectID(), &models.UserRolePatch{Role: &role})
		require.NoError(mt, err)
		assert.Equal(mt, int64(0), res.MatchedCount)
		assert.True(mt, res.Acknowledged)
	})

	mt.Run("CountByRole", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "mcpitc.users", mtest.FirstBatch, bson.D{{Key: "n", Value: int32(2)}}))

		n, err := NewUserRepository(mt.DB).CountByRole(ctx, models.RoleAdmin)
		require.NoError(mt, err)
		assert.Equal(mt, int64(2), n)
	})
}

func TestEventRepository(t *testing.T) {
	mt := newMock(t)
	defer mt.Close()
	ctx := context.Background()

	mt.Run("FindAll sorts newest first", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "mcpitc.events", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "late"}, {Key: "timestamp", Value: int64(2)}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "early"}, {Key: "timestamp", Value: int64(1)}},
		))

		events, err := NewEventRepository(mt.DB).FindAll(ctx)
		require.NoError(mt, err)
		require.Len(mt, events, 2)
		assert.Equal(mt, "late", events[0].Name)

		var sort struct {
			Timestamp int `bson:"timestamp"`
		}
		require.NoError(mt, bson.Unmarshal(mt.GetStartedEvent().Command.Lookup("sort").Document(), &sort))
		assert.Equal(mt, -1, sort.Timestamp)
	})

	mt.Run("Create assigns id and timestamp", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		event := &models.Event{Name: "Hackathon"}
		res, err := NewEventRepository(mt.DB).Create(ctx, event)
		require.NoError(mt, err)
		assert.False(mt, event.ID.IsZero())
		assert.NotZero(mt, event.Timestamp)
		assert.Equal(mt, event.ID, res.InsertedID)
	})

	mt.Run("Delete missing id is zero-effect", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		res, err := NewEventRepository(mt.DB).Delete(ctx, primitive.NewObjectID())
		require.NoError(mt, err)
		assert.Equal(mt, int64(0), res.DeletedCount)
	})
}

func TestSegmentRepository(t *testing.T) {
	mt := newMock(t)
	defer mt.Close()
	ctx := context.Background()

	mt.Run("FindByEventName filters without sort", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "mcpitc.segments", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "eventName", Value: "Hackathon"}, {Key: "name", Value: "Junior"}},
		))

		segments, err := NewSegmentRepository(mt.DB).FindByEventName(ctx, "Hackathon")
		require.NoError(mt, err)
		require.Len(mt, segments, 1)

		cmd := mt.GetStartedEvent().Command
		assert.Equal(mt, "Hackathon", cmd.Lookup("filter", "eventName").StringValue())
		_, err = cmd.LookupErr("sort")
		assert.Error(mt, err, "segments by event must not be sorted")
	})

	mt.Run("Create stores extra members inline", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		segment := &models.Segment{EventName: "Hackathon", Extra: bson.M{"fee": "100"}}
		_, err := NewSegmentRepository(mt.DB).Create(ctx, segment)
		require.NoError(mt, err)

		doc := mt.GetStartedEvent().Command.Lookup("documents").Array().Index(0).Value().Document()
		assert.Equal(mt, "100", doc.Lookup("fee").StringValue())
		assert.Equal(mt, "Hackathon", doc.Lookup("eventName").StringValue())
	})

	mt.Run("Find decodes unknown members into Extra", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "mcpitc.segments", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "eventName", Value: "Quiz"}, {Key: "fee", Value: "50"}},
		))

		segments, err := NewSegmentRepository(mt.DB).FindAll(ctx)
		require.NoError(mt, err)
		require.Len(mt, segments, 1)
		assert.Equal(mt, "50", segments[0].Extra["fee"])
	})

	mt.Run("Update sets only provided fields", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		prize := "1000 BDT"
		res, err := NewSegmentRepository(mt.DB).Update(ctx, primitive.NewObjectID(), &models.SegmentPatch{Prize: &prize})
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), res.ModifiedCount)

		updates := mt.GetStartedEvent().Command.Lookup("updates").Array()
		first, err := updates.IndexErr(0)
		require.NoError(mt, err)
		set := first.Value().Document().Lookup("u", "$set").Document()
		elems, err := set.Elements()
		require.NoError(mt, err)
		assert.Len(mt, elems, 1)
		assert.Equal(mt, prize, set.Lookup("prize").StringValue())
	})

	mt.Run("Update with empty patch", func(mt *mtest.T) {
		_, err := NewSegmentRepository(mt.DB).Update(ctx, primitive.NewObjectID(), &models.SegmentPatch{})
		assert.ErrorIs(mt, err, repositories.ErrEmptyPatch)
	})
}

func TestExecutiveApplicationRepository(t *testing.T) {
	mt := newMock(t)
	defer mt.Close()
	ctx := context.Background()

	mt.Run("FindByEmail", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "mcpitc.executiveFormCollection", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "email", Value: "a@x.com"}, {Key: "name", Value: "A"}},
		))

		app, err := NewExecutiveApplicationRepository(mt.DB).FindByEmail(ctx, "a@x.com")
		require.NoError(mt, err)
		require.NotNil(mt, app)
		assert.Equal(mt, "A", app.Name)
	})

	mt.Run("DeleteByEmail", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		res, err := NewExecutiveApplicationRepository(mt.DB).DeleteByEmail(ctx, "a@x.com")
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), res.DeletedCount)
		assert.Equal(mt, "a@x.com", mt.GetStartedEvent().Command.Lookup("deletes").Array().Index(0).Value().Document().Lookup("q", "email").StringValue())
	})
}

func TestRecruitmentRepository(t *testing.T) {
	mt := newMock(t)
	defer mt.Close()
	ctx := context.Background()

	mt.Run("GetOrCreate defaults to off", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: models.RecruitmentToggleID},
			{Key: "status", Value: "off"},
		}}))

		toggle, err := NewRecruitmentRepository(mt.DB).GetOrCreate(ctx)
		require.NoError(mt, err)
		assert.Equal(mt, models.RecruitmentOff, toggle.Status)

		cmd := mt.GetStartedEvent().Command
		assert.Equal(mt, models.RecruitmentToggleID, cmd.Lookup("query", "_id").StringValue())
		assert.Equal(mt, "off", cmd.Lookup("update", "$setOnInsert", "status").StringValue())
	})

	mt.Run("SetStatus upserts", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		res, err := NewRecruitmentRepository(mt.DB).SetStatus(ctx, models.RecruitmentOn)
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), res.MatchedCount)

		update := mt.GetStartedEvent().Command.Lookup("updates").Array().Index(0).Value().Document()
		assert.True(mt, update.Lookup("upsert").Boolean())
	})
}
