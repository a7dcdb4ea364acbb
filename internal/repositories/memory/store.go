// Package memory provides in-process implementations of the repository
// interfaces. They mirror the MongoDB repositories closely enough to back
// service and route tests: newest-first ordering, $set-style patches and
// (nil, nil) for missing documents. Unique email indexes are enforced too.
package memory

import (
	"bytes"
	"sort"
	"sync"
	"time"

	"github.com/mcpitc/mcpitc-backend/internal/models"
	"github.com/mcpitc/mcpitc-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type store[T any] struct {
	mu          sync.RWMutex
	docs        []*T
	id          func(*T) *primitive.ObjectID
	timestamp   func(*T) *int64
	newestFirst bool
	now         func() time.Time
}

func newStore[T any](id func(*T) *primitive.ObjectID, timestamp func(*T) *int64, newestFirst bool) *store[T] {
	return &store[T]{
		id:          id,
		timestamp:   timestamp,
		newestFirst: newestFirst,
		now:         time.Now,
	}
}

func (s *store[T]) find(match func(*T) bool) []*T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*T{}
	for _, d := range s.docs {
		if match == nil || match(d) {
			c := *d
			out = append(out, &c)
		}
	}
	if s.newestFirst {
		sort.SliceStable(out, func(i, j int) bool {
			return *s.timestamp(out[i]) > *s.timestamp(out[j])
		})
	}
	return out
}

func (s *store[T]) findOne(match func(*T) bool) *T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.docs {
		if match(d) {
			c := *d
			return &c
		}
	}
	return nil
}

func (s *store[T]) findByID(id primitive.ObjectID) *T {
	return s.findOne(s.hasID(id))
}

func (s *store[T]) hasID(id primitive.ObjectID) func(*T) bool {
	return func(d *T) bool { return *s.id(d) == id }
}

// insert assigns a fresh id, and a timestamp when none is set, to doc.
func (s *store[T]) insert(doc *T) *models.InsertResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertLocked(doc)
}

func (s *store[T]) insertLocked(doc *T) *models.InsertResult {
	*s.id(doc) = primitive.NewObjectID()
	if ts := s.timestamp(doc); *ts == 0 {
		*ts = s.now().UnixMilli()
	}
	c := *doc
	s.docs = append(s.docs, &c)
	return &models.InsertResult{Acknowledged: true, InsertedID: *s.id(doc)}
}

// update applies patch to the first match the way $set would: only fields
// that survive bson omitempty are written.
func (s *store[T]) update(match func(*T) bool, patch interface{}) (*models.UpdateResult, error) {
	set, err := toSetDocument(patch)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res := &models.UpdateResult{Acknowledged: true}
	for _, d := range s.docs {
		if !match(d) {
			continue
		}
		res.MatchedCount = 1

		before, err := bson.Marshal(d)
		if err != nil {
			return nil, err
		}
		if err := bson.Unmarshal(set, d); err != nil {
			return nil, err
		}
		after, err := bson.Marshal(d)
		if err != nil {
			return nil, err
		}
		if !bytes.Equal(before, after) {
			res.ModifiedCount = 1
		}
		break
	}
	return res, nil
}

func (s *store[T]) delete(match func(*T) bool) *models.DeleteResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := &models.DeleteResult{Acknowledged: true}
	for i, d := range s.docs {
		if match(d) {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			res.DeletedCount = 1
			break
		}
	}
	return res
}

func (s *store[T]) count(match func(*T) bool) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, d := range s.docs {
		if match == nil || match(d) {
			n++
		}
	}
	return n
}

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
