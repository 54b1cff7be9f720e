package memstore

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/anupamsoni/mfapi/internal/store"
)

// Timelines is an in-memory store.Timelines keyed by raw stock id strings.
type Timelines struct {
	mu   sync.Mutex
	docs map[string]bson.M
}

func NewTimelines() *Timelines {
	return &Timelines{docs: map[string]bson.M{}}
}

// Insert stores a timeline document under the given stock id.
func (s *Timelines) Insert(id string, doc bson.M) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc = cloneDoc(doc)
	doc["_id"] = id
	s.docs[id] = doc
}

func (s *Timelines) FindByID(_ context.Context, id string) (bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return cloneDoc(doc), nil
}
