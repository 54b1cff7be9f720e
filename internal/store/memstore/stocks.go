package memstore

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/anupamsoni/mfapi/internal/store"
)

// Stocks is an in-memory store.Stocks over raw documents.
type Stocks struct {
	mu   sync.Mutex
	docs []bson.M
}

func NewStocks() *Stocks {
	return &Stocks{}
}

// Insert adds a stock document, assigns a native id and returns its hex form.
func (s *Stocks) Insert(doc bson.M) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc = cloneDoc(doc)
	oid := primitive.NewObjectID()
	doc["_id"] = oid
	s.docs = append(s.docs, doc)
	return oid.Hex()
}

func (s *Stocks) List(_ context.Context, q store.StockQuery) ([]bson.M, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]bson.M, 0, len(s.docs))
	for _, doc := range s.docs {
		if q.Search != "" {
			name, _ := doc["name"].(string)
			if !strings.Contains(strings.ToLower(name), strings.ToLower(q.Search)) {
				continue
			}
		}
		matched = append(matched, stringified(doc))
	}

	total := int64(len(matched))
	sortDocs(matched, q.SortBy, q.Order)
	return paginate(matched, q.Skip, q.Limit), total, nil
}

func (s *Stocks) FindByID(_ context.Context, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, doc := range s.docs {
		if doc["_id"] == oid {
			return stringified(doc), nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Stocks) FindByIDs(_ context.Context, ids []string) ([]bson.M, error) {
	native := make(map[primitive.ObjectID]bool, len(ids))
	allNative := true
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			allNative = false
			break
		}
		native[oid] = true
	}

	raw := make(map[string]bool, len(ids))
	for _, id := range ids {
		raw[id] = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	results := []bson.M{}
	for _, doc := range s.docs {
		if allNative {
			if oid, ok := doc["_id"].(primitive.ObjectID); ok && native[oid] {
				results = append(results, stringified(doc))
			}
			continue
		}
		if id, ok := doc["_id"].(string); ok && raw[id] {
			results = append(results, stringified(doc))
		}
	}
	return results, nil
}

func stringified(doc bson.M) bson.M {
	out := cloneDoc(doc)
	if oid, ok := out["_id"].(primitive.ObjectID); ok {
		out["_id"] = oid.Hex()
	}
	return out
}
