package memstore

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/anupamsoni/mfapi/internal/store"
)

// Funds is an in-memory store.Funds over holding snapshot documents.
type Funds struct {
	mu   sync.Mutex
	docs []bson.M
}

func NewFunds() *Funds {
	return &Funds{}
}

// Insert adds a holding snapshot document and returns its hex id.
func (s *Funds) Insert(doc bson.M) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc = cloneDoc(doc)
	oid := primitive.NewObjectID()
	doc["_id"] = oid
	s.docs = append(s.docs, doc)
	return oid.Hex()
}

func (s *Funds) LatestDate(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	latest := ""
	for _, doc := range s.docs {
		if date, _ := doc["date"].(string); date > latest {
			latest = date
		}
	}
	if latest == "" {
		return "", store.ErrNotFound
	}
	return latest, nil
}

func (s *Funds) CountByDate(_ context.Context, date string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for _, doc := range s.docs {
		if doc["date"] == date {
			n++
		}
	}
	return n, nil
}

func (s *Funds) ListByDate(_ context.Context, q store.FundQuery) ([]bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	groups := map[string]bson.M{}
	var order []string
	for _, doc := range s.docs {
		if doc["date"] != q.Date {
			continue
		}
		uid, _ := doc["unique_id"].(string)
		g, ok := groups[uid]
		if !ok {
			g = bson.M{
				"_id":           uid,
				"name":          doc["name"],
				"holding_count": doc["holding_count"],
				"added_count":   doc["added_count"],
				"removed_count": doc["removed_count"],
				"latest_date":   doc["date"],
			}
			groups[uid] = g
			order = append(order, uid)
			continue
		}
		for _, field := range []string{"holding_count", "added_count", "removed_count"} {
			if compareValues(doc[field], g[field]) > 0 {
				g[field] = doc[field]
			}
		}
		if compareValues(doc["date"], g["latest_date"]) > 0 {
			g["latest_date"] = doc["date"]
		}
	}

	results := make([]bson.M, 0, len(groups))
	for _, uid := range order {
		results = append(results, groups[uid])
	}
	sortDocs(results, q.SortBy, q.Order)
	return paginate(results, q.Skip, q.Limit), nil
}

func (s *Funds) FindHoldings(_ context.Context, uniqueID, date string) ([]bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var results []bson.M
	for _, doc := range s.docs {
		if doc["unique_id"] != uniqueID {
			continue
		}
		if date != "" && doc["date"] != date {
			continue
		}
		results = append(results, stringified(doc))
	}
	sortDocs(results, "date", "desc")
	return results, nil
}

func (s *Funds) FindByUniqueIDs(_ context.Context, ids []string) ([]bson.M, error) {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	results := []bson.M{}
	for _, doc := range s.docs {
		if uid, _ := doc["unique_id"].(string); wanted[uid] {
			results = append(results, stringified(doc))
		}
	}
	return results, nil
}
