// Package memstore provides in-memory implementations of the store
// interfaces for tests, so the suite runs without a MongoDB instance.
package memstore

import (
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
)

// cloneDoc returns a shallow copy so callers cannot mutate stored documents.
func cloneDoc(doc bson.M) bson.M {
	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}

// compareValues orders two document field values. Numbers compare
// numerically, everything else falls back to string comparison.
func compareValues(a, b interface{}) int {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}

	as, bs := fmt.Sprint(a), fmt.Sprint(b)
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// sortDocs orders docs in place by one field.
func sortDocs(docs []bson.M, field, order string) {
	sort.SliceStable(docs, func(i, j int) bool {
		c := compareValues(docs[i][field], docs[j][field])
		if order == "desc" {
			return c > 0
		}
		return c < 0
	})
}

// paginate applies skip and limit bounds to docs.
func paginate(docs []bson.M, skip, limit int64) []bson.M {
	if skip >= int64(len(docs)) {
		return []bson.M{}
	}
	docs = docs[skip:]
	if limit > 0 && limit < int64(len(docs)) {
		docs = docs[:limit]
	}
	return docs
}
