package mongostore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/anupamsoni/mfapi/internal/store"
)

// Stocks implements store.Stocks on the stocks collection.
type Stocks struct {
	coll *mongo.Collection
}

func NewStocks(db *mongo.Database) *Stocks {
	return &Stocks{coll: db.Collection(StocksCollection)}
}

func (s *Stocks) List(ctx context.Context, q store.StockQuery) ([]bson.M, int64, error) {
	filter := bson.M{}
	if q.Search != "" {
		filter["name"] = bson.M{"$regex": q.Search, "$options": "i"}
	}

	total, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: q.SortBy, Value: sortDirection(q.Order)}}).
		SetSkip(q.Skip).
		SetLimit(q.Limit)

	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}

	var results []bson.M
	if err := cursor.All(ctx, &results); err != nil {
		return nil, 0, err
	}
	for _, doc := range results {
		stringifyID(doc)
	}
	return results, total, nil
}

func (s *Stocks) FindByID(ctx context.Context, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var doc bson.M
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return stringifyID(doc), nil
}

func (s *Stocks) FindByIDs(ctx context.Context, ids []string) ([]bson.M, error) {
	// Prefer native ids; if any id fails to parse, the whole set is queried
	// as raw strings instead. The fallback is all-or-nothing.
	filter := bson.M{"_id": bson.M{"$in": toNativeIDs(ids)}}

	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var results []bson.M
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	for _, doc := range results {
		stringifyID(doc)
	}
	return results, nil
}

// toNativeIDs converts every id to an ObjectID, or returns the original
// strings unchanged when at least one conversion fails.
func toNativeIDs(ids []string) []interface{} {
	native := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			raw := make([]interface{}, 0, len(ids))
			for _, v := range ids {
				raw = append(raw, v)
			}
			return raw
		}
		native = append(native, oid)
	}
	return native
}
