package mongostore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/anupamsoni/mfapi/internal/store"
)

// Funds implements store.Funds on the fund holdings collection. Each fund
// has one snapshot document per date, all sharing the unique_id business key.
type Funds struct {
	coll *mongo.Collection
}

func NewFunds(db *mongo.Database) *Funds {
	return &Funds{coll: db.Collection(FundsCollection)}
}

func (s *Funds) LatestDate(ctx context.Context) (string, error) {
	var doc struct {
		Date string `bson:"date"`
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "date", Value: -1}})
	err := s.coll.FindOne(ctx, bson.M{}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", store.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return doc.Date, nil
}

func (s *Funds) CountByDate(ctx context.Context, date string) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M{"date": date})
}

func (s *Funds) ListByDate(ctx context.Context, q store.FundQuery) ([]bson.M, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"date": q.Date}}},
		{{Key: "$group", Value: bson.M{
			"_id":           "$unique_id",
			"name":          bson.M{"$first": "$name"},
			"holding_count": bson.M{"$max": "$holding_count"},
			"added_count":   bson.M{"$max": "$added_count"},
			"removed_count": bson.M{"$max": "$removed_count"},
			"latest_date":   bson.M{"$max": "$date"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: q.SortBy, Value: sortDirection(q.Order)}}}},
		{{Key: "$skip", Value: q.Skip}},
		{{Key: "$limit", Value: q.Limit}},
	}

	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var results []bson.M
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Funds) FindHoldings(ctx context.Context, uniqueID, date string) ([]bson.M, error) {
	filter := bson.M{"unique_id": uniqueID}
	if date != "" {
		filter["date"] = date
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := s.coll.Find(ctx, filter, opts)
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

func (s *Funds) FindByUniqueIDs(ctx context.Context, ids []string) ([]bson.M, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"unique_id": bson.M{"$in": ids}})
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
