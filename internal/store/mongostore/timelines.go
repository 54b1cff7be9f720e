package mongostore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/anupamsoni/mfapi/internal/store"
)

// Timelines implements store.Timelines. Timeline documents use the raw
// stock id string as their _id, so no ObjectID conversion happens here.
type Timelines struct {
	coll *mongo.Collection
}

func NewTimelines(db *mongo.Database) *Timelines {
	return &Timelines{coll: db.Collection(TimelinesCollection)}
}

func (s *Timelines) FindByID(ctx context.Context, id string) (bson.M, error) {
	var doc bson.M
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return stringifyID(doc), nil
}
