package mongostore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/anupamsoni/mfapi/internal/models"
	"github.com/anupamsoni/mfapi/internal/store"
)

// Favorites implements store.Favorites on the favorites collection.
type Favorites struct {
	coll *mongo.Collection
}

func NewFavorites(db *mongo.Database) *Favorites {
	return &Favorites{coll: db.Collection(FavoritesCollection)}
}

// EnsureIndexes creates the listing index and the unique triple index that
// backs the at-most-one-favorite-per-(user, item, type) invariant.
func (s *Favorites) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "userId", Value: 1}, {Key: "itemType", Value: 1}},
		},
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "itemId", Value: 1},
				{Key: "itemType", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}

func (s *Favorites) FindOne(ctx context.Context, userID, itemID, itemType string) (*models.Favorite, error) {
	var fav models.Favorite
	err := s.coll.FindOne(ctx, tripleFilter(userID, itemID, itemType)).Decode(&fav)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &fav, nil
}

func (s *Favorites) Find(ctx context.Context, userID, itemType string) ([]models.Favorite, error) {
	filter := bson.M{"userId": userID}
	if itemType != "" {
		filter["itemType"] = itemType
	}

	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var favs []models.Favorite
	if err := cursor.All(ctx, &favs); err != nil {
		return nil, err
	}
	return favs, nil
}

func (s *Favorites) Insert(ctx context.Context, fav *models.Favorite) error {
	res, err := s.coll.InsertOne(ctx, fav)
	if mongo.IsDuplicateKeyError(err) {
		return store.ErrDuplicate
	}
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		fav.ID = oid
	}
	return nil
}

func (s *Favorites) DeleteOne(ctx context.Context, userID, itemID, itemType string) error {
	res, err := s.coll.DeleteOne(ctx, tripleFilter(userID, itemID, itemType))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func tripleFilter(userID, itemID, itemType string) bson.M {
	return bson.M{
		"userId":   userID,
		"itemId":   itemID,
		"itemType": itemType,
	}
}
