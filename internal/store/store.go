// Package store defines the collection access interfaces the services are
// built against. The mongostore package implements them on MongoDB; the
// memstore package provides in-memory implementations for tests.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/anupamsoni/mfapi/internal/models"
)

// ErrNotFound is returned when a lookup or delete matches no document.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert violates a unique index.
var ErrDuplicate = errors.New("duplicate record")

// Favorites is the favorites collection. The (userId, itemId, itemType)
// triple is backed by a unique index, so Insert reports ErrDuplicate even
// when two writers race past the caller's existence check.
type Favorites interface {
	FindOne(ctx context.Context, userID, itemID, itemType string) (*models.Favorite, error)
	Find(ctx context.Context, userID, itemType string) ([]models.Favorite, error)
	Insert(ctx context.Context, fav *models.Favorite) error
	DeleteOne(ctx context.Context, userID, itemID, itemType string) error
}

// StockQuery carries the listing parameters for the stocks collection.
type StockQuery struct {
	Search string
	SortBy string
	Order  string // "asc" or "desc"
	Skip   int64
	Limit  int64
}

// Stocks is the stock metadata collection. Documents are schemaless, so
// reads return raw documents with _id rendered as a hex string.
type Stocks interface {
	List(ctx context.Context, q StockQuery) ([]bson.M, int64, error)
	// FindByID looks a stock up by its store-native id.
	FindByID(ctx context.Context, id string) (bson.M, error)
	// FindByIDs resolves a set of ids. All ids are first interpreted as
	// store-native ids; if any of them fails to parse, the whole set is
	// queried as raw string ids instead. Unknown ids are omitted.
	FindByIDs(ctx context.Context, ids []string) ([]bson.M, error)
}

// FundQuery carries the listing parameters for fund holding snapshots.
type FundQuery struct {
	Date   string
	SortBy string
	Order  string
	Skip   int64
	Limit  int64
}

// Funds is the fund_holdings collection: dated holding snapshots sharing a
// unique_id business key per fund.
type Funds interface {
	// LatestDate returns the most recent holding date, or ErrNotFound when
	// the collection is empty.
	LatestDate(ctx context.Context) (string, error)
	CountByDate(ctx context.Context, date string) (int64, error)
	// ListByDate groups the snapshots for one date by unique_id.
	ListByDate(ctx context.Context, q FundQuery) ([]bson.M, error)
	// FindHoldings returns all snapshots for one fund, newest first.
	// Date narrows the result to a single snapshot date when non-empty.
	FindHoldings(ctx context.Context, uniqueID, date string) ([]bson.M, error)
	FindByUniqueIDs(ctx context.Context, ids []string) ([]bson.M, error)
}

// Timelines is the stock_timelines collection. Timeline documents are keyed
// by the raw stock id string, not by a store-native id.
type Timelines interface {
	FindByID(ctx context.Context, id string) (bson.M, error)
}

// UserUpdate is a partial update; nil fields are left untouched.
type UserUpdate struct {
	Name        *string
	Email       *string
	Picture     *string
	PhoneNumber *string
}

// Users is the users collection.
type Users interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Insert(ctx context.Context, user *models.User) error
	Update(ctx context.Context, id string, upd UserUpdate) (*models.User, error)
	Delete(ctx context.Context, id string) error
}
