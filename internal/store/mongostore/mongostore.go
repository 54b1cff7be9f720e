// Package mongostore implements the store interfaces on MongoDB.
package mongostore

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names in the mf_data database.
const (
	FavoritesCollection = "favorites"
	StocksCollection    = "stocks"
	FundsCollection     = "fund_holdings_test"
	TimelinesCollection = "stock_timelines"
	UsersCollection     = "users"
)

// stringifyID rewrites a native ObjectID _id as its hex string so raw
// documents serialize the way API clients expect.
func stringifyID(doc bson.M) bson.M {
	if oid, ok := doc["_id"].(primitive.ObjectID); ok {
		doc["_id"] = oid.Hex()
	}
	return doc
}

func sortDirection(order string) int {
	if order == "desc" {
		return -1
	}
	return 1
}
