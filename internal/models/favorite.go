package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Item types a favorite may reference. Stocks are keyed by their
// store-native id, funds by their unique_id business key.
const (
	ItemTypeStock = "stock"
	ItemTypeFund  = "fund"
)

// Favorite is one user's bookmark of a stock or fund.
type Favorite struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID    string             `bson:"userId" json:"userId"`
	ItemID    string             `bson:"itemId" json:"itemId"`
	ItemType  string             `bson:"itemType" json:"itemType"`
	ItemName  string             `bson:"itemName" json:"itemName"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// FavoriteItem is the reduced form returned by the list endpoint.
type FavoriteItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FavoriteLists holds a user's favorites partitioned by item type.
type FavoriteLists struct {
	Stocks []FavoriteItem `json:"stocks"`
	Funds  []FavoriteItem `json:"funds"`
}
