package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/anupamsoni/mfapi/internal/models"
	"github.com/anupamsoni/mfapi/internal/store"
)

// FavoriteService owns the favorites collection and resolves favorite
// references into full stock and fund records.
type FavoriteService struct {
	favorites store.Favorites
	stocks    store.Stocks
	funds     store.Funds
}

func NewFavoriteService(favorites store.Favorites, stocks store.Stocks, funds store.Funds) *FavoriteService {
	return &FavoriteService{
		favorites: favorites,
		stocks:    stocks,
		funds:     funds,
	}
}

// AddFavorite stores a bookmark for the (userID, itemID, itemType) triple.
// The returned flag reports whether a new record was created; adding an
// existing favorite is not an error. The pre-check alone is racy, so an
// insert rejected by the unique index is mapped to the same
// already-exists outcome instead of failing the request.
func (s *FavoriteService) AddFavorite(ctx context.Context, userID, itemID, itemType, itemName string) (*models.Favorite, bool, error) {
	existing, err := s.favorites.FindOne(ctx, userID, itemID, itemType)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, false, err
	}

	fav := &models.Favorite{
		UserID:    userID,
		ItemID:    itemID,
		ItemType:  itemType,
		ItemName:  itemName,
		CreatedAt: time.Now().UTC(),
	}

	err = s.favorites.Insert(ctx, fav)
	if errors.Is(err, store.ErrDuplicate) {
		// Lost the race to a concurrent add; the record exists now.
		existing, err := s.favorites.FindOne(ctx, userID, itemID, itemType)
		if err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return fav, true, nil
}

// RemoveFavorite deletes the favorite matching the exact triple.
// Returns store.ErrNotFound when no record matched.
func (s *FavoriteService) RemoveFavorite(ctx context.Context, userID, itemID, itemType string) error {
	return s.favorites.DeleteOne(ctx, userID, itemID, itemType)
}

// ListFavorites returns the user's favorites partitioned into stock and
// fund lists, plus the total number of underlying favorite records.
// itemType narrows the result when non-empty.
func (s *FavoriteService) ListFavorites(ctx context.Context, userID, itemType string) (models.FavoriteLists, int, error) {
	lists := models.FavoriteLists{
		Stocks: []models.FavoriteItem{},
		Funds:  []models.FavoriteItem{},
	}

	favs, err := s.favorites.Find(ctx, userID, itemType)
	if err != nil {
		return lists, 0, err
	}

	for _, f := range favs {
		item := models.FavoriteItem{ID: f.ItemID, Name: f.ItemName}
		if f.ItemType == models.ItemTypeStock {
			lists.Stocks = append(lists.Stocks, item)
		} else {
			// Writes only ever store stock or fund, so anything else
			// landing in the fund bucket means an out-of-band write.
			lists.Funds = append(lists.Funds, item)
		}
	}
	return lists, len(favs), nil
}

// ResolveFavoriteStocks looks up the full stock records behind the user's
// stock favorites. Favorites pointing at missing stocks are omitted, so
// the result may be shorter than the favorite count it also returns.
func (s *FavoriteService) ResolveFavoriteStocks(ctx context.Context, userID string) ([]bson.M, int, error) {
	favs, err := s.favorites.Find(ctx, userID, models.ItemTypeStock)
	if err != nil {
		return nil, 0, err
	}
	if len(favs) == 0 {
		return []bson.M{}, 0, nil
	}

	ids := make([]string, 0, len(favs))
	for _, f := range favs {
		ids = append(ids, f.ItemID)
	}

	results, err := s.stocks.FindByIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	return results, len(favs), nil
}

// ResolveFavoriteFunds looks up fund holding records behind the user's
// fund favorites. Item ids are fund business keys, never native ids.
func (s *FavoriteService) ResolveFavoriteFunds(ctx context.Context, userID string) ([]bson.M, int, error) {
	favs, err := s.favorites.Find(ctx, userID, models.ItemTypeFund)
	if err != nil {
		return nil, 0, err
	}
	if len(favs) == 0 {
		return []bson.M{}, 0, nil
	}

	ids := make([]string, 0, len(favs))
	for _, f := range favs {
		ids = append(ids, f.ItemID)
	}

	results, err := s.funds.FindByUniqueIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	return results, len(favs), nil
}
