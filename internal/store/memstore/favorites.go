package memstore

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/anupamsoni/mfapi/internal/models"
	"github.com/anupamsoni/mfapi/internal/store"
)

// Favorites is an in-memory store.Favorites. Insert enforces the unique
// (userId, itemId, itemType) index the way the Mongo collection does.
type Favorites struct {
	mu   sync.Mutex
	favs []models.Favorite
}

func NewFavorites() *Favorites {
	return &Favorites{}
}

func (s *Favorites) FindOne(_ context.Context, userID, itemID, itemType string) (*models.Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.favs {
		if f.UserID == userID && f.ItemID == itemID && f.ItemType == itemType {
			fav := f
			return &fav, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Favorites) Find(_ context.Context, userID, itemType string) ([]models.Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Favorite
	for _, f := range s.favs {
		if f.UserID != userID {
			continue
		}
		if itemType != "" && f.ItemType != itemType {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}

func (s *Favorites) Insert(_ context.Context, fav *models.Favorite) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.favs {
		if f.UserID == fav.UserID && f.ItemID == fav.ItemID && f.ItemType == fav.ItemType {
			return store.ErrDuplicate
		}
	}
	if fav.ID.IsZero() {
		fav.ID = primitive.NewObjectID()
	}
	s.favs = append(s.favs, *fav)
	return nil
}

func (s *Favorites) DeleteOne(_ context.Context, userID, itemID, itemType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, f := range s.favs {
		if f.UserID == userID && f.ItemID == itemID && f.ItemType == itemType {
			s.favs = append(s.favs[:i], s.favs[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

// Len reports the number of stored favorites across all users.
func (s *Favorites) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.favs)
}
