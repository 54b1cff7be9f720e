package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/anupamsoni/mfapi/internal/services"
	"github.com/anupamsoni/mfapi/internal/store"
	"github.com/anupamsoni/mfapi/internal/validation"
)

// FavoriteHandler exposes the favorites endpoints, including the RPC-style
// add/remove aliases used by older clients.
type FavoriteHandler struct {
	favoriteService *services.FavoriteService
	log             zerolog.Logger
}

func NewFavoriteHandler(favoriteService *services.FavoriteService, log zerolog.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
		log:             log,
	}
}

func (h *FavoriteHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/favorites", h.GetFavorites).Methods("GET")
	router.HandleFunc("/api/favorites", h.AddFavorite).Methods("POST")
	router.HandleFunc("/api/favorites/rpc/add", h.AddFavorite).Methods("POST")
	router.HandleFunc("/api/favorites/rpc/remove", h.RemoveFavoriteRPC).Methods("POST")
	router.HandleFunc("/api/favorites/stocks", h.GetFavoriteStocks).Methods("GET")
	router.HandleFunc("/api/favorites/funds", h.GetFavoriteFunds).Methods("GET")
	router.HandleFunc("/api/favorites/{itemId}", h.RemoveFavorite).Methods("DELETE")
}

// GetFavorites lists a user's favorites partitioned into stocks and funds.
func (h *FavoriteHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	itemType := r.URL.Query().Get("type")

	if userID == "" {
		writeError(w, http.StatusBadRequest, "userId required")
		return
	}

	lists, total, err := h.favoriteService.ListFavorites(r.Context(), userID, itemType)
	if err != nil {
		h.log.Error().Err(err).Str("userId", userID).Msg("listing favorites failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Status:  "success",
		Message: "Favorites fetched",
		Data:    lists,
		Count:   countOf(int64(total)),
	})
}

// AddFavorite bookmarks an item for a user. Adding an item that is already
// bookmarked succeeds with a distinguishing message and no write.
func (h *FavoriteHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	var req validation.AddFavorite
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if fields := validation.Validate(req); fields != nil {
		h.log.Warn().Interface("errors", fields).Msg("add favorite validation failed")
		writeValidationError(w, fields)
		return
	}

	fav, created, err := h.favoriteService.AddFavorite(r.Context(), req.UserID, req.ItemID, req.ItemType, req.ItemName)
	if err != nil {
		h.log.Error().Err(err).Msg("adding favorite failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if !created {
		h.log.Info().Str("userId", req.UserID).Str("itemId", req.ItemID).Str("itemType", req.ItemType).
			Msg("favorite already exists")
		writeJSON(w, http.StatusOK, Response{Status: "success", Message: "Already in favorites"})
		return
	}

	h.log.Info().Str("userId", req.UserID).Str("itemId", req.ItemID).Str("itemType", req.ItemType).
		Msg("favorite added")
	writeJSON(w, http.StatusOK, Response{Status: "success", Message: "Added", Data: fav})
}

// RemoveFavorite deletes a favorite keyed by the item id in the path plus
// userId/type query parameters.
func (h *FavoriteHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["itemId"]
	userID := r.URL.Query().Get("userId")
	itemType := r.URL.Query().Get("type")

	if userID == "" || itemType == "" {
		writeError(w, http.StatusBadRequest, "userId and type required")
		return
	}

	h.removeFavorite(w, r, userID, itemID, itemType)
}

// RemoveFavoriteRPC deletes a favorite described by a full JSON body. The
// store effect and response shape match the path-parameter variant exactly.
func (h *FavoriteHandler) RemoveFavoriteRPC(w http.ResponseWriter, r *http.Request) {
	var req validation.RemoveFavorite
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if fields := validation.Validate(req); fields != nil {
		h.log.Warn().Interface("errors", fields).Msg("remove favorite validation failed")
		writeValidationError(w, fields)
		return
	}

	h.removeFavorite(w, r, req.UserID, req.ItemID, req.ItemType)
}

func (h *FavoriteHandler) removeFavorite(w http.ResponseWriter, r *http.Request, userID, itemID, itemType string) {
	err := h.favoriteService.RemoveFavorite(r.Context(), userID, itemID, itemType)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Favorite not found")
		return
	}
	if err != nil {
		h.log.Error().Err(err).Msg("removing favorite failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.log.Info().Str("userId", userID).Str("itemId", itemID).Str("itemType", itemType).
		Msg("favorite removed")
	writeJSON(w, http.StatusOK, Response{Status: "success", Message: "Removed"})
}

// GetFavoriteStocks resolves a user's stock favorites into full stock
// records. Orphaned favorites are silently omitted.
func (h *FavoriteHandler) GetFavoriteStocks(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "userId required")
		return
	}

	records, favCount, err := h.favoriteService.ResolveFavoriteStocks(r.Context(), userID)
	if err != nil {
		h.log.Error().Err(err).Str("userId", userID).Msg("resolving favorite stocks failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if favCount == 0 {
		writeJSON(w, http.StatusOK, Response{
			Status:  "success",
			Message: "No favorites",
			Records: records,
			Count:   countOf(0),
		})
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Status:  "success",
		Message: "Favorite stocks fetched",
		Records: records,
		Count:   countOf(int64(len(records))),
	})
}

// GetFavoriteFunds resolves a user's fund favorites by business key.
func (h *FavoriteHandler) GetFavoriteFunds(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "userId required")
		return
	}

	records, favCount, err := h.favoriteService.ResolveFavoriteFunds(r.Context(), userID)
	if err != nil {
		h.log.Error().Err(err).Str("userId", userID).Msg("resolving favorite funds failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if favCount == 0 {
		writeJSON(w, http.StatusOK, Response{
			Status:  "success",
			Message: "No favorites",
			Records: records,
			Count:   countOf(0),
		})
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Status:  "success",
		Message: "Favorite funds fetched",
		Records: records,
		Count:   countOf(int64(len(records))),
	})
}
