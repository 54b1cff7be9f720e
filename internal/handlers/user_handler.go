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

// UserHandler exposes user CRUD endpoints.
type UserHandler struct {
	userService *services.UserService
	log         zerolog.Logger
}

func NewUserHandler(userService *services.UserService, log zerolog.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		log:         log,
	}
}

func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/users", h.CreateUser).Methods("POST")
	router.HandleFunc("/api/users", h.GetUserByEmail).Methods("GET")
	// The /all route must come before the {id} route.
	router.HandleFunc("/api/users/all", h.ListUsers).Methods("GET")
	router.HandleFunc("/api/users/{id}", h.GetUser).Methods("GET")
	router.HandleFunc("/api/users/{id}", h.UpdateUser).Methods("PUT")
	router.HandleFunc("/api/users/{id}", h.DeleteUser).Methods("DELETE")
}

// CreateUser registers a new user, or returns the existing record when the
// email is already taken.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req validation.CreateUser
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if fields := validation.Validate(req); fields != nil {
		h.log.Warn().Interface("errors", fields).Msg("user creation validation failed")
		writeValidationError(w, fields)
		return
	}

	user, created, err := h.userService.CreateUser(r.Context(), req.Name, req.Email, req.Picture, req.PhoneNumber)
	if err != nil {
		h.log.Error().Err(err).Msg("creating user failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if !created {
		h.log.Info().Str("email", req.Email).Msg("user already exists")
		writeJSON(w, http.StatusOK, Response{Status: "success", Message: "User already exists", Data: user})
		return
	}

	h.log.Info().Str("email", req.Email).Msg("user created")
	writeJSON(w, http.StatusCreated, Response{Status: "success", Message: "User created", Data: user})
}

func (h *UserHandler) GetUserByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "email required")
		return
	}

	user, err := h.userService.GetUserByEmail(r.Context(), email)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		h.log.Error().Err(err).Msg("getting user by email failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, Response{Status: "success", Message: "User fetched", Data: user})
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	user, err := h.userService.GetUserByID(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("id", id).Msg("getting user failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, Response{Status: "success", Message: "User fetched", Records: user})
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req validation.UpdateUser
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if fields := validation.Validate(req); fields != nil {
		h.log.Warn().Interface("errors", fields).Str("id", id).Msg("user update validation failed")
		writeValidationError(w, fields)
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), id, store.UserUpdate{
		Name:        req.Name,
		Email:       req.Email,
		Picture:     req.Picture,
		PhoneNumber: req.PhoneNumber,
	})
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("id", id).Msg("updating user failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.log.Info().Str("id", id).Msg("user updated")
	writeJSON(w, http.StatusOK, Response{Status: "success", Message: "User updated", Data: user})
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	err := h.userService.DeleteUser(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("id", id).Msg("deleting user failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, Response{Status: "success", Message: "User deleted"})
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("listing users failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Status:  "success",
		Message: "Users fetched",
		Records: users,
		Count:   countOf(int64(len(users))),
	})
}
