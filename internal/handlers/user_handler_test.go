package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/anupamsoni/mfapi/internal/models"
	"github.com/anupamsoni/mfapi/internal/services"
	"github.com/anupamsoni/mfapi/internal/store/memstore"
)

func newUserHandlerRouter() *mux.Router {
	router := mux.NewRouter()
	service := services.NewUserService(memstore.NewUsers())
	NewUserHandler(service, zerolog.Nop()).RegisterRoutes(router)
	return router
}

func doRequest(t *testing.T, router *mux.Router, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp envelope
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response failed: %v", err)
	}
	return w, resp
}

func TestUserLifecycle(t *testing.T) {
	router := newUserHandlerRouter()

	w, resp := doRequest(t, router, "POST", "/api/users",
		`{"name":"Anupam","email":"anupam@example.com"}`)
	if w.Code != http.StatusCreated || resp.Message != "User created" {
		t.Fatalf("expected 201/User created, got %d/%q", w.Code, resp.Message)
	}
	var created models.User
	if err := json.Unmarshal(resp.Data, &created); err != nil {
		t.Fatalf("decoding created user failed: %v", err)
	}
	if created.ID.IsZero() {
		t.Fatal("expected a generated user id")
	}
	id := created.ID.Hex()

	// Same email again returns the existing record without creating another
	w, resp = doRequest(t, router, "POST", "/api/users",
		`{"name":"Someone Else","email":"anupam@example.com"}`)
	if w.Code != http.StatusOK || resp.Message != "User already exists" {
		t.Fatalf("expected 200/User already exists, got %d/%q", w.Code, resp.Message)
	}

	// Lookup by email
	w, resp = doRequest(t, router, "GET", "/api/users?email=anupam@example.com", "")
	if w.Code != http.StatusOK || resp.Message != "User fetched" {
		t.Fatalf("expected 200/User fetched, got %d/%q", w.Code, resp.Message)
	}

	// Lookup by id
	w, _ = doRequest(t, router, "GET", "/api/users/"+id, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for id lookup, got %d", w.Code)
	}

	// Partial update
	w, resp = doRequest(t, router, "PUT", "/api/users/"+id, `{"name":"Anupam Soni"}`)
	if w.Code != http.StatusOK || resp.Message != "User updated" {
		t.Fatalf("expected 200/User updated, got %d/%q", w.Code, resp.Message)
	}
	var updated models.User
	if err := json.Unmarshal(resp.Data, &updated); err != nil {
		t.Fatalf("decoding updated user failed: %v", err)
	}
	if updated.Name != "Anupam Soni" || updated.Email != "anupam@example.com" {
		t.Errorf("unexpected updated user: %+v", updated)
	}

	// Delete, then confirm the record is gone
	w, resp = doRequest(t, router, "DELETE", "/api/users/"+id, "")
	if w.Code != http.StatusOK || resp.Message != "User deleted" {
		t.Fatalf("expected 200/User deleted, got %d/%q", w.Code, resp.Message)
	}
	w, resp = doRequest(t, router, "DELETE", "/api/users/"+id, "")
	if w.Code != http.StatusNotFound || resp.Message != "User not found" {
		t.Fatalf("expected 404/User not found, got %d/%q", w.Code, resp.Message)
	}
}

func TestCreateUserValidation(t *testing.T) {
	router := newUserHandlerRouter()

	w, resp := doRequest(t, router, "POST", "/api/users", `{"name":"X","email":"not-an-email"}`)
	if w.Code != http.StatusBadRequest || resp.Message != "Validation error" {
		t.Fatalf("expected 400/Validation error, got %d/%q", w.Code, resp.Message)
	}
	var fields map[string][]string
	if err := json.Unmarshal(resp.Data, &fields); err != nil {
		t.Fatalf("decoding field errors failed: %v", err)
	}
	if len(fields["email"]) == 0 {
		t.Errorf("expected email error, got %v", fields)
	}
}

func TestGetUserByEmailRequiresParam(t *testing.T) {
	router := newUserHandlerRouter()

	w, resp := doRequest(t, router, "GET", "/api/users", "")
	if w.Code != http.StatusBadRequest || resp.Message != "email required" {
		t.Fatalf("expected 400/email required, got %d/%q", w.Code, resp.Message)
	}
}

func TestListUsersNotShadowedByIDRoute(t *testing.T) {
	router := newUserHandlerRouter()

	if w, _ := doRequest(t, router, "POST", "/api/users",
		`{"name":"A","email":"a@example.com"}`); w.Code != http.StatusCreated {
		t.Fatalf("seeding user failed with %d", w.Code)
	}
	if w, _ := doRequest(t, router, "POST", "/api/users",
		`{"name":"B","email":"b@example.com"}`); w.Code != http.StatusCreated {
		t.Fatalf("seeding user failed with %d", w.Code)
	}

	w, resp := doRequest(t, router, "GET", "/api/users/all", "")
	if w.Code != http.StatusOK || resp.Message != "Users fetched" {
		t.Fatalf("expected 200/Users fetched, got %d/%q", w.Code, resp.Message)
	}
	if resp.Count == nil || *resp.Count != 2 {
		t.Errorf("expected count 2, got %v", resp.Count)
	}
}
