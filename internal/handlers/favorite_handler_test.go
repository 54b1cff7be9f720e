package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/anupamsoni/mfapi/internal/services"
	"github.com/anupamsoni/mfapi/internal/store/memstore"
)

// envelope mirrors the response wrapper for decoding in tests.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Records json.RawMessage `json:"records"`
	Count   *int64          `json:"count"`
	Data    json.RawMessage `json:"data"`
}

type favoriteFixture struct {
	router *mux.Router
	stocks *memstore.Stocks
	funds  *memstore.Funds
}

func newFavoriteHandlerFixture() *favoriteFixture {
	stocks := memstore.NewStocks()
	funds := memstore.NewFunds()
	service := services.NewFavoriteService(memstore.NewFavorites(), stocks, funds)

	router := mux.NewRouter()
	NewFavoriteHandler(service, zerolog.Nop()).RegisterRoutes(router)
	return &favoriteFixture{router: router, stocks: stocks, funds: funds}
}

func (f *favoriteFixture) do(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	var resp envelope
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response failed: %v", err)
	}
	return w, resp
}

func TestFavoriteLifecycle(t *testing.T) {
	f := newFavoriteHandlerFixture()
	s1 := f.stocks.Insert(bson.M{"name": "Test Stock", "symbol": "TEST"})

	// Add
	w, resp := f.do(t, "POST", "/api/favorites",
		`{"userId":"u1","itemId":"`+s1+`","itemType":"stock"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on add, got %d", w.Code)
	}
	if resp.Status != "success" || resp.Message != "Added" {
		t.Errorf("unexpected add response: %s / %s", resp.Status, resp.Message)
	}

	// Add again: idempotent success with a distinguishing message
	w, resp = f.do(t, "POST", "/api/favorites",
		`{"userId":"u1","itemId":"`+s1+`","itemType":"stock"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on duplicate add, got %d", w.Code)
	}
	if resp.Message != "Already in favorites" {
		t.Errorf("expected 'Already in favorites', got %q", resp.Message)
	}

	// Resolve stock favorites
	w, resp = f.do(t, "GET", "/api/favorites/stocks?userId=u1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on resolve, got %d", w.Code)
	}
	var records []map[string]interface{}
	if err := json.Unmarshal(resp.Records, &records); err != nil {
		t.Fatalf("decoding records failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 resolved stock, got %d", len(records))
	}
	if records[0]["_id"] != s1 {
		t.Errorf("expected _id %s, got %v", s1, records[0]["_id"])
	}

	// Remove via REST path
	w, resp = f.do(t, "DELETE", "/api/favorites/"+s1+"?userId=u1&type=stock", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on remove, got %d", w.Code)
	}
	if resp.Message != "Removed" {
		t.Errorf("expected 'Removed', got %q", resp.Message)
	}

	// Removing again reports not found
	w, resp = f.do(t, "DELETE", "/api/favorites/"+s1+"?userId=u1&type=stock", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on repeat remove, got %d", w.Code)
	}
	if resp.Message != "Favorite not found" {
		t.Errorf("expected 'Favorite not found', got %q", resp.Message)
	}
}

func TestAddFavoriteValidation(t *testing.T) {
	f := newFavoriteHandlerFixture()

	w, resp := f.do(t, "POST", "/api/favorites", `{"userId":"u1","itemType":"bond"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if resp.Status != "error" || resp.Message != "Validation error" {
		t.Errorf("unexpected response: %s / %s", resp.Status, resp.Message)
	}

	var fields map[string][]string
	if err := json.Unmarshal(resp.Data, &fields); err != nil {
		t.Fatalf("decoding field errors failed: %v", err)
	}
	if len(fields["itemId"]) == 0 {
		t.Errorf("expected itemId error, got %v", fields)
	}
	if len(fields["itemType"]) == 0 {
		t.Errorf("expected itemType error, got %v", fields)
	}

	w, _ = f.do(t, "POST", "/api/favorites", `not json`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed body, got %d", w.Code)
	}
}

func TestRPCEndpointsMatchRESTBehavior(t *testing.T) {
	f := newFavoriteHandlerFixture()

	// Add via the RPC alias
	w, resp := f.do(t, "POST", "/api/favorites/rpc/add",
		`{"userId":"u1","itemId":"FUND-01","itemType":"fund","itemName":"Alpha Fund"}`)
	if w.Code != http.StatusOK || resp.Message != "Added" {
		t.Fatalf("rpc add: expected 200/Added, got %d/%q", w.Code, resp.Message)
	}

	// Remove via the RPC body endpoint
	w, resp = f.do(t, "POST", "/api/favorites/rpc/remove",
		`{"userId":"u1","itemId":"FUND-01","itemType":"fund"}`)
	if w.Code != http.StatusOK || resp.Message != "Removed" {
		t.Fatalf("rpc remove: expected 200/Removed, got %d/%q", w.Code, resp.Message)
	}

	// Second remove reports not found, like the REST variant
	w, resp = f.do(t, "POST", "/api/favorites/rpc/remove",
		`{"userId":"u1","itemId":"FUND-01","itemType":"fund"}`)
	if w.Code != http.StatusNotFound || resp.Message != "Favorite not found" {
		t.Fatalf("rpc remove miss: expected 404/Favorite not found, got %d/%q", w.Code, resp.Message)
	}

	// Validation applies to the RPC remove body
	w, _ = f.do(t, "POST", "/api/favorites/rpc/remove", `{"userId":"u1"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid rpc remove, got %d", w.Code)
	}
}

func TestGetFavoritesPartitionsAndCounts(t *testing.T) {
	f := newFavoriteHandlerFixture()

	for _, body := range []string{
		`{"userId":"u1","itemId":"s1","itemType":"stock","itemName":"Stock One"}`,
		`{"userId":"u1","itemId":"s2","itemType":"stock"}`,
		`{"userId":"u1","itemId":"f1","itemType":"fund","itemName":"Fund One"}`,
	} {
		if w, _ := f.do(t, "POST", "/api/favorites", body); w.Code != http.StatusOK {
			t.Fatalf("seeding favorite failed with %d", w.Code)
		}
	}

	w, resp := f.do(t, "GET", "/api/favorites?userId=u1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if resp.Count == nil || *resp.Count != 3 {
		t.Fatalf("expected count 3, got %v", resp.Count)
	}

	var lists struct {
		Stocks []map[string]string `json:"stocks"`
		Funds  []map[string]string `json:"funds"`
	}
	if err := json.Unmarshal(resp.Data, &lists); err != nil {
		t.Fatalf("decoding partition failed: %v", err)
	}
	if len(lists.Stocks) != 2 || len(lists.Funds) != 1 {
		t.Fatalf("expected 2 stocks / 1 fund, got %d / %d", len(lists.Stocks), len(lists.Funds))
	}
	if lists.Funds[0]["id"] != "f1" || lists.Funds[0]["name"] != "Fund One" {
		t.Errorf("unexpected fund entry: %v", lists.Funds[0])
	}
	// Entries with no stored name come back with an empty string
	for _, s := range lists.Stocks {
		if s["id"] == "s2" && s["name"] != "" {
			t.Errorf("expected empty name for s2, got %q", s["name"])
		}
	}

	// Missing userId is rejected before any store access
	w, _ = f.do(t, "GET", "/api/favorites", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without userId, got %d", w.Code)
	}
}

func TestGetFavoriteFundsResolvesBusinessKeys(t *testing.T) {
	f := newFavoriteHandlerFixture()
	f.funds.Insert(bson.M{"unique_id": "FUND-01", "name": "Alpha Fund", "date": "2024-02-29", "holding_count": 42})

	// No favorites yet
	w, resp := f.do(t, "GET", "/api/favorites/funds?userId=u1", "")
	if w.Code != http.StatusOK || resp.Message != "No favorites" {
		t.Fatalf("expected 200/No favorites, got %d/%q", w.Code, resp.Message)
	}
	if resp.Count == nil || *resp.Count != 0 {
		t.Errorf("expected explicit count 0, got %v", resp.Count)
	}

	if w, _ := f.do(t, "POST", "/api/favorites",
		`{"userId":"u1","itemId":"FUND-01","itemType":"fund"}`); w.Code != http.StatusOK {
		t.Fatalf("seeding favorite failed with %d", w.Code)
	}

	w, resp = f.do(t, "GET", "/api/favorites/funds?userId=u1", "")
	if w.Code != http.StatusOK || resp.Message != "Favorite funds fetched" {
		t.Fatalf("expected 200/Favorite funds fetched, got %d/%q", w.Code, resp.Message)
	}
	var records []map[string]interface{}
	if err := json.Unmarshal(resp.Records, &records); err != nil {
		t.Fatalf("decoding records failed: %v", err)
	}
	if len(records) != 1 || records[0]["unique_id"] != "FUND-01" {
		t.Errorf("unexpected resolved funds: %v", records)
	}
}
