package validation

import (
	"strings"
	"testing"
)

func TestValidateAddFavorite(t *testing.T) {
	tests := []struct {
		name      string
		req       AddFavorite
		badFields []string
	}{
		{
			name: "valid stock favorite",
			req:  AddFavorite{UserID: "u1", ItemID: "abc", ItemType: "stock", ItemName: "Test Stock"},
		},
		{
			name: "valid fund favorite without name",
			req:  AddFavorite{UserID: "u1", ItemID: "FUND-01", ItemType: "fund"},
		},
		{
			name:      "missing userId",
			req:       AddFavorite{ItemID: "abc", ItemType: "stock"},
			badFields: []string{"userId"},
		},
		{
			name:      "missing everything",
			req:       AddFavorite{},
			badFields: []string{"userId", "itemId", "itemType"},
		},
		{
			name:      "unknown item type",
			req:       AddFavorite{UserID: "u1", ItemID: "abc", ItemType: "bond"},
			badFields: []string{"itemType"},
		},
		{
			name:      "item name too long",
			req:       AddFavorite{UserID: "u1", ItemID: "abc", ItemType: "stock", ItemName: strings.Repeat("x", 501)},
			badFields: []string{"itemName"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := Validate(tt.req)
			if len(tt.badFields) == 0 {
				if fields != nil {
					t.Fatalf("expected no errors, got %v", fields)
				}
				return
			}
			if len(fields) != len(tt.badFields) {
				t.Fatalf("expected errors on %v, got %v", tt.badFields, fields)
			}
			for _, f := range tt.badFields {
				if len(fields[f]) == 0 {
					t.Errorf("expected an error message for %q, got %v", f, fields)
				}
			}
		})
	}
}

func TestValidateRemoveFavorite(t *testing.T) {
	if fields := Validate(RemoveFavorite{UserID: "u1", ItemID: "abc", ItemType: "fund"}); fields != nil {
		t.Fatalf("expected no errors, got %v", fields)
	}

	fields := Validate(RemoveFavorite{UserID: "u1", ItemID: "abc", ItemType: "bogus"})
	if len(fields["itemType"]) == 0 {
		t.Fatalf("expected itemType error, got %v", fields)
	}
	if !strings.Contains(fields["itemType"][0], "stock") || !strings.Contains(fields["itemType"][0], "fund") {
		t.Errorf("expected allowed values in message, got %q", fields["itemType"][0])
	}
}

func TestValidateCreateUser(t *testing.T) {
	picture := "https://example.com/a.png"
	bad := "not-a-url"

	tests := []struct {
		name      string
		req       CreateUser
		badFields []string
	}{
		{
			name: "valid",
			req:  CreateUser{Name: "Jane", Email: "jane@example.com", Picture: &picture},
		},
		{
			name:      "invalid email",
			req:       CreateUser{Name: "Jane", Email: "nope"},
			badFields: []string{"email"},
		},
		{
			name:      "invalid picture url",
			req:       CreateUser{Name: "Jane", Email: "jane@example.com", Picture: &bad},
			badFields: []string{"picture"},
		},
		{
			name:      "name too long",
			req:       CreateUser{Name: strings.Repeat("a", 201), Email: "jane@example.com"},
			badFields: []string{"name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := Validate(tt.req)
			if len(tt.badFields) == 0 {
				if fields != nil {
					t.Fatalf("expected no errors, got %v", fields)
				}
				return
			}
			for _, f := range tt.badFields {
				if len(fields[f]) == 0 {
					t.Errorf("expected an error for %q, got %v", f, fields)
				}
			}
		})
	}
}

func TestValidateListQueries(t *testing.T) {
	ok := StockQuery{Skip: 0, Limit: 50, SortBy: "name", Order: "asc"}
	if fields := Validate(ok); fields != nil {
		t.Fatalf("expected no errors, got %v", fields)
	}

	fields := Validate(StockQuery{Skip: -1, Limit: 0, SortBy: "name", Order: "sideways"})
	for _, f := range []string{"skip", "limit", "order"} {
		if len(fields[f]) == 0 {
			t.Errorf("expected an error for %q, got %v", f, fields)
		}
	}

	fields = Validate(FundQuery{Skip: 0, Limit: 2000, SortBy: "holding_count", Order: "desc"})
	if len(fields["limit"]) == 0 {
		t.Errorf("expected limit error, got %v", fields)
	}
}
