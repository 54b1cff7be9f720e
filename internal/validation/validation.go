// Package validation declares the request schemas and checks inbound
// payloads before any store access. Failures come back as per-field
// message lists so clients see exactly which fields were rejected.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report field names as their json tag, not the Go identifier.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// AddFavorite is the body schema for both add-favorite endpoints.
type AddFavorite struct {
	UserID   string `json:"userId" validate:"required"`
	ItemID   string `json:"itemId" validate:"required"`
	ItemType string `json:"itemType" validate:"required,oneof=stock fund"`
	ItemName string `json:"itemName" validate:"omitempty,max=500"`
}

// RemoveFavorite is the body schema for the RPC remove endpoint.
type RemoveFavorite struct {
	UserID   string `json:"userId" validate:"required"`
	ItemID   string `json:"itemId" validate:"required"`
	ItemType string `json:"itemType" validate:"required,oneof=stock fund"`
}

// CreateUser is the body schema for user creation.
type CreateUser struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Email       string  `json:"email" validate:"required,email"`
	Picture     *string `json:"picture" validate:"omitempty,url"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,max=20"`
}

// UpdateUser is the body schema for user updates; every field is optional.
type UpdateUser struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Picture     *string `json:"picture" validate:"omitempty,url"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,max=20"`
}

// FundQuery is the query-parameter schema for the fund listing endpoint.
type FundQuery struct {
	Skip   int64  `json:"skip" validate:"min=0"`
	Limit  int64  `json:"limit" validate:"min=1,max=1000"`
	SortBy string `json:"sort_by"`
	Order  string `json:"order" validate:"oneof=asc desc"`
	Date   string `json:"date"`
}

// StockQuery is the query-parameter schema for the stock listing endpoint.
type StockQuery struct {
	Skip   int64  `json:"skip" validate:"min=0"`
	Limit  int64  `json:"limit" validate:"min=1,max=1000"`
	SortBy string `json:"sort_by"`
	Order  string `json:"order" validate:"oneof=asc desc"`
	Search string `json:"search" validate:"omitempty,max=200"`
}

// Validate checks s against its validate tags and returns per-field
// violation messages, or nil when s is valid.
func Validate(s any) map[string][]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		// Non-validation errors here mean a broken schema definition,
		// which is a programming error, not bad input.
		panic(err)
	}

	fields := make(map[string][]string)
	for _, e := range ve {
		fields[e.Field()] = append(fields[e.Field()], fieldMessage(e))
	}
	return fields
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "url":
		return "Must be a valid URL"
	case "oneof":
		return "Must be one of: " + strings.Join(strings.Fields(e.Param()), ", ")
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("Minimum length is %s", e.Param())
		}
		return fmt.Sprintf("Must be greater than or equal to %s", e.Param())
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("Maximum length is %s", e.Param())
		}
		return fmt.Sprintf("Must be less than or equal to %s", e.Param())
	default:
		return fmt.Sprintf("Validation failed on '%s'", e.Tag())
	}
}
