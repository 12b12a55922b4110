package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"validation", ErrValidation, http.StatusBadRequest, "VALIDATION_ERROR", "please fill in all fields"},
		{"wrapped validation keeps detail", fmt.Errorf("%w: name is required", ErrValidation), http.StatusBadRequest, "VALIDATION_ERROR", "please fill in all fields: name is required"},
		{"duplicate email", ErrUserAlreadyExists, http.StatusBadRequest, "USER_ALREADY_EXISTS", "user already exists"},
		{"bad credentials", ErrInvalidCredentials, http.StatusBadRequest, "INVALID_CREDENTIALS", "invalid credentials"},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED", "invalid or missing token"},
		{"forbidden", ErrForbidden, http.StatusForbidden, "FORBIDDEN", "not allowed to access this user"},
		{"user not found", ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND", "user not found"},
		{"ingredient not found", ErrIngredientNotFound, http.StatusNotFound, "INGREDIENT_NOT_FOUND", "ingredient not found or unauthorized"},
		{"empty inventory", ErrEmptyInventory, http.StatusBadRequest, "EMPTY_INVENTORY", "no ingredients found in inventory"},
		{"wrapped upstream hides cause", fmt.Errorf("%w: status 402", ErrUpstream), http.StatusInternalServerError, "UPSTREAM_ERROR", "error fetching recipes"},
		{"unknown", errors.New("dial tcp: connection refused"), http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, got.StatusCode)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, tt.wantMsg, got.Message)
			assert.Equal(t, ErrorResponse{Error: tt.wantMsg, Code: tt.wantCode}, got.ToErrorResponse())
		})
	}
}

func TestIsUnhandled(t *testing.T) {
	assert.False(t, IsUnhandled(ErrUserNotFound))
	assert.False(t, IsUnhandled(fmt.Errorf("load: %w", ErrEmptyInventory)))
	assert.True(t, IsUnhandled(errors.New("boom")))
}
