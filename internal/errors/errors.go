package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrValidation is returned when required input is missing or malformed.
	ErrValidation = errors.New("please fill in all fields")
	// ErrUserAlreadyExists is returned when registering an email that is taken.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned for an unknown email or a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthorized is returned when the bearer token is missing, invalid or expired.
	ErrUnauthorized = errors.New("invalid or missing token")
	// ErrForbidden is returned when a caller targets another user's account.
	ErrForbidden = errors.New("not allowed to access this user")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrIngredientNotFound is returned when no ingredient owned by the caller matches.
	ErrIngredientNotFound = errors.New("ingredient not found or unauthorized")
	// ErrEmptyInventory is returned when recipes are requested for an empty inventory.
	ErrEmptyInventory = errors.New("no ingredients found in inventory")
	// ErrUpstream is returned when the recipe API call fails.
	ErrUpstream = errors.New("error fetching recipes")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

var mappings = []struct {
	err    error
	status int
	code   string
}{
	{ErrValidation, http.StatusBadRequest, "VALIDATION_ERROR"},
	{ErrUserAlreadyExists, http.StatusBadRequest, "USER_ALREADY_EXISTS"},
	{ErrInvalidCredentials, http.StatusBadRequest, "INVALID_CREDENTIALS"},
	{ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
	{ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
	{ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
	{ErrIngredientNotFound, http.StatusNotFound, "INGREDIENT_NOT_FOUND"},
	{ErrEmptyInventory, http.StatusBadRequest, "EMPTY_INVENTORY"},
	{ErrUpstream, http.StatusInternalServerError, "UPSTREAM_ERROR"},
}

// MapErrorToHTTP maps domain errors, wrapped or not, to HTTP errors.
// The message of a wrapped validation error is kept so callers see which
// field was rejected.
func MapErrorToHTTP(err error) *HTTPError {
	for _, m := range mappings {
		if errors.Is(err, m.err) {
			msg := m.err.Error()
			if m.err == ErrValidation {
				msg = err.Error()
			}
			return NewHTTPError(m.status, msg, m.code)
		}
	}
	return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
}

// IsUnhandled reports whether err maps to no known domain error.
func IsUnhandled(err error) bool {
	for _, m := range mappings {
		if errors.Is(err, m.err) {
			return false
		}
	}
	return true
}
