// Package client is a typed REST client for the pantry API. It never caches:
// every call goes to the server, and the caller passes the Session
// explicitly.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "pantry/internal/errors"
	"pantry/internal/handler"
	"pantry/internal/model"
)

// Session identifies the signed-in user. It is returned by Login.
type Session struct {
	Token  string    `json:"token"`
	UserID uuid.UUID `json:"userId"`
}

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("pantry api: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("pantry api: status %d %s: %s", e.Status, e.Code, e.Message)
}

// Client talks to one pantry server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the server at baseURL, e.g. http://localhost:5000.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, name, location, email, password string) (*model.User, error) {
	var out handler.RegisterResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/register", nil, handler.RegisterRequest{
		Name:     name,
		Location: location,
		Email:    email,
		Password: password,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.User, nil
}

// Login exchanges credentials for a Session.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var out handler.LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, handler.LoginRequest{
		Email:    email,
		Password: password,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &Session{Token: out.Token, UserID: out.UserID}, nil
}

// Profile returns the signed-in user with preferences and inventory.
func (c *Client) Profile(ctx context.Context, s *Session) (*model.User, error) {
	var out model.User
	if err := c.do(ctx, http.MethodGet, "/api/auth/"+s.UserID.String(), s, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePreferences replaces the three preference sets.
func (c *Client) UpdatePreferences(ctx context.Context, s *Session, dietary, allergies, cuisines []string) (*model.UserPreferences, error) {
	var out model.UserPreferences
	err := c.do(ctx, http.MethodPut, "/api/auth/"+s.UserID.String()+"/preferences", s, handler.PreferencesRequest{
		Dietary:   dietary,
		Allergies: allergies,
		Cuisines:  cuisines,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAccount removes the signed-in user and everything they own.
func (c *Client) DeleteAccount(ctx context.Context, s *Session) error {
	return c.do(ctx, http.MethodDelete, "/api/auth/"+s.UserID.String(), s, nil, nil)
}

// Inventory lists the user's ingredients, soonest expiry first.
func (c *Client) Inventory(ctx context.Context, s *Session) ([]model.Ingredient, error) {
	var out []model.Ingredient
	if err := c.do(ctx, http.MethodGet, "/api/inventory", s, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddIngredient adds an ingredient or merges it into the same-named one.
// A nil expiry lets the server apply its default.
func (c *Client) AddIngredient(ctx context.Context, s *Session, name string, quantity int, expiry *time.Time, imageKey string) (*model.Ingredient, error) {
	req := handler.AddIngredientRequest{Name: name, Quantity: quantity, ImageKey: imageKey}
	if expiry != nil {
		req.ExpiryDate = expiry.UTC().Format(time.RFC3339)
	}
	var out model.Ingredient
	if err := c.do(ctx, http.MethodPost, "/api/inventory", s, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetQuantity stores quantity. The server removes the ingredient when
// quantity is below 1, in which case the returned ingredient is nil.
func (c *Client) SetQuantity(ctx context.Context, s *Session, id uuid.UUID, quantity int) (*model.Ingredient, error) {
	var out handler.UpdateQuantityResponse
	err := c.do(ctx, http.MethodPut, "/api/inventory/"+id.String(), s, handler.UpdateQuantityRequest{Quantity: &quantity}, &out)
	if err != nil {
		return nil, err
	}
	return out.Ingredient, nil
}

// RemoveIngredient deletes one ingredient.
func (c *Client) RemoveIngredient(ctx context.Context, s *Session, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/inventory/"+id.String(), s, nil, nil)
}

// ClearInventory deletes every ingredient and returns how many were removed.
func (c *Client) ClearInventory(ctx context.Context, s *Session) (int64, error) {
	var out handler.ClearResponse
	if err := c.do(ctx, http.MethodDelete, "/api/inventory", s, nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

// Recipes returns the suggestions exactly as the server relayed them.
func (c *Client) Recipes(ctx context.Context, s *Session) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/recipes", s, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Increment raises the quantity of item by one.
func (c *Client) Increment(ctx context.Context, s *Session, item model.Ingredient) (*model.Ingredient, error) {
	return c.SetQuantity(ctx, s, item.ID, item.Quantity+1)
}

// Decrement lowers the quantity of item by one, deleting it instead when
// the result would drop below 1. removed reports which happened.
func (c *Client) Decrement(ctx context.Context, s *Session, item model.Ingredient) (ingredient *model.Ingredient, removed bool, err error) {
	next := item.Quantity - 1
	if next < 1 {
		if err := c.RemoveIngredient(ctx, s, item.ID); err != nil {
			return nil, false, err
		}
		return nil, true, nil
	}
	ingredient, err = c.SetQuantity(ctx, s, item.ID, next)
	if err != nil {
		return nil, false, err
	}
	return ingredient, false, nil
}

func (c *Client) do(ctx context.Context, method, path string, s *Session, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s != nil {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
		var er apperrors.ErrorResponse
		if json.Unmarshal(raw, &er) == nil && er.Error != "" {
			apiErr.Code = er.Code
			apiErr.Message = er.Error
		}
		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
