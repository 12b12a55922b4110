package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"pantry/internal/auth"
	"pantry/internal/logger"
	"pantry/internal/model"
	"pantry/internal/service"
)

// InventoryHandler handles the caller's ingredient list.
type InventoryHandler struct {
	svc service.InventoryService
	log *logger.Logger
}

// NewInventoryHandler creates a new inventory handler.
func NewInventoryHandler(svc service.InventoryService, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{svc: svc, log: log}
}

// AddIngredientRequest adds an ingredient or merges it into an existing one.
// ExpiryDate accepts RFC 3339 or YYYY-MM-DD.
type AddIngredientRequest struct {
	Name       string `json:"name" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,gte=1"`
	ExpiryDate string `json:"expiryDate"`
	ImageKey   string `json:"imageKey"`
}

// UpdateQuantityRequest sets an ingredient's quantity.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// UpdateQuantityResponse reports the outcome of a quantity update.
type UpdateQuantityResponse struct {
	Message    string            `json:"message"`
	Ingredient *model.Ingredient `json:"ingredient,omitempty"`
}

// ClearResponse reports how many ingredients were removed.
type ClearResponse struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}

// List godoc
// @Summary List the caller's ingredients
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Ingredient
// @Failure 401 {object} errors.ErrorResponse
// @Router /inventory [get]
func (h *InventoryHandler) List(c echo.Context) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fail(c, h.log, err)
	}
	items, err := h.svc.List(c.Request().Context(), userID)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(http.StatusOK, items)
}

// Add godoc
// @Summary Add an ingredient, merging quantities with a same-named one
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddIngredientRequest true "Ingredient"
// @Success 201 {object} model.Ingredient
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /inventory [post]
func (h *InventoryHandler) Add(c echo.Context) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fail(c, h.log, err)
	}
	var req AddIngredientRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest("name and a quantity of at least 1 are required")
	}

	in := service.AddIngredientInput{
		Name:     req.Name,
		Quantity: req.Quantity,
		ImageKey: req.ImageKey,
	}
	if req.ExpiryDate != "" {
		expiry, err := parseDate(req.ExpiryDate)
		if err != nil {
			return badRequest("invalid expiryDate")
		}
		in.ExpiryDate = &expiry
	}

	ingredient, err := h.svc.Add(c.Request().Context(), userID, in)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, ingredient)
}

// Update godoc
// @Summary Set an ingredient's quantity; below 1 removes it
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ingredient ID"
// @Param request body UpdateQuantityRequest true "Quantity"
// @Success 200 {object} UpdateQuantityResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /inventory/{id} [put]
func (h *InventoryHandler) Update(c echo.Context) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fail(c, h.log, err)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest("quantity is required")
	}

	ingredient, removed, err := h.svc.UpdateQuantity(c.Request().Context(), userID, id, *req.Quantity)
	if err != nil {
		return fail(c, h.log, err)
	}
	if removed {
		return c.JSON(http.StatusOK, UpdateQuantityResponse{Message: "ingredient removed"})
	}
	return c.JSON(http.StatusOK, UpdateQuantityResponse{Message: "ingredient updated", Ingredient: ingredient})
}

// Delete godoc
// @Summary Remove one ingredient
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ingredient ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /inventory/{id} [delete]
func (h *InventoryHandler) Delete(c echo.Context) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fail(c, h.log, err)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Remove(c.Request().Context(), userID, id); err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "ingredient deleted"})
}

// DeleteAll godoc
// @Summary Remove every ingredient of the caller
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ClearResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /inventory [delete]
func (h *InventoryHandler) DeleteAll(c echo.Context) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fail(c, h.log, err)
	}
	n, err := h.svc.RemoveAll(c.Request().Context(), userID)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(http.StatusOK, ClearResponse{Message: "all ingredients deleted", Count: n})
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
