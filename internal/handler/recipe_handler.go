package handler

import (
	stderrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"pantry/internal/auth"
	"pantry/internal/errors"
	"pantry/internal/logger"
	"pantry/internal/service"
)

// RecipeHandler serves recipe suggestions.
type RecipeHandler struct {
	svc service.RecipeService
	log *logger.Logger
}

// NewRecipeHandler creates a new recipe handler.
func NewRecipeHandler(svc service.RecipeService, log *logger.Logger) *RecipeHandler {
	return &RecipeHandler{svc: svc, log: log}
}

// Suggest godoc
// @Summary Suggest recipes for the caller's inventory and preferences
// @Description Results are returned exactly as the recipe API sent them.
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} object
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /recipes [get]
func (h *RecipeHandler) Suggest(c echo.Context) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fail(c, h.log, err)
	}
	results, err := h.svc.Suggest(c.Request().Context(), userID)
	if err != nil {
		if stderrors.Is(err, errors.ErrUpstream) {
			h.log.Warn("recipe suggestion failed", "user_id", userID, "error", err)
		}
		return fail(c, h.log, err)
	}
	return c.JSONBlob(http.StatusOK, results)
}
