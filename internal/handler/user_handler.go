package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pantry/internal/logger"
	"pantry/internal/service"
)

// UserHandler serves profile endpoints. Every route acts only on the
// caller's own account.
type UserHandler struct {
	svc service.UserService
	log *logger.Logger
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService, log *logger.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: log}
}

// PreferencesRequest replaces the user's preference sets.
type PreferencesRequest struct {
	Dietary   []string `json:"dietary"`
	Allergies []string `json:"allergies"`
	Cuisines  []string `json:"cuisines"`
}

// GetUser godoc
// @Summary Get user profile with preferences and inventory
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := selfID(c)
	if err != nil {
		return fail(c, h.log, err)
	}
	user, err := h.svc.GetProfile(c.Request().Context(), id)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdatePreferences godoc
// @Summary Create or replace user preferences
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body PreferencesRequest true "Preferences"
// @Success 200 {object} model.UserPreferences
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth/{id}/preferences [put]
func (h *UserHandler) UpdatePreferences(c echo.Context) error {
	id, err := selfID(c)
	if err != nil {
		return fail(c, h.log, err)
	}
	var req PreferencesRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}

	prefs, err := h.svc.UpdatePreferences(c.Request().Context(), id, req.Dietary, req.Allergies, req.Cuisines)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(http.StatusOK, prefs)
}

// DeleteUser godoc
// @Summary Delete user with preferences and inventory
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := selfID(c)
	if err != nil {
		return fail(c, h.log, err)
	}
	if err := h.svc.DeleteUser(c.Request().Context(), id); err != nil {
		return fail(c, h.log, err)
	}
	h.log.Info("user deleted", "user_id", id)
	return c.JSON(http.StatusOK, MessageResponse{Message: "user deleted successfully"})
}
