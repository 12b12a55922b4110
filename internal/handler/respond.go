package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"pantry/internal/auth"
	"pantry/internal/errors"
	"pantry/internal/logger"
)

// MessageResponse is the body of operations that only confirm success.
type MessageResponse struct {
	Message string `json:"message"`
}

// fail maps err to its HTTP status and error code. Errors outside the
// domain taxonomy are logged with their cause since clients only see a
// generic message.
func fail(c echo.Context, log *logger.Logger, err error) error {
	if he, ok := err.(*echo.HTTPError); ok {
		return he
	}
	httpErr := errors.MapErrorToHTTP(err)
	if errors.IsUnhandled(err) {
		log.Error("request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			"error", err,
		)
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func badRequest(message string) error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: message,
		Code:  "VALIDATION_ERROR",
	})
}

func parseID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid " + name,
			Code:  "INVALID_UUID",
		})
	}
	return id, nil
}

// selfID returns the path user id after checking that it is the caller's own.
func selfID(c echo.Context) (uuid.UUID, error) {
	callerID, err := auth.UserID(c)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return uuid.Nil, err
	}
	if id != callerID {
		return uuid.Nil, errors.ErrForbidden
	}
	return id, nil
}
