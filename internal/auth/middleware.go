package auth

import (
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"pantry/internal/errors"
)

// ContextKeyUserID is the echo context key holding the authenticated user id.
const ContextKeyUserID = "userID"

// Middleware authenticates requests with a bearer token and stores the
// decoded user id under ContextKeyUserID.
func Middleware(jwtService *JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.UserIDFromToken(token)
		},
		SuccessHandler: func(c echo.Context) {
			if id, ok := c.Get("user").(uuid.UUID); ok {
				c.Set(ContextKeyUserID, id)
			}
		},
		ErrorHandler: func(c echo.Context, err error) error {
			httpErr := errors.MapErrorToHTTP(errors.ErrUnauthorized)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		},
	})
}

// UserID returns the authenticated user id, or ErrUnauthorized when the
// request did not pass through Middleware.
func UserID(c echo.Context) (uuid.UUID, error) {
	id, ok := c.Get(ContextKeyUserID).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, errors.ErrUnauthorized
	}
	return id, nil
}
