package router

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"pantry/internal/auth"
	"pantry/internal/handler"
	"pantry/internal/logger"
	"pantry/internal/metrics"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth      *handler.AuthHandler
	User      *handler.UserHandler
	Inventory *handler.InventoryHandler
	Recipe    *handler.RecipeHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, log *logger.Logger, jwtService *auth.JWTService, h Handlers) {
	e.Use(middleware.RequestID())
	e.Use(RequestLogger(log))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(metrics.Middleware())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)

	// Secured routes (require a bearer token)
	secured := api.Group("", auth.Middleware(jwtService))

	secured.GET("/auth/:id", h.User.GetUser)
	secured.PUT("/auth/:id/preferences", h.User.UpdatePreferences)
	secured.DELETE("/auth/:id", h.User.DeleteUser)

	secured.GET("/inventory", h.Inventory.List)
	secured.POST("/inventory", h.Inventory.Add)
	secured.PUT("/inventory/:id", h.Inventory.Update)
	secured.DELETE("/inventory/:id", h.Inventory.Delete)
	secured.DELETE("/inventory", h.Inventory.DeleteAll)

	secured.GET("/recipes", h.Recipe.Suggest)
}

// RequestLogger logs one line per request through the application logger.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// let echo write the response so the logged status is final
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			log.Info("http request",
				"method", req.Method,
				"path", req.URL.Path,
				"status", res.Status,
				"latency_ms", time.Since(start).Milliseconds(),
				"request_id", res.Header().Get(echo.HeaderXRequestID),
			)
			return nil
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
