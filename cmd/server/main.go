package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "pantry/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"pantry/internal/auth"
	"pantry/internal/cache"
	"pantry/internal/config"
	"pantry/internal/db"
	"pantry/internal/handler"
	"pantry/internal/logger"
	"pantry/internal/recipes"
	"pantry/internal/repository"
	"pantry/internal/router"
	"pantry/internal/service"
)

// @title Pantry API
// @version 1.0
// @description Kitchen inventory API with recipe suggestions and JWT authentication.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		// logger is not configured yet
		panic(err)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("database init", "error", err)
	}
	if err := db.Migrate(gormDB, cfg.ResetDB, log); err != nil {
		log.Fatal("database migrate", "error", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	if err := cacheClient.Ping(pingCtx); err != nil {
		log.Warn("redis unavailable, profile cache disabled until it recovers", "addr", cfg.RedisAddr, "error", err)
	}
	cancelPing()

	if cfg.SpoonacularAPIKey == "" {
		log.Warn("SPOONACULAR_API_KEY is empty, recipe suggestions will fail upstream")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	preferencesRepo := repository.NewPreferencesRepository(gormDB)
	ingredientRepo := repository.NewIngredientRepository(gormDB)

	jwtService := auth.NewJWTService(cfg.JWTSecret)
	recipeClient := recipes.NewClient(cfg.SpoonacularBaseURL, cfg.SpoonacularAPIKey)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo, preferencesRepo, cacheClient, cfg.ProfileCacheTTL)
	inventoryService := service.NewInventoryService(ingredientRepo, cacheClient)
	recipeService := service.NewRecipeService(ingredientRepo, preferencesRepo, recipeClient)

	e := echo.New()
	e.HideBanner = true
	router.Register(e, log, jwtService, router.Handlers{
		Auth:      handler.NewAuthHandler(authService, log),
		User:      handler.NewUserHandler(userService, log),
		Inventory: handler.NewInventoryHandler(inventoryService, log),
		Recipe:    handler.NewRecipeHandler(recipeService, log),
	})

	log.Info("swagger documentation available", "url", swaggerURL(cfg.SwaggerHost, cfg.ServerPort))

	go func() {
		addr := ":" + cfg.ServerPort
		log.Info("server listening", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server start", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown", "error", err)
	}
}

func swaggerURL(host, port string) string {
	if host == "" {
		return "http://localhost:" + port + "/swagger/index.html"
	}
	if strings.HasPrefix(host, "http://") || strings.HasPrefix(host, "https://") {
		return host + "/swagger/index.html"
	}
	return "http://" + host + "/swagger/index.html"
}
