package main

import (
	"context"
	"errors"
	"time"

	"pantry/internal/auth"
	"pantry/internal/config"
	"pantry/internal/db"
	apperrors "pantry/internal/errors"
	"pantry/internal/logger"
	"pantry/internal/repository"
	"pantry/internal/service"
)

const (
	demoName     = "Al"
	demoLocation = "NYC"
	demoEmail    = "al@x.com"
	demoPassword = "secret1"
)

// seedIngredient describes one demo inventory row. Expiry is relative to now.
type seedIngredient struct {
	Name     string
	Quantity int
	ExpireIn time.Duration
}

var demoInventory = []seedIngredient{
	{Name: "Tomato", Quantity: 4, ExpireIn: 2 * 24 * time.Hour},
	{Name: "Milk", Quantity: 1, ExpireIn: 3 * 24 * time.Hour},
	{Name: "Eggs", Quantity: 12, ExpireIn: 10 * 24 * time.Hour},
	{Name: "Spinach", Quantity: 2, ExpireIn: 4 * 24 * time.Hour},
	{Name: "Rice", Quantity: 1, ExpireIn: 180 * 24 * time.Hour},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	log.Info("starting seed")

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("connect database", "error", err)
	}
	if err := db.Migrate(gormDB, false, log); err != nil {
		log.Fatal("migrate database", "error", err)
	}

	userRepo := repository.NewUserRepository(gormDB)
	ingredientRepo := repository.NewIngredientRepository(gormDB)
	preferencesRepo := repository.NewPreferencesRepository(gormDB)

	authService := service.NewAuthService(userRepo, auth.NewJWTService(cfg.JWTSecret))
	userService := service.NewUserService(userRepo, preferencesRepo, nil, 0)
	inventoryService := service.NewInventoryService(ingredientRepo, nil)

	ctx := context.Background()

	user, err := authService.Register(ctx, demoName, demoLocation, demoEmail, demoPassword)
	switch {
	case err == nil:
		log.Info("demo user created", "user_id", user.ID)
	case errors.Is(err, apperrors.ErrUserAlreadyExists):
		user, err = userRepo.FindByEmail(ctx, demoEmail)
		if err != nil {
			log.Fatal("load existing demo user", "error", err)
		}
		log.Info("demo user already exists, topping up inventory", "user_id", user.ID)
	default:
		log.Fatal("create demo user", "error", err)
	}

	if _, err := userService.UpdatePreferences(ctx, user.ID, []string{"vegetarian"}, []string{"peanut"}, []string{"italian"}); err != nil {
		log.Fatal("set demo preferences", "error", err)
	}

	now := time.Now()
	for _, item := range demoInventory {
		expiry := now.Add(item.ExpireIn)
		ingredient, err := inventoryService.Add(ctx, user.ID, service.AddIngredientInput{
			Name:       item.Name,
			Quantity:   item.Quantity,
			ExpiryDate: &expiry,
		})
		if err != nil {
			log.Fatal("add demo ingredient", "name", item.Name, "error", err)
		}
		log.Info("ingredient seeded", "name", ingredient.Name, "quantity", ingredient.Quantity)
	}

	log.Info("seed completed", "user_id", user.ID, "ingredients", len(demoInventory))
}
