package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "pantry/internal/errors"
	"pantry/internal/recipes"
	"pantry/internal/repository"
)

// RecipeService suggests recipes from the user's inventory.
type RecipeService interface {
	Suggest(ctx context.Context, userID uuid.UUID) (json.RawMessage, error)
}

type recipeService struct {
	ingredients repository.IngredientRepository
	preferences repository.PreferencesRepository
	searcher    recipes.Searcher
}

// NewRecipeService creates a new recipe service.
func NewRecipeService(ingredients repository.IngredientRepository, preferences repository.PreferencesRepository, searcher recipes.Searcher) RecipeService {
	return &recipeService{ingredients: ingredients, preferences: preferences, searcher: searcher}
}

// Suggest forwards the inventory, soonest expiry first, and the user's
// preferences to the recipe API and returns its results unmodified.
func (s *recipeService) Suggest(ctx context.Context, userID uuid.UUID) (json.RawMessage, error) {
	ingredients, err := s.ingredients.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	if len(ingredients) == 0 {
		return nil, apperrors.ErrEmptyInventory
	}

	q := recipes.Query{Ingredients: make([]string, 0, len(ingredients))}
	for _, ing := range ingredients {
		q.Ingredients = append(q.Ingredients, ing.Name)
	}

	prefs, err := s.preferences.FindByUserID(ctx, userID)
	switch {
	case err == nil:
		q.Cuisines = prefs.Cuisines
		q.Diets = prefs.Dietary
		q.Intolerances = prefs.Allergies
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no preferences, search on ingredients alone
	default:
		return nil, fmt.Errorf("find preferences: %w", err)
	}

	results, err := s.searcher.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstream, err)
	}
	return results, nil
}
