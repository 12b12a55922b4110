package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pantry/internal/cache"
	apperrors "pantry/internal/errors"
	"pantry/internal/model"
	"pantry/internal/repository"
)

// DefaultShelfLife is the expiry applied to an ingredient added without one.
const DefaultShelfLife = 7 * 24 * time.Hour

// AddIngredientInput is the payload of an inventory add.
type AddIngredientInput struct {
	Name       string
	Quantity   int
	ExpiryDate *time.Time
	ImageKey   string
}

// InventoryService manages a user's ingredients.
type InventoryService interface {
	List(ctx context.Context, userID uuid.UUID) ([]model.Ingredient, error)
	Add(ctx context.Context, userID uuid.UUID, in AddIngredientInput) (*model.Ingredient, error)
	// UpdateQuantity stores quantity, or deletes the ingredient when
	// quantity is below 1. removed reports which of the two happened.
	UpdateQuantity(ctx context.Context, userID, id uuid.UUID, quantity int) (ingredient *model.Ingredient, removed bool, err error)
	Remove(ctx context.Context, userID, id uuid.UUID) error
	RemoveAll(ctx context.Context, userID uuid.UUID) (int64, error)
}

type inventoryService struct {
	repo  repository.IngredientRepository
	cache *cache.Client
	now   func() time.Time
}

// NewInventoryService creates a new inventory service.
func NewInventoryService(repo repository.IngredientRepository, cache *cache.Client) InventoryService {
	return &inventoryService{repo: repo, cache: cache, now: time.Now}
}

func (s *inventoryService) List(ctx context.Context, userID uuid.UUID) ([]model.Ingredient, error) {
	ingredients, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	return ingredients, nil
}

// Add inserts a new ingredient or increases the quantity of the one the
// user already has under exactly the same name.
func (s *inventoryService) Add(ctx context.Context, userID uuid.UUID, in AddIngredientInput) (*model.Ingredient, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}
	if in.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", apperrors.ErrValidation)
	}

	expiry := s.now().Add(DefaultShelfLife)
	if in.ExpiryDate != nil {
		expiry = *in.ExpiryDate
	}
	imageKey := strings.TrimSpace(in.ImageKey)
	if imageKey == "" {
		imageKey = strings.ToLower(name)
	}

	ingredient, err := s.repo.AddOrIncrement(ctx, &model.Ingredient{
		UserID:     userID,
		Name:       name,
		Quantity:   in.Quantity,
		ExpiryDate: expiry,
		ImageKey:   imageKey,
	})
	if err != nil {
		return nil, fmt.Errorf("add ingredient: %w", err)
	}

	s.cache.Delete(ctx, profileCacheKey(userID))
	return ingredient, nil
}

func (s *inventoryService) UpdateQuantity(ctx context.Context, userID, id uuid.UUID, quantity int) (*model.Ingredient, bool, error) {
	if quantity < 1 {
		if err := s.Remove(ctx, userID, id); err != nil {
			return nil, false, err
		}
		return nil, true, nil
	}

	ingredient, err := s.repo.UpdateQuantity(ctx, userID, id, quantity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, apperrors.ErrIngredientNotFound
		}
		return nil, false, fmt.Errorf("update ingredient: %w", err)
	}

	s.cache.Delete(ctx, profileCacheKey(userID))
	return ingredient, false, nil
}

func (s *inventoryService) Remove(ctx context.Context, userID, id uuid.UUID) error {
	n, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("delete ingredient: %w", err)
	}
	if n == 0 {
		return apperrors.ErrIngredientNotFound
	}
	s.cache.Delete(ctx, profileCacheKey(userID))
	return nil
}

func (s *inventoryService) RemoveAll(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := s.repo.DeleteAll(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("delete ingredients: %w", err)
	}
	s.cache.Delete(ctx, profileCacheKey(userID))
	return n, nil
}
