package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pantry/internal/model"
)

// IngredientRepository defines inventory persistence operations. Every
// method is scoped to an owner.
type IngredientRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Ingredient, error)
	FindByID(ctx context.Context, userID, id uuid.UUID) (*model.Ingredient, error)
	AddOrIncrement(ctx context.Context, ingredient *model.Ingredient) (*model.Ingredient, error)
	UpdateQuantity(ctx context.Context, userID, id uuid.UUID, quantity int) (*model.Ingredient, error)
	Delete(ctx context.Context, userID, id uuid.UUID) (int64, error)
	DeleteAll(ctx context.Context, userID uuid.UUID) (int64, error)
}

type ingredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository creates a new ingredient repository.
func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

// ListByUser returns the user's ingredients, soonest expiry first.
func (r *ingredientRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Ingredient, error) {
	ingredients := []model.Ingredient{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("expiry_date ASC").
		Order("name ASC").
		Find(&ingredients).Error
	if err != nil {
		return nil, err
	}
	return ingredients, nil
}

// FindByID finds an ingredient by id and owner.
func (r *ingredientRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*model.Ingredient, error) {
	var ingredient model.Ingredient
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// AddOrIncrement inserts the ingredient, or adds its quantity to the row the
// owner already has under the same name. The decision is taken by the
// database against the (user_id, name) unique index, so concurrent adds of
// the same name cannot create two rows.
func (r *ingredientRepository) AddOrIncrement(ctx context.Context, ingredient *model.Ingredient) (*model.Ingredient, error) {
	var stored model.Ingredient
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(mergeQuantity(ingredient.Quantity)).Create(ingredient).Error
		if err != nil {
			return err
		}
		return tx.Where("user_id = ? AND name = ?", ingredient.UserID, ingredient.Name).First(&stored).Error
	})
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// mergeQuantity adds quantity to the conflicting row. The stored quantity is
// qualified with the table name; postgres also has "excluded" in scope there.
func mergeQuantity(quantity int) clause.OnConflict {
	return clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "name"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("ingredients.quantity + ?", quantity),
			"updated_at": time.Now(),
		}),
	}
}

// UpdateQuantity sets the quantity of an owned ingredient. It returns
// gorm.ErrRecordNotFound when id does not belong to userID.
func (r *ingredientRepository) UpdateQuantity(ctx context.Context, userID, id uuid.UUID, quantity int) (*model.Ingredient, error) {
	var ingredient model.Ingredient
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&ingredient).Error; err != nil {
			return err
		}
		return tx.Model(&ingredient).Update("quantity", quantity).Error
	})
	if err != nil {
		return nil, err
	}
	ingredient.Quantity = quantity
	return &ingredient, nil
}

// Delete removes one owned ingredient.
func (r *ingredientRepository) Delete(ctx context.Context, userID, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.Ingredient{})
	return res.RowsAffected, res.Error
}

// DeleteAll removes every ingredient of the owner.
func (r *ingredientRepository) DeleteAll(ctx context.Context, userID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Ingredient{})
	return res.RowsAffected, res.Error
}
