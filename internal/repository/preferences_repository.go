package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pantry/internal/model"
)

// PreferencesRepository defines preferences persistence operations.
type PreferencesRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.UserPreferences, error)
	Upsert(ctx context.Context, prefs *model.UserPreferences) (*model.UserPreferences, error)
}

type preferencesRepository struct {
	db *gorm.DB
}

// NewPreferencesRepository creates a new preferences repository.
func NewPreferencesRepository(db *gorm.DB) PreferencesRepository {
	return &preferencesRepository{db: db}
}

// FindByUserID finds the preferences row owned by userID.
func (r *preferencesRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.UserPreferences, error) {
	var prefs model.UserPreferences
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&prefs).Error; err != nil {
		return nil, err
	}
	return &prefs, nil
}

// Upsert inserts the preferences or replaces the three sets of the existing
// row, then returns the stored row.
func (r *preferencesRepository) Upsert(ctx context.Context, prefs *model.UserPreferences) (*model.UserPreferences, error) {
	var stored model.UserPreferences
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"dietary":    prefs.Dietary,
				"allergies":  prefs.Allergies,
				"cuisines":   prefs.Cuisines,
				"updated_at": time.Now(),
			}),
		}).Create(prefs).Error
		if err != nil {
			return err
		}
		return tx.Where("user_id = ?", prefs.UserID).First(&stored).Error
	})
	if err != nil {
		return nil, err
	}
	return &stored, nil
}
