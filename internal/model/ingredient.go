package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ingredient is one named item in a user's inventory. Name is unique per
// owner and matched byte-for-byte, so "Tomato" and "tomato" are distinct rows.
type Ingredient struct {
	ID         uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID     uuid.UUID `json:"userId" gorm:"type:char(36);not null;uniqueIndex:idx_ingredient_owner_name"`
	Name       string    `json:"name" gorm:"size:255;not null;uniqueIndex:idx_ingredient_owner_name"`
	Quantity   int       `json:"quantity" gorm:"not null;default:1"`
	ExpiryDate time.Time `json:"expiryDate" gorm:"not null;index"`
	ImageKey   string    `json:"imageKey" gorm:"size:255"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// All lists every model in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&UserPreferences{},
		&Ingredient{},
	}
}
