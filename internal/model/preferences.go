package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserPreferences holds the dietary profile used to narrow recipe searches.
// Each user owns exactly one row.
type UserPreferences struct {
	ID        uuid.UUID                   `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID                   `json:"userId" gorm:"type:char(36);uniqueIndex;not null"`
	Dietary   datatypes.JSONSlice[string] `json:"dietary"`
	Allergies datatypes.JSONSlice[string] `json:"allergies"`
	Cuisines  datatypes.JSONSlice[string] `json:"cuisines"`
	CreatedAt time.Time                   `json:"createdAt"`
	UpdatedAt time.Time                   `json:"updatedAt"`
}

// BeforeCreate sets UUID and replaces nil sets with empty ones.
func (p *UserPreferences) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.Dietary = StringSet(p.Dietary)
	p.Allergies = StringSet(p.Allergies)
	p.Cuisines = StringSet(p.Cuisines)
	return nil
}

// StringSet trims values, drops empty ones and removes duplicates while
// keeping first-seen order. The result is never nil.
func StringSet(values []string) datatypes.JSONSlice[string] {
	out := make(datatypes.JSONSlice[string], 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
