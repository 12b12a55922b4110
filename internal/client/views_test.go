package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pantry/internal/model"
)

func names(items []model.Ingredient) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func TestExpiringSoon(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	day := 24 * time.Hour
	items := []model.Ingredient{
		{Name: "Rice", ExpiryDate: now.Add(90 * day)},
		{Name: "Old Milk", ExpiryDate: now.Add(-day)},
		{Name: "Eggs", ExpiryDate: now.Add(10 * day)},
		{Name: "Spinach", ExpiryDate: now.Add(2 * day)},
		{Name: "Yogurt", ExpiryDate: now.Add(day)},
		{Name: "Right Now", ExpiryDate: now},
	}

	got := ExpiringSoon(items, now)

	assert.Equal(t, []string{"Yogurt", "Spinach", "Eggs"}, names(got))
	assert.Equal(t, "Rice", items[0].Name)
}

func TestExpiringSoon_FewerThanLimit(t *testing.T) {
	now := time.Now()
	got := ExpiringSoon([]model.Ingredient{{Name: "Milk", ExpiryDate: now.Add(time.Hour)}}, now)
	assert.Equal(t, []string{"Milk"}, names(got))

	assert.Empty(t, ExpiringSoon(nil, now))
}

func TestLowStock(t *testing.T) {
	items := []model.Ingredient{
		{Name: "Eggs", Quantity: 12},
		{Name: "Milk", Quantity: 1},
		{Name: "Butter", Quantity: 2},
		{Name: "Rice", Quantity: 3},
	}

	assert.Equal(t, []string{"Milk", "Butter"}, names(LowStock(items)))
	assert.NotNil(t, LowStock(nil))
}
