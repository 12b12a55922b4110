package client

import (
	"sort"
	"time"

	"pantry/internal/model"
)

const (
	// ExpiringSoonLimit caps the expiring-soon view.
	ExpiringSoonLimit = 3
	// LowStockThreshold is the highest quantity still reported as low stock.
	LowStockThreshold = 2
)

// ExpiringSoon returns the items expiring strictly after now, soonest
// first, at most ExpiringSoonLimit of them. items is left untouched.
func ExpiringSoon(items []model.Ingredient, now time.Time) []model.Ingredient {
	out := make([]model.Ingredient, 0, len(items))
	for _, it := range items {
		if it.ExpiryDate.After(now) {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ExpiryDate.Before(out[j].ExpiryDate)
	})
	if len(out) > ExpiringSoonLimit {
		out = out[:ExpiringSoonLimit]
	}
	return out
}

// LowStock returns the items whose quantity is at most LowStockThreshold,
// in their original order.
func LowStock(items []model.Ingredient) []model.Ingredient {
	out := make([]model.Ingredient, 0)
	for _, it := range items {
		if it.Quantity <= LowStockThreshold {
			out = append(out, it)
		}
	}
	return out
}
