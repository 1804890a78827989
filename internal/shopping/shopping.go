// Package shopping derives a shopping list from a recipe by rescaling every
// ingredient to a new serving size.
package shopping

import (
	"fmt"

	"github.com/hammamikhairi/recipebox/internal/domain"
)

// Item is one scaled line of a shopping list.
type Item struct {
	Name     string
	Quantity float64
	Unit     string
}

// String renders the item as "Salt - (4 tsp)".
func (it Item) String() string {
	return it.Name + " - (" + domain.FormatQuantity(it.Quantity) + " " + it.Unit + ")"
}

// Generate scales each ingredient of r to target servings:
//
//	scaled = (quantity / r.ServingSize) * target
//
// Order follows r.Ingredients. The result is a new slice on every call and r
// is never modified. A recipe with a zero serving size can't be scaled and
// yields domain.ErrInvalidState.
func Generate(r *domain.Recipe, target float64) ([]Item, error) {
	if r.ServingSize == 0 {
		return nil, fmt.Errorf("%w: %q has no original serving size to scale from", domain.ErrInvalidState, r.Name)
	}
	if target < 0 {
		return nil, fmt.Errorf("%w: serving size can't be negative (%s)", domain.ErrValidation, domain.FormatQuantity(target))
	}

	items := make([]Item, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		items = append(items, Item{
			Name:     ing.Name,
			Quantity: (ing.Quantity / r.ServingSize) * target,
			Unit:     ing.Unit,
		})
	}
	return items, nil
}

// Lines renders every item with Item.String.
func Lines(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.String()
	}
	return out
}
