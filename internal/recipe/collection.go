// Package recipe holds the in-memory recipe collection shown in the browser.
package recipe

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/listedit"
	"github.com/hammamikhairi/recipebox/internal/logger"
)

// DisplayItem is the two-line rendering of one recipe in the list.
type DisplayItem struct {
	Main string // recipe name
	Sub  string // "{course}, serves {servingSize}"
}

func itemFor(r *domain.Recipe) DisplayItem {
	return DisplayItem{Main: r.Name, Sub: r.Summary()}
}

// Collection is an ordered list of recipes paired by index with their
// display items. Every mutation keeps len(recipes) == len(items) and
// items[i] rendering recipes[i].
type Collection struct {
	mu      sync.RWMutex
	recipes []*domain.Recipe
	items   []DisplayItem
	log     *logger.Logger
}

// NewCollection creates an empty collection.
func NewCollection(log *logger.Logger) *Collection {
	return &Collection{log: log}
}

// Len returns the number of recipes.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.recipes)
}

// Add appends r unless it is both unnamed and has a zero serving size.
// It returns the index of the new recipe.
func (c *Collection) Add(r *domain.Recipe) (int, error) {
	if r == nil {
		return -1, fmt.Errorf("%w: nil recipe", domain.ErrRejected)
	}
	if r.Unnamed() && r.ServingSize == 0 {
		c.log.Debug("rejecting recipe with no name and no serving size")
		return -1, fmt.Errorf("%w: a recipe needs a name or a serving size", domain.ErrRejected)
	}
	return c.Append(r), nil
}

// Append adds r without the acceptance check. Used for imported recipes,
// which the decoder has already validated.
func (c *Collection) Append(r *domain.Recipe) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.recipes = append(c.recipes, r)
	c.items = append(c.items, itemFor(r))
	c.log.Info("recipe added: %s (%d total)", r.Name, len(c.recipes))
	return len(c.recipes) - 1
}

// Get returns the recipe at i. The pointer is live: editors mutate it in
// place and must call Refresh afterwards.
func (c *Collection) Get(i int) (*domain.Recipe, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i < 0 || i >= len(c.recipes) {
		c.log.Debug("recipe index out of range: %d", i)
		return nil, fmt.Errorf("%w: recipe %d", domain.ErrNotFound, i)
	}
	return c.recipes[i], nil
}

// Delete removes the recipe at i from both sequences.
func (c *Collection) Delete(i int) (*domain.Recipe, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i < 0 || i >= len(c.recipes) {
		return nil, fmt.Errorf("%w: recipe %d", domain.ErrNotFound, i)
	}
	removed := c.recipes[i]
	c.recipes, _ = listedit.Delete(c.recipes, i)
	c.items, _ = listedit.Delete(c.items, i)
	c.log.Info("recipe deleted: %s (%d left)", removed.Name, len(c.recipes))
	return removed, nil
}

// Replace swaps in r at i, e.g. after the detail form commits.
func (c *Collection) Replace(i int, r *domain.Recipe) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i < 0 || i >= len(c.recipes) {
		return fmt.Errorf("%w: recipe %d", domain.ErrNotFound, i)
	}
	c.recipes[i] = r
	c.items[i] = itemFor(r)
	c.log.Debug("recipe %d replaced: %s", i, r.Name)
	return nil
}

// Refresh rebuilds every display item from the recipes.
func (c *Collection) Refresh() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make([]DisplayItem, len(c.recipes))
	for i, r := range c.recipes {
		c.items[i] = itemFor(r)
	}
}

// Move shifts the recipe at i one place in dir, in both sequences. It
// returns the new index.
func (c *Collection) Move(i int, dir listedit.Direction) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := listedit.Move(c.recipes, i, dir); err != nil {
		return i, err
	}
	listedit.Move(c.items, i, dir)

	switch {
	case dir == listedit.Up && i > 0:
		return i - 1, nil
	case dir == listedit.Down && i < len(c.recipes)-1:
		return i + 1, nil
	}
	return i, nil
}

// Items returns a copy of the display items.
func (c *Collection) Items() []DisplayItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]DisplayItem(nil), c.items...)
}

// Recipes returns the recipes in order. The slice is a copy; the recipes
// are not.
func (c *Collection) Recipes() []*domain.Recipe {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*domain.Recipe(nil), c.recipes...)
}

// Search returns the indexes of recipes whose name, course or ingredients
// contain the query.
func (c *Collection) Search(ctx context.Context, query string) []int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	c.log.Debug("searching recipes for: %s", q)

	var out []int
	for i, r := range c.recipes {
		if matches(r, q) {
			out = append(out, i)
		}
	}
	return out
}

func matches(r *domain.Recipe, query string) bool {
	if strings.Contains(strings.ToLower(r.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Course), query) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing.Name), query) {
			return true
		}
	}
	return false
}
