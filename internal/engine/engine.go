// Package engine implements the recipe box actions behind the front end:
// adding, editing, deleting, importing and exporting recipes, editing their
// ingredient, instruction and image lists, and building shopping lists.
package engine

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/editor"
	"github.com/hammamikhairi/recipebox/internal/listedit"
	"github.com/hammamikhairi/recipebox/internal/logger"
	"github.com/hammamikhairi/recipebox/internal/recipe"
	"github.com/hammamikhairi/recipebox/internal/shopping"
)

// noSelection is the selection index when no recipe is selected.
const noSelection = -1

// Option configures the engine.
type Option func(*Engine)

// WithDefaultCourse sets the course a new recipe form starts with.
func WithDefaultCourse(course string) Option {
	return func(e *Engine) {
		if course != "" {
			e.defaultCourse = domain.NormalizeCourse(course)
		}
	}
}

// WithDefaultServings sets the serving size a new recipe form starts with.
func WithDefaultServings(n float64) Option {
	return func(e *Engine) {
		if n > 0 {
			e.defaultServings = n
		}
	}
}

// Engine owns the recipe collection and the current selection. It depends
// only on the collection and a RecipeStore, and is testable without a
// terminal.
type Engine struct {
	recipes         *recipe.Collection
	store           domain.RecipeStore
	log             *logger.Logger
	selected        int
	defaultCourse   string
	defaultServings float64
}

// New creates an engine with the given dependencies and options.
func New(recipes *recipe.Collection, store domain.RecipeStore, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		recipes:       recipes,
		store:         store,
		log:           log,
		selected:      noSelection,
		defaultCourse: domain.CourseAppetizer,
	}
	for _, opt := range opts {
		opt(e)
	}
	if recipes.Len() > 0 {
		e.selected = 0
	}
	return e
}

// Items returns the display items of the collection, one per recipe.
func (e *Engine) Items() []recipe.DisplayItem {
	return e.recipes.Items()
}

// Len returns the number of recipes.
func (e *Engine) Len() int {
	return e.recipes.Len()
}

// Search returns the indexes of recipes matching query.
func (e *Engine) Search(ctx context.Context, query string) []int {
	return e.recipes.Search(ctx, query)
}

// ---------- Selection ----------

// Select makes recipe i the current recipe and returns a copy of it.
func (e *Engine) Select(i int) (*domain.Recipe, error) {
	r, err := e.recipes.Get(i)
	if err != nil {
		return nil, err
	}
	e.selected = i
	e.log.Debug("selected recipe %d (%s)", i, r.Name)
	return r.Clone(), nil
}

// Selected returns the selected index and a copy of the recipe, or
// domain.ErrNoSelection.
func (e *Engine) Selected() (int, *domain.Recipe, error) {
	if e.selected == noSelection {
		return noSelection, nil, domain.ErrNoSelection
	}
	r, err := e.recipes.Get(e.selected)
	if err != nil {
		e.selected = noSelection
		return noSelection, nil, domain.ErrNoSelection
	}
	return e.selected, r.Clone(), nil
}

// SelectedIndex returns the selected index, or -1.
func (e *Engine) SelectedIndex() int {
	return e.selected
}

// ---------- Recipes ----------

// NewRecipeForm opens a blank recipe form with the configured defaults.
func (e *Engine) NewRecipeForm() *editor.RecipeForm {
	f := editor.NewRecipeForm(editor.ModeAdd, nil)
	f.SetCourse(e.defaultCourse)
	f.SetServingSize(e.defaultServings)
	return f
}

// EditRecipeForm opens a recipe form pre-filled from recipe i.
func (e *Engine) EditRecipeForm(i int) (*editor.RecipeForm, error) {
	r, err := e.recipes.Get(i)
	if err != nil {
		return nil, err
	}
	return editor.NewRecipeForm(editor.ModeEdit, r), nil
}

// AddRecipe adds r to the collection and selects it. Recipes that have
// neither a name nor a serving size are rejected with domain.ErrRejected.
func (e *Engine) AddRecipe(ctx context.Context, r *domain.Recipe) (int, error) {
	idx, err := e.recipes.Add(r)
	if err != nil {
		return noSelection, fmt.Errorf("adding recipe: %w", err)
	}
	e.selected = idx
	return idx, nil
}

// EditDetails writes the name, course and serving size of r onto recipe i.
// Ingredients, instructions and images of recipe i are left as they are.
func (e *Engine) EditDetails(ctx context.Context, i int, r *domain.Recipe) error {
	cur, err := e.recipes.Get(i)
	if err != nil {
		return fmt.Errorf("editing recipe: %w", err)
	}
	updated := cur.Clone()
	updated.Name = r.Name
	updated.Course = r.Course
	updated.ServingSize = r.ServingSize
	if err := e.recipes.Replace(i, updated); err != nil {
		return fmt.Errorf("editing recipe: %w", err)
	}
	e.log.Info("recipe %d details updated: %s", i, updated.Name)
	return nil
}

// DeleteRecipe removes recipe i. The selection follows the recipe it was
// on, or is cleared if that recipe was deleted.
func (e *Engine) DeleteRecipe(ctx context.Context, i int) (*domain.Recipe, error) {
	removed, err := e.recipes.Delete(i)
	if err != nil {
		return nil, fmt.Errorf("deleting recipe: %w", err)
	}
	switch {
	case e.selected == i:
		e.selected = noSelection
	case e.selected > i:
		e.selected--
	}
	return removed, nil
}

// MoveRecipe shifts recipe i one place in the list and returns its new
// index. The selection moves with it.
func (e *Engine) MoveRecipe(ctx context.Context, i int, dir listedit.Direction) (int, error) {
	to, err := e.recipes.Move(i, dir)
	if err != nil {
		return i, fmt.Errorf("moving recipe: %w", err)
	}
	switch e.selected {
	case i:
		e.selected = to
	case to:
		e.selected = i
	}
	return to, nil
}

// ImportRecipe reads a recipe file and appends it to the collection
// without the AddRecipe gate. Nothing changes if the file can't be read or
// decoded.
func (e *Engine) ImportRecipe(ctx context.Context, path string) (int, error) {
	r, err := e.store.Read(ctx, path)
	if err != nil {
		return noSelection, fmt.Errorf("importing %s: %w", path, err)
	}
	idx := e.recipes.Append(r)
	e.selected = idx
	return idx, nil
}

// ExportRecipe writes recipe i to path and returns the path written. An
// empty path derives a file name from the recipe name.
func (e *Engine) ExportRecipe(ctx context.Context, i int, path string) (string, error) {
	r, err := e.recipes.Get(i)
	if err != nil {
		return "", fmt.Errorf("exporting recipe: %w", err)
	}
	if path == "" {
		path = FileName(r.Name)
	}
	written, err := e.store.Write(ctx, path, r)
	if err != nil {
		return "", fmt.Errorf("exporting %q: %w", r.Name, err)
	}
	return written, nil
}

// ListFiles returns the recipe files available for import.
func (e *Engine) ListFiles(ctx context.Context) ([]string, error) {
	return e.store.List(ctx)
}

// FileName turns a recipe name into a file name: lower case, with runs of
// anything but letters and digits collapsed to a single dash.
func FileName(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return domain.DefaultName
	}
	return out
}

// ---------- Shopping ----------

// ShoppingList scales recipe i to target servings.
func (e *Engine) ShoppingList(ctx context.Context, i int, target float64) ([]shopping.Item, error) {
	r, err := e.recipes.Get(i)
	if err != nil {
		return nil, fmt.Errorf("shopping list: %w", err)
	}
	items, err := shopping.Generate(r, target)
	if err != nil {
		return nil, err
	}
	e.log.Debug("shopping list for %q: %d items for %s servings", r.Name, len(items), domain.FormatQuantity(target))
	return items, nil
}
