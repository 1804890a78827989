package engine

import (
	"context"
	"fmt"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/editor"
	"github.com/hammamikhairi/recipebox/internal/listedit"
)

// Sub-collection edits operate on the live recipe in the collection and
// rebuild the display afterwards. A failed edit changes nothing.

func (e *Engine) live(i int) (*domain.Recipe, error) {
	r, err := e.recipes.Get(i)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (e *Engine) done(i int, what string) {
	e.recipes.Refresh()
	e.log.Debug("recipe %d: %s", i, what)
}

// ---------- Ingredients ----------

// IngredientForm opens an ingredient form: blank when j < 0, otherwise
// pre-filled from ingredient j of recipe i.
func (e *Engine) IngredientForm(i, j int) (*editor.IngredientForm, error) {
	if j < 0 {
		return editor.NewIngredientForm(nil), nil
	}
	r, err := e.live(i)
	if err != nil {
		return nil, err
	}
	if j >= len(r.Ingredients) {
		return nil, fmt.Errorf("%w: ingredient %d", domain.ErrIndexOutOfRange, j+1)
	}
	cur := r.Ingredients[j]
	return editor.NewIngredientForm(&cur), nil
}

// AddIngredient appends ing to recipe i.
func (e *Engine) AddIngredient(ctx context.Context, i int, ing domain.Ingredient) error {
	r, err := e.live(i)
	if err != nil {
		return err
	}
	r.Ingredients = listedit.Add(r.Ingredients, ing)
	e.done(i, "added ingredient "+ing.Name)
	return nil
}

// EditIngredient replaces ingredient j of recipe i.
func (e *Engine) EditIngredient(ctx context.Context, i, j int, ing domain.Ingredient) error {
	r, err := e.live(i)
	if err != nil {
		return err
	}
	if r.Ingredients, err = listedit.Edit(r.Ingredients, j, ing); err != nil {
		return fmt.Errorf("editing ingredient: %w", err)
	}
	e.done(i, "edited ingredient "+ing.Name)
	return nil
}

// DeleteIngredient removes ingredient j of recipe i.
func (e *Engine) DeleteIngredient(ctx context.Context, i, j int) error {
	r, err := e.live(i)
	if err != nil {
		return err
	}
	if r.Ingredients, err = listedit.Delete(r.Ingredients, j); err != nil {
		return fmt.Errorf("deleting ingredient: %w", err)
	}
	e.done(i, fmt.Sprintf("deleted ingredient %d", j+1))
	return nil
}

// MoveIngredient shifts ingredient j of recipe i one place in dir.
func (e *Engine) MoveIngredient(ctx context.Context, i, j int, dir listedit.Direction) error {
	r, err := e.live(i)
	if err != nil {
		return err
	}
	if r.Ingredients, err = listedit.Move(r.Ingredients, j, dir); err != nil {
		return fmt.Errorf("moving ingredient: %w", err)
	}
	e.done(i, fmt.Sprintf("moved ingredient %d %s", j+1, dir))
	return nil
}

// ---------- Instructions ----------

// InstructionForm opens an instruction form: blank when j < 0, otherwise
// pre-filled from step j of recipe i.
func (e *Engine) InstructionForm(i, j int) (*editor.InstructionForm, error) {
	if j < 0 {
		return editor.NewInstructionForm(""), nil
	}
	r, err := e.live(i)
	if err != nil {
		return nil, err
	}
	if j >= len(r.Instructions) {
		return nil, fmt.Errorf("%w: step %d", domain.ErrIndexOutOfRange, j+1)
	}
	return editor.NewInstructionForm(r.Instructions[j]), nil
}

// AddInstruction appends a step to recipe i.
func (e *Engine) AddInstruction(ctx context.Context, i int, text string) error {
	r, err := e.live(i)
	if err != nil {
		return err
	}
	r.Instructions = listedit.Add(r.Instructions, text)
	e.done(i, "added instruction")
	return nil
}

// EditInstruction replaces step j of recipe i.
func (e *Engine) EditInstruction(ctx context.Context, i, j int, text string) error {
	r, err := e.live(i)
	if err != nil {
		return err
	}
	if r.Instructions, err = listedit.Edit(r.Instructions, j, text); err != nil {
		return fmt.Errorf("editing instruction: %w", err)
	}
	e.done(i, fmt.Sprintf("edited instruction %d", j+1))
	return nil
}

// DeleteInstruction removes step j of recipe i.
func (e *Engine) DeleteInstruction(ctx context.Context, i, j int) error {
	r, err := e.live(i)
	if err != nil {
		return err
	}
	if r.Instructions, err = listedit.Delete(r.Instructions, j); err != nil {
		return fmt.Errorf("deleting instruction: %w", err)
	}
	e.done(i, fmt.Sprintf("deleted instruction %d", j+1))
	return nil
}

// MoveInstruction shifts step j of recipe i one place in dir.
func (e *Engine) MoveInstruction(ctx context.Context, i, j int, dir listedit.Direction) error {
	r, err := e.live(i)
	if err != nil {
		return err
	}
	if r.Instructions, err = listedit.Move(r.Instructions, j, dir); err != nil {
		return fmt.Errorf("moving instruction: %w", err)
	}
	e.done(i, fmt.Sprintf("moved instruction %d %s", j+1, dir))
	return nil
}

// ---------- Images ----------

// Gallery opens the image gallery of recipe i. The gallery edits the live
// recipe.
func (e *Engine) Gallery(i int) (*editor.ImageGallery, error) {
	r, err := e.live(i)
	if err != nil {
		return nil, err
	}
	return editor.NewImageGallery(r), nil
}

// AddImage appends an image reference to recipe i.
func (e *Engine) AddImage(ctx context.Context, i int, path string) error {
	g, err := e.Gallery(i)
	if err != nil {
		return err
	}
	if err := g.Add(path); err != nil {
		return err
	}
	e.done(i, "added image "+path)
	return nil
}

// DeleteImage removes image j of recipe i and returns its path.
func (e *Engine) DeleteImage(ctx context.Context, i, j int) (string, error) {
	r, err := e.live(i)
	if err != nil {
		return "", err
	}
	if j < 0 || j >= len(r.Images) {
		return "", fmt.Errorf("%w: image %d", domain.ErrIndexOutOfRange, j+1)
	}
	removed := r.Images[j]
	r.Images, _ = listedit.Delete(r.Images, j)
	e.done(i, "deleted image "+removed)
	return removed, nil
}
