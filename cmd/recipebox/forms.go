package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/hammamikhairi/recipebox/internal/conversation"
	"github.com/hammamikhairi/recipebox/internal/display"
	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/editor"
	"github.com/hammamikhairi/recipebox/internal/engine"
	"github.com/hammamikhairi/recipebox/internal/listedit"
)

// openForm is a sub-editor waiting for field values and a save.
type openForm interface {
	title() string
	set(field, value string) error
	submit(ctx context.Context) error
	show() []string
}

func unknownField(field string, valid string) error {
	return fmt.Errorf("%q is not a field here, use %s", field, valid)
}

// ── Recipe details ───────────────────────────────────────────────

type recipeFormState struct {
	eng   *engine.Engine
	form  *editor.RecipeForm
	index int // recipe being edited, -1 when adding
}

func (s *recipeFormState) title() string { return s.form.Title() }

func (s *recipeFormState) set(field, value string) error {
	switch field {
	case "name":
		s.form.SetName(value)
	case "course":
		s.form.SetCourse(value)
	case "serves":
		n, err := conversation.ParseQuantity(value)
		if err != nil {
			return err
		}
		s.form.SetServingSize(n)
	default:
		return unknownField(field, "name, course or serves")
	}
	return nil
}

func (s *recipeFormState) submit(ctx context.Context) error {
	r, err := s.form.Submit()
	if err != nil {
		return err
	}
	if s.form.Mode() == editor.ModeEdit {
		return s.eng.EditDetails(ctx, s.index, r)
	}
	_, err = s.eng.AddRecipe(ctx, r)
	return err
}

func (s *recipeFormState) show() []string {
	d := s.form.Draft()
	return []string{
		"name:   " + d.Name,
		"course: " + d.Course,
		"serves: " + domain.FormatQuantity(d.ServingSize),
	}
}

// ── Ingredient ───────────────────────────────────────────────────

type ingredientFormState struct {
	eng    *engine.Engine
	form   *editor.IngredientForm
	recipe int
	index  int // ingredient being edited, -1 when adding
}

func (s *ingredientFormState) title() string {
	if s.index < 0 {
		return "Add Ingredient"
	}
	return fmt.Sprintf("Edit Ingredient %d", s.index+1)
}

func (s *ingredientFormState) set(field, value string) error {
	switch field {
	case "name":
		s.form.SetName(value)
	case "quantity":
		q, err := conversation.ParseQuantity(value)
		if err != nil {
			return err
		}
		s.form.SetQuantity(q)
	case "unit":
		s.form.SetUnit(value)
	default:
		return unknownField(field, "name, qty or unit")
	}
	return nil
}

// fill applies a one-line "Salt 2 tsp" over the current values.
func (s *ingredientFormState) fill(args conversation.IngredientArgs) {
	ing := args.Apply(s.form.Draft())
	s.form.SetName(ing.Name)
	s.form.SetQuantity(ing.Quantity)
	s.form.SetUnit(ing.Unit)
}

func (s *ingredientFormState) submit(ctx context.Context) error {
	ing, err := s.form.Submit()
	if err != nil {
		return err
	}
	if s.index < 0 {
		return s.eng.AddIngredient(ctx, s.recipe, ing)
	}
	return s.eng.EditIngredient(ctx, s.recipe, s.index, ing)
}

func (s *ingredientFormState) show() []string {
	d := s.form.Draft()
	return []string{
		"name: " + d.Name,
		"qty:  " + domain.FormatQuantity(d.Quantity),
		"unit: " + d.Unit,
	}
}

// ── Instruction ──────────────────────────────────────────────────

type instructionFormState struct {
	eng    *engine.Engine
	form   *editor.InstructionForm
	recipe int
	index  int
}

func (s *instructionFormState) title() string {
	if s.index < 0 {
		return "Add Step"
	}
	return fmt.Sprintf("Edit Step %d", s.index+1)
}

func (s *instructionFormState) set(field, value string) error {
	if field != "text" {
		return unknownField(field, "text")
	}
	s.form.SetText(value)
	return nil
}

func (s *instructionFormState) submit(ctx context.Context) error {
	text, err := s.form.Submit()
	if err != nil {
		return err
	}
	if s.index < 0 {
		return s.eng.AddInstruction(ctx, s.recipe, text)
	}
	return s.eng.EditInstruction(ctx, s.recipe, s.index, text)
}

func (s *instructionFormState) show() []string {
	return []string{"text: " + s.form.Draft()}
}

// ── Form flow ────────────────────────────────────────────────────

func (a *cliApp) beginForm(f openForm) {
	a.form = f
	a.confirm = false
	a.pending = nil
	a.showForm()
}

func (a *cliApp) showForm() {
	if a.form == nil {
		return
	}
	a.ui.PrintHeading(a.form.title())
	for _, line := range a.form.show() {
		a.ui.PrintText(line)
	}
	a.ui.PrintHint("Set a field with '<field> <value>', then 'save' or 'cancel'.")
}

func (a *cliApp) handleForm(ctx context.Context, intent *domain.Intent) {
	switch intent.Type {
	case domain.IntentSetField:
		if err := a.form.set(intent.Action, intent.Payload); err != nil {
			a.fail(err)
			return
		}
		a.showForm()
	case domain.IntentSave:
		a.submitForm(ctx)
	case domain.IntentCancel:
		a.form = nil
		a.ui.PrintChat("Cancelled.")
	default:
		a.ui.PrintHint("A form is open. Set a field, 'save' or 'cancel'.")
	}
}

// submitForm commits the open form. A validation failure keeps the form
// and asks whether to go back or discard.
func (a *cliApp) submitForm(ctx context.Context) {
	err := a.form.submit(ctx)
	if errors.Is(err, domain.ErrValidation) {
		a.confirm = true
		a.pending = err
		a.ui.PrintUrgent(errorText(err))
		a.ui.PrintHint("Type 'back' to fix it or 'discard' to drop it.")
		return
	}
	if err != nil {
		a.fail(err)
		return
	}

	done := a.form
	a.form = nil
	a.ui.PrintChat("Saved.")
	switch done.(type) {
	case *recipeFormState:
		a.showRecipes()
	default:
		a.showRecipe("")
	}
}

func (a *cliApp) handleConfirm(intent *domain.Intent) {
	var d editor.Decision
	switch intent.Type {
	case domain.IntentGoBack:
		d = editor.GoBack
	case domain.IntentDiscard:
		d = editor.Discard
	default:
		a.ui.PrintHint("Type 'back' to fix the form or 'discard' to drop it.")
		return
	}

	outcome := editor.Resolve(a.pending, d)
	a.confirm = false
	a.pending = nil
	switch outcome {
	case editor.KeepEditing:
		a.showForm()
	case editor.Abandon:
		a.form = nil
		a.ui.PrintChat("Discarded.")
	}
}

// ── Recipe forms ─────────────────────────────────────────────────

func (a *cliApp) newRecipe(name string) {
	s := &recipeFormState{eng: a.engine, form: a.engine.NewRecipeForm(), index: -1}
	if name != "" {
		s.form.SetName(name)
	}
	a.beginForm(s)
}

func (a *cliApp) editRecipe(payload string) {
	idx, ok := a.recipeIndex(payload)
	if !ok {
		return
	}
	form, err := a.engine.EditRecipeForm(idx)
	if err != nil {
		a.fail(err)
		return
	}
	a.beginForm(&recipeFormState{eng: a.engine, form: form, index: idx})
}

// ── Sub-collections ──────────────────────────────────────────────

// itemIndex reads the 1-based item number of a list command.
func (a *cliApp) itemIndex(payload, what, example string) (int, string, bool) {
	j, rest, ok := conversation.SplitIndex(payload)
	if !ok {
		a.ui.PrintChat(fmt.Sprintf("Which %s? e.g. '%s'.", what, example))
	}
	return j, rest, ok
}

func (a *cliApp) ingredient(ctx context.Context, action, payload string) {
	idx, r := a.selectedRecipe()
	if r == nil {
		return
	}

	switch action {
	case "add":
		form, _ := a.engine.IngredientForm(idx, -1)
		s := &ingredientFormState{eng: a.engine, form: form, recipe: idx, index: -1}
		a.runIngredientForm(ctx, s, conversation.ParseIngredient(payload))

	case "edit":
		j, rest, ok := a.itemIndex(payload, "ingredient", "ing edit 2 Salt 1 tsp")
		if !ok {
			return
		}
		form, err := a.engine.IngredientForm(idx, j)
		if err != nil {
			a.fail(err)
			return
		}
		s := &ingredientFormState{eng: a.engine, form: form, recipe: idx, index: j}
		a.runIngredientForm(ctx, s, conversation.ParseIngredient(rest))

	case "del":
		j, _, ok := a.itemIndex(payload, "ingredient", "ing del 2")
		if !ok {
			return
		}
		a.listEdit(a.engine.DeleteIngredient(ctx, idx, j))

	case "up", "down":
		j, _, ok := a.itemIndex(payload, "ingredient", "ing "+action+" 2")
		if !ok {
			return
		}
		dir, _ := listedit.ParseDirection(action)
		a.listEdit(a.engine.MoveIngredient(ctx, idx, j, dir))
	}
}

// runIngredientForm submits s at once when args carry values, otherwise it opens
// the form for field-by-field entry.
func (a *cliApp) runIngredientForm(ctx context.Context, s *ingredientFormState, args conversation.IngredientArgs) {
	if args.Empty() {
		a.beginForm(s)
		return
	}
	s.fill(args)
	a.form = s
	a.submitForm(ctx)
}

func (a *cliApp) instruction(ctx context.Context, action, payload string) {
	idx, r := a.selectedRecipe()
	if r == nil {
		return
	}

	switch action {
	case "add":
		form, _ := a.engine.InstructionForm(idx, -1)
		a.runInstructionForm(ctx, &instructionFormState{eng: a.engine, form: form, recipe: idx, index: -1}, payload)

	case "edit":
		j, rest, ok := a.itemIndex(payload, "step", "step edit 2 Simmer for 5 minutes")
		if !ok {
			return
		}
		form, err := a.engine.InstructionForm(idx, j)
		if err != nil {
			a.fail(err)
			return
		}
		a.runInstructionForm(ctx, &instructionFormState{eng: a.engine, form: form, recipe: idx, index: j}, rest)

	case "del":
		j, _, ok := a.itemIndex(payload, "step", "step del 2")
		if !ok {
			return
		}
		a.listEdit(a.engine.DeleteInstruction(ctx, idx, j))

	case "up", "down":
		j, _, ok := a.itemIndex(payload, "step", "step "+action+" 2")
		if !ok {
			return
		}
		dir, _ := listedit.ParseDirection(action)
		a.listEdit(a.engine.MoveInstruction(ctx, idx, j, dir))
	}
}

func (a *cliApp) runInstructionForm(ctx context.Context, s *instructionFormState, text string) {
	if text == "" {
		a.beginForm(s)
		return
	}
	s.form.SetText(text)
	a.form = s
	a.submitForm(ctx)
}

// listEdit reports the result of a delete or move. Out-of-range positions
// change nothing and are shown as errors.
func (a *cliApp) listEdit(err error) {
	if err != nil {
		a.fail(err)
		return
	}
	a.showRecipe("")
}

// ── Images ───────────────────────────────────────────────────────

func (a *cliApp) image(ctx context.Context, action, payload string) {
	idx, r := a.selectedRecipe()
	if r == nil {
		return
	}
	if a.gallery == nil || a.galleryOf != idx {
		g, err := a.engine.Gallery(idx)
		if err != nil {
			a.fail(err)
			return
		}
		a.gallery, a.galleryOf = g, idx
	}
	g := a.gallery

	switch action {
	case "add":
		if payload == "" {
			a.ui.PrintChat("Which image? e.g. 'img add photos/soup.jpg'.")
			return
		}
		if err := g.Add(payload); err != nil {
			a.fail(err)
			return
		}
	case "del":
		removed, err := g.Delete()
		if err != nil {
			a.fail(err)
			return
		}
		a.ui.PrintChat("Removed " + removed)
	case "next":
		if !g.Next() {
			a.ui.PrintHint("That's the last image.")
		}
	case "prev":
		if !g.Prev() {
			a.ui.PrintHint("That's the first image.")
		}
	}

	_, r, _ = a.engine.Selected()
	a.ui.PrintLines(display.RenderGallery(r.Images, g.Selected()))
}
