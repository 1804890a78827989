// Package editor provides the modal sub-editors used to capture a recipe's
// details, a single ingredient, or a single instruction.
//
// A form is opened with blank values for a new entry or with the current
// values of an existing one. Submit either yields the edited value or a
// *domain.ValidationError; the caller then asks the user to go back and fix
// it or to discard the whole edit (see [Resolve]). Nothing is saved
// partially.
package editor

import (
	"strings"

	"github.com/hammamikhairi/recipebox/internal/domain"
)

// Mode selects whether a recipe form creates or edits a recipe.
type Mode int

const (
	ModeAdd Mode = iota
	ModeEdit
)

// Decision is the user's answer to a validation prompt.
type Decision int

const (
	// GoBack returns to the form with the entered values intact.
	GoBack Decision = iota
	// Discard abandons the edit entirely.
	Discard
)

// Outcome is what the caller should do after a submit.
type Outcome int

const (
	// Commit means the form produced a valid value.
	Commit Outcome = iota
	// KeepEditing means the form stays open.
	KeepEditing
	// Abandon means the edit is dropped and nothing changes.
	Abandon
)

// Resolve maps a submit error and the user's decision to an outcome.
// A nil error always commits.
func Resolve(err error, d Decision) Outcome {
	if err == nil {
		return Commit
	}
	if d == Discard {
		return Abandon
	}
	return KeepEditing
}

// RecipeForm edits a recipe's core fields: name, course and serving size.
// Sub-collections are carried through unchanged.
type RecipeForm struct {
	mode   Mode
	title  string
	recipe *domain.Recipe
}

// NewRecipeForm opens a recipe form. In ModeAdd the form starts from the
// recipe defaults with an empty name; in ModeEdit it starts from a copy of
// initial, which must not be nil.
func NewRecipeForm(mode Mode, initial *domain.Recipe) *RecipeForm {
	f := &RecipeForm{mode: mode}
	switch {
	case mode == ModeEdit && initial != nil:
		f.recipe = initial.Clone()
		f.title = "Edit " + initial.Name
	default:
		f.mode = ModeAdd
		f.recipe = domain.NewRecipe()
		f.recipe.Name = ""
		f.recipe.Course = domain.CourseAppetizer
		f.title = "Add Recipe"
	}
	return f
}

// Mode reports whether the form adds or edits.
func (f *RecipeForm) Mode() Mode { return f.mode }

// Title is the heading shown while the form is open.
func (f *RecipeForm) Title() string { return f.title }

// Draft returns the values entered so far. The caller must not keep it
// across further edits.
func (f *RecipeForm) Draft() *domain.Recipe { return f.recipe }

// SetName sets the recipe name. Surrounding whitespace is dropped.
func (f *RecipeForm) SetName(name string) { f.recipe.Name = strings.TrimSpace(name) }

// SetCourse sets the course, normalizing known course names.
func (f *RecipeForm) SetCourse(course string) { f.recipe.Course = domain.NormalizeCourse(course) }

// SetServingSize sets the serving size. Negative values are clamped to zero.
func (f *RecipeForm) SetServingSize(n float64) {
	if n < 0 {
		n = 0
	}
	f.recipe.ServingSize = n
}

// Submit validates the form. On success it returns a copy of the edited
// recipe that the form no longer references.
func (f *RecipeForm) Submit() (*domain.Recipe, error) {
	var missing []string
	if f.recipe.Name == "" {
		missing = append(missing, "name")
	}
	if f.recipe.ServingSize == 0 {
		missing = append(missing, "serving size")
	}
	if len(missing) > 0 {
		return nil, &domain.ValidationError{Kind: domain.FormRecipe, Fields: missing}
	}
	return f.recipe.Clone(), nil
}

// IngredientForm edits one ingredient.
type IngredientForm struct {
	ing domain.Ingredient
}

// NewIngredientForm opens an ingredient form, pre-filled from initial when
// editing or blank when initial is nil.
func NewIngredientForm(initial *domain.Ingredient) *IngredientForm {
	f := &IngredientForm{}
	if initial != nil {
		f.ing = *initial
	}
	return f
}

// Draft returns the current field values.
func (f *IngredientForm) Draft() domain.Ingredient { return f.ing }

func (f *IngredientForm) SetName(name string) { f.ing.Name = strings.TrimSpace(name) }

func (f *IngredientForm) SetQuantity(q float64) {
	if q < 0 {
		q = 0
	}
	f.ing.Quantity = q
}

func (f *IngredientForm) SetUnit(unit string) { f.ing.Unit = strings.TrimSpace(unit) }

// Submit validates that name, quantity and unit are all filled in.
func (f *IngredientForm) Submit() (domain.Ingredient, error) {
	var missing []string
	if f.ing.Name == "" {
		missing = append(missing, "name")
	}
	if f.ing.Quantity == 0 {
		missing = append(missing, "quantity")
	}
	if f.ing.Unit == "" {
		missing = append(missing, "unit")
	}
	if len(missing) > 0 {
		return f.ing, &domain.ValidationError{Kind: domain.FormIngredient, Fields: missing}
	}
	return f.ing, nil
}

// InstructionForm edits one instruction step.
type InstructionForm struct {
	text string
}

// NewInstructionForm opens an instruction form pre-filled with initial.
func NewInstructionForm(initial string) *InstructionForm {
	return &InstructionForm{text: initial}
}

func (f *InstructionForm) SetText(text string) { f.text = strings.TrimSpace(text) }

// Draft returns the current text.
func (f *InstructionForm) Draft() string { return f.text }

// Submit rejects blank instructions.
func (f *InstructionForm) Submit() (string, error) {
	if strings.TrimSpace(f.text) == "" {
		return "", &domain.ValidationError{Kind: domain.FormInstruction, Fields: []string{"text"}}
	}
	return f.text, nil
}
