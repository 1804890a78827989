package engine

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/editor"
	"github.com/hammamikhairi/recipebox/internal/listedit"
	"github.com/hammamikhairi/recipebox/internal/logger"
	"github.com/hammamikhairi/recipebox/internal/recipe"
	"github.com/hammamikhairi/recipebox/internal/shopping"
	"github.com/hammamikhairi/recipebox/internal/storage"
)

func setupEngine(t *testing.T, opts ...Option) (*Engine, *storage.FileStore, context.Context) {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)
	recipes := recipe.NewCollection(log)
	store := storage.NewFileStore(t.TempDir(), log)
	eng := New(recipes, store, log, opts...)
	return eng, store, context.Background()
}

func soup() *domain.Recipe {
	return &domain.Recipe{
		Name:         "Soup",
		Course:       domain.CourseMain,
		ServingSize:  4,
		Ingredients:  []domain.Ingredient{{Name: "Salt", Quantity: 2, Unit: "tsp"}},
		Instructions: []string{},
		Images:       []string{},
	}
}

func TestAddRecipe(t *testing.T) {
	eng, _, ctx := setupEngine(t)

	tests := []struct {
		name    string
		recipe  *domain.Recipe
		wantErr bool
	}{
		{"empty name zero servings", &domain.Recipe{Name: "", ServingSize: 0}, true},
		{"empty name with servings", &domain.Recipe{Name: "", ServingSize: 4}, false},
		{"named zero servings", &domain.Recipe{Name: "Soup", ServingSize: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := eng.Len()
			idx, err := eng.AddRecipe(ctx, tt.recipe)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrRejected) {
					t.Fatalf("expected ErrRejected, got %v", err)
				}
				if eng.Len() != before {
					t.Fatal("rejected recipe changed the collection")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if eng.SelectedIndex() != idx {
				t.Fatalf("new recipe should be selected, got %d want %d", eng.SelectedIndex(), idx)
			}
		})
	}
}

func TestNewRecipeFormDefaults(t *testing.T) {
	eng, _, _ := setupEngine(t, WithDefaultCourse("dessert"), WithDefaultServings(2))
	draft := eng.NewRecipeForm().Draft()
	if draft.Course != domain.CourseDessert || draft.ServingSize != 2 {
		t.Fatalf("defaults not applied: %+v", draft)
	}

	eng, _, _ = setupEngine(t)
	draft = eng.NewRecipeForm().Draft()
	if draft.Course != domain.CourseAppetizer || draft.ServingSize != 0 {
		t.Fatalf("unexpected built-in defaults: %+v", draft)
	}
}

func TestEditDetailsKeepsSubCollections(t *testing.T) {
	eng, _, ctx := setupEngine(t)
	idx, _ := eng.AddRecipe(ctx, soup())

	form, err := eng.EditRecipeForm(idx)
	if err != nil {
		t.Fatalf("edit form: %v", err)
	}
	form.SetName("Stew")
	form.SetServingSize(6)
	r, err := form.Submit()
	if editor.Resolve(err, editor.GoBack) != editor.Commit {
		t.Fatalf("submit: %v", err)
	}
	if err := eng.EditDetails(ctx, idx, r); err != nil {
		t.Fatalf("edit details: %v", err)
	}

	_, got, _ := eng.Selected()
	if got.Name != "Stew" || got.ServingSize != 6 || len(got.Ingredients) != 1 {
		t.Fatalf("unexpected recipe %+v", got)
	}
	if item := eng.Items()[idx]; item.Main != "Stew" || item.Sub != "Main, serves 6" {
		t.Fatalf("display item not refreshed: %+v", item)
	}
}

func TestSelectIsPureRead(t *testing.T) {
	eng, _, ctx := setupEngine(t)
	idx, _ := eng.AddRecipe(ctx, soup())

	r, err := eng.Select(idx)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	r.Name = "changed"
	r.Ingredients[0].Quantity = 99

	_, cur, _ := eng.Selected()
	if cur.Name != "Soup" || cur.Ingredients[0].Quantity != 2 {
		t.Fatal("mutating the selected copy changed the collection")
	}
	if _, err := eng.Select(7); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteRecipeSelection(t *testing.T) {
	eng, _, ctx := setupEngine(t)
	for _, name := range []string{"A", "B", "C"} {
		r := soup()
		r.Name = name
		eng.AddRecipe(ctx, r)
	}

	eng.Select(2)
	if _, err := eng.DeleteRecipe(ctx, 0); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, r, _ := eng.Selected(); r.Name != "C" {
		t.Fatalf("selection should follow C, got %s", r.Name)
	}

	if _, err := eng.DeleteRecipe(ctx, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, _, err := eng.Selected(); !errors.Is(err, domain.ErrNoSelection) {
		t.Fatalf("expected ErrNoSelection, got %v", err)
	}
	if _, err := eng.DeleteRecipe(ctx, 5); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if eng.Len() != 1 || len(eng.Items()) != 1 {
		t.Fatal("recipes and display items out of step")
	}
}

func TestMoveRecipeCarriesSelection(t *testing.T) {
	eng, _, ctx := setupEngine(t)
	for _, name := range []string{"A", "B"} {
		r := soup()
		r.Name = name
		eng.AddRecipe(ctx, r)
	}
	eng.Select(0)
	to, err := eng.MoveRecipe(ctx, 0, listedit.Down)
	if err != nil || to != 1 {
		t.Fatalf("expected move to 1, got %d (%v)", to, err)
	}
	if eng.SelectedIndex() != 1 {
		t.Fatalf("selection should move with the recipe, got %d", eng.SelectedIndex())
	}
}

func TestExportImportShoppingList(t *testing.T) {
	eng, store, ctx := setupEngine(t)

	idx, err := eng.AddRecipe(ctx, soup())
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	path, err := eng.ExportRecipe(ctx, idx, filepath.Join(store.Dir(), "soup"))
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	imported, err := eng.ImportRecipe(ctx, path)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if imported != 1 || eng.SelectedIndex() != 1 {
		t.Fatalf("import should append and select, got idx=%d sel=%d", imported, eng.SelectedIndex())
	}

	_, r, _ := eng.Selected()
	want := soup().Ingredients
	if len(r.Ingredients) != len(want) || r.Ingredients[0] != want[0] {
		t.Fatalf("ingredients differ after round trip: %+v", r.Ingredients)
	}

	items, err := eng.ShoppingList(ctx, imported, 8)
	if err != nil {
		t.Fatalf("shopping list: %v", err)
	}
	if len(items) != 1 || items[0].Quantity != 4 {
		t.Fatalf("expected Salt x4, got %+v", items)
	}
	if got := shopping.Lines(items)[0]; got != "Salt - (4 tsp)" {
		t.Fatalf("unexpected line %q", got)
	}
}

func TestExportDefaultFileName(t *testing.T) {
	eng, store, ctx := setupEngine(t)
	r := soup()
	r.Name = "Grandma's Tomato Soup"
	idx, _ := eng.AddRecipe(ctx, r)

	path, err := eng.ExportRecipe(ctx, idx, "")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if want := filepath.Join(store.Dir(), "grandma-s-tomato-soup.rcpe"); path != want {
		t.Fatalf("expected %s, got %s", want, path)
	}
	files, _ := eng.ListFiles(ctx)
	if len(files) != 1 {
		t.Fatalf("expected 1 library file, got %v", files)
	}
}

func TestImportFailureLeavesCollection(t *testing.T) {
	eng, store, ctx := setupEngine(t)
	eng.AddRecipe(ctx, soup())

	bad := filepath.Join(store.Dir(), "bad.rcpe")
	if err := os.WriteFile(bad, []byte(`{"name": "Soup", "course": "Main"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := eng.ImportRecipe(ctx, bad)
	if !errors.Is(err, domain.ErrSchema) {
		t.Fatalf("expected ErrSchema, got %v", err)
	}
	if eng.Len() != 1 || eng.SelectedIndex() != 0 {
		t.Fatal("failed import changed the collection or selection")
	}
}

func TestShoppingListZeroServings(t *testing.T) {
	eng, _, ctx := setupEngine(t)
	r := soup()
	r.ServingSize = 0
	idx, _ := eng.AddRecipe(ctx, r)

	if _, err := eng.ShoppingList(ctx, idx, 8); !errors.Is(err, domain.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Soup", "soup"},
		{"  Chicken  Alfredo ", "chicken-alfredo"},
		{"Crème brûlée!", "crème-brûlée"},
		{"???", "noname"},
		{"", "noname"},
	}
	for _, tt := range tests {
		if got := FileName(tt.in); got != tt.want {
			t.Errorf("FileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
