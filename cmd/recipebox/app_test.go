package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hammamikhairi/recipebox/internal/conversation"
	"github.com/hammamikhairi/recipebox/internal/display"
	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/engine"
	"github.com/hammamikhairi/recipebox/internal/logger"
	"github.com/hammamikhairi/recipebox/internal/recipe"
	"github.com/hammamikhairi/recipebox/internal/storage"
)

// fakeScreen records everything the app prints.
type fakeScreen struct {
	lines  []string
	status display.Status
	quit   bool
}

func (f *fakeScreen) PrintChat(text string)      { f.lines = append(f.lines, text) }
func (f *fakeScreen) PrintHeading(text string)   { f.lines = append(f.lines, text) }
func (f *fakeScreen) PrintText(text string)      { f.lines = append(f.lines, text) }
func (f *fakeScreen) PrintHint(text string)      { f.lines = append(f.lines, text) }
func (f *fakeScreen) PrintUrgent(text string)    { f.lines = append(f.lines, "!"+text) }
func (f *fakeScreen) PrintLines(lines []string)  { f.lines = append(f.lines, lines...) }
func (f *fakeScreen) SetStatus(s display.Status) { f.status = s }
func (f *fakeScreen) Quit()                      { f.quit = true }

func (f *fakeScreen) output() string { return strings.Join(f.lines, "\n") }

type testApp struct {
	*cliApp
	screen *fakeScreen
	dir    string
}

func newTestApp(t *testing.T, seed bool) *testApp {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)
	recipes := recipe.NewCollection(log)
	if seed {
		recipes.Seed()
	}
	dir := t.TempDir()
	eng := engine.New(recipes, storage.NewFileStore(dir, log), log)
	screen := &fakeScreen{}

	app := &cliApp{
		engine: eng,
		parser: conversation.NewKeywordParser(log),
		notifier: conversation.NewScreenNotifier(log, screen),
		log: log,
		ui:  screen,
	}
	return &testApp{cliApp: app, screen: screen, dir: dir}
}

// send feeds lines to the app and waits for it to drain them.
func (ta *testApp) send(t *testing.T, lines ...string) {
	t.Helper()
	ch := make(chan string, len(lines))
	for _, l := range lines {
		ch <- l
	}
	close(ch)
	ta.run(context.Background(), ch)
}

func (ta *testApp) selected(t *testing.T) *domain.Recipe {
	t.Helper()
	_, r, err := ta.engine.Selected()
	if err != nil {
		t.Fatalf("no selection: %v", err)
	}
	return r
}

func TestAppAddRecipeForm(t *testing.T) {
	ta := newTestApp(t, false)
	ta.send(t, "new Soup", "course main", "serves 4", "save")

	if ta.engine.Len() != 1 {
		t.Fatalf("expected 1 recipe, got %d", ta.engine.Len())
	}
	r := ta.selected(t)
	if r.Name != "Soup" || r.Course != domain.CourseMain || r.ServingSize != 4 {
		t.Fatalf("unexpected recipe: %+v", r)
	}
	requireContains(t, ta.screen.output(), "Saved.")
	if ta.form != nil || ta.mode() != domain.ModeBrowse {
		t.Fatal("form should be closed after save")
	}
	if ta.screen.status.Recipe != "Soup" {
		t.Fatalf("status bar shows %q", ta.screen.status.Recipe)
	}
}

func TestAppValidationGoBack(t *testing.T) {
	ta := newTestApp(t, false)
	ta.send(t, "new", "save")

	requireContains(t, ta.screen.output(), "Your recipe has missing information (name, serving size).")
	if ta.mode() != domain.ModeConfirm || !ta.screen.status.Confirm {
		t.Fatal("expected a back/discard prompt")
	}

	ta.send(t, "back", "name Pie", "serves 2", "save")
	if ta.engine.Len() != 1 {
		t.Fatalf("expected the fixed recipe to be added, got %d recipes", ta.engine.Len())
	}
	if r := ta.selected(t); r.Name != "Pie" {
		t.Fatalf("selected %q, want Pie", r.Name)
	}
}

func TestAppValidationDiscard(t *testing.T) {
	ta := newTestApp(t, true)
	ta.send(t, "edit 1", "name", "save", "discard")

	requireContains(t, ta.screen.output(), "Discarded.")
	if ta.form != nil {
		t.Fatal("form should be dropped")
	}
	if r := ta.selected(t); r.Name != "Tomato Soup" {
		t.Fatalf("discarded edit changed the recipe: %q", r.Name)
	}
}

func TestAppEditKeepsSubCollections(t *testing.T) {
	ta := newTestApp(t, true)
	ta.send(t, "edit 1", "name Roast Tomato Soup", "serves 2", "save")

	r := ta.selected(t)
	if r.Name != "Roast Tomato Soup" || r.ServingSize != 2 {
		t.Fatalf("details not updated: %+v", r)
	}
	if len(r.Ingredients) != 6 || len(r.Instructions) != 4 {
		t.Fatalf("edit lost ingredients or steps: %d/%d", len(r.Ingredients), len(r.Instructions))
	}
	if items := ta.engine.Items(); items[0].Main != "Roast Tomato Soup" {
		t.Fatalf("display list not refreshed: %q", items[0].Main)
	}
}

func TestAppIngredients(t *testing.T) {
	ta := newTestApp(t, true)
	ta.send(t, "1", "ing add Black pepper 1,5 tsp")

	ings := ta.selected(t).Ingredients
	last := ings[len(ings)-1]
	if last.Name != "Black pepper" || last.Quantity != 1.5 || last.Unit != "tsp" {
		t.Fatalf("unexpected ingredient: %+v", last)
	}

	ta.send(t, "ing edit 7 2", "ing up 7", "ing del 1")
	ings = ta.selected(t).Ingredients
	if ings[4].Name != "Black pepper" || ings[4].Quantity != 2 {
		t.Fatalf("edit/move/delete gave %+v", ings)
	}

	before := len(ings)
	ta.send(t, "ing del 99")
	requireContains(t, ta.screen.output(), "index out of range")
	if got := len(ta.selected(t).Ingredients); got != before {
		t.Fatalf("out of range delete changed the list: %d -> %d", before, got)
	}
}

func TestAppIngredientValidation(t *testing.T) {
	ta := newTestApp(t, true)
	before := len(ta.selected(t).Ingredients)

	ta.send(t, "ing add Pepper")
	requireContains(t, ta.screen.output(), "Your ingredient has missing information (quantity, unit).")

	ta.send(t, "back", "qty 1", "unit pinch", "save")
	ings := ta.selected(t).Ingredients
	if len(ings) != before+1 || ings[before].Unit != "pinch" {
		t.Fatalf("ingredient not added after going back: %+v", ings)
	}
}

func TestAppInstructions(t *testing.T) {
	ta := newTestApp(t, false)
	ta.send(t, "new Soup", "serves 4", "save", "step add Boil", "step add Add salt", "step up 2")

	got := ta.selected(t).Instructions
	if len(got) != 2 || got[0] != "Add salt" || got[1] != "Boil" {
		t.Fatalf("instructions = %v", got)
	}

	ta.send(t, "step add")
	if ta.mode() != domain.ModeForm {
		t.Fatal("step add without text should open the form")
	}
	ta.send(t, "save")
	requireContains(t, ta.screen.output(), "You did not input an instruction.")
	ta.send(t, "discard")
	if n := len(ta.selected(t).Instructions); n != 2 {
		t.Fatalf("discarded step was added: %d steps", n)
	}
}

func TestAppShoppingList(t *testing.T) {
	ta := newTestApp(t, true)
	ta.send(t, "1", "shop 8")
	requireContains(t, ta.screen.output(), "Salt - (2 tsp)")

	writeRecipe(t, ta.dir, "flat.rcpe",
		`{"name": "Flat", "course": "Main", "serving_size": 0, "ingredients": [], "instructions": []}`)
	ta.send(t, "import flat", "shop 2")
	requireContains(t, ta.screen.output(), "has no serving size")
}

func TestAppExportImport(t *testing.T) {
	ta := newTestApp(t, true)
	ta.send(t, "1", "export")

	path := filepath.Join(ta.dir, "tomato-soup.rcpe")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("export did not write %s: %v", path, err)
	}
	requireContains(t, ta.screen.output(), "Exported to "+path)

	ta.send(t, "import tomato-soup", "import missing")
	if ta.engine.Len() != 3 {
		t.Fatalf("expected 3 recipes after import, got %d", ta.engine.Len())
	}
	if r := ta.selected(t); r.Name != "Tomato Soup" || ta.engine.SelectedIndex() != 2 {
		t.Fatalf("imported recipe not selected: %d %q", ta.engine.SelectedIndex(), r.Name)
	}
	requireContains(t, ta.screen.output(), "not found")
}

func TestAppImages(t *testing.T) {
	ta := newTestApp(t, true)
	ta.send(t, "img add notes.txt")
	requireContains(t, ta.screen.output(), "not a png")

	ta.send(t, "img add a.png", "img add b.jpg", "img prev", "img del")
	if imgs := ta.selected(t).Images; len(imgs) != 1 || imgs[0] != "b.jpg" {
		t.Fatalf("images = %v", imgs)
	}
}

func TestAppDeleteAndMove(t *testing.T) {
	ta := newTestApp(t, true)
	ta.send(t, "2", "move up")
	if items := ta.engine.Items(); items[0].Main != "Chocolate Mousse" || ta.engine.SelectedIndex() != 0 {
		t.Fatalf("move up failed: %v sel=%d", items, ta.engine.SelectedIndex())
	}

	ta.send(t, "delete 1")
	if ta.engine.Len() != 1 || ta.engine.Items()[0].Main != "Tomato Soup" {
		t.Fatalf("delete failed: %v", ta.engine.Items())
	}
}

func TestAppNoSelection(t *testing.T) {
	ta := newTestApp(t, false)
	ta.send(t, "ing add Salt 1 tsp", "shop 4")
	requireContains(t, ta.screen.output(), "No recipe selected")
}

func TestAppQuit(t *testing.T) {
	ta := newTestApp(t, false)
	ta.send(t, "new Soup", "quit", "serves 4", "save")

	if !ta.screen.quit {
		t.Fatal("quit did not stop the UI")
	}
	if ta.engine.Len() != 0 {
		t.Fatal("input after quit was processed")
	}
}
