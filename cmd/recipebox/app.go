package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hammamikhairi/recipebox/internal/conversation"
	"github.com/hammamikhairi/recipebox/internal/display"
	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/editor"
	"github.com/hammamikhairi/recipebox/internal/engine"
	"github.com/hammamikhairi/recipebox/internal/listedit"
	"github.com/hammamikhairi/recipebox/internal/logger"
)

// screen is the part of display.UI the app writes to.
type screen interface {
	PrintChat(text string)
	PrintHeading(text string)
	PrintText(text string)
	PrintHint(text string)
	PrintUrgent(text string)
	PrintLines(lines []string)
	SetStatus(s display.Status)
	Quit()
}

var _ screen = (*display.UI)(nil)

type cliApp struct {
	engine   *engine.Engine
	parser   domain.IntentParser
	notifier domain.Notifier
	log      *logger.Logger
	ui       screen

	form    openForm // nil when no form is open
	confirm bool     // a back/discard prompt is waiting
	pending error    // the validation error being confirmed

	gallery   *editor.ImageGallery
	galleryOf int
}

func (a *cliApp) run(ctx context.Context, input <-chan string) {
	a.ui.PrintChat("Welcome to Recipe Box.")
	a.showRecipes()

	for {
		var line string
		var ok bool

		select {
		case <-ctx.Done():
			return
		case line, ok = <-input:
			if !ok {
				return
			}
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		intent, err := a.parser.Parse(ctx, line, a.mode())
		if err != nil {
			a.log.Error("parsing input: %v", err)
			continue
		}

		a.log.Debug("intent: %s (action=%q payload=%q)", intent.Type, intent.Action, intent.Payload)
		if quit := a.handleIntent(ctx, intent); quit {
			return
		}
		a.refreshStatus()
	}
}

// mode reports what the prompt is currently waiting for.
func (a *cliApp) mode() domain.InputMode {
	switch {
	case a.confirm:
		return domain.ModeConfirm
	case a.form != nil:
		return domain.ModeForm
	}
	return domain.ModeBrowse
}

func (a *cliApp) refreshStatus() {
	var s display.Status
	if _, r, err := a.engine.Selected(); err == nil {
		s.Recipe = r.Name
	}
	if a.form != nil {
		s.Form = a.form.title()
	}
	s.Confirm = a.confirm
	a.ui.SetStatus(s)
}

// handleIntent dispatches one parsed command. It reports true when the
// session should end.
func (a *cliApp) handleIntent(ctx context.Context, intent *domain.Intent) bool {
	switch intent.Type {
	case domain.IntentQuit:
		a.quit()
		return true
	case domain.IntentHelp:
		a.showHelp()
		return false
	}

	switch a.mode() {
	case domain.ModeConfirm:
		a.handleConfirm(intent)
	case domain.ModeForm:
		a.handleForm(ctx, intent)
	default:
		a.handleBrowse(ctx, intent)
	}
	return false
}

func (a *cliApp) handleBrowse(ctx context.Context, intent *domain.Intent) {
	if intent.Type != domain.IntentImage {
		a.gallery = nil
	}

	switch intent.Type {
	case domain.IntentListRecipes:
		a.showRecipes()
	case domain.IntentSelectRecipe:
		a.selectRecipe(intent.Payload)
	case domain.IntentShowRecipe:
		a.showRecipe(intent.Payload)
	case domain.IntentNewRecipe:
		a.newRecipe(intent.Payload)
	case domain.IntentEditRecipe:
		a.editRecipe(intent.Payload)
	case domain.IntentDeleteRecipe:
		a.deleteRecipe(ctx, intent.Payload)
	case domain.IntentMoveRecipe:
		a.moveRecipe(ctx, intent.Action, intent.Payload)
	case domain.IntentImport:
		a.importRecipe(ctx, intent.Payload)
	case domain.IntentExport:
		a.exportRecipe(ctx, intent.Payload)
	case domain.IntentListFiles:
		a.listFiles(ctx)
	case domain.IntentShoppingList:
		a.shoppingList(ctx, intent.Payload)
	case domain.IntentIngredient:
		a.ingredient(ctx, intent.Action, intent.Payload)
	case domain.IntentInstruction:
		a.instruction(ctx, intent.Action, intent.Payload)
	case domain.IntentImage:
		a.image(ctx, intent.Action, intent.Payload)
	case domain.IntentSearch:
		a.search(ctx, intent.Payload)
	default:
		a.ui.PrintChat(fmt.Sprintf("Sorry, I don't know %q. Type 'help' for commands.", intent.Payload))
	}
}

// fail prints err for the user. Errors are never only logged.
func (a *cliApp) fail(err error) {
	a.log.Warn("%v", err)
	a.ui.PrintUrgent(errorText(err))
}

// errorText is the user-facing wording of err.
func errorText(err error) string {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return capitalize(verr.Error()) + "."
	case errors.Is(err, domain.ErrParse):
		return "That file is not a valid recipe file: " + err.Error()
	case errors.Is(err, domain.ErrSchema):
		return "That recipe file is incomplete: " + err.Error()
	case errors.Is(err, domain.ErrNoSelection):
		return "No recipe selected. Pick one by number first."
	}
	return "Error: " + err.Error()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// recipeIndex resolves an optional 1-based recipe number, falling back to
// the selection.
func (a *cliApp) recipeIndex(payload string) (int, bool) {
	if idx, _, ok := conversation.SplitIndex(payload); ok {
		return idx, true
	}
	idx := a.engine.SelectedIndex()
	if idx < 0 {
		a.fail(domain.ErrNoSelection)
		return -1, false
	}
	return idx, true
}

// ── Recipes ──────────────────────────────────────────────────────

func (a *cliApp) showRecipes() {
	a.ui.PrintLines(display.RenderList(a.engine.Items(), a.engine.SelectedIndex()))
}

func (a *cliApp) selectRecipe(payload string) {
	idx, _, ok := conversation.SplitIndex(payload)
	if !ok {
		a.ui.PrintChat(fmt.Sprintf("%q is not a recipe number.", payload))
		return
	}
	r, err := a.engine.Select(idx)
	if err != nil {
		a.ui.PrintChat(fmt.Sprintf("There is no recipe %s. You have %d.", payload, a.engine.Len()))
		return
	}
	a.ui.PrintLines(display.RenderRecipe(r))
}

func (a *cliApp) showRecipe(payload string) {
	if payload != "" {
		a.selectRecipe(payload)
		return
	}
	if _, r := a.selectedRecipe(); r != nil {
		a.ui.PrintLines(display.RenderRecipe(r))
	}
}

func (a *cliApp) deleteRecipe(ctx context.Context, payload string) {
	idx, ok := a.recipeIndex(payload)
	if !ok {
		return
	}
	removed, err := a.engine.DeleteRecipe(ctx, idx)
	if err != nil {
		a.fail(err)
		return
	}
	a.ui.PrintChat(fmt.Sprintf("Deleted %q.", removed.Name))
	a.showRecipes()
}

func (a *cliApp) moveRecipe(ctx context.Context, action, payload string) {
	dir, err := listedit.ParseDirection(action)
	if err != nil {
		a.fail(err)
		return
	}
	idx, ok := a.recipeIndex(payload)
	if !ok {
		return
	}
	if _, err := a.engine.MoveRecipe(ctx, idx, dir); err != nil {
		a.fail(err)
		return
	}
	a.showRecipes()
}

func (a *cliApp) importRecipe(ctx context.Context, path string) {
	idx, err := a.engine.ImportRecipe(ctx, path)
	if err != nil {
		a.fail(err)
		return
	}
	_, r, _ := a.engine.Selected()
	a.notifier.Notify(ctx, fmt.Sprintf("Imported %q as recipe %d.", r.Name, idx+1))
	a.refreshStatus()
}

func (a *cliApp) exportRecipe(ctx context.Context, payload string) {
	idx := a.engine.SelectedIndex()
	path := payload
	if i, rest, ok := conversation.SplitIndex(payload); ok {
		idx, path = i, rest
	}
	if idx < 0 {
		a.fail(domain.ErrNoSelection)
		return
	}
	written, err := a.engine.ExportRecipe(ctx, idx, path)
	if err != nil {
		a.fail(err)
		return
	}
	a.notifier.Notify(ctx, "Exported to "+written)
}

func (a *cliApp) listFiles(ctx context.Context) {
	files, err := a.engine.ListFiles(ctx)
	if err != nil {
		a.fail(err)
		return
	}
	if len(files) == 0 {
		a.ui.PrintHint("No recipe files in the library.")
		return
	}
	a.ui.PrintHeading("Recipe files")
	for _, f := range files {
		a.ui.PrintText(f)
	}
	a.ui.PrintHint("Type 'import <file>' to load one.")
}

func (a *cliApp) shoppingList(ctx context.Context, payload string) {
	if payload == "" {
		a.ui.PrintChat("How many servings? e.g. 'shop 8'.")
		return
	}
	target, err := conversation.ParseQuantity(payload)
	if err != nil {
		a.fail(err)
		return
	}
	idx, r := a.selectedRecipe()
	if r == nil {
		return
	}
	items, err := a.engine.ShoppingList(ctx, idx, target)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidState) {
			a.ui.PrintUrgent(fmt.Sprintf("%q has no serving size, so it can't be scaled. Set one with 'edit'.", r.Name))
			return
		}
		a.fail(err)
		return
	}
	a.ui.PrintLines(display.RenderShopping(r, target, items))
}

func (a *cliApp) search(ctx context.Context, query string) {
	hits := a.engine.Search(ctx, query)
	if len(hits) == 0 {
		a.ui.PrintChat(fmt.Sprintf("Nothing matches %q.", query))
		return
	}
	items := a.engine.Items()
	a.ui.PrintHeading(fmt.Sprintf("%d match(es) for %q", len(hits), query))
	for _, i := range hits {
		a.ui.PrintText(fmt.Sprintf("%d. %s", i+1, items[i].Main))
		a.ui.PrintHint("   " + items[i].Sub)
	}
}

// selectedRecipe returns the selection or prints why there is none.
func (a *cliApp) selectedRecipe() (int, *domain.Recipe) {
	idx, r, err := a.engine.Selected()
	if err != nil {
		a.fail(err)
		return -1, nil
	}
	return idx, r
}

func (a *cliApp) quit() {
	if a.form != nil {
		a.ui.PrintHint("Unsaved form discarded.")
		a.form = nil
		a.confirm = false
	}
	a.ui.PrintChat("Bye!")
	a.ui.Quit()
}

func (a *cliApp) showHelp() {
	a.ui.PrintHeading("Recipes:")
	a.ui.PrintText("list                  Show all recipes")
	a.ui.PrintText("1, 2, 3...            Select a recipe by number")
	a.ui.PrintText("show [N]              Show a recipe")
	a.ui.PrintText("new [name]            Add a recipe")
	a.ui.PrintText("edit [N]              Edit name, course and serving size")
	a.ui.PrintText("delete [N]            Delete a recipe")
	a.ui.PrintText("move up|down [N]      Reorder the list")
	a.ui.PrintText("find <text>           Search names, courses and ingredients")
	a.ui.PrintText("shop <servings>       Shopping list scaled to a serving size")
	a.ui.PrintHeading("Files:")
	a.ui.PrintText("import <file>         Load a .rcpe file")
	a.ui.PrintText("export [N] [file]     Save a recipe as .rcpe")
	a.ui.PrintText("files                 List recipe files in the library")
	a.ui.PrintHeading("Ingredients and steps (on the selected recipe):")
	a.ui.PrintText("ing add Salt 2 tsp    Add an ingredient")
	a.ui.PrintText("ing edit N [fields]   Edit an ingredient")
	a.ui.PrintText("ing del|up|down N     Delete or reorder")
	a.ui.PrintText("step add <text>       Add an instruction")
	a.ui.PrintText("step edit N [text]    Edit an instruction")
	a.ui.PrintText("step del|up|down N    Delete or reorder")
	a.ui.PrintText("img add <path>        Attach an image file")
	a.ui.PrintText("img next|prev|del     Browse or remove images")
	a.ui.PrintHeading("Forms:")
	a.ui.PrintText("name|course|serves <value>, qty|unit <value>, text <value>")
	a.ui.PrintText("save / cancel         Submit or drop the form")
	a.ui.PrintText("back / discard        Answer a missing-information prompt")
	a.ui.PrintText("help / quit")
}
