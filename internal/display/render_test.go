package display

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/recipe"
	"github.com/hammamikhairi/recipebox/internal/shopping"
)

func joined(lines []string) string { return strings.Join(lines, "\n") }

func TestRenderRecipe(t *testing.T) {
	r := &domain.Recipe{
		Name:         "Soup",
		Course:       domain.CourseMain,
		ServingSize:  4,
		Ingredients:  []domain.Ingredient{{Name: "Salt", Quantity: 2, Unit: "tsp"}},
		Instructions: []string{"Add salt", "Boil water"},
		Images:       []string{"soup.png"},
	}
	out := joined(RenderRecipe(r))
	for _, want := range []string{"Soup", "Main, serves 4", "1. Salt: 2 tsp", "1. Add salt", "2. Boil water", "soup.png"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}

	empty := joined(RenderRecipe(domain.NewRecipe()))
	if !strings.Contains(empty, "(none)") || strings.Contains(empty, "Images") {
		t.Errorf("unexpected empty rendering:\n%s", empty)
	}
}

func TestRenderList(t *testing.T) {
	items := []recipe.DisplayItem{
		{Main: "Soup", Sub: "Main, serves 4"},
		{Main: "Mousse", Sub: "Dessert, serves 6"},
	}
	lines := RenderList(items, 1)
	if len(lines) != 5 {
		t.Fatalf("expected heading plus two lines per recipe, got %d", len(lines))
	}
	if !strings.Contains(lines[3], "2. Mousse") || !strings.Contains(lines[3], "▸") {
		t.Errorf("selected recipe should be marked: %q", lines[3])
	}
	if strings.Contains(lines[1], "▸") {
		t.Errorf("unselected recipe is marked: %q", lines[1])
	}
	if !strings.Contains(joined(RenderList(nil, -1)), "No recipes") {
		t.Error("empty list should show a hint")
	}
}

func TestRenderShopping(t *testing.T) {
	r := &domain.Recipe{Name: "Soup", ServingSize: 4}
	out := joined(RenderShopping(r, 8, []shopping.Item{{Name: "Salt", Quantity: 4, Unit: "tsp"}}))
	if !strings.Contains(out, "Soup for 8") || !strings.Contains(out, "Salt - (4 tsp)") {
		t.Errorf("unexpected shopping list:\n%s", out)
	}
}

func TestRenderGallery(t *testing.T) {
	out := RenderGallery([]string{"a.png", "b.png"}, 1)
	if !strings.Contains(out[0], "2/2") || !strings.Contains(out[2], "▸") {
		t.Errorf("unexpected gallery:\n%s", joined(out))
	}
}

func TestRenderBar(t *testing.T) {
	bar := renderBar(Status{Recipe: "Soup", Form: "Edit Soup", Confirm: true}, 80)
	for _, want := range []string{"Soup", "Edit Soup", "back or discard?"} {
		if !strings.Contains(bar, want) {
			t.Errorf("bar missing %q: %q", want, bar)
		}
	}
	if titleStr(Status{Recipe: "Soup"}) != "Recipe Box - Soup" {
		t.Errorf("unexpected title %q", titleStr(Status{Recipe: "Soup"}))
	}
}

func TestRenderBanner(t *testing.T) {
	out := RenderBanner(120)
	if !strings.Contains(out, tagline) {
		t.Fatalf("banner missing tagline:\n%s", out)
	}
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if w := lipgloss.Width(line); w > 120 {
			t.Errorf("line wider than 120 columns (%d): %q", w, line)
		}
	}

	narrow := RenderBanner(10)
	if !strings.Contains(narrow, tagline) {
		t.Fatal("narrow banner should still render")
	}
}
