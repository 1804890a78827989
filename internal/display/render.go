package display

import (
	"strconv"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/listedit"
	"github.com/hammamikhairi/recipebox/internal/recipe"
	"github.com/hammamikhairi/recipebox/internal/shopping"
)

// RenderList renders the recipe list, two lines per recipe, marking the
// selected one.
func RenderList(items []recipe.DisplayItem, selected int) []string {
	if len(items) == 0 {
		return []string{secondaryStyle.Render("  No recipes yet. Type 'new' or 'import <file>'.")}
	}
	lines := make([]string, 0, len(items)*2+1)
	lines = append(lines, headingStyle.Render("  Recipes"))
	for i, it := range items {
		marker, style := "   ", primaryStyle
		if i == selected {
			marker, style = " ▸ ", selectedStyle
		}
		lines = append(lines,
			marker+style.Render(strconv.Itoa(i+1)+". "+it.Main),
			"      "+secondaryStyle.Render(it.Sub),
		)
	}
	return lines
}

// RenderRecipe renders the detail panel of a recipe: heading, summary,
// numbered ingredients and instructions, and image references.
func RenderRecipe(r *domain.Recipe) []string {
	lines := []string{
		headingStyle.Render("  " + r.Name),
		secondaryStyle.Render("  " + r.Summary()),
		"",
		labelStyle.Render("  Ingredients"),
	}
	lines = append(lines, indent(listedit.IngredientLines(r.Ingredients), "(none)")...)
	lines = append(lines, "", labelStyle.Render("  Instructions"))
	lines = append(lines, indent(listedit.Numbered(r.Instructions), "(none)")...)
	if len(r.Images) > 0 {
		lines = append(lines, "", labelStyle.Render("  Images"))
		lines = append(lines, indent(listedit.Numbered(r.Images), "")...)
	}
	return lines
}

// RenderGallery renders the image list with the cursor on selected.
func RenderGallery(images []string, selected int) []string {
	if len(images) == 0 {
		return []string{secondaryStyle.Render("  No images. Type 'img add <path>'.")}
	}
	lines := make([]string, 0, len(images)+1)
	lines = append(lines, labelStyle.Render("  Images ("+strconv.Itoa(selected+1)+"/"+strconv.Itoa(len(images))+")"))
	for i, img := range images {
		if i == selected {
			lines = append(lines, " ▸ "+selectedStyle.Render(img))
			continue
		}
		lines = append(lines, "   "+primaryStyle.Render(img))
	}
	return lines
}

// RenderShopping renders a shopping list for r scaled to target servings.
func RenderShopping(r *domain.Recipe, target float64, items []shopping.Item) []string {
	lines := []string{
		headingStyle.Render("  Shopping list: " + r.Name + " for " + domain.FormatQuantity(target)),
	}
	return append(lines, indent(shopping.Lines(items), "(nothing to buy)")...)
}

func indent(lines []string, empty string) []string {
	if len(lines) == 0 {
		if empty == "" {
			return nil
		}
		return []string{secondaryStyle.Render("    " + empty)}
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = primaryStyle.Render("    " + l)
	}
	return out
}
