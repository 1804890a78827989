package editor

import (
	"fmt"

	"github.com/hammamikhairi/recipebox/internal/domain"
)

// ImageGallery browses and edits a recipe's image references with a cursor
// on the image currently shown. It operates directly on the recipe's slice.
type ImageGallery struct {
	recipe   *domain.Recipe
	selected int
}

// NewImageGallery opens the gallery on the first image of r.
func NewImageGallery(r *domain.Recipe) *ImageGallery {
	return &ImageGallery{recipe: r}
}

// Len returns the number of images.
func (g *ImageGallery) Len() int { return len(g.recipe.Images) }

// Selected returns the cursor position, or -1 when there are no images.
func (g *ImageGallery) Selected() int {
	if g.Len() == 0 {
		return -1
	}
	return g.selected
}

// Current returns the path under the cursor.
func (g *ImageGallery) Current() (string, bool) {
	if g.Len() == 0 {
		return "", false
	}
	return g.recipe.Images[g.selected], true
}

// Add appends an image reference and selects it. Only paths with an image
// suffix are accepted; the file itself is neither read nor copied.
func (g *ImageGallery) Add(path string) error {
	if !domain.IsImagePath(path) {
		return fmt.Errorf("%w: %q is not a png, jpg, jpeg, gif or bmp file", domain.ErrValidation, path)
	}
	g.recipe.Images = append(g.recipe.Images, path)
	g.selected = len(g.recipe.Images) - 1
	return nil
}

// Delete removes the selected image and returns its path. The cursor stays
// in place unless it fell off the end.
func (g *ImageGallery) Delete() (string, error) {
	if g.Len() == 0 {
		return "", fmt.Errorf("%w: no images to delete", domain.ErrIndexOutOfRange)
	}
	removed := g.recipe.Images[g.selected]
	g.recipe.Images = append(g.recipe.Images[:g.selected], g.recipe.Images[g.selected+1:]...)
	if g.selected >= len(g.recipe.Images) {
		g.selected = len(g.recipe.Images) - 1
	}
	if g.selected < 0 {
		g.selected = 0
	}
	return removed, nil
}

// Next moves to the following image. It reports false at the end.
func (g *ImageGallery) Next() bool {
	if !g.CanNext() {
		return false
	}
	g.selected++
	return true
}

// Prev moves to the preceding image. It reports false at the start.
func (g *ImageGallery) Prev() bool {
	if !g.CanPrev() {
		return false
	}
	g.selected--
	return true
}

func (g *ImageGallery) CanNext() bool   { return g.Len() > 1 && g.selected < g.Len()-1 }
func (g *ImageGallery) CanPrev() bool   { return g.Len() > 1 && g.selected > 0 }
func (g *ImageGallery) CanDelete() bool { return g.Len() > 0 }
