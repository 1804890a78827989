// Package domain defines the core types and interfaces for the recipe box.
// All other packages depend on domain; domain depends on nothing but the
// standard library and x/text.
package domain

import (
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Defaults applied to a freshly created recipe.
const (
	DefaultName   = "noname"
	DefaultCourse = CourseNone
)

// Course values offered by the front end. The course is stored as free
// text, so a decoded recipe may carry anything.
const (
	CourseAppetizer = "Appetizer"
	CourseMain      = "Main"
	CourseDessert   = "Dessert"
	CourseNone      = "none"
)

// Courses returns the closed set of courses the editors offer.
func Courses() []string {
	return []string{CourseAppetizer, CourseMain, CourseDessert}
}

var courseCaser = cases.Title(language.English)

// NormalizeCourse maps user input like "main" or "DESSERT" onto the
// canonical course spelling. Unknown text is returned trimmed but otherwise
// untouched.
func NormalizeCourse(s string) string {
	s = strings.TrimSpace(s)
	titled := courseCaser.String(s)
	for _, c := range Courses() {
		if c == titled {
			return c
		}
	}
	return s
}

// Recipe is the primary entity. Ingredients and Instructions are ordered;
// an element's identity is its position.
type Recipe struct {
	Name         string
	Course       string
	ServingSize  float64
	Ingredients  []Ingredient
	Instructions []string
	Images       []string // paths to files on disk, never copied
}

// NewRecipe returns a recipe holding the default values.
func NewRecipe() *Recipe {
	return &Recipe{
		Name:         DefaultName,
		Course:       DefaultCourse,
		Ingredients:  []Ingredient{},
		Instructions: []string{},
		Images:       []string{},
	}
}

// Complete reports whether the recipe may be submitted from an editor:
// a non-empty name and a non-zero serving size.
func (r *Recipe) Complete() bool {
	return r.Name != "" && r.ServingSize != 0
}

// Unnamed reports whether the recipe still has the empty or default name.
func (r *Recipe) Unnamed() bool {
	return r.Name == "" || r.Name == DefaultName
}

// Summary is the one-line sub text shown under the name in recipe lists.
func (r *Recipe) Summary() string {
	return r.Course + ", serves " + FormatQuantity(r.ServingSize)
}

// Clone returns a deep copy of the recipe.
func (r *Recipe) Clone() *Recipe {
	c := *r
	c.Ingredients = append([]Ingredient{}, r.Ingredients...)
	c.Instructions = append([]string{}, r.Instructions...)
	c.Images = append([]string{}, r.Images...)
	return &c
}

// Ingredient is a single line of a recipe's ingredient list.
type Ingredient struct {
	Name     string
	Quantity float64
	Unit     string // "tsp", "cups", "grams", ...
}

// Valid reports whether every field is filled in.
func (i Ingredient) Valid() bool {
	return i.Name != "" && i.Quantity != 0 && i.Unit != ""
}

// String renders the ingredient as "Salt: 2 tsp".
func (i Ingredient) String() string {
	return i.Name + ": " + FormatQuantity(i.Quantity) + " " + i.Unit
}

// FormatQuantity prints a quantity without trailing zeros, so 2 is "2"
// and 0.25 is "0.25".
func FormatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// imageExts are the suffixes accepted as recipe images. Content is never
// inspected.
var imageExts = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp"}

// IsImagePath reports whether path has an accepted image suffix.
func IsImagePath(path string) bool {
	if path == "" {
		return false
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range imageExts {
		if ext == e {
			return true
		}
	}
	return false
}
