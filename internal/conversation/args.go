package conversation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/listedit"
)

// ParseQuantity reads a quantity typed by the user: "2", "0.5", "1,5" or a
// simple fraction like "1/2". Negative values are rejected.
func ParseQuantity(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("quantity can't be negative")
	}
	// Keeps words like "Nan" or "Inf" out of ParseFloat.
	if s == "" || !strings.ContainsRune("0123456789.", rune(s[0])) {
		return 0, fmt.Errorf("%q is not a quantity", s)
	}
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err1 := strconv.ParseFloat(num, 64)
		d, err2 := strconv.ParseFloat(den, 64)
		if err1 != nil || err2 != nil || d == 0 {
			return 0, fmt.Errorf("%q is not a quantity", s)
		}
		s = strconv.FormatFloat(n/d, 'f', -1, 64)
	}
	q, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a quantity", s)
	}
	return q, nil
}

// IngredientArgs is an ingredient typed on one line. Fields that were not
// given are left zero and flagged.
type IngredientArgs struct {
	Name        string
	Quantity    float64
	HasQuantity bool
	Unit        string
}

// ParseIngredient splits "Olive oil 2 tbsp" into name, quantity and unit:
// the words before the first number are the name, the number is the
// quantity and the rest is the unit.
func ParseIngredient(s string) IngredientArgs {
	words := strings.Fields(s)
	for i, w := range words {
		q, err := ParseQuantity(w)
		if err != nil {
			continue
		}
		return IngredientArgs{
			Name:        strings.Join(words[:i], " "),
			Quantity:    q,
			HasQuantity: true,
			Unit:        strings.Join(words[i+1:], " "),
		}
	}
	return IngredientArgs{Name: strings.Join(words, " ")}
}

// Apply writes the given fields over cur.
func (a IngredientArgs) Apply(cur domain.Ingredient) domain.Ingredient {
	if a.Name != "" {
		cur.Name = a.Name
	}
	if a.HasQuantity {
		cur.Quantity = a.Quantity
	}
	if a.Unit != "" {
		cur.Unit = a.Unit
	}
	return cur
}

// Empty reports whether no field was given.
func (a IngredientArgs) Empty() bool {
	return a.Name == "" && !a.HasQuantity && a.Unit == ""
}

// SplitIndex reads a leading 1-based position from payload and returns the
// 0-based index and the remaining text. ok is false when payload does not
// start with a number.
func SplitIndex(payload string) (idx int, rest string, ok bool) {
	first, rest, _ := strings.Cut(strings.TrimSpace(payload), " ")
	if !isDigits(first) {
		return -1, strings.TrimSpace(payload), false
	}
	idx, err := listedit.ParseOrdinal(first)
	if err != nil {
		return -1, strings.TrimSpace(payload), false
	}
	return idx, strings.TrimSpace(rest), true
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}
