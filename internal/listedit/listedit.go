// Package listedit implements the positional edit operations shared by the
// ingredient and instruction editors: add, edit, delete and move over an
// ordered slice, addressed by 0-based index.
//
// Operations never panic on a bad index. They return
// domain.ErrIndexOutOfRange and leave the slice untouched, so a stale
// selection in the front end can't take the session down.
package listedit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hammamikhairi/recipebox/internal/domain"
)

// Direction is the way Move shifts an element.
type Direction int

const (
	Up Direction = iota
	Down
)

// String returns "up" or "down".
func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// ParseDirection accepts "up"/"u" and "down"/"d", case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	default:
		return Up, fmt.Errorf("unknown direction %q", s)
	}
}

func checkIndex(n, i int) error {
	if i < 0 || i >= n {
		if n == 0 {
			return fmt.Errorf("%w: %d (list is empty)", domain.ErrIndexOutOfRange, i)
		}
		return fmt.Errorf("%w: %d (valid 0-%d)", domain.ErrIndexOutOfRange, i, n-1)
	}
	return nil
}

// Add appends item to the end of s.
func Add[T any](s []T, item T) []T {
	return append(s, item)
}

// Edit replaces the element at i.
func Edit[T any](s []T, i int, item T) ([]T, error) {
	if err := checkIndex(len(s), i); err != nil {
		return s, err
	}
	s[i] = item
	return s, nil
}

// Delete removes the element at i; later elements shift down by one.
func Delete[T any](s []T, i int) ([]T, error) {
	if err := checkIndex(len(s), i); err != nil {
		return s, err
	}
	return append(s[:i], s[i+1:]...), nil
}

// Move swaps the element at i with its neighbour in dir. Moving the first
// element up or the last element down is a no-op.
func Move[T any](s []T, i int, dir Direction) ([]T, error) {
	if err := checkIndex(len(s), i); err != nil {
		return s, err
	}
	j := i - 1
	if dir == Down {
		j = i + 1
	}
	if j < 0 || j > len(s)-1 {
		return s, nil
	}
	s[i], s[j] = s[j], s[i]
	return s, nil
}

// Numbered renders steps with a 1-based ordinal derived from position:
// "1. Boil water".
func Numbered(steps []string) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = strconv.Itoa(i+1) + ". " + s
	}
	return out
}

// IngredientLines renders ingredients as "1. Salt: 2 tsp".
func IngredientLines(ings []domain.Ingredient) []string {
	out := make([]string, len(ings))
	for i, ing := range ings {
		out[i] = strconv.Itoa(i+1) + ". " + ing.String()
	}
	return out
}

// ParseOrdinal converts a 1-based position typed by the user into a 0-based
// index. It does not check bounds; the edit operations do.
func ParseOrdinal(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return -1, fmt.Errorf("%q is not a position", s)
	}
	return n - 1, nil
}
