package domain

import (
	"errors"
	"strings"
)

// Sentinel errors used across layers.
var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("missing information")
	ErrParse           = errors.New("malformed recipe file")
	ErrSchema          = errors.New("incomplete recipe file")
	ErrInvalidState    = errors.New("invalid state")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrRejected        = errors.New("recipe rejected")
	ErrNoSelection     = errors.New("no recipe selected")
)

// FormKind names the editor a validation failure came from.
type FormKind string

const (
	FormRecipe      FormKind = "recipe"
	FormIngredient  FormKind = "ingredient"
	FormInstruction FormKind = "instruction"
)

// ValidationError reports required fields that were left empty or zero at
// submit time. It matches ErrValidation with errors.Is.
type ValidationError struct {
	Kind   FormKind
	Fields []string
}

func (e *ValidationError) Error() string {
	if e.Kind == FormInstruction {
		return "you did not input an instruction"
	}
	msg := "your " + string(e.Kind) + " has missing information"
	if len(e.Fields) > 0 {
		msg += " (" + strings.Join(e.Fields, ", ") + ")"
	}
	return msg
}

// Is lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
