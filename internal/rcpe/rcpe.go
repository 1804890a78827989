// Package rcpe encodes and decodes the .rcpe recipe file format.
//
// A .rcpe file is a single UTF-8 JSON object:
//
//	{
//	    "name": "Soup",
//	    "course": "Main",
//	    "serving_size": 4,
//	    "ingredients": [{"name": "Salt", "quantity": 2, "unit": "tsp"}],
//	    "instructions": ["Boil water", "Add salt"]
//	}
//
// Image references are session-local and are not written. Early files used a
// positional array of single-key objects; [Decode] still reads that shape and
// converts it, but [Encode] only ever writes the object form.
package rcpe

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/hammamikhairi/recipebox/internal/domain"
)

// Extension is the default suffix for recipe files.
const Extension = ".rcpe"

// FilterLabel describes the file type in pickers and help text.
const FilterLabel = "Recipe File (*.rcpe)"

// Format identifies the on-disk shape of a recipe file.
type Format int

const (
	FormatUnknown Format = iota
	FormatCanonical
	FormatLegacy
)

// String returns a human-readable format name.
func (f Format) String() string {
	switch f {
	case FormatCanonical:
		return "canonical"
	case FormatLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

type fileIngredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type fileRecipe struct {
	Name         string           `json:"name"`
	Course       string           `json:"course"`
	ServingSize  float64          `json:"serving_size"`
	Ingredients  []fileIngredient `json:"ingredients"`
	Instructions []string         `json:"instructions"`
}

// Encode renders r in the canonical object format.
func Encode(r *domain.Recipe) ([]byte, error) {
	out := fileRecipe{
		Name:         r.Name,
		Course:       r.Course,
		ServingSize:  r.ServingSize,
		Ingredients:  make([]fileIngredient, 0, len(r.Ingredients)),
		Instructions: append([]string{}, r.Instructions...),
	}
	for _, ing := range r.Ingredients {
		out.Ingredients = append(out.Ingredients, fileIngredient(ing))
	}

	data, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("encoding recipe %q: %w", r.Name, err)
	}
	return append(data, '\n'), nil
}

// DetectFormat inspects the first significant byte of data.
func DetectFormat(data []byte) Format {
	trimmed := bytes.TrimSpace(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")))
	if len(trimmed) == 0 {
		return FormatUnknown
	}
	switch trimmed[0] {
	case '{':
		return FormatCanonical
	case '[':
		return FormatLegacy
	default:
		return FormatUnknown
	}
}

// Decode parses a recipe file. It returns a new Recipe and never a partially
// filled one: malformed JSON fails with domain.ErrParse, and JSON missing a
// required key or holding a value of the wrong type fails with
// domain.ErrSchema.
func Decode(data []byte) (*domain.Recipe, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if !json.Valid(data) {
		var probe any
		err := json.Unmarshal(data, &probe)
		return nil, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}

	switch DetectFormat(data) {
	case FormatCanonical:
		var obj fields
		if err := json.Unmarshal(data, &obj); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrParse, err)
		}
		return decodeObject(obj)
	case FormatLegacy:
		return decodeLegacy(data)
	default:
		return nil, fmt.Errorf("%w: top-level value must be an object", domain.ErrSchema)
	}
}

// fields is a JSON object with its values left undecoded.
type fields map[string]json.RawMessage

// get decodes the value at key into dst. Missing keys, nulls and type
// mismatches are all schema errors naming the full key path.
func (f fields) get(key, path string, dst any) error {
	raw, ok := f[key]
	if !ok {
		return schemaError(path+key, "is missing")
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return schemaError(path+key, "is null")
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return schemaError(path+key, "has the wrong type")
	}
	return nil
}

func schemaError(key, problem string) error {
	return fmt.Errorf("%w: key %q %s", domain.ErrSchema, key, problem)
}

func decodeObject(obj fields) (*domain.Recipe, error) {
	r := domain.NewRecipe()

	if err := obj.get("name", "", &r.Name); err != nil {
		return nil, err
	}
	if err := obj.get("course", "", &r.Course); err != nil {
		return nil, err
	}
	if err := obj.get("serving_size", "", &r.ServingSize); err != nil {
		return nil, err
	}

	var rawIngredients []json.RawMessage
	if err := obj.get("ingredients", "", &rawIngredients); err != nil {
		return nil, err
	}
	for i, raw := range rawIngredients {
		ing, err := decodeIngredient(raw, fmt.Sprintf("ingredients[%d].", i))
		if err != nil {
			return nil, err
		}
		r.Ingredients = append(r.Ingredients, ing)
	}

	if err := obj.get("instructions", "", &r.Instructions); err != nil {
		return nil, err
	}
	if r.Instructions == nil {
		r.Instructions = []string{}
	}
	return r, nil
}

func decodeIngredient(raw json.RawMessage, path string) (domain.Ingredient, error) {
	var ing domain.Ingredient

	var obj fields
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		// Legacy files may hold an ingredient as an array, either of
		// single-key objects or of bare [name, quantity, unit] values.
		merged, ok := legacyIngredient(raw)
		if !ok {
			return ing, schemaError(path[:len(path)-1], "is not an ingredient")
		}
		obj = merged
	}

	if err := obj.get("name", path, &ing.Name); err != nil {
		return ing, err
	}
	if err := obj.get("quantity", path, &ing.Quantity); err != nil {
		return ing, err
	}
	if err := obj.get("unit", path, &ing.Unit); err != nil {
		return ing, err
	}
	return ing, nil
}
