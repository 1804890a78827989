package rcpe

import (
	"encoding/json"
	"fmt"

	"github.com/hammamikhairi/recipebox/internal/domain"
)

// legacyKeys is the positional order of the old array format.
var legacyKeys = []string{"name", "course", "serving_size", "ingredients", "instructions"}

// decodeLegacy reads the early array format:
//
//	[{"name": ...}, {"course": ...}, {"serving_size": ...},
//	 {"ingredients": [[{"name": ...}, {"quantity": ...}, {"unit": ...}], ...]},
//	 {"instructions": [...]}]
//
// Its single-key objects are merged into one object and decoded like the
// canonical form.
func decodeLegacy(data []byte) (*domain.Recipe, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}

	merged := make(fields, len(legacyKeys))
	for i, raw := range parts {
		var part fields
		if err := json.Unmarshal(raw, &part); err != nil {
			return nil, schemaError(fmt.Sprintf("[%d]", i), "is not an object")
		}
		for k, v := range part {
			merged[k] = v
		}
	}
	return decodeObject(merged)
}

// legacyIngredient converts an array-shaped ingredient into fields. Both
// [{"name": ..}, {"quantity": ..}, {"unit": ..}] and ["Salt", 2, "tsp"]
// are accepted.
func legacyIngredient(raw json.RawMessage) (fields, bool) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}

	merged := make(fields, 3)
	positional := true
	for _, item := range items {
		var part fields
		if err := json.Unmarshal(item, &part); err == nil && part != nil {
			positional = false
			for k, v := range part {
				merged[k] = v
			}
		}
	}
	if !positional {
		return merged, true
	}

	if len(items) != 3 {
		return nil, false
	}
	merged["name"] = items[0]
	merged["quantity"] = items[1]
	merged["unit"] = items[2]
	return merged, true
}

// Migrate decodes data in either format and re-encodes it canonically. The
// returned Format is the shape the input was in.
func Migrate(data []byte) ([]byte, Format, error) {
	format := DetectFormat(data)
	r, err := Decode(data)
	if err != nil {
		return nil, format, err
	}
	out, err := Encode(r)
	if err != nil {
		return nil, format, err
	}
	return out, format, nil
}
