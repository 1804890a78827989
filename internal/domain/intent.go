package domain

// IntentType classifies what the user wants to do.
type IntentType int

const (
	IntentUnknown IntentType = iota
	IntentListRecipes
	IntentSelectRecipe
	IntentShowRecipe
	IntentNewRecipe
	IntentEditRecipe
	IntentDeleteRecipe
	IntentMoveRecipe
	IntentImport
	IntentExport
	IntentListFiles
	IntentShoppingList
	IntentIngredient  // ingredient list editor; Action is add/edit/del/up/down
	IntentInstruction // instruction list editor; Action is add/edit/del/up/down
	IntentImage       // image gallery; Action is add/del/next/prev/show
	IntentSetField    // inside a recipe form; Action is the field name
	IntentSave
	IntentCancel
	IntentGoBack  // answer to a validation prompt: keep editing
	IntentDiscard // answer to a validation prompt: drop the edit
	IntentSearch
	IntentHelp
	IntentQuit
)

// String returns a human-readable intent type.
func (i IntentType) String() string {
	for name, t := range intentNames {
		if t == i {
			return name
		}
	}
	return "unknown"
}

// Intent represents a parsed user action.
type Intent struct {
	Type    IntentType
	Action  string // sub-command, e.g. "add" for IntentIngredient
	Payload string // remaining arguments
}

// InputMode tells the parser what the front end is waiting for.
type InputMode int

const (
	// ModeBrowse is the top-level recipe list.
	ModeBrowse InputMode = iota
	// ModeForm means a recipe form is open and field commands apply.
	ModeForm
	// ModeConfirm means a validation prompt awaits back/discard.
	ModeConfirm
)

// intentNames maps snake_case names to IntentType values.
var intentNames = map[string]IntentType{
	"list_recipes":  IntentListRecipes,
	"select_recipe": IntentSelectRecipe,
	"show_recipe":   IntentShowRecipe,
	"new_recipe":    IntentNewRecipe,
	"edit_recipe":   IntentEditRecipe,
	"delete_recipe": IntentDeleteRecipe,
	"move_recipe":   IntentMoveRecipe,
	"import":        IntentImport,
	"export":        IntentExport,
	"list_files":    IntentListFiles,
	"shopping_list": IntentShoppingList,
	"ingredient":    IntentIngredient,
	"instruction":   IntentInstruction,
	"image":         IntentImage,
	"set_field":     IntentSetField,
	"save":          IntentSave,
	"cancel":        IntentCancel,
	"go_back":       IntentGoBack,
	"discard":       IntentDiscard,
	"search":        IntentSearch,
	"help":          IntentHelp,
	"quit":          IntentQuit,
	"unknown":       IntentUnknown,
}

// IntentFromString converts a snake_case intent name to an IntentType.
// Returns IntentUnknown for unrecognized names.
func IntentFromString(name string) IntentType {
	if t, ok := intentNames[name]; ok {
		return t
	}
	return IntentUnknown
}
