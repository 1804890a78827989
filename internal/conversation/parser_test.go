package conversation

import (
	"context"
	"testing"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/logger"
)

func TestKeywordParserBrowse(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	parser := NewKeywordParser(log)
	ctx := context.Background()

	tests := []struct {
		input       string
		wantType    domain.IntentType
		wantAction  string
		wantPayload string
	}{
		// List
		{"list", domain.IntentListRecipes, "", ""},
		{"recipes", domain.IntentListRecipes, "", ""},

		// Select by number
		{"1", domain.IntentSelectRecipe, "", "1"},
		{"99", domain.IntentSelectRecipe, "", "99"},
		{"select 2", domain.IntentSelectRecipe, "", "2"},

		// Recipes
		{"new", domain.IntentNewRecipe, "", ""},
		{"add Soup", domain.IntentNewRecipe, "", "Soup"},
		{"edit", domain.IntentEditRecipe, "", ""},
		{"delete 3", domain.IntentDeleteRecipe, "", "3"},
		{"move up", domain.IntentMoveRecipe, "up", ""},
		{"move d 2", domain.IntentMoveRecipe, "down", "2"},
		{"show", domain.IntentShowRecipe, "", ""},

		// Files
		{"import soup.rcpe", domain.IntentImport, "", "soup.rcpe"},
		{"export", domain.IntentExport, "", ""},
		{"export dinner/soup", domain.IntentExport, "", "dinner/soup"},
		{"files", domain.IntentListFiles, "", ""},

		// Shopping
		{"shop 8", domain.IntentShoppingList, "", "8"},

		// Ingredients
		{"ing add Salt 2 tsp", domain.IntentIngredient, "add", "Salt 2 tsp"},
		{"ingredient edit 2 3", domain.IntentIngredient, "edit", "2 3"},
		{"ing delete 1", domain.IntentIngredient, "del", "1"},
		{"ing down 1", domain.IntentIngredient, "down", "1"},

		// Instructions
		{"step add Boil water", domain.IntentInstruction, "add", "Boil water"},
		{"step up 2", domain.IntentInstruction, "up", "2"},
		{"steps rm 1", domain.IntentInstruction, "del", "1"},

		// Images
		{"img add photos/soup.png", domain.IntentImage, "add", "photos/soup.png"},
		{"image next", domain.IntentImage, "next", ""},
		{"gallery", domain.IntentImage, "", ""},

		// Misc
		{"find soup", domain.IntentSearch, "", "soup"},
		{"help", domain.IntentHelp, "", ""},
		{"?", domain.IntentHelp, "", ""},
		{"quit", domain.IntentQuit, "", ""},
		{"q", domain.IntentQuit, "", ""},

		// Unknown
		{"flambé the cat", domain.IntentUnknown, "", "flambé the cat"},
		{"", domain.IntentUnknown, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			intent, err := parser.Parse(ctx, tt.input, domain.ModeBrowse)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if intent.Type != tt.wantType {
				t.Errorf("input=%q: got type %s, want %s", tt.input, intent.Type, tt.wantType)
			}
			if intent.Action != tt.wantAction {
				t.Errorf("input=%q: got action %q, want %q", tt.input, intent.Action, tt.wantAction)
			}
			if intent.Payload != tt.wantPayload {
				t.Errorf("input=%q: got payload %q, want %q", tt.input, intent.Payload, tt.wantPayload)
			}
		})
	}
}

func TestKeywordParserModes(t *testing.T) {
	parser := NewKeywordParser(logger.New(logger.LevelOff, nil))
	ctx := context.Background()

	tests := []struct {
		mode        domain.InputMode
		input       string
		wantType    domain.IntentType
		wantAction  string
		wantPayload string
	}{
		{domain.ModeForm, "name Tomato Soup", domain.IntentSetField, "name", "Tomato Soup"},
		{domain.ModeForm, "course main", domain.IntentSetField, "course", "main"},
		{domain.ModeForm, "servings 4", domain.IntentSetField, "serves", "4"},
		{domain.ModeForm, "qty 2", domain.IntentSetField, "quantity", "2"},
		{domain.ModeForm, "unit", domain.IntentSetField, "unit", ""},
		{domain.ModeForm, "save", domain.IntentSave, "", ""},
		{domain.ModeForm, "cancel", domain.IntentCancel, "", ""},
		{domain.ModeForm, "list", domain.IntentUnknown, "", "list"},
		{domain.ModeConfirm, "back", domain.IntentGoBack, "", ""},
		{domain.ModeConfirm, "go back", domain.IntentGoBack, "", ""},
		{domain.ModeConfirm, "discard", domain.IntentDiscard, "", ""},
		{domain.ModeConfirm, "d", domain.IntentDiscard, "", ""},
		{domain.ModeConfirm, "save", domain.IntentUnknown, "", "save"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			intent, err := parser.Parse(ctx, tt.input, tt.mode)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if intent.Type != tt.wantType || intent.Action != tt.wantAction || intent.Payload != tt.wantPayload {
				t.Errorf("input=%q: got %s/%q/%q, want %s/%q/%q", tt.input,
					intent.Type, intent.Action, intent.Payload, tt.wantType, tt.wantAction, tt.wantPayload)
			}
		})
	}
}

func TestParseIngredient(t *testing.T) {
	tests := []struct {
		in   string
		want IngredientArgs
	}{
		{"Salt 2 tsp", IngredientArgs{Name: "Salt", Quantity: 2, HasQuantity: true, Unit: "tsp"}},
		{"Olive oil 1/2 cup", IngredientArgs{Name: "Olive oil", Quantity: 0.5, HasQuantity: true, Unit: "cup"}},
		{"Stock 0,6 litres", IngredientArgs{Name: "Stock", Quantity: 0.6, HasQuantity: true, Unit: "litres"}},
		{"3", IngredientArgs{Quantity: 3, HasQuantity: true}},
		{"Pepper", IngredientArgs{Name: "Pepper"}},
		{"", IngredientArgs{}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseIngredient(tt.in); got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestIngredientArgsApply(t *testing.T) {
	cur := domain.Ingredient{Name: "Salt", Quantity: 2, Unit: "tsp"}
	got := ParseIngredient("3").Apply(cur)
	want := domain.Ingredient{Name: "Salt", Quantity: 3, Unit: "tsp"}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	if !ParseIngredient("  ").Empty() {
		t.Fatal("blank input should be empty")
	}
}

func TestSplitIndex(t *testing.T) {
	tests := []struct {
		in       string
		wantIdx  int
		wantRest string
		wantOK   bool
	}{
		{"2 Salt 3 tsp", 1, "Salt 3 tsp", true},
		{"1", 0, "", true},
		{"Salt", -1, "Salt", false},
		{"", -1, "", false},
	}
	for _, tt := range tests {
		idx, rest, ok := SplitIndex(tt.in)
		if idx != tt.wantIdx || rest != tt.wantRest || ok != tt.wantOK {
			t.Errorf("SplitIndex(%q) = %d, %q, %v", tt.in, idx, rest, ok)
		}
	}
}

func TestParseQuantity(t *testing.T) {
	if _, err := ParseQuantity("-1"); err == nil {
		t.Fatal("negative quantity should fail")
	}
	if _, err := ParseQuantity("1/0"); err == nil {
		t.Fatal("zero denominator should fail")
	}
	if q, err := ParseQuantity("1.25"); err != nil || q != 1.25 {
		t.Fatalf("got %v (%v)", q, err)
	}
}
