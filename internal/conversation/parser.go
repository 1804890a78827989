// Package conversation provides command parsing and user notification for
// the interactive front end.
package conversation

import (
	"context"
	"regexp"
	"strings"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/logger"
)

// Compile-time interface check.
var _ domain.IntentParser = (*KeywordParser)(nil)

// KeywordParser matches user input to intents using keywords and simple
// patterns. Which patterns apply depends on the input mode.
type KeywordParser struct {
	log     *logger.Logger
	browse  []patternRule
	form    []patternRule
	confirm []patternRule
}

// patternRule maps a regex to an intent. Named groups "action" and
// "payload" are copied into the intent when present.
type patternRule struct {
	regex  *regexp.Regexp
	intent domain.IntentType
}

func rule(pattern string, intent domain.IntentType) patternRule {
	return patternRule{regex: regexp.MustCompile(`(?i)^` + pattern + `$`), intent: intent}
}

const (
	listActions  = `(?P<action>add|new|\+|edit|set|change|del|delete|rm|remove|-|up|u|down|d)`
	imageActions = `(?P<action>add|new|\+|del|delete|rm|remove|-|next|n|prev|previous|p|show|list)`
	rest         = `(?:\s+(?P<payload>.*))?`
)

// NewKeywordParser creates a keyword-based intent parser.
func NewKeywordParser(log *logger.Logger) *KeywordParser {
	p := &KeywordParser{log: log}

	common := []patternRule{
		rule(`(help|h|\?)`, domain.IntentHelp),
		rule(`(quit|exit|q)`, domain.IntentQuit),
	}

	p.browse = append([]patternRule{
		rule(`(list|ls|recipes|browse)`, domain.IntentListRecipes),
		rule(`(?P<payload>\d{1,4})`, domain.IntentSelectRecipe),
		rule(`(select|open|pick)\s+(?P<payload>.+)`, domain.IntentSelectRecipe),
		rule(`(show|view|details)`+rest, domain.IntentShowRecipe),
		rule(`(new|add|create)`+rest, domain.IntentNewRecipe),
		rule(`(edit|rename)`+rest, domain.IntentEditRecipe),
		rule(`(delete|del|rm|remove)`+rest, domain.IntentDeleteRecipe),
		rule(`move\s+(?P<action>up|u|down|d)`+rest, domain.IntentMoveRecipe),
		rule(`(import|load)\s+(?P<payload>.+)`, domain.IntentImport),
		rule(`(export|save)`+rest, domain.IntentExport),
		rule(`(files|library)`, domain.IntentListFiles),
		rule(`(shop|shopping|shopping-list|scale)`+rest, domain.IntentShoppingList),
		rule(`(ing|ings|ingredient|ingredients)\s+`+listActions+rest, domain.IntentIngredient),
		rule(`(step|steps|instruction|instructions)\s+`+listActions+rest, domain.IntentInstruction),
		rule(`(img|image|images|gallery)\s+`+imageActions+rest, domain.IntentImage),
		rule(`(img|image|images|gallery)`, domain.IntentImage),
		rule(`(search|find)\s+(?P<payload>.+)`, domain.IntentSearch),
	}, common...)

	p.form = append([]patternRule{
		rule(`(save|done|ok|submit)`, domain.IntentSave),
		rule(`(cancel|abort)`, domain.IntentCancel),
		rule(`(?P<action>name|course|serves|servings|serving|quantity|qty|unit|text|step)`+rest, domain.IntentSetField),
	}, common...)

	p.confirm = append([]patternRule{
		rule(`(back|go back|b|fix|y|yes)`, domain.IntentGoBack),
		rule(`(discard|drop|d|no|n|cancel)`, domain.IntentDiscard),
	}, common...)

	return p
}

// Parse converts user input into an intent for the given mode.
func (p *KeywordParser) Parse(ctx context.Context, input string, mode domain.InputMode) (*domain.Intent, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return &domain.Intent{Type: domain.IntentUnknown}, nil
	}

	p.log.Debug("parsing input: %q (mode=%d)", trimmed, mode)

	rules := p.browse
	switch mode {
	case domain.ModeForm:
		rules = p.form
	case domain.ModeConfirm:
		rules = p.confirm
	}

	for _, r := range rules {
		m := r.regex.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		intent := &domain.Intent{Type: r.intent}
		if i := r.regex.SubexpIndex("action"); i >= 0 {
			intent.Action = canonicalAction(m[i])
		}
		if i := r.regex.SubexpIndex("payload"); i >= 0 {
			intent.Payload = strings.TrimSpace(m[i])
		}
		p.log.Debug("matched intent: %s action=%q", intent.Type, intent.Action)
		return intent, nil
	}

	p.log.Debug("no match, returning unknown intent")
	return &domain.Intent{Type: domain.IntentUnknown, Payload: trimmed}, nil
}

// canonicalAction folds the accepted spellings of a sub-command.
func canonicalAction(a string) string {
	switch strings.ToLower(a) {
	case "add", "new", "+":
		return "add"
	case "edit", "set", "change":
		return "edit"
	case "del", "delete", "rm", "remove", "-":
		return "del"
	case "up", "u":
		return "up"
	case "down", "d":
		return "down"
	case "next", "n":
		return "next"
	case "prev", "previous", "p":
		return "prev"
	case "show", "list":
		return "show"
	case "serves", "servings", "serving":
		return "serves"
	case "qty", "quantity":
		return "quantity"
	case "text", "step":
		return "text"
	}
	return strings.ToLower(a)
}
