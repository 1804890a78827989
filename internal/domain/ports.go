package domain

import "context"

// RecipeStore is the persistence boundary for single-recipe files.
// Implementations can be directory-backed, in-memory for tests, or remote.
type RecipeStore interface {
	Read(ctx context.Context, path string) (*Recipe, error)
	// Write persists r and returns the path actually written, which may
	// differ from path when a default extension was appended.
	Write(ctx context.Context, path string, r *Recipe) (string, error)
	List(ctx context.Context) ([]string, error)
}

// IntentParser converts raw user input into structured intents. The mode
// tells the parser whether a form or a confirmation is currently open.
type IntentParser interface {
	Parse(ctx context.Context, input string, mode InputMode) (*Intent, error)
}

// Notifier delivers messages to the user. Implementations can write to
// stdout or to the terminal UI.
type Notifier interface {
	Notify(ctx context.Context, message string) error
	NotifyUrgent(ctx context.Context, message string) error
}
