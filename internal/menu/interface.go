package menu

import "context"

// Loader is the interface for a format-specific menu loader.
type Loader interface {
	// Load reads recipes from the given paths and translates them into the
	// format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
