package menu

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateRecipe is returned when two recipes share a name.
	ErrDuplicateRecipe = errors.New("duplicate recipe")
	// ErrEmptyRecipeName is returned for a recipe with a blank name.
	ErrEmptyRecipeName = errors.New("recipe name must not be empty")
)

// Recipe is a declarative, fixed sequence of builder steps. Nil scalar fields
// are skipped, leaving the corresponding pizza field unset.
type Recipe struct {
	Name string
	// Builder names the builder variant used to bake this recipe.
	Builder  string
	Size     *string
	Crust    *string
	Sauce    *string
	Cheese   *string
	Toppings []string
}

// Model is the unified representation of all loaded recipes, in load order.
type Model struct {
	Recipes []*Recipe
}

// Add appends a recipe, rejecting blank and duplicate names.
func (m *Model) Add(r *Recipe) error {
	if r.Name == "" {
		return ErrEmptyRecipeName
	}
	if _, exists := m.Lookup(r.Name); exists {
		return fmt.Errorf("%w: %q", ErrDuplicateRecipe, r.Name)
	}
	m.Recipes = append(m.Recipes, r)
	return nil
}

// Lookup finds a recipe by its exact name.
func (m *Model) Lookup(name string) (*Recipe, bool) {
	for _, r := range m.Recipes {
		if r.Name == name {
			return r, true
		}
	}
	return nil, false
}
