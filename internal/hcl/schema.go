package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes all top-level blocks of a menu file.
type fileRoot struct {
	Recipes []*recipeBlock `hcl:"recipe,block"`
}

// recipeBlock is the HCL-specific schema of a `recipe` block.
type recipeBlock struct {
	Name     string         `hcl:"name,label"`
	Builder  *string        `hcl:"builder,optional"`
	Size     *string        `hcl:"size,optional"`
	Crust    *string        `hcl:"crust,optional"`
	Sauce    *string        `hcl:"sauce,optional"`
	Cheese   *string        `hcl:"cheese,optional"`
	Toppings hcl.Expression `hcl:"toppings,optional"`
}
