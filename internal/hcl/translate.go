package hcl

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/pizzabuilder/internal/menu"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// defaultBuilder is used when a recipe block has no builder attribute.
const defaultBuilder = "margherita"

// translateRecipe converts the HCL-specific recipe schema into the agnostic model.
func (l *Loader) translateRecipe(b *recipeBlock, evalCtx *hcl.EvalContext) (*menu.Recipe, error) {
	r := &menu.Recipe{
		Name:    b.Name,
		Builder: defaultBuilder,
		Size:    b.Size,
		Crust:   b.Crust,
		Sauce:   b.Sauce,
		Cheese:  b.Cheese,
	}
	if b.Builder != nil {
		r.Builder = *b.Builder
	}

	toppings, err := evalToppings(b.Toppings, evalCtx)
	if err != nil {
		return nil, fmt.Errorf("recipe %q: %w", b.Name, err)
	}
	r.Toppings = toppings
	return r, nil
}

// evalToppings evaluates the toppings expression into an ordered list of
// strings. An absent or null expression yields no toppings.
func evalToppings(expr hcl.Expression, evalCtx *hcl.EvalContext) ([]string, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.IsWhollyKnown() {
		return nil, errors.New("toppings must be known at load time")
	}

	list, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, fmt.Errorf("toppings must be a list of strings: %w", err)
	}

	toppings := make([]string, 0, list.LengthInt())
	for it := list.ElementIterator(); it.Next(); {
		_, v := it.Element()
		if v.IsNull() {
			return nil, errors.New("toppings must not contain null")
		}
		toppings = append(toppings, v.AsString())
	}
	return toppings, nil
}
