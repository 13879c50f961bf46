// Package director sequences builder steps into named recipes.
//
// A Director is bound to one builder.Builder for its lifetime and only ever
// calls it; it does not own it. Recipes are fixed call sequences with no
// branching. Running a recipe more than once against the same builder
// overwrites the scalar fields and appends toppings again, because builders
// have no reset:
//
//	d := director.New(builder.NewMargherita())
//	d.ConstructMargherita() // Toppings: [Basil]
//	d.ConstructMargherita() // Toppings: [Basil Basil]
package director
