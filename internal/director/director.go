package director

import (
	"github.com/vk/pizzabuilder/internal/builder"
	"github.com/vk/pizzabuilder/internal/menu"
	"github.com/vk/pizzabuilder/internal/pizza"
)

// Director drives a builder through predetermined recipes.
type Director struct {
	builder builder.Builder
}

// New creates a director bound to b.
func New(b builder.Builder) *Director {
	return &Director{builder: b}
}

// ConstructMargherita builds a large thin-crust pizza with tomato sauce,
// mozzarella and basil.
func (d *Director) ConstructMargherita() pizza.Pizza {
	d.builder.SetSize("Large")
	d.builder.SetCrust("Thin Crust")
	d.builder.SetSauce("Tomato")
	d.builder.SetCheese("Mozzarella")
	d.builder.AddTopping("Basil")

	return d.builder.Build()
}

// ConstructPepperoni builds a medium pizza with hot sauce, mozzarella and
// pepperoni. The crust is never set.
func (d *Director) ConstructPepperoni() pizza.Pizza {
	d.builder.SetSize("Medium")
	d.builder.SetSauce("Hot Sauce")
	d.builder.SetCheese("Mozzarella")
	d.builder.AddTopping("Pepperoni")

	return d.builder.Build()
}

// Construct applies a declarative recipe in the same order as the built-in
// ones: size, crust, sauce, cheese, then toppings. Unset fields are skipped.
// The recipe's Builder name is ignored; the director always uses its own.
func (d *Director) Construct(r menu.Recipe) pizza.Pizza {
	if r.Size != nil {
		d.builder.SetSize(*r.Size)
	}
	if r.Crust != nil {
		d.builder.SetCrust(*r.Crust)
	}
	if r.Sauce != nil {
		d.builder.SetSauce(*r.Sauce)
	}
	if r.Cheese != nil {
		d.builder.SetCheese(*r.Cheese)
	}
	for _, topping := range r.Toppings {
		d.builder.AddTopping(topping)
	}

	return d.builder.Build()
}
