package builder

import "github.com/vk/pizzabuilder/internal/pizza"

// Builder performs step-wise mutation of an in-progress pizza and finalizes it.
//
// Every step is total: any string is accepted, including the empty string,
// and nothing is validated. Build never fails; fields that were not set stay
// unset on the returned product.
//
// A Builder is not safe for concurrent use.
type Builder interface {
	// SetSize overwrites the size.
	SetSize(size string)
	// SetCrust overwrites the crust.
	SetCrust(crust string)
	// SetSauce overwrites the sauce.
	SetSauce(sauce string)
	// SetCheese overwrites the cheese.
	SetCheese(cheese string)
	// AddTopping appends a topping. Order is kept and duplicates are allowed.
	AddTopping(topping string)

	// Build returns the product as it currently stands. The returned value
	// does not alias the builder's state.
	Build() pizza.Pizza

	// Variant is the builder's label, e.g. "margherita".
	Variant() string
}
