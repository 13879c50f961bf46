package builder

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/vk/pizzabuilder/internal/pizza"
)

const (
	// VariantMargherita is the label of the Margherita builder.
	VariantMargherita = "margherita"
	// VariantPepperoni is the label of the Pepperoni builder.
	VariantPepperoni = "pepperoni"
)

// ErrUnknownVariant is returned by New for a name with no registered builder.
var ErrUnknownVariant = errors.New("unknown builder variant")

var constructors = map[string]func() Builder{
	VariantMargherita: func() Builder { return NewMargherita() },
	VariantPepperoni:  func() Builder { return NewPepperoni() },
}

// New returns a fresh builder for the named variant. Names are matched
// case-insensitively.
func New(variant string) (Builder, error) {
	ctor, ok := constructors[strings.ToLower(strings.TrimSpace(variant))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownVariant, variant, strings.Join(Variants(), ", "))
	}
	return ctor(), nil
}

// Variants lists the known variant names, sorted.
func Variants() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// kitchen holds the in-progress pizza and implements the construction steps
// shared by all variants.
type kitchen struct {
	pizza pizza.Pizza
}

func (k *kitchen) SetSize(size string) { k.pizza.Size = &size }
func (k *kitchen) SetCrust(crust string) { k.pizza.Crust = &crust }
func (k *kitchen) SetSauce(sauce string) { k.pizza.Sauce = &sauce }
func (k *kitchen) SetCheese(cheese string) { k.pizza.Cheese = &cheese }

func (k *kitchen) AddTopping(topping string) {
	k.pizza.Toppings = append(k.pizza.Toppings, topping)
}

// Build copies the toppings so the caller's product is unaffected by further
// steps. Scalar fields are safe to share: setters always store a new pointer.
func (k *kitchen) Build() pizza.Pizza {
	return k.pizza.Clone()
}

// Margherita builds Margherita-style pizzas.
type Margherita struct {
	kitchen
}

// NewMargherita creates a Margherita builder with an empty pizza.
func NewMargherita() *Margherita {
	return &Margherita{}
}

// Variant implements the Builder interface.
func (*Margherita) Variant() string { return VariantMargherita }

// Pepperoni builds Pepperoni-style pizzas.
type Pepperoni struct {
	kitchen
}

// NewPepperoni creates a Pepperoni builder with an empty pizza.
func NewPepperoni() *Pepperoni {
	return &Pepperoni{}
}

// Variant implements the Builder interface.
func (*Pepperoni) Variant() string { return VariantPepperoni }

var (
	_ Builder = (*Margherita)(nil)
	_ Builder = (*Pepperoni)(nil)
)
