package pizza

import (
	"io"
	"strings"
)

// Pizza is the product under construction.
type Pizza struct {
	// Size, Crust, Sauce and Cheese are nil until a builder sets them.
	Size   *string
	Crust  *string
	Sauce  *string
	Cheese *string

	// Toppings keeps insertion order. Duplicates are allowed.
	Toppings []string
}

// Value dereferences an optional field, returning "" when it is unset.
func Value(field *string) string {
	if field == nil {
		return ""
	}
	return *field
}

// Format renders the pizza one item per line: size, crust, sauce, then each
// topping. Unset fields render as empty text.
func (p Pizza) Format() string {
	var sb strings.Builder
	sb.WriteString("Size:" + Value(p.Size) + "\n")
	sb.WriteString("Crust:" + Value(p.Crust) + "\n")
	sb.WriteString("Sauce:" + Value(p.Sauce) + "\n")
	for _, topping := range p.Toppings {
		sb.WriteString(topping + "\n")
	}
	return sb.String()
}

// Display writes the formatted pizza to w.
func (p Pizza) Display(w io.Writer) error {
	_, err := io.WriteString(w, p.Format())
	return err
}

// Clone returns a copy that shares no mutable state with p.
func (p Pizza) Clone() Pizza {
	out := p
	if p.Toppings != nil {
		out.Toppings = make([]string, len(p.Toppings))
		copy(out.Toppings, p.Toppings)
	}
	return out
}
