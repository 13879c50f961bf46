// Package hcl provides the concrete HCL implementation of the menu.Loader
// interface. It is responsible for file discovery, parsing, expression
// evaluation and translation of recipe blocks into the menu model.
//
// A menu file holds any number of recipe blocks:
//
//	recipe "hawaiian" {
//	  builder  = "pepperoni"
//	  size     = "Large"
//	  crust    = title("thick crust")
//	  sauce    = "Tomato"
//	  cheese   = "Mozzarella"
//	  toppings = concat(["Ham"], ["Pineapple"])
//	}
//
// Every attribute is optional. Expressions may call the functions returned by
// Functions.
package hcl
