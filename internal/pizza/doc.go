// Package pizza defines the product assembled by the builders: a pizza with
// a size, crust, sauce, cheese and an ordered list of toppings.
//
// Scalar fields are pointers so that "never set" can be told apart from an
// explicitly empty value. Rendering is a pure function (Format); writing the
// result somewhere is left to the caller (Display takes an io.Writer).
package pizza
