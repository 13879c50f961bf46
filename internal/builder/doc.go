/*
Package builder provides the step-wise construction capability for pizzas.

A Builder owns exactly one in-progress pizza.Pizza for its whole lifetime and
exposes one setter per field plus AddTopping. Build hands out a copy of the
current product; the builder keeps its own, so later steps continue to
accumulate on the same pizza. There is no Reset: create a new builder to
start over.

Two variants are provided:

  - Margherita (NewMargherita)
  - Pepperoni  (NewPepperoni)

They behave identically today. Directors are written once against the
Builder interface and accept either variant. New resolves a variant by name,
which is how declarative menu recipes select their builder.
*/
package builder
