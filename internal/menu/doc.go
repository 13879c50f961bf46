// Package menu defines the format-agnostic recipe model along with the Loader
// interface for reading recipes from a concrete source.
//
// The menu.Model is what the app hands to the director. Concrete loaders,
// such as the HCL one, live in separate packages.
package menu
