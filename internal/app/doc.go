// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the pizzeria's execution lifecycle:
// the two built-in recipes followed by any recipes loaded from a menu,
// decoupled from any specific entrypoint like a CLI.
package app
