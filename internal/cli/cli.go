package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/pizzabuilder/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// With no arguments and no PIZZA_* environment, the config runs the plain
// two-pizza script.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	defaults, err := app.EnvDefaults()
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	flagSet := flag.NewFlagSet("pizzabuilder", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
PizzaBuilder - builds a Margherita and a Pepperoni pizza, step by step.

Usage:
  pizzabuilder [options] [MENU_PATH]

Arguments:
  MENU_PATH
    Optional .hcl file or directory with extra recipe blocks to bake
    after the built-in pizzas.

Environment:
  PIZZA_MENU, PIZZA_LOG_LEVEL, PIZZA_LOG_FORMAT provide the defaults
  for the matching options.

Options:
`)
		flagSet.PrintDefaults()
	}

	menuFlag := flagSet.String("menu", defaults.MenuPath, "Path to a menu file or directory.")
	mFlag := flagSet.String("m", "", "Path to a menu file or directory (shorthand).")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("too many arguments: %v", flagSet.Args())}
	}

	// Precedence: -m, -menu, positional argument, PIZZA_MENU. A positional
	// path next to an explicit menu flag is ambiguous.
	explicit := map[string]bool{}
	flagSet.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	if flagSet.NArg() > 0 && (explicit["menu"] || explicit["m"]) {
		return nil, false, &ExitError{Code: 2, Message: "menu path given both as a flag and as an argument"}
	}

	path := defaults.MenuPath
	switch {
	case *mFlag != "":
		path = *mFlag
	case explicit["menu"]:
		path = *menuFlag
	case flagSet.NArg() > 0:
		path = flagSet.Arg(0)
	}
	slog.Debug("Menu path determined.", "path", path)

	config, err := app.NewConfig(app.Config{
		MenuPath:  path,
		LogFormat: *logFormatFlag,
		LogLevel:  *logLevelFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
