package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/pizzabuilder/internal/builder"
	"github.com/vk/pizzabuilder/internal/ctxlog"
	"github.com/vk/pizzabuilder/internal/menu"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	menu   *menu.Model
}

// NewApp is the constructor for the main application. Pizzas are written to
// outW and logs to logW. When cfg.MenuPath is set, the menu is loaded with
// loader and every recipe's builder variant is checked up front.
func NewApp(outW, logW io.Writer, cfg *Config, loader menu.Loader) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	a := &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		menu:   &menu.Model{},
	}

	if cfg.MenuPath == "" {
		logger.Debug("No menu configured, serving built-in recipes only.")
		return a, nil
	}

	model, err := loader.Load(ctx, cfg.MenuPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu: %w", err)
	}
	for _, r := range model.Recipes {
		if _, err := builder.New(r.Builder); err != nil {
			return nil, fmt.Errorf("recipe %q: %w", r.Name, err)
		}
	}
	a.menu = model
	logger.Debug("Menu loaded.", "path", cfg.MenuPath, "recipes", len(model.Recipes))

	return a, nil
}

// Menu returns the loaded menu. This is primarily for testing.
func (a *App) Menu() *menu.Model {
	return a.menu
}
