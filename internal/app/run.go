package app

import (
	"context"
	"fmt"

	"github.com/vk/pizzabuilder/internal/builder"
	"github.com/vk/pizzabuilder/internal/ctxlog"
	"github.com/vk/pizzabuilder/internal/director"
	"github.com/vk/pizzabuilder/internal/pizza"
)

// Separator is printed between pizzas.
const Separator = "............................."

// Run bakes the Margherita and Pepperoni recipes, each with its own builder
// and director, then every menu recipe in load order.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	margherita := director.New(builder.NewMargherita()).ConstructMargherita()
	if err := a.serve("Margherita", margherita); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(a.outW, Separator); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	pepperoni := director.New(builder.NewPepperoni()).ConstructPepperoni()
	if err := a.serve("Pepperoni", pepperoni); err != nil {
		return err
	}

	for _, r := range a.menu.Recipes {
		b, err := builder.New(r.Builder)
		if err != nil {
			return fmt.Errorf("recipe %q: %w", r.Name, err)
		}
		logger.Debug("Baking menu recipe.", "name", r.Name, "builder", b.Variant())

		p := director.New(b).Construct(*r)
		if _, err := fmt.Fprintln(a.outW, Separator); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if err := a.serve(r.Name, p); err != nil {
			return err
		}
	}

	logger.Info("All pizzas served.", "count", 2+len(a.menu.Recipes))
	logger.Debug("App.Run method finished.")
	return nil
}

// serve announces a finished pizza and displays it.
func (a *App) serve(name string, p pizza.Pizza) error {
	if _, err := fmt.Fprintf(a.outW, "%s Pizza Ready\n", name); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := p.Display(a.outW); err != nil {
		return fmt.Errorf("failed to display %s: %w", name, err)
	}
	return nil
}
