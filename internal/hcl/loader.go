package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/pizzabuilder/internal/ctxlog"
	"github.com/vk/pizzabuilder/internal/fsutil"
	"github.com/vk/pizzabuilder/internal/menu"
)

// Loader is the HCL-specific implementation of the menu.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL menu loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ menu.Loader = (*Loader)(nil)

// Load parses every .hcl file found under paths and collects their recipes.
// Recipe names must be unique across all files.
func (l *Loader) Load(ctx context.Context, paths ...string) (*menu.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	model := &menu.Model{}

	hclFiles, err := fsutil.FindFilesByExtension(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	parser := hclparse.NewParser()
	evalCtx := newEvalContext()

	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range root.Recipes {
			recipe, err := l.translateRecipe(block, evalCtx)
			if err != nil {
				return nil, fmt.Errorf("failed to translate HCL file %s: %w", file, err)
			}
			if err := model.Add(recipe); err != nil {
				return nil, fmt.Errorf("in HCL file %s: %w", file, err)
			}
			logger.Debug("Recipe loaded.", "name", recipe.Name, "builder", recipe.Builder, "file", file)
		}
	}

	logger.Debug("HCL loading complete.", "recipes", len(model.Recipes))
	return model, nil
}
