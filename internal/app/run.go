package app

import (
	"context"
	"fmt"

	"github.com/vk/sdcgrid/internal/composer"
	"github.com/vk/sdcgrid/internal/ctxlog"
	"github.com/vk/sdcgrid/internal/export"
	"github.com/vk/sdcgrid/internal/selector"
)

// Run executes the main application logic: load the manifest, select the
// correction strategy, compose the workflow, and render it.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	model, err := a.loader.Load(ctx, a.config.ManifestPath)
	if err != nil {
		return fmt.Errorf("failed to load manifest: %w", err)
	}

	flags := selector.Flags{
		UseSyn:   model.Correction.UseSyn,
		ForceSyn: model.Correction.ForceSyn,
	}
	sel := selector.Select(model.Fieldmaps, flags)
	a.logger.Debug("Strategy selection complete.", "mode", sel.Mode.String())

	comp, err := composer.Compose(ctx, sel, model.Fieldmaps, model.Bold, model.Correction)
	if err != nil {
		return fmt.Errorf("failed to compose correction workflow: %w", err)
	}

	if comp.Method != "" {
		a.logger.Info("Correction workflow composed.",
			"method", comp.Method,
			"workflow", comp.Workflow.Name)
	} else {
		a.logger.Info("No fieldmaps available and fallback not requested; outputs pass through uncorrected.",
			"workflow", comp.Workflow.Name)
	}

	if err := a.render(comp); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// render writes the composed workflow to the output writer in the configured
// format.
func (a *App) render(comp *composer.Composition) error {
	switch a.config.OutputFormat {
	case FormatJSON:
		data, err := export.JSON(comp.Workflow, comp.Method)
		if err != nil {
			return fmt.Errorf("failed to render workflow as JSON: %w", err)
		}
		if _, err := a.outW.Write(append(data, '\n')); err != nil {
			return err
		}
	default:
		if _, err := fmt.Fprint(a.outW, export.Mermaid(comp.Workflow)); err != nil {
			return err
		}
	}
	return nil
}
