package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/sdcgrid/internal/config"
	"github.com/vk/sdcgrid/internal/ctxlog"
	"github.com/vk/sdcgrid/internal/fsutil"
	"github.com/vk/sdcgrid/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// compile-time check
var _ config.Loader = (*Loader)(nil)

// Load reads every .hcl manifest under the given paths, decodes them, and
// merges them into a single format-agnostic model. Fieldmap blocks accumulate
// across files in discovery order; the bold and correction blocks may each
// appear at most once across the whole set.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	var files []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to find manifest files in %s: %w", path, err)
		}
		files = append(files, found...)
	}
	logger.Debug("Manifest files discovered.", "count", len(files))
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl manifest files found in %v", paths)
	}

	model := &config.Model{}
	parser := hclparse.NewParser()
	for _, file := range files {
		parsed, err := l.loadFile(file, parser)
		if err != nil {
			return nil, err
		}
		if err := l.merge(model, parsed, file); err != nil {
			return nil, err
		}
	}

	if model.Bold == nil {
		return nil, fmt.Errorf("manifest is missing the required bold block")
	}
	if model.Correction == nil {
		model.Correction = config.DefaultCorrection()
	}
	logger.Debug("Manifest loaded and translated into unified model.",
		"fieldmaps", len(model.Fieldmaps))
	return model, nil
}

// loadFile parses and translates a single manifest file.
func (l *Loader) loadFile(filePath string, parser *hclparse.Parser) (*config.Model, error) {
	hclFile, diags := parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filePath, diags)
	}

	var manifest schema.Manifest
	diags = gohcl.DecodeBody(hclFile.Body, nil, &manifest)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filePath, diags)
	}

	return l.translateManifest(&manifest, filePath)
}

// merge folds one file's model into the accumulated one.
func (l *Loader) merge(dst, src *config.Model, filePath string) error {
	dst.Fieldmaps = append(dst.Fieldmaps, src.Fieldmaps...)
	if src.Bold != nil {
		if dst.Bold != nil {
			return fmt.Errorf("duplicate bold block in %s", filePath)
		}
		dst.Bold = src.Bold
	}
	if src.Correction != nil {
		if dst.Correction != nil {
			return fmt.Errorf("duplicate correction block in %s", filePath)
		}
		dst.Correction = src.Correction
	}
	return nil
}
