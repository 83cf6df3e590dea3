// This file contains the logic for translating HCL schema structs into the
// format-agnostic manifest model defined in the config package.

package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"

	"github.com/vk/sdcgrid/internal/config"
	"github.com/vk/sdcgrid/internal/schema"
)

// translateManifest converts a decoded HCL manifest into the agnostic model.
func (l *Loader) translateManifest(m *schema.Manifest, filePath string) (*config.Model, error) {
	out := &config.Model{}

	for _, fm := range m.Fieldmaps {
		translated, err := l.translateFieldmap(fm)
		if err != nil {
			return nil, fmt.Errorf("in %s: %w", filePath, err)
		}
		out.Fieldmaps = append(out.Fieldmaps, translated)
	}

	if m.Bold != nil {
		bold, err := l.translateBold(m.Bold)
		if err != nil {
			return nil, fmt.Errorf("in %s: %w", filePath, err)
		}
		out.Bold = bold
	}

	if m.Correction != nil {
		out.Correction = translateCorrection(m.Correction)
	}

	return out, nil
}

// translateFieldmap converts a fieldmap block. The type tag is not validated
// here: unsupported tags are legal manifest content and are filtered out
// later by the selector.
func (l *Loader) translateFieldmap(fm *schema.Fieldmap) (*config.Fieldmap, error) {
	metadata, err := metadataToNative(fm.Metadata)
	if err != nil {
		return nil, fmt.Errorf("fieldmap %q: %w", fm.Type, err)
	}
	return &config.Fieldmap{
		Type:     fm.Type,
		Inputs:   fm.Inputs,
		Metadata: metadata,
	}, nil
}

// translateBold converts the bold block.
func (l *Loader) translateBold(b *schema.Bold) (*config.Bold, error) {
	metadata, err := metadataToNative(b.Metadata)
	if err != nil {
		return nil, fmt.Errorf("bold block: %w", err)
	}
	return &config.Bold{
		NameSource:                   b.NameSource,
		Ref:                          b.Ref,
		RefBrain:                     b.RefBrain,
		Mask:                         b.Mask,
		T1Brain:                      b.T1Brain,
		T1ToTemplateReverseTransform: b.T1ToTemplateReverseTransform,
		Metadata:                     metadata,
	}, nil
}

// translateCorrection converts the correction block, applying defaults for
// every attribute the manifest leaves out.
func translateCorrection(c *schema.Correction) *config.Correction {
	out := config.DefaultCorrection()
	if c.UseSyn != nil {
		out.UseSyn = *c.UseSyn
	}
	if c.ForceSyn != nil {
		out.ForceSyn = *c.ForceSyn
	}
	if c.FmapBSpline != nil {
		out.FmapBSpline = *c.FmapBSpline
	}
	if c.FmapDemean != nil {
		out.FmapDemean = *c.FmapDemean
	}
	if c.Debug != nil {
		out.Debug = *c.Debug
	}
	if c.OmpNthreads != nil {
		out.OmpNthreads = *c.OmpNthreads
	}
	if c.Template != nil {
		out.Template = *c.Template
	}
	return out
}

// metadataToNative evaluates an optional metadata expression into a native Go
// map. Metadata values are heterogeneous (strings, numbers, lists), so the
// generic cty conversion is used.
func metadataToNative(expr hcl.Expression) (map[string]any, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid metadata expression: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	native, err := ctyToNative(val)
	if err != nil {
		return nil, fmt.Errorf("invalid metadata value: %w", err)
	}
	m, ok := native.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("metadata must be an object, got %T", native)
	}
	return m, nil
}
