package composer

import (
	"context"

	"github.com/vk/sdcgrid/internal/catalog"
	"github.com/vk/sdcgrid/internal/config"
	"github.com/vk/sdcgrid/internal/ctxlog"
	"github.com/vk/sdcgrid/internal/workflow"
)

// methodPEPolar is the reporting label of the polarity-based strategy.
const methodPEPolar = "PEB/PEPOLAR (phase-encoding based / PE-POLARity)"

// EPIAcquisition pairs an opposed-polarity EPI image with the phase-encoding
// direction it was acquired along.
type EPIAcquisition struct {
	File                   string
	PhaseEncodingDirection string
}

// buildPEPolar constructs the polarity-based correction sub-workflow. All
// available EPI acquisitions are gathered (there may be several, one per
// polarity) and passed as a single composite parameter; each contributes its
// own phase-encoding direction from its acquisition metadata.
func buildPEPolar(ctx context.Context, b *buildContext, _ *config.Fieldmap) (*workflow.Node, string, error) {
	var acquisitions []EPIAcquisition
	for _, fm := range b.fmaps {
		if fm.Type != catalog.TypeEPI {
			continue
		}
		file, ok := fm.Input("epi")
		if !ok {
			return nil, "", &MissingInputError{Strategy: catalog.TypeEPI, Key: "epi"}
		}
		dir, ok := fm.Metadata["PhaseEncodingDirection"].(string)
		if !ok || dir == "" {
			return nil, "", &MissingInputError{Strategy: catalog.TypeEPI, Key: "metadata.PhaseEncodingDirection"}
		}
		acquisitions = append(acquisitions, EPIAcquisition{File: file, PhaseEncodingDirection: dir})
	}
	if len(acquisitions) == 0 {
		return nil, "", &MissingInputError{Strategy: catalog.TypeEPI, Key: "epi"}
	}

	node := workflow.NewNode(pepolarNodeID,
		nil,
		[]string{"out_warp", "out_reference", "out_reference_brain", "out_mask"},
	).
		WithParam("epi_fmaps", acquisitions).
		WithParam("bold_metadata", b.bold.Metadata).
		WithParam("omp_nthreads", b.opts.OmpNthreads)

	if err := b.wf.AddNode(node); err != nil {
		return nil, "", err
	}

	ctxlog.FromContext(ctx).Debug("Polarity-based sub-workflow constructed.",
		"acquisitions", len(acquisitions))
	return node, methodPEPolar, nil
}
