package composer

import (
	"context"

	"github.com/vk/sdcgrid/internal/config"
	"github.com/vk/sdcgrid/internal/ctxlog"
	"github.com/vk/sdcgrid/internal/workflow"
)

// methodSyn is the reporting label of the anatomically-guided fallback.
const methodSyn = `FLB ("fieldmap-less" based) - SyN`

// buildSyn constructs the anatomically-guided fallback sub-workflow. It needs
// no fieldmap acquisition of its own: it estimates the correction from the
// brain-masked T1w image and the template-to-T1w transform, applied to the
// brain-masked BOLD reference. Besides the usual correction outputs it
// exposes out_warp_report, which the composer wires to the outer reporting
// port when the fallback rides along a higher-priority strategy.
func buildSyn(ctx context.Context, b *buildContext, _ *config.Fieldmap) (*workflow.Node, string, error) {
	var boldPE string
	if b.bold.Metadata != nil {
		boldPE, _ = b.bold.Metadata["PhaseEncodingDirection"].(string)
	}

	node := workflow.NewNode(synNodeID,
		[]string{"t1_brain", "t1_to_template_reverse_transform", "bold_ref"},
		[]string{"out_warp", "out_reference", "out_reference_brain", "out_mask", "out_warp_report"},
	).
		WithParam("template", b.opts.Template).
		WithParam("bold_pe", boldPE).
		WithParam("omp_nthreads", b.opts.OmpNthreads)

	if err := b.wf.AddNode(node); err != nil {
		return nil, "", err
	}

	// The fallback corrects the brain-masked reference, so bold_ref_brain
	// feeds its bold_ref input.
	wiring := [][2]string{
		{"t1_brain", "t1_brain"},
		{"t1_to_template_reverse_transform", "t1_to_template_reverse_transform"},
		{"bold_ref_brain", "bold_ref"},
	}
	for _, ports := range wiring {
		if err := b.wf.Connect(inputNodeID, ports[0], synNodeID, ports[1]); err != nil {
			return nil, "", err
		}
	}

	ctxlog.FromContext(ctx).Debug("Anatomically-guided fallback sub-workflow constructed.",
		"template", b.opts.Template)
	return node, methodSyn, nil
}
