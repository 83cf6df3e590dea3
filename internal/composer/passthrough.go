package composer

import (
	"context"

	"github.com/vk/sdcgrid/internal/config"
	"github.com/vk/sdcgrid/internal/ctxlog"
	"github.com/vk/sdcgrid/internal/workflow"
)

// Passthrough builds the degenerate workflow used when no correction strategy
// is available and none was requested: the reference, mask and brain-masked
// reference are forwarded from inputs to outputs untouched. No sub-workflow
// is constructed, and the out_warp and syn_bold_ref outputs stay unconnected.
func Passthrough(ctx context.Context, bold *config.Bold) *Composition {
	wf := workflow.New("sdc_bypass_wf")
	addOuterNodes(wf, bold)

	for _, port := range []string{"bold_ref", "bold_mask", "bold_ref_brain"} {
		// Ports are fixed and the workflow is fresh, so Connect cannot fail.
		_ = wf.Connect(inputNodeID, port, outputNodeID, port)
	}

	ctxlog.FromContext(ctx).Debug("No fieldmaps available, composing bypass workflow.")
	return &Composition{Workflow: wf}
}
