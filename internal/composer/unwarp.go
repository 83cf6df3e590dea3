package composer

import (
	"fmt"

	"github.com/vk/sdcgrid/internal/workflow"
)

// fieldmapBasedMethod renders the reporting label of either field-based
// strategy.
func fieldmapBasedMethod(typeTag string) string {
	return fmt.Sprintf("FMB (%s-based)", typeTag)
}

// addUnwarpTail installs the unwarp sub-workflow downstream of a field
// estimator and wires the estimated field into it. The unwarp node is the
// correction tail for both field-based strategies: it turns the estimated
// field into the corrected reference, its brain-masked version, the updated
// mask and the deformation field.
func addUnwarpTail(b *buildContext, estimator *workflow.Node) (*workflow.Node, error) {
	unwarp := workflow.NewNode(unwarpNodeID,
		[]string{"fmap", "fmap_ref", "fmap_mask", "name_source"},
		[]string{"out_warp", "out_reference", "out_reference_brain", "out_mask"},
	).
		WithParam("fmap_demean", b.opts.FmapDemean).
		WithParam("debug", b.opts.Debug).
		WithParam("omp_nthreads", b.opts.OmpNthreads)

	if err := b.wf.AddNode(unwarp); err != nil {
		return nil, err
	}

	if err := b.wf.Connect(inputNodeID, "name_source", unwarpNodeID, "name_source"); err != nil {
		return nil, err
	}
	for _, port := range []string{"fmap", "fmap_ref", "fmap_mask"} {
		if err := b.wf.Connect(estimator.ID, port, unwarpNodeID, port); err != nil {
			return nil, err
		}
	}
	return unwarp, nil
}
