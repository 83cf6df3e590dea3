package composer

import (
	"context"

	"github.com/vk/sdcgrid/internal/catalog"
	"github.com/vk/sdcgrid/internal/config"
	"github.com/vk/sdcgrid/internal/ctxlog"
	"github.com/vk/sdcgrid/internal/workflow"
)

// buildFieldmap constructs the direct-field correction path: an estimator fed
// a measured field image and a magnitude image, followed by the unwarp tail.
// The estimator is only constructed here, when this branch is actually taken.
func buildFieldmap(ctx context.Context, b *buildContext, fm *config.Fieldmap) (*workflow.Node, string, error) {
	fieldmap, ok := fm.Input("fieldmap")
	if !ok {
		return nil, "", &MissingInputError{Strategy: catalog.TypeFieldmap, Key: "fieldmap"}
	}
	magnitude, ok := fm.Input("magnitude")
	if !ok {
		return nil, "", &MissingInputError{Strategy: catalog.TypeFieldmap, Key: "magnitude"}
	}

	estimator := workflow.NewNode(fmapNodeID,
		nil,
		[]string{"fmap", "fmap_ref", "fmap_mask"},
	).
		WithParam("fieldmap", fieldmap).
		WithParam("magnitude", magnitude).
		WithParam("fmap_bspline", b.opts.FmapBSpline).
		WithParam("omp_nthreads", b.opts.OmpNthreads)

	if err := b.wf.AddNode(estimator); err != nil {
		return nil, "", err
	}

	tail, err := addUnwarpTail(b, estimator)
	if err != nil {
		return nil, "", err
	}

	ctxlog.FromContext(ctx).Debug("Direct-field sub-workflow constructed.")
	return tail, fieldmapBasedMethod(catalog.TypeFieldmap), nil
}
