package composer

import (
	"context"

	"github.com/vk/sdcgrid/internal/catalog"
	"github.com/vk/sdcgrid/internal/config"
	"github.com/vk/sdcgrid/internal/workflow"
)

// buildContext carries everything a strategy builder may need: the workflow
// under construction, the full acquisition list (the polarity-based builder
// gathers all acquisitions of its type, not just the selected one), the BOLD
// run description and the tuning options.
type buildContext struct {
	wf    *workflow.Workflow
	fmaps []*config.Fieldmap
	bold  *config.Bold
	opts  *config.Correction
}

// estimatorBuilder validates a strategy's resolved inputs, constructs its
// sub-workflow node(s) inside the build context, and returns the node whose
// out_warp/out_reference/out_reference_brain/out_mask outputs form the
// correction path, along with the method label for reporting.
type estimatorBuilder func(ctx context.Context, b *buildContext, fm *config.Fieldmap) (*workflow.Node, string, error)

// estimatorBuilders keys each strategy type to its constructor. Builders are
// invoked lazily, only for the type(s) the selector actually chose, so unused
// strategy sub-workflows are never constructed.
var estimatorBuilders = map[string]estimatorBuilder{
	catalog.TypeEPI:       buildPEPolar,
	catalog.TypeFieldmap:  buildFieldmap,
	catalog.TypePhaseDiff: buildPhaseDiff,
	catalog.TypeSyn:       buildSyn,
}
