package composer

import (
	"context"
	"fmt"

	"github.com/vk/sdcgrid/internal/config"
	"github.com/vk/sdcgrid/internal/ctxlog"
	"github.com/vk/sdcgrid/internal/selector"
	"github.com/vk/sdcgrid/internal/workflow"
)

// Node IDs of the composed workflow. The inner IDs match the sub-workflow
// names the external estimator implementations are published under.
const (
	inputNodeID   = "inputnode"
	outputNodeID  = "outputnode"
	pepolarNodeID = "pepolar_unwarp_wf"
	fmapNodeID    = "fmap_wf"
	phdiffNodeID  = "phdiff_wf"
	unwarpNodeID  = "sdc_unwarp_wf"
	synNodeID     = "syn_sdc_wf"
)

// Outer port contract. These stay fixed regardless of which strategy is
// composed inside.
var (
	outerInputs = []string{
		"name_source", "bold_ref", "bold_ref_brain", "bold_mask",
		"t1_brain", "t1_to_template_reverse_transform",
	}
	outerOutputs = []string{
		"bold_ref", "bold_mask", "bold_ref_brain", "out_warp", "syn_bold_ref",
	}
)

// Composition is the immutable result of composing a correction workflow: the
// assembled graph together with the human-readable method label used for
// downstream reporting. Method is empty when no correction is applied.
type Composition struct {
	Workflow *workflow.Workflow
	Method   string
}

// Compose builds the correction workflow for a selection result.
//
// The outer graph always exposes the fixed input and output ports; inside,
// the sub-workflow of the primary strategy is constructed through the
// per-type builder registry and wired to the outer contract. Under
// ModePrimaryAndReport the syn fallback is additionally built and only its
// reporting output is connected (to syn_bold_ref); its corrected outputs are
// deliberately left unused. Composition is all-or-nothing: on error no
// partial workflow is returned.
func Compose(
	ctx context.Context,
	sel selector.Result,
	fmaps []*config.Fieldmap,
	bold *config.Bold,
	opts *config.Correction,
) (*Composition, error) {
	if sel.Mode == selector.ModeNone {
		return Passthrough(ctx, bold), nil
	}

	logger := ctxlog.FromContext(ctx)
	wf := workflow.New("sdc_wf")
	addOuterNodes(wf, bold)

	b := &buildContext{wf: wf, fmaps: fmaps, bold: bold, opts: opts}

	build, ok := estimatorBuilders[sel.Primary.Type]
	if !ok {
		return nil, fmt.Errorf("no builder registered for strategy type %q", sel.Primary.Type)
	}
	tail, method, err := build(ctx, b, sel.Primary)
	if err != nil {
		return nil, err
	}

	// Common tail: the chosen correction path feeds the outer outputs.
	tailWiring := [][2]string{
		{"out_warp", "out_warp"},
		{"out_reference", "bold_ref"},
		{"out_reference_brain", "bold_ref_brain"},
		{"out_mask", "bold_mask"},
	}
	for _, ports := range tailWiring {
		if err := wf.Connect(tail.ID, ports[0], outputNodeID, ports[1]); err != nil {
			return nil, err
		}
	}

	if sel.Mode == selector.ModePrimaryAndReport {
		// The fallback is composed purely to produce the comparison report:
		// only out_warp_report reaches the outer contract, its corrected
		// reference never does.
		syn, _, err := buildSyn(ctx, b, sel.Secondary)
		if err != nil {
			return nil, err
		}
		if err := wf.Connect(syn.ID, "out_warp_report", outputNodeID, "syn_bold_ref"); err != nil {
			return nil, err
		}
	}

	logger.Debug("Correction workflow composed.",
		"method", method,
		"mode", sel.Mode.String(),
		"nodes", len(wf.Nodes),
		"edges", len(wf.Edges))

	return &Composition{Workflow: wf, Method: method}, nil
}

// addOuterNodes installs the fixed input/output contract nodes. The resolved
// input files are recorded as parameters on the input node so the graph is
// self-contained when handed to an executor.
func addOuterNodes(wf *workflow.Workflow, bold *config.Bold) {
	in := workflow.NewNode(inputNodeID, nil, outerInputs)
	if bold != nil {
		in.WithParam("name_source", bold.NameSource).
			WithParam("bold_ref", bold.Ref).
			WithParam("bold_ref_brain", bold.RefBrain).
			WithParam("bold_mask", bold.Mask).
			WithParam("t1_brain", bold.T1Brain).
			WithParam("t1_to_template_reverse_transform", bold.T1ToTemplateReverseTransform)
	}
	out := workflow.NewNode(outputNodeID, outerOutputs, nil)

	// The workflow is freshly created, so these cannot collide.
	_ = wf.AddNode(in)
	_ = wf.AddNode(out)
}
