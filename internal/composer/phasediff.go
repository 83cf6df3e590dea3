package composer

import (
	"context"
	"sort"
	"strings"

	"github.com/vk/sdcgrid/internal/catalog"
	"github.com/vk/sdcgrid/internal/config"
	"github.com/vk/sdcgrid/internal/ctxlog"
	"github.com/vk/sdcgrid/internal/workflow"
)

// buildPhaseDiff constructs the phase-difference correction path: an
// estimator fed the phase-difference image and the acquisition's magnitude
// images, followed by the unwarp tail.
func buildPhaseDiff(ctx context.Context, b *buildContext, fm *config.Fieldmap) (*workflow.Node, string, error) {
	phasediff, ok := fm.Input("phasediff")
	if !ok {
		return nil, "", &MissingInputError{Strategy: catalog.TypePhaseDiff, Key: "phasediff"}
	}
	magnitudes := magnitudeInputs(fm)
	if len(magnitudes) == 0 {
		return nil, "", &MissingInputError{Strategy: catalog.TypePhaseDiff, Key: catalog.MagnitudePrefix + "*"}
	}

	estimator := workflow.NewNode(phdiffNodeID,
		nil,
		[]string{"fmap", "fmap_ref", "fmap_mask"},
	).
		WithParam("phasediff", phasediff).
		WithParam("magnitude", magnitudes).
		WithParam("omp_nthreads", b.opts.OmpNthreads)

	if err := b.wf.AddNode(estimator); err != nil {
		return nil, "", err
	}

	tail, err := addUnwarpTail(b, estimator)
	if err != nil {
		return nil, "", err
	}

	ctxlog.FromContext(ctx).Debug("Phase-difference sub-workflow constructed.",
		"magnitudes", len(magnitudes))
	return tail, fieldmapBasedMethod(catalog.TypePhaseDiff), nil
}

// magnitudeInputs collects every resolved input whose key starts with the
// magnitude prefix, sorted by key name. The sort makes the wired list
// deterministic regardless of map iteration order; callers rely on
// magnitude1 preceding magnitude2.
func magnitudeInputs(fm *config.Fieldmap) []string {
	keys := make([]string, 0, len(fm.Inputs))
	for key, value := range fm.Inputs {
		if strings.HasPrefix(key, catalog.MagnitudePrefix) && value != "" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	magnitudes := make([]string, 0, len(keys))
	for _, key := range keys {
		magnitudes = append(magnitudes, fm.Inputs[key])
	}
	return magnitudes
}
