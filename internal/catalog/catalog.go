// Package catalog is the static table of supported fieldmap strategies.
//
// Each strategy type carries a priority rank (lower is tried first) and the
// set of resolved inputs it cannot run without. The table is fixed at compile
// time; tags absent from it are simply unsupported and are filtered out by
// the selector rather than reported as errors.
package catalog

// Strategy type tags, in priority order.
const (
	TypeEPI       = "epi"       // polarity-based (blip-up/blip-down)
	TypeFieldmap  = "fieldmap"  // directly measured B0 field
	TypePhaseDiff = "phasediff" // phase-difference plus magnitude images
	TypeSyn       = "syn"       // anatomically-guided, fieldmap-less fallback
)

// priorities ranks the supported strategy types. Lower rank wins when more
// than one acquisition is available.
var priorities = map[string]int{
	TypeEPI:       0,
	TypeFieldmap:  1,
	TypePhaseDiff: 2,
	TypeSyn:       3,
}

// requiredInputs lists the resolved-input keys each strategy type needs
// before its sub-workflow can be constructed. The phasediff entry names the
// shared prefix of its magnitude inputs; at least one key with that prefix
// must be present.
var requiredInputs = map[string][]string{
	TypeEPI:       {"epi"},
	TypeFieldmap:  {"fieldmap", "magnitude"},
	TypePhaseDiff: {"phasediff"},
	TypeSyn:       nil, // wired entirely from the outer workflow inputs
}

// MagnitudePrefix is the key prefix under which phasediff magnitude images
// are collected.
const MagnitudePrefix = "magnitude"

// PriorityOf returns the priority rank of a strategy type tag and whether the
// tag is known.
func PriorityOf(typeTag string) (int, bool) {
	rank, ok := priorities[typeTag]
	return rank, ok
}

// IsKnown reports whether the strategy type tag is supported.
func IsKnown(typeTag string) bool {
	_, ok := priorities[typeTag]
	return ok
}

// RequiredInputs returns the resolved-input keys a strategy type needs.
func RequiredInputs(typeTag string) []string {
	return requiredInputs[typeTag]
}
