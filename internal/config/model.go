package config

// Model is the format-agnostic representation of a full correction manifest:
// the available fieldmap acquisitions, the BOLD run they are intended for,
// and the correction options.
type Model struct {
	Fieldmaps  []*Fieldmap
	Bold       *Bold
	Correction *Correction
}

// Fieldmap is one available fieldmap acquisition. Type is a strategy type
// tag; Inputs maps resolved-input names to file paths; Metadata carries
// per-acquisition values needed only by some strategy types (for example the
// phase-encoding direction of an EPI acquisition).
type Fieldmap struct {
	Type     string
	Inputs   map[string]string
	Metadata map[string]any
}

// Input returns the named resolved input and whether it is present and
// non-empty.
func (f *Fieldmap) Input(key string) (string, bool) {
	v, ok := f.Inputs[key]
	return v, ok && v != ""
}

// Bold describes the BOLD run under correction: the outer workflow's input
// files plus the run's acquisition metadata (RepetitionTime, SliceTiming,
// PhaseEncodingDirection, ...).
type Bold struct {
	NameSource                   string
	Ref                          string
	RefBrain                     string
	Mask                         string
	T1Brain                      string
	T1ToTemplateReverseTransform string
	Metadata                     map[string]any
}

// Correction holds the selection flags and the opaque tuning values forwarded
// to whichever sub-workflow gets built. Only UseSyn and ForceSyn influence
// strategy selection.
type Correction struct {
	UseSyn      bool
	ForceSyn    bool
	FmapBSpline bool
	FmapDemean  bool
	Debug       bool
	OmpNthreads int
	Template    string
}

// DefaultCorrection returns the correction options applied when a manifest
// has no correction block.
func DefaultCorrection() *Correction {
	return &Correction{
		FmapDemean:  true,
		OmpNthreads: 1,
	}
}
