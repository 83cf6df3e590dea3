// Package schema declares the HCL shapes of a correction manifest. The
// structs here are decode targets only; translation into the format-agnostic
// config model happens in the hcl package.
package schema

import "github.com/hashicorp/hcl/v2"

// Manifest is the top-level structure of a manifest file.
type Manifest struct {
	Fieldmaps  []*Fieldmap `hcl:"fieldmap,block"`
	Bold       *Bold       `hcl:"bold,block"`
	Correction *Correction `hcl:"correction,block"`
}

// Fieldmap is a `fieldmap "<type>" { ... }` block describing one available
// acquisition, keyed by its strategy type tag.
type Fieldmap struct {
	Type     string            `hcl:"type,label"`
	Inputs   map[string]string `hcl:"inputs"`
	Metadata hcl.Expression    `hcl:"metadata,optional"`
}

// Bold is the `bold { ... }` block naming the run under correction and the
// files the outer workflow is wired from.
type Bold struct {
	NameSource                   string         `hcl:"name_source"`
	Ref                          string         `hcl:"bold_ref"`
	RefBrain                     string         `hcl:"bold_ref_brain"`
	Mask                         string         `hcl:"bold_mask"`
	T1Brain                      string         `hcl:"t1_brain,optional"`
	T1ToTemplateReverseTransform string         `hcl:"t1_to_template_reverse_transform,optional"`
	Metadata                     hcl.Expression `hcl:"metadata,optional"`
}

// Correction is the optional `correction { ... }` block with selection flags
// and tuning values.
type Correction struct {
	UseSyn      *bool   `hcl:"use_syn,optional"`
	ForceSyn    *bool   `hcl:"force_syn,optional"`
	FmapBSpline *bool   `hcl:"fmap_bspline,optional"`
	FmapDemean  *bool   `hcl:"fmap_demean,optional"`
	Debug       *bool   `hcl:"debug,optional"`
	OmpNthreads *int    `hcl:"omp_nthreads,optional"`
	Template    *string `hcl:"template,optional"`
}
