// Package composer assembles the distortion-correction workflow for a
// selection result.
//
// The composed graph always exposes the same outer contract (inputs
// name_source, bold_ref, bold_ref_brain, bold_mask, t1_brain and
// t1_to_template_reverse_transform; outputs bold_ref, bold_mask,
// bold_ref_brain, out_warp and syn_bold_ref) no matter which strategy ends
// up inside. Strategy sub-workflows are opaque: the composer knows their port
// contracts, constructs them through a per-type builder registry, and wires
// them, but their numerical content lives elsewhere.
//
// Composition is synchronous, side-effect free and all-or-nothing. Required
// inputs are validated before a sub-workflow node is created, so a failed
// composition never yields a partial graph. Opaque tuning values (bspline
// fit, demeaning, debug, thread budget, template) are stamped onto the
// relevant nodes as parameters and otherwise ignored.
package composer
