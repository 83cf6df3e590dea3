package selector

import (
	"sort"

	"github.com/vk/sdcgrid/internal/catalog"
	"github.com/vk/sdcgrid/internal/config"
)

// Mode says how the chosen strategies are to be combined by the composer.
type Mode int

const (
	// ModeNone means no strategy is available and none was requested; the
	// composer falls back to the passthrough workflow.
	ModeNone Mode = iota
	// ModePrimary means exactly one strategy is composed.
	ModePrimary
	// ModePrimaryAndReport means the primary strategy is composed and the
	// syn fallback is additionally built, wired only to the reporting output.
	ModePrimaryAndReport
	// ModeFallbackOnly means the syn fallback is the sole correction path.
	ModeFallbackOnly
)

// String returns a short human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModePrimary:
		return "primary"
	case ModePrimaryAndReport:
		return "primary+report"
	case ModeFallbackOnly:
		return "fallback-only"
	default:
		return "unknown"
	}
}

// Flags are the two selection inputs. ForceSyn implies UseSyn: forcing the
// fallback also allows it.
type Flags struct {
	// UseSyn permits the syn fallback when no dedicated fieldmap exists.
	UseSyn bool
	// ForceSyn requires the syn fallback to be composed even when a
	// higher-priority strategy is available; in that case it is added for
	// reporting only, never substituted for the primary correction.
	ForceSyn bool
}

// Result is the outcome of strategy selection.
//
// Secondary is set only when Mode is ModePrimaryAndReport. Primary is set for
// every mode except ModeNone.
type Result struct {
	Primary   *config.Fieldmap
	Secondary *config.Fieldmap
	Mode      Mode
}

// Select picks the correction strategy to compose from the available fieldmap
// acquisitions and the selection flags.
//
// Acquisitions with unsupported type tags are discarded up front; an
// unsupported tag is treated as "fieldmap absent", not as an error. The
// survivors are ranked by catalog priority with the original manifest order
// breaking ties, and the top-ranked acquisition becomes the primary. When
// ForceSyn is set and a syn acquisition survives alongside a higher-priority
// one, the syn acquisition is returned as a report-only secondary rather than
// replacing the primary.
//
// Select is deterministic and total: every input produces a Result, never an
// error.
func Select(fmaps []*config.Fieldmap, flags Flags) Result {
	known := make([]*config.Fieldmap, 0, len(fmaps))
	for _, fm := range fmaps {
		if catalog.IsKnown(fm.Type) {
			known = append(known, fm)
		}
	}

	if len(known) == 0 {
		if flags.UseSyn || flags.ForceSyn {
			return Result{
				Primary: &config.Fieldmap{Type: catalog.TypeSyn},
				Mode:    ModeFallbackOnly,
			}
		}
		return Result{Mode: ModeNone}
	}

	sort.SliceStable(known, func(i, j int) bool {
		ri, _ := catalog.PriorityOf(known[i].Type)
		rj, _ := catalog.PriorityOf(known[j].Type)
		return ri < rj
	})
	best := known[0]

	// Best-ranked acquisition is already the fallback: nothing outranks it,
	// so it is the sole correction path whether or not it was forced.
	if best.Type == catalog.TypeSyn {
		return Result{Primary: best, Mode: ModeFallbackOnly}
	}

	last := known[len(known)-1]
	if last.Type == catalog.TypeSyn && flags.ForceSyn {
		// Forcing the fallback must not discard the higher-priority
		// correction that is already available; the fallback is added for
		// reporting only.
		return Result{Primary: best, Secondary: last, Mode: ModePrimaryAndReport}
	}

	return Result{Primary: best, Mode: ModePrimary}
}
