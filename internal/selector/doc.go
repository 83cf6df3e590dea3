// Package selector ranks the available fieldmap acquisitions and decides
// which correction strategy (or strategy pair) the composer should build.
//
// Selection is a pure function: it never constructs anything and never fails.
// Priority comes from the catalog; the use_syn/force_syn flags control
// whether the anatomically-guided fallback is permitted, forced alongside a
// better strategy for reporting, or promoted to the sole correction path.
package selector
