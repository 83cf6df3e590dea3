package composer

import "fmt"

// MissingInputError reports that a chosen strategy cannot be composed because
// one of its required resolved inputs is absent. It is returned before any
// sub-workflow is constructed.
type MissingInputError struct {
	// Strategy is the type tag of the strategy being composed.
	Strategy string
	// Key is the missing resolved-input key. A trailing asterisk marks a
	// prefix-collected input family (e.g. "magnitude*").
	Key string
}

// Error implements the error interface.
func (e *MissingInputError) Error() string {
	return fmt.Sprintf("fieldmap strategy %q is missing required input %q", e.Strategy, e.Key)
}
