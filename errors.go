package beamgo

import (
	"errors"
	"fmt"
)

var (
	// ErrNoInitialStates is returned when a search is started with an empty
	// initial state set. It is reported synchronously, before any work is
	// scheduled.
	ErrNoInitialStates = errors.New("no initial states")

	// ErrNoVariants is returned when a portfolio is run without variants.
	ErrNoVariants = errors.New("no variants configured")
)

// VariantError indicates that one variant of a portfolio run failed.
//
// The original underlying error can be accessed via errors.Unwrap.
type VariantError struct {
	Index int
	Name  string
	cause error
}

func (e *VariantError) Error() string {
	return fmt.Sprintf("portfolio variant %q (index %d): %v", e.Name, e.Index, e.cause)
}

func (e *VariantError) Unwrap() error { return e.cause }
