package lmm

import "errors"

// Domain errors for model construction and curve sampling.
var (
	// ErrInvalidTermStructure indicates construction inputs that do not
	// describe a valid term structure: times not strictly increasing,
	// mismatched sequence lengths, an empty structure, or a non-zero
	// volatility on the already-fixed index 0.
	ErrInvalidTermStructure = errors.New("lmm: invalid term structure")

	// ErrOutOfRange indicates an Advance call at or beyond the final reset
	// time; no tenor is left to simulate. Terminal for that path beyond
	// that time.
	ErrOutOfRange = errors.New("lmm: advance time at or beyond final reset time")
)
