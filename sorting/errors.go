// SPDX-License-Identifier: MIT
// Package sorting: sentinel errors and method names.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Sorts attach the method name with errors.Wrap/Wrapf, so a nil input to
//     Quick reads "Quick: sequence: sequence is nil" and still matches
//     sequence.ErrNilSequence.
//   • Sorts never panic on user input. Option constructors panic on
//     meaningless values (WithRand(nil), WithLogger(nil)).

package sorting

import "errors"

// Method names used as error context and as the "algo" log field.
const (
	MethodSelection = "Selection"
	MethodBubble    = "Bubble"
	MethodMerge     = "Merge"
	MethodQuick     = "Quick"
	MethodRadix     = "Radix"
)

var (
	// ErrNegativeKey indicates that Radix met a negative element. The input
	// is left untouched when this is returned.
	ErrNegativeKey = errors.New("sorting: radix sort requires non-negative keys")

	// ErrNilKey indicates that RadixByKey was called without a key function.
	ErrNilKey = errors.New("sorting: key func is nil")

	// ErrOptionViolation indicates that a nil Option was supplied.
	ErrOptionViolation = errors.New("sorting: invalid option supplied")
)
