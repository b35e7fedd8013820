// SPDX-License-Identifier: MIT
// Package sequence: sentinel errors shared by search and sorting.
//
// Callers MUST match these with errors.Is; algorithm packages wrap them with
// the method name for context, which keeps errors.Is working.

package sequence

import "errors"

var (
	// ErrNilSequence indicates that a nil Sequence was passed where one is
	// required. An empty (Len()==0) sequence is valid and never reported.
	ErrNilSequence = errors.New("sequence: sequence is nil")

	// ErrNilCompare indicates that a nil CompareFunc was passed to a
	// ...Func variant.
	ErrNilCompare = errors.New("sequence: compare func is nil")
)
